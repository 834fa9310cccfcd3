package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tormodhaugland/scriptnav/internal/config"
	"github.com/tormodhaugland/scriptnav/internal/fs"
)

type entryRecord struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Count int    `json:"count"`
}

var lsCmd = &cobra.Command{
	Use:   "ls [unit [folder]]",
	Short: "List units, folders or scripts",
	Long: `Lists the configured units, the folders of a unit, or the scripts of a
folder. Units may be given by key or label; folders by name or menu number.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var records []entryRecord
		var header string
		switch len(args) {
		case 0:
			header = "KEY\tUNIT\tFOLDERS\tPATH"
			records, err = listUnits(cfg)
		case 1:
			header = "#\tFOLDER\tSCRIPTS\tPATH"
			records, err = listFolders(cfg, args[0])
		default:
			header = "#\tSCRIPT\tBYTES\tPATH"
			records, err = listScripts(cfg, args[0], args[1])
		}
		if err != nil {
			return err
		}

		if jsonOut {
			return outputJSON(cmd.OutOrStdout(), records)
		}
		return writeEntries(cmd.OutOrStdout(), header, records)
	},
}

func writeEntries(out io.Writer, header string, records []entryRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "Nothing found")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Key, r.Name, r.Count, r.Path)
	}
	return w.Flush()
}

func listUnits(cfg *config.Config) ([]entryRecord, error) {
	records := make([]entryRecord, 0, len(cfg.Units))
	for _, u := range cfg.Units {
		path := cfg.UnitPath(u)
		folders, err := fs.ListEntries(path, cfg.FolderFilter())
		if err != nil {
			return nil, err
		}
		records = append(records, entryRecord{Key: u.Key, Name: u.Label, Path: path, Count: len(folders)})
	}
	return records, nil
}

func listFolders(cfg *config.Config, unitRef string) ([]entryRecord, error) {
	u, err := resolveUnit(cfg, unitRef)
	if err != nil {
		return nil, err
	}
	unitPath := cfg.UnitPath(u)

	folders, err := fs.ListEntries(unitPath, cfg.FolderFilter())
	if err != nil {
		return nil, err
	}

	records := make([]entryRecord, 0, len(folders))
	for i, folder := range folders {
		path := filepath.Join(unitPath, folder)
		scripts, err := fs.ListEntries(path, fs.HasSuffix(cfg.Suffix))
		if err != nil {
			return nil, err
		}
		records = append(records, entryRecord{Key: fmt.Sprint(i + 1), Name: folder, Path: path, Count: len(scripts)})
	}
	return records, nil
}

func listScripts(cfg *config.Config, unitRef, folderRef string) ([]entryRecord, error) {
	u, err := resolveUnit(cfg, unitRef)
	if err != nil {
		return nil, err
	}
	unitPath := cfg.UnitPath(u)

	folder, err := resolveEntry(unitPath, cfg.FolderFilter(), folderRef)
	if err != nil {
		return nil, err
	}
	folderPath := filepath.Join(unitPath, folder)

	scripts, err := fs.ListEntries(folderPath, fs.HasSuffix(cfg.Suffix))
	if err != nil {
		return nil, err
	}

	records := make([]entryRecord, 0, len(scripts))
	for i, script := range scripts {
		path := filepath.Join(folderPath, script)
		var size int
		if info, err := os.Stat(path); err == nil {
			size = int(info.Size())
		}
		records = append(records, entryRecord{Key: fmt.Sprint(i + 1), Name: script, Path: path, Count: size})
	}
	return records, nil
}

func outputJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
