package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var findLimit int

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy search scripts across all units",
	Long: `Searches unit/folder/script paths with fuzzy matching:

  scriptnav find lab1ex     # matches Unit 1/Lab1/ex1.py
  scriptnav find fact       # matches Unit 2/Recursion/factorial.py`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		refs, err := collectScripts(cfg)
		if err != nil {
			return fmt.Errorf("failed to list scripts: %w", err)
		}

		found := findScripts(refs, args[0], findLimit)
		if jsonOut {
			return outputJSON(cmd.OutOrStdout(), found)
		}

		if len(found) == 0 {
			return fmt.Errorf("no script found matching: %s", args[0])
		}
		return writeFound(cmd.OutOrStdout(), found)
	},
}

func writeFound(out io.Writer, found []scriptRef) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCRIPT\tPATH")
	for _, r := range found {
		fmt.Fprintf(w, "%s\t%s\n", r.Display(), r.Path)
	}
	return w.Flush()
}

// findScripts returns refs matching query, best match first.
func findScripts(refs []scriptRef, query string, limit int) []scriptRef {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Display()
	}

	matches := fuzzy.Find(query, names)
	found := []scriptRef{}
	for _, m := range matches {
		if limit > 0 && len(found) == limit {
			break
		}
		found = append(found, refs[m.Index])
	}
	return found
}

func init() {
	findCmd.Flags().IntVarP(&findLimit, "limit", "n", 10, "maximum number of results (0 for all)")
	rootCmd.AddCommand(findCmd)
}
