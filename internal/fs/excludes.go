package fs

// IgnoredDirs are the directory names skipped at the folder level unless
// configured otherwise. They hold interpreter caches rather than exercises.
var IgnoredDirs = []string{
	"__pycache__",
}

// DefaultIgnoredDirs returns a copy of IgnoredDirs, used as the default for
// the ignore_dirs config key.
func DefaultIgnoredDirs() []string {
	return append([]string{}, IgnoredDirs...)
}

func isIgnoredDir(name string, ignore []string) bool {
	for _, ignored := range ignore {
		if name == ignored {
			return true
		}
	}
	return false
}
