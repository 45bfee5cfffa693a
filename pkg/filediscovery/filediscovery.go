package filediscovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Grodondo/aitutor/pkg/utils"
)

// sourceExtensions are the file types the tutor will analyze when walking a
// directory.
var sourceExtensions = []string{
	".go", ".py", ".js", ".jsx", ".ts", ".tsx", ".java", ".c", ".h", ".cpp",
	".hpp", ".cs", ".rb", ".rs", ".php", ".swift", ".kt", ".scala", ".sh",
}

// skipDirs are never descended into regardless of ignore rules.
var skipDirs = map[string]bool{
	".git":         true,
	".aitutor":     true,
	"node_modules": true,
	"vendor":       true,
}

// DiscoverSourceFiles walks rootDir and returns the source files to analyze,
// filtered through the workspace's ignore rules, sorted for stable output.
func DiscoverSourceFiles(rootDir string) ([]string, error) {
	ignoreRules := GetIgnoreRules(rootDir)

	var files []string
	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		if ignoreRules != nil && ignoreRules.MatchesPath(rel) {
			return nil
		}
		if !utils.IsValidFileExtension(path, sourceExtensions) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}

	sort.Strings(files)
	return files, nil
}

// IsSourceFile reports whether a single path looks like an analyzable source file.
func IsSourceFile(path string) bool {
	return utils.IsValidFileExtension(strings.TrimSpace(path), sourceExtensions)
}
