package stage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitgitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// hdlSuffixes are the file extensions picked up by source discovery.
var hdlSuffixes = []string{".v", ".sv", ".vhd", ".vhdl"}

// hasHDLSuffix reports whether a filename looks like an HDL source.
func hasHDLSuffix(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range hdlSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// dirsForRel returns the list of directories from "." to the directory of rel.
func dirsForRel(rel string) []string {
	dir := filepath.Dir(rel)
	if rel == "." {
		dir = "."
	}
	parts := []string{}
	if dir != "." {
		parts = strings.Split(dir, string(os.PathSeparator))
	}
	cur := "."
	dirs := []string{"."}
	for _, part := range parts {
		if cur == "." {
			cur = part
		} else {
			cur = filepath.Join(cur, part)
		}
		dirs = append(dirs, cur)
	}
	return dirs
}

// readGitignorePatterns reads .gitignore patterns from the given directories under absRoot.
func readGitignorePatterns(absRoot string, dirs []string) []gitgitignore.Pattern {
	var patterns []gitgitignore.Pattern
	for _, d := range dirs {
		giPath := filepath.Join(absRoot, d, ".gitignore")
		b, err := os.ReadFile(giPath)
		if err != nil {
			continue
		}
		lines := strings.Split(string(b), "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			base := []string{}
			if d != "." && d != "" {
				base = strings.Split(filepath.ToSlash(d), "/")
			}
			patterns = append(patterns, gitgitignore.ParsePattern(line, base))
		}
	}
	return patterns
}

// matchIgnore reports whether rel should be ignored according to .gitignore files under absRoot.
func matchIgnore(absRoot string, rel string, isDir bool) bool {
	patterns := readGitignorePatterns(absRoot, dirsForRel(rel))
	if len(patterns) == 0 {
		return false
	}
	m := gitgitignore.NewMatcher(patterns)
	comps := []string{}
	if rel != "." && rel != "" {
		comps = strings.Split(rel, string(os.PathSeparator))
	}
	return m.Match(comps, isDir)
}

func shouldIgnore(absRoot, rel string, isDir bool, noGitignore bool) bool {
	if noGitignore {
		return false
	}
	return matchIgnore(absRoot, rel, isDir)
}

// findHDLSources walks absRoot and returns sorted relative paths of HDL
// source files, respecting .gitignore patterns unless noGitignore is true.
func findHDLSources(absRoot string, noGitignore bool) ([]string, error) {
	sourceSet := map[string]struct{}{}

	var walkDir func(string) error
	walkDir = func(dirPath string) error {
		relDir, err := filepath.Rel(absRoot, dirPath)
		if err != nil {
			return fmt.Errorf("discover-sources: %s: %v", dirPath, err)
		}
		if relDir != "." && shouldIgnore(absRoot, relDir, true, noGitignore) {
			return nil
		}

		entries, err := os.ReadDir(dirPath)
		if err != nil {
			return fmt.Errorf("discover-sources: %s: %v", dirPath, err)
		}
		for _, ent := range entries {
			name := ent.Name()
			childPath := filepath.Join(dirPath, name)
			relChild, err := filepath.Rel(absRoot, childPath)
			if err != nil {
				return fmt.Errorf("discover-sources: %s: %v", childPath, err)
			}
			if ent.IsDir() {
				if err := walkDir(childPath); err != nil {
					return err
				}
				continue
			}
			if shouldIgnore(absRoot, relChild, false, noGitignore) {
				continue
			}
			if hasHDLSuffix(name) {
				sourceSet[filepath.ToSlash(relChild)] = struct{}{}
			}
		}
		return nil
	}

	if err := walkDir(absRoot); err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(sourceSet))
	for s := range sourceSet {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources, nil
}
