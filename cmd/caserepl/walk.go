package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/twinfer/caserepl"
	"github.com/twinfer/caserepl/internal/globfilter"
)

// runOptions holds the resolved CLI flags that govern how a replacer is
// applied across a file tree.
type runOptions struct {
	recursive     bool
	dryRun        bool
	verbose       bool
	renameFiles   bool
	extensions    []string
	extensionFold bool
}

// applyResult tallies what a run did, for the summary line printed at exit.
type applyResult struct {
	filesScanned int
	filesChanged int
	filesRenamed int
}

// applyTree walks root under fs, applying r to every file whose name passes
// the extension filter, and returns a tally of what happened.
func applyTree(fs afero.Fs, root string, r *caserepl.Replacer, opts runOptions, log *zap.SugaredLogger) (applyResult, error) {
	var result applyResult

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if !opts.recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		matched, err := globfilter.AnyMatch(opts.extensions, filepath.Base(path), opts.extensionFold)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !matched {
			return nil
		}

		result.filesScanned++
		changed, err := applyFile(fs, path, r, opts, log)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if changed {
			result.filesChanged++
		}

		renamed, err := maybeRenameFile(fs, path, r, opts, log)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if renamed {
			result.filesRenamed++
		}
		return nil
	})
	return result, err
}

// applyFile rewrites one file's contents in place (unless opts.dryRun) and
// reports whether the content changed.
func applyFile(fs afero.Fs, path string, r *caserepl.Replacer, opts runOptions, log *zap.SugaredLogger) (bool, error) {
	original, err := afero.ReadFile(fs, path)
	if err != nil {
		return false, err
	}

	replaced, err := r.Replace(string(original))
	if err != nil {
		return false, err
	}
	if replaced == string(original) {
		return false, nil
	}

	if opts.verbose {
		log.Infof("%s %s", color.YellowString("modify"), path)
	}
	if opts.dryRun {
		return true, nil
	}

	info, err := fs.Stat(path)
	if err != nil {
		return false, err
	}
	return true, afero.WriteFile(fs, path, []byte(replaced), info.Mode())
}

// maybeRenameFile renames path to the replaced form of its base name, unless
// opts.renameFiles is false or the name is unchanged.
func maybeRenameFile(fs afero.Fs, path string, r *caserepl.Replacer, opts runOptions, log *zap.SugaredLogger) (bool, error) {
	if !opts.renameFiles {
		return false, nil
	}

	dir, base := filepath.Split(path)
	newBase, err := r.Replace(base)
	if err != nil {
		return false, err
	}
	if newBase == base {
		return false, nil
	}

	newPath := filepath.Join(dir, newBase)
	if opts.verbose {
		log.Infof("%s %s -> %s", color.CyanString("rename"), path, newPath)
	}
	if opts.dryRun {
		return true, nil
	}
	return true, fs.Rename(path, newPath)
}
