package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tscheck/internal/diag"
	"tscheck/internal/diagfmt"
	"tscheck/internal/driver"
	"tscheck/internal/project"
	"tscheck/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.ts|directory>",
	Short: "Type-check a source file or directory",
	Long:  `Check parses and type-checks the given *.ts file, or every *.ts file under the given directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("no-source", false, "omit source lines from pretty output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("disk-cache", false, "reuse cached diagnostics for unchanged files")
	checkCmd.Flags().String("union-any-policy", "", "union normalization policy (absorb|keep, overrides config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	cfgDir := path
	if !info.IsDir() {
		cfgDir = filepath.Dir(path)
	}
	cfg, err := project.LoadFromDir(cfgDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err == nil && maxDiags > 0 {
		cfg.Check.MaxDiagnostics = maxDiags
	}
	if jobs, err := cmd.Flags().GetInt("jobs"); err == nil && jobs > 0 {
		cfg.Check.Jobs = jobs
	}
	if policy, err := cmd.Flags().GetString("union-any-policy"); err == nil && policy != "" {
		cfg.Check.UnionAnyPolicy = policy
		if _, err := cfg.Check.UnionPolicy(); err != nil {
			return err
		}
	}

	var cache *driver.DiskCache
	if useCache, err := cmd.Flags().GetBool("disk-cache"); err == nil && useCache {
		cache, err = driver.OpenDiskCache("tscheck")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	fileSet, bag, err := collectDiagnostics(cmd, path, info.IsDir(), cfg.Check, cache)
	if err != nil {
		return err
	}

	bag.Sort()
	bag.Dedup()
	if err := printDiagnostics(cmd, format, bag, fileSet); err != nil {
		return err
	}

	if bag.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // diagnostics already printed
	}
	return nil
}

func collectDiagnostics(cmd *cobra.Command, path string, isDir bool, cfg project.CheckConfig, cache *driver.DiskCache) (*source.FileSet, *diag.Bag, error) {
	if isDir {
		fileSet, results, err := driver.CheckDir(cmd.Context(), path, cfg, cache)
		if err != nil {
			return nil, nil, err
		}
		merged := diag.NewBag(0)
		for _, r := range results {
			merged.Merge(r.Bag)
		}
		return fileSet, merged, nil
	}

	fileSet := source.NewFileSetWithBase(filepath.Dir(path))
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, err
	}
	res := driver.CheckFile(fileSet, fileID, cfg)
	return fileSet, res.Bag, nil
}

func printDiagnostics(cmd *cobra.Command, format string, bag *diag.Bag, fileSet *source.FileSet) error {
	withNotes, _ := cmd.Flags().GetBool("with-notes")
	noSource, _ := cmd.Flags().GetBool("no-source")
	fullPath, _ := cmd.Flags().GetBool("fullpath")

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "json":
		return diagfmt.JSON(os.Stdout, bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		})
	default:
		if bag.Len() == 0 {
			return nil
		}
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			PathMode:   pathMode,
			ShowNotes:  withNotes,
			ShowSource: !noSource,
		})
		return nil
	}
}
