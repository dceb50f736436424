package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/twinfer/caserepl"
	"github.com/twinfer/caserepl/internal/caseparse"
)

var (
	flagReplacementsFile string
	flagCaseMode         string
	flagWholeWord        bool
	flagRecursive        bool
	flagVerbose          bool
	flagDryRun           bool
	flagNoRename         bool
	flagExtensions       []string
	flagExtensionFold    bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caserepl [path]",
		Short: "Case-preserving find-and-replace across a file tree",
		Long: `caserepl rewrites every casing rendering of a pattern - snake_case,
camelCase, PascalCase, kebab-case and the rest - into the matching
rendering of a replacement, across one file or an entire directory tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRoot,
	}

	cmd.Flags().StringVarP(&flagReplacementsFile, "replacements-file", "f", "", "path to a replacements file (required unless --find/--replace are set)")
	cmd.Flags().StringVar(&flagCaseMode, "case-mode", "preserve_case", "default case mode for --find/--replace: preserve_case, ignore_case, or match_case")
	cmd.Flags().BoolVar(&flagWholeWord, "match-whole-word", false, "require --find/--replace matches to land on word boundaries")
	cmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log each file modified or renamed")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would change without writing anything")
	cmd.Flags().BoolVar(&flagNoRename, "no-rename", false, "do not rename files whose name itself matches a rule")
	cmd.Flags().StringSliceVar(&flagExtensions, "extensions", nil, "comma-separated glob patterns restricting which files are touched (default: all)")
	cmd.Flags().BoolVar(&flagExtensionFold, "extensions-ignore-case", false, "match --extensions patterns case-insensitively")

	cmd.Flags().String("find", "", "pattern to find (an alternative to --replacements-file for a single rule)")
	cmd.Flags().String("replace", "", "replacement text for --find")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	r := caserepl.New()
	builder := replacerBuilder{r}

	find, _ := cmd.Flags().GetString("find")
	replace, _ := cmd.Flags().GetString("replace")

	switch {
	case flagReplacementsFile != "":
		f, err := os.Open(flagReplacementsFile)
		if err != nil {
			return fmt.Errorf("opening replacements file: %w", err)
		}
		defer f.Close()
		if err := loadReplacements(builder, f); err != nil {
			return fmt.Errorf("parsing %s: %w", flagReplacementsFile, err)
		}

	case find != "":
		mode, err := caseparse.ParseMode(flagCaseMode)
		if err != nil {
			return err
		}
		if err := builder.Add(decodeEscapes(find), decodeEscapes(replace), mode, flagWholeWord); err != nil {
			return fmt.Errorf("installing rule: %w", err)
		}

	default:
		return fmt.Errorf("one of --replacements-file or --find is required")
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	fs := afero.NewOsFs()
	info, err := fs.Stat(root)
	if err != nil {
		return fmt.Errorf("%s: %w", root, err)
	}

	opts := runOptions{
		recursive:     flagRecursive,
		dryRun:        flagDryRun,
		verbose:       flagVerbose,
		renameFiles:   !flagNoRename,
		extensions:    flagExtensions,
		extensionFold: flagExtensionFold,
	}

	if !info.IsDir() {
		changed, applyErr := applyFile(fs, root, r, opts, log)
		if applyErr != nil {
			return applyErr
		}
		printSummary(applyResult{filesScanned: 1, filesChanged: boolToInt(changed)}, flagDryRun)
		return nil
	}

	result, err := applyTree(fs, root, r, opts, log)
	if err != nil {
		return err
	}
	printSummary(result, flagDryRun)
	return nil
}

func printSummary(result applyResult, dryRun bool) {
	verb := "changed"
	if dryRun {
		verb = "would change"
	}
	fmt.Printf("%s: scanned %d, %s %d, renamed %d\n",
		color.GreenString("caserepl"), result.filesScanned, verb, result.filesChanged, result.filesRenamed)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.CallerKey = ""
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Execute runs the root command, printing errors in red to stderr.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
