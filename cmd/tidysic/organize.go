package main

import (
	"fmt"
	"os"
	"time"

	"github.com/franz/tidysic/internal/cleanup"
	"github.com/franz/tidysic/internal/execute"
	"github.com/franz/tidysic/internal/plan"
	"github.com/franz/tidysic/internal/report"
	"github.com/franz/tidysic/internal/structure"
	"github.com/franz/tidysic/internal/tags"
	"github.com/franz/tidysic/internal/tree"
	"github.com/franz/tidysic/internal/util"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dryRun   bool
	moveMode bool
	copyMode bool
	inPlace  bool
	cfgPath  string
)

func init() {
	rootCmd.Args = func(cmd *cobra.Command, args []string) error {
		if dumpCfg {
			return nil
		}
		return cobra.RangeArgs(1, 2)(cmd, args)
	}
	rootCmd.RunE = runOrganize

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log what would happen without touching the filesystem")
	rootCmd.Flags().BoolVar(&moveMode, "move", false, "move files instead of copying them")
	rootCmd.Flags().BoolVar(&copyMode, "copy", false, "copy files (default)")
	rootCmd.Flags().BoolVar(&inPlace, "in-place", false, "reorganize source in place (implies --move, rejects an explicit target)")
	rootCmd.Flags().StringVar(&cfgPath, "structure", "", "path to a structure file (default: <target>/.tidysic, else built-in)")
}

func runOrganize(cmd *cobra.Command, args []string) error {
	if maybeDumpConfig(cmd) {
		return nil
	}

	verbose := viper.GetBool("verbose")
	quiet := viper.GetBool("quiet")
	util.SetVerbose(verbose)
	util.SetQuiet(quiet)
	util.SetColors(!viper.GetBool("no-color"))

	source := args[0]
	var target string

	if inPlace {
		if len(args) > 1 {
			return fmt.Errorf("--in-place does not accept an explicit target")
		}
		target = source
		moveMode = true
	} else {
		if len(args) < 2 {
			return fmt.Errorf("target directory is required unless --in-place is set")
		}
		target = args[1]
	}

	if moveMode && copyMode {
		return fmt.Errorf("--move and --copy are mutually exclusive")
	}
	kind := plan.Copy
	if moveMode {
		kind = plan.Move
	}

	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("source directory does not exist: %s", source)
	}

	if !dryRun {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("creating target directory: %w", err)
		}
	}

	logLevel := report.LevelInfo
	if quiet {
		logLevel = report.LevelWarning
	} else if verbose {
		logLevel = report.LevelDebug
	}

	logger, err := report.NewEventLogger("artifacts", logLevel)
	if err != nil {
		util.WarnLog("failed to create event logger: %v", err)
		logger = report.NullLogger()
	}
	defer logger.Close()
	if logger.Path() != "" {
		util.InfoLog("Event log: %s", logger.Path())
	}

	util.InfoLog("Scanning %s", source)
	start := time.Now()

	root, err := tree.Build(source, tags.DhowdenReader{})
	if err != nil {
		return fmt.Errorf("scanning source: %w", err)
	}
	util.SuccessLog("Scan complete in %v", time.Since(start).Round(time.Millisecond))

	s, err := structure.Resolve(cfgPath, target)
	logger.LogStructure(cfgPath, err)
	if err != nil {
		return fmt.Errorf("resolving structure: %w", err)
	}

	ops, err := plan.Plan(root, target, s, kind)
	if err != nil {
		if collision, ok := err.(*plan.CollisionError); ok {
			logger.LogCollision(collision.Target, collision.Sources)
		}
		return fmt.Errorf("planning: %w", err)
	}
	util.InfoLog("Planned %d operations", len(ops))

	var bytesMoved int64
	for _, op := range ops {
		if fi, err := os.Stat(op.Source); err == nil {
			bytesMoved += fi.Size()
		}
	}

	var bar *progressbar.ProgressBar
	cfg := execute.Config{DryRun: dryRun, Logger: logger}
	if util.IsTerminal(os.Stderr.Fd()) && !quiet {
		bar = progressbar.Default(int64(len(ops)), "organizing")
		cfg.Progress = bar
	}

	execStart := time.Now()
	result := execute.Run(ops, cfg)
	if bar != nil {
		bar.Finish()
	}

	util.SuccessLog(
		"Done in %v: %d succeeded, %d failed (%s)",
		time.Since(execStart).Round(time.Millisecond), result.Succeeded, result.Failed,
		humanize.Bytes(uint64(bytesMoved)),
	)

	if kind == plan.Move && !dryRun {
		cleanup.Run(source, logger)
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d operations failed", result.Failed, len(ops))
	}
	return nil
}
</content>
