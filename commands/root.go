package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-shealth-tcx/internal/application/convert"
	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
	"github.com/penwyp/go-shealth-tcx/internal/presentation/formatter"
	"github.com/penwyp/go-shealth-tcx/internal/util"
)

var (
	// Logging related
	debug     bool
	logFile   string
	logFormat string

	// Data paths
	exportDir string
	outputDir string

	// Conversion
	timezone     string
	workers      int
	outputFormat string

	rootCmd = &cobra.Command{
		Use:   "go-shealth-tcx [flags]",
		Short: "Convert Samsung Health exercise exports to TCX",
		Long: `go-shealth-tcx converts a Samsung Health exercise export into Garmin TCX files.

The newest com.samsung.shealth.exercise.<id>.csv in the export directory is read,
every exercise of type 15002 is merged with its live data JSON record and written
as one .tcx document with its heart rate samples.

Examples:
  go-shealth-tcx                                  # Convert the export in the current directory
  go-shealth-tcx --dir ~/Downloads/samsunghealth  # Convert another export directory
  go-shealth-tcx --out /tmp/tcx --timezone UTC    # Custom output directory and timezone
  go-shealth-tcx --workers 4 -o json              # Convert in parallel, JSON report`,
		SilenceUsage: true,
		RunE:         runConvert,
	}
)

const (
	defaultLogFile   = "~/.go-shealth-tcx/logs/app.log"
	defaultExportDir = "."
)

func init() {
	// Input and output locations
	rootCmd.PersistentFlags().StringVar(&exportDir, "dir", defaultExportDir,
		"Samsung Health export directory")
	rootCmd.PersistentFlags().StringVar(&outputDir, "out", "",
		"TCX output directory (default <dir>/"+constants.OutputDir+")")

	// Conversion
	rootCmd.Flags().StringVar(&timezone, "timezone", "Local",
		"Timezone for trackpoint times (e.g., Asia/Seoul, UTC)")
	rootCmd.Flags().IntVar(&workers, "workers", 1,
		"Number of exercises converted in parallel")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Report format (table, csv, json, summary, none)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaultLogFile,
		"Log file path")
	rootCmd.PersistentFlags().MarkHidden("log-file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"Log entry format (text, json)")
	rootCmd.PersistentFlags().MarkHidden("log-format")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	reportFormatter, err := formatter.NewFormatter(outputFormat)
	if err != nil {
		return err
	}

	converter, err := convert.New(convert.Config{
		ExportDir: expandPath(exportDir),
		OutputDir: resolveOutputDir(),
		Timezone:  timezone,
		Workers:   workers,
	})
	if err != nil {
		return err
	}

	result, err := converter.Run(cmd.Context())
	if err != nil {
		util.LogError(fmt.Sprintf("Conversion failed: %v", err))
		return err
	}

	if err := reportFormatter.Format(cmd.OutOrStdout(), result.Records); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}
	if outputFormat == "table" {
		fmt.Fprintln(cmd.OutOrStdout(), util.FormatSuccess(
			fmt.Sprintf("Wrote %d TCX files to %s", len(result.Records), result.OutputDir)))
	}
	return nil
}

func Execute() error {
	defer util.CloseLogger()
	return rootCmd.Execute()
}

// Helper functions

func initLogging() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	path := ""
	if logFile != "" {
		path = expandPath(logFile)
		if err := ensureDir(filepath.Dir(path)); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return util.InitLogger(logLevel, path, logFormat, debug)
}

func resolveOutputDir() string {
	if outputDir == "" {
		return filepath.Join(expandPath(exportDir), constants.OutputDir)
	}
	return expandPath(outputDir)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
