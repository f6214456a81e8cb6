package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
	"github.com/penwyp/go-shealth-tcx/internal/presentation/formatter"
	"github.com/penwyp/go-shealth-tcx/internal/presentation/tcx"
	"github.com/penwyp/go-shealth-tcx/internal/util"
)

var verifyFormat string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Parse the generated TCX files and report their contents",
	Long: `Reads every .tcx file in the output directory back and prints its start time,
duration, calories, heart rate and trackpoint count. A file that does not parse
fails the command.`,
	SilenceUsage: true,
	RunE:         runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyFormat, "output", "o", "table",
		"Report format (table, csv, json, summary, none)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	report, err := formatter.NewFormatter(verifyFormat)
	if err != nil {
		return err
	}

	dir := resolveOutputDir()
	files, err := listTCXFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", constants.OutputExtension, dir)
	}

	records := make([]formatter.Record, 0, len(files))
	for _, path := range files {
		doc, err := tcx.ReadFile(path)
		if err != nil {
			return err
		}
		record, err := documentRecord(filepath.Base(path), doc)
		if err != nil {
			return err
		}
		records = append(records, record)
	}
	util.LogInfo(fmt.Sprintf("Verified %d TCX files in %s", len(records), dir))

	return report.Format(cmd.OutOrStdout(), records)
}

func listTCXFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), constants.OutputExtension) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// documentRecord summarizes the first lap of a document.
func documentRecord(name string, doc *tcx.Document) (formatter.Record, error) {
	if len(doc.Activities.Activity) == 0 || len(doc.Activities.Activity[0].Laps) == 0 {
		return formatter.Record{}, fmt.Errorf("%s: no activity data found", name)
	}
	act := doc.Activities.Activity[0]
	lap := act.Laps[0]

	record := formatter.Record{
		Output:      name,
		StartTime:   act.ID,
		Trackpoints: doc.TrackpointCount(),
	}

	var err error
	if record.Duration, err = strconv.ParseFloat(lap.TotalTimeSeconds, 64); err != nil {
		return record, fmt.Errorf("%s: invalid TotalTimeSeconds %q", name, lap.TotalTimeSeconds)
	}
	ints := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"Calories", lap.Calories, &record.Calories},
		{"AverageHeartRateBpm", lap.AverageHeartRateBpm.Value, &record.AvgHeartRate},
		{"MaximumHeartRateBpm", lap.MaximumHeartRateBpm.Value, &record.MaxHeartRate},
	}
	for _, v := range ints {
		if *v.dst, err = strconv.Atoi(v.raw); err != nil {
			return record, fmt.Errorf("%s: invalid %s %q", name, v.name, v.raw)
		}
	}
	return record, nil
}
