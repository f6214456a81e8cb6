package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/penwyp/go-shealth-tcx/internal/core/merger"
	"github.com/penwyp/go-shealth-tcx/internal/core/model"
	"github.com/penwyp/go-shealth-tcx/internal/data/parser"
	"github.com/penwyp/go-shealth-tcx/internal/data/scanner"
	"github.com/penwyp/go-shealth-tcx/internal/presentation/formatter"
	"github.com/penwyp/go-shealth-tcx/internal/presentation/tcx"
	"github.com/penwyp/go-shealth-tcx/internal/util"
)

// Report lists the documents written by a successful run, in row order.
type Report struct {
	ExportFile string
	OutputDir  string
	Records    []formatter.Record
}

type Converter struct {
	config  Config
	time    *util.TimeProvider
	scanner *scanner.FileScanner
	parser  *parser.Parser
}

// New validates config and wires the pipeline stages.
func New(config Config) (*Converter, error) {
	config.normalize()

	tp, err := util.NewTimeProvider(config.Timezone)
	if err != nil {
		return nil, err
	}

	return &Converter{
		config:  config,
		time:    tp,
		scanner: scanner.NewFileScanner(config.ExportDir),
		parser:  parser.NewParser(),
	}, nil
}

// Run converts every selected row of the newest export. The first failure
// aborts the batch and no report is returned.
func (c *Converter) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	exportFile, err := c.scanner.Latest()
	if err != nil {
		return nil, err
	}

	rows, err := parser.LoadSummary(exportFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary export: %w", err)
	}

	if err := os.MkdirAll(c.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	records := make([]formatter.Record, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.Workers)

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			record, err := c.convertRow(row)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	util.LogInfo(fmt.Sprintf("Converted %d exercises in %v", len(records), time.Since(start)),
		util.Field{Key: "export", Value: filepath.Base(exportFile)},
		util.Field{Key: "output", Value: c.config.OutputDir})

	return &Report{
		ExportFile: exportFile,
		OutputDir:  c.config.OutputDir,
		Records:    records,
	}, nil
}

// convertRow reads the row's detail record, merges it and writes one document.
func (c *Converter) convertRow(row model.SummaryRow) (formatter.Record, error) {
	detailPath, err := parser.ResolveDetailPath(c.config.ExportDir, row.LiveData)
	if err != nil {
		return formatter.Record{}, fmt.Errorf("line %d: %w", row.Line, err)
	}

	samples, err := c.parser.ParseFile(detailPath)
	if err != nil {
		return formatter.Record{}, fmt.Errorf("line %d: %w", row.Line, err)
	}

	activity, err := merger.Merge(row, samples, c.time.Location())
	if err != nil {
		return formatter.Record{}, err
	}

	name := tcx.OutputName(row.LiveData)
	if err := tcx.WriteFile(filepath.Join(c.config.OutputDir, name), activity); err != nil {
		return formatter.Record{}, err
	}
	if len(activity.Trackpoints) == 0 {
		util.LogWarn(fmt.Sprintf("No heart rate samples in %s, %s has an empty track", row.LiveData, name),
			util.Field{Key: "line", Value: row.Line})
	}
	util.LogDebug(fmt.Sprintf("Wrote %s with %d trackpoints (%d samples)", name, len(activity.Trackpoints), len(samples)))

	return formatter.Record{
		Output:       name,
		Source:       row.LiveData,
		StartTime:    activity.StartTime,
		Duration:     activity.Duration,
		Calories:     activity.Calories,
		AvgHeartRate: activity.AvgHeartRate,
		MaxHeartRate: activity.MaxHeartRate,
		Trackpoints:  len(activity.Trackpoints),
	}, nil
}
