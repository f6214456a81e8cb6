package formatter

import (
	"fmt"
	"io"
)

// Record describes one written TCX document.
type Record struct {
	Output       string  `json:"output"`
	Source       string  `json:"source"`
	StartTime    string  `json:"start_time"`
	Duration     float64 `json:"duration"`
	Calories     int     `json:"calories"`
	AvgHeartRate int     `json:"avg_heart_rate"`
	MaxHeartRate int     `json:"max_heart_rate"`
	Trackpoints  int     `json:"trackpoints"`
}

// Formatter renders conversion records.
type Formatter interface {
	Format(w io.Writer, records []Record) error
}

// NewFormatter returns the formatter for an --output value.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "table", "":
		return NewTableFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	case "none":
		return nopFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (table, csv, json, summary, none)", format)
	}
}

type nopFormatter struct{}

func (nopFormatter) Format(io.Writer, []Record) error { return nil }
