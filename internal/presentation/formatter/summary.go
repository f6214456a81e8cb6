package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-shealth-tcx/internal/util"
)

// SummaryFormatter prints batch totals instead of one line per document.
type SummaryFormatter struct{}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(w io.Writer, records []Record) error {
	var duration float64
	calories, points, empty := 0, 0, 0
	for _, r := range records {
		duration += r.Duration
		calories += r.Calories
		points += r.Trackpoints
		if r.Trackpoints == 0 {
			empty++
		}
	}

	_, err := fmt.Fprintf(w, "%s\nDocuments:   %d\nDuration:    %s\nCalories:    %d\nTrackpoints: %d\n",
		util.FormatHeaderTitle("=== Conversion Summary ==="),
		len(records), util.FormatDuration(duration), calories, points)
	if err != nil {
		return err
	}
	if empty > 0 {
		_, err = fmt.Fprintln(w, util.FormatWarning(fmt.Sprintf("%d documents have no heart rate samples", empty)))
	}
	return err
}
