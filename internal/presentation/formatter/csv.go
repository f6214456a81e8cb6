package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	headers := []string{
		"Output", "Source", "Start Time", "Duration", "Calories",
		"Avg HR", "Max HR", "Trackpoints",
	}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, r := range records {
		record := []string{
			r.Output,
			r.Source,
			r.StartTime,
			strconv.FormatFloat(r.Duration, 'f', -1, 64),
			strconv.Itoa(r.Calories),
			strconv.Itoa(r.AvgHeartRate),
			strconv.Itoa(r.MaxHeartRate),
			strconv.Itoa(r.Trackpoints),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
