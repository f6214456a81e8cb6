package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/penwyp/go-shealth-tcx/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"File", "Start", "Duration", "Calories", "Avg HR", "Max HR", "Points",
		},
	}
}

func (f *TableFormatter) Format(w io.Writer, records []Record) error {
	rows := make([][]string, 0, len(records)+1)
	totalPoints, totalCalories := 0, 0
	var totalDuration float64
	for _, r := range records {
		rows = append(rows, []string{
			r.Output,
			r.StartTime,
			util.FormatDuration(r.Duration),
			strconv.Itoa(r.Calories),
			strconv.Itoa(r.AvgHeartRate),
			strconv.Itoa(r.MaxHeartRate),
			strconv.Itoa(r.Trackpoints),
		})
		totalPoints += r.Trackpoints
		totalCalories += r.Calories
		totalDuration += r.Duration
	}
	total := []string{
		fmt.Sprintf("Total (%d)", len(records)), "",
		util.FormatDuration(totalDuration),
		strconv.Itoa(totalCalories), "", "",
		strconv.Itoa(totalPoints),
	}

	widths := f.calculateColumnWidths(append(rows, total))

	b := &strings.Builder{}
	f.printBorder(b, widths, "top")
	f.printRow(b, f.headers, widths)
	f.printBorder(b, widths, "middle")
	for _, row := range rows {
		f.printRow(b, row, widths)
	}
	f.printBorder(b, widths, "middle")
	f.printRow(b, total, widths)
	f.printBorder(b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

// calculateColumnWidths sizes each column by display width, not bytes
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right + "\n")
}

// printRow left-aligns the first two columns and right-aligns the numbers
func (f *TableFormatter) printRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		b.WriteString(" " + util.PadString(value, widths[i], i < 2) + " │")
	}
	b.WriteString("\n")
}
