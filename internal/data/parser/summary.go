package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
	"github.com/penwyp/go-shealth-tcx/internal/core/model"
	"github.com/penwyp/go-shealth-tcx/internal/util"
)

var (
	ErrMissingColumn  = errors.New("summary export is missing a required column")
	ErrMalformedField = errors.New("malformed summary field")
)

var requiredColumns = []string{
	constants.ColumnExerciseType,
	constants.ColumnLiveData,
	constants.ColumnStartTime,
	constants.ColumnDuration,
	constants.ColumnTotalCalorie,
	constants.ColumnMeanHeartRate,
	constants.ColumnMaxHeartRate,
}

// LoadSummary reads the summary export at path and returns the rows of the
// target exercise type in file order.
func LoadSummary(path string) ([]model.SummaryRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := ReadSummary(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	util.LogInfo(fmt.Sprintf("Loaded %d exercises of type %d from %s", len(rows), constants.TargetExerciseType, filepath.Base(path)))
	return rows, nil
}

// ReadSummary parses a summary export. The metadata line before the header
// is skipped and columns are addressed by header name.
func ReadSummary(r io.Reader) ([]model.SummaryRow, error) {
	br := bufio.NewReader(r)
	for i := 0; i < constants.SummaryMetadataLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: export has no header line", ErrMissingColumn)
			}
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: export has no header line", ErrMissingColumn)
		}
		return nil, err
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []model.SummaryRow
	total := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		total++
		line, _ := reader.FieldPos(0)
		line += constants.SummaryMetadataLines

		exerciseType, ok := parseExerciseType(field(record, index[constants.ColumnExerciseType]))
		if !ok || exerciseType != constants.TargetExerciseType {
			continue
		}

		row, err := buildRow(record, index, line)
		if err != nil {
			return nil, err
		}
		row.ExerciseType = exerciseType
		rows = append(rows, row)
	}

	util.LogDebug(fmt.Sprintf("Summary export: %d data rows, %d selected", total, len(rows)))
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return index, nil
}

func buildRow(record []string, index map[string]int, line int) (model.SummaryRow, error) {
	row := model.SummaryRow{
		Line:      line,
		LiveData:  field(record, index[constants.ColumnLiveData]),
		StartTime: field(record, index[constants.ColumnStartTime]),
	}
	if row.LiveData == "" {
		return row, fmt.Errorf("%w: line %d column %s is empty", ErrMalformedField, line, constants.ColumnLiveData)
	}

	numeric := []struct {
		column string
		dst    *float64
	}{
		{constants.ColumnDuration, &row.Duration},
		{constants.ColumnTotalCalorie, &row.Calories},
		{constants.ColumnMeanHeartRate, &row.MeanHeartRate},
		{constants.ColumnMaxHeartRate, &row.MaxHeartRate},
	}
	for _, n := range numeric {
		raw := field(record, index[n.column])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return row, fmt.Errorf("%w: line %d column %s value %q", ErrMalformedField, line, n.column, raw)
		}
		*n.dst = v
	}
	return row, nil
}

// parseExerciseType accepts "15002" as well as "15002.0".
func parseExerciseType(raw string) (int, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
