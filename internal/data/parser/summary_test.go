package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summaryHeader = "com.samsung.health.exercise.exercise_type,com.samsung.health.exercise.live_data,com.samsung.health.exercise.start_time,com.samsung.health.exercise.duration,total_calorie,com.samsung.health.exercise.mean_heart_rate,com.samsung.health.exercise.max_heart_rate,"

func summaryCSV(rows ...string) string {
	return "com.samsung.shealth.exercise,6313007,15\n" + summaryHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestReadSummaryFiltersExerciseType(t *testing.T) {
	data := summaryCSV(
		"15002,a1.live_data.json,2023-06-01 08:15:30.500000,1800,450.7,120.2,165.9,",
		"1001,b2.live_data.json,2023-06-02 07:00:00.000000,900,100,90,110,",
		"15002.0,c3.live_data.json,2023-06-03 18:30:00.250000,3600,800.1,130.9,170.2,",
	)

	rows, err := ReadSummary(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "a1.live_data.json", rows[0].LiveData)
	assert.Equal(t, "2023-06-01 08:15:30.500000", rows[0].StartTime)
	assert.Equal(t, 15002, rows[0].ExerciseType)
	assert.Equal(t, 1800.0, rows[0].Duration)
	assert.Equal(t, 450.7, rows[0].Calories)
	assert.Equal(t, 120.2, rows[0].MeanHeartRate)
	assert.Equal(t, 165.9, rows[0].MaxHeartRate)
	assert.Equal(t, 3, rows[0].Line)

	assert.Equal(t, "c3.live_data.json", rows[1].LiveData)
	assert.Equal(t, 5, rows[1].Line)
}

func TestReadSummaryColumnsByName(t *testing.T) {
	data := "meta\n" +
		"total_calorie,com.samsung.health.exercise.max_heart_rate,extra,com.samsung.health.exercise.start_time,com.samsung.health.exercise.mean_heart_rate,com.samsung.health.exercise.duration,com.samsung.health.exercise.live_data,com.samsung.health.exercise.exercise_type\n" +
		"300,150,foo,2023-01-01 10:00:00.000000,110,600,x.json,15002\n"

	rows, err := ReadSummary(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "x.json", rows[0].LiveData)
	assert.Equal(t, 300.0, rows[0].Calories)
	assert.Equal(t, 150.0, rows[0].MaxHeartRate)
	assert.Equal(t, 110.0, rows[0].MeanHeartRate)
	assert.Equal(t, 600.0, rows[0].Duration)
}

func TestReadSummaryErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "empty file",
			data:    "",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "missing column",
			data:    "meta\ncom.samsung.health.exercise.exercise_type,total_calorie\n15002,10\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "non numeric calories",
			data:    summaryCSV("15002,a.json,2023-06-01 08:15:30.500000,1800,lots,120,160,"),
			wantErr: ErrMalformedField,
		},
		{
			name:    "empty heart rate",
			data:    summaryCSV("15002,a.json,2023-06-01 08:15:30.500000,1800,400,,160,"),
			wantErr: ErrMalformedField,
		},
		{
			name:    "empty live data reference",
			data:    summaryCSV("15002,,2023-06-01 08:15:30.500000,1800,400,120,160,"),
			wantErr: ErrMalformedField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSummary(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadSummaryIgnoresMalformedRowsOfOtherTypes(t *testing.T) {
	data := summaryCSV(
		"1001,,not-a-date,abc,,,,",
		"15002,a.json,2023-06-01 08:15:30.500000,1800,400,120,160,",
	)

	rows, err := ReadSummary(strings.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLoadSummary(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "com.samsung.shealth.exercise.1.csv")
	require.NoError(t, os.WriteFile(path, []byte(summaryCSV(
		"15002,a.json,2023-06-01 08:15:30.500000,1800,400,120,160,",
	)), 0644))

	rows, err := LoadSummary(path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = LoadSummary(filepath.Join(tempDir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSummaryRejectsNaN(t *testing.T) {
	data := summaryCSV("15002,a.json,2023-06-01 08:15:30.500000,1800,NaN,120,160,")

	_, err := ReadSummary(strings.NewReader(data))
	assert.ErrorIs(t, err, ErrMalformedField)
}
