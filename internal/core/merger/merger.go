// Package merger turns a summary row and its live data samples into the
// activity record that gets serialized to TCX.
package merger

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
	"github.com/penwyp/go-shealth-tcx/internal/core/model"
)

var (
	// ErrMissingStartTime is returned for a heart rate sample without a timestamp.
	ErrMissingStartTime = errors.New("heart rate sample has no start_time")
	ErrInvalidStartTime = errors.New("invalid summary start time")
	// ErrTimestampOutOfRange is returned for sample times outside years 1-9999.
	ErrTimestampOutOfRange = errors.New("sample start_time out of range")
)

// Epoch milliseconds of 0001-01-01T00:00:00Z and 10000-01-01T00:00:00Z.
const (
	minEpochMillis = -62135596800000
	maxEpochMillis = 253402300800000
)

// NormalizeTimestamp converts epoch milliseconds to an ISO-8601 local time in
// loc. Microseconds are printed only when non-zero and no zone is appended,
// e.g. 2023-06-01T08:15:30.500000.
func NormalizeTimestamp(epochMillis float64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t := time.UnixMicro(int64(math.Round(epochMillis * 1000))).In(loc)
	layout := constants.TrackpointTimeLayout
	if t.Nanosecond() != 0 {
		layout += constants.TrackpointFracLayout
	}
	return t.Format(layout)
}

// ExtractTrackpoints keeps the samples carrying a heart rate, in source order.
func ExtractTrackpoints(samples []model.DetailSample, loc *time.Location) ([]model.Trackpoint, error) {
	trackpoints := make([]model.Trackpoint, 0, len(samples))
	for i, sample := range samples {
		if sample.HeartRate == nil {
			continue
		}
		if sample.StartTime == nil {
			return nil, fmt.Errorf("sample %d: %w", i, ErrMissingStartTime)
		}
		if ms := *sample.StartTime; math.IsNaN(ms) || ms < minEpochMillis || ms >= maxEpochMillis {
			return nil, fmt.Errorf("sample %d: %w: %v", i, ErrTimestampOutOfRange, ms)
		}
		trackpoints = append(trackpoints, model.Trackpoint{
			Time:      NormalizeTimestamp(*sample.StartTime, loc),
			HeartRate: int(*sample.HeartRate),
		})
	}
	return trackpoints, nil
}

// BuildMergedActivity reformats the summary start time to whole seconds and
// truncates calories and heart rates. The start time is relabeled with Z
// without converting zones.
func BuildMergedActivity(row model.SummaryRow, trackpoints []model.Trackpoint) (*model.MergedActivity, error) {
	start, err := time.Parse(constants.SourceStartTimeLayout, row.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d value %q: %v", ErrInvalidStartTime, row.Line, row.StartTime, err)
	}

	return &model.MergedActivity{
		StartTime:    start.Format(constants.LapStartTimeLayout),
		Duration:     row.Duration,
		Calories:     int(row.Calories),
		AvgHeartRate: int(row.MeanHeartRate),
		MaxHeartRate: int(row.MaxHeartRate),
		Trackpoints:  trackpoints,
	}, nil
}

// Merge runs extraction and merging for one summary row.
func Merge(row model.SummaryRow, samples []model.DetailSample, loc *time.Location) (*model.MergedActivity, error) {
	trackpoints, err := ExtractTrackpoints(samples, loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", row.LiveData, err)
	}
	return BuildMergedActivity(row, trackpoints)
}
