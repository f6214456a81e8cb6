package model

// SummaryRow is one exercise session read from the summary export.
type SummaryRow struct {
	Line          int // 1-based line in the export file
	ExerciseType  int
	LiveData      string
	StartTime     string
	Duration      float64
	Calories      float64
	MeanHeartRate float64
	MaxHeartRate  float64
}

// DetailSample is one entry of a live data record. Both fields are optional;
// many samples carry only motion data.
type DetailSample struct {
	StartTime *float64 `json:"start_time,omitempty"`
	HeartRate *float64 `json:"heart_rate,omitempty"`
}

// Trackpoint is a normalized heart rate sample.
type Trackpoint struct {
	Time      string
	HeartRate int
}

// MergedActivity combines summary fields with the extracted trackpoints.
type MergedActivity struct {
	StartTime    string
	Duration     float64
	Calories     int
	AvgHeartRate int
	MaxHeartRate int
	Trackpoints  []Trackpoint
}
