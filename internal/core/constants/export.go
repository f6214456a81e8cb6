package constants

const (
	// Summary export files look like com.samsung.shealth.exercise.<id>.csv
	ExportFilePrefix = "com.samsung.shealth.exercise."
	ExportFileSuffix = ".csv"

	// Summary export columns
	ColumnExerciseType  = "com.samsung.health.exercise.exercise_type"
	ColumnLiveData      = "com.samsung.health.exercise.live_data"
	ColumnStartTime     = "com.samsung.health.exercise.start_time"
	ColumnDuration      = "com.samsung.health.exercise.duration"
	ColumnTotalCalorie  = "total_calorie"
	ColumnMeanHeartRate = "com.samsung.health.exercise.mean_heart_rate"
	ColumnMaxHeartRate  = "com.samsung.health.exercise.max_heart_rate"

	// Lines preceding the column header in the summary export
	SummaryMetadataLines = 1

	// Only this exercise type is converted
	TargetExerciseType = 15002

	// Detail records live under <export dir>/DetailDir/<first letter>/<file>
	DetailDir = "jsons/com.samsung.shealth.exercise"

	OutputDir       = "tcx_files"
	OutputExtension = ".tcx"
)

// Timestamp layouts
const (
	SourceStartTimeLayout = "2006-01-02 15:04:05.999999999"
	LapStartTimeLayout    = "2006-01-02T15:04:05Z"
	TrackpointTimeLayout  = "2006-01-02T15:04:05"
	TrackpointFracLayout  = ".000000"
)
