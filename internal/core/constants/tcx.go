package constants

// TCX root attributes, written in this order.
const (
	TCXSchemaLocation = "http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2 http://www.garmin.com/xmlschemas/TrainingCenterDatabasev2.xsd"
	TCXNamespace      = "http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2"
	NSActivityGoals   = "http://www.garmin.com/xmlschemas/ActivityGoals/v1"
	NSActivityExt     = "http://www.garmin.com/xmlschemas/ActivityExtension/v2"
	NSUserProfile     = "http://www.garmin.com/xmlschemas/UserProfile/v2"
	NSXMLSchemaInst   = "http://www.w3.org/2001/XMLSchema-instance"
	NSProfileExt      = "http://www.garmin.com/xmlschemas/ProfileExtension/v1"
)

// Lap values that the source export has no equivalent for.
const (
	TCXSport         = "Other"
	TCXDistance      = "0"
	TCXMaximumSpeed  = "0"
	TCXIntensity     = "Active"
	TCXTriggerMethod = "Manual"
	TCXEncoding      = "UTF-8"
)
