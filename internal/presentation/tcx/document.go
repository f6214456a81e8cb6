// Package tcx serializes merged activities as Garmin Training Center XML.
package tcx

import (
	"encoding/xml"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
	"github.com/penwyp/go-shealth-tcx/internal/core/model"
)

// Document is the TrainingCenterDatabase root. Field order is element order.
type Document struct {
	XMLName    xml.Name   `xml:"TrainingCenterDatabase"`
	Attrs      []xml.Attr `xml:",any,attr"`
	Activities Activities `xml:"Activities"`
}

type Activities struct {
	Activity []Activity `xml:"Activity"`
}

type Activity struct {
	Sport string `xml:"Sport,attr"`
	ID    string `xml:"Id"`
	Laps  []Lap  `xml:"Lap"`
}

type Lap struct {
	StartTime           string    `xml:"StartTime,attr"`
	TotalTimeSeconds    string    `xml:"TotalTimeSeconds"`
	DistanceMeters      string    `xml:"DistanceMeters"`
	MaximumSpeed        string    `xml:"MaximumSpeed"`
	Calories            string    `xml:"Calories"`
	AverageHeartRateBpm HeartRate `xml:"AverageHeartRateBpm"`
	MaximumHeartRateBpm HeartRate `xml:"MaximumHeartRateBpm"`
	Intensity           string    `xml:"Intensity"`
	TriggerMethod       string    `xml:"TriggerMethod"`
	Track               Track     `xml:"Track"`
}

type HeartRate struct {
	Value string `xml:"Value"`
}

type Track struct {
	Trackpoints []Trackpoint `xml:"Trackpoint"`
}

type Trackpoint struct {
	Time         string    `xml:"Time"`
	HeartRateBpm HeartRate `xml:"HeartRateBpm"`
}

// rootAttrs returns the fixed schema declarations of the root element.
func rootAttrs() []xml.Attr {
	return []xml.Attr{
		{Name: xml.Name{Local: "xsi:schemaLocation"}, Value: constants.TCXSchemaLocation},
		{Name: xml.Name{Local: "xmlns:ns5"}, Value: constants.NSActivityGoals},
		{Name: xml.Name{Local: "xmlns:ns3"}, Value: constants.NSActivityExt},
		{Name: xml.Name{Local: "xmlns:ns2"}, Value: constants.NSUserProfile},
		{Name: xml.Name{Local: "xmlns"}, Value: constants.TCXNamespace},
		{Name: xml.Name{Local: "xmlns:xsi"}, Value: constants.NSXMLSchemaInst},
		{Name: xml.Name{Local: "xmlns:ns4"}, Value: constants.NSProfileExt},
	}
}

// NewDocument builds the single-activity, single-lap document for a.
func NewDocument(a *model.MergedActivity) *Document {
	trackpoints := make([]Trackpoint, 0, len(a.Trackpoints))
	for _, tp := range a.Trackpoints {
		trackpoints = append(trackpoints, Trackpoint{
			Time:         tp.Time,
			HeartRateBpm: HeartRate{Value: strconv.Itoa(tp.HeartRate)},
		})
	}

	lap := Lap{
		StartTime:           a.StartTime,
		TotalTimeSeconds:    FormatDuration(a.Duration),
		DistanceMeters:      constants.TCXDistance,
		MaximumSpeed:        constants.TCXMaximumSpeed,
		Calories:            strconv.Itoa(a.Calories),
		AverageHeartRateBpm: HeartRate{Value: strconv.Itoa(a.AvgHeartRate)},
		MaximumHeartRateBpm: HeartRate{Value: strconv.Itoa(a.MaxHeartRate)},
		Intensity:           constants.TCXIntensity,
		TriggerMethod:       constants.TCXTriggerMethod,
		Track:               Track{Trackpoints: trackpoints},
	}

	return &Document{
		Attrs: rootAttrs(),
		Activities: Activities{
			Activity: []Activity{{
				Sport: constants.TCXSport,
				ID:    a.StartTime,
				Laps:  []Lap{lap},
			}},
		},
	}
}

// FormatDuration prints whole seconds without a fraction: 1800 -> "1800".
func FormatDuration(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// OutputName replaces the extension of a live data filename with .tcx.
func OutputName(detailFilename string) string {
	base := filepath.Base(detailFilename)
	return strings.TrimSuffix(base, filepath.Ext(base)) + constants.OutputExtension
}

// TrackpointCount sums trackpoints over every lap of every activity.
func (d *Document) TrackpointCount() int {
	n := 0
	for _, act := range d.Activities.Activity {
		for _, lap := range act.Laps {
			n += len(lap.Track.Trackpoints)
		}
	}
	return n
}

// LapCount sums laps over every activity.
func (d *Document) LapCount() int {
	n := 0
	for _, act := range d.Activities.Activity {
		n += len(act.Laps)
	}
	return n
}
