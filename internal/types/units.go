package types

// Measurement-system tags reported by the forecast provider in flags.units
const (
	UnitsUS  = "us"
	UnitsCA  = "ca"
	UnitsUK2 = "uk2"
	UnitsSI  = "si"
)

// PressureKPa is the metric pressure label. Providers always report millibars,
// so a snapshot carrying this label has had its pressure divided by 10.
const PressureKPa = "kPa"

// UnitSet holds the display labels for every measured quantity of a forecast.
type UnitSet struct {
	Temperature        string
	Distance           string
	PrecipIntensity    string
	PrecipAccumulation string
	WindSpeed          string
	Pressure           string
}

var imperialUnits = UnitSet{
	Temperature:        "F",
	Distance:           "Miles",
	PrecipIntensity:    "in./hr.",
	PrecipAccumulation: "inches",
	WindSpeed:          "mph",
	Pressure:           "millibars",
}

var metricUnits = UnitSet{
	Temperature:        "C",
	Distance:           "KM",
	PrecipIntensity:    "millimeters per hour",
	PrecipAccumulation: "centimeters",
	WindSpeed:          "m/s",
	Pressure:           PressureKPa,
}

// ImperialUnits returns the unit labels used for the "us" measurement system.
func ImperialUnits() UnitSet {
	return imperialUnits
}

// MetricUnits returns the unit labels used for "si" and any unknown tag.
func MetricUnits() UnitSet {
	return metricUnits
}

// ResolveUnits maps a measurement-system tag to its display labels.
// "ca" reports wind in km/h; "uk2" reports wind in mph and distance in miles.
func ResolveUnits(tag string) UnitSet {
	if tag == UnitsUS {
		return imperialUnits
	}

	units := metricUnits
	switch tag {
	case UnitsCA:
		units.WindSpeed = "km/h"
	case UnitsUK2:
		units.WindSpeed = "mph"
		units.Distance = "Miles"
	}
	return units
}

// IsMetricPressure reports whether pressure values must be expressed in kPa.
func (u UnitSet) IsMetricPressure() bool {
	return u.Pressure == PressureKPa
}
