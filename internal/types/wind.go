package types

// Wind is the current wind reading of a forecast, speed in provider units.
type Wind struct {
	Speed            float64
	DirectionDegrees float64
	Direction        string
}

func NewWind(speed, directionDegrees float64) Wind {
	return Wind{
		Speed:            speed,
		DirectionDegrees: directionDegrees,
		Direction:        WindDirectionLabel(directionDegrees),
	}
}

// directionBand starts at lower (inclusive) and runs until the next band.
type directionBand struct {
	lower float64
	label string
}

// Bands are uneven: cardinal and intercardinal points get a
// 10 degree arc, the secondary points take the rest.
var directionBands = []directionBand{
	{5, "NNE"},
	{40, "NE"},
	{50, "ENE"},
	{85, "E"},
	{95, "ESE"},
	{130, "SE"},
	{140, "SSE"},
	{175, "S"},
	{185, "SSW"},
	{220, "SW"},
	{230, "WSW"},
	{265, "W"},
	{275, "WNW"},
	{310, "NW"},
	{320, "NNW"},
	{355, "N"},
}

// WindDirectionLabel returns the 16-point compass label for a bearing where
// 0 degrees is true north. Anything outside [5, 355), including NaN, is "N".
func WindDirectionLabel(degrees float64) string {
	label := "N"
	for _, band := range directionBands {
		if !(degrees >= band.lower) {
			break
		}
		label = band.label
	}
	return label
}
