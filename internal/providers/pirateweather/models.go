package pirateweather

// ForecastAPIResponse mirrors the forecast.io / Dark Sky document. Fields that
// the provider may omit are pointers so absence can be told apart from zero.
type ForecastAPIResponse struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Offset    float64    `json:"offset"`
	Currently *DataPoint `json:"currently"`
	Hourly    *DataBlock `json:"hourly"`
	Daily     *DataBlock `json:"daily"`
	Flags     *Flags     `json:"flags"`
}

// DataPoint is the "currently" block. Humidity is a 0-1 fraction and pressure
// is always in millibars, whatever flags.units says.
type DataPoint struct {
	Time                *int64   `json:"time"`
	Summary             *string  `json:"summary"`
	Icon                string   `json:"icon"`
	Temperature         *float64 `json:"temperature"`
	ApparentTemperature *float64 `json:"apparentTemperature"`
	Humidity            *float64 `json:"humidity"`
	WindSpeed           *float64 `json:"windSpeed"`
	WindBearing         *float64 `json:"windBearing"`
	Pressure            *float64 `json:"pressure"`
	Visibility          *float64 `json:"visibility"`
}

type DataBlock struct {
	Summary string `json:"summary"`
	Icon    string `json:"icon"`
}

type Flags struct {
	Units string `json:"units"`
}
