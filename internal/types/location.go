package types

// GeoLocation is a free-text address resolved by the geocoder
type GeoLocation struct {
	Coordinates      Coords
	FormattedAddress string
}
