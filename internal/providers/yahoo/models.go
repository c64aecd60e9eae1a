package yahoo

// QueryAPIResponse is the YQL envelope. Every level can be missing or null
// when the city is unknown, so each branch is a pointer.
type QueryAPIResponse struct {
	Query *Query `json:"query"`
}

type Query struct {
	Count   int      `json:"count"`
	Created string   `json:"created"`
	Lang    string   `json:"lang"`
	Results *Results `json:"results"`
}

type Results struct {
	Channel *Channel `json:"channel"`
}

type Channel struct {
	Title    string    `json:"title"`
	Link     string    `json:"link"`
	Units    *Units    `json:"units"`
	Location *Location `json:"location"`
	Item     *Item     `json:"item"`
}

type Units struct {
	Distance    string `json:"distance"`
	Pressure    string `json:"pressure"`
	Speed       string `json:"speed"`
	Temperature string `json:"temperature"`
}

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

type Item struct {
	Title     string     `json:"title"`
	Lat       string     `json:"lat"`
	Long      string     `json:"long"`
	Condition *Condition `json:"condition"`
}

// Condition carries YQL's stringly-typed values, e.g. "temp": "72".
type Condition struct {
	Code string `json:"code"`
	Date string `json:"date"`
	Temp string `json:"temp"`
	Text string `json:"text"`
}
