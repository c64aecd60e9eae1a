package wikipedia

// SearchAPIResponse is the action=query&list=search document (formatversion=2)
type SearchAPIResponse struct {
	Query struct {
		Search []SearchHit `json:"search"`
	} `json:"query"`
	Error *APIError `json:"error"`
}

type SearchHit struct {
	Ns     int    `json:"ns"`
	Title  string `json:"title"`
	PageId int    `json:"pageid"`
}

// PageAPIResponse is the action=query&prop=info|extracts document (formatversion=2)
type PageAPIResponse struct {
	Query struct {
		Pages []PageInfo `json:"pages"`
	} `json:"query"`
	Error *APIError `json:"error"`
}

type PageInfo struct {
	PageId  int    `json:"pageid"`
	Title   string `json:"title"`
	Missing bool   `json:"missing"`
	Invalid bool   `json:"invalid"`
	FullURL string `json:"fullurl"`
	Extract string `json:"extract"`
}

type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// Page is a resolved article: its canonical URL and first sentence.
type Page struct {
	Title   string
	URL     string
	Summary string
}
