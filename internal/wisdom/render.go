package wisdom

import (
	"fmt"
	"net/url"
)

const (
	sourceName = "Wikipedia.org"
	searchURL  = "https://en.wikipedia.org/w/index.php?search="

	apology = "I am sorry, but I couldn't find a good article or result for your request on " + sourceName + ". " +
		"Why don't you click on the following link to see similar results: "
)

// Speech renders the answer, or the apology with a search link for the
// original query when nothing usable was found.
func Speech(a *Answer) string {
	if a.Found() {
		return fmt.Sprintf("According to %s (%s): %s", sourceName, a.URL, a.Summary)
	}

	var query string
	if a != nil {
		query = a.Query
	}
	return apology + searchURL + url.QueryEscape(query)
}
