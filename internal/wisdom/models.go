package wisdom

// Answer is the outcome of a knowledge lookup. An Answer without a URL or
// summary is a normal result and renders as the apology.
type Answer struct {
	Query   string
	Title   string
	URL     string
	Summary string
}

// Found reports whether the answer has both a source URL and a summary.
func (a *Answer) Found() bool {
	return a != nil && a.URL != "" && a.Summary != ""
}
