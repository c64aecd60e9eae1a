package intent

import (
	"strconv"
	"strings"
)

// Actions recognized by the router. Any action containing ActionWisdom is a
// knowledge lookup.
const (
	ActionLegacyWeather = "yahooWeatherForecast"
	ActionWeatherSearch = "weather.search"
	ActionWisdom        = "wisdom"
)

// Parameter names read from the request.
const (
	ParamCity     = "geo-city"
	ParamLocation = "location"
	ParamQuery    = "q"
)

// Request is the part of an intent-recognition payload the router acts on.
type Request struct {
	Action     string
	Parameters map[string]string
}

// Param returns the trimmed value of a parameter and whether it was present.
func (r Request) Param(name string) (string, bool) {
	v, ok := r.Parameters[name]
	return strings.TrimSpace(v), ok
}

// WebhookRequest is the inbound JSON document posted by the platform.
type WebhookRequest struct {
	ID        string        `json:"id,omitempty"`
	SessionID string        `json:"sessionId,omitempty"`
	Lang      string        `json:"lang,omitempty"`
	Result    WebhookResult `json:"result"`
}

type WebhookResult struct {
	Source        string         `json:"source,omitempty"`
	ResolvedQuery string         `json:"resolvedQuery,omitempty"`
	Action        string         `json:"action"`
	Parameters    map[string]any `json:"parameters"`
}

// ToRequest flattens the webhook document. Scalar parameters are kept as
// strings; null, list and object values are dropped.
func (w WebhookRequest) ToRequest() Request {
	params := make(map[string]string, len(w.Result.Parameters))
	for name, raw := range w.Result.Parameters {
		if v, ok := scalarString(raw); ok {
			params[name] = v
		}
	}
	return Request{
		Action:     w.Result.Action,
		Parameters: params,
	}
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
