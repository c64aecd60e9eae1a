package legacyweather

import (
	"errors"
	"fmt"

	"assistant-webhook/internal/providers/yahoo"
	"assistant-webhook/internal/upstream"
)

// ErrIncompletePayload is returned when a branch of the legacy payload is
// absent. It is tagged upstream.KindMalformedPayload.
var ErrIncompletePayload = errors.New("incomplete legacy payload")

const speechTemplate = "Hoje em %s: %s, a temperatura é de %s %s"

// toSpeech renders the current condition of a legacy payload. The walk stops
// at the first missing branch so no partial answer is ever produced.
func toSpeech(resp *yahoo.QueryAPIResponse) (string, error) {
	if resp == nil || resp.Query == nil {
		return "", incomplete("query")
	}
	results := resp.Query.Results
	if results == nil {
		return "", incomplete("query.results")
	}
	channel := results.Channel
	if channel == nil {
		return "", incomplete("query.results.channel")
	}
	switch {
	case channel.Item == nil:
		return "", incomplete("channel.item")
	case channel.Location == nil:
		return "", incomplete("channel.location")
	case channel.Units == nil:
		return "", incomplete("channel.units")
	}
	condition := channel.Item.Condition
	if condition == nil {
		return "", incomplete("channel.item.condition")
	}

	switch {
	case channel.Location.City == "":
		return "", incomplete("location.city")
	case condition.Text == "":
		return "", incomplete("condition.text")
	case condition.Temp == "":
		return "", incomplete("condition.temp")
	}

	return fmt.Sprintf(speechTemplate,
		channel.Location.City,
		condition.Text,
		condition.Temp,
		channel.Units.Temperature,
	), nil
}

func incomplete(branch string) error {
	return upstream.Malformed("legacy weather", fmt.Errorf("%w: missing %s", ErrIncompletePayload, branch))
}
