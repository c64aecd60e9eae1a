package intent

import "encoding/json"

// Reply is the envelope sent back to the platform. The zero Reply means
// "nothing to say" and encodes as {}.
type Reply struct {
	Speech      string `json:"speech"`
	DisplayText string `json:"displayText"`
	Source      string `json:"source"`
}

// NewReply builds an envelope whose speech and display text are the same string.
func NewReply(text, source string) Reply {
	return Reply{
		Speech:      text,
		DisplayText: text,
		Source:      source,
	}
}

// IsEmpty reports whether the reply is the empty envelope.
func (r Reply) IsEmpty() bool {
	return r == Reply{}
}

func (r Reply) MarshalJSON() ([]byte, error) {
	if r.IsEmpty() {
		return []byte("{}"), nil
	}
	type envelope Reply
	return json.Marshal(envelope(r))
}
