package wisdom

import (
	"strings"
	"testing"
)

func TestSpeech(t *testing.T) {
	answer := &Answer{
		Query:   "golang",
		URL:     "https://en.wikipedia.org/wiki/Go_(programming_language)",
		Summary: "Go is a high-level general purpose programming language.",
	}

	want := "According to Wikipedia.org (https://en.wikipedia.org/wiki/Go_(programming_language)): " +
		"Go is a high-level general purpose programming language."
	if got := Speech(answer); got != want {
		t.Errorf("Speech() = %q, want %q", got, want)
	}
}

func TestSpeech_Apology(t *testing.T) {
	tests := []struct {
		name     string
		answer   *Answer
		wantLink string
	}{
		{"spaces become plus", &Answer{Query: "capital of france"}, "https://en.wikipedia.org/w/index.php?search=capital+of+france"},
		{"reserved characters escaped", &Answer{Query: "c&a?"}, "https://en.wikipedia.org/w/index.php?search=c%26a%3F"},
		{"nil answer", nil, "https://en.wikipedia.org/w/index.php?search="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Speech(tt.answer)
			if !strings.HasPrefix(got, "I am sorry, but I couldn't find a good article") {
				t.Errorf("Speech() = %q, want apology", got)
			}
			if !strings.HasSuffix(got, tt.wantLink) {
				t.Errorf("Speech() = %q, want suffix %q", got, tt.wantLink)
			}
		})
	}
}
