package aiplan

import (
	"encoding/json"
	"regexp"
	"strings"
)

// greedy: from the first '{' to the last '}'
var jsonObjectRe = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSON pulls the JSON document out of a completion that may wrap it
// in prose or code fences. Without an object match the whole text is tried.
func ExtractJSON(text string) (json.RawMessage, error) {
	candidate := jsonObjectRe.FindString(text)
	if candidate == "" {
		candidate = strings.TrimSpace(text)
	}
	if !json.Valid([]byte(candidate)) {
		return nil, ErrUnparsableResponse
	}
	return json.RawMessage(candidate), nil
}
