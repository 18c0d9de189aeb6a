package llm

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when a model reply contains no JSON object at all.
var ErrNoJSON = errors.New("no JSON object in model reply")

// ExtractJSONObject recovers the JSON object from a model reply. Replies are
// usually bare JSON, but some wrap the object in prose or code fences; in
// that case the span from the first '{' to the last '}' is taken.
func ExtractJSONObject(text string) ([]byte, error) {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}") {
		return []byte(t), nil
	}
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start == -1 || end <= start {
		return nil, ErrNoJSON
	}
	return []byte(t[start : end+1]), nil
}
