package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		got, err := ExtractJSONObject(`{"titles":["Plan"],"confidence":0.9}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"titles":["Plan"],"confidence":0.9}`, string(got))
	})

	t.Run("wrapped in prose and fences", func(t *testing.T) {
		reply := "Here you go:\n```json\n{\"titles\":[],\"nr\":\"135\"}\n```\nDone."
		got, err := ExtractJSONObject(reply)
		require.NoError(t, err)
		assert.JSONEq(t, `{"titles":[],"nr":"135"}`, string(got))
	})

	t.Run("no object", func(t *testing.T) {
		_, err := ExtractJSONObject("sorry, I cannot read this page")
		assert.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("stray closing brace before opening", func(t *testing.T) {
		_, err := ExtractJSONObject("} {")
		assert.ErrorIs(t, err, ErrNoJSON)
	})
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildLabelJSONSchema()

	assert.NoError(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"titles":["Plan","Snit"],"nr":"135","scale":"1:2","confidence":0.8}`)))

	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"titles":"Plan"}`)),
		"titles must be a list")
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"nr":"135"}`)),
		"titles is required")
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"titles":[],"confidence":1.5}`)),
		"confidence above bound")
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, "http_429", FailureKind(&StatusError{Code: 429}))
	assert.Equal(t, "timeout", FailureKind(context.DeadlineExceeded))
	assert.Equal(t, "nojson", FailureKind(ErrNoJSON))

	var syn *json.SyntaxError
	err := json.Unmarshal([]byte("{"), &map[string]any{})
	require.ErrorAs(t, err, &syn)
	assert.Equal(t, "badjson", FailureKind(err))

	assert.Equal(t, "call_failed", FailureKind(assert.AnError))
	assert.Equal(t, "", FailureKind(nil))
}
