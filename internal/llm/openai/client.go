package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cbruhn/drawing-archive/internal/llm"
)

// labelPrompt instructs the model to read only the left half of the scanned
// spread: the drawing's headings top to bottom, the trailing "Nr." and the
// scale. Kept in Danish to match the archive's source material.
const labelPrompt = `Du får et billede af en scannet side (opslag).
DU MÅ KUN bruge VENSTRE side (tegning + overskrifter + nr nederst).
Ignorér højre side tekst fuldstændigt.

Opgave:
A) Find ALLE tydelige overskrifter på venstre side (typisk 2-5).
   - Returnér dem i læseorden (top → bund).
B) Find "Nr." nederst.
C) Find målestok(e).
D) Du må gerne gætte hvis næsten læsbart — men sæt confidence lavere.

SVAR KUN MED JSON:
{"titles":["..."],"nr":"...","scale":"...","confidence":0.0}`

// ExtractLabels implements llm.LabelExtractor using a vision-capable
// chat/completions call: one text part with the fixed instruction, one image
// part with the compressed page.
func (c *Client) ExtractLabels(ctx context.Context, req llm.ExtractRequest) (llm.LabelFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"page_no", req.PageNo,
		"image_bytes", len(req.ImageDataURL),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": labelPrompt},
					{"type": "image_url", "image_url": map[string]any{"url": req.ImageDataURL}},
				},
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.LabelFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.LabelFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.LabelFields{}, raw, fmt.Errorf("no choices in openai response: %w", llm.ErrNoJSON)
	}

	content, err := llm.ExtractJSONObject(cc.Choices[0].Message.Content)
	if err != nil {
		c.log.Error("llm.extract.no_json",
			"req_id", rid, "content_bytes", len(cc.Choices[0].Message.Content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.LabelFields{}, raw, err
	}

	schema := llm.BuildLabelJSONSchema()
	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.LabelFields{}, content, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.LabelFields
	if err := json.Unmarshal(content, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.LabelFields{}, content, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"titles", len(out.Titles),
		"nr", out.Nr,
		"scale", out.Scale,
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &llm.StatusError{Code: resp.StatusCode, Body: buf.String()}
	}
	return buf.Bytes(), nil
}
