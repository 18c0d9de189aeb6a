package llm

import "context"

// LabelFields is the normalized shape we want back from the vision model:
// the left half's headings in reading order, the trailing catalog number,
// the scale, and the model's own confidence.
type LabelFields struct {
	Titles     []string `json:"titles"`
	Nr         string   `json:"nr,omitempty"`
	Scale      string   `json:"scale,omitempty"`
	Confidence float32  `json:"confidence,omitempty"`
}

// ExtractRequest carries one page image to the extractor.
type ExtractRequest struct {
	// ImageDataURL is the compressed page image as a data: URL.
	ImageDataURL string
	// PageNo is a logging hint only.
	PageNo int
}

// LabelExtractor is the interface the extraction worker depends on.
type LabelExtractor interface {
	ExtractLabels(ctx context.Context, req ExtractRequest) (LabelFields, []byte /*rawJSON*/, error)
	// Model identifies the backing model; recorded in the success tag.
	Model() string
}
