package entity

// LabelGen is one generation of extracted label metadata. Empty strings mean
// the field was never set; the zero value is a fully unset generation.
type LabelGen struct {
	TitlesJSON string  `json:"titles_json,omitempty"`
	Nr         string  `json:"nr,omitempty"`
	Scale      string  `json:"scale,omitempty"`
	Confidence float32 `json:"confidence,omitempty"`
}

// Page represents one archived page for data transfer between layers.
type Page struct {
	ID         int    `json:"id"`
	DocumentID int    `json:"document_id"`
	PageNo     int    `json:"page_no"`
	ThumbPath  string `json:"thumb_path,omitempty"`
	Text       string `json:"text,omitempty"`
	KeyText    string `json:"key_text,omitempty"`

	Gen1 LabelGen `json:"gen1"`
	Gen2 LabelGen `json:"gen2"`

	// SearchBlob mirrors left_search_text_v2; empty means not indexed.
	SearchBlob string `json:"search_blob,omitempty"`

	// StatusV2 mirrors left_source_v2; empty means the page has not been
	// through the extraction stage yet.
	StatusV2 string `json:"status_v2,omitempty"`

	// Denormalized owner fields, populated by queries that join documents.
	Filename string `json:"filename,omitempty"`
	DocPath  string `json:"doc_path,omitempty"`
	DocTitle string `json:"doc_title,omitempty"`
}
