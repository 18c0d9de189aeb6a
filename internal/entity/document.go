package entity

// Document represents an imported source PDF for data transfer between layers.
type Document struct {
	ID       int    `json:"id"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
	ModelNo  string `json:"model_no,omitempty"`
}
