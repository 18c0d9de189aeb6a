package utils

import (
	"github.com/cbruhn/drawing-archive/gen/ent"
	"github.com/cbruhn/drawing-archive/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func f32OrZero(p *float32) float32 {
	if p == nil {
		return 0
	}
	return *p
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:       e.ID,
		Path:     e.Path,
		Filename: e.Filename,
		Title:    strOrEmpty(e.Title),
		ModelNo:  strOrEmpty(e.ModelNo),
	}
}

func ToPage(e *ent.Page) *entity.Page {
	return &entity.Page{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		PageNo:     e.PageNo,
		ThumbPath:  strOrEmpty(e.ThumbPath),
		Text:       e.Text,
		KeyText:    strOrEmpty(e.KeyText),
		Gen1: entity.LabelGen{
			TitlesJSON: strOrEmpty(e.LeftTitlesJSON),
			Nr:         strOrEmpty(e.LeftNr),
			Scale:      strOrEmpty(e.LeftScale),
			Confidence: f32OrZero(e.LeftConfidence),
		},
		Gen2: entity.LabelGen{
			TitlesJSON: strOrEmpty(e.LeftTitlesJSONV2),
			Nr:         strOrEmpty(e.LeftNrV2),
			Scale:      strOrEmpty(e.LeftScaleV2),
			Confidence: f32OrZero(e.LeftConfidenceV2),
		},
		SearchBlob: strOrEmpty(e.LeftSearchTextV2),
		StatusV2:   strOrEmpty(e.LeftSourceV2),
	}
}

// ToPageWithDocument also carries the document fields read paths sort and
// label by. The document edge must be loaded.
func ToPageWithDocument(e *ent.Page) *entity.Page {
	p := ToPage(e)
	if doc := e.Edges.Document; doc != nil {
		p.Filename = doc.Filename
		p.DocPath = doc.Path
		p.DocTitle = strOrEmpty(doc.Title)
	}
	return p
}
