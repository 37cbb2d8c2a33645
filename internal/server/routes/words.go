package routes

import (
	"time"

	"github.com/lexicaforge/backend/internal/db"
)

// wordView is the JSON shape of a stored word. Internal row IDs and the
// raw signature vector stay server-side.
type wordView struct {
	ID         string         `json:"id"`
	Headword   string         `json:"headword"`
	Language   string         `json:"language"`
	Normalized string         `json:"normalized"`
	Skeleton   string         `json:"skeleton"`
	Etymology  string         `json:"etymology,omitempty"`
	Morphemes  []morphemeView `json:"morphemes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type morphemeView struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Meaning  string `json:"meaning,omitempty"`
	Position int    `json:"position"`
	Length   int    `json:"length"`
}

func toWordView(word db.Word, rows []db.WordMorpheme) wordView {
	view := wordView{
		ID:         word.PublicID,
		Headword:   word.Headword,
		Language:   word.Language,
		Normalized: word.Normalized,
		Skeleton:   word.Skeleton,
		CreatedAt:  word.CreatedAt,
		UpdatedAt:  word.UpdatedAt,
	}
	if word.Etymology.Valid {
		view.Etymology = word.Etymology.String
	}
	for _, row := range rows {
		m := morphemeView{
			Text:     row.Text,
			Type:     row.Type,
			Position: int(row.Position),
			Length:   int(row.Length),
		}
		if row.Meaning.Valid {
			m.Meaning = row.Meaning.String
		}
		view.Morphemes = append(view.Morphemes, m)
	}
	return view
}
