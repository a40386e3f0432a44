package model

// Note is a single tap note. Time is in milliseconds from song start.
type Note struct {
	ID            int `json:"id"`
	SustainLength int `json:"sLen"`
	Time          int `json:"time"`
	Type          int `json:"type"`
}

type StrumLineType = int

const (
	EnemyLine      StrumLineType = 0
	PlayerLine     StrumLineType = 1
	BackgroundLine StrumLineType = 2
)

type StrumLine struct {
	Visible    bool          `json:"visible"`
	KeyCount   int           `json:"keyCount"`
	Notes      []Note        `json:"notes"`
	Position   string        `json:"position"`
	Type       StrumLineType `json:"type"`
	Characters []string      `json:"characters"`
}

type Chart struct {
	Events        []any       `json:"events"`
	StrumLines    []StrumLine `json:"strumLines"`
	ScrollSpeed   Float       `json:"scrollSpeed"`
	ChartVersion  string      `json:"chartVersion"`
	Stage         string      `json:"stage"`
	CodenameChart bool        `json:"codenameChart"`
	NoteTypes     []string    `json:"noteTypes"`
}

// Meta is the companion song metadata document (meta.json).
type Meta struct {
	DisplayName         string  `json:"displayName"`
	Bpm                 Float   `json:"bpm"`
	Icon                string  `json:"icon"`
	Color               string  `json:"color"`
	CoopAllowed         bool    `json:"coopAllowed"`
	OpponentModeAllowed bool    `json:"opponentModeAllowed"`
}
