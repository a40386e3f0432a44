package model

type ChartOptions struct {
	Bpm          float64 `json:"bpm,omitempty"`
	Grid         string  `json:"grid,omitempty"`
	NotesPerTurn int     `json:"notesPerTurn,omitempty"`
	Opponent     string  `json:"opponent,omitempty"`
	Player       string  `json:"player,omitempty"`
	Girlfriend   string  `json:"gf,omitempty"`
	Stage        string  `json:"stage,omitempty"`
	ScrollSpeed  float64 `json:"scrollSpeed,omitempty"`
}

type GenerateRequestBody struct {
	Analysis Analysis     `json:"analysis"`
	Options  ChartOptions `json:"options"`
}

type GenerateResponse struct {
	ID    string `json:"id"`
	Chart Chart  `json:"chart"`
	Meta  Meta   `json:"meta"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
