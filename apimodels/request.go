package apimodels

type GenerateRequest struct {
	// Content is the raw email body the subject lines are written for
	Content string `json:"content"`

	// Tone is a free-form style label, e.g. "긴급한 느낌"
	Tone string `json:"tone"`
}
