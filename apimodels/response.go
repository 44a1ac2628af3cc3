package apimodels

type GenerateResponse struct {
	// Suggested subject lines, at most three, in production order
	Titles []string `json:"titles"`
}

// ErrorResponse is returned with every 4xx/5xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

type TonesResponse struct {
	// Tones offered by the front ends
	Tones []string `json:"tones"`

	// Default is used when a request carries no tone
	Default string `json:"default"`
}
