package llm

import "context"

type Provider interface {
	// Complete sends one chat completion request and returns the reply text
	Complete(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

// Options left at their zero value are not sent, so the provider default
// applies.
type Options struct {
	Model        string
	MaxTokens    int64
	Temperature  float64
	JSONResponse bool
}

// WithJSONResponse asks the model for a single JSON object.
func WithJSONResponse() Option {
	return func(o *Options) {
		o.JSONResponse = true
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}
