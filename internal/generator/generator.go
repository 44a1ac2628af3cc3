// Package generator asks the model for email subject lines and turns its
// reply into a title list.
package generator

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sozercan/ai-copywriter/apimodels"
	"github.com/sozercan/ai-copywriter/internal/config"
	"github.com/sozercan/ai-copywriter/internal/extractor"
	"github.com/sozercan/ai-copywriter/internal/llm"
	"github.com/sozercan/ai-copywriter/internal/logger"
	"github.com/sozercan/ai-copywriter/internal/metrics"
)

// MinContentLength is counted in characters, not bytes.
const MinContentLength = 10

// emptyReply stands in for a completion without text.
const emptyReply = "{}"

type Generator struct {
	llmProvider llm.Provider
	prompts     *config.Prompts
	logger      *logger.Logger
	metrics     *metrics.Metrics
}

// New builds a Generator. A nil logger discards output and a nil metrics
// records nothing.
func New(llmProvider llm.Provider, prompts *config.Prompts, log *logger.Logger, m *metrics.Metrics) *Generator {
	if log == nil {
		log = logger.Discard()
	}
	return &Generator{
		llmProvider: llmProvider,
		prompts:     prompts,
		logger:      log.WithComponent("generator"),
		metrics:     m,
	}
}

// Generate validates req, makes exactly one completion call and extracts up
// to three titles from the reply. Zero titles is not an error; the response
// then carries an empty list.
func (g *Generator) Generate(ctx context.Context, req apimodels.GenerateRequest) (*apimodels.GenerateResponse, error) {
	log := g.logger.WithContext(ctx)

	if utf8.RuneCountInString(req.Content) < MinContentLength {
		g.metrics.ObserveRequest(metrics.OutcomeInvalid)
		return nil, &ValidationError{Field: "content", Message: MessageContentTooShort}
	}

	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = g.prompts.DefaultTone
	}

	log.Info("Generating titles", "tone", tone, "content_length", utf8.RuneCountInString(req.Content))

	start := time.Now()
	llmResp, err := g.llmProvider.Complete(ctx,
		[]string{g.prompts.System},
		[]string{g.prompts.UserMessage(req.Content, tone)},
		llm.WithJSONResponse(),
	)
	g.metrics.ObserveUpstream(time.Since(start))
	if err != nil {
		log.Error("Completion request failed", "error", err)
		g.metrics.ObserveRequest(metrics.OutcomeUpstreamError)
		return nil, &UpstreamError{Err: err}
	}

	raw := llmResp.Content
	if raw == "" {
		raw = emptyReply
	}
	log.Debug("Raw AI response", "content", raw, "model", llmResp.Model, "tokens", llmResp.Usage.TotalTokens)

	result := extractor.Extract(raw)
	if result.ParseErr != nil {
		log.Warn("Model reply is not JSON, falling back to line split", "error", result.ParseErr)
	}
	g.metrics.ObserveExtraction(result.Source.String())

	if result.Empty() {
		log.Warn("No titles could be extracted", "raw", raw)
		g.metrics.ObserveRequest(metrics.OutcomeEmpty)
	} else {
		g.metrics.ObserveRequest(metrics.OutcomeOK)
	}

	log.Info("Final titles processed",
		slog.String("source", result.Source.String()),
		slog.Any("titles", result.Titles),
	)

	return &apimodels.GenerateResponse{Titles: result.Titles}, nil
}

// Tones returns the catalog offered to front ends.
func (g *Generator) Tones() apimodels.TonesResponse {
	return apimodels.TonesResponse{
		Tones:   g.prompts.Tones,
		Default: g.prompts.DefaultTone,
	}
}
