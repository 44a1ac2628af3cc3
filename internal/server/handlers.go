package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sozercan/ai-copywriter/apimodels"
	"github.com/sozercan/ai-copywriter/internal/generator"
	"github.com/sozercan/ai-copywriter/internal/metrics"
)

const messageMalformedRequest = "요청 형식이 올바르지 않습니다."

// maxBodyBytes leaves room for 2000 characters of multi-byte text plus the tone.
const maxBodyBytes = 64 << 10

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	log := s.logger.WithContext(r.Context()).WithComponent("http")

	var req apimodels.GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Warn("Invalid generate request body", "error", err)
		s.metrics.ObserveRequest(metrics.OutcomeInvalid)
		_ = writeError(w, http.StatusBadRequest, messageMalformedRequest)
		return
	}
	defer r.Body.Close()

	resp, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		var verr *generator.ValidationError
		if errors.As(err, &verr) {
			log.Debug("Rejected generate request", "error", err)
			_ = writeError(w, http.StatusBadRequest, verr.Message)
			return
		}

		log.Error("Generate request failed", "error", err)
		_ = writeError(w, http.StatusInternalServerError, generator.MessageGenerateFailed)
		return
	}

	if resp.Titles == nil {
		resp.Titles = []string{}
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Error("Writing generate response failed", "error", err)
	}
}

func (s *Server) handleTones(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, s.generator.Tones())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
