package api

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/joestump/listing-writer/internal/listing"
	"github.com/joestump/listing-writer/internal/llm"
	"github.com/joestump/listing-writer/internal/metrics"
)

const maxBodyBytes = 1 << 20

// generateHandler provides the POST /generate endpoint.
type generateHandler struct {
	gen    llm.Generator
	logger *zap.Logger
}

// Generate produces listing copy with the configured provider.
// POST /generate
//
// @Summary      Generate listing copy
// @Description  Turns a property description into marketing copy using the mock template or OpenAI, depending on PROVIDER
// @Tags         Generate
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "Property description"
// @Success      200      {object}  GenerateResponse
// @Failure      422      {object}  ValidationErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /generate [post]
func (h *generateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	provider := h.gen.Name()

	req, err := listing.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var ve *listing.ValidationError
		if !errors.As(err, &ve) {
			metrics.GenerationsTotal.WithLabelValues(provider, metrics.StatusError).Inc()
			h.logger.Error("decode request", zap.Error(err))
			writeDetail(w, http.StatusInternalServerError, "internal error")
			return
		}
		metrics.GenerationsTotal.WithLabelValues(provider, metrics.StatusInvalid).Inc()
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: ve.Fields})
		return
	}

	start := time.Now()
	content, err := h.gen.Generate(r.Context(), req)
	metrics.GenerationDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(provider, metrics.StatusError).Inc()
		h.logger.Error("generation failed",
			zap.String("provider", provider),
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Bool("provider_error", llm.IsProviderError(err)),
			zap.Error(err),
		)
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.GenerationsTotal.WithLabelValues(provider, metrics.StatusOK).Inc()
	writeJSON(w, http.StatusOK, GenerateResponse{Content: content})
}

// Health reports liveness and the active provider.
// GET /healthz
//
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /healthz [get]
func (h *generateHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Provider: h.gen.Name()})
}
