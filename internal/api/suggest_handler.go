package api

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/unitrack/unimatch-api/internal/errors"
	"github.com/unitrack/unimatch-api/internal/logger"
	"github.com/unitrack/unimatch-api/internal/metrics"
	"github.com/unitrack/unimatch-api/internal/scoring"
	"github.com/unitrack/unimatch-api/internal/services"
)

// Response messages for the suggestion endpoint
const (
	MsgSuggestSuccess = "Suggestions generated successfully"
	MsgRequiredFields = "GPA, SAT, IELTS, and major are required"
	MsgInvalidBody    = "Invalid request body"
	MsgSuggestFailed  = "Failed to generate university suggestions"
)

// SuggestHandler serves university suggestions
type SuggestHandler struct {
	matchService services.MatchService
	logger       logger.Logger
}

// NewSuggestHandler creates a new suggestion handler with service injection
func NewSuggestHandler(matchService services.MatchService, log logger.Logger) *SuggestHandler {
	return &SuggestHandler{
		matchService: matchService,
		logger:       log,
	}
}

// Suggest scores the catalog against the posted profile and returns the
// top matches
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.SuggestionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		h.logger.Debug("Rejected suggestion request", "error", err.Error())
		respondError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	results, err := h.matchService.Suggest(c.Request.Context(), req.Profile())
	if err != nil {
		status := errors.HTTPStatus(err)
		h.logger.Error("Failed to generate suggestions", err, "status", status)
		if appErr, ok := errors.As(err); ok && status < http.StatusInternalServerError {
			respondError(c, status, appErr.Message)
			return
		}
		respondError(c, status, MsgSuggestFailed)
		return
	}

	if results == nil {
		results = []scoring.MatchResult{}
	}
	respondSuccess(c, http.StatusOK, MsgSuggestSuccess, results)
}

// bindErrorMessage maps a binding failure to the client-facing message.
// An empty body is treated like a body with every field missing.
func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) || stderrors.Is(err, io.EOF) {
		return MsgRequiredFields
	}
	return MsgInvalidBody
}
