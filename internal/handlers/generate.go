package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/middleware"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/models"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/services"
)

type textGenerator interface {
	Generate(ctx context.Context, prompt string, files []models.EncodedFile) (string, error)
}

// GenerateHandler serves the generation service's /generate endpoint. A nil
// generator means no Gemini API key was configured.
type GenerateHandler struct {
	generator    textGenerator
	maxBodyBytes int64
	logger       *zap.Logger
}

func NewGenerateHandler(generator textGenerator, maxBodyBytes int64, logger *zap.Logger) *GenerateHandler {
	return &GenerateHandler{
		generator:    generator,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := h.logger.With(zap.String("request_id", middleware.GetRequestID(r.Context())))

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, generateErrorResp("Invalid request body", ""))
		return
	}

	log.Info("received generate request", zap.Int("prompt_length", len(req.Prompt)), zap.Int("files", len(req.Files)))

	if req.Prompt == "" && len(req.Files) == 0 {
		log.Warn("no prompt or files provided")
		writeJSON(w, http.StatusBadRequest, generateErrorResp("Prompt or files are required", ""))
		return
	}

	if h.generator == nil {
		log.Error("no Gemini API key configured")
		writeJSON(w, http.StatusInternalServerError, generateErrorResp("Gemini API key not configured", ""))
		return
	}

	reply, err := h.generator.Generate(r.Context(), req.Prompt, req.Files)
	if err != nil {
		log.Error("error generating response", zap.Error(err))

		var validation *services.ValidationError
		switch {
		case errors.As(err, &validation):
			writeJSON(w, http.StatusBadRequest, generateErrorResp(validation.Message, ""))
		case services.IsAPIKeyError(err):
			writeJSON(w, http.StatusUnauthorized, generateErrorResp("Invalid API key", ""))
		case services.IsQuotaError(err):
			writeJSON(w, http.StatusTooManyRequests, generateErrorResp("API quota exceeded", ""))
		default:
			writeJSON(w, http.StatusInternalServerError, generateErrorResp("Failed to generate response", err.Error()))
		}
		return
	}

	log.Info("Gemini response received", zap.Int("reply_length", len(reply)))
	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
