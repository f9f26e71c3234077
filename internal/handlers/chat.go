package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/middleware"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/models"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/services"
)

// Parts above this size are spooled to temporary files while parsing.
const multipartMemoryBytes = 32 << 20

type replyGenerator interface {
	Generate(ctx context.Context, payload models.GenerateRequest) (string, error)
}

type ChatHandler struct {
	generator      replyGenerator
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewChatHandler(generator replyGenerator, maxUploadBytes int64, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		generator:      generator,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log := h.logger.With(zap.String("request_id", middleware.GetRequestID(r.Context())))

	// Check content length
	if r.ContentLength > h.maxUploadBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("Request body too large"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	message, uploads, err := parseChatForm(r)
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("Request body too large"))
			return
		}
		log.Error("failed to parse chat form", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp("Internal server error"))
		return
	}

	log.Info("received chat request", zap.Int("message_length", len(message)), zap.Int("files", len(uploads)))

	files := make([]models.EncodedFile, 0, len(uploads))
	for i, upload := range uploads {
		log.Info("processing file",
			zap.Int("index", i+1),
			zap.String("filename", upload.Filename),
			zap.String("content_type", upload.Header.Get("Content-Type")),
			zap.Int64("size", upload.Size),
		)
		file, err := services.EncodeUpload(upload)
		if err != nil {
			log.Error("failed to encode upload", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResp("Internal server error"))
			return
		}
		files = append(files, file)
	}

	log.Info("forwarding to generation service", zap.Int("files", len(files)))

	// The outbound call runs to completion even if the caller goes away.
	reply, err := h.generator.Generate(context.WithoutCancel(r.Context()), models.GenerateRequest{
		Prompt: message,
		Files:  files,
	})
	if err != nil {
		h.handleGenerateError(w, log, err)
		return
	}

	log.Info("generation service responded", zap.Int("status", http.StatusOK))
	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

func (h *ChatHandler) handleGenerateError(w http.ResponseWriter, log *zap.Logger, err error) {
	var unavailable *services.UnavailableError
	var upstream *services.UpstreamError

	switch {
	case errors.As(err, &unavailable):
		log.Error("generation service unavailable", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResp("AI service is currently unavailable"))
	case errors.As(err, &upstream):
		log.Error("generation service responded with error",
			zap.Int("status", upstream.StatusCode),
			zap.String("body", upstream.Body),
		)
		writeJSON(w, http.StatusInternalServerError, errorResp("Error communicating with AI service: "+upstream.Body))
	default:
		log.Error("chat request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp("Internal server error"))
	}
}

// parseChatForm reads the message field and the ordered file parts. A body
// that is not multipart yields its url-encoded message, if any, and no files.
func parseChatForm(r *http.Request) (string, []*multipart.FileHeader, error) {
	err := r.ParseMultipartForm(multipartMemoryBytes)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return "", nil, err
	}

	message := r.PostFormValue("message")

	var uploads []*multipart.FileHeader
	if r.MultipartForm != nil {
		uploads = r.MultipartForm.File["files"]
	}
	return message, uploads, nil
}
