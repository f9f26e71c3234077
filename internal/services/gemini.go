package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/models"
)

type GeminiService struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	extractor *FileExtractService
	logger    *zap.Logger
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, extractor *FileExtractService, logger *zap.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:    client,
		model:     client.GenerativeModel(modelName),
		extractor: extractor,
		logger:    logger,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Generate sends the prompt and the supported attachments to Gemini as one
// multimodal request and returns the concatenated candidate text.
func (s *GeminiService) Generate(ctx context.Context, prompt string, files []models.EncodedFile) (string, error) {
	parts := buildParts(prompt, files, s.extractor, s.logger)
	if len(parts) == 0 {
		return "", &ValidationError{Message: "No supported content in request"}
	}

	s.logger.Info("sending request to Gemini", zap.Int("parts", len(parts)))

	resp, err := s.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			s.logger.Warn("Gemini candidate stopped early",
				zap.Int("candidate", i),
				zap.Any("finish_reason", cand.FinishReason),
			)
		}
	}

	return extractText(resp), nil
}

// buildParts keeps the prompt first, then one part per usable file in input
// order. Media is inlined; documents are converted to text; the rest is
// skipped.
func buildParts(prompt string, files []models.EncodedFile, extractor *FileExtractService, logger *zap.Logger) []genai.Part {
	var parts []genai.Part
	if prompt != "" {
		parts = append(parts, genai.Text(prompt))
	}

	for _, file := range files {
		log := logger.With(zap.String("filename", file.Filename), zap.String("content_type", file.ContentType))
		log.Info("processing file")

		data, err := base64.StdEncoding.DecodeString(file.Content)
		if err != nil {
			log.Error("failed to decode file content", zap.Error(err))
			continue
		}

		switch {
		case strings.HasPrefix(file.ContentType, "image/"),
			strings.HasPrefix(file.ContentType, "video/"):
			parts = append(parts, genai.Blob{MIMEType: file.ContentType, Data: data})
		case strings.HasPrefix(file.ContentType, "audio/"):
			log.Warn("audio processing might not be supported by current model")
			parts = append(parts, genai.Blob{MIMEType: file.ContentType, Data: data})
		case extractor.CanExtract(file.ContentType, file.Filename):
			text, err := extractor.ExtractText(data, file.ContentType, file.Filename)
			if err != nil {
				log.Error("failed to extract text from file", zap.Error(err))
				continue
			}
			parts = append(parts, genai.Text(fmt.Sprintf("Contents of %s:\n%s", file.Filename, text)))
		default:
			log.Warn("unsupported file type")
		}
	}

	return parts
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

// IsAPIKeyError reports whether Gemini rejected the configured credentials.
func IsAPIKeyError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return true
	}
	return strings.Contains(err.Error(), "API key")
}

// IsQuotaError reports whether Gemini refused the call for quota reasons.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "quota")
}
