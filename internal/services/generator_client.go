package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/models"
)

// GeneratorClient performs the single outbound call from the relay to the
// generation service.
type GeneratorClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGeneratorClient(baseURL string, timeout time.Duration) *GeneratorClient {
	return &GeneratorClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate posts payload to {baseURL}/generate and returns the reply text.
// Transport failures come back as *UnavailableError, non-200 answers as
// *UpstreamError. There is exactly one attempt.
func (c *GeneratorClient) Generate(ctx context.Context, payload models.GenerateRequest) (string, error) {
	if payload.Files == nil {
		payload.Files = []models.EncodedFile{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode generate payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	// Client.Timeout also bounds the body read; a failure here is still a
	// transport failure.
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UnavailableError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var reply models.GenerateReply
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if reply.Reply == nil {
		return "", errors.New("generate response has no reply field")
	}

	return *reply.Reply, nil
}
