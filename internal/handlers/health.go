package handlers

import (
	"net/http"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/models"
)

type HealthHandler struct {
	message string
}

// NewHealthHandler returns a handler whose root payload carries message.
func NewHealthHandler(message string) *HealthHandler {
	return &HealthHandler{message: message}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Message: h.message})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
