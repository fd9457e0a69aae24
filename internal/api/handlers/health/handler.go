package health

import (
	"net/http"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
)

// HealthResponse HTTP response model
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Handler liveness probe
type Handler struct{}

// NewHandler создает новый экземпляр обработчика
func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
