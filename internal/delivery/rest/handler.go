package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kerim-dauren/hostname/internal/application"
	"github.com/kerim-dauren/hostname/internal/delivery/common"
)

const maxBodySize = 1 << 20

// HealthReporter is implemented by background components whose state affects
// service health, such as the catalog reload scheduler.
type HealthReporter interface {
	IsHealthy() bool
}

type Handler struct {
	hostnameService application.HostnameChecker
	health          HealthReporter
}

// NewHandler creates a handler. health may be nil.
func NewHandler(hostnameService application.HostnameChecker, health HealthReporter) *Handler {
	return &Handler{
		hostnameService: hostnameService,
		health:          health,
	}
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req HostRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	common.WriteJSON(w, http.StatusOK, ValidateResponse{
		Host:  req.Host,
		Valid: h.hostnameService.Validate(r.Context(), req.Host),
	})
}

func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Host) == "" {
		common.WriteError(w, http.StatusBadRequest, "Host is required")
		return
	}

	result, err := h.hostnameService.Parse(r.Context(), req.Host, req.Normalize)
	if err != nil {
		writeServiceError(w, "Failed to parse host", err)
		return
	}

	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	var req HostRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Host) == "" {
		common.WriteError(w, http.StatusBadRequest, "Host is required")
		return
	}

	result, err := h.hostnameService.Match(r.Context(), req.Host)
	if err != nil {
		writeServiceError(w, "Failed to match host", err)
		return
	}

	response := MatchResponse{
		Host:      result.Host.String(),
		Matched:   result.Matched,
		Wildcard:  result.Wildcard,
		CheckedAt: result.CheckedAt.Format(time.RFC3339),
	}
	if result.Entry != nil {
		response.Entry = result.Entry.String()
	}

	common.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		common.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	stats, err := h.hostnameService.GetStats(r.Context())
	if err != nil {
		slog.Error("Failed to get stats", "error", err)
		common.WriteError(w, http.StatusInternalServerError, "Failed to get statistics")
		return
	}

	common.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		common.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.health != nil && !h.health.IsHealthy() {
		common.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "degraded",
			Message: "Catalog reloads are failing",
		})
		return
	}

	common.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Service is operational",
	})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		common.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, msg string, err error) {
	if !common.IsClientError(err) {
		slog.Error(msg, "error", err)
	}
	common.WriteDomainError(w, err)
}
