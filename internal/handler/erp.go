package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/concretemix/smartmix/internal/erp"
	"github.com/concretemix/smartmix/internal/logger"
)

// ErpHandler handles inbound ERP synchronization webhooks
type ErpHandler struct {
	erpSvc erp.Service
}

// NewErpHandler creates a new ERP webhook handler
func NewErpHandler(erpSvc erp.Service) *ErpHandler {
	return &ErpHandler{erpSvc: erpSvc}
}

// SyncMaterials ingests a batch of material master rows
// @Summary Ingest material master data pushed by the ERP
// @Tags erp
// @Accept json
// @Produce json
// @Param X-ERP-TOKEN header string true "Shared webhook token"
// @Param request body []erp.MaterialSyncInput true "Material rows"
// @Success 200 {object} domain.SyncResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/erp/materials [post]
func (h *ErpHandler) SyncMaterials(w http.ResponseWriter, r *http.Request) {
	rows, ok := decodeRows[erp.MaterialSyncInput](w, r, "materials")
	if !ok {
		return
	}

	result, err := h.erpSvc.SyncMaterials(r.Context(), rows, clientIP(r))
	if err != nil {
		respondServiceError(w, r, "SyncMaterials", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// SyncPrices ingests a batch of material price rows
// @Summary Ingest material prices pushed by the ERP
// @Tags erp
// @Accept json
// @Produce json
// @Param X-ERP-TOKEN header string true "Shared webhook token"
// @Param request body []erp.PriceSyncInput true "Price rows"
// @Success 200 {object} domain.SyncResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/erp/material-prices [post]
func (h *ErpHandler) SyncPrices(w http.ResponseWriter, r *http.Request) {
	rows, ok := decodeRows[erp.PriceSyncInput](w, r, "material prices")
	if !ok {
		return
	}

	result, err := h.erpSvc.SyncPrices(r.Context(), rows, clientIP(r))
	if err != nil {
		respondServiceError(w, r, "SyncPrices", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// SyncTasks ingests a batch of production task rows
// @Summary Ingest production tasks pushed by the ERP
// @Tags erp
// @Accept json
// @Produce json
// @Param X-ERP-TOKEN header string true "Shared webhook token"
// @Param request body []erp.TaskSyncInput true "Task rows"
// @Success 200 {object} domain.SyncResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/erp/production-tasks [post]
func (h *ErpHandler) SyncTasks(w http.ResponseWriter, r *http.Request) {
	rows, ok := decodeRows[erp.TaskSyncInput](w, r, "production tasks")
	if !ok {
		return
	}

	result, err := h.erpSvc.SyncTasks(r.Context(), rows, clientIP(r))
	if err != nil {
		respondServiceError(w, r, "SyncTasks", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListSyncLogs returns recent synchronization audit entries
// @Summary List recent ERP sync log entries
// @Tags erp
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} domain.SyncLog
// @Router /api/v1/erp/sync-logs [get]
func (h *ErpHandler) ListSyncLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimitParam)
			return
		}
		limit = parsed
	}

	logs, err := h.erpSvc.ListSyncLogs(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "ListSyncLogs", err)
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

// decodeRows decodes a non-empty JSON array body. Row-level field
// validation happens in the sync service so one bad row cannot reject
// the whole batch.
func decodeRows[T any](w http.ResponseWriter, r *http.Request, label string) ([]T, bool) {
	log := logger.FromContext(r.Context())

	var rows []T
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		log.Warn("Failed to decode ERP payload", "data_type", label, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgBodyMustBeArray)
		return nil, false
	}
	if len(rows) == 0 {
		respondError(w, http.StatusBadRequest, ErrMsgEmptyBatch)
		return nil, false
	}
	return rows, true
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
