package handlers

import (
	"net/http"

	"focussync-backend/application/ports"
	"focussync-backend/infrastructure/config"
	"focussync-backend/pkg/common"
	"focussync-backend/pkg/utils"

	"go.uber.org/zap"
)

// errorDetailLimit caps how much backing-store error detail is surfaced
const errorDetailLimit = 80

// DiagnosticsHandler serves the liveness message and the store probe
type DiagnosticsHandler struct {
	cfg    *config.Config
	store  ports.StoreHealth
	logger *zap.Logger
}

// NewDiagnosticsHandler creates a diagnostics handler
func NewDiagnosticsHandler(cfg *config.Config, store ports.StoreHealth, logger *zap.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

// RootResponse is the root liveness message
type RootResponse struct {
	Message string `json:"message"`
}

// StoreProbeResponse reports backend and store connectivity for GET /test
type StoreProbeResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	TableName        string   `json:"table_name"`
	Region           string   `json:"region"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root handles GET /
func (h *DiagnosticsHandler) Root(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, RootResponse{Message: "FocusSync backend running"})
}

// TestStore handles GET /test
func (h *DiagnosticsHandler) TestStore(w http.ResponseWriter, r *http.Request) {
	resp := StoreProbeResponse{
		Backend:          "running",
		Database:         "not available",
		TableName:        h.cfg.TableName,
		Region:           h.cfg.AWSRegion,
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store == nil {
		common.RespondJSON(w, http.StatusOK, resp)
		return
	}

	if err := h.store.Ping(r.Context()); err != nil {
		resp.Database = "error: " + utils.Truncate(err.Error(), errorDetailLimit)
		h.logger.Warn("Store probe failed", zap.Error(err))
		common.RespondJSON(w, http.StatusOK, resp)
		return
	}

	resp.Database = "connected"
	resp.ConnectionStatus = "connected"

	collections, err := h.store.ListCollections(r.Context(), 10)
	if err != nil {
		resp.Database = "connected but error: " + utils.Truncate(err.Error(), errorDetailLimit)
		common.RespondJSON(w, http.StatusOK, resp)
		return
	}
	resp.Collections = collections

	common.RespondJSON(w, http.StatusOK, resp)
}
