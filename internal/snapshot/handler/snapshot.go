package handler

import (
	"io"
	"net/http"

	"roomly/internal/snapshot/service"
	"roomly/pkg/httputil"
	"roomly/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// maxImportBytes caps uploaded snapshot documents.
const maxImportBytes = 32 << 20

type SnapshotHandler struct {
	service service.SnapshotService
	log     *logger.Logger
}

func NewSnapshotHandler(service service.SnapshotService, log *logger.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		service: service,
		log:     log,
	}
}

// Export writes the snapshot document itself, unwrapped, so the response
// body round-trips straight back through Import.
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	snapshot, err := h.service.Export(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, snapshot)
}

func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Failed to read request body"})
		return
	}

	snapshot, err := h.service.Import(r.Context(), data)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]int{
		"rooms":    len(snapshot.Rooms),
		"assets":   len(snapshot.Assets),
		"bookings": len(snapshot.Bookings),
	})
}

func (h *SnapshotHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/snapshot", h.Export)
	router.PUT("/api/v1/snapshot", h.Import)
}
