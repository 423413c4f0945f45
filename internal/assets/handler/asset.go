package handler

import (
	"encoding/json"
	"net/http"

	"roomly/internal/assets/service"
	"roomly/pkg/httputil"
	"roomly/pkg/logger"
	"roomly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AssetHandler struct {
	service service.AssetService
	log     *logger.Logger
}

func NewAssetHandler(service service.AssetService, log *logger.Logger) *AssetHandler {
	return &AssetHandler{
		service: service,
		log:     log,
	}
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	assets, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, assets)
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var asset model.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Create(r.Context(), &asset); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if _, err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *AssetHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/assets", h.List)
	router.POST("/api/v1/assets", h.Create)
	router.DELETE("/api/v1/assets/:id", h.Delete)
}
