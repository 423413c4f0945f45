package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"roomly/internal/rooms/service"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/httputil"
	"roomly/pkg/logger"
	"roomly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RoomHandler struct {
	service service.RoomService
	log     *logger.Logger
}

func NewRoomHandler(service service.RoomService, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log,
	}
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	filter := service.ListFilter{
		Query:    query.Get("q"),
		Features: query["features"],
	}
	if s := query.Get("min_capacity"); s != "" {
		min, err := strconv.Atoi(s)
		if err != nil || min < 0 {
			httputil.WriteError(w, apperrors.InvalidInput("invalid min_capacity parameter: "+s))
			return
		}
		filter.MinCapacity = min
	}

	rooms, err := h.service.List(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, rooms)
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	room, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, room)
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// An empty body is a minimal creation: placeholder name, capacity 0,
	// no features. The create-then-edit flow depends on it.
	var room model.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil && !errors.Is(err, io.EOF) {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Create(r.Context(), &room); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, room)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.RoomUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	room, err := h.service.Update(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, room)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	// Deleting an absent id is still terminal success.
	if _, err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *RoomHandler) MassUpdate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var updates map[string]*model.RoomUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	applied, err := h.service.MassUpdate(r.Context(), updates)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]int{"updated": applied})
}

// Features returns the built-in feature catalog in display order, so
// clients render checkboxes without hardcoding the tag set.
func (h *RoomHandler) Features(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	type feature struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}

	catalog := make([]feature, 0, len(model.PredefinedFeatureKeys))
	for _, key := range model.PredefinedFeatureKeys {
		catalog = append(catalog, feature{Key: key, Label: model.FeatureLabel(key)})
	}

	httputil.WriteSuccess(w, catalog)
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/features", h.Features)
	router.GET("/api/v1/rooms", h.List)
	router.POST("/api/v1/rooms", h.Create)
	router.POST("/api/v1/rooms/mass-update", h.MassUpdate)
	router.GET("/api/v1/rooms/:id", h.GetByID)
	router.PATCH("/api/v1/rooms/:id", h.Update)
	router.DELETE("/api/v1/rooms/:id", h.Delete)
}
