package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/http/response"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
	"github.com/portside/vesselwatch-backend/internal/services"
)

type WatchlistHandler struct {
	log              *logger.Logger
	watchlistService services.WatchlistService
}

func NewWatchlistHandler(log *logger.Logger, watchlistService services.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		log:              log.With("handler", "WatchlistHandler"),
		watchlistService: watchlistService,
	}
}

type watchlistRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *WatchlistHandler) CreateList(c *gin.Context) {
	var req watchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	list, err := h.watchlistService.CreateList(c.Request.Context(), nil, req.Name, req.Color)
	if err != nil {
		h.log.Error("CreateList failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, list)
}

func (h *WatchlistHandler) GetLists(c *gin.Context) {
	lists, err := h.watchlistService.GetLists(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("GetLists failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"lists": lists})
}

func (h *WatchlistHandler) GetList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.watchlistService.GetList(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, list)
}

func (h *WatchlistHandler) UpdateList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req watchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	list, err := h.watchlistService.UpdateList(c.Request.Context(), nil, id, req.Name, req.Color)
	if err != nil {
		h.log.Error("UpdateList failed", "error", err, "list_id", id)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, list)
}

func (h *WatchlistHandler) DeleteList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.watchlistService.DeleteList(c.Request.Context(), id); err != nil {
		h.log.Error("DeleteList failed", "error", err, "list_id", id)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}
