package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portside/vesselwatch-backend/internal/http/response"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
	"github.com/portside/vesselwatch-backend/internal/services"
)

type VesselHandler struct {
	log           *logger.Logger
	vesselService services.VesselService
}

func NewVesselHandler(log *logger.Logger, vesselService services.VesselService) *VesselHandler {
	return &VesselHandler{
		log:           log.With("handler", "VesselHandler"),
		vesselService: vesselService,
	}
}

func (h *VesselHandler) AddVessel(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.VesselInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.vesselService.AddVessels(c.Request.Context(), nil, listID, []services.VesselInput{req})
	if err != nil {
		h.log.Error("AddVessel failed", "error", err, "list_id", listID)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, created[0])
}

func (h *VesselHandler) GetListVessels(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	vessels, err := h.vesselService.GetListVessels(c.Request.Context(), nil, listID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"vessels": vessels})
}

func (h *VesselHandler) UpdateVessel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.VesselInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.vesselService.UpdateVessel(c.Request.Context(), nil, id, req)
	if err != nil {
		h.log.Error("UpdateVessel failed", "error", err, "vessel_id", id)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func (h *VesselHandler) DeleteVessel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.vesselService.DeleteVessel(c.Request.Context(), nil, id); err != nil {
		h.log.Error("DeleteVessel failed", "error", err, "vessel_id", id)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}

func (h *VesselHandler) ImportCSV(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "missing_file", err)
		return
	}
	defer file.Close()

	count, err := h.vesselService.ImportCSV(c.Request.Context(), listID, file)
	if err != nil {
		h.log.Error("ImportCSV failed", "error", err, "list_id", listID)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"imported": count})
}

func (h *VesselHandler) ExportCSV(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "vessels-"+listID.String()+".csv"))
	if err := h.vesselService.ExportCSV(c.Request.Context(), listID, c.Writer); err != nil {
		h.log.Error("ExportCSV failed", "error", err, "list_id", listID)
		response.RespondServiceError(c, err)
		return
	}
}
