package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portside/vesselwatch-backend/internal/http/response"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
	"github.com/portside/vesselwatch-backend/internal/services"
)

type DocumentHandler struct {
	log             *logger.Logger
	documentService services.DocumentService
}

func NewDocumentHandler(log *logger.Logger, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		log:             log.With("handler", "DocumentHandler"),
		documentService: documentService,
	}
}

type documentRequest struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	doc, err := h.documentService.CreateDocument(c.Request.Context(), nil, req.Name, req.Payload)
	if err != nil {
		h.log.Error("CreateDocument failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, doc)
}

func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	docs, err := h.documentService.GetDocuments(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("GetDocuments failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"documents": docs})
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.documentService.GetDocument(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, doc)
}

func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	doc, err := h.documentService.UpdateDocument(c.Request.Context(), nil, id, req.Name, req.Payload)
	if err != nil {
		h.log.Error("UpdateDocument failed", "error", err, "document_id", id)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, doc)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.documentService.DeleteDocument(c.Request.Context(), nil, id); err != nil {
		h.log.Error("DeleteDocument failed", "error", err, "document_id", id)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}
