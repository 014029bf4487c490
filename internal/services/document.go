package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/data/repos"
	"github.com/portside/vesselwatch-backend/internal/domain"
	"github.com/portside/vesselwatch-backend/internal/platform/apierr"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type DocumentService interface {
	CreateDocument(ctx context.Context, tx *gorm.DB, name string, payload json.RawMessage) (*domain.Document, error)
	GetDocuments(ctx context.Context, tx *gorm.DB) ([]*domain.Document, error)
	GetDocument(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Document, error)
	UpdateDocument(ctx context.Context, tx *gorm.DB, id uuid.UUID, name string, payload json.RawMessage) (*domain.Document, error)
	DeleteDocument(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type documentService struct {
	db           *gorm.DB
	log          *logger.Logger
	documentRepo repos.DocumentRepo
}

func NewDocumentService(db *gorm.DB, baseLog *logger.Logger, documentRepo repos.DocumentRepo) DocumentService {
	return &documentService{
		db:           db,
		log:          baseLog.With("service", "DocumentService"),
		documentRepo: documentRepo,
	}
}

func (s *documentService) CreateDocument(ctx context.Context, tx *gorm.DB, name string, payload json.RawMessage) (*domain.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apierr.New(http.StatusBadRequest, "document_name_required", fmt.Errorf("a document name is required"))
	}
	payload, err := normalizePayload(payload)
	if err != nil {
		return nil, err
	}
	docs, err := s.documentRepo.Create(ctx, tx, []*domain.Document{
		{ID: uuid.New(), Name: name, Payload: datatypes.JSON(payload)},
	})
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return docs[0], nil
}

func (s *documentService) GetDocuments(ctx context.Context, tx *gorm.DB) ([]*domain.Document, error) {
	docs, err := s.documentRepo.GetAll(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) GetDocument(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Document, error) {
	docs, err := s.documentRepo.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if len(docs) == 0 {
		return nil, apierr.New(http.StatusNotFound, "document_not_found", fmt.Errorf("document %s not found", id))
	}
	return docs[0], nil
}

func (s *documentService) UpdateDocument(ctx context.Context, tx *gorm.DB, id uuid.UUID, name string, payload json.RawMessage) (*domain.Document, error) {
	doc, err := s.GetDocument(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		doc.Name = name
	}
	if payload != nil {
		payload, err = normalizePayload(payload)
		if err != nil {
			return nil, err
		}
		doc.Payload = datatypes.JSON(payload)
	}
	if err := s.documentRepo.Update(ctx, tx, doc); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if _, err := s.GetDocument(ctx, tx, id); err != nil {
		return err
	}
	if err := s.documentRepo.Delete(ctx, tx, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// normalizePayload keeps the payload opaque but refuses bytes that are not
// JSON at all.
func normalizePayload(payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 {
		return json.RawMessage(`{}`), nil
	}
	if !json.Valid(payload) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_payload", fmt.Errorf("document payload is not valid json"))
	}
	return payload, nil
}
