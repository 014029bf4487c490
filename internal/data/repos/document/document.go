package document

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/domain"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type DocumentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, docs []*domain.Document) ([]*domain.Document, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Document, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Document, error)
	Update(ctx context.Context, tx *gorm.DB, doc *domain.Document) error
	Delete(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type documentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
	return &documentRepo{db: db, log: baseLog.With("repo", "DocumentRepo")}
}

func (r *documentRepo) Create(ctx context.Context, tx *gorm.DB, docs []*domain.Document) ([]*domain.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(docs) == 0 {
		return []*domain.Document{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Document
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *documentRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Document
	if err := transaction.WithContext(ctx).
		Order("created_at, id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *documentRepo) Update(ctx context.Context, tx *gorm.DB, doc *domain.Document) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(doc).Error
}

func (r *documentRepo) Delete(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.Document{}).Error
}
