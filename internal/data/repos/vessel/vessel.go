package vessel

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/domain"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type VesselRepo interface {
	Create(ctx context.Context, tx *gorm.DB, vessels []*domain.Vessel) ([]*domain.Vessel, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Vessel, error)
	GetByListIDs(ctx context.Context, tx *gorm.DB, listIDs []uuid.UUID) ([]*domain.Vessel, error)
	// GetAll returns every vessel across every list in stable snapshot
	// order (created_at, id). The reconciliation pipeline depends on this
	// order for deterministic reports.
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Vessel, error)
	Update(ctx context.Context, tx *gorm.DB, v *domain.Vessel) error
	Delete(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	DeleteByListIDs(ctx context.Context, tx *gorm.DB, listIDs []uuid.UUID) error
}

type vesselRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVesselRepo(db *gorm.DB, baseLog *logger.Logger) VesselRepo {
	return &vesselRepo{db: db, log: baseLog.With("repo", "VesselRepo")}
}

func (r *vesselRepo) Create(ctx context.Context, tx *gorm.DB, vessels []*domain.Vessel) ([]*domain.Vessel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(vessels) == 0 {
		return []*domain.Vessel{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&vessels).Error; err != nil {
		return nil, err
	}
	return vessels, nil
}

func (r *vesselRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Vessel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Vessel
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

func (r *vesselRepo) GetByListIDs(ctx context.Context, tx *gorm.DB, listIDs []uuid.UUID) ([]*domain.Vessel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Vessel
	if len(listIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("list_id IN ?", listIDs).
		Order("created_at, id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *vesselRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Vessel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Vessel
	if err := transaction.WithContext(ctx).
		Order("created_at, id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *vesselRepo) Update(ctx context.Context, tx *gorm.DB, v *domain.Vessel) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(v).Error
}

func (r *vesselRepo) Delete(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.Vessel{}).Error
}

func (r *vesselRepo) DeleteByListIDs(ctx context.Context, tx *gorm.DB, listIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(listIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("list_id IN ?", listIDs).
		Delete(&domain.Vessel{}).Error
}
