package watchlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/domain"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type WatchlistRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lists []*domain.Watchlist) ([]*domain.Watchlist, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Watchlist, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Watchlist, error)
	Update(ctx context.Context, tx *gorm.DB, list *domain.Watchlist) error
	Delete(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type watchlistRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWatchlistRepo(db *gorm.DB, baseLog *logger.Logger) WatchlistRepo {
	return &watchlistRepo{db: db, log: baseLog.With("repo", "WatchlistRepo")}
}

func (r *watchlistRepo) Create(ctx context.Context, tx *gorm.DB, lists []*domain.Watchlist) ([]*domain.Watchlist, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(lists) == 0 {
		return []*domain.Watchlist{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *watchlistRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Watchlist, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Watchlist
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

func (r *watchlistRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Watchlist, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Watchlist
	if err := transaction.WithContext(ctx).
		Order("created_at, id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *watchlistRepo) Update(ctx context.Context, tx *gorm.DB, list *domain.Watchlist) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(list).Error
}

func (r *watchlistRepo) Delete(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.Watchlist{}).Error
}
