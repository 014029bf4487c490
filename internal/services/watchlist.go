package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/clients/redis"
	"github.com/portside/vesselwatch-backend/internal/data/repos"
	"github.com/portside/vesselwatch-backend/internal/domain"
	"github.com/portside/vesselwatch-backend/internal/platform/apierr"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type WatchlistService interface {
	CreateList(ctx context.Context, tx *gorm.DB, name, color string) (*domain.Watchlist, error)
	GetLists(ctx context.Context, tx *gorm.DB) ([]*domain.Watchlist, error)
	GetList(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Watchlist, error)
	UpdateList(ctx context.Context, tx *gorm.DB, id uuid.UUID, name, color string) (*domain.Watchlist, error)
	DeleteList(ctx context.Context, id uuid.UUID) error
}

type watchlistService struct {
	db            *gorm.DB
	log           *logger.Logger
	watchlistRepo repos.WatchlistRepo
	vesselRepo    repos.VesselRepo
	cache         redis.ReportCache
}

func NewWatchlistService(
	db *gorm.DB,
	baseLog *logger.Logger,
	watchlistRepo repos.WatchlistRepo,
	vesselRepo repos.VesselRepo,
	cache redis.ReportCache,
) WatchlistService {
	return &watchlistService{
		db:            db,
		log:           baseLog.With("service", "WatchlistService"),
		watchlistRepo: watchlistRepo,
		vesselRepo:    vesselRepo,
		cache:         cache,
	}
}

func (s *watchlistService) CreateList(ctx context.Context, tx *gorm.DB, name, color string) (*domain.Watchlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apierr.New(http.StatusBadRequest, "list_name_required", fmt.Errorf("a list name is required"))
	}
	lists, err := s.watchlistRepo.Create(ctx, tx, []*domain.Watchlist{
		{ID: uuid.New(), Name: name, Color: strings.TrimSpace(color)},
	})
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	s.invalidateReports(ctx)
	return lists[0], nil
}

func (s *watchlistService) GetLists(ctx context.Context, tx *gorm.DB) ([]*domain.Watchlist, error) {
	lists, err := s.watchlistRepo.GetAll(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}
	return lists, nil
}

func (s *watchlistService) GetList(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Watchlist, error) {
	lists, err := s.watchlistRepo.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("load list: %w", err)
	}
	if len(lists) == 0 {
		return nil, apierr.New(http.StatusNotFound, "list_not_found", fmt.Errorf("list %s not found", id))
	}
	return lists[0], nil
}

func (s *watchlistService) UpdateList(ctx context.Context, tx *gorm.DB, id uuid.UUID, name, color string) (*domain.Watchlist, error) {
	list, err := s.GetList(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		list.Name = name
	}
	if color = strings.TrimSpace(color); color != "" {
		list.Color = color
	}
	if err := s.watchlistRepo.Update(ctx, tx, list); err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	s.invalidateReports(ctx)
	return list, nil
}

// DeleteList removes the list and every vessel it owns in one transaction.
func (s *watchlistService) DeleteList(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetList(ctx, nil, id); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vesselRepo.DeleteByListIDs(ctx, tx, []uuid.UUID{id}); err != nil {
			return fmt.Errorf("delete list vessels: %w", err)
		}
		if err := s.watchlistRepo.Delete(ctx, tx, []uuid.UUID{id}); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidateReports(ctx)
	return nil
}

func (s *watchlistService) invalidateReports(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Report cache invalidation failed", "error", err)
	}
}
