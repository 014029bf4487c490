package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/clients/redis"
	"github.com/portside/vesselwatch-backend/internal/data/repos"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
	"github.com/portside/vesselwatch-backend/internal/reconcile"
)

// ReconcileService runs the identity reconciliation pipeline:
// snapshot -> indices -> {conflict passes, aggregation} -> reports.
// The pipeline is request-scoped and pure; the only cross-request state is
// the serialized report cache, which the write path invalidates on every
// vessel or list mutation.
type ReconcileService interface {
	ConflictReport(ctx context.Context) ([]byte, error)
	AggregationReport(ctx context.Context) ([]byte, error)
}

type reconcileService struct {
	db            *gorm.DB
	log           *logger.Logger
	watchlistRepo repos.WatchlistRepo
	vesselRepo    repos.VesselRepo
	cache         redis.ReportCache
}

func NewReconcileService(
	db *gorm.DB,
	baseLog *logger.Logger,
	watchlistRepo repos.WatchlistRepo,
	vesselRepo repos.VesselRepo,
	cache redis.ReportCache,
) ReconcileService {
	return &reconcileService{
		db:            db,
		log:           baseLog.With("service", "ReconcileService"),
		watchlistRepo: watchlistRepo,
		vesselRepo:    vesselRepo,
		cache:         cache,
	}
}

func (s *reconcileService) ConflictReport(ctx context.Context) ([]byte, error) {
	return s.report(ctx, redis.ConflictReportKey)
}

func (s *reconcileService) AggregationReport(ctx context.Context) ([]byte, error) {
	return s.report(ctx, redis.AggregationReportKey)
}

func (s *reconcileService) report(ctx context.Context, key string) ([]byte, error) {
	if s.cache != nil {
		raw, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn("Report cache read failed", "key", key, "error", err)
		} else if ok {
			return raw, nil
		}
	}

	conflicts, aggregated, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, redis.ConflictReportKey, conflicts); err != nil {
			s.log.Warn("Report cache write failed", "error", err)
		}
		if err := s.cache.Set(ctx, redis.AggregationReportKey, aggregated); err != nil {
			s.log.Warn("Report cache write failed", "error", err)
		}
	}

	if key == redis.ConflictReportKey {
		return conflicts, nil
	}
	return aggregated, nil
}

// compute produces both reports from one snapshot. Both endpoints share the
// pipeline, so one recomputation refreshes both cache entries.
func (s *reconcileService) compute(ctx context.Context) (conflictsJSON, aggregatedJSON []byte, err error) {
	tracer := otel.Tracer("vesselwatch/reconcile")

	ctx, span := tracer.Start(ctx, "reconcile.pipeline")
	defer span.End()

	snapshot, err := s.fetchSnapshot(ctx)
	if err != nil {
		// No partial report: a failed fetch aborts the whole computation.
		return nil, nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	lookup := reconcile.NewListLookup(snapshot.Lists)
	for _, orphan := range snapshot.OrphanListIDs(lookup) {
		s.log.Warn("Vessel references a missing list; excluding its list metadata from the report",
			"list_id", orphan)
	}

	_, indexSpan := tracer.Start(ctx, "reconcile.index")
	idx := reconcile.BuildIndex(snapshot.Vessels)
	indexSpan.End()

	// The three detector passes and the aggregation pass consume only the
	// read-only indices, never each other's output, so they run in
	// parallel and join before formatting.
	_, computeSpan := tracer.Start(ctx, "reconcile.compute")
	var (
		mmsiDupes       []reconcile.ConflictGroup
		imoDupes        []reconcile.ConflictGroup
		inconsistencies []reconcile.InconsistencyGroup
		aggregated      []reconcile.AggregatedVessel
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		mmsiDupes = reconcile.DetectDuplicates(idx.ByMMSI)
		return nil
	})
	g.Go(func() error {
		imoDupes = reconcile.DetectDuplicates(idx.ByIMO)
		return nil
	})
	g.Go(func() error {
		inconsistencies = reconcile.DetectInconsistencies(idx.ByMMSI)
		return nil
	})
	g.Go(func() error {
		aggregated = reconcile.Aggregate(idx.ByMMSI, lookup)
		return nil
	})
	if err := g.Wait(); err != nil {
		computeSpan.End()
		return nil, nil, err
	}
	computeSpan.End()

	set := reconcile.ConflictSet{
		MMSIDuplicates:  mmsiDupes,
		IMODuplicates:   imoDupes,
		Inconsistencies: inconsistencies,
	}

	conflictReport := reconcile.BuildConflictReport(set, lookup)
	aggregationReport := reconcile.BuildAggregationReport(aggregated)

	s.log.Info("Reconciliation pipeline complete",
		"vessels", len(snapshot.Vessels),
		"lists", len(snapshot.Lists),
		"total_conflicts", conflictReport.TotalConflicts,
		"affected_lists", len(set.AffectedListIDs()),
		"unique_vessels", aggregationReport.TotalUniqueVessels,
	)

	conflictsJSON, err = json.Marshal(conflictReport)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal conflict report: %w", err)
	}
	aggregatedJSON, err = json.Marshal(aggregationReport)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal aggregation report: %w", err)
	}
	return conflictsJSON, aggregatedJSON, nil
}

// fetchSnapshot reads every vessel and every list inside one repeatable-read
// transaction so concurrent edits cannot mix pre- and post-edit state within
// a single report. This is the pipeline's only suspension point and inherits
// the caller's cancellation.
func (s *reconcileService) fetchSnapshot(ctx context.Context) (reconcile.Snapshot, error) {
	var snapshot reconcile.Snapshot
	tx := s.db.WithContext(ctx).Begin(&sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if tx.Error != nil {
		// sqlite rejects explicit isolation levels; its transactions are
		// serializable anyway, so a plain transaction gives the same read.
		tx = s.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		return snapshot, tx.Error
	}
	defer tx.Rollback()

	vessels, err := s.vesselRepo.GetAll(ctx, tx)
	if err != nil {
		return snapshot, err
	}
	lists, err := s.watchlistRepo.GetAll(ctx, tx)
	if err != nil {
		return snapshot, err
	}
	snapshot.Vessels = vessels
	snapshot.Lists = lists
	return snapshot, nil
}
