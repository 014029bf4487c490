package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
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

// VesselInput is one vessel row as submitted by the UI or a CSV import.
type VesselInput struct {
	MMSI         string `json:"mmsi"`
	IMO          string `json:"imo"`
	Name         string `json:"name"`
	Callsign     string `json:"callsign"`
	Flag         string `json:"flag"`
	LastPosition string `json:"lastposition"`
	Note         string `json:"note"`
}

var csvHeader = []string{"mmsi", "imo", "name", "callsign", "flag", "lastposition", "note"}

type VesselService interface {
	AddVessels(ctx context.Context, tx *gorm.DB, listID uuid.UUID, inputs []VesselInput) ([]*domain.Vessel, error)
	GetListVessels(ctx context.Context, tx *gorm.DB, listID uuid.UUID) ([]*domain.Vessel, error)
	UpdateVessel(ctx context.Context, tx *gorm.DB, id uuid.UUID, input VesselInput) (*domain.Vessel, error)
	DeleteVessel(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ImportCSV(ctx context.Context, listID uuid.UUID, r io.Reader) (int, error)
	ExportCSV(ctx context.Context, listID uuid.UUID, w io.Writer) error
}

type vesselService struct {
	db            *gorm.DB
	log           *logger.Logger
	watchlistRepo repos.WatchlistRepo
	vesselRepo    repos.VesselRepo
	cache         redis.ReportCache
}

func NewVesselService(
	db *gorm.DB,
	baseLog *logger.Logger,
	watchlistRepo repos.WatchlistRepo,
	vesselRepo repos.VesselRepo,
	cache redis.ReportCache,
) VesselService {
	return &vesselService{
		db:            db,
		log:           baseLog.With("service", "VesselService"),
		watchlistRepo: watchlistRepo,
		vesselRepo:    vesselRepo,
		cache:         cache,
	}
}

// normalize trims identifier whitespace and validates shape. Trimming and
// validation live here on the write path; the reconciliation engine treats
// whatever is stored as an opaque exact-match string.
func (in *VesselInput) normalize() error {
	in.MMSI = strings.TrimSpace(in.MMSI)
	in.IMO = strings.TrimSpace(in.IMO)
	in.Name = strings.TrimSpace(in.Name)
	in.Callsign = strings.TrimSpace(in.Callsign)
	in.Flag = strings.TrimSpace(in.Flag)
	in.LastPosition = strings.TrimSpace(in.LastPosition)
	in.Note = strings.TrimSpace(in.Note)

	if in.MMSI != "" && !isDigits(in.MMSI, 9) {
		return apierr.New(http.StatusBadRequest, "invalid_mmsi", fmt.Errorf("mmsi must be a 9-digit number: %q", in.MMSI))
	}
	if in.IMO != "" && !isDigits(in.IMO, 7) {
		return apierr.New(http.StatusBadRequest, "invalid_imo", fmt.Errorf("imo must be a 7-digit number: %q", in.IMO))
	}
	return nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *vesselService) AddVessels(ctx context.Context, tx *gorm.DB, listID uuid.UUID, inputs []VesselInput) ([]*domain.Vessel, error) {
	if err := s.ensureList(ctx, tx, listID); err != nil {
		return nil, err
	}
	rows := make([]*domain.Vessel, 0, len(inputs))
	for i := range inputs {
		in := inputs[i]
		if err := in.normalize(); err != nil {
			return nil, err
		}
		rows = append(rows, &domain.Vessel{
			ID:           uuid.New(),
			ListID:       listID,
			MMSI:         in.MMSI,
			IMO:          in.IMO,
			Name:         in.Name,
			Callsign:     in.Callsign,
			Flag:         in.Flag,
			LastPosition: in.LastPosition,
			Note:         in.Note,
		})
	}
	created, err := s.vesselRepo.Create(ctx, tx, rows)
	if err != nil {
		return nil, fmt.Errorf("create vessels: %w", err)
	}
	// Inside a caller-owned transaction the rows are not visible yet, and an
	// invalidation now would let a concurrent report re-cache the pre-commit
	// snapshot with no TTL to age it out. The caller invalidates after commit.
	if tx == nil {
		s.invalidateReports(ctx)
	}
	return created, nil
}

func (s *vesselService) GetListVessels(ctx context.Context, tx *gorm.DB, listID uuid.UUID) ([]*domain.Vessel, error) {
	if err := s.ensureList(ctx, tx, listID); err != nil {
		return nil, err
	}
	vessels, err := s.vesselRepo.GetByListIDs(ctx, tx, []uuid.UUID{listID})
	if err != nil {
		return nil, fmt.Errorf("load vessels: %w", err)
	}
	return vessels, nil
}

func (s *vesselService) UpdateVessel(ctx context.Context, tx *gorm.DB, id uuid.UUID, input VesselInput) (*domain.Vessel, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}
	vessels, err := s.vesselRepo.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("load vessel: %w", err)
	}
	if len(vessels) == 0 {
		return nil, apierr.New(http.StatusNotFound, "vessel_not_found", fmt.Errorf("vessel %s not found", id))
	}
	v := vessels[0]
	v.MMSI = input.MMSI
	v.IMO = input.IMO
	v.Name = input.Name
	v.Callsign = input.Callsign
	v.Flag = input.Flag
	v.LastPosition = input.LastPosition
	v.Note = input.Note
	if err := s.vesselRepo.Update(ctx, tx, v); err != nil {
		return nil, fmt.Errorf("update vessel: %w", err)
	}
	s.invalidateReports(ctx)
	return v, nil
}

func (s *vesselService) DeleteVessel(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	vessels, err := s.vesselRepo.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return fmt.Errorf("load vessel: %w", err)
	}
	if len(vessels) == 0 {
		return apierr.New(http.StatusNotFound, "vessel_not_found", fmt.Errorf("vessel %s not found", id))
	}
	if err := s.vesselRepo.Delete(ctx, tx, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete vessel: %w", err)
	}
	s.invalidateReports(ctx)
	return nil
}

// ImportCSV appends rows from a CSV export to the list in one transaction.
// The first row is expected to be the header; blank lines are skipped and
// short rows are padded, so exports from older UI versions still import.
func (s *vesselService) ImportCSV(ctx context.Context, listID uuid.UUID, r io.Reader) (int, error) {
	if err := s.ensureList(ctx, nil, listID); err != nil {
		return 0, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var inputs []VesselInput
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, apierr.New(http.StatusBadRequest, "invalid_csv", fmt.Errorf("parse csv: %w", err))
		}
		if first {
			first = false
			if looksLikeHeader(record) {
				continue
			}
		}
		if isBlank(record) {
			continue
		}
		inputs = append(inputs, VesselInput{
			MMSI:         field(record, 0),
			IMO:          field(record, 1),
			Name:         field(record, 2),
			Callsign:     field(record, 3),
			Flag:         field(record, 4),
			LastPosition: field(record, 5),
			Note:         field(record, 6),
		})
	}
	if len(inputs) == 0 {
		return 0, nil
	}

	var count int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := s.AddVessels(ctx, tx, listID, inputs)
		if err != nil {
			return err
		}
		count = len(created)
		return nil
	})
	if err != nil {
		return 0, err
	}
	// Invalidate only once the rows are committed and visible.
	s.invalidateReports(ctx)
	s.log.Info("CSV import complete", "list_id", listID, "rows", count)
	return count, nil
}

func (s *vesselService) ExportCSV(ctx context.Context, listID uuid.UUID, w io.Writer) error {
	vessels, err := s.GetListVessels(ctx, nil, listID)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, v := range vessels {
		row := []string{v.MMSI, v.IMO, v.Name, v.Callsign, v.Flag, v.LastPosition, v.Note}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (s *vesselService) ensureList(ctx context.Context, tx *gorm.DB, listID uuid.UUID) error {
	lists, err := s.watchlistRepo.GetByIDs(ctx, tx, []uuid.UUID{listID})
	if err != nil {
		return fmt.Errorf("load list: %w", err)
	}
	if len(lists) == 0 {
		return apierr.New(http.StatusNotFound, "list_not_found", fmt.Errorf("list %s not found", listID))
	}
	return nil
}

func (s *vesselService) invalidateReports(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Report cache invalidation failed", "error", err)
	}
}

func looksLikeHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[0]), "mmsi")
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}
