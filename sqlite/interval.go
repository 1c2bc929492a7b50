package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/benjamonnguyen/pomomo-tui"
)

const SelectAllIntervals = "SELECT id, mode, duration_seconds, completed_at, created_at, updated_at FROM intervals"

type intervalEntity struct {
	ID              string
	Mode            uint8
	DurationSeconds int64
	CompletedAt     int64
	CreatedAt       int64
	UpdatedAt       int64
}

type intervalRepo struct {
	dbGetter txStdLib.DBGetter
	l        *log.Logger
}

var _ pomomo.IntervalRepo = (*intervalRepo)(nil)

func NewIntervalRepo(dbGetter txStdLib.DBGetter, logger *log.Logger) *intervalRepo {
	if logger == nil {
		logger = log.Default()
	}
	return &intervalRepo{
		dbGetter: dbGetter,
		l:        logger,
	}
}

func (r *intervalRepo) InsertInterval(ctx context.Context, interval pomomo.IntervalRecord) (pomomo.ExistingIntervalRecord, error) {
	if !interval.Mode.Valid() {
		return pomomo.ExistingIntervalRecord{}, fmt.Errorf("provide valid field 'Mode'")
	}
	if interval.CompletedAt.IsZero() {
		return pomomo.ExistingIntervalRecord{}, fmt.Errorf("provide required field 'CompletedAt'")
	}

	existingRecord := pomomo.ExistingIntervalRecord{
		IntervalRecord: interval,
		ExistingRecord: pomomo.NewExistingRecord[pomomo.IntervalID](uuid.NewString(), time.Now()),
	}
	e := mapToIntervalEntity(existingRecord)

	args := []any{
		e.ID,
		e.Mode,
		e.DurationSeconds,
		e.CompletedAt,
		e.CreatedAt,
		e.UpdatedAt,
	}
	query := "INSERT INTO intervals (id, mode, duration_seconds, completed_at, created_at, updated_at) VALUES " + generateParameters(len(args))
	r.l.Debug("creating interval", "query", query, "args", args)
	if _, err := r.dbGetter(ctx).ExecContext(ctx, query, args...); err != nil {
		return pomomo.ExistingIntervalRecord{}, err
	}

	return existingRecord, nil
}

func (r *intervalRepo) GetInterval(ctx context.Context, id pomomo.IntervalID) (pomomo.ExistingIntervalRecord, error) {
	if id == "" {
		return pomomo.ExistingIntervalRecord{}, fmt.Errorf("provide id")
	}

	row := r.dbGetter(ctx).QueryRowContext(
		ctx,
		fmt.Sprintf("%s WHERE id=?", SelectAllIntervals), id,
	)
	return extractInterval(row)
}

// ListIntervals returns intervals completed at or after since, oldest first.
func (r *intervalRepo) ListIntervals(ctx context.Context, since time.Time) ([]pomomo.ExistingIntervalRecord, error) {
	query := fmt.Sprintf("%s WHERE completed_at >= ? ORDER BY completed_at, created_at", SelectAllIntervals)
	r.l.Debug("listing intervals", "query", query, "since", since)
	rows, err := r.dbGetter(ctx).QueryContext(ctx, query, since.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint

	var intervals []pomomo.ExistingIntervalRecord
	for rows.Next() {
		interval, err := extractInterval(rows)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *intervalRepo) CountIntervals(ctx context.Context, mode pomomo.Mode, since time.Time) (int, error) {
	query := "SELECT COUNT(*) FROM intervals WHERE mode = ? AND completed_at >= ?"
	var n int
	if err := r.dbGetter(ctx).QueryRowContext(ctx, query, uint8(mode), since.Unix()).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func extractInterval(s scannable) (pomomo.ExistingIntervalRecord, error) {
	var e intervalEntity
	if err := s.Scan(&e.ID, &e.Mode, &e.DurationSeconds, &e.CompletedAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pomomo.ExistingIntervalRecord{}, ErrNotFound
		}
		return pomomo.ExistingIntervalRecord{}, err
	}
	return mapToExistingIntervalRecord(e), nil
}

func mapToIntervalEntity(interval pomomo.ExistingIntervalRecord) intervalEntity {
	return intervalEntity{
		ID:              string(interval.ID),
		Mode:            uint8(interval.Mode),
		DurationSeconds: int64(interval.Duration.Seconds()),
		CompletedAt:     interval.CompletedAt.Unix(),
		CreatedAt:       interval.CreatedAt.Unix(),
		UpdatedAt:       interval.UpdatedAt.Unix(),
	}
}

func mapToExistingIntervalRecord(e intervalEntity) pomomo.ExistingIntervalRecord {
	return pomomo.ExistingIntervalRecord{
		ExistingRecord: pomomo.ExistingRecord[pomomo.IntervalID]{
			ID:        pomomo.IntervalID(e.ID),
			CreatedAt: time.Unix(e.CreatedAt, 0),
			UpdatedAt: time.Unix(e.UpdatedAt, 0),
		},
		IntervalRecord: pomomo.IntervalRecord{
			Mode:        pomomo.Mode(e.Mode),
			Duration:    time.Duration(e.DurationSeconds) * time.Second,
			CompletedAt: time.Unix(e.CompletedAt, 0),
		},
	}
}
