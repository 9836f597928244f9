package housekeeping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/listing"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/scheduler"
	"gorm.io/gorm"
)

const JobID = "purge-closed-listings"

var ErrInvalidRetention = errors.New("housekeeping: retention must be positive")

type Result struct {
	Deleted int64     `json:"deleted"`
	Cutoff  time.Time `json:"cutoff"`
}

// Purger deletes CLOSED listings nobody touched within the retention window.
// It never changes the status of a listing.
type Purger struct {
	db                *gorm.DB
	listingRepository *listing.ListingRepository
	retention         time.Duration
	now               func() time.Time
}

func NewPurger(db *gorm.DB, listingRepository *listing.ListingRepository, retention time.Duration) *Purger {
	return &Purger{
		db:                db,
		listingRepository: listingRepository,
		retention:         retention,
		now:               time.Now,
	}
}

func (p *Purger) Retention() time.Duration {
	return p.retention
}

func (p *Purger) Purge(ctx context.Context) (*Result, error) {
	return p.PurgeOlderThan(ctx, p.retention)
}

func (p *Purger) PurgeOlderThan(ctx context.Context, retention time.Duration) (*Result, error) {
	if retention <= 0 {
		return nil, ErrInvalidRetention
	}

	cutoff := p.now().UTC().Add(-retention)
	deleted, err := p.listingRepository.PurgeClosedBefore(ctx, p.db, cutoff)
	if err != nil {
		return nil, fmt.Errorf("마감 글 정리 실패: %w", err)
	}

	logger.FromContext(ctx).Info("[HOUSEKEEPING] 마감 글 정리",
		"deleted", deleted,
		"cutoff", cutoff.Format(time.RFC3339),
	)
	return &Result{Deleted: deleted, Cutoff: cutoff}, nil
}

// Schedule registers the periodic purge.
func (p *Purger) Schedule(s *scheduler.Scheduler, interval time.Duration) {
	s.AddJob(JobID, interval, func(ctx context.Context) error {
		_, err := p.Purge(ctx)
		return err
	})
	slog.Info("마감 글 정리 작업 등록", "interval", interval.String(), "retention", p.retention.String())
}
