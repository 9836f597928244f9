package bootstrap

import (
	"log/slog"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/housekeeping"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/scheduler"
)

// StartHousekeeping runs the periodic purge in the background.
// The returned func stops the scheduler and waits for running jobs.
func StartHousekeeping(cfg *config.Config, purger *housekeeping.Purger) (stop func()) {
	if !cfg.Housekeeping.Enabled {
		slog.Info("⏭️  마감 글 정리 비활성화됨")
		return func() {}
	}

	s := scheduler.New(cfg.Housekeeping.Workers)
	purger.Schedule(s, cfg.Housekeeping.Interval)
	s.Start()
	return s.Stop
}
