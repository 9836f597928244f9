package cli

import (
	"fmt"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/admin"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/housekeeping"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/listing"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/mail"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/token"
)

// Runtime holds what the commands operate on.
type Runtime struct {
	Cfg      *config.Config
	Admin    *admin.AdminService
	Listings *listing.ListingService
	Tokens   token.Manager
	Close    func() error
}

// Opener builds a Runtime for an environment name. Tests swap it for sqlite.
type Opener func(env string) (*Runtime, error)

// OpenDatabase connects to the configured Oracle store.
func OpenDatabase(env string) (*Runtime, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	boards, err := board.Load(cfg.Board.DefinitionsFile)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("게시판 정의 로드 실패: %w", err)
	}
	return NewRuntime(cfg, db, boards), nil
}

func NewRuntime(cfg *config.Config, db *database.DB, boards *board.Registry) *Runtime {
	repo := listing.NewListingRepository()
	tokens := token.NewJWTManager(cfg)
	purger := housekeeping.NewPurger(db.DB, repo, cfg.Housekeeping.Retention)

	return &Runtime{
		Cfg:      cfg,
		Admin:    admin.NewAdminService(db.DB, repo, boards, purger),
		Listings: listing.NewListingService(db.DB, repo, boards, tokens, mail.New(cfg), cfg),
		Tokens:   tokens,
		Close:    db.Close,
	}
}
