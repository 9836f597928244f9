package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/housekeeping"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/listing"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/model"
	"gorm.io/gorm"
)

type AdminService struct {
	db                *gorm.DB
	listingRepository *listing.ListingRepository
	boards            *board.Registry
	purger            *housekeeping.Purger
}

func NewAdminService(db *gorm.DB, listingRepository *listing.ListingRepository, boards *board.Registry, purger *housekeeping.Purger) *AdminService {
	return &AdminService{
		db:                db,
		listingRepository: listingRepository,
		boards:            boards,
		purger:            purger,
	}
}

// Stats aggregates listing counts per board and the feedback answers.
// Every configured board is listed, including empty ones.
func (s *AdminService) Stats(ctx context.Context) (*StatsResponse, error) {
	statusRows, err := s.listingRepository.CountByBoardAndStatus(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("게시판별 집계 실패: %w", err)
	}
	feedbackRows, err := s.listingRepository.CountByFeedback(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("피드백 집계 실패: %w", err)
	}

	byBoard := map[string]*BoardStats{}
	var order []string
	for _, b := range s.boards.All() {
		byBoard[b.Key] = &BoardStats{Board: b.Key, Name: b.Name}
		order = append(order, b.Key)
	}
	for _, row := range statusRows {
		st, ok := byBoard[row.Board]
		if !ok {
			// listings of a board that was removed from the definitions
			st = &BoardStats{Board: row.Board, Name: row.Board}
			byBoard[row.Board] = st
			order = append(order, row.Board)
		}
		switch row.Status {
		case model.StatusOpen:
			st.Open += row.Total
		case model.StatusClosed:
			st.Closed += row.Total
		}
		st.Total += row.Total
	}

	resp := &StatsResponse{GeneratedAt: time.Now().UTC()}
	for _, key := range order {
		resp.Boards = append(resp.Boards, *byBoard[key])
	}

	for _, row := range feedbackRows {
		switch row.Feedback {
		case model.FeedbackYes:
			resp.Feedback.Yes += row.Total
		case model.FeedbackNo:
			resp.Feedback.No += row.Total
		case model.FeedbackSkipped:
			resp.Feedback.Skipped += row.Total
		default:
			resp.Feedback.NotAsked += row.Total
		}
	}
	if answered := resp.Feedback.Yes + resp.Feedback.No; answered > 0 {
		rate := float64(resp.Feedback.Yes) / float64(answered)
		resp.MatchRate = &rate
	}

	return resp, nil
}

// Purge runs housekeeping now. An empty retention uses the configured one.
func (s *AdminService) Purge(ctx context.Context, retention string) (*PurgeResponse, error) {
	window := s.purger.Retention()
	if retention != "" {
		d, err := time.ParseDuration(retention)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("retention=%s %w", retention, ErrInvalidRetention)
		}
		window = d
	}

	result, err := s.purger.PurgeOlderThan(ctx, window)
	if err != nil {
		return nil, err
	}
	return &PurgeResponse{
		Deleted:   result.Deleted,
		Cutoff:    result.Cutoff,
		Retention: window.String(),
	}, nil
}
