package listing

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/credential"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/model"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/logger"
	sharedMail "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/mail"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/token"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/wizard"
	"gorm.io/gorm"
)

const detailPathPrefix = "/api/v1/listings/"

type ListingService struct {
	db                *gorm.DB
	listingRepository *ListingRepository
	boards            *board.Registry
	tokenManager      token.Manager
	mailer            sharedMail.Mailer
	cfg               *config.Config
}

func NewListingService(
	db *gorm.DB,
	listingRepository *ListingRepository,
	boards *board.Registry,
	tokenManager token.Manager,
	mailer sharedMail.Mailer,
	cfg *config.Config,
) *ListingService {
	return &ListingService{
		db:                db,
		listingRepository: listingRepository,
		boards:            boards,
		tokenManager:      tokenManager,
		mailer:            mailer,
		cfg:               cfg,
	}
}

// Create validates the whole wizard, hashes the password and inserts the listing
// in one transaction. Nothing is written when any step fails.
func (s *ListingService) Create(ctx context.Context, boardKey string, answers wizard.Answers) (*CreateListingResponse, error) {
	b, err := s.board(boardKey)
	if err != nil {
		return nil, err
	}

	if violation := wizard.NewValidator(b).ValidateAll(&answers); violation != nil {
		return nil, newValidationError(violation.Step.Kind, violation.Reason)
	}

	listing := buildListing(b, &answers, credential.Hash(answers.Password))

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.listingRepository.Create(ctx, tx, listing); err != nil {
			return fmt.Errorf("글 저장 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("[LISTING] 글 등록 완료",
		"listing_id", listing.ID,
		"board", listing.Board,
		"email", logger.MaskEmail(listing.Email),
		"kakao", logger.MaskKakao(listing.KakaoContact),
	)

	s.notifyCreated(ctx, b, listing)

	return &CreateListingResponse{
		ID:       listing.ID,
		Status:   string(listing.Status),
		Location: detailPathPrefix + listing.ID,
	}, nil
}

// Get returns the public view. Contact details of a CLOSED listing are hidden.
func (s *ListingService) Get(ctx context.Context, id string) (*ListingResponse, error) {
	listing, err := s.find(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	resp := newListingResponse(listing, false)
	return &resp, nil
}

func (s *ListingService) Search(ctx context.Context, boardKey string, req SearchListingsRequest) (*SearchListingsResponse, error) {
	if _, err := s.board(boardKey); err != nil {
		return nil, err
	}

	filter := SearchFilter{
		Board:   boardKey,
		Status:  model.StatusOpen,
		Region:  strings.TrimSpace(req.Region),
		Subject: strings.TrimSpace(req.Subject),
		Limit:   req.Limit,
		Offset:  req.Offset,
	}
	if req.Status != "" {
		status, ok := model.ParseListingStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("status=%s %w", req.Status, ErrInvalidStatus)
		}
		filter.Status = status
	}
	if req.Format != "" {
		format, ok := model.ParseLessonFormat(req.Format)
		if !ok {
			return nil, fmt.Errorf("format=%s %w", req.Format, ErrInvalidFormat)
		}
		filter.Format = format
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	listings, total, err := s.listingRepository.Search(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("글 목록 조회 실패: %w", err)
	}

	items := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		items = append(items, newListingResponse(&listings[i], false))
	}
	return &SearchListingsResponse{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// Verify runs the credential gate and opens an edit session for the listing.
func (s *ListingService) Verify(ctx context.Context, id, password string) (*VerifyResponse, error) {
	log := logger.FromContext(ctx)

	listing, err := s.listingRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("[LISTING] 비밀번호 확인 실패", "listing_id", id, "reason", "not_found")
			return nil, fmt.Errorf("listingID=%s %w", id, ErrIncorrectPassword)
		}
		return nil, fmt.Errorf("글 조회 실패: %w", err)
	}

	if listing.PasswordHash == "" {
		log.Warn("[LISTING] 비밀번호 확인 실패", "listing_id", id, "reason", "no_credential")
		return nil, fmt.Errorf("listingID=%s %w", id, ErrIncorrectPassword)
	}
	if !credential.Verify(password, listing.PasswordHash) {
		log.Warn("[LISTING] 비밀번호 확인 실패", "listing_id", id, "reason", "mismatch")
		return nil, fmt.Errorf("listingID=%s %w", id, ErrIncorrectPassword)
	}

	editToken, err := s.tokenManager.GenerateEditToken(listing.ID)
	if err != nil {
		return nil, fmt.Errorf("수정 토큰 생성 실패: %w", err)
	}

	log.Info("[LISTING] 수정 세션 발급", "listing_id", listing.ID)

	return &VerifyResponse{
		EditToken: editToken,
		ExpiresIn: int64(s.cfg.JWT.EditTokenExpiry.Seconds()),
		Listing:   newListingResponse(listing, true),
	}, nil
}

// Update applies a partial edit and re-checks the rules the wizard enforced.
func (s *ListingService) Update(ctx context.Context, id string, req UpdateListingRequest) (*ListingResponse, error) {
	var resp ListingResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		listing, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}
		b, err := s.board(listing.Board)
		if err != nil {
			return err
		}

		if err := s.applyUpdate(b, listing, req); err != nil {
			return err
		}

		if err := s.listingRepository.Save(ctx, tx, listing); err != nil {
			return fmt.Errorf("글 수정 실패: %w", err)
		}
		resp = newListingResponse(listing, true)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("[LISTING] 글 수정 완료", "listing_id", id)
	return &resp, nil
}

func (s *ListingService) applyUpdate(b *board.Board, l *model.Listing, req UpdateListingRequest) error {
	if req.Description != nil {
		l.Description = strings.TrimSpace(*req.Description)
	}
	if req.Level != nil {
		l.Level = strings.TrimSpace(*req.Level)
	}
	if req.Region != nil {
		l.Region = strings.TrimSpace(*req.Region)
	}
	format := string(l.Format)
	if req.Format != nil {
		format = *req.Format
	}
	if req.TitleTags != nil {
		l.TitleTags = append([]string(nil), (*req.TitleTags)...)
	}
	if req.Email != nil {
		l.Email = strings.TrimSpace(*req.Email)
	}
	if req.KakaoContact != nil {
		l.KakaoContact = strings.TrimSpace(*req.KakaoContact)
	}

	if reason := wizard.CheckLesson(format, l.Region); reason != "" {
		return newValidationError(wizard.StepLesson, reason)
	}
	l.Format, _ = model.ParseLessonFormat(format)

	// older listings may have no tags; only check once tags are present or sent
	if req.TitleTags != nil || len(l.TitleTags) > 0 {
		if reason := wizard.CheckTitleTags(b, l.TitleTags); reason != "" {
			return newValidationError(wizard.StepTitleTags, reason)
		}
	}
	if reason := wizard.CheckDescription(l.Description); reason != "" {
		return newValidationError(wizard.StepDescription, reason)
	}
	if reason := wizard.NewValidator(b).CheckContact(l.Email, l.KakaoContact); reason != "" {
		return newValidationError(wizard.StepContact, reason)
	}
	return nil
}

// ChangeStatus moves the listing between OPEN and CLOSED. FeedbackPrompt is set
// only on the first OPEN -> CLOSED transition.
func (s *ListingService) ChangeStatus(ctx context.Context, id, status string) (*ChangeStatusResponse, error) {
	next, ok := model.ParseListingStatus(status)
	if !ok {
		return nil, fmt.Errorf("status=%s %w", status, ErrInvalidStatus)
	}

	var resp *ChangeStatusResponse
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		listing, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		changed, askFeedback := listing.TransitionTo(next)
		if changed {
			if err := s.listingRepository.Save(ctx, tx, listing); err != nil {
				return fmt.Errorf("상태 변경 실패: %w", err)
			}
		}

		resp = &ChangeStatusResponse{
			ID:             listing.ID,
			Status:         string(listing.Status),
			Changed:        changed,
			FeedbackPrompt: askFeedback,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("[LISTING] 상태 변경",
		"listing_id", id,
		"status", resp.Status,
		"changed", resp.Changed,
		"feedback_prompt", resp.FeedbackPrompt,
	)
	return resp, nil
}

// SubmitFeedback stores the one-time answer to the feedback prompt.
func (s *ListingService) SubmitFeedback(ctx context.Context, id, answer string) (*ListingResponse, error) {
	state, ok := ParseFeedbackAnswer(answer)
	if !ok {
		return nil, fmt.Errorf("answer=%s %w", answer, ErrInvalidFeedback)
	}

	var resp ListingResponse
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		listing, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := listing.RecordFeedback(state); err != nil {
			switch {
			case errors.Is(err, model.ErrFeedbackNotAllowed):
				return fmt.Errorf("listingID=%s %w", id, ErrFeedbackNotAllowed)
			case errors.Is(err, model.ErrFeedbackAlreadyDone):
				return fmt.Errorf("listingID=%s %w", id, ErrFeedbackAlreadyRecorded)
			default:
				return fmt.Errorf("listingID=%s %w", id, ErrInvalidFeedback)
			}
		}

		if err := s.listingRepository.Save(ctx, tx, listing); err != nil {
			return fmt.Errorf("피드백 저장 실패: %w", err)
		}
		resp = newListingResponse(listing, true)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("[LISTING] 피드백 저장", "listing_id", id, "feedback", state)
	return &resp, nil
}

func (s *ListingService) find(ctx context.Context, db *gorm.DB, id string) (*model.Listing, error) {
	listing, err := s.listingRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("글을 찾을 수 없습니다 listingID=%s %w", id, ErrListingNotFound)
		}
		return nil, fmt.Errorf("글 조회 실패: %w", err)
	}
	return listing, nil
}

func (s *ListingService) board(key string) (*board.Board, error) {
	b, ok := s.boards.Get(key)
	if !ok {
		return nil, fmt.Errorf("board=%s %w", key, board.ErrBoardNotFound)
	}
	return b, nil
}

// notifyCreated mails the author a link to the new listing. Delivery problems
// never fail the create.
func (s *ListingService) notifyCreated(ctx context.Context, b *board.Board, l *model.Listing) {
	if l.Email == "" || s.mailer == nil {
		return
	}
	link := s.cfg.ListingURL(l.ID)
	s.mailer.SendMessages(ctx, &sharedMail.Message{
		To:      []mail.Address{{Address: l.Email}},
		Subject: fmt.Sprintf("%s에 글이 등록되었습니다", b.Name),
		TextContent: fmt.Sprintf(
			"글이 등록되었습니다.\n\n%s\n\n글을 수정하거나 마감하려면 등록할 때 정한 비밀번호가 필요합니다.",
			link,
		),
	})
}
