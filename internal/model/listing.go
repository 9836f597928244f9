package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ListingStatus is the lifecycle status of a listing. Only OPEN and CLOSED exist.
type ListingStatus string

const (
	StatusOpen   ListingStatus = "OPEN"
	StatusClosed ListingStatus = "CLOSED"
)

// ParseListingStatus accepts "OPEN"/"CLOSED" in any case.
func ParseListingStatus(s string) (ListingStatus, bool) {
	switch ListingStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, true
	case StatusClosed:
		return StatusClosed, true
	}
	return "", false
}

// LessonFormat 수업 방식
type LessonFormat string

const (
	FormatOnline  LessonFormat = "online"
	FormatOffline LessonFormat = "offline"
	FormatEither  LessonFormat = "either"
)

func ParseLessonFormat(s string) (LessonFormat, bool) {
	switch LessonFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatOnline:
		return FormatOnline, true
	case FormatOffline:
		return FormatOffline, true
	case FormatEither:
		return FormatEither, true
	}
	return "", false
}

// RequiresRegion reports whether the format may involve in-person lessons.
func (f LessonFormat) RequiresRegion() bool {
	return f == FormatOffline || f == FormatEither
}

// FeedbackState records the one-time "did you find a match here?" question.
// NOT_ASKED and SKIPPED are distinct so a skipped prompt is never shown again.
type FeedbackState string

const (
	FeedbackNotAsked FeedbackState = "NOT_ASKED"
	FeedbackSkipped  FeedbackState = "SKIPPED"
	FeedbackYes      FeedbackState = "YES"
	FeedbackNo       FeedbackState = "NO"
)

// FoundThroughPlatform returns the nullable boolean view used by clients.
func (f FeedbackState) FoundThroughPlatform() *bool {
	var v bool
	switch f {
	case FeedbackYes:
		v = true
	case FeedbackNo:
		v = false
	default:
		return nil
	}
	return &v
}

var (
	ErrFeedbackNotAllowed  = errors.New("model: feedback only allowed on a closed listing")
	ErrFeedbackAlreadyDone = errors.New("model: feedback already recorded")
	ErrInvalidFeedback     = errors.New("model: invalid feedback answer")
)

// Listing is a post on one of the boards (hagwon request or student job).
type Listing struct {
	ID    string `gorm:"column:id;type:VARCHAR2(36);primaryKey"`
	Board string `gorm:"column:board;type:VARCHAR2(50);not null;index:idx_listing_board_status"`

	// Classification
	ProgramTypes datatypes.JSONSlice[string] `gorm:"column:program_types;type:VARCHAR2(500)"`
	Subjects     datatypes.JSONSlice[string] `gorm:"column:subjects;type:VARCHAR2(2000)"`
	Level        string                      `gorm:"column:grade_level;type:VARCHAR2(100)"`
	Format       LessonFormat                `gorm:"column:lesson_format;type:VARCHAR2(10);not null"`
	Region       string                      `gorm:"column:region;type:VARCHAR2(100)"`

	// Content
	TitleTags   datatypes.JSONSlice[string] `gorm:"column:title_tags;type:VARCHAR2(500)"` // 과거 글은 비어 있을 수 있음
	Description string                      `gorm:"column:description;type:CLOB;not null"`

	// Contact
	Email        string `gorm:"column:email;type:VARCHAR2(255)"`
	KakaoContact string `gorm:"column:kakao_contact;type:VARCHAR2(255)"`

	// Lifecycle
	Status   ListingStatus `gorm:"column:status;type:VARCHAR2(10);not null;index:idx_listing_board_status"`
	Feedback FeedbackState `gorm:"column:feedback;type:VARCHAR2(10);not null"`

	// SHA-256 hex of the author's edit password, never the plaintext
	PasswordHash string `gorm:"column:password_hash;type:VARCHAR2(64);not null"`

	BaseEntity
}

// TableName specifies the table name for Listing
func (*Listing) TableName() string {
	return "listing"
}

// NewListing creates an OPEN listing with a fresh id.
// passwordHash must already be hashed (handled in service layer)
func NewListing(board string, passwordHash string) *Listing {
	return &Listing{
		ID:           uuid.New().String(),
		Board:        board,
		Status:       StatusOpen,
		Feedback:     FeedbackNotAsked,
		PasswordHash: passwordHash,
	}
}

// HasContact reports whether at least one contact channel is present.
func (l *Listing) HasContact() bool {
	return strings.TrimSpace(l.Email) != "" || strings.TrimSpace(l.KakaoContact) != ""
}

// ContactVisible reports whether contact details may be shown to other users.
func (l *Listing) ContactVisible() bool {
	return l.Status == StatusOpen
}

// TransitionTo moves the listing to next. It reports whether the status changed
// and whether the one-time feedback question has to be asked now.
func (l *Listing) TransitionTo(next ListingStatus) (changed bool, askFeedback bool) {
	if l.Status == next {
		return false, false
	}
	prev := l.Status
	l.Status = next
	askFeedback = prev == StatusOpen && next == StatusClosed && l.Feedback == FeedbackNotAsked
	return true, askFeedback
}

// RecordFeedback stores the answer to the feedback question. Only allowed once,
// while the listing is closed.
func (l *Listing) RecordFeedback(answer FeedbackState) error {
	if answer != FeedbackYes && answer != FeedbackNo && answer != FeedbackSkipped {
		return ErrInvalidFeedback
	}
	if l.Status != StatusClosed {
		return ErrFeedbackNotAllowed
	}
	if l.Feedback != FeedbackNotAsked && l.Feedback != "" {
		return ErrFeedbackAlreadyDone
	}
	l.Feedback = answer
	return nil
}
