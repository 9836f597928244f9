package listing

import (
	"strings"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/model"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/wizard"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type CreateListingRequest struct {
	Answers wizard.Answers `json:"answers"`
}

type CreateListingResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

type SearchListingsRequest struct {
	Subject string `form:"subject" binding:"omitempty,max=100"`
	Format  string `form:"format" binding:"omitempty,oneof=online offline either"`
	Region  string `form:"region" binding:"omitempty,max=100"`
	Status  string `form:"status" binding:"omitempty,oneof=OPEN CLOSED open closed"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset  int    `form:"offset" binding:"omitempty,min=0"`
}

type SearchListingsResponse struct {
	Items  []ListingResponse `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type VerifyRequest struct {
	Password string `json:"password"` // 빈 값도 비밀번호 확인 단계에서 거절
}

type VerifyResponse struct {
	EditToken string          `json:"editToken"`
	ExpiresIn int64           `json:"expiresIn"` // seconds
	Listing   ListingResponse `json:"listing"`
}

// UpdateListingRequest is a partial edit; nil fields are left unchanged.
type UpdateListingRequest struct {
	Description  *string   `json:"description"`
	Level        *string   `json:"level"`
	Format       *string   `json:"format"`
	Region       *string   `json:"region"`
	TitleTags    *[]string `json:"titleTags"`
	Email        *string   `json:"email"`
	KakaoContact *string   `json:"kakaoContact"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ChangeStatusResponse struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	Changed        bool   `json:"changed"`
	FeedbackPrompt bool   `json:"feedbackPrompt"`
}

type FeedbackRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// ParseFeedbackAnswer maps the prompt buttons (예 / 아니요 / 건너뛰기) or their
// yes / no / skip codes to a state.
func ParseFeedbackAnswer(answer string) (model.FeedbackState, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "예":
		return model.FeedbackYes, true
	case "no", "아니요", "아니오":
		return model.FeedbackNo, true
	case "skip", "건너뛰기":
		return model.FeedbackSkipped, true
	}
	return "", false
}

type ListingResponse struct {
	ID                   string    `json:"id"`
	Board                string    `json:"board"`
	ProgramTypes         []string  `json:"programTypes"`
	Subjects             []string  `json:"subjects"`
	Level                string    `json:"level,omitempty"`
	Format               string    `json:"format"`
	Region               string    `json:"region,omitempty"`
	TitleTags            []string  `json:"titleTags"`
	Description          string    `json:"description"`
	Email                string    `json:"email,omitempty"`
	KakaoContact         string    `json:"kakaoContact,omitempty"`
	ContactHidden        bool      `json:"contactHidden"`
	Status               string    `json:"status"`
	FoundThroughPlatform *bool     `json:"foundThroughPlatform"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// newListingResponse builds the read view. Contact details are only included
// for the author or while the listing is OPEN.
func newListingResponse(l *model.Listing, author bool) ListingResponse {
	resp := ListingResponse{
		ID:                   l.ID,
		Board:                l.Board,
		ProgramTypes:         nonNil(l.ProgramTypes),
		Subjects:             nonNil(l.Subjects),
		Level:                l.Level,
		Format:               string(l.Format),
		Region:               l.Region,
		TitleTags:            nonNil(l.TitleTags),
		Description:          l.Description,
		Status:               string(l.Status),
		FoundThroughPlatform: l.Feedback.FoundThroughPlatform(),
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
	if author || l.ContactVisible() {
		resp.Email = l.Email
		resp.KakaoContact = l.KakaoContact
	} else {
		resp.ContactHidden = true
	}
	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
