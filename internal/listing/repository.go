package listing

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

// SearchFilter narrows a board listing. Zero values mean "any".
type SearchFilter struct {
	Board   string
	Status  model.ListingStatus
	Format  model.LessonFormat
	Region  string
	Subject string
	Limit   int
	Offset  int
}

// StatusCount is one row of the board x status aggregate.
type StatusCount struct {
	Board  string
	Status model.ListingStatus
	Total  int64
}

// FeedbackCount is one row of the feedback aggregate.
type FeedbackCount struct {
	Feedback model.FeedbackState
	Total    int64
}

func (r *ListingRepository) Create(ctx context.Context, db *gorm.DB, listing *model.Listing) error {
	return db.WithContext(ctx).Create(listing).Error
}

func (r *ListingRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.Listing, error) {
	var listing model.Listing
	err := db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Save writes every column; concurrent editors are last-write-wins.
func (r *ListingRepository) Save(ctx context.Context, db *gorm.DB, listing *model.Listing) error {
	return db.WithContext(ctx).Save(listing).Error
}

func (r *ListingRepository) Search(ctx context.Context, db *gorm.DB, f SearchFilter) ([]model.Listing, int64, error) {
	query := db.WithContext(ctx).Model(&model.Listing{}).Where("board = ?", f.Board)

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	switch f.Format {
	case "":
	case model.FormatEither:
		query = query.Where("lesson_format = ?", f.Format)
	default:
		// "either" listings accept both online and offline lessons
		query = query.Where("lesson_format IN ?", []model.LessonFormat{f.Format, model.FormatEither})
	}
	if f.Region != "" {
		query = query.Where("region = ?", f.Region)
	}
	if f.Subject != "" {
		query = query.Where(`subjects LIKE ? ESCAPE '\'`, "%"+escapeLike(jsonElement(f.Subject))+"%")
	}

	// Count and Find each start from the same filtered statement
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []model.Listing
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *ListingRepository) CountByBoardAndStatus(ctx context.Context, db *gorm.DB) ([]StatusCount, error) {
	var rows []StatusCount
	err := db.WithContext(ctx).
		Model(&model.Listing{}).
		Select("board, status, COUNT(*) AS total").
		Group("board, status").
		Order("board").
		Scan(&rows).Error
	return rows, err
}

func (r *ListingRepository) CountByFeedback(ctx context.Context, db *gorm.DB) ([]FeedbackCount, error) {
	var rows []FeedbackCount
	err := db.WithContext(ctx).
		Model(&model.Listing{}).
		Select("feedback, COUNT(*) AS total").
		Group("feedback").
		Scan(&rows).Error
	return rows, err
}

// PurgeClosedBefore hard-deletes CLOSED listings last touched before cutoff.
func (r *ListingRepository) PurgeClosedBefore(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", model.StatusClosed, cutoff).
		Delete(&model.Listing{})
	return result.RowsAffected, result.Error
}

// jsonElement renders s the way the subjects column stores an element, quotes
// and \u0026-style escapes included.
func jsonElement(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `"` + s + `"`
	}
	return string(b)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
