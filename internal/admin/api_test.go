package admin_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/admin"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/housekeeping"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/listing"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/model"
	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, *token.JWTManager) {
	t.Helper()

	cfg := testutil.NewTestConfig()
	db := testutil.SetupTestDB(t)
	tokenManager := token.NewJWTManager(cfg)

	repo := listing.NewListingRepository()
	purger := housekeeping.NewPurger(db, repo, cfg.Housekeeping.Retention)
	adminHandler := admin.NewAdminHandler(admin.NewAdminService(db, repo, board.Default(), purger))

	router := testutil.SetupTestRouter()
	adminV1 := router.Group("/api/v1/admin", middleware.Admin(tokenManager))
	adminV1.GET("/stats", adminHandler.Stats)
	adminV1.POST("/housekeeping/purge", adminHandler.Purge)

	return router, db, tokenManager
}

func seed(t *testing.T, db *gorm.DB, boardKey string, status model.ListingStatus, feedback model.FeedbackState) *model.Listing {
	t.Helper()

	l := model.NewListing(boardKey, "hash")
	l.Format = model.FormatOnline
	l.Description = "글"
	l.Email = "a@b.com"
	l.Status = status
	l.Feedback = feedback
	require.NoError(t, db.Create(l).Error)
	return l
}

func TestStats(t *testing.T) {
	// Given
	router, db, tokenManager := setupTestEnvironment(t)
	seed(t, db, "student", model.StatusOpen, model.FeedbackNotAsked)
	seed(t, db, "student", model.StatusClosed, model.FeedbackYes)
	seed(t, db, "student", model.StatusClosed, model.FeedbackNo)
	seed(t, db, "student", model.StatusClosed, model.FeedbackYes)
	seed(t, db, "hagwon", model.StatusClosed, model.FeedbackSkipped)

	adminToken, err := tokenManager.GenerateAdminToken("ops")
	require.NoError(t, err)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/admin/stats",
		Token:  adminToken,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var resp admin.StatsResponse
	testutil.ParseResponse(t, recorder, &resp)

	byKey := map[string]admin.BoardStats{}
	for _, b := range resp.Boards {
		byKey[b.Board] = b
	}
	assert.Equal(t, admin.BoardStats{Board: "student", Name: "학생 과외 구인", Open: 1, Closed: 3, Total: 4}, byKey["student"])
	assert.Equal(t, admin.BoardStats{Board: "hagwon", Name: "학원 강사 구인", Open: 0, Closed: 1, Total: 1}, byKey["hagwon"])

	assert.Equal(t, admin.FeedbackStats{NotAsked: 1, Skipped: 1, Yes: 2, No: 1}, resp.Feedback)
	require.NotNil(t, resp.MatchRate)
	assert.InDelta(t, 2.0/3.0, *resp.MatchRate, 0.0001)
}

func TestStats_EmptyStore(t *testing.T) {
	router, _, tokenManager := setupTestEnvironment(t)
	adminToken, _ := tokenManager.GenerateAdminToken("ops")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/admin/stats",
		Token:  adminToken,
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp admin.StatsResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Len(t, resp.Boards, 2)
	assert.Nil(t, resp.MatchRate)
}

func TestAdminRoutes_RequireAdminToken(t *testing.T) {
	router, _, tokenManager := setupTestEnvironment(t)
	editToken, err := tokenManager.GenerateEditToken("some-listing")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		token  string
		status int
		code   string
	}{
		{"no token", "", http.StatusUnauthorized, "ADMIN-000"},
		{"edit token", editToken, http.StatusForbidden, "ADMIN-001"},
		{"garbage", "abc.def.ghi", http.StatusForbidden, "ADMIN-001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodGet,
				URL:    "/api/v1/admin/stats",
				Token:  tc.token,
			})

			assert.Equal(t, tc.status, recorder.Code)
			var errResp sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errResp)
			assert.Equal(t, tc.code, errResp.Code)
		})
	}
}

func TestPurge(t *testing.T) {
	// Given: a listing closed long ago and a fresh one
	router, db, tokenManager := setupTestEnvironment(t)
	stale := seed(t, db, "student", model.StatusClosed, model.FeedbackSkipped)
	require.NoError(t, db.Model(stale).UpdateColumn("updated_at", time.Now().UTC().Add(-48*time.Hour)).Error)
	seed(t, db, "student", model.StatusClosed, model.FeedbackNo)
	adminToken, _ := tokenManager.GenerateAdminToken("ops")

	// When: purging with a one day window
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/admin/housekeeping/purge",
		Body:   admin.PurgeRequest{Retention: "24h"},
		Token:  adminToken,
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var resp admin.PurgeResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.EqualValues(t, 1, resp.Deleted)
	assert.Equal(t, "24h0m0s", resp.Retention)

	var count int64
	db.Model(&model.Listing{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestPurge_InvalidRetention(t *testing.T) {
	router, _, tokenManager := setupTestEnvironment(t)
	adminToken, _ := tokenManager.GenerateAdminToken("ops")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/admin/housekeeping/purge",
		Body:   admin.PurgeRequest{Retention: "soon"},
		Token:  adminToken,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var errResp sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errResp)
	assert.Equal(t, "ADMIN-002", errResp.Code)
}
