package router_test

import (
	"net/http"
	"testing"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/housekeeping"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/listing"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/router"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/validator"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/wizard"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := testutil.NewTestConfig()
	db := database.Wrap(testutil.SetupTestDB(t))
	repo := listing.NewListingRepository()
	require.NoError(t, validator.RegisterAll())

	engine := bootstrap.NewBootstrap(cfg).SetupEngine()
	router.Setup(engine, cfg, router.Deps{
		DB:                db,
		Boards:            board.Default(),
		ListingRepository: repo,
		Purger:            housekeeping.NewPurger(db.DB, repo, cfg.Housekeeping.Retention),
	})
	return engine
}

func TestBoards(t *testing.T) {
	engine := setupServer(t)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/boards/hagwon"})

	require.Equal(t, http.StatusOK, recorder.Code)
	var b board.Board
	testutil.ParseResponse(t, recorder, &b)
	assert.Equal(t, "학원 강사 구인", b.Name)
	assert.Equal(t, 3, b.MaxTitleTags)

	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/boards/unknown"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestWizardSteps_GrowWithBranches(t *testing.T) {
	engine := setupServer(t)

	testCases := []struct {
		name         string
		programTypes []string
		total        int
	}{
		{"no branch", []string{"내신"}, 7},
		{"IB only", []string{"IB"}, 8},
		{"IB and SAT", []string{"IB", "SAT"}, 9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/boards/student/wizard/steps",
				Body:   wizard.StepsRequest{Answers: wizard.Answers{ProgramTypes: tc.programTypes}},
			})

			require.Equal(t, http.StatusOK, recorder.Code)
			var resp wizard.StepsResponse
			testutil.ParseResponse(t, recorder, &resp)
			assert.Equal(t, tc.total, resp.Total)
			assert.Len(t, resp.Steps, tc.total)
		})
	}
}

func TestWizardAdvance_BlockedAtContact(t *testing.T) {
	// Given: a session sitting on the contact step (6 of 7) with no contact
	engine := setupServer(t)
	answers := wizard.Answers{
		ProgramTypes: []string{"내신"},
		Subjects:     []string{"수학"},
		Format:       "online",
		TitleTags:    []string{"급구"},
		Description:  "도움이 필요합니다",
	}

	// When
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/boards/student/wizard/advance",
		Body:   wizard.AdvanceRequest{Step: 6, Direction: "next", Answers: answers},
	})

	// Then: the pointer stays and the reason is shown
	require.Equal(t, http.StatusOK, recorder.Code)
	var resp wizard.AdvanceResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.False(t, resp.Advanced)
	assert.Equal(t, 6, resp.Step)
	assert.Equal(t, wizard.StepContact, resp.Current.Kind)
	assert.Equal(t, "이메일 또는 카카오톡 연락처 중 하나는 입력해 주세요.", resp.Reason)

	// When: a contact is added
	answers.KakaoContact = "tutor_kim"
	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/boards/student/wizard/advance",
		Body:   wizard.AdvanceRequest{Step: 6, Direction: "next", Answers: answers},
	})

	// Then: moves on to the last step
	testutil.ParseResponse(t, recorder, &resp)
	assert.True(t, resp.Advanced)
	assert.Equal(t, 7, resp.Step)
	assert.True(t, resp.Last)
}

func TestWizardAdvance_BackAndClamp(t *testing.T) {
	engine := setupServer(t)

	// a pointer past the end (branch removed) is clamped before moving back
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/boards/student/wizard/advance",
		Body:   wizard.AdvanceRequest{Step: 9, Direction: "back", Answers: wizard.Answers{ProgramTypes: []string{"AP"}}},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp wizard.AdvanceResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Equal(t, 6, resp.Step)
	assert.Equal(t, 7, resp.Total)

	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/boards/student/wizard/advance",
		Body:   map[string]any{"step": 1, "direction": "sideways"},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUnknownRoute(t *testing.T) {
	engine := setupServer(t)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/nope"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ERROR-404")
}
