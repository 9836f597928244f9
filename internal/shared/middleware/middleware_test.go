package middleware_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	sharedContext "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editRouter(tokens token.Manager) *gin.Engine {
	router := testutil.SetupTestRouter()
	router.PUT("/listings/:id/status", middleware.EditSession(tokens), func(c *gin.Context) {
		if !sharedContext.RequireEditSession(c, c.Param("id")) {
			return
		}
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestEditSession(t *testing.T) {
	tokens := testutil.NewMockTokenManager()
	tokens.ValidateEditTokenFunc = func(tokenString string) (*token.Claims, error) {
		switch tokenString {
		case "good":
			return &token.Claims{ListingID: "listing-1", TokenType: token.EDIT}, nil
		case "old":
			return nil, token.ErrExpiredToken
		}
		return nil, token.ErrInvalidToken
	}
	router := editRouter(tokens)

	testCases := []struct {
		name   string
		url    string
		token  string
		header string
		status int
		code   string
	}{
		{name: "valid session", url: "/listings/listing-1/status", token: "good", status: http.StatusNoContent},
		{name: "session of another listing", url: "/listings/listing-2/status", token: "good", status: http.StatusUnauthorized, code: "AUTH-001"},
		{name: "missing header", url: "/listings/listing-1/status", status: http.StatusUnauthorized, code: "AUTH-001"},
		{name: "wrong scheme", url: "/listings/listing-1/status", header: "Basic good", status: http.StatusUnauthorized, code: "AUTH-001"},
		{name: "expired", url: "/listings/listing-1/status", token: "old", status: http.StatusUnauthorized, code: "AUTH-002"},
		{name: "garbage", url: "/listings/listing-1/status", token: "???", status: http.StatusUnauthorized, code: "AUTH-001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.TestRequest{Method: http.MethodPut, URL: tc.url, Token: tc.token}
			if tc.header != "" {
				req.Headers = map[string]string{middleware.AuthorizationHeader: tc.header}
			}

			w := testutil.ExecuteRequest(t, router, req)

			require.Equal(t, tc.status, w.Code, w.Body.String())
			if tc.code != "" {
				var resp sharedError.ErrorResponse
				testutil.ParseResponse(t, w, &resp)
				assert.Equal(t, tc.code, resp.Code)
			}
		})
	}
}

func TestAdmin(t *testing.T) {
	tokens := testutil.NewMockTokenManager()
	tokens.ValidateAdminTokenFunc = func(tokenString string) (*token.Claims, error) {
		if tokenString == "admin" {
			claims := &token.Claims{TokenType: token.ADMIN}
			claims.Subject = "ops"
			return claims, nil
		}
		return nil, token.ErrInvalidClaims
	}

	router := testutil.SetupTestRouter()
	router.GET("/admin/stats", middleware.Admin(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, sharedContext.GetAdminSubject(c))
	})

	t.Run("admin token", func(t *testing.T) {
		w := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/admin/stats", Token: "admin"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ops", w.Body.String())
	})

	t.Run("edit token is not enough", func(t *testing.T) {
		w := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/admin/stats", Token: "edit"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		w := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/admin/stats"})
		var resp sharedError.ErrorResponse
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "ADMIN-000", resp.Code)
	})
}

func TestRequestID(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("keeps a sane upstream id", func(t *testing.T) {
		w := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/ping",
			Headers: map[string]string{middleware.RequestIDHeader: "lb-1234.abc"},
		})
		assert.Equal(t, "lb-1234.abc", w.Body.String())
		assert.Equal(t, "lb-1234.abc", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces unsafe ids", func(t *testing.T) {
		for _, id := range []string{"a b\nforged=1", strings.Repeat("x", 65)} {
			w := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method:  http.MethodGet,
				URL:     "/ping",
				Headers: map[string]string{middleware.RequestIDHeader: id},
			})
			assert.NotEqual(t, id, w.Body.String())
			assert.Len(t, w.Body.String(), 36)
		}
	})
}

func TestTimeout_WritesServiceUnavailable(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.Timeout(10 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	w := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/slow"})

	var resp sharedError.ErrorResponse
	testutil.ParseResponse(t, w, &resp)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "ERROR-004", resp.Code)
}
