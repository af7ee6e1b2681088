package sessionmw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact_backend/internal/feature/auth/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockResolver is a mock implementation of the SessionResolver interface.
type mockResolver struct {
	ResolveFunc func(ctx context.Context, token string) (usecase.SessionState, error)
}

func (m *mockResolver) ResolveSession(ctx context.Context, token string) (usecase.SessionState, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, token)
	}
	return usecase.Anonymous, nil
}

func newGuardedRouter(resolver SessionResolver) *gin.Engine {
	router := gin.New()
	router.GET("/guarded", SessionRequired(resolver), func(c *gin.Context) {
		id, ok := AccountID(c)
		c.JSON(http.StatusOK, gin.H{
			"account_id": id,
			"id_ok":      ok,
			"fresh":      c.GetBool(ContextFresh),
			"token":      c.GetString(ContextToken),
		})
	})
	return router
}

func doGuarded(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"well-formed header", "Bearer abc.def", "abc.def"},
		{"missing header", "", ""},
		{"missing scheme", "abc.def", ""},
		{"wrong scheme", "Basic abc.def", ""},
		{"lowercase scheme is rejected", "bearer abc.def", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, BearerToken(c))
		})
	}
}

func TestSessionRequired(t *testing.T) {
	t.Run("authenticated session reaches the handler with its identity", func(t *testing.T) {
		var gotToken string
		router := newGuardedRouter(&mockResolver{
			ResolveFunc: func(ctx context.Context, token string) (usecase.SessionState, error) {
				gotToken = token
				return usecase.SessionState{Authenticated: true, Fresh: true, AccountID: 7}, nil
			},
		})

		w := doGuarded(t, router, "Bearer good-token")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "good-token", gotToken)
		assert.JSONEq(t, `{"account_id":7,"id_ok":true,"fresh":true,"token":"good-token"}`, w.Body.String())
	})

	t.Run("stale session still passes the guard, just not fresh", func(t *testing.T) {
		router := newGuardedRouter(&mockResolver{
			ResolveFunc: func(ctx context.Context, token string) (usecase.SessionState, error) {
				return usecase.SessionState{Authenticated: true, Fresh: false, AccountID: 7}, nil
			},
		})

		w := doGuarded(t, router, "Bearer stale-token")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"fresh":false`)
	})

	t.Run("anonymous resolution gets a 401", func(t *testing.T) {
		router := newGuardedRouter(&mockResolver{})
		w := doGuarded(t, router, "Bearer bad-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing Authorization header gets a 401", func(t *testing.T) {
		router := newGuardedRouter(&mockResolver{})
		w := doGuarded(t, router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("store failure gets a 500, not a 401", func(t *testing.T) {
		router := newGuardedRouter(&mockResolver{
			ResolveFunc: func(ctx context.Context, token string) (usecase.SessionState, error) {
				return usecase.Anonymous, errors.New("connection refused")
			},
		})
		w := doGuarded(t, router, "Bearer any-token")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAccountID(t *testing.T) {
	t.Run("absent outside the guard", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		_, ok := AccountID(c)
		assert.False(t, ok)
	})

	t.Run("wrong type reads as absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ContextAccountID, "7")
		_, ok := AccountID(c)
		assert.False(t, ok)
	})
}
