package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/token"
)

// fakeUserRepo serves only the lookup paths the middleware exercises.
type fakeUserRepo struct {
	byUsername map[string]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (int64, error) {
	panic("not used in middleware tests")
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	panic("not used in middleware tests")
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, ok := f.byUsername[username]
	if !ok || u.IsDeleted {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) (*user.User, error) {
	panic("not used in middleware tests")
}

func (f *fakeUserRepo) FindAnyByID(ctx context.Context, id int64) (*user.User, error) {
	panic("not used in middleware tests")
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *token.Manager, *fakeUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := token.NewManager("test-secret-key-for-unit-tests-only", "HS256")
	repo := &fakeUserRepo{byUsername: map[string]*user.User{
		"alice": {ID: 1, Username: "alice", Email: "alice@example.com"},
	}}

	router := gin.New()
	router.GET("/protected", Auth(tokens, repo), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, strconv.FormatInt(u.ID, 10))
	})

	return router, tokens, repo
}

func TestAuthMiddleware(t *testing.T) {
	router, tokens, repo := newAuthTestRouter(t)

	validToken, err := tokens.Generate("alice", time.Hour)
	require.NoError(t, err)

	expiredToken, err := tokens.Generate("alice", -time.Minute)
	require.NoError(t, err)

	unknownUserToken, err := tokens.Generate("ghost", time.Hour)
	require.NoError(t, err)

	deletedUserToken, err := tokens.Generate("bob", time.Hour)
	require.NoError(t, err)
	bob := &user.User{ID: 2, Username: "bob"}
	bob.MarkDeleted()
	repo.byUsername["bob"] = bob

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic dXNlcjpwdw==", http.StatusUnauthorized},
		{"bare token without scheme", validToken, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"token for unknown user", "Bearer " + unknownUserToken, http.StatusUnauthorized},
		// A valid token for a soft-deleted user stops working immediately.
		{"token for deleted user", "Bearer " + deletedUserToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
				assert.Contains(t, rec.Body.String(), "Could not validate credentials")
			} else {
				assert.Equal(t, "1", rec.Body.String())
			}
		})
	}
}

func TestCurrentUserWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
