package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/user"
)

// fakeUserService scripts the service responses so handler tests only
// exercise binding, status mapping and the response envelope.
type fakeUserService struct {
	registerDTO *user.UserDTO
	registerErr error
	loginRes    *user.TokenResponse
	loginErr    error
	getDTO      *user.UserDTO
	getErr      error
}

func (f *fakeUserService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	return f.registerDTO, f.registerErr
}

func (f *fakeUserService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeUserService) GetByID(ctx context.Context, id int64) (*user.UserDTO, error) {
	return f.getDTO, f.getErr
}

func newTestRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)

	router := gin.New()
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)
	router.GET("/users/:id", h.GetByID)
	return router
}

const validRegisterBody = `{
	"email": "alice@example.com",
	"username": "alice",
	"password": "password123"
}`

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeUserService
		wantStatus int
		wantInBody string
	}{
		{
			name:       "created",
			body:       validRegisterBody,
			svc:        &fakeUserService{registerDTO: &user.UserDTO{ID: 1, Username: "alice"}},
			wantStatus: http.StatusCreated,
			wantInBody: `"username":"alice"`,
		},
		{
			name:       "malformed json",
			body:       `{"email": `,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
			wantInBody: "Invalid request body",
		},
		{
			name:       "validation failure",
			body:       `{"email":"bad","username":"a","password":"x"}`,
			svc:        &fakeUserService{},
			wantStatus: http.StatusUnprocessableEntity,
			wantInBody: "VALIDATION_FAILED",
		},
		{
			name:       "duplicate email",
			body:       validRegisterBody,
			svc:        &fakeUserService{registerErr: user.ErrEmailTaken},
			wantStatus: http.StatusBadRequest,
			wantInBody: "Email already registered",
		},
		{
			name:       "duplicate username",
			body:       validRegisterBody,
			svc:        &fakeUserService{registerErr: user.ErrUsernameTaken},
			wantStatus: http.StatusBadRequest,
			wantInBody: "Username already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.svc)

			req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantInBody)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	postForm := func(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("success", func(t *testing.T) {
		router := newTestRouter(&fakeUserService{
			loginRes: &user.TokenResponse{AccessToken: "signed-token", TokenType: "bearer"},
		})

		rec := postForm(router, url.Values{"username": {"alice"}, "password": {"password123"}})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
		assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	})

	t.Run("bad credentials carry the bearer challenge", func(t *testing.T) {
		router := newTestRouter(&fakeUserService{loginErr: user.ErrInvalidCredentials})

		rec := postForm(router, url.Values{"username": {"alice"}, "password": {"wrong"}})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Contains(t, rec.Body.String(), "Incorrect username or password")
	})

	t.Run("missing fields", func(t *testing.T) {
		router := newTestRouter(&fakeUserService{})

		rec := postForm(router, url.Values{"username": {"alice"}})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestGetByIDHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router := newTestRouter(&fakeUserService{getDTO: &user.UserDTO{ID: 7, Username: "alice"}})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/7", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":7`)
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(&fakeUserService{getErr: user.ErrUserNotFound})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/7", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		router := newTestRouter(&fakeUserService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/abc", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
