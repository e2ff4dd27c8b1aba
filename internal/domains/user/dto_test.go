package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password123",
		FullName: "Alice Smith",
	}
}

func TestRegisterRequestNormalize(t *testing.T) {
	req := RegisterRequest{
		Email:    "  alice@example.com ",
		Username: "  Alice_99 ",
		FullName: "  Alice   \t Smith  ",
	}
	req.Normalize()

	assert.Equal(t, "alice@example.com", req.Email)
	assert.Equal(t, "alice_99", req.Username)
	assert.Equal(t, "Alice Smith", req.FullName)
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr bool
	}{
		{"valid", func(r *RegisterRequest) {}, false},
		{"no full name", func(r *RegisterRequest) { r.FullName = "" }, false},
		{"username with inner separators", func(r *RegisterRequest) { r.Username = "a-b_c9" }, false},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, true},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, true},
		{"username too short", func(r *RegisterRequest) { r.Username = "ab" }, true},
		{"username too long", func(r *RegisterRequest) { r.Username = strings.Repeat("a", 51) }, true},
		{"username leading underscore", func(r *RegisterRequest) { r.Username = "_alice" }, true},
		{"username trailing dash", func(r *RegisterRequest) { r.Username = "alice-" }, true},
		{"username with space", func(r *RegisterRequest) { r.Username = "ali ce" }, true},
		{"password too short", func(r *RegisterRequest) { r.Password = "short" }, true},
		{"password too long", func(r *RegisterRequest) { r.Password = strings.Repeat("x", 101) }, true},
		{"full name too long", func(r *RegisterRequest) { r.FullName = strings.Repeat("n", 101) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Username: "alice", Password: "pw"}.Validate())
	assert.Error(t, LoginRequest{Username: "", Password: "pw"}.Validate())
	assert.Error(t, LoginRequest{Username: "alice", Password: ""}.Validate())
}

func TestUserToDTOHidesPassword(t *testing.T) {
	u := User{
		ID:             7,
		Email:          "alice@example.com",
		Username:       "alice",
		HashedPassword: "$2a$12$secret",
	}

	dto := u.ToDTO()
	require.Equal(t, int64(7), dto.ID)
	assert.Equal(t, "alice", dto.Username)
	assert.Nil(t, dto.FullName)
}
