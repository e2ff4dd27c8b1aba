package user

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Field limits, matching the storage schema.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
	MaxPasswordLength = 100
	MaxFullNameLength = 100
	MaxEmailLength    = 255
)

// usernameRe allows alphanumerics plus _ and -, but the first and last
// character must be alphanumeric.
var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9_-]*[a-zA-Z0-9])?$`)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// Normalize lowercases the username and collapses whitespace in the full
// name. Called before Validate so the stored values are canonical.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	r.FullName = whitespaceRe.ReplaceAllString(strings.TrimSpace(r.FullName), " ")
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, MaxEmailLength),
		),
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(MinUsernameLength, MaxUsernameLength),
			validation.Match(usernameRe).Error("username must be alphanumeric (can include _ and -, not at the edges)"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(MinPasswordLength, MaxPasswordLength),
		),
		validation.Field(&r.FullName,
			validation.Length(0, MaxFullNameLength),
		),
	)
}

// LoginRequest is the POST /auth/login form body.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserDTO is the public user shape. The password hash never leaves the
// domain package.
type UserDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
