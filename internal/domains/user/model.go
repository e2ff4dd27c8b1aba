package user

import (
	"blog-backend/internal/shared"
)

// User is the domain entity, mapped 1:1 to the users table.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Username string `db:"username" json:"username"`

	// Never expose in JSON
	HashedPassword string `db:"hashed_password" json:"-"`

	FullName *string `db:"full_name" json:"full_name,omitempty"`

	shared.Timestamps
	shared.SoftDelete
}

// ToDTO returns the public shape of the user.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
