package users

import "time"

// User is a stored account. PasswordHash holds the bcrypt hash, never
// the plaintext. Note that query and mutation results currently expose
// the hash to callers; see DESIGN.md before changing that.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserInput carries the createUser arguments. All fields are required;
// email format is not validated.
type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
