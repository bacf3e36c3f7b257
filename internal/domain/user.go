package domain

import "time"

// User is a registered account of the site.
type User struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	PasswordHash  string
	Role          Role
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
