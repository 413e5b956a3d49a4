package models

import "time"

// User is an account record in the user list.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// UserFilter captures listing criteria for users.
type UserFilter struct {
	Offset int
	Limit  int
}
