package dto

import "github.com/noah-isme/academy-api/pkg/format"

// CreateUserRequest is the payload for creating a user. The name and
// loose_email tags apply the bounds and the deliberately permissive email
// pattern from pkg/format, not RFC 5322.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,name"`
	Email string `json:"email" validate:"required,loose_email"`
}

// Normalize trims surrounding whitespace from string fields.
func (r *CreateUserRequest) Normalize() {
	r.Name = format.Sanitize(r.Name)
	r.Email = format.Sanitize(r.Email)
}

// UpdateUserRequest carries a partial user update.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,name"`
	Email *string `json:"email" validate:"omitempty,loose_email"`
}

// Normalize trims surrounding whitespace from supplied string fields.
func (r *UpdateUserRequest) Normalize() {
	for _, s := range []*string{r.Name, r.Email} {
		if s != nil {
			*s = format.Sanitize(*s)
		}
	}
}

// ListUsersQuery holds the raw list query values; see ListCoursesQuery for
// the shape-vs-policy split.
type ListUsersQuery struct {
	Page  string `form:"page" json:"page"`
	Limit string `form:"limit" json:"limit"`
}
