package dto

import "github.com/noah-isme/academy-api/pkg/format"

// CreateCourseRequest is the payload for creating a course. String bounds
// apply to the trimmed value; call Normalize before validating.
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10,max=500"`
	Instructor  string `json:"instructor" validate:"required,min=2,max=50"`
	Duration    int    `json:"duration" validate:"required,gte=1,lte=200"`
	Level       string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
}

// Normalize trims surrounding whitespace from string fields.
func (r *CreateCourseRequest) Normalize() {
	r.Title = format.Sanitize(r.Title)
	r.Description = format.Sanitize(r.Description)
	r.Instructor = format.Sanitize(r.Instructor)
	r.Level = format.Sanitize(r.Level)
}

// UpdateCourseRequest carries a partial course update. Only supplied fields
// are validated; absent fields leave the stored value unchanged.
type UpdateCourseRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,min=10,max=500"`
	Instructor  *string `json:"instructor" validate:"omitempty,min=2,max=50"`
	Duration    *int    `json:"duration" validate:"omitempty,gte=1,lte=200"`
	Level       *string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// Normalize trims surrounding whitespace from supplied string fields.
func (r *UpdateCourseRequest) Normalize() {
	for _, s := range []*string{r.Title, r.Description, r.Instructor, r.Level} {
		if s != nil {
			*s = format.Sanitize(*s)
		}
	}
}

// ListCoursesQuery holds the raw list query values. Page and limit stay
// strings here: this layer only checks shape, bounds belong to the
// pagination package's separate policy pass.
type ListCoursesQuery struct {
	Page  string `form:"page" json:"page"`
	Limit string `form:"limit" json:"limit"`
	Level string `form:"level" json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}
