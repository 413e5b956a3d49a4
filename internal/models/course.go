package models

import "time"

// CourseLevel enumerates the difficulty levels a course may declare.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Valid reports whether the level is one of the known values.
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course is a catalog entry. CreatedAt is immutable after creation;
// UpdatedAt is refreshed on every mutation.
type Course struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Instructor  string      `json:"instructor"`
	Duration    int         `json:"duration"`
	Level       CourseLevel `json:"level"`
	CreatedAt   time.Time   `json:"created"`
	UpdatedAt   time.Time   `json:"updated"`
}

// CourseFilter captures listing criteria for courses.
type CourseFilter struct {
	Level  *CourseLevel
	Offset int
	Limit  int
}
