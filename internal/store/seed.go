package store

import "github.com/noah-isme/academy-api/internal/models"

// SeedCourses loads the demo catalog used when the store starts empty.
func SeedCourses(s *CourseStore) {
	s.Create(models.Course{
		Title:       "Introduction to Go",
		Description: "Syntax, tooling, and the standard library from zero.",
		Instructor:  "Rina Wijaya",
		Duration:    40,
		Level:       models.LevelBeginner,
	})
	s.Create(models.Course{
		Title:       "Building REST APIs",
		Description: "Designing and shipping HTTP services with validation and pagination.",
		Instructor:  "Dimas Putra",
		Duration:    32,
		Level:       models.LevelIntermediate,
	})
	s.Create(models.Course{
		Title:       "Concurrency Patterns",
		Description: "Goroutines, channels, and synchronisation in production systems.",
		Instructor:  "Ayu Lestari",
		Duration:    24,
		Level:       models.LevelAdvanced,
	})
}

// SeedUsers loads the demo user list.
func SeedUsers(s *UserStore) {
	s.Create(models.User{Name: "Budi Santoso", Email: "budi@example.com"})
	s.Create(models.User{Name: "Siti Rahayu", Email: "siti@example.com"})
}
