// Package store holds the process-lifetime in-memory resource lists. Each
// store owns its records behind a mutex so concurrent handlers cannot lose
// updates, and hands out copies rather than references. IDs come from a
// per-store monotonic counter instead of a random generator, so they are
// unique for the life of the process.
package store

import (
	"sync"
	"time"

	"github.com/noah-isme/academy-api/internal/models"
)

// CourseStore is the in-memory course list.
type CourseStore struct {
	mu      sync.RWMutex
	nextID  int64
	courses []models.Course
}

// NewCourseStore creates an empty course store.
func NewCourseStore() *CourseStore {
	return &CourseStore{nextID: 1}
}

// List returns a page of courses matching the filter plus the total count of
// matching records before paging.
func (s *CourseStore) List(filter models.CourseFilter) ([]models.Course, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if filter.Level != nil && c.Level != *filter.Level {
			continue
		}
		matched = append(matched, c)
	}

	total := len(matched)
	if filter.Offset < 0 || filter.Offset >= total {
		return []models.Course{}, total
	}

	end := total
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}

	page := make([]models.Course, end-filter.Offset)
	copy(page, matched[filter.Offset:end])
	return page, total
}

// Get returns a copy of the course with the given id.
func (s *CourseStore) Get(id int64) (*models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			copy := c
			return &copy, true
		}
	}
	return nil, false
}

// Create assigns an id and timestamps, appends the record, and returns it.
func (s *CourseStore) Create(course models.Course) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	course.ID = s.nextID
	s.nextID++
	course.CreatedAt = now
	course.UpdatedAt = now

	s.courses = append(s.courses, course)
	return course
}

// Update applies mutate to the stored record under the write lock and
// refreshes UpdatedAt. CreatedAt is never touched after creation.
func (s *CourseStore) Update(id int64, mutate func(*models.Course)) (*models.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == id {
			mutate(&s.courses[i])
			s.courses[i].UpdatedAt = time.Now().UTC()
			copy := s.courses[i]
			return &copy, true
		}
	}
	return nil, false
}

// UserStore is the in-memory user list.
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  []models.User
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// List returns a page of users plus the total count.
func (s *UserStore) List(filter models.UserFilter) ([]models.User, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.users)
	if filter.Offset < 0 || filter.Offset >= total {
		return []models.User{}, total
	}

	end := total
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}

	page := make([]models.User, end-filter.Offset)
	copy(page, s.users[filter.Offset:end])
	return page, total
}

// Get returns a copy of the user with the given id.
func (s *UserStore) Get(id int64) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			copy := u
			return &copy, true
		}
	}
	return nil, false
}

// Create assigns an id and timestamps, appends the record, and returns it.
func (s *UserStore) Create(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users = append(s.users, user)
	return user
}

// Update applies mutate to the stored record under the write lock and
// refreshes UpdatedAt.
func (s *UserStore) Update(id int64, mutate func(*models.User)) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			mutate(&s.users[i])
			s.users[i].UpdatedAt = time.Now().UTC()
			copy := s.users[i]
			return &copy, true
		}
	}
	return nil, false
}
