package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/internal/store"
	apperrors "github.com/noah-isme/academy-api/pkg/errors"
)

func newCourseService() (*CourseService, *store.CourseStore) {
	st := store.NewCourseStore()
	return NewCourseService(st, NewValidator(), nil), st
}

func validCreateCourse() dto.CreateCourseRequest {
	return dto.CreateCourseRequest{
		Title:       "Introduction to Go",
		Description: "A course about the Go programming language.",
		Instructor:  "Rina Wijaya",
		Duration:    40,
		Level:       "beginner",
	}
}

func fieldErrors(t *testing.T, err error) []apperrors.FieldError {
	t.Helper()
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, 400, appErr.Status)
	return appErr.Fields
}

func fieldNames(fields []apperrors.FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

func TestCourseCreateTrimsStrings(t *testing.T) {
	svc, _ := newCourseService()

	req := validCreateCourse()
	req.Title = "  Introduction to Go  "
	req.Instructor = "\tRina Wijaya\n"

	course, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Go", course.Title)
	assert.Equal(t, "Rina Wijaya", course.Instructor)
	assert.Equal(t, 40, course.Duration)
	assert.Equal(t, models.LevelBeginner, course.Level)
	assert.False(t, course.CreatedAt.IsZero())
}

func TestCourseCreateShortTitleCitesBound(t *testing.T) {
	svc, _ := newCourseService()

	req := validCreateCourse()
	req.Title = "Go"

	_, err := svc.Create(context.Background(), req)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "title", fields[0].Field)
	assert.Contains(t, fields[0].Message, "3")
	assert.Contains(t, fields[0].Message, "characters")
}

func TestCourseCreateEveryFieldInvalid(t *testing.T) {
	svc, _ := newCourseService()

	_, err := svc.Create(context.Background(), dto.CreateCourseRequest{
		Title:       "AB",
		Description: "short",
		Instructor:  "X",
		Duration:    500,
		Level:       "guru",
	})

	fields := fieldErrors(t, err)
	names := fieldNames(fields)
	assert.ElementsMatch(t, []string{"title", "description", "instructor", "duration", "level"}, names)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	assert.Contains(t, byField["title"], "3")
	assert.Contains(t, byField["description"], "10")
	assert.Contains(t, byField["duration"], "200")
	assert.Contains(t, byField["level"], "beginner")
}

func TestCourseCreateMissingFields(t *testing.T) {
	svc, _ := newCourseService()

	_, err := svc.Create(context.Background(), dto.CreateCourseRequest{})
	fields := fieldErrors(t, err)
	assert.Contains(t, fieldNames(fields), "title")
	for _, f := range fields {
		assert.Contains(t, f.Message, "required")
	}
}

func TestCourseUpdatePreservesAbsentFields(t *testing.T) {
	svc, _ := newCourseService()
	created, err := svc.Create(context.Background(), validCreateCourse())
	require.NoError(t, err)

	title := "Advanced Go"
	updated, err := svc.Update(context.Background(), "1", dto.UpdateCourseRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Advanced Go", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Instructor, updated.Instructor)
	assert.Equal(t, created.Duration, updated.Duration)
	assert.Equal(t, created.Level, updated.Level)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestCourseUpdateValidatesSuppliedFields(t *testing.T) {
	svc, _ := newCourseService()
	_, err := svc.Create(context.Background(), validCreateCourse())
	require.NoError(t, err)

	bad := "no"
	_, err = svc.Update(context.Background(), "1", dto.UpdateCourseRequest{Title: &bad})
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "title", fields[0].Field)
}

func TestCourseUpdateNotFound(t *testing.T) {
	svc, _ := newCourseService()

	title := "Anything At All"
	_, err := svc.Update(context.Background(), "42", dto.UpdateCourseRequest{Title: &title})

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
}

func TestCourseGet(t *testing.T) {
	svc, _ := newCourseService()
	_, err := svc.Create(context.Background(), validCreateCourse())
	require.NoError(t, err)

	course, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), course.ID)

	_, err = svc.Get(context.Background(), "99")
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status, "valid but unknown id is a 404")

	_, err = svc.Get(context.Background(), "abc")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Status, "malformed id is a 400, not a 404")
}

func TestCourseListPagination(t *testing.T) {
	svc, st := newCourseService()
	store.SeedCourses(st)

	courses, meta, err := svc.List(context.Background(), dto.ListCoursesQuery{Page: "2", Limit: "2"})
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestCourseListExtremePageReturnsEmptyPage(t *testing.T) {
	svc, st := newCourseService()
	store.SeedCourses(st)

	courses, meta, err := svc.List(context.Background(), dto.ListCoursesQuery{Page: "9223372036854775807", Limit: "10"})
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestCourseListLevelFilter(t *testing.T) {
	svc, st := newCourseService()
	store.SeedCourses(st)

	courses, meta, err := svc.List(context.Background(), dto.ListCoursesQuery{Level: "advanced"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, models.LevelAdvanced, courses[0].Level)
	assert.Equal(t, 1, meta.Total)
}

func TestCourseListInvalidLevelIsShapeError(t *testing.T) {
	svc, _ := newCourseService()

	_, _, err := svc.List(context.Background(), dto.ListCoursesQuery{Level: "guru"})
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "level", fields[0].Field)
}

func TestCourseListPaginationPolicyErrors(t *testing.T) {
	svc, _ := newCourseService()

	_, _, err := svc.List(context.Background(), dto.ListCoursesQuery{Page: "0"})
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "page", fields[0].Field)

	_, _, err = svc.List(context.Background(), dto.ListCoursesQuery{Limit: "101"})
	fields = fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "limit", fields[0].Field)
}
