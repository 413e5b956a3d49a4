package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	apperrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/logger"
	"github.com/noah-isme/academy-api/pkg/pagination"
)

type courseStore interface {
	List(filter models.CourseFilter) ([]models.Course, int)
	Get(id int64) (*models.Course, bool)
	Create(course models.Course) models.Course
	Update(id int64, mutate func(*models.Course)) (*models.Course, bool)
}

// CourseService owns validation and store access for the course endpoints.
type CourseService struct {
	store    courseStore
	validate *validator.Validate
	log      *logger.Logger
}

// NewCourseService creates a CourseService.
func NewCourseService(store courseStore, validate *validator.Validate, log *logger.Logger) *CourseService {
	if validate == nil {
		validate = NewValidator()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &CourseService{store: store, validate: validate, log: log}
}

// List returns a page of courses. The query struct is the shape pass (level
// enum); pagination bounds are the separate policy pass.
func (s *CourseService) List(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, *pagination.Meta, error) {
	if err := s.validate.Struct(query); err != nil {
		return nil, nil, validationError(err)
	}

	params, err := pagination.Validate(query.Page, query.Limit)
	if err != nil {
		return nil, nil, err
	}

	filter := models.CourseFilter{Offset: params.Offset(), Limit: params.Limit}
	if query.Level != "" {
		level := models.CourseLevel(query.Level)
		filter.Level = &level
	}

	start := time.Now()
	courses, total := s.store.List(filter)
	s.log.Performance("list_courses", time.Since(start), zap.Int("total", total))

	meta := pagination.Calculate(params.Page, params.Limit, total)
	return courses, &meta, nil
}

// Get returns a course by its raw path identifier.
func (s *CourseService) Get(ctx context.Context, rawID string) (*models.Course, error) {
	id, err := dto.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	course, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Create validates the payload and appends a new course.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	course := s.store.Create(models.Course{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Duration:    req.Duration,
		Level:       models.CourseLevel(req.Level),
	})

	s.log.Success("course created", zap.Int64("id", course.ID))
	return &course, nil
}

// Update applies the supplied fields to an existing course. Absent fields
// keep their stored value.
func (s *CourseService) Update(ctx context.Context, rawID string, req dto.UpdateCourseRequest) (*models.Course, error) {
	id, err := dto.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	course, ok := s.store.Update(id, func(c *models.Course) {
		if req.Title != nil {
			c.Title = *req.Title
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.Instructor != nil {
			c.Instructor = *req.Instructor
		}
		if req.Duration != nil {
			c.Duration = *req.Duration
		}
		if req.Level != nil {
			c.Level = models.CourseLevel(*req.Level)
		}
	})
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "course not found")
	}

	s.log.Success("course updated", zap.Int64("id", course.ID))
	return course, nil
}
