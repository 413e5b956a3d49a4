package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	apperrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/pagination"
	"github.com/noah-isme/academy-api/pkg/response"
)

type courseService interface {
	List(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, *pagination.Meta, error)
	Get(ctx context.Context, rawID string) (*models.Course, error)
	Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, rawID string, req dto.UpdateCourseRequest) (*models.Course, error)
}

// CourseHandler handles course CRUD endpoints.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// Register wires the course routes onto the group.
func (h *CourseHandler) Register(g *gin.RouterGroup) {
	g.GET("/courses", h.List)
	g.GET("/courses/:id", h.Get)
	g.POST("/courses", h.Create)
	g.PUT("/courses/:id", h.Update)
}

// List returns a page of courses, optionally filtered by level.
func (h *CourseHandler) List(c *gin.Context) {
	var query dto.ListCoursesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrBadRequest.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}

	courses, meta, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses, meta)
}

// Get returns a single course by id.
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, course)
}

// Create adds a new course.
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrBadRequest.Code, http.StatusBadRequest, "invalid request body"))
		return
	}

	course, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, course)
}

// Update applies a partial update to an existing course.
func (h *CourseHandler) Update(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrBadRequest.Code, http.StatusBadRequest, "invalid request body"))
		return
	}

	course, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, course)
}
