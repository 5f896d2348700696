package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-portal/internal/core/ports"
)

// CourseHandler serves the public catalog and the admin create endpoint.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type createCourseRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Level       string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Price       float64 `json:"price" validate:"gte=0"`
	Instructor  string  `json:"instructor" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

// List serves the catalog with search, category filter and pagination.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Param        q         query     string  false  "Search over title and instructor"
// @Param        category  query     string  false  "Category filter"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  ports.CourseList
// @Failure      500       {object}  map[string]string
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := h.service.List(c.Request().Context(), ports.CourseFilter{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get serves a single course by id.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Create adds a catalog entry. Admin-only; enforced by the RequireRoles
// middleware on the route.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  domain.Course
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	course, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Price:       req.Price,
		Instructor:  req.Instructor,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, course)
}
