package ports

import (
	"context"

	"github.com/learnhub/course-portal/internal/core/domain"
)

// CourseFilter narrows a catalog listing. Zero values mean "no restriction".
type CourseFilter struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

// CourseList is one page of catalog results.
type CourseList struct {
	Items []domain.Course `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Pages int             `json:"pages"`
}

// CreateCourseInput carries the fields an admin supplies for a new course.
type CreateCourseInput struct {
	Title       string
	Description string
	Category    string
	Level       string
	Price       float64
	Instructor  string
	ImageURL    string
}

type CourseService interface {
	List(ctx context.Context, filter CourseFilter) (*CourseList, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, input CreateCourseInput) (*domain.Course, error)
}

type CourseRepository interface {
	List(ctx context.Context, filter CourseFilter) ([]domain.Course, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	Insert(ctx context.Context, course *domain.Course) (*domain.Course, error)
}
