package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50
)

type CourseService struct {
	repo   ports.CourseRepository
	logger zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

// List returns one page of the catalog. Page and limit are clamped to sane
// bounds before hitting the repository.
func (s *CourseService) List(ctx context.Context, filter ports.CourseFilter) (*ports.CourseList, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list courses")
		return nil, err
	}

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.CourseList{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Pages: pages,
	}, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CourseService) Create(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	course := &domain.Course{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Level:       normalizeLevel(input.Level),
		Price:       input.Price,
		Instructor:  input.Instructor,
		ImageURL:    input.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, course)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create course")
		return nil, err
	}

	s.logger.Info().Str("course_id", created.ID).Str("title", created.Title).Msg("course created")
	return created, nil
}

func normalizeLevel(level string) domain.CourseLevel {
	switch domain.CourseLevel(level) {
	case domain.LevelIntermediate:
		return domain.LevelIntermediate
	case domain.LevelAdvanced:
		return domain.LevelAdvanced
	default:
		return domain.LevelBeginner
	}
}
