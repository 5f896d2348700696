package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
)

const courseCollection = "courses"

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(courseCollection)}
}

type mongoCourse struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Level       string             `bson:"level"`
	Price       float64            `bson:"price"`
	Instructor  string             `bson:"instructor"`
	Rating      float64            `bson:"rating"`
	ImageURL    string             `bson:"image_url,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *CourseRepository) List(ctx context.Context, filter ports.CourseFilter) ([]domain.Course, int64, error) {
	query := bson.M{}
	if filter.Query != "" {
		// Case-insensitive substring match over title and instructor, the
		// same fields the catalog search box targets.
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"instructor": re},
		}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find courses: %w", err)
	}
	defer cur.Close(ctx)

	var courses []domain.Course
	for cur.Next(ctx) {
		var mc mongoCourse
		if err := cur.Decode(&mc); err != nil {
			return nil, 0, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate courses: %w", err)
	}

	return courses, total, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	var mc mongoCourse
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	course := mc.toDomain()
	return &course, nil
}

func (r *CourseRepository) Insert(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	doc := mongoCourse{
		Title:       course.Title,
		Description: course.Description,
		Category:    course.Category,
		Level:       string(course.Level),
		Price:       course.Price,
		Instructor:  course.Instructor,
		Rating:      course.Rating,
		ImageURL:    course.ImageURL,
		CreatedAt:   course.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *course
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (mc mongoCourse) toDomain() domain.Course {
	return domain.Course{
		ID:          mc.ID.Hex(),
		Title:       mc.Title,
		Description: mc.Description,
		Category:    mc.Category,
		Level:       domain.CourseLevel(mc.Level),
		Price:       mc.Price,
		Instructor:  mc.Instructor,
		Rating:      mc.Rating,
		ImageURL:    mc.ImageURL,
		CreatedAt:   unixToTime(mc.CreatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
