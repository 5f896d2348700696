package domain

import "time"

// CourseLevel is the advertised difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Course is a catalog entry. Content modeling (lessons, media) lives in the
// backend; the portal only lists and displays.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Level       CourseLevel `json:"level"`
	Price       float64     `json:"price"`
	Instructor  string      `json:"instructor"`
	Rating      float64     `json:"rating"`
	ImageURL    string      `json:"image_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
