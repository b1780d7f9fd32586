package model

import "time"

type ContentType string

const (
	ContentVideo   ContentType = "video"
	ContentArticle ContentType = "article"
	ContentPDF     ContentType = "pdf"
)

// CourseContent is one published (or draft) learning material assigned to a
// course week. The maximum published week number drives the progress totals.
// swagger:model CourseContent
type CourseContent struct {
	BaseModel
	WeekNumber      int         `gorm:"not null;index" json:"weekNumber"`
	Title           string      `gorm:"size:255;not null" json:"title"`
	Description     string      `gorm:"type:text" json:"description"`
	ContentType     ContentType `gorm:"size:20;not null" json:"contentType"`
	ContentURL      string      `gorm:"size:255" json:"contentUrl"`
	DurationSeconds int         `gorm:"default:0" json:"durationSeconds"`
	IsPublished     bool        `gorm:"default:false;index" json:"isPublished"`
	PublishedAt     *time.Time  `json:"publishedAt"`
}

func (CourseContent) TableName() string {
	return "course_contents"
}
