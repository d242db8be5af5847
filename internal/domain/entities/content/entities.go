// Package content defines the application's core content-related domain entities.
package content

import "time"

// SocialLinks groups the profile's external profiles.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin" bson:"linkedin"`
	GitHub    string `json:"github" bson:"github"`
	Twitter   string `json:"twitter" bson:"twitter"`
	Instagram string `json:"instagram" bson:"instagram"`
}

// Profile is the singleton record rendered on the public landing page.
// It is updated in place and never deleted.
type Profile struct {
	ID           string      `json:"id" bson:"_id"`
	Name         string      `json:"name" bson:"name" validate:"required"`
	Designation  string      `json:"designation" bson:"designation" validate:"required"`
	Introduction string      `json:"introduction" bson:"introduction"`
	Phone        string      `json:"phone" bson:"phone"`
	Email        string      `json:"email" bson:"email" validate:"required,email"`
	Location     string      `json:"location" bson:"location"`
	ResumeURL    string      `json:"resumeUrl" bson:"resumeUrl"`
	ProfileImage string      `json:"profileImage" bson:"profileImage"`
	SocialLinks  SocialLinks `json:"socialLinks" bson:"socialLinks"`
	CreatedAt    time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt" bson:"updatedAt"`
}

type EducationEntry struct {
	ID          string    `json:"id" bson:"_id"`
	Institution string    `json:"institution" bson:"institution" validate:"required"`
	Degree      string    `json:"degree" bson:"degree" validate:"required"`
	Period      string    `json:"period" bson:"period" validate:"required"`
	Description string    `json:"description" bson:"description"`
	Location    string    `json:"location" bson:"location"`
	GPA         string    `json:"gpa" bson:"gpa"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type ExperienceEntry struct {
	ID          string    `json:"id" bson:"_id"`
	Company     string    `json:"company" bson:"company" validate:"required"`
	Position    string    `json:"position" bson:"position" validate:"required"`
	Period      string    `json:"period" bson:"period" validate:"required"`
	Description []string  `json:"description" bson:"description" validate:"required,min=1"`
	Tags        []string  `json:"tags" bson:"tags"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Skill levels follow the enumerated revision of the schema; the numeric
// 0-100 revision was dropped.
type Skill struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name" validate:"required"`
	Category  string    `json:"category" bson:"category" validate:"required,oneof=Frontend Backend Database DevOps Mobile Design Other"`
	Level     string    `json:"level" bson:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Project struct {
	ID              string    `json:"id" bson:"_id"`
	Title           string    `json:"title" bson:"title" validate:"required"`
	Description     string    `json:"description" bson:"description" validate:"required"`
	LongDescription string    `json:"longDescription" bson:"longDescription"`
	Technologies    []string  `json:"technologies" bson:"technologies"`
	Images          []string  `json:"images" bson:"images"`
	LiveURL         string    `json:"liveUrl" bson:"liveUrl"`
	GithubURL       string    `json:"githubUrl" bson:"githubUrl"`
	Featured        bool      `json:"featured" bson:"featured"`
	Status          string    `json:"status" bson:"status" validate:"omitempty,oneof=planning in-progress completed on-hold"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

const (
	ProjectStatusDefault = "completed"

	BlogStatusPublished = "published"
	BlogStatusDraft     = "draft"

	MessageStatusUnread = "unread"
	MessageStatusRead   = "read"
)

type BlogPost struct {
	ID            string    `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title" validate:"required"`
	Slug          string    `json:"slug" bson:"slug"`
	Excerpt       string    `json:"excerpt" bson:"excerpt" validate:"required"`
	Content       string    `json:"content" bson:"content" validate:"required"`
	FeaturedImage string    `json:"featuredImage" bson:"featuredImage"`
	Author        string    `json:"author" bson:"author" validate:"required"`
	Tags          []string  `json:"tags" bson:"tags"`
	Category      string    `json:"category" bson:"category" validate:"required"`
	ReadTime      int       `json:"readTime" bson:"readTime" validate:"omitempty,min=1"`
	Featured      bool      `json:"featured" bson:"featured"`
	Status        string    `json:"status" bson:"status" validate:"omitempty,oneof=published draft"`
	PublishedAt   time.Time `json:"publishedAt" bson:"publishedAt"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

type ContactMessage struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Message   string    `json:"message" bson:"message" validate:"required"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
