package content

// Patch types carry partial updates. Pointer fields distinguish "omitted"
// from "set to zero value"; omitted fields never touch the stored record,
// and no patch can reach the identifier or timestamps.

type ProfilePatch struct {
	Name         *string      `json:"name"`
	Designation  *string      `json:"designation"`
	Introduction *string      `json:"introduction"`
	Phone        *string      `json:"phone"`
	Email        *string      `json:"email" validate:"omitempty,email"`
	Location     *string      `json:"location"`
	ResumeURL    *string      `json:"resumeUrl"`
	ProfileImage *string      `json:"profileImage"`
	SocialLinks  *SocialLinks `json:"socialLinks"`
}

func (p *ProfilePatch) ApplyTo(rec *Profile) {
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Designation != nil {
		rec.Designation = *p.Designation
	}
	if p.Introduction != nil {
		rec.Introduction = *p.Introduction
	}
	if p.Phone != nil {
		rec.Phone = *p.Phone
	}
	if p.Email != nil {
		rec.Email = *p.Email
	}
	if p.Location != nil {
		rec.Location = *p.Location
	}
	if p.ResumeURL != nil {
		rec.ResumeURL = *p.ResumeURL
	}
	if p.ProfileImage != nil {
		rec.ProfileImage = *p.ProfileImage
	}
	if p.SocialLinks != nil {
		rec.SocialLinks = *p.SocialLinks
	}
}

type EducationPatch struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Period      *string `json:"period"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	GPA         *string `json:"gpa"`
}

func (p *EducationPatch) ApplyTo(rec *EducationEntry) {
	if p.Institution != nil {
		rec.Institution = *p.Institution
	}
	if p.Degree != nil {
		rec.Degree = *p.Degree
	}
	if p.Period != nil {
		rec.Period = *p.Period
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}
	if p.Location != nil {
		rec.Location = *p.Location
	}
	if p.GPA != nil {
		rec.GPA = *p.GPA
	}
}

type ExperiencePatch struct {
	Company     *string   `json:"company"`
	Position    *string   `json:"position"`
	Period      *string   `json:"period"`
	Description *[]string `json:"description"`
	Tags        *[]string `json:"tags"`
}

func (p *ExperiencePatch) ApplyTo(rec *ExperienceEntry) {
	if p.Company != nil {
		rec.Company = *p.Company
	}
	if p.Position != nil {
		rec.Position = *p.Position
	}
	if p.Period != nil {
		rec.Period = *p.Period
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}
	if p.Tags != nil {
		rec.Tags = *p.Tags
	}
}

type SkillPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category" validate:"omitempty,oneof=Frontend Backend Database DevOps Mobile Design Other"`
	Level    *string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
}

func (p *SkillPatch) ApplyTo(rec *Skill) {
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Category != nil {
		rec.Category = *p.Category
	}
	if p.Level != nil {
		rec.Level = *p.Level
	}
}

type ProjectPatch struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	Technologies    *[]string `json:"technologies"`
	Images          *[]string `json:"images"`
	LiveURL         *string   `json:"liveUrl"`
	GithubURL       *string   `json:"githubUrl"`
	Featured        *bool     `json:"featured"`
	Status          *string   `json:"status" validate:"omitempty,oneof=planning in-progress completed on-hold"`
}

func (p *ProjectPatch) ApplyTo(rec *Project) {
	if p.Title != nil {
		rec.Title = *p.Title
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}
	if p.LongDescription != nil {
		rec.LongDescription = *p.LongDescription
	}
	if p.Technologies != nil {
		rec.Technologies = *p.Technologies
	}
	if p.Images != nil {
		rec.Images = *p.Images
	}
	if p.LiveURL != nil {
		rec.LiveURL = *p.LiveURL
	}
	if p.GithubURL != nil {
		rec.GithubURL = *p.GithubURL
	}
	if p.Featured != nil {
		rec.Featured = *p.Featured
	}
	if p.Status != nil {
		rec.Status = *p.Status
	}
}

type BlogPatch struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	FeaturedImage *string   `json:"featuredImage"`
	Author        *string   `json:"author"`
	Tags          *[]string `json:"tags"`
	Category      *string   `json:"category"`
	ReadTime      *int      `json:"readTime" validate:"omitempty,min=1"`
	Featured      *bool     `json:"featured"`
	Status        *string   `json:"status" validate:"omitempty,oneof=published draft"`
}

func (p *BlogPatch) ApplyTo(rec *BlogPost) {
	if p.Title != nil {
		rec.Title = *p.Title
	}
	if p.Slug != nil {
		rec.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		rec.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		rec.Content = *p.Content
	}
	if p.FeaturedImage != nil {
		rec.FeaturedImage = *p.FeaturedImage
	}
	if p.Author != nil {
		rec.Author = *p.Author
	}
	if p.Tags != nil {
		rec.Tags = *p.Tags
	}
	if p.Category != nil {
		rec.Category = *p.Category
	}
	if p.ReadTime != nil {
		rec.ReadTime = *p.ReadTime
	}
	if p.Featured != nil {
		rec.Featured = *p.Featured
	}
	if p.Status != nil {
		rec.Status = *p.Status
	}
}

type MessagePatch struct {
	Status *string `json:"status" validate:"omitempty,oneof=unread read"`
}

func (p *MessagePatch) ApplyTo(rec *ContactMessage) {
	if p.Status != nil {
		rec.Status = *p.Status
	}
}
