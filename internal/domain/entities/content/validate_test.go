package content

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Building a Go API!  ", "building-a-go-api"},
		{"Already-Slugged", "already-slugged"},
		{"C++ & Go: A Comparison", "c-go-a-comparison"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestValidateRequiredFields(t *testing.T) {
	err := Validate(&Skill{Name: "Go", Level: "Expert"})
	if err == nil {
		t.Fatal("expected missing category to fail")
	}
	if !strings.Contains(err.Error(), `"category"`) {
		t.Fatalf("error must name the json field: %v", err)
	}
}

func TestValidateOneOf(t *testing.T) {
	skill := &Skill{Name: "Go", Category: "Backend", Level: "Wizard"}
	err := Validate(skill)
	if err == nil {
		t.Fatal("expected unknown level to fail")
	}
	if !strings.Contains(err.Error(), `"level"`) || !strings.Contains(err.Error(), "one of") {
		t.Fatalf("unexpected error: %v", err)
	}

	skill.Level = "Advanced"
	if err := Validate(skill); err != nil {
		t.Fatalf("valid skill rejected: %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	msg := &ContactMessage{Name: "A", Email: "not-an-email", Message: "hi"}
	err := Validate(msg)
	if err == nil || !strings.Contains(err.Error(), `"email"`) {
		t.Fatalf("expected email validation error, got %v", err)
	}

	msg.Email = "a@b.dev"
	if err := Validate(msg); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}
}

func TestValidatePatchOmittedFieldsPass(t *testing.T) {
	// An empty patch has nothing to validate; only set fields are checked.
	if err := Validate(&SkillPatch{}); err != nil {
		t.Fatalf("empty patch rejected: %v", err)
	}

	bad := "Wizard"
	if err := Validate(&SkillPatch{Level: &bad}); err == nil {
		t.Fatal("expected invalid level in patch to fail")
	}
}

func TestPatchApplyToMergesOnlySetFields(t *testing.T) {
	rec := &Project{
		ID:           "01A",
		Title:        "Portfolio",
		Description:  "A website",
		Technologies: []string{"Go"},
		Featured:     true,
		Status:       "completed",
	}

	title := "Portfolio v2"
	featured := false
	patch := &ProjectPatch{Title: &title, Featured: &featured}
	patch.ApplyTo(rec)

	if rec.Title != "Portfolio v2" {
		t.Fatalf("title not applied: %q", rec.Title)
	}
	if rec.Featured {
		t.Fatal("explicit false must be applied")
	}
	if rec.Description != "A website" || rec.Status != "completed" || len(rec.Technologies) != 1 {
		t.Fatalf("omitted fields must be preserved: %+v", rec)
	}
	if rec.ID != "01A" {
		t.Fatalf("id must never change: %q", rec.ID)
	}
}

func TestBlogPatchStatus(t *testing.T) {
	rec := &BlogPost{Title: "t", Slug: "t", Excerpt: "e", Content: "c", Author: "a", Category: "go", Status: BlogStatusDraft}

	status := BlogStatusPublished
	(&BlogPatch{Status: &status}).ApplyTo(rec)
	if rec.Status != BlogStatusPublished {
		t.Fatalf("status not applied: %q", rec.Status)
	}

	bogus := "archived"
	if err := Validate(&BlogPatch{Status: &bogus}); err == nil {
		t.Fatal("expected unknown status to fail validation")
	}
}
