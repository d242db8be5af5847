package content

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json field names in validation errors, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the struct tags on an entity or patch and returns an
// error naming the first offending field, suitable for a 400 response body.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("field %q is required", fe.Field())
		case "oneof":
			return fmt.Errorf("field %q must be one of: %s", fe.Field(), fe.Param())
		case "email":
			return fmt.Errorf("field %q must be a valid email address", fe.Field())
		case "min":
			return fmt.Errorf("field %q is below the minimum of %s", fe.Field(), fe.Param())
		}
		return fmt.Errorf("field %q is invalid", fe.Field())
	}
	return err
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a post title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
