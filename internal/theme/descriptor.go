package theme

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Composite sheets share the screenshot directory, so their names cannot be
// used as slugs.
const (
	GridArtifact  = "comparison-grid"
	PairsArtifact = "dark-light-comparison"
)

// ErrReservedSlug marks a slug that would collide with a composite sheet.
var ErrReservedSlug = errors.New("slug is reserved")

// Descriptor identifies one theme of the catalog.
type Descriptor struct {
	Slug string `json:"slug" validate:"required,slug"`
	Name string `json:"name" validate:"required"`
	Dark bool   `json:"dark"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks that the descriptor has a name and a filesystem-safe slug.
func (d Descriptor) Validate() error {
	if err := validatorInstance().Struct(d); err != nil {
		return fmt.Errorf("theme %q: %w", d.Slug, err)
	}
	switch d.Slug {
	case GridArtifact, PairsArtifact:
		return fmt.Errorf("theme %q: %w", d.Slug, ErrReservedSlug)
	}
	return nil
}
