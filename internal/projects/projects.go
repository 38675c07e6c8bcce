// Package projects ingests the user-edited project list. It is the single
// validation boundary: a Projects value returned from Load is trusted
// everywhere downstream.
package projects

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"ozo-attend/internal/domain"
)

// softSubLimit matches the number of entry rows the timesheet page renders.
// Exceeding it is suspicious but not structurally wrong, so it only warns.
const softSubLimit = 5

var hhmmPattern = regexp.MustCompile(`^\d+:[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})
	return v
}

// Load reads, structurally validates, and types the project list file.
func Load(path string, log *slog.Logger) (domain.Projects, error) {
	var p domain.Projects

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read projects file: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return p, fmt.Errorf("%w: %v", domain.ErrInvalidProjects, err)
	}
	if !domain.ValidProjects(raw) {
		return p, fmt.Errorf("%w: %s does not match the expected shape", domain.ErrInvalidProjects, path)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return domain.Projects{}, fmt.Errorf("%w: %v", domain.ErrInvalidProjects, err)
	}
	if err := validate.Struct(p); err != nil {
		return domain.Projects{}, fmt.Errorf("%w: %v", domain.ErrInvalidProjects, err)
	}

	if len(p.Subs) > softSubLimit {
		log.Warn("more sub-projects than the page has entry rows",
			slog.Int("count", len(p.Subs)),
			slog.Int("limit", softSubLimit),
		)
	}
	return p, nil
}
