package domain

import (
	"slices"
	"strings"
	"time"
)

// MainProject is the default work-code. It carries no explicit time; its
// share of the day is derived by AllocateMainTime.
type MainProject struct {
	Name string `yaml:"name"`
	Code string `yaml:"code" validate:"required"`
}

// SubProject is a work-code with an explicit daily time allocation,
// optionally restricted to certain weekdays (0=Sunday .. 6=Saturday).
type SubProject struct {
	Name string `yaml:"name"`
	Code string `yaml:"code" validate:"required"`
	Time string `yaml:"time" validate:"required,hhmm"`
	Days []int  `yaml:"days,omitempty" validate:"omitempty,dive,min=0,max=6"`
}

// Projects is the user-edited project configuration for one person.
type Projects struct {
	Main MainProject  `yaml:"main"`
	Subs []SubProject `yaml:"sub,omitempty" validate:"omitempty,dive"`
}

// ValidProjects reports whether an untyped value matches the Projects shape.
// It fails closed: any deviation anywhere yields false. This is the only
// ingestion gate; everything downstream assumes an already-validated value.
func ValidProjects(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	main, ok := m["main"].(map[string]any)
	if !ok {
		return false
	}
	if _, ok := main["code"].(string); !ok {
		return false
	}
	rawSubs, present := m["sub"]
	if !present || rawSubs == nil {
		return true
	}
	subs, ok := rawSubs.([]any)
	if !ok {
		return false
	}
	for _, rawSub := range subs {
		sub, ok := rawSub.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := sub["code"].(string); !ok {
			return false
		}
		if _, ok := sub["time"].(string); !ok {
			return false
		}
		rawDays, present := sub["days"]
		if !present || rawDays == nil {
			continue
		}
		days, ok := rawDays.([]any)
		if !ok {
			return false
		}
		for _, d := range days {
			if _, ok := d.(int); !ok {
				return false
			}
		}
	}
	return true
}

// SubsForToday returns the sub-projects applicable on the given weekday, in
// configured order. Order is a contract: it decides which numbered input
// slot each project lands in. No Days restriction means every day.
func SubsForToday(p Projects, today time.Weekday) []SubProject {
	subs := make([]SubProject, 0, len(p.Subs))
	for _, s := range p.Subs {
		if len(s.Days) == 0 || slices.Contains(s.Days, int(today)) {
			subs = append(subs, s)
		}
	}
	return subs
}

// AllocateMainTime derives the main project's time for the day: the total
// worked time scraped from the page minus today's sub-project times. A
// negative remainder is a configuration error and must abort before any
// page field is filled.
func AllocateMainTime(p Projects, totalWorkTime string, today time.Weekday) (string, error) {
	subs := SubsForToday(p, today)
	times := make([]string, 0, len(subs))
	for _, s := range subs {
		times = append(times, s.Time)
	}
	remaining, err := SubtractDurations(totalWorkTime, times)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(remaining, "-") {
		return "", ErrOverAllocation
	}
	return remaining, nil
}
