package template

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Engine fills template placeholders with patient data. The clock is
// injectable so tests can pin the report date.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock returns an engine whose report-date fallback uses
// the given clock.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Populate substitutes each {{key}} in the template with data[key].
// Unknown template ids produce an empty string. Keys absent from data
// leave their placeholder in the output untouched, except reportDate,
// which falls back to the current date ("January 2, 2006" format).
func (e *Engine) Populate(templateID string, data map[string]string) string {
	t, ok := Get(templateID)
	if !ok {
		return ""
	}

	content := t.Blueprint
	for key, value := range data {
		content = strings.ReplaceAll(content, "{{"+key+"}}", value)
	}

	if data["reportDate"] == "" {
		today := e.now().Format("January 2, 2006")
		content = strings.ReplaceAll(content, "{{reportDate}}", today)
	}

	return content
}

// Placeholders returns the distinct placeholder names in a template's
// blueprint, sorted. Unknown ids return nil.
func Placeholders(templateID string) []string {
	t, ok := Get(templateID)
	if !ok {
		return nil
	}

	seen := map[string]bool{}
	var keys []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(t.Blueprint, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	sort.Strings(keys)
	return keys
}
