package render

import (
	"time"
)

// picking state labels as shown to pickup points
var stateLabels = map[string]string{
	"draft":     "Borrador",
	"waiting":   "Esperando otra operación",
	"confirmed": "En espera",
	"assigned":  "Preparado",
	"done":      "Hecho",
	"cancel":    "Cancelado",
}

// StateLabel returns the display label of a picking state
func StateLabel(state string) string {
	if label, ok := stateLabels[state]; ok {
		return label
	}
	return state
}

// formatDate formats a time value as a date.
// Example: 2024-05-10 -> "10/05/2024"
func (e *Engine) formatDate(v any) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.In(e.location).Format("02/01/2006")
}

// formatDateTime formats a time value as date and minutes.
// Example: "10/05/2024 15:30"
func (e *Engine) formatDateTime(v any) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.In(e.location).Format("02/01/2006 15:04")
}

// formatInt formats an integer with the language's grouping, e.g. 1234 -> "1.234" in Spanish
func (e *Engine) formatInt(v any) string {
	switch n := v.(type) {
	case int:
		return e.printer.Sprintf("%d", n)
	case int64:
		return e.printer.Sprintf("%d", n)
	}
	return e.printer.Sprint(v)
}

func (e *Engine) titleCase(s string) string {
	return e.title.String(s)
}

// truncate truncates a string to max runes, appending "..."
func truncate(s string, max int) string {
	const suffix = "..."
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(suffix) {
		return string(runes[:max])
	}
	return string(runes[:max-len(suffix)]) + suffix
}

func defaultString(def, val string) string {
	if val == "" {
		return def
	}
	return val
}

func toTime(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case *time.Time:
		if val == nil {
			return time.Time{}
		}
		return *val
	}
	return time.Time{}
}
