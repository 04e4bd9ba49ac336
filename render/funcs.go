package render

import (
	"html/template"
	"strconv"
	"time"
)

// Layouts used by the form inputs. The date-time one matches <input type="datetime-local">.
const (
	DateLayout     = time.DateOnly
	DateTimeLayout = "2006-01-02T15:04"
)

var funcs = template.FuncMap{
	"date":      formatDate,
	"datetime":  formatDateTime,
	"inputDate": func(t time.Time) string { return t.Format(DateLayout) },
	"inputTime": func(t time.Time) string { return t.Format(DateTimeLayout) },
	"str":       derefString,
	"optID":     optionalID,
	"selected":  selected,
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// formatDateTime accepts time.Time or *time.Time since joined columns may be NULL.
func formatDateTime(v any) string {
	var t time.Time
	switch tv := v.(type) {
	case time.Time:
		t = tv
	case *time.Time:
		if tv == nil {
			return ""
		}
		t = *tv
	}
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 15:04")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalID(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}

// selected reports whether an option with value id is the current choice.
func selected(current *int, id int) bool {
	return current != nil && *current == id
}
