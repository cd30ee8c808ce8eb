package fileutil

import "time"

// DefaultDateLayout is used by FormatDate when no layout is given.
const DefaultDateLayout = "2006-01-02"

// CurrentYear returns the current local calendar year.
func CurrentYear() int {
	return time.Now().Year()
}

// FormatDate formats t using the given reference layout. An empty layout
// means DefaultDateLayout.
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.Format(layout)
}
