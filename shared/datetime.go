package shared

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

// DatetimeLayout is how a post's datetime is written at creation, e.g.
// "April 05, 2024 3:45:12 PM".
const DatetimeLayout = "January 02, 2006 3:04:05 PM"

// FormatDatetime writes t in its own zone. Zones carbon can't load by name,
// such as fixed offsets, are formatted directly.
func FormatDatetime(t time.Time) string {
	c := carbon.CreateFromStdTime(t, t.Location().String())
	if c.Error != nil {
		return t.Format(DatetimeLayout)
	}
	return c.Layout(DatetimeLayout)
}

// ParseDatetime reads a post datetime back. Posts created by other clients
// may carry anything, so ok is false rather than an error.
func ParseDatetime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	c := carbon.ParseByLayout(s, DatetimeLayout)
	if c.Error != nil || c.IsInvalid() {
		return time.Time{}, false
	}
	return c.StdTime(), true
}
