package format

import (
	"fmt"
	"sort"
	"time"

	shared "blog-cli/shared"
)

const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
)

type ageStep struct {
	below  time.Duration
	format string
	unit   time.Duration
}

// steps are ordered by their upper bound; unit 0 means the format takes no count
var ageSteps = []ageStep{
	{time.Minute, "just now", 0},
	{2 * time.Minute, "1 minute ago", 0},
	{time.Hour, "%d minutes ago", time.Minute},
	{2 * time.Hour, "1 hour ago", 0},
	{Day, "%d hours ago", time.Hour},
	{2 * Day, "yesterday", 0},
	{Week, "%d days ago", Day},
	{2 * Week, "last week", 0},
	{Month, "%d weeks ago", Week},
}

// PostAge describes how long ago a post was written, e.g. "3 hours ago".
// Datetimes it can't read come back unchanged, and anything older than a
// month, or dated in the future, gets its calendar date.
func PostAge(datetime string, now time.Time) string {
	then, ok := shared.ParseDatetime(datetime)
	if !ok {
		return datetime
	}
	return Age(then, now)
}

func Age(then, now time.Time) string {
	diff := now.Sub(then)
	if diff < 0 || diff >= ageSteps[len(ageSteps)-1].below {
		return then.Format("Jan 2 2006")
	}

	i := sort.Search(len(ageSteps), func(i int) bool {
		return ageSteps[i].below > diff
	})
	step := ageSteps[i]

	if step.unit == 0 {
		return step.format
	}
	return fmt.Sprintf(step.format, int(diff/step.unit))
}
