package content

import (
	"fmt"
	"time"
)

const justNowLabel = "Недавно"

/*
AgeLabel renders how long ago t happened, relative to now.

Whole days, hours and minutes are each derived independently from the total
elapsed seconds, not by cascading subtraction: 25 hours is 1 day and the
hour tier never sees it, because the day tier wins whenever days > 0. Each
tier picks a Russian plural form, with distinct forms for exactly 1, for
2 through 4, and for 5 and up. Anything under a minute is "Недавно".
Negative deltas (clock skew) also fall through to "Недавно".
*/
func AgeLabel(t time.Time, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	days := seconds / (60 * 60 * 24)
	hours := seconds / (60 * 60)
	minutes := seconds / 60

	switch {
	case days > 0:
		switch {
		case days == 1:
			return fmt.Sprintf("%d день назад", days)
		case days >= 2 && days <= 4:
			return fmt.Sprintf("%d дня назад", days)
		default:
			return fmt.Sprintf("%d дней назад", days)
		}
	case hours > 0:
		switch {
		case hours == 1:
			return fmt.Sprintf("%d час назад", hours)
		case hours >= 2 && hours <= 4:
			return fmt.Sprintf("%d часа назад", hours)
		default:
			return fmt.Sprintf("%d часов назад", hours)
		}
	case minutes > 0:
		switch {
		case minutes == 1:
			return fmt.Sprintf("%d минуту назад", minutes)
		case minutes >= 2 && minutes <= 4:
			return fmt.Sprintf("%d минуты назад", minutes)
		default:
			return fmt.Sprintf("%d минут назад", minutes)
		}
	default:
		return justNowLabel
	}
}
