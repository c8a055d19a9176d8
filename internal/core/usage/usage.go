// Package usage derives the daily allowance figures shown in the summary card.
package usage

import (
	"fmt"
	"math"
	"strings"
)

// Stats summarises how much of the daily allowance has been spent.
type Stats struct {
	ConsumedSeconds  int
	RemainingSeconds int
	PercentComplete  int
}

// CalculateStats computes consumed and remaining seconds for the day.
func CalculateStats(sessionLengthSeconds, completedCount, totalSessions int) Stats {
	sessionLengthSeconds = max(sessionLengthSeconds, 0)
	completedCount = max(completedCount, 0)
	totalSessions = max(totalSessions, 0)

	stats := Stats{
		ConsumedSeconds:  completedCount * sessionLengthSeconds,
		RemainingSeconds: max((totalSessions-completedCount)*sessionLengthSeconds, 0),
	}
	if totalSessions > 0 {
		stats.PercentComplete = Percent(completedCount, totalSessions)
	}
	return stats
}

// Percent returns part/total as a rounded percentage in [0, 100], 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	if part >= total {
		return 100
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// FormatDuration renders seconds as "1 hour 2 minutes" or "45 seconds".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return plural(seconds, "second")
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, " ")
}

// FormatClock renders seconds as zero-padded mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatCooldown renders seconds as "9m 59s".
func FormatCooldown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

func plural(count int, unit string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, unit)
	}
	return fmt.Sprintf("%d %ss", count, unit)
}
