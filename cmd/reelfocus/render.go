package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"reelfocus/internal/core/timekeeper"
	"reelfocus/internal/core/usage"
	"reelfocus/internal/storage"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// printStatus writes today's timer card, feed and summary.
func printStatus(w io.Writer, state timekeeper.State) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	cyan.Fprintln(w, rule)
	cyan.Fprintf(w, "REEL FOCUS  %d%% of daily bursts logged\n", state.Progress())
	cyan.Fprintln(w, rule)
	fmt.Fprintln(w)

	timer := state.TimerView()
	fmt.Fprintf(w, "Timer:       %s\n", timer.Clock)
	fmt.Fprintf(w, "             %s\n", timer.Footnote)
	if timer.CooldownLabel != "" {
		yellow.Fprintf(w, "             %s\n", timer.CooldownLabel)
	}
	fmt.Fprintln(w)

	cyan.Fprintln(w, "Today's reel")
	for _, slot := range state.Slots() {
		fmt.Fprintf(w, "  #%-3d %-20s ", slot.Index+1, slot.Title)
		pillColor(slot.Status).Fprintln(w, slot.Pill())
	}
	fmt.Fprintln(w)

	summary := state.SummaryView()
	cyan.Fprintln(w, "Usage summary")
	fmt.Fprintf(w, "  Consumed:    %s\n", summary.Consumed)
	fmt.Fprintf(w, "  Remaining:   %s\n", summary.Remaining)
	fmt.Fprintf(w, "  Completion:  %s\n", summary.Completion)
	fmt.Fprintf(w, "  Next unlock: %s\n", summary.NextUnlock)
}

func pillColor(status timekeeper.SlotStatus) *color.Color {
	switch status {
	case timekeeper.SlotCompleted:
		return color.New(color.FgGreen)
	case timekeeper.SlotActive:
		return color.New(color.FgCyan, color.Bold)
	case timekeeper.SlotReady:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgHiBlack)
	}
}

// printHistory writes one line per stored day.
func printHistory(w io.Writer, days []storage.Day) {
	if len(days) == 0 {
		fmt.Fprintln(w, "No days recorded yet.")
		return
	}

	bold := color.New(color.Bold)
	bold.Fprintf(w, "%-12s %-9s %-22s %s\n", "DATE", "BURSTS", "USED", "COMPLETION")
	for _, day := range days {
		settings := day.Plan.Settings
		stats := usage.CalculateStats(settings.SessionLength, len(day.Plan.Completed), settings.TotalSessions)
		fmt.Fprintf(w, "%-12s %-9s %-22s %d%%\n",
			day.Date,
			fmt.Sprintf("%d/%d", len(day.Plan.Completed), settings.TotalSessions),
			usage.FormatDuration(stats.ConsumedSeconds),
			stats.PercentComplete,
		)
	}
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "%d day(s)\n", len(days))
}
