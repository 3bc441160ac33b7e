package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tempconv/internal/conversion"
	"tempconv/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const indicatorWidth = 31

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	editingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true)
)

// colored renders text in a temperature band color.
func colored(text string, c models.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))).Render(text)
}

func withSymbol(display, symbol string) string {
	if symbol == "" {
		return display
	}
	return display + " " + symbol
}

// formatConversion renders "36.60 °C = 97.88 °F" with band colors.
func formatConversion(v models.Conversion) string {
	return fmt.Sprintf("%s = %s",
		colored(withSymbol(v.InputDisplay, v.SourceSymbol), v.InputColor),
		colored(withSymbol(v.ResultDisplay, v.TargetSymbol), v.ResultColor),
	)
}

// indicatorBar draws the -50..100 °C scale with a marker at pos percent.
func indicatorBar(pos float64) string {
	pos = math.Max(0, math.Min(100, pos))
	at := int(math.Round(pos / 100 * float64(indicatorWidth-1)))
	var b strings.Builder
	b.WriteString("-50°C [")
	for i := range indicatorWidth {
		if i == at {
			b.WriteString("●")
			continue
		}
		b.WriteString("─")
	}
	b.WriteString("] 100°C")
	return b.String()
}

// renderConversion is the full convert/swap output.
func renderConversion(v models.Conversion) string {
	return formatConversion(v) + "\n" +
		colored(indicatorBar(v.IndicatorPosition), conversion.ColorOf(v.Record.ResultValue, v.Record.TargetScale))
}

// renderHistory lays the history out as a table, newest first.
func renderHistory(v models.HistoryView) string {
	if v.Count == 0 {
		return mutedStyle.Render("No conversion history yet.")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "INPUT", "RESULT", "TIME").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range v.Rows {
		id := fmt.Sprint(r.Record.ID)
		if r.Editing {
			id = editingStyle.Render(id + " *")
		}
		t.Row(
			id,
			colored(withSymbol(r.InputDisplay, r.SourceSymbol), r.InputColor),
			colored(withSymbol(r.ResultDisplay, r.TargetSymbol), r.ResultColor),
			r.Record.RecordedAt,
		)
	}
	return t.Render() + "\n" + mutedStyle.Render(fmt.Sprintf("%d entries", v.Count))
}

// renderEvents lays audit events out as a table, oldest first.
func renderEvents(events []models.HistoryEvent) string {
	if len(events) == 0 {
		return mutedStyle.Render("No events.")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIME", "TYPE", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, e := range events {
		t.Row(e.OccurredAt.Format("2006-01-02 15:04:05"), e.Type, e.Description)
	}
	return t.Render()
}

func renderUsers(users []models.User) string {
	if len(users) == 0 {
		return mutedStyle.Render("No API users. Create one with `tempconv users add`.")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "USERNAME", "CREATED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, u := range users {
		t.Row(strconv.Itoa(u.ID), u.Username, u.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return t.Render()
}
