package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/deskset/internal/timer"
)

const maxVisibleLaps = 8

func (m Model) renderMain() string {
	st := m.theme.Styles()

	var body string
	switch m.currentView {
	case ViewCalculator:
		body = m.renderCalculator(st)
	case ViewCountdown:
		body = m.renderCountdown(st)
	case ViewStopwatch:
		body = m.renderStopwatch(st)
	}

	sections := []string{
		m.renderTabs(st),
		"",
		body,
		"",
		m.renderFooter(st),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs(st Styles) string {
	tabs := make([]string, 0, 3)
	for v := ViewCalculator; v <= ViewStopwatch; v++ {
		label := fmt.Sprintf("%d %s", v+1, tabLabel(v))
		if v == m.currentView {
			tabs = append(tabs, st.TabActive.Render(label))
		} else {
			tabs = append(tabs, st.Tab.Render(label))
		}
	}
	title := st.Title.Render("deskset")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, " "))
}

func (m Model) renderCalculator(st Styles) string {
	display := st.Display.Render(m.calcState.Display)
	entry := st.Text.Render(m.input.View())
	ops := st.Muted.Render(fmt.Sprintf("%d operations", len(m.calcState.History)-1))
	return lipgloss.JoinVertical(lipgloss.Left, display, "", entry, ops)
}

func (m Model) renderCountdown(st Styles) string {
	display := st.Display.Render(m.cdState.Display)
	status := st.Muted.Render("status: ") + statusStyle(st, m.cdState.Started, m.cdState.Paused).
		Render(countdownStatus(m.cdState))
	return lipgloss.JoinVertical(lipgloss.Left, display, "", status)
}

func (m Model) renderStopwatch(st Styles) string {
	display := st.Display.Render(m.swState.Display)
	status := st.Muted.Render("status: ") + statusStyle(st, m.swState.Started, m.swState.Paused).
		Render(timerStatus(m.swState.Started, m.swState.Paused))

	sections := []string{display, "", status}
	if rows := lapRows(m.swState.Laps, maxVisibleLaps); len(rows) > 0 {
		sections = append(sections, "", st.Accent.Render("laps"))
		for _, row := range rows {
			sections = append(sections, st.Text.Render(row))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFooter(st Styles) string {
	if m.showHelp {
		return st.Footer.Render(helpText(m.currentView))
	}
	return st.Footer.Render("? help · tab views · T theme · q quit")
}

// lapRows renders the newest laps first, capped at limit, keeping the
// original lap numbers.
func lapRows(laps []timer.Lap, limit int) []string {
	if len(laps) == 0 {
		return nil
	}
	rows := make([]string, 0, limit)
	for i := len(laps) - 1; i >= 0 && len(rows) < limit; i-- {
		rows = append(rows, fmt.Sprintf("#%-3d %s  (total %s)", i+1, laps[i].Split, laps[i].Total))
	}
	return rows
}

func tabLabel(v View) string {
	switch v {
	case ViewCalculator:
		return "Calculator"
	case ViewCountdown:
		return "Countdown"
	case ViewStopwatch:
		return "Stopwatch"
	default:
		return "?"
	}
}

func timerStatus(started, paused bool) string {
	switch {
	case paused:
		return "paused"
	case started:
		return "running"
	default:
		return "stopped"
	}
}

func countdownStatus(s timer.CountdownState) string {
	if !s.Started && !s.Paused && s.Remaining == 0 {
		return "done"
	}
	return timerStatus(s.Started, s.Paused)
}

func statusStyle(st Styles, started, paused bool) lipgloss.Style {
	switch {
	case paused:
		return st.Paused
	case started:
		return st.Running
	default:
		return st.Muted
	}
}

func helpText(v View) string {
	switch v {
	case ViewCalculator:
		return "type a number, then + - * / applies it · enter adds · c clears · tab switches views"
	case ViewCountdown:
		return "s start/resume · p pause · x stop · r reset · 1/2/3 views"
	case ViewStopwatch:
		return "s start/resume · p pause · x stop · r reset · l lap · 1/2/3 views"
	default:
		return ""
	}
}
