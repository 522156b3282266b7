// Package tui runs the calculator as an interactive terminal form.
package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/loan-amortization/internal/calculator"
	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/locale"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

type field int

const (
	fieldPrincipal field = iota
	fieldRate
	fieldPeriods
	fieldSystem
	fieldCount
)

// maxInputLength bounds what a text field accepts.
const maxInputLength = 32

// Model is the bubbletea model of the calculator form.
type Model struct {
	calc   *calculator.Calculator
	labels locale.Labels

	form  calculator.Form
	focus field
	view  calculator.View

	offset int // first visible table row
	width  int
	height int
}

// NewModel returns a form in the placeholder state with focus on the
// financed amount.
func NewModel(calc *calculator.Calculator) Model {
	return Model{
		calc:   calc,
		labels: calc.Locale().Labels(),
		form:   calc.DefaultForm(),
		view:   calc.Reset(),
		width:  100,
		height: 30,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.offset = m.clampOffset(m.offset)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case "enter":
		m.view = m.calc.Submit(m.form)
		m.offset = 0
	case "ctrl+r":
		m.form = m.calc.DefaultForm()
		m.view = m.calc.Reset()
		m.focus = fieldPrincipal
		m.offset = 0
	case "pgdown":
		m.offset = m.clampOffset(m.offset + m.pageSize())
	case "pgup":
		m.offset = m.clampOffset(m.offset - m.pageSize())
	case "left", "right":
		if m.focus == fieldSystem {
			m.form.System = toggleSystem(m.form.System)
		}
	case "backspace":
		if text := m.focused(); text != nil && *text != "" {
			_, size := utf8.DecodeLastRuneInString(*text)
			*text = (*text)[:len(*text)-size]
		}
	default:
		switch {
		case msg.Type == tea.KeySpace && m.focus == fieldSystem:
			m.form.System = toggleSystem(m.form.System)
		case msg.Type == tea.KeySpace:
			m.insert(" ")
		case msg.Type == tea.KeyRunes:
			m.insert(string(msg.Runes))
		}
	}
	return m, nil
}

// insert appends s to the focused text field, up to maxInputLength runes.
func (m *Model) insert(s string) {
	if text := m.focused(); text != nil && utf8.RuneCountInString(*text)+utf8.RuneCountInString(s) <= maxInputLength {
		*text += s
	}
}

// focused returns the text of the focused input, or nil for the system selector.
func (m *Model) focused() *string {
	switch m.focus {
	case fieldPrincipal:
		return &m.form.Principal
	case fieldRate:
		return &m.form.Rate
	case fieldPeriods:
		return &m.form.Periods
	}
	return nil
}

func toggleSystem(current string) string {
	system, err := amortization.ParseSystem(current)
	if err != nil || system == amortization.Price {
		return amortization.SAC.String()
	}
	return amortization.Price.String()
}

func (m Model) pageSize() int {
	// Rows left after the form, summary, header and help lines.
	if size := m.height - 18; size > 3 {
		return size
	}
	return 3
}

func (m Model) clampOffset(offset int) int {
	maxOffset := len(m.view.Rows) - m.pageSize()
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + cyan.Render(m.labels.Title) + "\n")
	b.WriteString(dimmer.Render("  "+strings.Repeat("━", 40)) + "\n\n")

	inputs := []struct {
		label string
		value string
	}{
		{m.labels.Principal, m.form.Principal},
		{m.labels.Rate, m.form.Rate},
		{m.labels.Periods, m.form.Periods},
		{m.labels.System, m.systemChoice()},
	}
	for i, in := range inputs {
		if field(i) == m.focus {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-32s", in.label)) + white.Render(in.value) + cyan.Render("▏") + "\n")
		} else {
			b.WriteString("    " + dim.Render(fmt.Sprintf("%-32s", in.label)) + in.value + "\n")
		}
	}
	b.WriteString("\n")

	if m.view.Message != "" {
		b.WriteString("  " + red.Render(m.view.Message) + "\n\n")
	}

	s := m.view.Summary
	base := m.labels.BaseValue
	if s.BaseLabel != "" {
		base += " (" + s.BaseLabel + ")"
	}
	summary := []struct{ label, value string }{
		{m.labels.System, s.System},
		{base, s.BaseValue},
		{m.labels.TotalPayment, s.TotalPayment},
		{m.labels.TotalInterest, s.TotalInterest},
		{m.labels.FinalBalance, s.FinalBalance},
	}
	for _, item := range summary {
		b.WriteString("  " + dim.Render(fmt.Sprintf("%-32s", item.label)) + green.Render(item.value) + "\n")
	}
	b.WriteString("\n  " + dim.Render(m.view.Subtitle) + "\n\n")

	if m.view.State == calculator.Ready {
		b.WriteString(m.table())
	} else {
		b.WriteString("  " + dimmer.Render(m.view.Placeholder) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("  tab/↑↓ field   ←→ system   enter "+m.labels.Calculate+"   ctrl+r "+m.labels.Clear+"   pgup/pgdn scroll   esc quit") + "\n")

	return b.String()
}

func (m Model) systemChoice() string {
	current, err := amortization.ParseSystem(m.form.System)
	if err != nil {
		current = amortization.SAC
	}
	choices := make([]string, 0, len(amortization.Systems))
	for _, system := range amortization.Systems {
		if system == current {
			choices = append(choices, "("+system.Label()+")")
		} else {
			choices = append(choices, " "+system.Label()+" ")
		}
	}
	return strings.Join(choices, " ")
}

func (m Model) table() string {
	var b strings.Builder

	header := fmt.Sprintf("  %7s %18s %18s %18s %18s %18s",
		m.labels.Period, m.labels.OpeningBalance, m.labels.Amortization,
		m.labels.Interest, m.labels.Payment, m.labels.ClosingBalance)
	b.WriteString(white.Render(header) + "\n")

	end := m.offset + m.pageSize()
	if end > len(m.view.Rows) {
		end = len(m.view.Rows)
	}
	for _, row := range m.view.Rows[m.offset:end] {
		b.WriteString(fmt.Sprintf("  %7d %18s %18s %18s %18s %18s\n",
			row.Period, row.OpeningBalance, row.Amortization,
			row.Interest, row.Payment, row.ClosingBalance))
	}
	if len(m.view.Rows) > end-m.offset {
		b.WriteString(dimmer.Render(fmt.Sprintf("  %d–%d / %d", m.offset+1, end, len(m.view.Rows))) + "\n")
	}
	return b.String()
}

// Run starts the interactive form and blocks until the user quits.
func Run(calc *calculator.Calculator) error {
	p := tea.NewProgram(NewModel(calc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
