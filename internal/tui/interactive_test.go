package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/loan-amortization/internal/calculator"
	"github.com/iwvelando/loan-amortization/pkg/locale"
	"github.com/iwvelando/loan-amortization/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestModel(t *testing.T, lang string) Model {
	t.Helper()
	symbol := "R$"
	if lang == "en" {
		symbol = "$"
	}
	calc := calculator.New(zap.NewNop(), output.NewRenderer(locale.MustNew(lang), symbol))
	return NewModel(calc)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab  = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	right     = tea.KeyMsg{Type: tea.KeyRight}
	space     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	ctrlR     = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func TestInitialViewShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, "pt-BR")

	out := m.View()
	assert.Contains(t, out, "Tabela de amortização")
	assert.Contains(t, out, "Preencha os dados acima e clique em “Calcular tabela”.")
	assert.Contains(t, out, "Preencha os campos para gerar as parcelas.")
	assert.Contains(t, out, "—")
	assert.Contains(t, out, "(SAC)")
	assert.Nil(t, m.Init())
}

func TestCalculatePrice(t *testing.T) {
	m := newTestModel(t, "pt-BR")

	m = press(t, m,
		typeText("1000"), tab,
		typeText("1"), tab,
		typeText("2"), tab,
		right, enter,
	)

	assert.Equal(t, "1000", m.form.Principal)
	assert.Equal(t, "price", m.form.System)
	require.Equal(t, calculator.Ready, m.view.State)
	require.Len(t, m.view.Rows, 2)

	out := m.View()
	assert.Contains(t, out, "(Price)")
	assert.Contains(t, out, "R$ 507,51")
	assert.Contains(t, out, "R$ 1.015,02")
	assert.Contains(t, out, "Valor base (prestação)")
	assert.Contains(t, out, "Sistema Price · PV R$ 1.000,00 · i 1,0000% · n 2")
	assert.NotContains(t, out, "Calcular tabela”.")
}

func TestValidationMessage(t *testing.T) {
	m := newTestModel(t, "pt-BR")

	m = press(t, m, typeText("1000"), tab, typeText("1"), enter)

	assert.Equal(t, calculator.Placeholder, m.view.State)
	assert.Contains(t, m.View(), "Informe o número de períodos.")
}

func TestFocusWrapsAround(t *testing.T) {
	m := newTestModel(t, "en")

	m = press(t, m, shiftTab)
	assert.Equal(t, fieldSystem, m.focus)

	m = press(t, m, tab)
	assert.Equal(t, fieldPrincipal, m.focus)
}

func TestSystemToggleOnlyOnSystemField(t *testing.T) {
	m := newTestModel(t, "en")

	m = press(t, m, right, space)
	assert.Equal(t, "sac", m.form.System, "toggle keys are ignored on text fields")
	assert.Equal(t, " ", m.form.Principal)

	m = press(t, m, shiftTab, space)
	assert.Equal(t, "price", m.form.System)
	m = press(t, m, space)
	assert.Equal(t, "sac", m.form.System)
}

func TestSpaceIsTypedIntoTextFields(t *testing.T) {
	m := newTestModel(t, "pt-BR")

	m = press(t, m, typeText("R$"), space, typeText("1.000,00"), enter)
	assert.Equal(t, "R$ 1.000,00", m.form.Principal)

	m = press(t, m, tab, typeText("1"), space, tab, typeText("2"), enter)
	assert.Equal(t, "1 ", m.form.Rate)
	require.Equal(t, calculator.Ready, m.view.State, m.view.Message)
	assert.Equal(t, "sac", m.form.System)
}

func TestBackspaceRemovesLastRune(t *testing.T) {
	m := newTestModel(t, "en")

	m = press(t, m, typeText("R$ 12"), backspace, backspace)
	assert.Equal(t, "R$ ", m.form.Principal)
}

func TestInputLengthIsBounded(t *testing.T) {
	m := newTestModel(t, "en")

	for i := 0; i < maxInputLength+10; i++ {
		m = press(t, m, typeText("9"))
	}
	assert.Len(t, m.form.Principal, maxInputLength)
}

func TestClearResetsForm(t *testing.T) {
	m := newTestModel(t, "en")

	m = press(t, m, typeText("1000"), tab, typeText("1"), tab, typeText("2"), enter)
	require.Equal(t, calculator.Ready, m.view.State)

	m = press(t, m, ctrlR)
	assert.Equal(t, calculator.Placeholder, m.view.State)
	assert.Equal(t, calculator.Form{System: "sac"}, m.form)
	assert.Equal(t, fieldPrincipal, m.focus)
	assert.Contains(t, m.View(), "Fill in the fields above and click “Calculate table”.")
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, "en")
		_, cmd := m.Update(k)
		require.NotNil(t, cmd, k.String())
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k.String())
	}

	// q is ordinary text.
	m := newTestModel(t, "en")
	updated, cmd := m.Update(typeText("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, "q", updated.(Model).form.Principal)
}

func TestScrolling(t *testing.T) {
	m := newTestModel(t, "en")
	m = press(t, m, typeText("12000"), tab, typeText("1"), tab, typeText("120"), enter)
	require.Len(t, m.view.Rows, 120)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 28})
	m = updated.(Model)
	page := m.pageSize()
	assert.Equal(t, 10, page)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, page, m.offset)
	assert.Contains(t, m.View(), fmt.Sprintf("%d–%d / 120", page+1, 2*page))

	for i := 0; i < 50; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.Equal(t, 120-page, m.offset)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 120-2*page, m.offset)

	m = press(t, m, enter)
	assert.Equal(t, 0, m.offset)
}
