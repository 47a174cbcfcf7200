package tui

import (
	"fmt"
	"strings"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/cli/logger"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel asks for the editor password. It only unlocks the UI;
// the gateway is authorized by the API key either way.
type loginModel struct {
	store    *catalog.Store
	check    func(password string) bool
	input    textinput.Model
	err      error
	attempts int
}

func newLoginModel(store *catalog.Store, check func(string) bool) *loginModel {
	input := textinput.New()
	input.Placeholder = "editor password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = 128
	input.Width = 30
	input.Focus()

	return &loginModel{
		store: store,
		check: check,
		input: input,
	}
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return MenuNavigationMsg{} }
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *loginModel) submit() tea.Cmd {
	password := m.input.Value()
	m.input.SetValue("")

	if m.check != nil && !m.check(password) {
		m.attempts++
		m.err = fmt.Errorf("incorrect password")
		logger.Log("editor login failed (attempt %d)", m.attempts)
		return nil
	}

	if err := m.store.Login(); err != nil {
		// The flag is set even if it could not be persisted
		logger.LogError(err, "failed to persist session")
	}
	return func() tea.Msg { return MenuNavigationMsg{} }
}

func (m *loginModel) View() string {
	var b strings.Builder
	b.WriteString(renderTitle("Editor Login"))
	b.WriteString("Enter the editor password to add, edit and delete resources.\n\n")
	b.WriteString(fieldLabelStyle.Render("Password:") + " " + m.input.View() + "\n")
	if m.err != nil {
		b.WriteString("\n" + renderInlineError(m.err) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("(Press Enter to log in, Esc to cancel)") + "\n")
	return b.String()
}
