package tui

import (
	"errors"
	"sync"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/cli/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertMsg carries a failure reported by the catalog store.
// The root model shows it in a modal until a key is pressed.
type AlertMsg struct {
	Err error
}

// ProgramAlerter forwards store alerts into a running bubbletea program
type ProgramAlerter struct {
	mu      sync.Mutex
	program *tea.Program
}

func NewProgramAlerter() *ProgramAlerter {
	return &ProgramAlerter{}
}

// Attach sets the program alerts are sent to
func (a *ProgramAlerter) Attach(p *tea.Program) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.program = p
}

// Alert must not be called from inside Update: Send blocks until the
// event loop receives the message. Store operations run in tea.Cmds.
func (a *ProgramAlerter) Alert(err error) {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()

	if p == nil {
		logger.LogError(err, "alert with no program attached")
		return
	}
	p.Send(AlertMsg{Err: err})
}

var _ catalog.Alerter = (*ProgramAlerter)(nil)

// renderAlert draws the modal for err
func renderAlert(err error, width int) string {
	title := errorStyle.Render("Something went wrong")
	if catalog.IsValidation(err) {
		title = warningStyle.Render("Please check the form")
	}

	message := err.Error()
	var validation *catalog.ValidationError
	if errors.As(err, &validation) {
		message = validation.Message
	}

	boxWidth := width - 8
	if boxWidth > 70 {
		boxWidth = 70
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	return "\n" + alertStyle.Width(boxWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			wrapText(message, boxWidth-6, ""),
			helpStyle.Render("Press any key to continue"),
		),
	) + "\n"
}
