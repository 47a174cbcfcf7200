package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"resource-catalog/pkg/cli/logger"
)

// MenuNavigationMsg asks the root model to close the active flow and show the menu
type MenuNavigationMsg struct{}

// SelectableModel is implemented by list models so the wrapper can keep
// the selected item on screen
type SelectableModel interface {
	GetSelectedIndex() int // -1 when nothing is selected
	GetItemHeight() int
	GetListHeaderHeight() int
}

// InputCapturer is implemented by models that own text inputs.
// While CapturingInput is true only ctrl+c is intercepted.
type InputCapturer interface {
	CapturingInput() bool
}

// ViewportWrapper wraps a model with viewport and common command support
type ViewportWrapper struct {
	model    tea.Model
	viewport viewport.Model
	width    int
	height   int
	config   ViewportConfig

	// Common commands
	showHelp    bool
	helpContent string
}

// ViewportConfig configures the wrapper behavior
type ViewportConfig struct {
	Title        string
	ShowHeader   bool
	ShowFooter   bool
	HeaderHeight int            // Fixed header height (0 = auto)
	FooterHeight int            // Fixed footer height (0 = auto)
	UseViewport  bool           // Enable scrolling (false = simple responsive)
	MinWidth     int            // Minimum terminal width
	MinHeight    int            // Minimum terminal height
	EnableHelp   bool           // Enable '?' for help
	EnableMenu   bool           // Enable 'm' to return to menu
	HelpContent  func() string  // Function to generate help text
	OnMenu       func() tea.Cmd // Callback for menu command
}

// NewViewportWrapper creates a new wrapper around a model
func NewViewportWrapper(model tea.Model, config ViewportConfig) *ViewportWrapper {
	return &ViewportWrapper{
		model:    model,
		viewport: viewport.New(0, 0),
		config:   config,
		width:    80,
		height:   24,
	}
}

func (w *ViewportWrapper) Init() tea.Cmd {
	if w.model != nil {
		return w.model.Init()
	}
	return nil
}

func (w *ViewportWrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = msg.Width
		w.height = msg.Height
		if w.config.MinWidth > 0 && w.width < w.config.MinWidth {
			w.width = w.config.MinWidth
		}
		if w.config.MinHeight > 0 && w.height < w.config.MinHeight {
			w.height = w.config.MinHeight
		}
		w.calculateLayout()
		logger.Log("viewport resized to %dx%d", w.viewport.Width, w.viewport.Height)

		var cmd tea.Cmd
		if w.model != nil {
			w.model, cmd = w.model.Update(tea.WindowSizeMsg{Width: w.width, Height: w.viewport.Height})
		}
		return w, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := w.handleCommonKeys(keyMsg); handled {
			return w, cmd
		}
	}

	var cmd tea.Cmd
	if w.model != nil {
		w.model, cmd = w.model.Update(msg)
	}

	// Selectable models drive scrolling through their selection; others scroll freely
	if w.config.UseViewport {
		if _, selectable := w.model.(SelectableModel); !selectable {
			var vpCmd tea.Cmd
			w.viewport, vpCmd = w.viewport.Update(msg)
			cmd = tea.Batch(cmd, vpCmd)
		}
	}

	return w, cmd
}

// handleCommonKeys processes help, menu and quit keys before the wrapped model sees them
func (w *ViewportWrapper) handleCommonKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return true, tea.Quit
	}

	if w.showHelp {
		switch key {
		case "?", "esc", "q":
			w.showHelp = false
		}
		return true, nil
	}

	if capturer, ok := w.model.(InputCapturer); ok && capturer.CapturingInput() {
		return false, nil
	}

	switch key {
	case "?":
		if w.config.EnableHelp {
			w.showHelp = true
			if w.config.HelpContent != nil {
				w.helpContent = w.config.HelpContent()
			}
			return true, nil
		}
	case "m":
		if w.config.EnableMenu {
			if w.config.OnMenu != nil {
				return true, w.config.OnMenu()
			}
			return true, func() tea.Msg { return MenuNavigationMsg{} }
		}
	case "q":
		return true, tea.Quit
	}
	return false, nil
}

func (w *ViewportWrapper) View() string {
	if w.showHelp {
		return w.renderHelpOverlay()
	}

	content := ""
	if w.model != nil {
		content = w.model.View()
	}

	if w.config.UseViewport {
		w.calculateLayout()
		w.viewport.SetContent(content)
		w.ensureSelectionVisible()
		content = w.viewport.View()
	}

	var parts []string
	if w.config.ShowHeader {
		parts = append(parts, w.renderHeader())
	}
	parts = append(parts, content)
	if w.config.ShowFooter {
		parts = append(parts, w.renderFooter())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ensureSelectionVisible scrolls so the selected item of a SelectableModel is on screen
func (w *ViewportWrapper) ensureSelectionVisible() {
	selectable, ok := w.model.(SelectableModel)
	if !ok {
		return
	}
	index := selectable.GetSelectedIndex()
	if index < 0 {
		w.viewport.GotoTop()
		return
	}

	top := selectable.GetListHeaderHeight() + index*selectable.GetItemHeight()
	bottom := top + selectable.GetItemHeight()

	if top < w.viewport.YOffset {
		w.viewport.SetYOffset(top)
	} else if bottom > w.viewport.YOffset+w.viewport.Height {
		w.viewport.SetYOffset(bottom - w.viewport.Height)
	}
}

func (w *ViewportWrapper) calculateLayout() {
	headerH := w.config.HeaderHeight
	if headerH == 0 && w.config.ShowHeader {
		headerH = 4
	}

	footerH := w.config.FooterHeight
	if footerH == 0 && w.config.ShowFooter {
		footerH = 1
	}

	if w.width <= 0 {
		w.width = 80
	}
	if w.height <= 0 {
		w.height = 24
	}

	contentH := w.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	w.viewport.Width = w.width
	w.viewport.Height = contentH
}

func (w *ViewportWrapper) renderHeader() string {
	var b strings.Builder

	if w.config.Title != "" {
		b.WriteString(renderTitle(w.config.Title))
	}

	if w.config.EnableMenu && w.config.EnableHelp {
		b.WriteString(helpStyle.Render("Press 'm' for menu, '?' for help"))
	} else if w.config.EnableHelp {
		b.WriteString(helpStyle.Render("Press '?' for help"))
	} else if w.config.EnableMenu {
		b.WriteString(helpStyle.Render("Press 'm' for menu"))
	}

	return b.String()
}

func (w *ViewportWrapper) renderFooter() string {
	shortcuts := []string{}

	if w.config.EnableHelp {
		shortcuts = append(shortcuts, "? help")
	}
	if w.config.EnableMenu {
		shortcuts = append(shortcuts, "m menu")
	}
	shortcuts = append(shortcuts, "q quit")

	return helpStyle.Render(strings.Join(shortcuts, " • "))
}

func (w *ViewportWrapper) renderHelpOverlay() string {
	helpText := w.helpContent
	if helpText == "" {
		helpText = "No help available"
	}

	overlayStyle := lipgloss.NewStyle().
		Width(w.width-4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	title := titleStyle.Render("Keyboard Shortcuts")
	closeHint := helpStyle.Render("Press '?' or Esc to close")

	return overlayStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", helpText, "", closeHint),
	)
}
