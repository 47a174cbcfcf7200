package tui

import (
	"fmt"
	"strings"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/cli/logger"
	"resource-catalog/pkg/cli/tui/browse"

	tea "github.com/charmbracelet/bubbletea"
)

// rootModel is the Bubble Tea model that acts as an app shell for multiple flows.
// It presents a menu, hands control to a flow, and shows store alerts on top.
type rootModel struct {
	store         *catalog.Store
	checkPassword func(string) bool // nil when no editor password is configured

	// Current active flow (when nil, we are in the main menu)
	current tea.Model

	alert    error
	notice   string
	showHelp bool
	width    int
	height   int
}

// NewRootModel constructs the root app-shell model that can launch multiple flows.
func NewRootModel(store *catalog.Store, checkPassword func(string) bool) tea.Model {
	return &rootModel{
		store:         store,
		checkPassword: checkPassword,
		width:         browse.DefaultWidth,
	}
}

func (m *rootModel) Init() tea.Cmd {
	return loadCatalog(m.store)
}

// IsDelegating reports whether a flow is active
func (m *rootModel) IsDelegating() bool {
	return m.current != nil
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AlertMsg:
		m.alert = msg.Err
		return m, nil

	case tea.KeyMsg:
		if m.alert != nil {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.alert = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case MenuNavigationMsg:
		m.current = nil
		return m, nil
	}

	// If we have an active flow, delegate all messages to it.
	if m.current != nil {
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	m.notice = ""
	key := keyMsg.String()
	if handleQuitKeys(key) || key == "esc" {
		return m, tea.Quit
	}

	switch key {
	case "?":
		m.showHelp = true
	case "r":
		return m, loadCatalog(m.store)
	case "1":
		return m, m.open(NewBrowseModel(m.store, false))
	case "2":
		if !m.store.State().IsAuthenticated {
			m.notice = "Log in first (option 4) to add resources"
			return m, nil
		}
		return m, m.open(NewBrowseModel(m.store, true))
	case "3":
		return m, m.open(NewCategoriesModel(m.store))
	case "4":
		return m, m.toggleLogin()
	}
	return m, nil
}

// open makes model the active flow and gives it the current terminal size
func (m *rootModel) open(model tea.Model) tea.Cmd {
	m.current = model
	initCmd := m.current.Init()
	var sizeCmd tea.Cmd
	m.current, sizeCmd = m.current.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *rootModel) toggleLogin() tea.Cmd {
	if m.store.State().IsAuthenticated {
		if err := m.store.Logout(); err != nil {
			logger.LogError(err, "failed to clear session")
		}
		m.notice = "Logged out"
		return nil
	}
	if m.checkPassword == nil {
		if err := m.store.Login(); err != nil {
			logger.LogError(err, "failed to persist session")
		}
		m.notice = "Editing unlocked"
		return nil
	}
	return m.open(newLoginModel(m.store, m.checkPassword))
}

func (m *rootModel) View() string {
	if m.alert != nil {
		return renderAlert(m.alert, m.width)
	}

	// When a flow is active, defer to its view.
	if m.current != nil {
		return m.current.View()
	}

	var b strings.Builder
	b.WriteString(renderTitle("Resource Catalog"))
	b.WriteString(renderDivider(60))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(RootMenuHelpContent())
		b.WriteString("\n" + helpStyle.Render("Press any key to close help.") + "\n")
		return b.String()
	}

	state := m.store.State()
	if state.Loading {
		b.WriteString(infoStyle.Render("Loading catalog...") + "\n\n")
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%s in %d categories",
			catalog.Summary(len(state.Resources), false), len(state.Categories))) + "\n\n")
	}

	b.WriteString(boldStyle.Render("Select an action:") + "\n\n")
	b.WriteString("  " + selectedMarkerStyle.Render("1)") + " Browse resources\n")
	if state.IsAuthenticated {
		b.WriteString("  " + selectedMarkerStyle.Render("2)") + " Add resource\n")
	} else {
		b.WriteString("  " + mutedStyle.Render("2) Add resource (log in first)") + "\n")
	}
	b.WriteString("  " + selectedMarkerStyle.Render("3)") + " Manage categories\n")
	if state.IsAuthenticated {
		b.WriteString("  " + selectedMarkerStyle.Render("4)") + " Log out\n")
	} else {
		b.WriteString("  " + selectedMarkerStyle.Render("4)") + " Log in to edit\n")
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(infoStyle.Render(m.notice) + "\n\n")
	}
	b.WriteString(helpStyle.Render("Press the number of an option, 'r' to reload, '?' for help, or 'q' / Esc to quit.") + "\n")

	return b.String()
}
