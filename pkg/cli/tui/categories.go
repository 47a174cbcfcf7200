package tui

import (
	"context"
	"fmt"
	"strings"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/cli/format"
	"resource-catalog/pkg/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	stepCategoryList = iota
	stepCategoryDeleteConfirm
	stepCategoryEditing
)

// categoryDeletedMsg is emitted when a category deletion finishes
type categoryDeletedMsg struct {
	name string
	err  error
}

// categoriesModel lists categories under their type headings
type categoriesModel struct {
	store *catalog.Store

	selected int
	step     int
	notice   string
	width    int

	confirm textinput.Model
	form    *categoryFormModel
}

func NewCategoriesModel(store *catalog.Store) tea.Model {
	confirm := textinput.New()
	confirm.Placeholder = "y/N"
	confirm.CharLimit = 3
	confirm.Width = 10

	model := &categoriesModel{
		store:   store,
		step:    stepCategoryList,
		confirm: confirm,
		width:   80,
	}

	return NewViewportWrapper(model, ViewportConfig{
		Title:       "Categories",
		ShowHeader:  true,
		ShowFooter:  true,
		UseViewport: true,
		EnableHelp:  true,
		EnableMenu:  true,
		HelpContent: CategoriesHelpContent,
		MinWidth:    60,
		MinHeight:   12,
	})
}

func (m *categoriesModel) Init() tea.Cmd {
	return nil
}

// CapturingInput implements InputCapturer
func (m *categoriesModel) CapturingInput() bool {
	return m.step != stepCategoryList
}

// ordered returns the categories in the order they are rendered
func (m *categoriesModel) ordered() []models.Category {
	var out []models.Category
	for _, group := range catalog.GroupCategories(m.store.State().Categories) {
		out = append(out, group.Categories...)
	}
	return out
}

func (m *categoriesModel) current() (models.Category, bool) {
	ordered := m.ordered()
	if len(ordered) == 0 {
		return models.Category{}, false
	}
	m.selected = clampIndex(m.selected, len(ordered))
	return ordered[m.selected], true
}

func (m *categoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case categoryFormDoneMsg:
		m.form = nil
		m.step = stepCategoryList
		if msg.saved {
			m.notice = "Category saved"
		}
		return m, nil

	case categoryDeletedMsg:
		m.step = stepCategoryList
		if msg.err == nil {
			m.notice = fmt.Sprintf("Deleted %q", msg.name)
		}
		return m, nil
	}

	if m.form != nil {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.step == stepCategoryDeleteConfirm {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.step == stepCategoryDeleteConfirm {
		return m, m.handleDeleteConfirmKeys(keyMsg)
	}

	m.notice = ""
	if newSelected, handled := handleListNavigation(keyMsg.String(), m.selected, len(m.ordered())); handled {
		m.selected = newSelected
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "f":
		if c, ok := m.current(); ok {
			m.store.SetSelectedCategory(c.ID)
			m.notice = fmt.Sprintf("Browsing is now filtered by %q", c.Name)
		}
	case "a":
		return m, m.openForm(nil)
	case "e":
		if c, ok := m.current(); ok {
			return m, m.openForm(&c)
		}
	case "d":
		if !m.requireAuth() {
			return m, nil
		}
		if _, ok := m.current(); ok {
			m.step = stepCategoryDeleteConfirm
			m.confirm.SetValue("")
			m.confirm.Focus()
			return m, textinput.Blink
		}
	case "esc", "b":
		return m, func() tea.Msg { return MenuNavigationMsg{} }
	}
	return m, nil
}

func (m *categoriesModel) requireAuth() bool {
	if m.store.State().IsAuthenticated {
		return true
	}
	m.notice = "Log in from the menu to edit the catalog"
	return false
}

func (m *categoriesModel) openForm(c *models.Category) tea.Cmd {
	if !m.requireAuth() {
		return nil
	}
	m.form = newCategoryForm(m.store, c)
	m.step = stepCategoryEditing
	return m.form.focus()
}

func (m *categoriesModel) handleDeleteConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.step = stepCategoryList
		m.confirm.Blur()
		return nil
	case "enter":
		answer := strings.ToLower(strings.TrimSpace(m.confirm.Value()))
		m.confirm.Blur()
		c, ok := m.current()
		if !ok || (answer != "y" && answer != "yes") {
			m.step = stepCategoryList
			return nil
		}
		store := m.store
		return func() tea.Msg {
			return categoryDeletedMsg{name: c.Name, err: store.DeleteCategory(context.Background(), c.ID)}
		}
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	return cmd
}

// GetSelectedIndex implements SelectableModel. Group headings shift items
// down, so the index is converted to a line offset with an item height of 1.
func (m *categoriesModel) GetSelectedIndex() int {
	if m.step != stepCategoryList {
		return -1
	}
	line := 0
	index := 0
	for _, group := range catalog.GroupCategories(m.store.State().Categories) {
		line++ // heading
		for range group.Categories {
			if index == m.selected {
				return line
			}
			line++
			index++
		}
		line++ // blank line after the group
	}
	return -1
}

// GetItemHeight implements SelectableModel
func (m *categoriesModel) GetItemHeight() int {
	return 1
}

// GetListHeaderHeight implements SelectableModel
func (m *categoriesModel) GetListHeaderHeight() int {
	return 2
}

func (m *categoriesModel) View() string {
	if m.form != nil {
		return m.form.View()
	}

	state := m.store.State()
	if m.step == stepCategoryDeleteConfirm {
		return m.renderDeleteConfirm(state)
	}

	var b strings.Builder
	status := fmt.Sprintf("%d categories", len(state.Categories))
	if m.notice != "" {
		status += "  " + renderSuccess(m.notice)
	}
	b.WriteString(status + "\n\n")

	if len(state.Categories) == 0 {
		b.WriteString(renderEmptyState("No categories yet. Press 'a' to create one."))
		return b.String()
	}

	counts := catalog.CountByCategory(state.Resources)
	m.selected = clampIndex(m.selected, len(state.Categories))
	index := 0
	for _, group := range catalog.GroupCategories(state.Categories) {
		b.WriteString(boldStyle.Render(group.Type.Label()) + "\n")
		for _, c := range group.Categories {
			marker := " "
			name := c.Name
			if index == m.selected {
				marker = selectedMarkerStyle.Render("→")
				name = selectedStyle.Render(name)
			}
			if c.ID == state.SelectedCategory {
				name += mutedStyle.Render(" (filtering)")
			}
			line := fmt.Sprintf("%s %s %s  %s", marker, categorySwatch(c.Color), name, mutedStyle.Render(fmt.Sprintf("%d", counts[c.ID])))
			if c.Description != "" {
				line += "  " + mutedStyle.Render(format.Truncate(c.Description, m.width/2))
			}
			b.WriteString(line + "\n")
			index++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *categoriesModel) renderDeleteConfirm(state catalog.State) string {
	c, ok := m.current()
	if !ok {
		return renderEmptyState("Nothing selected.")
	}

	var b strings.Builder
	b.WriteString(renderTitle("Delete Category"))
	b.WriteString(warningStyle.Render("⚠️  Confirm Deletion") + "\n\n")
	b.WriteString(boldStyle.Render("Are you sure you want to delete:") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n\n", categorySwatch(c.Color), c.Name))
	if n := catalog.CountByCategory(state.Resources)[c.ID]; n > 0 {
		b.WriteString(renderWarning(fmt.Sprintf("%d resource(s) will keep pointing at the deleted category", n)) + "\n\n")
	}
	b.WriteString(boldStyle.Render("Confirm (y/N):"))
	b.WriteString(" " + m.confirm.View() + "\n\n")
	b.WriteString(helpStyle.Render("(Press Enter to confirm, Esc to cancel)") + "\n")
	return b.String()
}
