package tui

import (
	"context"
	"fmt"
	"strings"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/cli/format"
	"resource-catalog/pkg/cli/logger"
	"resource-catalog/pkg/cli/tui/browse"
	"resource-catalog/pkg/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// browseModel lists the filtered resources in grid or list view and lets the
// editor add, edit and delete them
type browseModel struct {
	store *catalog.Store

	selected int
	step     int
	width    int
	notice   string
	err      error

	search  textinput.Model
	confirm textinput.Model
	form    *resourceFormModel
}

// NewBrowseModel creates the browse flow. With startAdding the add form opens first.
func NewBrowseModel(store *catalog.Store, startAdding bool) tea.Model {
	search := textinput.New()
	search.Placeholder = "search title, description or tags"
	search.CharLimit = 200
	search.Width = 40
	search.SetValue(store.State().SearchTerm)

	confirm := textinput.New()
	confirm.Placeholder = "y/N"
	confirm.CharLimit = 3
	confirm.Width = 10

	model := &browseModel{
		store:   store,
		step:    browse.StepList,
		width:   browse.DefaultWidth,
		search:  search,
		confirm: confirm,
	}
	if startAdding && store.State().IsAuthenticated {
		model.form = newResourceForm(store, nil)
		model.step = browse.StepEditing
	}

	return NewViewportWrapper(model, ViewportConfig{
		Title:       "Resources",
		ShowHeader:  true,
		ShowFooter:  true,
		UseViewport: true,
		EnableHelp:  true,
		EnableMenu:  true,
		HelpContent: BrowseHelpContent,
		MinWidth:    60,
		MinHeight:   12,
	})
}

func (m *browseModel) Init() tea.Cmd {
	if m.form != nil {
		return m.form.focus()
	}
	return nil
}

// CapturingInput implements InputCapturer
func (m *browseModel) CapturingInput() bool {
	switch m.step {
	case browse.StepSearch, browse.StepDeleteConfirm, browse.StepEditing:
		return true
	}
	return false
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width == 0 {
			m.width = browse.DefaultWidth
		}
		if m.form != nil {
			m.form, _ = m.form.Update(msg)
		}
		return m, nil

	case browse.LoadedMsg:
		m.err = msg.Err
		m.selected = 0
		return m, nil

	case browse.FormDoneMsg:
		m.form = nil
		m.step = browse.StepList
		if msg.Saved {
			m.notice = "Resource saved"
			if msg.Resource != nil {
				m.selectByID(msg.Resource.ID)
			}
		}
		return m, nil

	case browse.DeleteDoneMsg:
		m.step = browse.StepList
		if msg.Err == nil {
			m.notice = fmt.Sprintf("Deleted %q", msg.Title)
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
		return m, m.updateInputs(msg)
	}

	logger.Log("browse key %q at step %d", keyMsg.String(), m.step)
	switch m.step {
	case browse.StepList:
		return m, m.handleListKeys(keyMsg)
	case browse.StepSearch:
		return m, m.handleSearchKeys(keyMsg)
	case browse.StepActionMenu:
		return m, m.handleActionMenuKeys(keyMsg)
	case browse.StepViewDetails:
		switch keyMsg.String() {
		case "esc", "b", "enter":
			m.step = browse.StepActionMenu
		}
		return m, nil
	case browse.StepDeleteConfirm:
		return m, m.handleDeleteConfirmKeys(keyMsg)
	}
	return m, nil
}

func (m *browseModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.step {
	case browse.StepSearch:
		m.search, cmd = m.search.Update(msg)
	case browse.StepDeleteConfirm:
		m.confirm, cmd = m.confirm.Update(msg)
	}
	return cmd
}

func (m *browseModel) handleListKeys(msg tea.KeyMsg) tea.Cmd {
	visible := m.store.Visible()
	state := m.store.State()
	m.notice = ""

	var moved bool
	if state.View == catalog.ViewGrid {
		m.selected, moved = handleGridNavigation(msg.String(), m.selected, len(visible), browse.GridColumns)
	} else {
		m.selected, moved = handleListNavigation(msg.String(), m.selected, len(visible))
	}
	if moved {
		return nil
	}

	switch msg.String() {
	case "enter":
		if len(visible) > 0 {
			m.step = browse.StepActionMenu
		}
	case "/":
		m.step = browse.StepSearch
		m.search.SetValue(state.SearchTerm)
		m.search.CursorEnd()
		m.search.Focus()
		return textinput.Blink
	case "c":
		m.cycleCategory(state, 1)
	case "C":
		m.cycleCategory(state, -1)
	case "x":
		m.store.SetSearchTerm("")
		m.store.SetSelectedCategory(uuid.Nil)
		m.search.SetValue("")
		m.selected = 0
	case "v":
		next := catalog.ViewList
		if state.View == catalog.ViewList {
			next = catalog.ViewGrid
		}
		if err := m.store.SetView(next); err != nil {
			m.err = err
		}
	case "r":
		return loadCatalog(m.store)
	case "a":
		return m.openForm(nil)
	case "e":
		if r, ok := m.current(); ok {
			return m.openForm(&r)
		}
	case "d":
		return m.startDelete()
	case "esc", "b":
		return func() tea.Msg { return MenuNavigationMsg{} }
	}
	return nil
}

// handleSearchKeys updates the search term as the user types
func (m *browseModel) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.step = browse.StepList
		m.search.Blur()
		return nil
	case "esc":
		m.search.SetValue("")
		m.store.SetSearchTerm("")
		m.step = browse.StepList
		m.search.Blur()
		m.selected = 0
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearchTerm(m.search.Value())
	m.selected = 0
	return cmd
}

func (m *browseModel) handleActionMenuKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "b":
		m.step = browse.StepList
	case "1", "v", "enter":
		m.step = browse.StepViewDetails
	case "2", "e":
		if r, ok := m.current(); ok {
			return m.openForm(&r)
		}
	case "3", "d":
		return m.startDelete()
	}
	return nil
}

func (m *browseModel) handleDeleteConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.step = browse.StepActionMenu
		m.confirm.Blur()
		return nil
	case "enter":
		answer := strings.ToLower(strings.TrimSpace(m.confirm.Value()))
		m.confirm.Blur()
		if answer != "y" && answer != "yes" {
			m.step = browse.StepActionMenu
			return nil
		}
		r, ok := m.current()
		if !ok {
			m.step = browse.StepList
			return nil
		}
		store := m.store
		return func() tea.Msg {
			err := store.DeleteResource(context.Background(), r.ID)
			return browse.DeleteDoneMsg{Title: r.Title, Err: err}
		}
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	return cmd
}

// cycleCategory moves the category filter through "all" and every category
func (m *browseModel) cycleCategory(state catalog.State, delta int) {
	ids := []uuid.UUID{uuid.Nil}
	for _, c := range state.Categories {
		ids = append(ids, c.ID)
	}
	current := 0
	for i, id := range ids {
		if id == state.SelectedCategory {
			current = i
		}
	}
	next := (current + delta + len(ids)) % len(ids)
	m.store.SetSelectedCategory(ids[next])
	m.selected = 0
}

func (m *browseModel) openForm(r *models.Resource) tea.Cmd {
	if !m.store.State().IsAuthenticated {
		m.notice = "Log in from the menu to edit the catalog"
		return nil
	}
	m.form = newResourceForm(m.store, r)
	m.form.width = m.width
	m.step = browse.StepEditing
	return m.form.focus()
}

func (m *browseModel) startDelete() tea.Cmd {
	if !m.store.State().IsAuthenticated {
		m.notice = "Log in from the menu to edit the catalog"
		return nil
	}
	if _, ok := m.current(); !ok {
		return nil
	}
	m.step = browse.StepDeleteConfirm
	m.confirm.SetValue("")
	m.confirm.Focus()
	return textinput.Blink
}

// current returns the selected visible resource
func (m *browseModel) current() (models.Resource, bool) {
	visible := m.store.Visible()
	if len(visible) == 0 {
		return models.Resource{}, false
	}
	m.selected = clampIndex(m.selected, len(visible))
	return visible[m.selected], true
}

func (m *browseModel) selectByID(id uuid.UUID) {
	for i, r := range m.store.Visible() {
		if r.ID == id {
			m.selected = i
			return
		}
	}
}

// GetSelectedIndex implements SelectableModel. In grid view it is the row.
func (m *browseModel) GetSelectedIndex() int {
	if m.step != browse.StepList && m.step != browse.StepSearch {
		return -1
	}
	if m.store.State().View == catalog.ViewGrid {
		return m.selected / browse.GridColumns
	}
	return m.selected
}

// GetItemHeight implements SelectableModel
func (m *browseModel) GetItemHeight() int {
	if m.store.State().View == catalog.ViewGrid {
		return browse.CardHeight
	}
	return browse.ListItemHeight
}

// GetListHeaderHeight implements SelectableModel.
// Filter line, summary line and a blank line precede the items.
func (m *browseModel) GetListHeaderHeight() int {
	return 3
}

func (m *browseModel) View() string {
	state := m.store.State()

	if m.form != nil {
		return m.form.View()
	}
	if state.Loading && len(state.Resources) == 0 {
		return renderLoadingState("Loading catalog...")
	}
	if m.err != nil && len(state.Resources) == 0 {
		return "\n" + renderInlineError(m.err) + "\n\n" + helpStyle.Render("Press 'r' to retry, 'm' for menu") + "\n"
	}

	switch m.step {
	case browse.StepActionMenu:
		return m.renderActionMenu(state)
	case browse.StepViewDetails:
		return m.renderViewDetails(state)
	case browse.StepDeleteConfirm:
		return m.renderDeleteConfirm()
	default:
		return m.renderList(state)
	}
}

func (m *browseModel) renderFilterLine(state catalog.State) string {
	category := "All categories"
	if state.SelectedCategory != uuid.Nil {
		category = categoryLabel(state.Categories, state.SelectedCategory)
	}

	search := mutedStyle.Render("/ to search")
	if m.step == browse.StepSearch {
		search = m.search.View()
	} else if state.SearchTerm != "" {
		search = fmt.Sprintf("search: %s", boldStyle.Render(state.SearchTerm))
	}

	mode := "grid"
	if state.View == catalog.ViewList {
		mode = "list"
	}
	return fmt.Sprintf("%s  %s  %s  %s", fieldLabelStyle.Render("Filter:"), category, search, mutedStyle.Render("["+mode+"]"))
}

func (m *browseModel) renderList(state catalog.State) string {
	visible := catalog.Visible(state.Resources, state.SearchTerm, state.SelectedCategory)
	m.selected = clampIndex(m.selected, len(visible))

	var b strings.Builder
	b.WriteString(m.renderFilterLine(state) + "\n")

	summary := catalog.Summary(len(visible), state.SearchTerm != "")
	if !state.IsAuthenticated {
		summary += mutedStyle.Render("  (read only)")
	}
	if m.notice != "" {
		summary += "  " + renderSuccess(m.notice)
	}
	b.WriteString(summary + "\n\n")

	if len(visible) == 0 {
		if len(state.Resources) == 0 {
			b.WriteString(renderEmptyState("The catalog is empty. Press 'a' to add a resource."))
		} else {
			b.WriteString(renderEmptyState("No resources match the current filter. Press 'x' to clear it."))
		}
		return b.String()
	}

	if state.View == catalog.ViewGrid {
		b.WriteString(m.renderGrid(visible, state.Categories))
	} else {
		for i, r := range visible {
			b.WriteString(renderResourceItem(r, state.Categories, i == m.selected, m.width))
		}
	}
	return b.String()
}

func (m *browseModel) renderGrid(visible []models.Resource, categories []models.Category) string {
	cardWidth := (m.width - 2) / browse.GridColumns
	var rows []string
	for start := 0; start < len(visible); start += browse.GridColumns {
		var cards []string
		for i := start; i < start+browse.GridColumns && i < len(visible); i++ {
			cards = append(cards, renderResourceCard(visible[i], categories, i == m.selected, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m *browseModel) renderActionMenu(state catalog.State) string {
	r, ok := m.current()
	if !ok {
		return renderEmptyState("Nothing selected.")
	}

	var b strings.Builder
	b.WriteString(renderTitle("Resource Actions"))
	b.WriteString(renderDivider(m.width - 2))
	b.WriteString("\n\n")

	b.WriteString(boldStyle.Render("Selected:") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", catalog.TypeIcon(r.Type), resourceTitleStyle.Render(r.Title)))
	b.WriteString(fmt.Sprintf("  %s\n\n", resourceURLStyle.Render(format.Truncate(format.URL(r), m.width-6))))

	b.WriteString(boldStyle.Render("Choose an action:") + "\n\n")
	b.WriteString("  " + selectedMarkerStyle.Render("1)") + " View details\n")
	if state.IsAuthenticated {
		b.WriteString("  " + selectedMarkerStyle.Render("2)") + " Edit\n")
		b.WriteString("  " + selectedMarkerStyle.Render("3)") + " Delete\n")
	} else {
		b.WriteString("  " + mutedStyle.Render("2) Edit  3) Delete  (log in to edit)") + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + renderWarning(m.notice) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("(Press 1/v to view, 2/e to edit, 3/d to delete, Esc/b to go back)") + "\n")
	return b.String()
}

func (m *browseModel) renderViewDetails(state catalog.State) string {
	r, ok := m.current()
	if !ok {
		return renderEmptyState("Nothing selected.")
	}

	var b strings.Builder
	b.WriteString(renderTitle("Resource Details"))
	b.WriteString(renderDivider(m.width - 2))
	b.WriteString("\n\n")
	b.WriteString(renderResourceDetails(r, state.Categories, m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("(Press Enter, 'b' or Esc to go back)") + "\n")
	return b.String()
}

func (m *browseModel) renderDeleteConfirm() string {
	r, ok := m.current()
	if !ok {
		return renderEmptyState("Nothing selected.")
	}

	var b strings.Builder
	b.WriteString(renderTitle("Delete Resource"))
	b.WriteString(warningStyle.Render("⚠️  Confirm Deletion") + "\n\n")
	b.WriteString(boldStyle.Render("Are you sure you want to delete:") + "\n")
	b.WriteString(fmt.Sprintf("  %s\n", resourceTitleStyle.Render(r.Title)))
	b.WriteString(fieldLabelStyle.Render("URL:"))
	b.WriteString(fmt.Sprintf(" %s\n\n", format.Truncate(format.URL(r), m.width-10)))
	b.WriteString(boldStyle.Render("Confirm (y/N):"))
	b.WriteString(" " + m.confirm.View() + "\n\n")
	b.WriteString(helpStyle.Render("(Press Enter to confirm, Esc to cancel)") + "\n")
	return b.String()
}

// loadCatalog fetches everything from the gateway
func loadCatalog(store *catalog.Store) tea.Cmd {
	return func() tea.Msg {
		return browse.LoadedMsg{Err: store.LoadAll(context.Background())}
	}
}
