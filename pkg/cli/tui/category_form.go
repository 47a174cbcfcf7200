package tui

import (
	"context"
	"strings"

	"resource-catalog/pkg/catalog"
	"resource-catalog/pkg/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Category form fields in tab order
const (
	categoryFieldName = iota
	categoryFieldColor
	categoryFieldDescription
	categoryFieldType
	categoryFieldSubmit
	categoryFieldCount
)

// categoryFormModel adds a category, or edits one when original is set
type categoryFormModel struct {
	store    *catalog.Store
	original *models.Category
	draft    catalog.CategoryDraft

	nameInput  textinput.Model
	colorInput textinput.Model
	descInput  textinput.Model

	field  int
	err    error
	saving bool
}

// categorySavedMsg is emitted when the store finishes a category save
type categorySavedMsg struct {
	err error
}

// categoryFormDoneMsg closes the form
type categoryFormDoneMsg struct {
	saved bool
}

func newCategoryForm(store *catalog.Store, original *models.Category) *categoryFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Category name"
	nameInput.CharLimit = 100
	nameInput.Width = 40

	colorInput := textinput.New()
	colorInput.Placeholder = "#RRGGBB"
	colorInput.CharLimit = 7
	colorInput.Width = 10

	descInput := textinput.New()
	descInput.Placeholder = "Optional description"
	descInput.CharLimit = 500
	descInput.Width = 60

	m := &categoryFormModel{
		store:      store,
		original:   original,
		draft:      catalog.NewCategoryDraft(),
		nameInput:  nameInput,
		colorInput: colorInput,
		descInput:  descInput,
	}
	if original != nil {
		m.draft = catalog.DraftFromCategory(*original)
	}
	m.nameInput.SetValue(m.draft.Name)
	m.colorInput.SetValue(m.draft.Color)
	m.descInput.SetValue(m.draft.Description)
	m.focus()
	return m
}

func (m *categoryFormModel) focus() tea.Cmd {
	m.nameInput.Blur()
	m.colorInput.Blur()
	m.descInput.Blur()

	switch m.field {
	case categoryFieldName:
		m.nameInput.Focus()
	case categoryFieldColor:
		m.colorInput.Focus()
	case categoryFieldDescription:
		m.descInput.Focus()
	default:
		return nil
	}
	return textinput.Blink
}

func (m *categoryFormModel) move(delta int) tea.Cmd {
	m.field = (m.field + delta + categoryFieldCount) % categoryFieldCount
	return m.focus()
}

func (m *categoryFormModel) Update(msg tea.Msg) (*categoryFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case categorySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return categoryFormDoneMsg{saved: true} }

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return categoryFormDoneMsg{} }
		case "ctrl+s":
			return m, m.submit()
		case "tab", "down":
			return m, m.move(1)
		case "shift+tab", "up":
			return m, m.move(-1)
		}

		switch m.field {
		case categoryFieldColor:
			switch msg.String() {
			case "left":
				m.cycleColor(-1)
				return m, nil
			case "right":
				m.cycleColor(1)
				return m, nil
			}
		case categoryFieldType:
			switch msg.String() {
			case "left", "h":
				m.cycleType(-1)
			case "right", "l", " ":
				m.cycleType(1)
			case "enter":
				return m, m.move(1)
			}
			return m, nil
		case categoryFieldSubmit:
			if msg.String() == "enter" {
				return m, m.submit()
			}
			return m, nil
		}
		if msg.String() == "enter" {
			return m, m.move(1)
		}
	}

	var cmd tea.Cmd
	switch m.field {
	case categoryFieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case categoryFieldColor:
		m.colorInput, cmd = m.colorInput.Update(msg)
	case categoryFieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

// cycleColor steps through the palette starting from the typed color
func (m *categoryFormModel) cycleColor(delta int) {
	palette := models.CategoryColors
	current := -1
	for i, c := range palette {
		if strings.EqualFold(c, strings.TrimSpace(m.colorInput.Value())) {
			current = i
		}
	}
	next := 0
	if current >= 0 {
		next = (current + delta + len(palette)) % len(palette)
	}
	m.colorInput.SetValue(palette[next])
	m.colorInput.CursorEnd()
}

func (m *categoryFormModel) cycleType(delta int) {
	types := models.CategoryTypes
	current := 0
	for i, t := range types {
		if t == m.draft.ResourceType {
			current = i
		}
	}
	m.draft.ResourceType = types[(current+delta+len(types))%len(types)]
}

func (m *categoryFormModel) submit() tea.Cmd {
	m.draft.Name = m.nameInput.Value()
	m.draft.Color = m.colorInput.Value()
	m.draft.Description = m.descInput.Value()

	m.err = nil
	m.saving = true
	draft := m.draft
	store := m.store

	if m.original != nil {
		original := *m.original
		update := draft.Patch(original)
		return func() tea.Msg {
			return categorySavedMsg{err: store.UpdateCategory(context.Background(), original.ID, update)}
		}
	}
	return func() tea.Msg {
		_, err := store.AddCategory(context.Background(), draft)
		return categorySavedMsg{err: err}
	}
}

func (m *categoryFormModel) View() string {
	var b strings.Builder
	if m.original != nil {
		b.WriteString(renderTitle("Edit Category"))
	} else {
		b.WriteString(renderTitle("New Category"))
	}

	b.WriteString(m.label(categoryFieldName, "Name (required):") + "\n")
	b.WriteString(m.nameInput.View() + "\n\n")

	b.WriteString(m.label(categoryFieldColor, "Color:"))
	b.WriteString(" " + categorySwatch(strings.TrimSpace(m.colorInput.Value())) + "\n")
	b.WriteString(m.colorInput.View() + "  " + mutedStyle.Render("←/→ palette") + "\n\n")

	b.WriteString(m.label(categoryFieldDescription, "Description:") + "\n")
	b.WriteString(m.descInput.View() + "\n\n")

	b.WriteString(m.label(categoryFieldType, "Groups under:"))
	var parts []string
	for _, t := range models.CategoryTypes {
		if t == m.draft.ResourceType {
			parts = append(parts, selectedStyle.Render("["+t.Label()+"]"))
		} else {
			parts = append(parts, mutedStyle.Render(" "+t.Label()+" "))
		}
	}
	b.WriteString(" " + strings.Join(parts, " ") + "\n\n")

	button := "[ Save ]"
	if m.field == categoryFieldSubmit {
		button = selectedStyle.Render(button)
	}
	b.WriteString(button + "\n")

	if m.saving {
		b.WriteString(renderLoadingState("Saving..."))
	}
	if m.err != nil {
		b.WriteString("\n" + renderInlineError(m.err) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("(Tab to move, Ctrl+S to save, Esc to cancel)") + "\n")
	return b.String()
}

func (m *categoryFormModel) label(field int, text string) string {
	if m.field == field {
		return selectedMarkerStyle.Render("→ ") + fieldLabelStyle.Render(text)
	}
	return "  " + fieldLabelStyle.Render(text)
}
