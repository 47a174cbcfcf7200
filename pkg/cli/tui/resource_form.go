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

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Resource form fields in tab order
const (
	fieldType = iota
	fieldTitle
	fieldSource // URL for links, local file path for uploads
	fieldDescription
	fieldCategory
	fieldTags
	fieldSubmit
	fieldCount
)

// resourceFormModel adds a new resource, or edits one when original is set
type resourceFormModel struct {
	store    *catalog.Store
	original *models.Resource

	draft         catalog.ResourceDraft
	categories    []models.Category
	categoryIndex int // -1 when nothing (or a deleted category) is selected
	stagedPath    string

	titleInput textinput.Model
	urlInput   textinput.Model
	fileInput  textinput.Model
	tagInput   textinput.Model
	descInput  textarea.Model

	field  int
	err    error
	saving bool
	width  int
}

// resourceSavedMsg is emitted when the store finishes a save
type resourceSavedMsg struct {
	resource *models.Resource
	err      error
}

// newResourceForm opens the form. original == nil means adding.
func newResourceForm(store *catalog.Store, original *models.Resource) *resourceFormModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "Resource title"
	titleInput.CharLimit = 255
	titleInput.Width = 60

	urlInput := textinput.New()
	urlInput.Placeholder = "https://example.com"
	urlInput.CharLimit = 2048
	urlInput.Width = 60

	fileInput := textinput.New()
	fileInput.Placeholder = "/path/to/file.pdf"
	fileInput.CharLimit = 4096
	fileInput.Width = 60

	tagInput := textinput.New()
	tagInput.Placeholder = "type a tag and press Enter"
	tagInput.CharLimit = 64
	tagInput.Width = 40

	descInput := textarea.New()
	descInput.Placeholder = "Optional description"
	descInput.SetWidth(60)
	descInput.SetHeight(3)
	descInput.CharLimit = 5000
	descInput.ShowLineNumbers = false

	m := &resourceFormModel{
		store:         store,
		original:      original,
		draft:         catalog.NewResourceDraft(),
		categories:    store.State().Categories,
		categoryIndex: -1,
		titleInput:    titleInput,
		urlInput:      urlInput,
		fileInput:     fileInput,
		tagInput:      tagInput,
		descInput:     descInput,
		field:         fieldTitle,
		width:         browse.DefaultWidth,
	}

	if original != nil {
		m.draft = catalog.DraftFromResource(*original)
		m.titleInput.SetValue(m.draft.Title)
		m.urlInput.SetValue(m.draft.URL)
		m.descInput.SetValue(m.draft.Description)
	}
	m.categoryIndex = m.indexOfCategory(m.draft.CategoryID)
	m.focus()
	return m
}

func (m *resourceFormModel) editing() bool {
	return m.original != nil
}

func (m *resourceFormModel) indexOfCategory(id uuid.UUID) int {
	for i, c := range m.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// focus blurs every input and focuses the one for the current field
func (m *resourceFormModel) focus() tea.Cmd {
	m.titleInput.Blur()
	m.urlInput.Blur()
	m.fileInput.Blur()
	m.tagInput.Blur()
	m.descInput.Blur()

	switch m.field {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldSource:
		if m.draft.Type.HasUpload() {
			m.fileInput.Focus()
		} else {
			m.urlInput.Focus()
		}
	case fieldDescription:
		m.descInput.Focus()
		return textarea.Blink
	case fieldTags:
		m.tagInput.Focus()
	default:
		return nil
	}
	return textinput.Blink
}

func (m *resourceFormModel) move(delta int) tea.Cmd {
	m.field = (m.field + delta + fieldCount) % fieldCount
	return m.focus()
}

func (m *resourceFormModel) Update(msg tea.Msg) (*resourceFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case resourceSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, func() tea.Msg {
			return browse.FormDoneMsg{Saved: true, Resource: msg.resource}
		}

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return browse.FormDoneMsg{} }
		case "ctrl+s":
			return m, m.submit()
		case "tab":
			return m, m.move(1)
		case "shift+tab":
			return m, m.move(-1)
		}

		switch m.field {
		case fieldType:
			return m, m.handleTypeKeys(msg)
		case fieldCategory:
			return m, m.handleCategoryKeys(msg)
		case fieldTags:
			if cmd, handled := m.handleTagKeys(msg); handled {
				return m, cmd
			}
		case fieldSource:
			if msg.String() == "enter" {
				if m.draft.Type.HasUpload() {
					m.stageFile()
				}
				return m, m.move(1)
			}
		case fieldSubmit:
			if msg.String() == "enter" {
				return m, m.submit()
			}
			return m, nil
		case fieldTitle:
			if msg.String() == "enter" {
				return m, m.move(1)
			}
		}
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldSource:
		if m.draft.Type.HasUpload() {
			m.fileInput, cmd = m.fileInput.Update(msg)
		} else {
			m.urlInput, cmd = m.urlInput.Update(msg)
		}
	case fieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	case fieldTags:
		m.tagInput, cmd = m.tagInput.Update(msg)
	}
	return m, cmd
}

func (m *resourceFormModel) handleTypeKeys(msg tea.KeyMsg) tea.Cmd {
	types := models.ResourceTypes
	current := 0
	for i, t := range types {
		if t == m.draft.Type {
			current = i
		}
	}
	switch msg.String() {
	case "left", "h":
		m.draft.Type = types[(current-1+len(types))%len(types)]
	case "right", "l", " ":
		m.draft.Type = types[(current+1)%len(types)]
	case "enter":
		return m.move(1)
	}
	return nil
}

func (m *resourceFormModel) handleCategoryKeys(msg tea.KeyMsg) tea.Cmd {
	if len(m.categories) == 0 {
		if msg.String() == "enter" {
			return m.move(1)
		}
		return nil
	}
	switch msg.String() {
	case "left", "h":
		if m.categoryIndex <= 0 {
			m.categoryIndex = len(m.categories) - 1
		} else {
			m.categoryIndex--
		}
	case "right", "l", " ":
		m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
	case "enter":
		return m.move(1)
	default:
		return nil
	}
	m.draft.CategoryID = m.categories[m.categoryIndex].ID
	return nil
}

// handleTagKeys adds a tag on enter and removes the last one on backspace in an empty input
func (m *resourceFormModel) handleTagKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		value := m.tagInput.Value()
		if strings.TrimSpace(value) == "" {
			return m.move(1), true
		}
		m.tagInput.SetValue("")
		m.err = m.addTags(value)
		return nil, true
	case "backspace":
		if m.tagInput.Value() == "" && len(m.draft.Tags) > 0 {
			m.draft.RemoveTag(m.draft.Tags[len(m.draft.Tags)-1])
			return nil, true
		}
	}
	return nil, false
}

// addTags adds each comma separated tag in input, reporting the ones already present
func (m *resourceFormModel) addTags(input string) error {
	var dupes []string
	for _, tag := range catalog.ParseTags(input) {
		if !m.draft.AddTag(tag) {
			dupes = append(dupes, tag)
		}
	}
	if len(dupes) > 0 {
		return fmt.Errorf("already added: %s", strings.Join(dupes, ", "))
	}
	return nil
}

// stageFile stages the path in the file input. It reports whether a file is staged.
func (m *resourceFormModel) stageFile() bool {
	path := strings.TrimSpace(m.fileInput.Value())
	if path == "" {
		m.draft.StageFile(nil)
		m.stagedPath = ""
		return false
	}
	if path == m.stagedPath && m.draft.File != nil {
		return true
	}

	m.draft.Title = m.titleInput.Value()
	f, err := catalog.StageLocalFile(path)
	if err != nil {
		m.err = err
		return false
	}
	m.draft.StageFile(f)
	m.stagedPath = path
	m.titleInput.SetValue(m.draft.Title)
	m.err = nil
	logger.Log("staged %s (%d bytes)", f.Name, f.Size)
	return true
}

// submit copies the inputs into the draft and saves through the store
func (m *resourceFormModel) submit() tea.Cmd {
	if m.draft.Type.HasUpload() && strings.TrimSpace(m.fileInput.Value()) != m.stagedPath {
		if !m.stageFile() && m.err != nil {
			return nil
		}
	}
	if pending := m.tagInput.Value(); strings.TrimSpace(pending) != "" {
		m.addTags(pending)
		m.tagInput.SetValue("")
	}

	m.draft.Title = m.titleInput.Value()
	m.draft.URL = m.urlInput.Value()
	m.draft.Description = m.descInput.Value()

	m.err = nil
	m.saving = true
	draft := m.draft
	store := m.store

	if m.editing() {
		original := *m.original
		patch := draft.Patch(original)
		return func() tea.Msg {
			err := store.UpdateResource(context.Background(), original.ID, patch)
			return resourceSavedMsg{err: err}
		}
	}
	return func() tea.Msg {
		created, err := store.AddResource(context.Background(), draft)
		return resourceSavedMsg{resource: created, err: err}
	}
}

func (m *resourceFormModel) View() string {
	var b strings.Builder

	if m.editing() {
		b.WriteString(renderTitle("Edit Resource"))
	} else {
		b.WriteString(renderTitle("Add Resource"))
	}

	b.WriteString(m.label(fieldType, "Type:"))
	b.WriteString(" " + m.renderTypeOptions() + "\n\n")

	b.WriteString(m.label(fieldTitle, "Title (required):") + "\n")
	b.WriteString(m.titleInput.View() + "\n\n")

	if m.draft.Type.HasUpload() {
		b.WriteString(m.label(fieldSource, "File:") + "\n")
		b.WriteString(m.fileInput.View() + "\n")
		switch {
		case m.draft.File != nil:
			b.WriteString(successStyle.Render(fmt.Sprintf("  staged %s (%s)", m.draft.File.Name, format.FileSize(&m.draft.File.Size))) + "\n")
		case m.editing() && m.original.FileName != nil:
			b.WriteString(mutedStyle.Render("  current: "+*m.original.FileName+" (leave empty to keep)") + "\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.label(fieldSource, "URL (required):") + "\n")
		b.WriteString(m.urlInput.View() + "\n\n")
	}

	b.WriteString(m.label(fieldDescription, "Description:") + "\n")
	b.WriteString(m.descInput.View() + "\n\n")

	b.WriteString(m.label(fieldCategory, "Category:"))
	b.WriteString(" " + m.renderCategory() + "\n\n")

	b.WriteString(m.label(fieldTags, "Tags:"))
	if len(m.draft.Tags) > 0 {
		b.WriteString(" " + tagStyle.Render(format.Tags(m.draft.Tags)))
	}
	b.WriteString("\n" + m.tagInput.View() + "\n\n")

	button := "[ Save ]"
	if m.field == fieldSubmit {
		button = selectedStyle.Render(button)
	}
	b.WriteString(button + "\n")

	if m.saving {
		b.WriteString(renderLoadingState("Saving..."))
	}
	if m.err != nil {
		b.WriteString("\n" + renderInlineError(m.err) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("(Tab to move, ←/→ to choose, Ctrl+S to save, Esc to cancel)") + "\n")
	return b.String()
}

func (m *resourceFormModel) label(field int, text string) string {
	if m.field == field {
		return selectedMarkerStyle.Render("→ ") + fieldLabelStyle.Render(text)
	}
	return "  " + fieldLabelStyle.Render(text)
}

func (m *resourceFormModel) renderTypeOptions() string {
	var parts []string
	for _, t := range models.ResourceTypes {
		text := catalog.TypeIcon(t) + " " + string(t)
		if t == m.draft.Type {
			parts = append(parts, selectedStyle.Render("["+text+"]"))
		} else {
			parts = append(parts, mutedStyle.Render(" "+text+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *resourceFormModel) renderCategory() string {
	if len(m.categories) == 0 {
		return warningStyle.Render("no categories yet, create one first")
	}
	if m.categoryIndex < 0 {
		if m.draft.CategoryID != uuid.Nil {
			return "◀ " + mutedStyle.Render("(deleted category)") + " ▶"
		}
		return "◀ " + mutedStyle.Render("(select a category)") + " ▶"
	}
	c := m.categories[m.categoryIndex]
	return "◀ " + categorySwatch(c.Color) + " " + c.Name + " ▶"
}
