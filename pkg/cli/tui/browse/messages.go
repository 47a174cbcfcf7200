package browse

import "resource-catalog/pkg/models"

// LoadedMsg is emitted when the catalog has been fetched
type LoadedMsg struct {
	Err error
}

// DeleteDoneMsg is emitted when a resource deletion finishes
type DeleteDoneMsg struct {
	Title string
	Err   error
}

// FormDoneMsg is emitted when a resource form closes.
// Resource is nil when the form was cancelled or an edit was saved.
type FormDoneMsg struct {
	Saved    bool
	Resource *models.Resource
}
