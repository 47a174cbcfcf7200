package browse

// Step constants for the browse state machine
const (
	StepList = iota
	StepSearch
	StepActionMenu
	StepViewDetails
	StepDeleteConfirm
	StepEditing
)

// DefaultWidth is the default terminal width fallback
const DefaultWidth = 80

// GridColumns is the number of cards per row in grid view
const GridColumns = 2

// CardHeight is the rendered height of one grid card, borders included
const CardHeight = 7

// ListItemHeight is the rendered height of one list entry
const ListItemHeight = 3
