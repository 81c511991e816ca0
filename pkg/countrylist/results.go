package countrylist

// ListAction is how the user left a list.
type ListAction int

const (
	ListActionNone     ListAction = iota
	ListActionSelected            // A on a row
	ListActionBack                // B
	ListActionQuit                // Menu or window closed
)

func (a ListAction) String() string {
	switch a {
	case ListActionSelected:
		return "selected"
	case ListActionBack:
		return "back"
	case ListActionQuit:
		return "quit"
	}
	return "none"
}

// ListResult is returned by a list when it closes.
type ListResult struct {
	Action        ListAction
	SelectedIndex int // Row under the cursor when the list closed
	VisibleStart  int // First visible row, for scroll restoration
}
