package navigation

// Navigator holds the current page on behalf of the host.
// It is the only writer of that value; views read it on every render.
type Navigator interface {
	// CurrentPage returns the identifier of the active destination
	CurrentPage() string
	// SwitchTo makes pageID current without checking it against the destination list
	SwitchTo(pageID string)
}

type navigator struct {
	current string
}

// NewNavigator creates a navigator starting at startPage
func NewNavigator(startPage string) Navigator {
	return &navigator{
		current: startPage,
	}
}

func (n *navigator) CurrentPage() string {
	return n.current
}

func (n *navigator) SwitchTo(pageID string) {
	n.current = pageID
}
