package navigation

import "bidmatch/internal/app/ui/icons"

// Page identifiers for the built-in destinations
const (
	PageDashboard = "dashboard"
	PageSearch    = "search"
	PageAnalytics = "analytics"
	PageConfig    = "config"
)

// Destination is one fixed navigable target in the navigation bar
type Destination struct {
	ID    string
	Label string
	Icon  icons.Icon
}

// destinations is the build-time list, in display order
var destinations = [...]Destination{
	{ID: PageDashboard, Label: "Dashboard", Icon: icons.Dashboard},
	{ID: PageSearch, Label: "Buscar & Reavaliar", Icon: icons.Search},
	{ID: PageAnalytics, Label: "Análises", Icon: icons.Analytics},
	{ID: PageConfig, Label: "Configurações", Icon: icons.Config},
}

// Destinations returns a copy of the destination list in display order
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations[:])

	return out
}

// IDs returns the destination identifiers in display order
func IDs() []string {
	ids := make([]string, len(destinations))
	for i, d := range destinations {
		ids[i] = d.ID
	}

	return ids
}

// Lookup finds a destination by exact identifier
func Lookup(id string) (Destination, bool) {
	if i := IndexOf(id); i >= 0 {
		return destinations[i], true
	}

	return Destination{}, false
}

// IndexOf returns the display position of id, or -1 when id is not a known destination
func IndexOf(id string) int {
	for i, d := range destinations {
		if d.ID == id {
			return i
		}
	}

	return -1
}
