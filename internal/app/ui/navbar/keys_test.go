package navbar

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"bidmatch/internal/app/ui/navigation"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.Pages, len(navigation.IDs()))
	assert.Equal(t, []string{"1"}, km.Pages[0].Keys())
	assert.Equal(t, []string{"4"}, km.Pages[3].Keys())
	assert.Equal(t, []string{"1", "2", "3", "4"}, km.Jump.Keys())
	assert.Equal(t, "1-4", km.Jump.Help().Key)

	assert.Contains(t, km.Next.Keys(), "right")
	assert.Contains(t, km.Prev.Keys(), "left")
	assert.Contains(t, km.Menu.Keys(), "m")
}

func Test_KeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
	assert.Len(t, km.FullHelp(), 1)
	assert.Contains(t, km.FullHelp()[0], km.Menu)
}

func Test_KeyMap_HelpListsEveryKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
		help    string
	}{
		{name: "next", binding: km.Next, keys: []string{"right", "l", "tab"}, help: "→/l/tab"},
		{name: "prev", binding: km.Prev, keys: []string{"left", "h", "shift+tab"}, help: "←/h/shift+tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.Equal(t, tt.help, tt.binding.Help().Key)
		})
	}
}
