package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Help.Keys(), "?")
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.Quit.Keys(), "esc")
	assert.Contains(t, km.ForceQuit.Keys(), "ctrl+c")
}
