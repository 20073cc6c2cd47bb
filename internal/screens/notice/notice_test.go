package notice

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stemlab/internal/router"
)

func TestNotice_View(t *testing.T) {
	n := New("Lesson unavailable", "Lesson 99 has category \"Raspberry Pi\".")
	view := n.View(100, 30)

	assert.Contains(t, view, "Lesson unavailable")
	assert.Contains(t, view, "Raspberry Pi")
	assert.Equal(t, "Lesson unavailable", n.Title())
}

func TestNotice_EnterPops(t *testing.T) {
	n := New("t", "m")

	_, cmd := n.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestNotice_OtherKeysIgnored(t *testing.T) {
	n := New("t", "m")
	_, cmd := n.Update(tea.KeyPressMsg{Code: 'z', Text: "z"})
	assert.Nil(t, cmd)
}
