package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/backlog/internal/core/backlog"
	"github.com/colonyops/backlog/pkg/tuitest"
)

func TestModel_Update(t *testing.T) {
	t.Parallel()

	s := NewSession(&memStore{}, backlog.Backlog{Items: []backlog.Item{{Text: "a"}, {Text: "b"}}}, Options{})
	m := New(s)
	assert.Nil(t, m.Init())

	updated, cmd := m.Update(tuitest.WindowSize(50, 12))
	assert.Nil(t, cmd)
	m = updated.(Model)
	assert.Equal(t, 50, Render(m.Session()).Width)
	assert.NotEmpty(t, Paint(Render(m.Session())))
	assert.True(t, m.View().AltScreen)

	updated, cmd = m.Update(tuitest.KeyDown())
	assert.Nil(t, cmd)
	m = updated.(Model)
	assert.Equal(t, 1, m.Session().Cursor())

	updated, cmd = m.Update(tuitest.KeyEnter())
	require.NotNil(t, cmd)
	m = updated.(Model)
	assert.True(t, m.quitting)

	text, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "b", text)
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m := New(NewSession(&memStore{}, backlog.Backlog{}, Options{Width: 40, Height: 10}))

	_, cmd := m.Update(tuitest.Rune('q'))
	require.NotNil(t, cmd)

	_, ok := m.Session().Selected()
	assert.False(t, ok)
}
