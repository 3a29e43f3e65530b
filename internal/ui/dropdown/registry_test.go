package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droplist/internal/domain"
)

func testOptions() []domain.Option {
	return []domain.Option{
		domain.NewOption("a", "Alpha"),
		domain.NewOption("b", "Beta"),
		domain.NewOption("c", "Gamma"),
	}
}

func TestRegistry_RegisterUnregister(t *testing.T) {
	reg := NewRegistry()

	a := New(testOptions(), Config{Owner: "a"}, reg)
	b := New(testOptions(), Config{Owner: "b"}, reg)

	assert.Equal(t, 2, reg.Len())

	reg.Unregister(a)
	assert.Equal(t, 1, reg.Len())

	// Unregistering an unknown instance is a no-op
	reg.Unregister(a)
	assert.Equal(t, 1, reg.Len())

	reg.Unregister(b)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_RegisterIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	a := New(testOptions(), Config{Owner: "a"}, reg)
	reg.Register(a)

	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_MutualExclusion(t *testing.T) {
	reg := NewRegistry()
	trigger := Rect{X: 0, Y: 0, Width: 20, Height: 1}

	a := New(testOptions(), Config{Owner: "a"}, reg)
	b := New(testOptions(), Config{Owner: "b"}, reg)

	a.Open(trigger, 40, "field-a")
	require.True(t, a.IsOpen())
	assert.Equal(t, 1, reg.OpenCount())

	// Opening B closes A first
	cmd := b.Open(trigger, 40, "field-b")
	require.NotNil(t, cmd)

	assert.False(t, a.IsOpen(), "expected A to be closed when B opens")
	assert.True(t, b.IsOpen())
	assert.Equal(t, 1, reg.OpenCount())

	// The eviction notification for A is part of the open command
	msgs := collectMsgs(cmd)
	var closedOwners []string
	for _, msg := range msgs {
		if closed, ok := msg.(ClosedMsg); ok {
			closedOwners = append(closedOwners, closed.Owner)
		}
	}
	assert.Equal(t, []string{"a"}, closedOwners)
}

func TestRegistry_OpenCountNeverExceedsOne(t *testing.T) {
	reg := NewRegistry()
	trigger := Rect{X: 0, Y: 0, Width: 20, Height: 1}

	models := []*Model{
		New(testOptions(), Config{Owner: "a"}, reg),
		New(testOptions(), Config{Owner: "b"}, reg),
		New(testOptions(), Config{Owner: "c"}, reg),
	}

	for _, m := range models {
		m.Open(trigger, 40, "")
		assert.LessOrEqual(t, reg.OpenCount(), 1)
	}
}

func TestRegistry_CloseAllExceptSkipsClosed(t *testing.T) {
	reg := NewRegistry()

	a := New(testOptions(), Config{Owner: "a"}, reg)
	b := New(testOptions(), Config{Owner: "b"}, reg)

	// Nothing open: no close commands to run
	assert.Nil(t, reg.CloseAllExcept(b))
	assert.False(t, a.IsOpen())
}
