package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"droplist/internal/types"
	"droplist/internal/ui/styles"
)

func newRenderer() *Renderer {
	return New(styles.New(styles.Blue))
}

func TestRender_EmptyReturnsEmptyString(t *testing.T) {
	r := newRenderer()
	assert.Equal(t, "", r.Render(nil, 80))
}

func TestRender_ShowsMessages(t *testing.T) {
	r := newRenderer()

	toasts := []types.Toast{
		{Level: types.ToastInfo, Message: "labels: 2 selected", Expires: time.Now().Add(time.Second)},
		{Level: types.ToastSuccess, Message: "priority set", Expires: time.Now().Add(time.Second)},
	}

	view := r.Render(toasts, 120)

	assert.True(t, strings.Contains(view, "labels: 2 selected"))
	assert.True(t, strings.Contains(view, "priority set"))
}

func TestRender_AllLevels(t *testing.T) {
	r := newRenderer()

	levels := []types.ToastLevel{
		types.ToastInfo,
		types.ToastSuccess,
		types.ToastWarning,
		types.ToastError,
	}

	for _, level := range levels {
		toasts := []types.Toast{{Level: level, Message: "msg"}}
		assert.NotEmpty(t, r.Render(toasts, 80))
	}
}
