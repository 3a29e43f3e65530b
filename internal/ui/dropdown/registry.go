package dropdown

import tea "github.com/charmbracelet/bubbletea"

// Instance is the control surface a dropdown exposes to its registry.
type Instance interface {
	Owner() string
	IsOpen() bool
	Close() tea.Cmd
}

// Registry tracks the live dropdown instances of a UI tree so that opening
// one can close every other. Instances register on mount and unregister on
// teardown. All access happens on the Bubble Tea event loop, so no locking
// is involved.
type Registry struct {
	instances []Instance
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an instance. Registering an already-registered instance is
// a no-op.
func (r *Registry) Register(inst Instance) {
	for _, existing := range r.instances {
		if existing == inst {
			return
		}
	}
	r.instances = append(r.instances, inst)
}

// Unregister removes an instance from the registry.
func (r *Registry) Unregister(inst Instance) {
	for i, existing := range r.instances {
		if existing == inst {
			r.instances = append(r.instances[:i], r.instances[i+1:]...)
			return
		}
	}
}

// CloseAllExcept closes every open instance other than keep and returns
// their batched close notifications. Open calls this first, which keeps at
// most one registered dropdown open at a time.
func (r *Registry) CloseAllExcept(keep Instance) tea.Cmd {
	var cmds []tea.Cmd
	for _, inst := range r.instances {
		if inst == keep || !inst.IsOpen() {
			continue
		}
		if cmd := inst.Close(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// OpenCount returns the number of currently open instances.
func (r *Registry) OpenCount() int {
	count := 0
	for _, inst := range r.instances {
		if inst.IsOpen() {
			count++
		}
	}
	return count
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	return len(r.instances)
}
