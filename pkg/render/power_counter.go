// pkg/render/power_counter.go
package render

import "go-city-builder/internal/event"

// PowerCounter mirrors the running power total for the HUD.
type PowerCounter struct {
	total uint32
}

// NewPowerCounter creates a counter subscribed to TotalPowerChanged on d.
func NewPowerCounter(d *event.Dispatcher) *PowerCounter {
	c := &PowerCounter{}
	if d != nil {
		d.Subscribe(event.TotalPowerChanged, c)
	}
	return c
}

// OnEvent implements event.Listener.
func (c *PowerCounter) OnEvent(e event.Event) {
	if total, ok := e.Data.(uint32); ok {
		c.total = total
	}
}

// Total returns the last total seen.
func (c *PowerCounter) Total() uint32 {
	return c.total
}

// Text is the label shown in the HUD.
func (c *PowerCounter) Text() string {
	return TotalPowerLabel(c.total)
}
