// internal/city/power.go
package city

import "go-city-builder/internal/event"

// PowerAccumulator keeps the running power total of committed buildings.
// The total only grows; sums are assumed to stay within uint32.
type PowerAccumulator struct {
	total      uint32
	dispatcher *event.Dispatcher
}

// NewPowerAccumulator creates an accumulator that reports changes through d. d may be nil.
func NewPowerAccumulator(d *event.Dispatcher) *PowerAccumulator {
	return &PowerAccumulator{dispatcher: d}
}

// Add increases the total and dispatches TotalPowerChanged with the new value.
func (p *PowerAccumulator) Add(amount uint32) uint32 {
	p.total += amount
	p.dispatcher.Dispatch(event.Event{Type: event.TotalPowerChanged, Data: p.total})
	return p.total
}

// Total returns the current total.
func (p *PowerAccumulator) Total() uint32 {
	return p.total
}
