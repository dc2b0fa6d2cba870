package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.SubscribeFunc(TotalPowerChanged, func(Event) { order = append(order, "first") })
	d.SubscribeFunc(TotalPowerChanged, func(Event) { order = append(order, "second") })
	d.SubscribeFunc(BuildingPlaced, func(Event) { order = append(order, "placed") })

	d.Dispatch(Event{Type: TotalPowerChanged, Data: uint32(5)})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected dispatch order %v", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(BuildModeEntered, a)
	d.Subscribe(BuildModeEntered, b)
	d.Unsubscribe(BuildModeEntered, a)

	d.Dispatch(Event{Type: BuildModeEntered})

	if len(a.got) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(a.got))
	}
	if len(b.got) != 1 {
		t.Errorf("subscribed listener received %d events", len(b.got))
	}
}

func TestDispatchOnNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: BuildModeExited})
}
