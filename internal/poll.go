package internal

import "time"

// poll sends source() into its stream on every timer tick, but only while
// the stream has subscribers.
type poll struct {
	o        *Observable
	timer    Timer
	interval time.Duration
	source   func() Signal

	cancel func()
}

func FromPoll(name string, timer Timer, interval time.Duration, source func() Signal) *Observable {
	o := NewStream(name)
	o.Bind(&poll{o: o, timer: timer, interval: interval, source: source})
	return o
}

func (p *poll) Activate() {
	p.cancel = p.timer.Every(p.interval, p.tick)
}

func (p *poll) Deactivate() {
	if p.cancel != nil {
		cancel := p.cancel
		p.cancel = nil
		cancel()
	}
}

func (p *poll) Dispose() {
	p.source = nil
}

func (p *poll) tick() {
	if p.o.IsEnded() {
		return
	}
	p.o.Send(p.source())
}
