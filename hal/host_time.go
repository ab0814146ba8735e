package hal

import "time"

const tickDur = time.Millisecond

// hostTime converts wall clock progress between frames into millisecond
// ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
	now  func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// advance emits one tick on the first call and then one tick per elapsed
// millisecond. Ticks are dropped when nobody drains the channel.
func (t *hostTime) advance() {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.emit(1)
		return
	}
	t.acc += now.Sub(t.last)
	t.last = now
	if n := uint64(t.acc / tickDur); n > 0 {
		t.acc %= tickDur
		t.emit(n)
	}
}

func (t *hostTime) emit(n uint64) {
	for ; n > 0; n-- {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
