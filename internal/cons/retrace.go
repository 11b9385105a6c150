package cons

import "time"

// Emulated CRT timing.
const (
	RetraceWindow = 1250 * time.Microsecond // vertical blank length
	PortPollCost  = 250 * time.Microsecond  // time one status port read takes
)

// RetracePort emulates a video status port whose retrace bit is set
// during the first RetraceWindow of every frame.
type RetracePort struct {
	tb     Timebase
	bit    uint8
	period time.Duration
}

// NewRetracePort returns a port reporting retrace on bit.
func NewRetracePort(tb Timebase, bit uint8) *RetracePort {
	return &RetracePort{tb: tb, bit: bit, period: FramePeriod}
}

// Read samples the port. Every read costs PortPollCost of time.
func (p *RetracePort) Read() uint8 {
	var v uint8
	if p.tb.Elapsed()%p.period < RetraceWindow {
		v = p.bit
	}
	p.tb.Sleep(PortPollCost)
	return v
}

// WaitRetrace busy-waits for the start of the next vertical retrace:
// first for bit to clear (leave any retrace in progress), then for it to
// be set again.
func WaitRetrace(read func() uint8, bit uint8) {
	for read()&bit != 0 {
	}
	for read()&bit == 0 {
	}
}
