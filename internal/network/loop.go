package network

import "go.uber.org/zap"

// Loop drives a Network one frame at a time. The host's frame scheduler
// calls Frame once per refresh; Start and Stop decide whether that frame
// advances the animation or only redraws it.
type Loop struct {
	net     *Network
	running bool
	frames  uint64
	log     *zap.Logger
}

func NewLoop(n *Network, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{net: n, log: log}
}

func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.log.Info("animation started", zap.Uint64("frame", l.frames))
}

func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.log.Info("animation stopped", zap.Uint64("frame", l.frames))
}

// Toggle flips between running and stopped and reports the new state.
func (l *Loop) Toggle() bool {
	if l.running {
		l.Stop()
	} else {
		l.Start()
	}
	return l.running
}

func (l *Loop) Running() bool { return l.running }

// Frames is the number of frames that advanced the animation.
func (l *Loop) Frames() uint64 { return l.frames }

// Frame renders one frame onto c and reports whether it advanced.
func (l *Loop) Frame(c Canvas) bool {
	if !l.running {
		l.net.Render(c)
		return false
	}
	l.net.Animate(c)
	l.frames++
	return true
}

// Advance runs n frames back to back, as a scheduler would, and returns
// how many advanced.
func (l *Loop) Advance(n int, c Canvas) int {
	advanced := 0
	for i := 0; i < n; i++ {
		if l.Frame(c) {
			advanced++
		}
	}
	return advanced
}
