package player

import "sync"

type fakePlayer struct {
	mu     sync.Mutex
	time   float64
	paused bool
	ended  bool
	pauses int
	seeks  []float64
}

func (p *fakePlayer) CurrentTime() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.time
}

func (p *fakePlayer) SetCurrentTime(t float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.time = t
	p.seeks = append(p.seeks, t)
}

func (p *fakePlayer) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

func (p *fakePlayer) Ended() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ended
}

func (p *fakePlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
	p.pauses++
}

func (p *fakePlayer) setTime(t float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.time = t
}

func (p *fakePlayer) setPaused(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = v
}
