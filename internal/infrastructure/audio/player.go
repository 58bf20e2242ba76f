package audio

import (
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Effect names the one-shot sounds the game can trigger.
type Effect int

const (
	EffectCoin Effect = iota
	EffectJump
	EffectStomp
	EffectBlockHit
)

const (
	melodyVolume = 0.25
	effectVolume = 0.35
)

// Player drives the background melody through an ebiten audio context
// and plays pre-rendered one-shot effects. When muted it swallows every
// call, so the game loop never branches on audio availability.
type Player struct {
	ctx     *eaudio.Context
	sched   *Scheduler
	current *eaudio.Player
	effects map[Effect][]byte
	start   time.Time
	muted   bool
}

// NewPlayer builds a player over the process-wide audio context,
// creating the context on first use.
func NewPlayer(muted bool) *Player {
	p := &Player{
		sched: NewScheduler(nil),
		muted: muted,
		start: time.Now(),
	}
	if muted {
		return p
	}
	p.ctx = eaudio.CurrentContext()
	if p.ctx == nil {
		p.ctx = eaudio.NewContext(SampleRate)
	}
	p.effects = map[Effect][]byte{
		EffectCoin:     Synthesize(WaveSquare, NoteB4*2, 90*time.Millisecond, effectVolume),
		EffectJump:     Synthesize(WaveSquare, NoteA4, 80*time.Millisecond, effectVolume),
		EffectStomp:    Synthesize(WaveSquare, 110, 100*time.Millisecond, effectVolume),
		EffectBlockHit: Synthesize(WaveSquare, NoteE4, 60*time.Millisecond, effectVolume),
	}
	return p
}

// Update advances the melody clock. Call once per frame.
func (p *Player) Update() {
	if p.muted {
		return
	}
	ev := p.sched.Advance(time.Since(p.start))
	if ev == nil {
		return
	}
	if p.current != nil {
		p.current.Close()
		p.current = nil
	}
	if ev.Freq == NoteRest {
		return
	}
	pl := p.ctx.NewPlayerFromBytes(Synthesize(WaveSquare, ev.Freq, ev.Duration, melodyVolume))
	pl.Play()
	p.current = pl
}

// Play fires a one-shot effect on top of the melody.
func (p *Player) Play(e Effect) {
	if p.muted {
		return
	}
	data, ok := p.effects[e]
	if !ok {
		return
	}
	pl := p.ctx.NewPlayerFromBytes(data)
	pl.Play()
}

// Reset rewinds the melody, used when a session restarts.
func (p *Player) Reset() {
	p.sched.Reset()
	p.start = time.Now()
	if p.current != nil {
		p.current.Close()
		p.current = nil
	}
}
