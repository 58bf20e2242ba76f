package audio

import "time"

// Note frequencies in hertz for the built-in melody.
const (
	NoteC4 = 261.63
	NoteD4 = 293.66
	NoteE4 = 329.63
	NoteF4 = 349.23
	NoteG4 = 392.00
	NoteA4 = 440.00
	NoteB4 = 493.88
	NoteC5 = 523.25
	NoteD5 = 587.33
	NoteE5 = 659.25
	NoteF5 = 698.46
	NoteG5 = 783.99
	NoteA5 = 880.00

	// NoteRest marks a silent step.
	NoteRest = 0
)

// ToneEvent is one melody step: a pitch (NoteRest for silence) and how
// long it holds before the next step begins.
type ToneEvent struct {
	Freq     float64
	Duration time.Duration
}

func note(freq float64, ms int) ToneEvent {
	return ToneEvent{Freq: freq, Duration: time.Duration(ms) * time.Millisecond}
}

// DefaultMelody is the looping background riff.
var DefaultMelody = []ToneEvent{
	note(NoteE5, 150), note(NoteE5, 150), note(NoteRest, 150), note(NoteE5, 150),
	note(NoteRest, 150), note(NoteC5, 150), note(NoteE5, 150), note(NoteG5, 300),
	note(NoteRest, 300), note(NoteG4, 300), note(NoteRest, 300),
	note(NoteC5, 300), note(NoteRest, 150), note(NoteG4, 300), note(NoteRest, 150),
	note(NoteE4, 300), note(NoteRest, 150), note(NoteA4, 300), note(NoteB4, 300),
	note(NoteRest, 150), note(NoteA4, 300), note(NoteG4, 450),
}

// Scheduler walks a melody against an externally supplied clock. It
// keeps no goroutines and touches no global state; callers hand it
// elapsed time and play whatever event it returns.
type Scheduler struct {
	melody    []ToneEvent
	cursor    int
	noteStart time.Duration
	started   bool
}

// NewScheduler builds a scheduler over the given melody, falling back
// to DefaultMelody when none is supplied.
func NewScheduler(melody []ToneEvent) *Scheduler {
	if len(melody) == 0 {
		melody = DefaultMelody
	}
	return &Scheduler{melody: melody}
}

// Advance reports the event that should start at the given elapsed time,
// or nil when the current event is still sounding. The melody loops.
// Elapsed time must be monotonic between resets.
func (s *Scheduler) Advance(elapsed time.Duration) *ToneEvent {
	if len(s.melody) == 0 {
		return nil
	}
	if s.started && elapsed-s.noteStart < s.melody[s.cursor].Duration {
		return nil
	}
	if s.started {
		s.cursor = (s.cursor + 1) % len(s.melody)
	}
	s.started = true
	s.noteStart = elapsed
	ev := s.melody[s.cursor]
	return &ev
}

// Reset rewinds to the first event for the next Advance call.
func (s *Scheduler) Reset() {
	s.cursor = 0
	s.noteStart = 0
	s.started = false
}
