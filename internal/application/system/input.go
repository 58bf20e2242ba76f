package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is a snapshot of player intent for one tick. Left, Right,
// Jump and Run are held states; Confirm and Cancel fire only on the
// frame the key goes down.
type InputState struct {
	Left    bool
	Right   bool
	Jump    bool
	Run     bool
	Confirm bool
	Cancel  bool
}

// InputSystem polls the keyboard and produces InputState snapshots.
// Keeping the ebiten calls behind this type lets the simulation run
// headless in tests with hand-built snapshots.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Poll() InputState {
	return InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:    ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Run:     ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Cancel:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
