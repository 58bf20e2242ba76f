// Package scene defines the screen abstraction the game loop drives.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. A scene requests a transition by
// returning the scene that should replace it; returning nil keeps it
// active. An error from Update shuts the game down.
type Scene interface {
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs once when the scene becomes active.
	OnEnter()

	// OnExit runs once when the scene is replaced. Cleanup and
	// state saving belong here.
	OnExit()
}
