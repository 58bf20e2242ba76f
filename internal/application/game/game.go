// Package game hosts the ebiten.Game shell that owns the active scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/mf/internal/application/scene"
)

const tickSeconds = 1.0 / 60.0

// Game runs the active scene and swaps it out when the scene asks for
// a transition. It implements ebiten.Game.
type Game struct {
	active scene.Scene
	width  int
	height int
}

// New wraps the given scene; its OnEnter fires immediately so the
// first Draw sees an initialized screen.
func New(root scene.Scene, width, height int) *Game {
	g := &Game{active: root, width: width, height: height}
	g.active.OnEnter()
	return g
}

func (g *Game) Update() error {
	next, err := g.active.Update(tickSeconds)
	if err != nil {
		return err
	}
	if next != nil {
		g.swap(next)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.active.Draw(screen)
}

// Layout fixes the logical resolution; window scaling happens outside.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) swap(next scene.Scene) {
	g.active.OnExit()
	g.active = next
	g.active.OnEnter()
}
