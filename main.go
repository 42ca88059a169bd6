package main

import (
	"image"
	"log"

	"github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/fonts"
	"github.com/automoto/brawlcore/scenes"
	"github.com/automoto/brawlcore/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "brawlcore"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.Load(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Brawl Sandbox")
	ebiten.SetTPS(config.Combat.TickRate)

	// Restore the debug toggles from the last session
	if err := systems.InitPersistence(appName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, ok := systems.LoadDebugOptions(); ok {
		config.Debug = saved
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
