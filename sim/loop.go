package sim

import (
	"log"
	"sync"
	"time"
)

// GameLoop calls step at a fixed rate until stopped.
type GameLoop struct {
	step     func()
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(step func(), tickRate int) *GameLoop {
	return &GameLoop{
		step:     step,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called. A tick rate <= 0 runs unthrottled.
func (g *GameLoop) Run() {
	if g.tickRate <= 0 {
		g.runUnthrottled()
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.step()
		}
	}
}

func (g *GameLoop) runUnthrottled() {
	for {
		select {
		case <-g.stopChan:
			return
		default:
			g.step()
		}
	}
}

// Stop may be called from inside step and more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
