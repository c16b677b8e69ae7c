package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of barriers with a passable gap between Top and Bottom.
type Obstacle struct {
	X      float64 // Left edge, decreases every frame
	Top    float64 // Bottom edge of the upper barrier
	Bottom float64 // Top edge of the lower barrier (Top + gap)
	Scored bool    // Set once when the actor passes it
}

// ObstacleField spawns, moves and removes obstacles.
// It is the only mutator of obstacle positions and of the collection itself;
// the slice stays in spawn order, which is also ascending X.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.FlappyObstacles
	world     World
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(seed int64, world World, cfg config.FlappyObstacles) *ObstacleField {
	f := &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
		world:     world,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles and reseeds the RNG.
func (f *ObstacleField) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Width returns the obstacle width.
func (f *ObstacleField) Width() float64 {
	return f.cfg.Width
}

// Tick spawns a new obstacle on spawn frames, moves every obstacle left and
// drops those whose right edge has left the world.
func (f *ObstacleField) Tick(frame int, delta float64) {
	if frame%f.cfg.SpawnInterval == 0 {
		f.spawn()
	}

	dx := f.cfg.Speed * normalize(delta)
	for i := range f.obstacles {
		f.obstacles[i].X -= dx
	}

	// Filter in place; every element is visited exactly once.
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+f.cfg.Width >= 0 {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// spawn appends an obstacle just beyond the right edge of the world.
func (f *ObstacleField) spawn() {
	minTop := f.cfg.MinTop
	maxTop := f.world.FloorY() - f.cfg.Gap - f.cfg.MinBottomMargin
	top := minTop
	if maxTop > minTop {
		top = core.ClampF(f.rng.Float64()*(maxTop-minTop)+minTop, minTop, maxTop)
	}

	f.obstacles = append(f.obstacles, Obstacle{
		X:      f.world.Width,
		Top:    top,
		Bottom: top + f.cfg.Gap,
	})
}

// Obstacles returns the live collection. Callers may flip Scored but must
// not reorder, add or remove elements.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}
