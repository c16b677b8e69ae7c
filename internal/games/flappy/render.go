package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	GroundFill    = '░'
	GroundStripe  = '▒'
	ActorBody     = '●'
)

// groundStripeWidth is the width of one ground texture stripe in world units.
const groundStripeWidth = 24

var (
	wingFrames = [3]rune{'v', '-', '^'}
	headGlyphs = map[Tilt]rune{TiltLevel: '>', TiltUp: '/', TiltDown: '\\'}
)

// Render draws the current session state into dst.
func (s *Session) Render(dst *core.Screen) {
	Render(dst, s.Snapshot())
}

// Render draws a snapshot into dst, scaling world units to screen cells.
// The start screen is drawn only while idle and the game-over box only
// after a run has ended.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.World.Width <= 0 || snap.World.Height <= 0 {
		return
	}

	v := newViewport(dst, snap.World)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o, snap.ObstacleWidth, snap.World.FloorY())
	}
	drawGround(dst, v, snap)
	drawActor(dst, v, snap)

	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite)

	switch snap.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, core.ColorBrightYellow,
			"FLAPPY",
			"Space / click to flap",
			"Enter to start")
	case PhaseOver:
		drawCenteredMessage(dst, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"Enter or R to restart")
	}
}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, w World) viewport {
	return viewport{
		sx: float64(dst.Width()) / w.Width,
		sy: float64(dst.Height()) / w.Height,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

func (v viewport) col(x float64) int { return int(x * v.sx) }
func (v viewport) row(y float64) int { return int(y * v.sy) }

// span converts a world length to at least one cell.
func (v viewport) span(from, length, scale float64) int {
	n := int((from+length)*scale) - int(from*scale)
	return core.Max(n, 1)
}

// drawObstacle renders both barriers of an obstacle with caps facing the gap.
func drawObstacle(dst *core.Screen, v viewport, o Obstacle, width, floorY float64) {
	x := v.col(o.X)
	w := v.span(o.X, width, v.sx)
	gapTop := v.row(o.Top)
	gapBottom := v.row(o.Bottom)
	floor := v.row(floorY)

	// Upper barrier, from the top of the screen to the gap
	if gapTop > 0 {
		dst.DrawRect(core.NewRect(x, 0, w, gapTop), PipeChar, core.ColorGreen)
		dst.DrawHLine(x, gapTop-1, w, PipeCapTop, core.ColorBrightGreen)
	}

	// Lower barrier, from the gap to the ground
	if gapBottom < floor {
		dst.DrawRect(core.NewRect(x, gapBottom, w, floor-gapBottom), PipeChar, core.ColorGreen)
		dst.DrawHLine(x, gapBottom, w, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawGround renders the ground band with a stripe texture that follows the
// scroll offset.
func drawGround(dst *core.Screen, v viewport, snap Snapshot) {
	floor := core.Clamp(v.row(snap.World.FloorY()), 0, v.h-1)
	dst.DrawHLine(0, floor, v.w, GroundChar, core.ColorBrightGreen)

	for x := 0; x < v.w; x++ {
		worldX := float64(x)/v.sx - snap.GroundOffset
		ch := GroundFill
		if int(worldX/groundStripeWidth)%2 == 0 {
			ch = GroundStripe
		}
		for y := floor + 1; y < v.h; y++ {
			dst.SetColored(x, y, ch, core.ColorOrange)
		}
	}
}

// drawActor renders the actor as wing, body and head glyphs.
func drawActor(dst *core.Screen, v viewport, snap Snapshot) {
	a := snap.Actor
	x := v.col(a.X)
	y := v.row(a.Y)
	w := v.span(a.X, a.Width, v.sx)
	h := v.span(a.Y, a.Height, v.sy)

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y+dy, ActorBody, core.ColorYellow)
		}
	}
	dst.SetColored(x, y, wingFrames[snap.FlapFrame%len(wingFrames)], core.ColorBrightYellow)
	if w > 1 {
		dst.SetColored(x+w-1, y, headGlyphs[snap.Tilt], core.ColorOrange)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextCentered(boxY+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}
