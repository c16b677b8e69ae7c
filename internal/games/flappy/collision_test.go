package flappy

import "testing"

const (
	testWidth = 52
	testInset = 5
)

func TestEvaluateCollisionGeometry(t *testing.T) {
	// Actor: x=80, w=34, h=24. Obstacle gap: [200, 330].
	tests := []struct {
		name     string
		actorY   float64
		obstacle float64 // obstacle X
		hit      bool
	}{
		{"inside gap with overlap", 250, 70, false},
		{"gap filled edge to edge", 195, 70, false},
		{"above gap with overlap", 150, 70, true},
		{"below gap with overlap", 320, 70, true},
		{"bottom 4 past gap edge", 310, 70, false}, // actor bottom at 334
		{"bottom 6 past gap edge", 312, 70, true},  // actor bottom at 336
		{"top 4 past gap edge", 196, 70, false},
		{"top 6 past gap edge", 194, 70, true},
		{"outside gap, obstacle far right", 150, 200, false},
		{"outside gap, touching inset right edge", 150, 109, false},
		{"outside gap, one unit into inset right edge", 150, 108, true},
		{"outside gap, touching inset left edge", 150, 33, false},
		{"outside gap, one unit into inset left edge", 150, 34, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := defaultActor()
			a.Y = tc.actorY
			obs := []Obstacle{{X: tc.obstacle, Top: 200, Bottom: 330}}

			v := Evaluate(a, obs, testWidth, testInset)
			if v.Hit != tc.hit {
				t.Errorf("Hit = %v, expected %v (actor y=%v, obstacle x=%v)", v.Hit, tc.hit, tc.actorY, tc.obstacle)
			}
		})
	}
}

func TestEvaluateInsideGapNeverCollides(t *testing.T) {
	a := defaultActor()
	a.Y = 250 // box [255, 269] after inset, gap [200, 330]

	for x := -60.0; x <= 420; x += 0.5 {
		obs := []Obstacle{{X: x, Top: 200, Bottom: 330, Scored: true}}
		if v := Evaluate(a, obs, testWidth, testInset); v.Hit {
			t.Fatalf("Actor inside the gap collided with obstacle at x=%v", x)
		}
	}
}

func TestEvaluateScoresOnce(t *testing.T) {
	a := defaultActor()
	obs := []Obstacle{
		{X: 28, Top: 200, Bottom: 330}, // right edge 80: not yet past
		{X: 27, Top: 200, Bottom: 330}, // right edge 79: past
	}

	v := Evaluate(a, obs, testWidth, testInset)
	if v.Passed != 1 {
		t.Errorf("Passed = %d, expected 1", v.Passed)
	}
	if obs[0].Scored {
		t.Error("Obstacle with right edge at actor.x should not be scored")
	}
	if !obs[1].Scored {
		t.Error("Obstacle past the actor should be scored")
	}

	v = Evaluate(a, obs, testWidth, testInset)
	if v.Passed != 0 {
		t.Errorf("Second pass scored %d, expected 0", v.Passed)
	}
}

// Scoring across a moving field: each obstacle flips Scored on exactly one
// frame and adds exactly one point.
func TestEvaluateScoringAcrossFrames(t *testing.T) {
	f := newTestField(3)
	a := defaultActor()

	total := 0
	flips := 0
	wasScored := map[int]bool{}
	spawned := 0

	for frame := 0; frame < 1200; frame++ {
		f.Tick(frame, 1.0/60)
		if frame%150 == 0 {
			spawned++
		}

		v := Evaluate(a, f.Obstacles(), f.Width(), testInset)
		total += v.Passed

		// Obstacle identity: spawn index = spawned - live + i
		live := f.Obstacles()
		for i, o := range live {
			id := spawned - len(live) + i
			if o.Scored && !wasScored[id] {
				wasScored[id] = true
				flips++
			}
		}
	}

	if total != flips {
		t.Errorf("Score %d does not match %d scored flips", total, flips)
	}
	if total < 5 {
		t.Errorf("Expected at least 5 obstacles cleared in 1200 frames, got %d", total)
	}
}
