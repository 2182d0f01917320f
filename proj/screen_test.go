package proj

import (
	"math"
	"testing"
)

func TestScreenToGui(t *testing.T) {
	tests := []struct {
		name       string
		x, y       int
		wantX      uint32
		wantY      uint32
		wantInside bool
	}{
		{
			name:       "Top left pixel",
			x:          0,
			y:          0,
			wantX:      0,
			wantY:      599,
			wantInside: true,
		},
		{
			name:       "Bottom right pixel",
			x:          799,
			y:          599,
			wantX:      799,
			wantY:      0,
			wantInside: true,
		},
		{
			name:       "Middle of the window",
			x:          400,
			y:          300,
			wantX:      400,
			wantY:      299,
			wantInside: true,
		},
		{
			name:  "Dragged past the top left corner",
			x:     -20,
			y:     -5,
			wantX: 0,
			wantY: 599,
		},
		{
			name:  "Dragged past the bottom right corner",
			x:     900,
			y:     650,
			wantX: 799,
			wantY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY, gotInside := ScreenToGui(tt.x, tt.y, 800, 600)
			if gotX != tt.wantX || gotY != tt.wantY || gotInside != tt.wantInside {
				t.Errorf("got (%d, %d, %v); want (%d, %d, %v)",
					gotX, gotY, gotInside, tt.wantX, tt.wantY, tt.wantInside)
			}
		})
	}
}

func TestScreenToGuiEmptyWindow(t *testing.T) {
	if x, y, inside := ScreenToGui(10, 10, 0, 600); x != 0 || y != 0 || inside {
		t.Errorf("got (%d, %d, %v); want (0, 0, false)", x, y, inside)
	}
}

func TestGuiToScreen(t *testing.T) {
	tests := []struct {
		name         string
		x, y, height uint32
		wantX        float64
		wantY        float64
	}{
		{name: "Bottom row", x: 745, y: 15, height: 30, wantX: 745, wantY: 555},
		{name: "Touching the top", x: 0, y: 570, height: 30, wantX: 0, wantY: 0},
		{name: "Sticking out of the top", x: 0, y: 590, height: 30, wantX: 0, wantY: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := GuiToScreen(tt.x, tt.y, tt.height, 600)
			if math.Abs(gotX-tt.wantX) > 1e-9 || math.Abs(gotY-tt.wantY) > 1e-9 {
				t.Errorf("got (%f, %f); want (%f, %f)", gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestWindowSize(t *testing.T) {
	if w, h := WindowSize(-1, 480); w != 0 || h != 480 {
		t.Errorf("got (%d, %d); want (0, 480)", w, h)
	}
}
