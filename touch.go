package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/anchorgui/ui"
)

// handleTouchEvents drives the pointer with the first finger down. Further
// fingers are ignored until it lifts.
func (a *App) handleTouchEvents() {
	if !a.touchActive {
		pressed := inpututil.AppendJustPressedTouchIDs(make([]ebiten.TouchID, 0, 8))
		if len(pressed) == 0 {
			return
		}
		a.touchID = pressed[0]
		a.touchActive = true
		a.lastTouchX, a.lastTouchY = ebiten.TouchPosition(a.touchID)
		a.feed(a.moved(a.lastTouchX, a.lastTouchY))
		a.feed(ui.Pressed())
		return
	}

	if inpututil.IsTouchJustReleased(a.touchID) {
		x, y := inpututil.TouchPositionInPreviousTick(a.touchID)
		if x != a.lastTouchX || y != a.lastTouchY {
			a.feed(a.moved(x, y))
		}
		a.feed(ui.Released())
		a.touchActive = false
		return
	}

	if !containsTouchID(ebiten.AppendTouchIDs(nil), a.touchID) {
		// Cancelled by the system without a release.
		a.feed(ui.Released())
		a.touchActive = false
		return
	}

	x, y := ebiten.TouchPosition(a.touchID)
	if x != a.lastTouchX || y != a.lastTouchY {
		a.lastTouchX, a.lastTouchY = x, y
		a.feed(a.moved(x, y))
	}
}

// containsTouchID reports whether id is among ids.
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
