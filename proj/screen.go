// Package proj converts between screen space and gui space.
//
// Screen space is what the window system reports: origin at the top left
// corner, y growing downward, signed coordinates that may leave the window
// while a button is held. Gui space has its origin at the bottom left corner,
// y growing upward, and unsigned coordinates.
package proj

// ScreenToGui converts a cursor position in screen space to gui space.
//
// Parameters:
//   - x, y: Cursor position in screen pixels
//   - screenWidth, screenHeight: Window size in pixels
//
// Returns:
//   - gx, gy: Position in gui space, clamped into the window
//   - inside: Whether the cursor was inside the window before clamping
func ScreenToGui(x, y, screenWidth, screenHeight int) (gx, gy uint32, inside bool) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return 0, 0, false
	}

	inside = x >= 0 && x < screenWidth && y >= 0 && y < screenHeight

	// Clamp using direct comparison
	if x < 0 {
		x = 0
	} else if x >= screenWidth {
		x = screenWidth - 1
	}
	if y < 0 {
		y = 0
	} else if y >= screenHeight {
		y = screenHeight - 1
	}

	// Row 0 of the screen is the top row of the gui.
	return uint32(x), uint32(screenHeight - 1 - y), inside
}

// GuiToScreen converts the bottom left corner of a gui space rectangle to the
// top left corner of the same rectangle in screen space.
//
// Parameters:
//   - x, y: Bottom left corner in gui space
//   - height: Height of the rectangle
//   - screenHeight: Window height in pixels
//
// Returns:
//   - sx, sy: Top left corner in screen pixels; sy is negative when the
//     rectangle sticks out of the top of the window
func GuiToScreen(x, y, height uint32, screenHeight int) (sx, sy float64) {
	return float64(x), float64(screenHeight) - float64(y) - float64(height)
}

// WindowSize converts the size the window system reports to gui space.
// Negative sizes, as reported by some platforms while minimized, become zero.
func WindowSize(width, height int) (uint32, uint32) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return uint32(width), uint32(height)
}
