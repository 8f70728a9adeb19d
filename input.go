package emblem

import "github.com/hajimehoshi/ebiten/v2"

// PointerEvent is one pointer sample: position in root (screen) space and
// whether the button/touch is down. Mouse and the first active touch are
// folded into a single logical pointer — the drag interaction never needs
// more than one.
type PointerEvent struct {
	X, Y    float64
	Pressed bool
}

// pollPointer reads the current ebiten mouse/touch state as one logical
// pointer sample. Touch wins over mouse while any touch is active (touch
// devices report a stale cursor position).
func pollPointer(touchBuf []ebiten.TouchID) (PointerEvent, []ebiten.TouchID) {
	touchBuf = ebiten.AppendTouchIDs(touchBuf[:0])
	if len(touchBuf) > 0 {
		tx, ty := ebiten.TouchPosition(touchBuf[0])
		return PointerEvent{X: float64(tx), Y: float64(ty), Pressed: true}, touchBuf
	}
	mx, my := ebiten.CursorPosition()
	return PointerEvent{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}, touchBuf
}
