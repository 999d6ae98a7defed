package render

import (
	"image/color"

	"lifebox/internal/core"
)

// fillCellRGBA converts cell states into RGBA pixels in buf. Alive cells get
// the on color; every other state, including the transient markers should
// they ever leak into a snapshot, gets the off color.
func fillCellRGBA(buf []byte, cells []core.CellState, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
