package ppu

// tileRow is one 8-pixel row of a tile, stored as the two bit-plane
// bytes VRAM holds it in: bit 7 of each byte is the leftmost pixel.
type tileRow struct {
	low, high uint8
}

// pixel returns the 2-bit color index (0-3) at column x, where x=0 is
// leftmost. flip mirrors the row horizontally, as sprite attribute
// bit 5 requests.
func (r tileRow) pixel(x int, flip bool) uint8 {
	bitIndex := uint(7 - x)
	if flip {
		bitIndex = uint(x)
	}
	var color uint8
	if r.low&(1<<bitIndex) != 0 {
		color |= 1
	}
	if r.high&(1<<bitIndex) != 0 {
		color |= 2
	}
	return color
}

// fetchRow reads one tile row (2 bytes) directly out of VRAM via the
// bus, given the row's first byte address.
func (p *PPU) fetchRow(addr uint16) tileRow {
	return tileRow{
		low:  p.bus.Read(addr, false),
		high: p.bus.Read(addr+1, false),
	}
}

// tileDataAddr resolves a tile index to the address of its first row,
// honoring LCDC bit 4's signed/unsigned addressing mode switch: the
// 0x8800 method indexes tileNumber as a signed offset from 0x9000.
func tileDataAddr(lcdc uint8, tileNumber uint8) uint16 {
	if lcdc&0x10 != 0 {
		return 0x8000 + uint16(tileNumber)*16
	}
	return uint16(int32(0x9000) + int32(int8(tileNumber))*16)
}
