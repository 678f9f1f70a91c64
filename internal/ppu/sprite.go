package ppu

const maxSpritesPerLine = 10

type oamEntry struct {
	y, x      int
	tile      uint8
	behindBG  bool
	flipY     bool
	flipX     bool
	useOBP1   bool
	oamIndex  int
}

// scanSprites walks OAM in index order (as the hardware's OAM search
// does) and returns every sprite that overlaps scanline ly, up to the
// hardware limit of 10 per line.
func (p *PPU) scanSprites(ly int) []oamEntry {
	height := 8
	if p.bus.LCDC()&0x04 != 0 {
		height = 16
	}

	var found []oamEntry
	for i := 0; i < 40 && len(found) < maxSpritesPerLine; i++ {
		base := uint16(0xFE00 + i*4)
		y := int(p.bus.Read(base, false)) - 16
		if ly < y || ly >= y+height {
			continue
		}
		x := int(p.bus.Read(base+1, false)) - 8
		tile := p.bus.Read(base+2, false)
		attr := p.bus.Read(base+3, false)
		if height == 16 {
			tile &^= 0x01
		}
		found = append(found, oamEntry{
			y:        y,
			x:        x,
			tile:     tile,
			behindBG: attr&0x80 != 0,
			flipY:    attr&0x40 != 0,
			flipX:    attr&0x20 != 0,
			useOBP1:  attr&0x10 != 0,
			oamIndex: i,
		})
	}
	return found
}

// spritePixel returns the color index (0-3, 0 meaning transparent)
// and palette byte to use for sprite s at screen column x on the
// given scanline, or ok=false if s does not cover that column.
func (p *PPU) spritePixel(s oamEntry, ly, x int, height int) (color uint8, palette uint8, ok bool) {
	if x < s.x || x >= s.x+8 {
		return 0, 0, false
	}
	row := ly - s.y
	if s.flipY {
		row = height - 1 - row
	}
	tile := s.tile
	if height == 16 && row >= 8 {
		tile |= 0x01
		row -= 8
	}
	addr := 0x8000 + uint16(tile)*16 + uint16(row)*2
	tr := p.fetchRow(addr)
	col := tr.pixel(x-s.x, s.flipX)
	if col == 0 {
		return 0, 0, false
	}
	pal := p.bus.OBP0()
	if s.useOBP1 {
		pal = p.bus.OBP1()
	}
	return col, pal, true
}
