// Package ppu implements the Game Boy's scanline renderer: the
// Mode2/Mode3/Mode0/Mode1 state machine, background/window/sprite
// pixel composition, and the 160x144 frame buffer (spec.md §5).
package ppu

import (
	"sort"

	"github.com/ashgrove/dmgcore/internal/interrupts"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	oamScanDots  = 80
	drawDots     = 176
	dotsPerLine  = 456
	lastVisibleLine = ScreenHeight - 1
	lastLine        = 153
)

const (
	ModeHBlank uint8 = 0
	ModeVBlank uint8 = 1
	ModeOAM    uint8 = 2
	ModeDraw   uint8 = 3
)

// bus is the subset of *mmu.Bus the PPU depends on. Declaring it here
// rather than importing mmu directly keeps the dependency one-way:
// mmu never needs to know about ppu.
type bus interface {
	Read(addr uint16, observe bool) uint8
	LCDC() uint8
	SCY() uint8
	SCX() uint8
	LY() uint8
	SetLY(uint8)
	LYC() uint8
	WY() uint8
	WX() uint8
	BGP() uint8
	OBP0() uint8
	OBP1() uint8
	StatMode() uint8
	SetStatMode(uint8)
	Interrupts() *interrupts.Controller
}

// PPU renders one frame at a time into an internal frame buffer of
// 2-bit shade values (0=lightest, 3=darkest), advancing one dot
// (T-cycle) per Tick call.
type PPU struct {
	bus bus

	dot         int
	windowLine  int
	frame       [ScreenHeight][ScreenWidth]uint8
	frameReady  bool
}

// New returns a PPU wired to bus, which owns LCDC/STAT/SCY/.../LY and
// the VRAM/OAM arrays the PPU reads from. It puts STAT in mode 2 (OAM
// scan), the mode every visible scanline starts in.
func New(b bus) *PPU {
	b.SetStatMode(ModeOAM)
	return &PPU{bus: b}
}

// FrameBuffer returns the frame buffer, row-major, one shade value
// (0-3) per pixel. Lines are written as each scanline is rendered, so
// it holds one complete frame when FrameReady has just reported true.
func (p *PPU) FrameBuffer() [ScreenHeight][ScreenWidth]uint8 {
	return p.frame
}

// FrameReady reports whether a new frame has completed since the last
// call, clearing the flag.
func (p *PPU) FrameReady() bool {
	ready := p.frameReady
	p.frameReady = false
	return ready
}

// Tick advances the PPU by one T-cycle (dot). If LCDC bit 7 is clear
// the display is off and Tick does nothing: LY, the STAT mode and the
// dot counter keep their current values.
func (p *PPU) Tick() {
	if p.bus.LCDC()&0x80 == 0 {
		return
	}

	p.dot++
	ly := int(p.bus.LY())

	switch p.bus.StatMode() {
	case ModeOAM:
		if p.dot >= oamScanDots {
			p.bus.SetStatMode(ModeDraw)
		}
	case ModeDraw:
		if p.dot >= oamScanDots+drawDots {
			p.renderScanline(ly)
			p.bus.SetStatMode(ModeHBlank)
		}
	case ModeHBlank:
		if p.dot >= dotsPerLine {
			p.dot = 0
			ly++
			p.bus.SetLY(uint8(ly))
			if ly > lastVisibleLine {
				p.bus.SetStatMode(ModeVBlank)
				p.bus.Interrupts().Request(interrupts.VBlank)
				p.windowLine = 0
				p.frameReady = true
			} else {
				p.bus.SetStatMode(ModeOAM)
			}
		}
	case ModeVBlank:
		if p.dot >= dotsPerLine {
			p.dot = 0
			ly++
			if ly > lastLine {
				ly = 0
				p.bus.SetLY(0)
				p.bus.SetStatMode(ModeOAM)
			} else {
				p.bus.SetLY(uint8(ly))
				p.bus.SetStatMode(ModeVBlank)
			}
		}
	}
}

// renderScanline composes background, window and sprites for line ly
// into the frame buffer. Real hardware does this pixel-by-pixel
// during mode 3; this model draws the whole line at once when mode 3
// ends, which produces an identical result for programs that don't
// modify scroll/palette registers mid-scanline.
func (p *PPU) renderScanline(ly int) {
	lcdc := p.bus.LCDC()
	var row [ScreenWidth]uint8 // raw 2-bit color indices, before palette
	var bgOpaque [ScreenWidth]bool

	if lcdc&0x01 != 0 {
		p.renderBackground(lcdc, ly, &row, &bgOpaque)
	}
	if lcdc&0x20 != 0 && int(p.bus.WY()) <= ly {
		p.renderWindow(lcdc, ly, &row, &bgOpaque)
	}

	bgp := p.bus.BGP()
	for x := 0; x < ScreenWidth; x++ {
		p.frame[ly][x] = applyPalette(bgp, row[x])
	}

	if lcdc&0x02 != 0 {
		p.renderSprites(lcdc, ly, &bgOpaque)
	}
}

func (p *PPU) renderBackground(lcdc uint8, ly int, row *[ScreenWidth]uint8, opaque *[ScreenWidth]bool) {
	scy, scx := p.bus.SCY(), p.bus.SCX()
	mapBase := uint16(0x9800)
	if lcdc&0x08 != 0 {
		mapBase = 0x9C00
	}

	y := (int(scy) + ly) & 0xFF
	tileRowInMap := y / 8
	rowInTile := y % 8

	for x := 0; x < ScreenWidth; x++ {
		scrolledX := (x + int(scx)) & 0xFF
		tileCol := scrolledX / 8
		colInTile := scrolledX % 8

		mapAddr := mapBase + uint16(tileRowInMap*32+tileCol)
		tileNumber := p.bus.Read(mapAddr, false)
		addr := tileDataAddr(lcdc, tileNumber) + uint16(rowInTile*2)
		tr := p.fetchRow(addr)
		color := tr.pixel(colInTile, false)
		row[x] = color
		opaque[x] = color != 0
	}
}

func (p *PPU) renderWindow(lcdc uint8, ly int, row *[ScreenWidth]uint8, opaque *[ScreenWidth]bool) {
	wx := int(p.bus.WX()) - 7
	if wx >= ScreenWidth {
		return
	}
	mapBase := uint16(0x9800)
	if lcdc&0x40 != 0 {
		mapBase = 0x9C00
	}

	tileRowInMap := p.windowLine / 8
	rowInTile := p.windowLine % 8
	drew := false

	for x := 0; x < ScreenWidth; x++ {
		if x < wx {
			continue
		}
		winX := x - wx
		tileCol := winX / 8
		colInTile := winX % 8

		mapAddr := mapBase + uint16(tileRowInMap*32+tileCol)
		tileNumber := p.bus.Read(mapAddr, false)
		addr := tileDataAddr(lcdc, tileNumber) + uint16(rowInTile*2)
		tr := p.fetchRow(addr)
		color := tr.pixel(colInTile, false)
		row[x] = color
		opaque[x] = color != 0
		drew = true
	}
	if drew {
		p.windowLine++
	}
}

func (p *PPU) renderSprites(lcdc uint8, ly int, bgOpaque *[ScreenWidth]bool) {
	height := 8
	if lcdc&0x04 != 0 {
		height = 16
	}

	sprites := p.scanSprites(ly)
	sort.SliceStable(sprites, func(i, j int) bool {
		if sprites[i].x != sprites[j].x {
			return sprites[i].x < sprites[j].x
		}
		return sprites[i].oamIndex < sprites[j].oamIndex
	})

	drawn := make([]bool, ScreenWidth)
	for _, s := range sprites {
		for x := s.x; x < s.x+8; x++ {
			if x < 0 || x >= ScreenWidth || drawn[x] {
				continue
			}
			color, palette, ok := p.spritePixel(s, ly, x, height)
			if !ok {
				continue
			}
			if s.behindBG && bgOpaque[x] {
				continue
			}
			p.frame[ly][x] = applyPalette(palette, color)
			drawn[x] = true
		}
	}
}
