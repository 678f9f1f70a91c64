// Package cartridge parses the Game Boy ROM header and exposes the
// cartridge's ROM/RAM banks. Per spec.md's Non-goals, the MBC write
// protocol that would let a game bank-switch itself is out of scope:
// Cartridge stores a current bank index but never advances it on its
// own, and bank-select writes from the bus are simply recorded.
package cartridge

import (
	"fmt"

	"github.com/ashgrove/dmgcore/pkg/log"
)

// Cartridge is a loaded ROM plus its external RAM and the bank indices
// the bus currently has selected.
type Cartridge struct {
	Header Header
	rom    []byte
	ram    []byte

	romBank uint8
	ramBank uint8

	log log.Logger
}

// New parses rom's header and returns a Cartridge, or an error if the
// header is truncated or the cartridge is color-only (this model
// cannot run CGB-exclusive cartridges).
func New(rom []byte, logger log.Logger) (*Cartridge, error) {
	if logger == nil {
		logger = log.NewNull()
	}

	h, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}
	if h.ColorOnly {
		return nil, fmt.Errorf("cartridge: %q requires Game Boy Color hardware, unsupported on this model", h.Title)
	}

	c := &Cartridge{
		Header:  h,
		rom:     rom,
		ram:     make([]byte, h.RAMSize),
		romBank: 1,
		log:     logger,
	}

	logger.Infof("cartridge: loaded %s, fingerprint %s", h.String(), Fingerprint(rom))
	return c, nil
}

// ReadROMBank0 reads from the fixed 0x0000-0x3FFF bank.
func (c *Cartridge) ReadROMBank0(addr uint16) uint8 {
	if int(addr) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[addr]
}

// ReadROMBankN reads from the switchable 0x4000-0x7FFF bank, using the
// currently selected bank index.
func (c *Cartridge) ReadROMBankN(addr uint16) uint8 {
	offset := int(c.romBank)*0x4000 + int(addr-0x4000)
	if offset >= len(c.rom) {
		return 0xFF
	}
	return c.rom[offset]
}

// SelectROMBank records the bank index a mapper-aware write would have
// switched to. No validation of mapper protocol is performed.
func (c *Cartridge) SelectROMBank(bank uint8) {
	if bank == 0 {
		bank = 1
	}
	c.romBank = bank
}

// SelectRAMBank records the external-RAM bank index.
func (c *Cartridge) SelectRAMBank(bank uint8) {
	c.ramBank = bank
}

// ReadRAM reads the external RAM bank at addr (0xA000-0xBFFF relative).
func (c *Cartridge) ReadRAM(addr uint16) uint8 {
	offset := int(c.ramBank)*0x2000 + int(addr)
	if offset >= len(c.ram) {
		return 0xFF
	}
	return c.ram[offset]
}

// WriteRAM writes the external RAM bank at addr.
func (c *Cartridge) WriteRAM(addr uint16, value uint8) {
	offset := int(c.ramBank)*0x2000 + int(addr)
	if offset >= len(c.ram) {
		return
	}
	c.ram[offset] = value
}

// Title returns the cartridge's title, as parsed from the header.
func (c *Cartridge) Title() string {
	return c.Header.Title
}
