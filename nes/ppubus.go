package nes

import "fmt"

// PPUBus routes the PPU's $0000-$3EFF address space to CHR-ROM or
// nametable VRAM (through cartridge mirroring). Palette RAM ($3F00-$3FFF)
// is handled by the PPU directly and never reaches this bus.
// https://www.nesdev.org/wiki/PPU_memory_map
type PPUBus struct {
	vram      *RAM
	cartridge *Cartridge
}

// NewPPUBus creates a Bus for the PPU.
func NewPPUBus(vram *RAM, cartridge *Cartridge) *PPUBus {
	return &PPUBus{vram: vram, cartridge: cartridge}
}

// mirrorAddress folds a logical nametable address ($2000-$2FFF, or its
// $3000-$3EFF mirror, which it reduces itself) onto the physical 2KiB
// VRAM bank according to cartridge mirroring.
func (b *PPUBus) mirrorAddress(address uint16) uint16 {
	index := (address - 0x2000) % 0x1000 // four logical 1KiB nametables
	table := index / 0x0400
	offset := index % 0x0400
	switch b.cartridge.Mirroring() {
	case MirroringVertical:
		return (table%2)*0x0400 + offset
	case MirroringHorizontal:
		return (table/2)*0x0400 + offset
	case MirroringSingleScreen:
		return offset
	default: // FourScreen: fold by plain modulo onto the 2KiB bank we have
		return index % 2048
	}
}

// read reads pattern-table or nametable data.
// Address        Size    Description
// -------------------------------------
// $0000-$0FFF    $1000   Pattern table 0
// $1000-$1FFF    $1000   Pattern table 1
// $2000-$2FFF    $1000   Four logical 1KiB nametables (mirrored to 2KiB VRAM)
// $3000-$3EFF    $0F00   Mirror of $2000-$2EFF
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) read(address uint16) (byte, error) {
	switch {
	case address < 0x2000:
		return b.cartridge.readCHR(address), nil
	case address < 0x3F00:
		return b.vram.read(b.mirrorAddress(address)), nil
	default:
		return 0, fmt.Errorf("nes: ppu bus read out of range: 0x%04x", address)
	}
}

// write writes nametable VRAM. Pattern-table (CHR-ROM) writes are a
// programmer error per §7.
func (b *PPUBus) write(address uint16, data byte) error {
	switch {
	case address < 0x2000:
		return fmt.Errorf("nes: cannot write CHR-ROM at 0x%04x", address)
	case address < 0x3F00:
		b.vram.write(b.mirrorAddress(address), data)
		return nil
	default:
		return fmt.Errorf("nes: ppu bus write out of range: 0x%04x=0x%02x", address, data)
	}
}
