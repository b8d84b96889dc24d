package nes

import "fmt"

const (
	chrROMSizeUnit      int  = 0x2000 // 8 KiB
	prgROMSizeUnit      int  = 0x4000 // 16 KiB
	inesHeaderSizeBytes int  = 16     // the valid iNES header has 16 bytes
	msdosEOF            byte = 0x1A
)

// Mirroring selects how the cartridge wants the PPU's two physical
// nametables folded onto the four logical ones at $2000-$2FFF.
type Mirroring int

const (
	MirroringHorizontal Mirroring = iota
	MirroringVertical
	MirroringFourScreen
	MirroringSingleScreen
)

// Cartridge is an immutable NROM (mapper 0) cartridge: PRG-ROM, CHR-ROM,
// and the nametable mirroring the board wires into the PPU.
// https://www.nesdev.org/wiki/INES
// https://www.nesdev.org/wiki/NROM
type Cartridge struct {
	prgROM    []byte
	chrROM    []byte
	mirroring Mirroring
}

// NewCartridgeFromParts builds a Cartridge directly from already-parsed
// iNES fields, for hosts that parse the ROM file themselves (spec.md
// treats iNES parsing as an external collaborator's job).
func NewCartridgeFromParts(prgROM, chrROM []byte, mirroring Mirroring) *Cartridge {
	return &Cartridge{prgROM: prgROM, chrROM: chrROM, mirroring: mirroring}
}

// isValidINES checks the 4-byte "NES<EOF>" magic.
func isValidINES(data []byte) bool {
	return len(data) >= inesHeaderSizeBytes &&
		data[0] == byte('N') &&
		data[1] == byte('E') &&
		data[2] == byte('S') &&
		data[3] == msdosEOF
}

func readPRGROM(data []byte) []byte {
	l := inesHeaderSizeBytes
	r := l + int(data[4])*prgROMSizeUnit
	return data[l:r]
}

func readCHRROM(data []byte) []byte {
	l := inesHeaderSizeBytes + int(data[4])*prgROMSizeUnit
	r := l + int(data[5])*chrROMSizeUnit
	return data[l:r]
}

func mirroringFromFlags6(flags6 byte) Mirroring {
	if flags6&0x08 != 0 {
		return MirroringFourScreen
	}
	if flags6&0x01 != 0 {
		return MirroringVertical
	}
	return MirroringHorizontal
}

// NewCartridge parses an iNES (.nes) byte blob into an NROM Cartridge.
// https://www.nesdev.org/wiki/INES#Flags_6
func NewCartridge(data []byte) (*Cartridge, error) {
	if !isValidINES(data) {
		return nil, fmt.Errorf("nes: not a valid iNES file")
	}
	mapperNumber := (data[6] >> 4) | (data[7] & 0xF0)
	if mapperNumber != 0 {
		return nil, fmt.Errorf("nes: mapper %d not supported, only NROM (mapper 0)", mapperNumber)
	}
	return &Cartridge{
		prgROM:    readPRGROM(data),
		chrROM:    readCHRROM(data),
		mirroring: mirroringFromFlags6(data[6]),
	}, nil
}

// Mirroring reports the cartridge's nametable mirroring.
func (c *Cartridge) Mirroring() Mirroring {
	return c.mirroring
}

// readPRG reads a byte from CPU $8000-$FFFF. NROM-128 (16KiB PRG) mirrors
// $8000-$BFFF onto $C000-$FFFF; NROM-256 (32KiB) does not.
func (c *Cartridge) readPRG(address uint16) byte {
	offset := int(address - 0x8000)
	if len(c.prgROM) == prgROMSizeUnit {
		offset %= prgROMSizeUnit
	}
	return c.prgROM[offset]
}

// readCHR reads a byte from the 8KiB CHR-ROM pattern-table space.
func (c *Cartridge) readCHR(address uint16) byte {
	return c.chrROM[address]
}
