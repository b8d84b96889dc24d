package nes

import "github.com/golang/glog"

// PPU is the Picture Processing Unit: the five memory-mapped registers,
// the 341x262 scanline/cycle clock, VRAM/palette/OAM storage, and the
// mirroring-aware $0000-$3FFF read/write routing. Rendering pixels from
// this state is a separate pure function (see renderer.go); this type
// owns none of that.
// https://www.nesdev.org/wiki/PPU
type PPU struct {
	bus *PPUBus

	ctrl   controlRegister
	mask   maskRegister
	status statusRegister
	scroll scrollRegister
	addr   addrRegister

	oamAddr byte
	oam     [256]byte
	palette [32]byte

	readBuffer byte

	cycle    int
	scanline int

	nmiLine bool
}

// NewPPU creates a PPU wired to the given bus.
func NewPPU(bus *PPUBus) *PPU {
	return &PPU{bus: bus}
}

// Reset returns the PPU to its power-on state, keeping the bus wiring.
func (p *PPU) Reset() {
	*p = PPU{bus: p.bus}
}

// tick advances the PPU clock by n PPU cycles. It returns true exactly
// when the frame completes (scanline wraps past 261 back to 0).
// https://www.nesdev.org/wiki/PPU_rendering
func (p *PPU) tick(n int) bool {
	p.cycle += n
	if p.cycle < 341 {
		return false
	}
	if p.isSpriteZeroHit() {
		p.status.spriteZeroHit = true
	}
	p.cycle -= 341
	p.scanline++

	if p.scanline == 241 {
		p.status.vBlank = true
		p.status.spriteZeroHit = false
		if p.ctrl.generateVBlankNMI {
			p.nmiLine = true
		}
	}

	if p.scanline == 261 {
		p.status.vBlank = false // pre-render scanline: VBlank is over
	}

	if p.scanline >= 262 {
		p.scanline = 0
		p.nmiLine = false
		p.status.spriteZeroHit = false
		p.status.vBlank = false
		return true
	}
	return false
}

// isSpriteZeroHit is the crude approximation specified: compare the
// current scanline/cycle against OAM sprite 0's y/x.
func (p *PPU) isSpriteZeroHit() bool {
	y := int(p.oam[0])
	x := int(p.oam[3])
	return y == p.scanline && x <= p.cycle && p.mask.showSprites
}

// pollNMI returns and clears the current NMI line.
func (p *PPU) pollNMI() bool {
	nmi := p.nmiLine
	p.nmiLine = false
	return nmi
}

// nmiPending peeks the NMI line without clearing it, for edge detection
// around a tick that must not consume the CPU's own pending-interrupt
// check.
func (p *PPU) nmiPending() bool {
	return p.nmiLine
}

// writeControl services a CPU write to $2000. If the NMI-enable bit
// rises while VBlank is already set, NMI fires immediately rather than
// waiting for the next VBlank edge.
func (p *PPU) writeControl(data byte) {
	wasEnabled := p.ctrl.generateVBlankNMI
	p.ctrl.update(data)
	if !wasEnabled && p.ctrl.generateVBlankNMI && p.status.vBlank {
		p.nmiLine = true
	}
}

func (p *PPU) writeMask(data byte) {
	p.mask.update(data)
}

// readStatus services a CPU read of $2002: returns the encoded byte,
// then clears VBlank and resets both two-write latches.
func (p *PPU) readStatus() byte {
	data := p.status.encode()
	p.status.vBlank = false
	p.addr.resetLatch()
	p.scroll.resetLatch()
	return data
}

func (p *PPU) writeOAMAddr(data byte) {
	p.oamAddr = data
}

func (p *PPU) readOAMData() byte {
	return p.oam[p.oamAddr]
}

func (p *PPU) writeOAMData(data byte) {
	p.oam[p.oamAddr] = data
	p.oamAddr++
}

// writeOAMDMA copies 256 bytes into OAM starting at the current
// oam_addr, wrapping on overflow; $4014 is built on this primitive.
func (p *PPU) writeOAMDMA(data [256]byte) {
	for _, b := range data {
		p.oam[p.oamAddr] = b
		p.oamAddr++
	}
}

func (p *PPU) writeScroll(data byte) {
	p.scroll.write(data)
}

func (p *PPU) writeAddr(data byte) {
	p.addr.update(data)
}

func (p *PPU) incrementVRAMAddr() {
	p.addr.increment(p.ctrl.vramIncrement())
}

// paletteIndex folds the four sprite-palette mirrors ($3F10/14/18/1C)
// onto the background colors they mirror ($3F00/04/08/0C).
func paletteIndex(address uint16) uint16 {
	index := (address - 0x3F00) % 32
	switch index {
	case 0x10, 0x14, 0x18, 0x1C:
		return index - 0x10
	default:
		return index
	}
}

// readData services a CPU read of $2007. CHR and nametable reads return
// the previously buffered byte and refill the buffer from the new
// address; palette reads return the palette byte immediately and refill
// the buffer from the nametable byte underneath ($2F00-$2FFF).
func (p *PPU) readData() byte {
	address := p.addr.get()
	p.incrementVRAMAddr()
	if address >= 0x3F00 {
		under, err := p.bus.read(address - 0x1000)
		if err != nil {
			glog.Fatalf("nes: ppu data read: %v", err)
		}
		p.readBuffer = under
		return p.palette[paletteIndex(address)]
	}
	data := p.readBuffer
	fresh, err := p.bus.read(address)
	if err != nil {
		glog.Fatalf("nes: ppu data read: %v", err)
	}
	p.readBuffer = fresh
	return data
}

// writeData services a CPU write of $2007.
func (p *PPU) writeData(data byte) {
	address := p.addr.get()
	p.incrementVRAMAddr()
	if address >= 0x3F00 {
		p.palette[paletteIndex(address)] = data
		return
	}
	if err := p.bus.write(address, data); err != nil {
		glog.Fatalf("nes: ppu data write: %v", err)
	}
}

// Mirroring exposes the cartridge mirroring to the renderer.
func (p *PPU) Mirroring() Mirroring {
	return p.bus.cartridge.Mirroring()
}

// Palette exposes the 32-byte palette table to the renderer.
func (p *PPU) Palette() [32]byte {
	return p.palette
}

// OAM exposes the 256-byte sprite table to the renderer.
func (p *PPU) OAM() [256]byte {
	return p.oam
}

// Scroll exposes the current x/y scroll offsets to the renderer.
func (p *PPU) Scroll() (x, y byte) {
	return p.scroll.x, p.scroll.y
}

// BackgroundPatternTable exposes Control's background pattern-table base.
func (p *PPU) BackgroundPatternTable() uint16 {
	return p.ctrl.backgroundPatternTable()
}

// SpritePatternTable exposes Control's sprite pattern-table base.
func (p *PPU) SpritePatternTable() uint16 {
	return p.ctrl.spritePatternTable()
}

// NameTableAddress exposes Control's selected nametable base.
func (p *PPU) NameTableAddress() uint16 {
	return p.ctrl.nameTableAddress()
}

// ReadCHR exposes a CHR-ROM byte to the renderer.
func (p *PPU) ReadCHR(address uint16) byte {
	return p.bus.cartridge.readCHR(address)
}

// ReadNameTable exposes a raw VRAM byte (post-mirroring) to the renderer.
func (p *PPU) ReadNameTable(address uint16) byte {
	return p.bus.vram.read(p.bus.mirrorAddress(address))
}

// VBlank reports whether Status.VBlank is currently set, for tests and
// for a host that wants to poll rather than rely on the callback.
func (p *PPU) VBlank() bool {
	return p.status.vBlank
}

// SpriteZeroHit reports the current sprite-0-hit flag.
func (p *PPU) SpriteZeroHit() bool {
	return p.status.spriteZeroHit
}

// Scanline and Cycle expose the raw clock, mostly useful for tests.
func (p *PPU) Scanline() int { return p.scanline }
func (p *PPU) Cycle() int    { return p.cycle }
