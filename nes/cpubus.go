package nes

import "github.com/golang/glog"

// FrameCallback is the host capability invoked exactly once per frame, at
// the VBlank rising edge: a read-only PPU view plus a mutable Joypad so
// the host can render and refresh input before the CPU resumes.
type FrameCallback func(ppu *PPU, joypad *Joypad)

// CPUBus is the CPU's memory-mapped address space: WRAM, PPU registers,
// the joypad, the APU stub, and cartridge PRG-ROM, plus the CPU<->PPU
// tick coupling and the NMI poll gateway.
// CPU memory map
//
//	0x0000 - 0x07FF  WRAM
//	0x0800 - 0x1FFF  WRAM mirror
//	0x2000 - 0x2007  PPU registers
//	0x2008 - 0x3FFF  PPU registers mirror (every 8 bytes)
//	0x4000 - 0x4013  APU registers
//	0x4014           OAM DMA
//	0x4016 - 0x4017  Joypad / frame counter
//	0x4020 - 0x5FFF  Extended RAM (unimplemented)
//	0x8000 - 0xFFFF  PRG-ROM
type CPUBus struct {
	wram      *RAM
	ppu       *PPU
	cartridge *Cartridge
	joypad    *Joypad
	apu       *APU

	onFrame FrameCallback
}

// NewCPUBus creates a Bus for the CPU.
func NewCPUBus(wram *RAM, ppu *PPU, cartridge *Cartridge, joypad *Joypad, apu *APU) *CPUBus {
	return &CPUBus{wram: wram, ppu: ppu, cartridge: cartridge, joypad: joypad, apu: apu}
}

// SetFrameCallback registers the host's frame-complete handler.
func (b *CPUBus) SetFrameCallback(cb FrameCallback) {
	b.onFrame = cb
}

func (b *CPUBus) readPPURegister(address uint16) byte {
	switch address % 8 {
	case 2:
		return b.ppu.readStatus()
	case 4:
		return b.ppu.readOAMData()
	case 7:
		return b.ppu.readData()
	default:
		// $2000,$2001,$2003,$2005,$2006 are write-only: undefined read (§7).
		return 0
	}
}

// read reads a byte of CPU-visible memory.
func (b *CPUBus) read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.wram.read(address % 0x0800)
	case address < 0x4000:
		return b.readPPURegister(address)
	case address == 0x4016:
		return b.joypad.read()
	case address == 0x4017:
		return 0 // second controller / frame counter: not modeled (Non-goal)
	case address < 0x4020:
		glog.Infof("nes: unimplemented CPU bus read: address=0x%04x\n", address)
		return 0
	case address >= 0x8000:
		return b.cartridge.readPRG(address)
	default:
		glog.Infof("nes: unmapped CPU bus read: address=0x%04x\n", address)
		return 0
	}
}

// read16 reads a little-endian 16-bit value.
func (b *CPUBus) read16(address uint16) uint16 {
	lo := uint16(b.read(address))
	hi := uint16(b.read(address + 1))
	return hi<<8 | lo
}

func (b *CPUBus) writePPURegister(address uint16, data byte) {
	switch address % 8 {
	case 0:
		b.ppu.writeControl(data)
	case 1:
		b.ppu.writeMask(data)
	case 3:
		b.ppu.writeOAMAddr(data)
	case 4:
		b.ppu.writeOAMData(data)
	case 5:
		b.ppu.writeScroll(data)
	case 6:
		b.ppu.writeAddr(data)
	case 7:
		b.ppu.writeData(data)
	default:
		// $2002 is read-only: write is silently dropped (§7).
	}
}

// write writes a byte of CPU-visible memory. OAM DMA ($4014) is handled
// by the CPU itself, which needs to charge the stall cycles; a write
// reaching this bus for $4014 is a programmer error.
func (b *CPUBus) write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.wram.write(address%0x0800, data)
	case address < 0x4000:
		b.writePPURegister(address, data)
	case address == 0x4014:
		glog.Fatalf("nes: $4014 must be serviced by the CPU, not the bus")
	case address == 0x4016:
		b.joypad.write(data)
	case address < 0x4020:
		glog.Infof("nes: unimplemented CPU bus write: address=0x%04x, data=0x%02x\n", address, data)
	case address >= 0x8000:
		glog.Fatalf("nes: write to PRG-ROM: address=0x%04x, data=0x%02x\n", address, data)
	default:
		glog.Fatalf("nes: unmapped CPU bus write: address=0x%04x, data=0x%02x\n", address, data)
	}
}

// writeOAMDMA copies 256 bytes read by the caller into OAM, the
// oam_addr-preserving primitive behind $4014.
func (b *CPUBus) writeOAMDMA(data [256]byte) {
	b.ppu.writeOAMDMA(data)
}

// pollNMI returns and clears the PPU's NMI line, the gateway the CPU
// checks before every fetch.
func (b *CPUBus) pollNMI() bool {
	return b.ppu.pollNMI()
}

// tick charges cycles CPU cycles against the PPU clock at the
// documented 1:3 ratio and against the APU stub, and fires the
// frame-complete callback exactly once per frame on the NMI line's
// absent-to-present transition.
func (b *CPUBus) tick(cycles int) {
	for i := 0; i < cycles; i++ {
		b.apu.Step()
		before := b.ppu.nmiPending()
		for j := 0; j < 3; j++ {
			b.ppu.tick(1)
		}
		after := b.ppu.nmiPending()
		if !before && after && b.onFrame != nil {
			b.onFrame(b.ppu, b.joypad)
		}
	}
}
