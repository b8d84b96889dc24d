package nes

// Console is the top-level controller of §2 item 7: it owns the wiring
// between CPU, PPU, APU, Joypad, and Cartridge, and drives the machine
// one CPU instruction at a time. Frame delivery and VBlank/NMI timing
// are not polled here -- they happen inline inside CPU.Step, through
// the FrameCallback the Bus invokes on the rising edge (§4.2, §9).
type Console struct {
	CPU    *CPU
	PPU    *PPU
	APU    *APU
	Joypad *Joypad

	bus *CPUBus
}

// NewConsole builds the machine graph described in §3's ownership rule:
// the Bus exclusively owns CPU-RAM, PPU, Joypad, and Cartridge; the CPU
// holds a non-owning reference to the Bus for the duration of a Step.
func NewConsole(cartridge *Cartridge) *Console {
	ppuBus := NewPPUBus(NewRAM(), cartridge)
	ppu := NewPPU(ppuBus)
	apu := NewAPU()
	joypad := NewJoypad()
	cpuBus := NewCPUBus(NewRAM(), ppu, cartridge, joypad, apu)
	cpu := NewCPU(cpuBus)
	return &Console{CPU: cpu, PPU: ppu, APU: apu, Joypad: joypad, bus: cpuBus}
}

// SetFrameCallback registers the host's frame-complete handler (§6),
// invoked exactly once per frame at the VBlank rising edge with a
// read-only PPU view and the mutable Joypad.
func (c *Console) SetFrameCallback(cb FrameCallback) {
	c.bus.SetFrameCallback(cb)
}

// SetAudioOut wires the APU sample stub to a host-owned channel; per
// §6 the core only guarantees the buffer advances in lockstep with CPU
// cycles, not bit-exact content.
func (c *Console) SetAudioOut(out chan float32) {
	c.APU.SetAudioOut(out)
}

// Reset returns the CPU and PPU to their power-on state.
func (c *Console) Reset() {
	c.CPU.Reset()
	c.PPU.Reset()
}

// Step executes exactly one CPU instruction (or services a pending
// NMI) and returns the cycles charged. PPU and APU state, and any
// frame-complete callback, advance as a side effect of this call.
func (c *Console) Step() int {
	return c.CPU.Step()
}
