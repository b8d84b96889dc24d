package nes

// Each instruction method has the signature the opcode table dispatches
// through; the bool return is true only for a taken branch, which earns
// an extra cycle in Step.

func (c *CPU) read(mode addressingMode, addr uint16) byte {
	if mode == accumulator {
		return c.A
	}
	return c.bus.read(addr)
}

func (c *CPU) writeOperand(mode addressingMode, addr uint16, v byte) {
	if mode == accumulator {
		c.A = v
		return
	}
	c.bus.write(addr, v)
}

// adcValue is ADC's core, shared with SBC per §8 property 3:
// SBC(M) == ADC(M XOR $FF).
func (c *CPU) adcValue(value byte) {
	a := c.A
	var carry uint16
	if c.P.C {
		carry = 1
	}
	sum := uint16(a) + uint16(value) + carry
	result := byte(sum)
	c.P.C = sum > 0xFF
	c.P.V = (a^value)&0x80 == 0 && (a^result)&0x80 != 0
	c.A = result
	c.setZN(result)
}

func (c *CPU) adc(mode addressingMode, addr uint16) bool {
	c.adcValue(c.bus.read(addr))
	return false
}

func (c *CPU) sbc(mode addressingMode, addr uint16) bool {
	c.adcValue(c.bus.read(addr) ^ 0xFF)
	return false
}

func (c *CPU) and(mode addressingMode, addr uint16) bool {
	c.A &= c.bus.read(addr)
	c.setZN(c.A)
	return false
}

func (c *CPU) asl(mode addressingMode, addr uint16) bool {
	v := c.read(mode, addr)
	c.P.C = v&0x80 != 0
	v <<= 1
	c.writeOperand(mode, addr, v)
	c.setZN(v)
	return false
}

func (c *CPU) branchIf(cond bool, addr uint16) bool {
	if !cond {
		return false
	}
	c.PC = addr
	return true
}

func (c *CPU) bcc(mode addressingMode, addr uint16) bool { return c.branchIf(!c.P.C, addr) }
func (c *CPU) bcs(mode addressingMode, addr uint16) bool { return c.branchIf(c.P.C, addr) }
func (c *CPU) beq(mode addressingMode, addr uint16) bool { return c.branchIf(c.P.Z, addr) }
func (c *CPU) bmi(mode addressingMode, addr uint16) bool { return c.branchIf(c.P.N, addr) }
func (c *CPU) bne(mode addressingMode, addr uint16) bool { return c.branchIf(!c.P.Z, addr) }
func (c *CPU) bpl(mode addressingMode, addr uint16) bool { return c.branchIf(!c.P.N, addr) }
func (c *CPU) bvc(mode addressingMode, addr uint16) bool { return c.branchIf(!c.P.V, addr) }
func (c *CPU) bvs(mode addressingMode, addr uint16) bool { return c.branchIf(c.P.V, addr) }

func (c *CPU) bit(mode addressingMode, addr uint16) bool {
	m := c.bus.read(addr)
	c.P.Z = c.A&m == 0
	c.P.N = m&0x80 != 0
	c.P.V = m&0x40 != 0
	return false
}

// brk halts this core rather than servicing a full software interrupt
// (§9): the controller uses BRK to end a test program.
func (c *CPU) brk(mode addressingMode, addr uint16) bool {
	c.Halted = true
	return false
}

func (c *CPU) clc(mode addressingMode, addr uint16) bool { c.P.C = false; return false }
func (c *CPU) cld(mode addressingMode, addr uint16) bool { c.P.D = false; return false }
func (c *CPU) cli(mode addressingMode, addr uint16) bool { c.P.I = false; return false }
func (c *CPU) clv(mode addressingMode, addr uint16) bool { c.P.V = false; return false }

func (c *CPU) compare(reg, value byte) {
	result := reg - value
	c.P.C = reg >= value
	c.setZN(result)
}

func (c *CPU) cmp(mode addressingMode, addr uint16) bool {
	c.compare(c.A, c.bus.read(addr))
	return false
}
func (c *CPU) cpx(mode addressingMode, addr uint16) bool {
	c.compare(c.X, c.bus.read(addr))
	return false
}
func (c *CPU) cpy(mode addressingMode, addr uint16) bool {
	c.compare(c.Y, c.bus.read(addr))
	return false
}

func (c *CPU) dec(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr) - 1
	c.bus.write(addr, v)
	c.setZN(v)
	return false
}
func (c *CPU) dex(mode addressingMode, addr uint16) bool { c.X--; c.setZN(c.X); return false }
func (c *CPU) dey(mode addressingMode, addr uint16) bool { c.Y--; c.setZN(c.Y); return false }

func (c *CPU) eor(mode addressingMode, addr uint16) bool {
	c.A ^= c.bus.read(addr)
	c.setZN(c.A)
	return false
}

func (c *CPU) inc(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr) + 1
	c.bus.write(addr, v)
	c.setZN(v)
	return false
}
func (c *CPU) inx(mode addressingMode, addr uint16) bool { c.X++; c.setZN(c.X); return false }
func (c *CPU) iny(mode addressingMode, addr uint16) bool { c.Y++; c.setZN(c.Y); return false }

func (c *CPU) jmp(mode addressingMode, addr uint16) bool { c.PC = addr; return false }

// jsr pushes PC-1, where PC already points past the operand at this
// point (Step advances PC before calling execute) -- i.e. it pushes the
// address of the last byte of the operand, then jumps.
func (c *CPU) jsr(mode addressingMode, addr uint16) bool {
	c.push16(c.PC - 1)
	c.PC = addr
	return false
}

func (c *CPU) lda(mode addressingMode, addr uint16) bool {
	c.A = c.bus.read(addr)
	c.setZN(c.A)
	return false
}
func (c *CPU) ldx(mode addressingMode, addr uint16) bool {
	c.X = c.bus.read(addr)
	c.setZN(c.X)
	return false
}
func (c *CPU) ldy(mode addressingMode, addr uint16) bool {
	c.Y = c.bus.read(addr)
	c.setZN(c.Y)
	return false
}

func (c *CPU) lsr(mode addressingMode, addr uint16) bool {
	v := c.read(mode, addr)
	c.P.C = v&0x01 != 0
	v >>= 1
	c.writeOperand(mode, addr, v)
	c.setZN(v)
	return false
}

func (c *CPU) nop(mode addressingMode, addr uint16) bool { return false }

func (c *CPU) ora(mode addressingMode, addr uint16) bool {
	c.A |= c.bus.read(addr)
	c.setZN(c.A)
	return false
}

func (c *CPU) pha(mode addressingMode, addr uint16) bool { c.push(c.A); return false }
func (c *CPU) php(mode addressingMode, addr uint16) bool { c.push(c.P.encode(true)); return false }
func (c *CPU) pla(mode addressingMode, addr uint16) bool {
	c.A = c.pop()
	c.setZN(c.A)
	return false
}
func (c *CPU) plp(mode addressingMode, addr uint16) bool { c.P.decode(c.pop()); return false }

func (c *CPU) rol(mode addressingMode, addr uint16) bool {
	v := c.read(mode, addr)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	c.P.C = v&0x80 != 0
	v = (v << 1) | carry
	c.writeOperand(mode, addr, v)
	c.setZN(v)
	return false
}

func (c *CPU) ror(mode addressingMode, addr uint16) bool {
	v := c.read(mode, addr)
	carry := byte(0)
	if c.P.C {
		carry = 0x80
	}
	c.P.C = v&0x01 != 0
	v = (v >> 1) | carry
	c.writeOperand(mode, addr, v)
	c.setZN(v)
	return false
}

func (c *CPU) rti(mode addressingMode, addr uint16) bool {
	c.P.decode(c.pop())
	c.PC = c.pop16()
	return false
}

func (c *CPU) rts(mode addressingMode, addr uint16) bool {
	c.PC = c.pop16() + 1
	return false
}

func (c *CPU) sec(mode addressingMode, addr uint16) bool { c.P.C = true; return false }
func (c *CPU) sed(mode addressingMode, addr uint16) bool { c.P.D = true; return false }
func (c *CPU) sei(mode addressingMode, addr uint16) bool { c.P.I = true; return false }

// sta special-cases $4014: real cartridges trigger OAM DMA with
// STA $4014, and that register must be serviced by the CPU itself so
// it can charge the DMA stall cycles (the bus rejects a direct write).
func (c *CPU) sta(mode addressingMode, addr uint16) bool {
	if addr == 0x4014 {
		c.oamDMA(c.A)
		return false
	}
	c.bus.write(addr, c.A)
	return false
}
func (c *CPU) stx(mode addressingMode, addr uint16) bool { c.bus.write(addr, c.X); return false }
func (c *CPU) sty(mode addressingMode, addr uint16) bool { c.bus.write(addr, c.Y); return false }

func (c *CPU) tax(mode addressingMode, addr uint16) bool { c.X = c.A; c.setZN(c.X); return false }
func (c *CPU) tay(mode addressingMode, addr uint16) bool { c.Y = c.A; c.setZN(c.Y); return false }
func (c *CPU) tsx(mode addressingMode, addr uint16) bool { c.X = c.SP; c.setZN(c.X); return false }
func (c *CPU) txa(mode addressingMode, addr uint16) bool { c.A = c.X; c.setZN(c.A); return false }
func (c *CPU) txs(mode addressingMode, addr uint16) bool { c.SP = c.X; return false }
func (c *CPU) tya(mode addressingMode, addr uint16) bool { c.A = c.Y; c.setZN(c.A); return false }

// --- Unofficial opcodes ---
// References: http://www.oxyron.de/html/opcodes02.html

// lax loads A and X from the same byte (LDA+LDX fused).
func (c *CPU) lax(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr)
	c.A = v
	c.X = v
	c.setZN(v)
	return false
}

// sax stores A&X, no flags touched.
func (c *CPU) sax(mode addressingMode, addr uint16) bool {
	c.bus.write(addr, c.A&c.X)
	return false
}

// dcp is DEC then CMP.
func (c *CPU) dcp(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr) - 1
	c.bus.write(addr, v)
	c.compare(c.A, v)
	return false
}

// isb (a.k.a. ISC) is INC then SBC.
func (c *CPU) isb(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr) + 1
	c.bus.write(addr, v)
	c.adcValue(v ^ 0xFF)
	return false
}

// slo is ASL then ORA.
func (c *CPU) slo(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr)
	c.P.C = v&0x80 != 0
	v <<= 1
	c.bus.write(addr, v)
	c.A |= v
	c.setZN(c.A)
	return false
}

// rla is ROL then AND.
func (c *CPU) rla(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr)
	carry := byte(0)
	if c.P.C {
		carry = 1
	}
	c.P.C = v&0x80 != 0
	v = (v << 1) | carry
	c.bus.write(addr, v)
	c.A &= v
	c.setZN(c.A)
	return false
}

// sre is LSR then EOR.
func (c *CPU) sre(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr)
	c.P.C = v&0x01 != 0
	v >>= 1
	c.bus.write(addr, v)
	c.A ^= v
	c.setZN(c.A)
	return false
}

// rra is ROR then ADC.
func (c *CPU) rra(mode addressingMode, addr uint16) bool {
	v := c.bus.read(addr)
	carry := byte(0)
	if c.P.C {
		carry = 0x80
	}
	c.P.C = v&0x01 != 0
	v = (v >> 1) | carry
	c.bus.write(addr, v)
	c.adcValue(v)
	return false
}
