package nes

import "github.com/golang/glog"

// opcode is one entry of the 256-byte dispatch table, carrying
// everything both the interpreter (mode, size, cycles) and the
// disassembler (mnemonic, size) need.
type opcode struct {
	mnemonic         string
	mode             addressingMode
	size             uint16
	cycles           int
	pageCrossPenalty bool
	execute          func(c *CPU, mode addressingMode, addr uint16) bool
}

// illegal is a genuinely unallocated or unstable opcode (the KIL/JAM
// family and the handful of highly unstable undocumented combinations
// not in the required coverage list): a programmer error, fatal per §7.
func (c *CPU) illegal(mode addressingMode, addr uint16) bool {
	glog.Fatalf("nes: illegal opcode, PC after it=0x%04x", c.PC)
	return false
}

func op(mnemonic string, mode addressingMode, size uint16, cycles int, penalty bool, fn func(*CPU, addressingMode, uint16) bool) opcode {
	return opcode{mnemonic: mnemonic, mode: mode, size: size, cycles: cycles, pageCrossPenalty: penalty, execute: fn}
}

// buildOpcodeTable builds the full 256-entry 6502 dispatch table: every
// documented official opcode, the unofficial opcodes named in the
// required coverage (DCP, ISB, LAX, RLA, RRA, SAX, SLO, SRE, the $EB
// SBC alias, and the NOP/SKB/DOP/TOP family), and KIL/unstable-illegal
// opcodes mapped to a fatal abort.
// Reference: http://www.oxyron.de/html/opcodes02.html
func buildOpcodeTable() [256]opcode {
	return [256]opcode{
		// 0x0_
		0x00: op("BRK", implied, 1, 7, false, (*CPU).brk),
		0x01: op("ORA", indirectX, 2, 6, false, (*CPU).ora),
		0x02: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x03: op("SLO", indirectX, 2, 8, false, (*CPU).slo),
		0x04: op("NOP", zeroPage, 2, 3, false, (*CPU).nop),
		0x05: op("ORA", zeroPage, 2, 3, false, (*CPU).ora),
		0x06: op("ASL", zeroPage, 2, 5, false, (*CPU).asl),
		0x07: op("SLO", zeroPage, 2, 5, false, (*CPU).slo),
		0x08: op("PHP", implied, 1, 3, false, (*CPU).php),
		0x09: op("ORA", immediate, 2, 2, false, (*CPU).ora),
		0x0A: op("ASL", accumulator, 1, 2, false, (*CPU).asl),
		0x0B: op("KIL", immediate, 2, 2, false, (*CPU).illegal),
		0x0C: op("NOP", absolute, 3, 4, false, (*CPU).nop),
		0x0D: op("ORA", absolute, 3, 4, false, (*CPU).ora),
		0x0E: op("ASL", absolute, 3, 6, false, (*CPU).asl),
		0x0F: op("SLO", absolute, 3, 6, false, (*CPU).slo),

		// 0x1_
		0x10: op("BPL", relative, 2, 2, false, (*CPU).bpl),
		0x11: op("ORA", indirectY, 2, 5, true, (*CPU).ora),
		0x12: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x13: op("SLO", indirectY, 2, 8, false, (*CPU).slo),
		0x14: op("NOP", zeroPageX, 2, 4, false, (*CPU).nop),
		0x15: op("ORA", zeroPageX, 2, 4, false, (*CPU).ora),
		0x16: op("ASL", zeroPageX, 2, 6, false, (*CPU).asl),
		0x17: op("SLO", zeroPageX, 2, 6, false, (*CPU).slo),
		0x18: op("CLC", implied, 1, 2, false, (*CPU).clc),
		0x19: op("ORA", absoluteY, 3, 4, true, (*CPU).ora),
		0x1A: op("NOP", implied, 1, 2, false, (*CPU).nop),
		0x1B: op("SLO", absoluteY, 3, 7, false, (*CPU).slo),
		0x1C: op("NOP", absoluteX, 3, 4, true, (*CPU).nop),
		0x1D: op("ORA", absoluteX, 3, 4, true, (*CPU).ora),
		0x1E: op("ASL", absoluteX, 3, 7, false, (*CPU).asl),
		0x1F: op("SLO", absoluteX, 3, 7, false, (*CPU).slo),

		// 0x2_
		0x20: op("JSR", absolute, 3, 6, false, (*CPU).jsr),
		0x21: op("AND", indirectX, 2, 6, false, (*CPU).and),
		0x22: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x23: op("RLA", indirectX, 2, 8, false, (*CPU).rla),
		0x24: op("BIT", zeroPage, 2, 3, false, (*CPU).bit),
		0x25: op("AND", zeroPage, 2, 3, false, (*CPU).and),
		0x26: op("ROL", zeroPage, 2, 5, false, (*CPU).rol),
		0x27: op("RLA", zeroPage, 2, 5, false, (*CPU).rla),
		0x28: op("PLP", implied, 1, 4, false, (*CPU).plp),
		0x29: op("AND", immediate, 2, 2, false, (*CPU).and),
		0x2A: op("ROL", accumulator, 1, 2, false, (*CPU).rol),
		0x2B: op("KIL", immediate, 2, 2, false, (*CPU).illegal),
		0x2C: op("BIT", absolute, 3, 4, false, (*CPU).bit),
		0x2D: op("AND", absolute, 3, 4, false, (*CPU).and),
		0x2E: op("ROL", absolute, 3, 6, false, (*CPU).rol),
		0x2F: op("RLA", absolute, 3, 6, false, (*CPU).rla),

		// 0x3_
		0x30: op("BMI", relative, 2, 2, false, (*CPU).bmi),
		0x31: op("AND", indirectY, 2, 5, true, (*CPU).and),
		0x32: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x33: op("RLA", indirectY, 2, 8, false, (*CPU).rla),
		0x34: op("NOP", zeroPageX, 2, 4, false, (*CPU).nop),
		0x35: op("AND", zeroPageX, 2, 4, false, (*CPU).and),
		0x36: op("ROL", zeroPageX, 2, 6, false, (*CPU).rol),
		0x37: op("RLA", zeroPageX, 2, 6, false, (*CPU).rla),
		0x38: op("SEC", implied, 1, 2, false, (*CPU).sec),
		0x39: op("AND", absoluteY, 3, 4, true, (*CPU).and),
		0x3A: op("NOP", implied, 1, 2, false, (*CPU).nop),
		0x3B: op("RLA", absoluteY, 3, 7, false, (*CPU).rla),
		0x3C: op("NOP", absoluteX, 3, 4, true, (*CPU).nop),
		0x3D: op("AND", absoluteX, 3, 4, true, (*CPU).and),
		0x3E: op("ROL", absoluteX, 3, 7, false, (*CPU).rol),
		0x3F: op("RLA", absoluteX, 3, 7, false, (*CPU).rla),

		// 0x4_
		0x40: op("RTI", implied, 1, 6, false, (*CPU).rti),
		0x41: op("EOR", indirectX, 2, 6, false, (*CPU).eor),
		0x42: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x43: op("SRE", indirectX, 2, 8, false, (*CPU).sre),
		0x44: op("NOP", zeroPage, 2, 3, false, (*CPU).nop),
		0x45: op("EOR", zeroPage, 2, 3, false, (*CPU).eor),
		0x46: op("LSR", zeroPage, 2, 5, false, (*CPU).lsr),
		0x47: op("SRE", zeroPage, 2, 5, false, (*CPU).sre),
		0x48: op("PHA", implied, 1, 3, false, (*CPU).pha),
		0x49: op("EOR", immediate, 2, 2, false, (*CPU).eor),
		0x4A: op("LSR", accumulator, 1, 2, false, (*CPU).lsr),
		0x4B: op("KIL", immediate, 2, 2, false, (*CPU).illegal),
		0x4C: op("JMP", absolute, 3, 3, false, (*CPU).jmp),
		0x4D: op("EOR", absolute, 3, 4, false, (*CPU).eor),
		0x4E: op("LSR", absolute, 3, 6, false, (*CPU).lsr),
		0x4F: op("SRE", absolute, 3, 6, false, (*CPU).sre),

		// 0x5_
		0x50: op("BVC", relative, 2, 2, false, (*CPU).bvc),
		0x51: op("EOR", indirectY, 2, 5, true, (*CPU).eor),
		0x52: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x53: op("SRE", indirectY, 2, 8, false, (*CPU).sre),
		0x54: op("NOP", zeroPageX, 2, 4, false, (*CPU).nop),
		0x55: op("EOR", zeroPageX, 2, 4, false, (*CPU).eor),
		0x56: op("LSR", zeroPageX, 2, 6, false, (*CPU).lsr),
		0x57: op("SRE", zeroPageX, 2, 6, false, (*CPU).sre),
		0x58: op("CLI", implied, 1, 2, false, (*CPU).cli),
		0x59: op("EOR", absoluteY, 3, 4, true, (*CPU).eor),
		0x5A: op("NOP", implied, 1, 2, false, (*CPU).nop),
		0x5B: op("SRE", absoluteY, 3, 7, false, (*CPU).sre),
		0x5C: op("NOP", absoluteX, 3, 4, true, (*CPU).nop),
		0x5D: op("EOR", absoluteX, 3, 4, true, (*CPU).eor),
		0x5E: op("LSR", absoluteX, 3, 7, false, (*CPU).lsr),
		0x5F: op("SRE", absoluteX, 3, 7, false, (*CPU).sre),

		// 0x6_
		0x60: op("RTS", implied, 1, 6, false, (*CPU).rts),
		0x61: op("ADC", indirectX, 2, 6, false, (*CPU).adc),
		0x62: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x63: op("RRA", indirectX, 2, 8, false, (*CPU).rra),
		0x64: op("NOP", zeroPage, 2, 3, false, (*CPU).nop),
		0x65: op("ADC", zeroPage, 2, 3, false, (*CPU).adc),
		0x66: op("ROR", zeroPage, 2, 5, false, (*CPU).ror),
		0x67: op("RRA", zeroPage, 2, 5, false, (*CPU).rra),
		0x68: op("PLA", implied, 1, 4, false, (*CPU).pla),
		0x69: op("ADC", immediate, 2, 2, false, (*CPU).adc),
		0x6A: op("ROR", accumulator, 1, 2, false, (*CPU).ror),
		0x6B: op("KIL", immediate, 2, 2, false, (*CPU).illegal),
		0x6C: op("JMP", indirect, 3, 5, false, (*CPU).jmp),
		0x6D: op("ADC", absolute, 3, 4, false, (*CPU).adc),
		0x6E: op("ROR", absolute, 3, 6, false, (*CPU).ror),
		0x6F: op("RRA", absolute, 3, 6, false, (*CPU).rra),

		// 0x7_
		0x70: op("BVS", relative, 2, 2, false, (*CPU).bvs),
		0x71: op("ADC", indirectY, 2, 5, true, (*CPU).adc),
		0x72: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x73: op("RRA", indirectY, 2, 8, false, (*CPU).rra),
		0x74: op("NOP", zeroPageX, 2, 4, false, (*CPU).nop),
		0x75: op("ADC", zeroPageX, 2, 4, false, (*CPU).adc),
		0x76: op("ROR", zeroPageX, 2, 6, false, (*CPU).ror),
		0x77: op("RRA", zeroPageX, 2, 6, false, (*CPU).rra),
		0x78: op("SEI", implied, 1, 2, false, (*CPU).sei),
		0x79: op("ADC", absoluteY, 3, 4, true, (*CPU).adc),
		0x7A: op("NOP", implied, 1, 2, false, (*CPU).nop),
		0x7B: op("RRA", absoluteY, 3, 7, false, (*CPU).rra),
		0x7C: op("NOP", absoluteX, 3, 4, true, (*CPU).nop),
		0x7D: op("ADC", absoluteX, 3, 4, true, (*CPU).adc),
		0x7E: op("ROR", absoluteX, 3, 7, false, (*CPU).ror),
		0x7F: op("RRA", absoluteX, 3, 7, false, (*CPU).rra),

		// 0x8_
		0x80: op("NOP", immediate, 2, 2, false, (*CPU).nop),
		0x81: op("STA", indirectX, 2, 6, false, (*CPU).sta),
		0x82: op("NOP", immediate, 2, 2, false, (*CPU).nop),
		0x83: op("SAX", indirectX, 2, 6, false, (*CPU).sax),
		0x84: op("STY", zeroPage, 2, 3, false, (*CPU).sty),
		0x85: op("STA", zeroPage, 2, 3, false, (*CPU).sta),
		0x86: op("STX", zeroPage, 2, 3, false, (*CPU).stx),
		0x87: op("SAX", zeroPage, 2, 3, false, (*CPU).sax),
		0x88: op("DEY", implied, 1, 2, false, (*CPU).dey),
		0x89: op("NOP", immediate, 2, 2, false, (*CPU).nop),
		0x8A: op("TXA", implied, 1, 2, false, (*CPU).txa),
		0x8B: op("KIL", immediate, 2, 2, false, (*CPU).illegal),
		0x8C: op("STY", absolute, 3, 4, false, (*CPU).sty),
		0x8D: op("STA", absolute, 3, 4, false, (*CPU).sta),
		0x8E: op("STX", absolute, 3, 4, false, (*CPU).stx),
		0x8F: op("SAX", absolute, 3, 4, false, (*CPU).sax),

		// 0x9_
		0x90: op("BCC", relative, 2, 2, false, (*CPU).bcc),
		0x91: op("STA", indirectY, 2, 6, false, (*CPU).sta),
		0x92: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0x93: op("KIL", indirectY, 2, 6, false, (*CPU).illegal),
		0x94: op("STY", zeroPageX, 2, 4, false, (*CPU).sty),
		0x95: op("STA", zeroPageX, 2, 4, false, (*CPU).sta),
		0x96: op("STX", zeroPageY, 2, 4, false, (*CPU).stx),
		0x97: op("SAX", zeroPageY, 2, 4, false, (*CPU).sax),
		0x98: op("TYA", implied, 1, 2, false, (*CPU).tya),
		0x99: op("STA", absoluteY, 3, 5, false, (*CPU).sta),
		0x9A: op("TXS", implied, 1, 2, false, (*CPU).txs),
		0x9B: op("KIL", absoluteY, 3, 5, false, (*CPU).illegal),
		0x9C: op("KIL", absoluteX, 3, 5, false, (*CPU).illegal),
		0x9D: op("STA", absoluteX, 3, 5, false, (*CPU).sta),
		0x9E: op("KIL", absoluteY, 3, 5, false, (*CPU).illegal),
		0x9F: op("KIL", absoluteY, 3, 5, false, (*CPU).illegal),

		// 0xA_
		0xA0: op("LDY", immediate, 2, 2, false, (*CPU).ldy),
		0xA1: op("LDA", indirectX, 2, 6, false, (*CPU).lda),
		0xA2: op("LDX", immediate, 2, 2, false, (*CPU).ldx),
		0xA3: op("LAX", indirectX, 2, 6, false, (*CPU).lax),
		0xA4: op("LDY", zeroPage, 2, 3, false, (*CPU).ldy),
		0xA5: op("LDA", zeroPage, 2, 3, false, (*CPU).lda),
		0xA6: op("LDX", zeroPage, 2, 3, false, (*CPU).ldx),
		0xA7: op("LAX", zeroPage, 2, 3, false, (*CPU).lax),
		0xA8: op("TAY", implied, 1, 2, false, (*CPU).tay),
		0xA9: op("LDA", immediate, 2, 2, false, (*CPU).lda),
		0xAA: op("TAX", implied, 1, 2, false, (*CPU).tax),
		0xAB: op("KIL", immediate, 2, 2, false, (*CPU).illegal),
		0xAC: op("LDY", absolute, 3, 4, false, (*CPU).ldy),
		0xAD: op("LDA", absolute, 3, 4, false, (*CPU).lda),
		0xAE: op("LDX", absolute, 3, 4, false, (*CPU).ldx),
		0xAF: op("LAX", absolute, 3, 4, false, (*CPU).lax),

		// 0xB_
		0xB0: op("BCS", relative, 2, 2, false, (*CPU).bcs),
		0xB1: op("LDA", indirectY, 2, 5, true, (*CPU).lda),
		0xB2: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0xB3: op("LAX", indirectY, 2, 5, true, (*CPU).lax),
		0xB4: op("LDY", zeroPageX, 2, 4, false, (*CPU).ldy),
		0xB5: op("LDA", zeroPageX, 2, 4, false, (*CPU).lda),
		0xB6: op("LDX", zeroPageY, 2, 4, false, (*CPU).ldx),
		0xB7: op("LAX", zeroPageY, 2, 4, false, (*CPU).lax),
		0xB8: op("CLV", implied, 1, 2, false, (*CPU).clv),
		0xB9: op("LDA", absoluteY, 3, 4, true, (*CPU).lda),
		0xBA: op("TSX", implied, 1, 2, false, (*CPU).tsx),
		0xBB: op("KIL", absoluteY, 3, 4, true, (*CPU).illegal),
		0xBC: op("LDY", absoluteX, 3, 4, true, (*CPU).ldy),
		0xBD: op("LDA", absoluteX, 3, 4, true, (*CPU).lda),
		0xBE: op("LDX", absoluteY, 3, 4, true, (*CPU).ldx),
		0xBF: op("LAX", absoluteY, 3, 4, true, (*CPU).lax),

		// 0xC_
		0xC0: op("CPY", immediate, 2, 2, false, (*CPU).cpy),
		0xC1: op("CMP", indirectX, 2, 6, false, (*CPU).cmp),
		0xC2: op("NOP", immediate, 2, 2, false, (*CPU).nop),
		0xC3: op("DCP", indirectX, 2, 8, false, (*CPU).dcp),
		0xC4: op("CPY", zeroPage, 2, 3, false, (*CPU).cpy),
		0xC5: op("CMP", zeroPage, 2, 3, false, (*CPU).cmp),
		0xC6: op("DEC", zeroPage, 2, 5, false, (*CPU).dec),
		0xC7: op("DCP", zeroPage, 2, 5, false, (*CPU).dcp),
		0xC8: op("INY", implied, 1, 2, false, (*CPU).iny),
		0xC9: op("CMP", immediate, 2, 2, false, (*CPU).cmp),
		0xCA: op("DEX", implied, 1, 2, false, (*CPU).dex),
		0xCB: op("KIL", immediate, 2, 2, false, (*CPU).illegal),
		0xCC: op("CPY", absolute, 3, 4, false, (*CPU).cpy),
		0xCD: op("CMP", absolute, 3, 4, false, (*CPU).cmp),
		0xCE: op("DEC", absolute, 3, 6, false, (*CPU).dec),
		0xCF: op("DCP", absolute, 3, 6, false, (*CPU).dcp),

		// 0xD_
		0xD0: op("BNE", relative, 2, 2, false, (*CPU).bne),
		0xD1: op("CMP", indirectY, 2, 5, true, (*CPU).cmp),
		0xD2: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0xD3: op("DCP", indirectY, 2, 8, false, (*CPU).dcp),
		0xD4: op("NOP", zeroPageX, 2, 4, false, (*CPU).nop),
		0xD5: op("CMP", zeroPageX, 2, 4, false, (*CPU).cmp),
		0xD6: op("DEC", zeroPageX, 2, 6, false, (*CPU).dec),
		0xD7: op("DCP", zeroPageX, 2, 6, false, (*CPU).dcp),
		0xD8: op("CLD", implied, 1, 2, false, (*CPU).cld),
		0xD9: op("CMP", absoluteY, 3, 4, true, (*CPU).cmp),
		0xDA: op("NOP", implied, 1, 2, false, (*CPU).nop),
		0xDB: op("DCP", absoluteY, 3, 7, false, (*CPU).dcp),
		0xDC: op("NOP", absoluteX, 3, 4, true, (*CPU).nop),
		0xDD: op("CMP", absoluteX, 3, 4, true, (*CPU).cmp),
		0xDE: op("DEC", absoluteX, 3, 7, false, (*CPU).dec),
		0xDF: op("DCP", absoluteX, 3, 7, false, (*CPU).dcp),

		// 0xE_
		0xE0: op("CPX", immediate, 2, 2, false, (*CPU).cpx),
		0xE1: op("SBC", indirectX, 2, 6, false, (*CPU).sbc),
		0xE2: op("NOP", immediate, 2, 2, false, (*CPU).nop),
		0xE3: op("ISB", indirectX, 2, 8, false, (*CPU).isb),
		0xE4: op("CPX", zeroPage, 2, 3, false, (*CPU).cpx),
		0xE5: op("SBC", zeroPage, 2, 3, false, (*CPU).sbc),
		0xE6: op("INC", zeroPage, 2, 5, false, (*CPU).inc),
		0xE7: op("ISB", zeroPage, 2, 5, false, (*CPU).isb),
		0xE8: op("INX", implied, 1, 2, false, (*CPU).inx),
		0xE9: op("SBC", immediate, 2, 2, false, (*CPU).sbc),
		0xEA: op("NOP", implied, 1, 2, false, (*CPU).nop),
		0xEB: op("SBC", immediate, 2, 2, false, (*CPU).sbc),
		0xEC: op("CPX", absolute, 3, 4, false, (*CPU).cpx),
		0xED: op("SBC", absolute, 3, 4, false, (*CPU).sbc),
		0xEE: op("INC", absolute, 3, 6, false, (*CPU).inc),
		0xEF: op("ISB", absolute, 3, 6, false, (*CPU).isb),

		// 0xF_
		0xF0: op("BEQ", relative, 2, 2, false, (*CPU).beq),
		0xF1: op("SBC", indirectY, 2, 5, true, (*CPU).sbc),
		0xF2: op("KIL", implied, 1, 2, false, (*CPU).illegal),
		0xF3: op("ISB", indirectY, 2, 8, false, (*CPU).isb),
		0xF4: op("NOP", zeroPageX, 2, 4, false, (*CPU).nop),
		0xF5: op("SBC", zeroPageX, 2, 4, false, (*CPU).sbc),
		0xF6: op("INC", zeroPageX, 2, 6, false, (*CPU).inc),
		0xF7: op("ISB", zeroPageX, 2, 6, false, (*CPU).isb),
		0xF8: op("SED", implied, 1, 2, false, (*CPU).sed),
		0xF9: op("SBC", absoluteY, 3, 4, true, (*CPU).sbc),
		0xFA: op("NOP", implied, 1, 2, false, (*CPU).nop),
		0xFB: op("ISB", absoluteY, 3, 7, false, (*CPU).isb),
		0xFC: op("NOP", absoluteX, 3, 4, true, (*CPU).nop),
		0xFD: op("SBC", absoluteX, 3, 4, true, (*CPU).sbc),
		0xFE: op("INC", absoluteX, 3, 7, false, (*CPU).inc),
		0xFF: op("ISB", absoluteX, 3, 7, false, (*CPU).isb),
	}
}
