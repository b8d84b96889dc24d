package nes

import (
	"fmt"
	"strings"
)

// Trace renders the fixed-column debug line for the instruction at PC,
// in the nestest-style format the test harness checks against:
// `AAAA  BB BB BB MNE OPSTR              A:AA X:XX Y:YY P:PP SP:SS`
// It only reads memory (through the same addressing-mode resolution
// Step uses) and never mutates CPU state.
func (c *CPU) Trace() string {
	opcodeByte := c.bus.read(c.PC)
	op := c.opcodes[opcodeByte]

	raw := make([]byte, op.size)
	for i := uint16(0); i < op.size; i++ {
		raw[i] = c.bus.read(c.PC + i)
	}

	addr, _ := c.resolveAddress(op.mode, c.PC+1)
	opstr := c.disassembleOperand(op, addr)

	hexBytes := make([]string, len(raw))
	for i, b := range raw {
		hexBytes[i] = fmt.Sprintf("%02X", b)
	}
	hexField := fmt.Sprintf("%-8s", strings.Join(hexBytes, " "))
	mnemonicField := fmt.Sprintf("%4s", op.mnemonic)

	asm := strings.TrimRight(fmt.Sprintf("%04X  %s %s %s", c.PC, hexField, mnemonicField, opstr), " ")
	return fmt.Sprintf("%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		asm, c.A, c.X, c.Y, c.P.encode(false), c.SP)
}

// disassembleOperand formats the operand the way §6 wants: a literal
// for non-memory modes, and effective-address/stored-value annotations
// for everything that touches memory, since the trace exists to let a
// reader follow indirection without a second tool.
func (c *CPU) disassembleOperand(op opcode, addr uint16) string {
	operand := c.PC + 1
	switch op.mode {
	case implied:
		return ""
	case accumulator:
		return "A"
	case immediate:
		return fmt.Sprintf("#$%02X", c.bus.read(operand))
	case zeroPage:
		return fmt.Sprintf("$%02X = %02X", c.bus.read(operand), c.bus.read(addr))
	case zeroPageX:
		return fmt.Sprintf("$%02X,X @ %02X = %02X", c.bus.read(operand), addr, c.bus.read(addr))
	case zeroPageY:
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", c.bus.read(operand), addr, c.bus.read(addr))
	case relative:
		return fmt.Sprintf("$%04X", addr)
	case absolute:
		if op.mnemonic == "JSR" {
			return fmt.Sprintf("$%04X", addr)
		}
		return fmt.Sprintf("$%04X = %02X", addr, c.bus.read(addr))
	case absoluteX:
		base := c.bus.read16(operand)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", base, addr, c.bus.read(addr))
	case absoluteY:
		base := c.bus.read16(operand)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", base, addr, c.bus.read(addr))
	case indirect:
		pointer := c.bus.read16(operand)
		return fmt.Sprintf("($%04X) = %04X", pointer, addr)
	case indirectX:
		zp := c.bus.read(operand)
		ptr := zp + c.X
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", zp, ptr, addr, c.bus.read(addr))
	case indirectY:
		zp := c.bus.read(operand)
		lo := uint16(c.bus.read(uint16(zp)))
		hi := uint16(c.bus.read(uint16(zp + 1)))
		base := hi<<8 | lo
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", zp, base, addr, c.bus.read(addr))
	default:
		return ""
	}
}
