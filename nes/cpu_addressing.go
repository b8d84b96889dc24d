package nes

// resolveAddress computes the effective address for mode, given operand
// points at the first operand byte (the opcode's address + 1). It never
// mutates PC; Step advances PC by the instruction's total size once the
// address has been resolved. Branch/jump instructions override PC
// themselves afterward.
func (c *CPU) resolveAddress(mode addressingMode, operand uint16) (addr uint16, pageCrossed bool) {
	switch mode {
	case implied, accumulator:
		return 0, false
	case immediate:
		return operand, false
	case zeroPage:
		return uint16(c.bus.read(operand)), false
	case zeroPageX:
		return uint16(c.bus.read(operand) + c.X), false
	case zeroPageY:
		return uint16(c.bus.read(operand) + c.Y), false
	case relative:
		offset := c.bus.read(operand)
		base := operand + 1
		if offset < 0x80 {
			return base + uint16(offset), false
		}
		return base + uint16(offset) - 0x100, false
	case absolute:
		return c.bus.read16(operand), false
	case absoluteX:
		base := c.bus.read16(operand)
		result := base + uint16(c.X)
		return result, pageCrossedBetween(base, result)
	case absoluteY:
		base := c.bus.read16(operand)
		result := base + uint16(c.Y)
		return result, pageCrossedBetween(base, result)
	case indirect:
		return c.readIndirect16(c.bus.read16(operand)), false
	case indirectX:
		ptr := c.bus.read(operand) + c.X
		lo := uint16(c.bus.read(uint16(ptr)))
		hi := uint16(c.bus.read(uint16(ptr + 1)))
		return hi<<8 | lo, false
	case indirectY:
		ptr := c.bus.read(operand)
		lo := uint16(c.bus.read(uint16(ptr)))
		hi := uint16(c.bus.read(uint16(ptr + 1)))
		base := hi<<8 | lo
		result := base + uint16(c.Y)
		return result, pageCrossedBetween(base, result)
	default:
		return 0, false
	}
}

func pageCrossedBetween(base, result uint16) bool {
	return base&0xFF00 != result&0xFF00
}

// readIndirect16 follows a 16-bit pointer with the JMP-indirect hardware
// bug: when the pointer's low byte is $FF, the high byte is fetched
// from the start of the same page instead of wrapping into the next.
func (c *CPU) readIndirect16(pointer uint16) uint16 {
	lo := uint16(c.bus.read(pointer))
	var hiAddr uint16
	if pointer&0x00FF == 0x00FF {
		hiAddr = pointer & 0xFF00
	} else {
		hiAddr = pointer + 1
	}
	hi := uint16(c.bus.read(hiAddr))
	return hi<<8 | lo
}
