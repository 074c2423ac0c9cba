package cpu

// Instruction operations. Each returns extra cycles beyond the table's
// base cycle count (branches report their own taken/page-cross bonus).

func (cpu *CPU) lda(bus Bus, addr uint16) uint8 {
	cpu.A = bus.Read8(addr)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) ldx(bus Bus, addr uint16) uint8 {
	cpu.X = bus.Read8(addr)
	cpu.setZN(cpu.X)
	return 0
}

func (cpu *CPU) ldy(bus Bus, addr uint16) uint8 {
	cpu.Y = bus.Read8(addr)
	cpu.setZN(cpu.Y)
	return 0
}

func (cpu *CPU) sta(bus Bus, addr uint16) uint8 { bus.Write8(addr, cpu.A); return 0 }
func (cpu *CPU) stx(bus Bus, addr uint16) uint8 { bus.Write8(addr, cpu.X); return 0 }
func (cpu *CPU) sty(bus Bus, addr uint16) uint8 { bus.Write8(addr, cpu.Y); return 0 }

func (cpu *CPU) adc(bus Bus, addr uint16) uint8 {
	value := bus.Read8(addr)
	carry := uint16(0)
	if cpu.C {
		carry = 1
	}
	result := uint16(cpu.A) + uint16(value) + carry
	cpu.V = (cpu.A^uint8(result))&0x80 != 0 && (cpu.A^value)&0x80 == 0
	cpu.C = result > 0xFF
	cpu.A = uint8(result)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) sbc(bus Bus, addr uint16) uint8 {
	value := bus.Read8(addr) ^ 0xFF
	carry := uint16(0)
	if cpu.C {
		carry = 1
	}
	result := uint16(cpu.A) + uint16(value) + carry
	cpu.V = (cpu.A^uint8(result))&0x80 != 0 && (cpu.A^value)&0x80 == 0
	cpu.C = result > 0xFF
	cpu.A = uint8(result)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) and(bus Bus, addr uint16) uint8 { cpu.A &= bus.Read8(addr); cpu.setZN(cpu.A); return 0 }
func (cpu *CPU) ora(bus Bus, addr uint16) uint8 { cpu.A |= bus.Read8(addr); cpu.setZN(cpu.A); return 0 }
func (cpu *CPU) eor(bus Bus, addr uint16) uint8 { cpu.A ^= bus.Read8(addr); cpu.setZN(cpu.A); return 0 }

func (cpu *CPU) asl(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	cpu.C = v&0x80 != 0
	v <<= 1
	bus.Write8(addr, v)
	cpu.setZN(v)
	return 0
}

func (cpu *CPU) lsr(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	cpu.C = v&0x01 != 0
	v >>= 1
	bus.Write8(addr, v)
	cpu.setZN(v)
	return 0
}

func (cpu *CPU) rol(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	old := cpu.C
	cpu.C = v&0x80 != 0
	v <<= 1
	if old {
		v |= 0x01
	}
	bus.Write8(addr, v)
	cpu.setZN(v)
	return 0
}

func (cpu *CPU) ror(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	old := cpu.C
	cpu.C = v&0x01 != 0
	v >>= 1
	if old {
		v |= 0x80
	}
	bus.Write8(addr, v)
	cpu.setZN(v)
	return 0
}

func (cpu *CPU) cmp(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	cpu.C = cpu.A >= v
	cpu.setZN(cpu.A - v)
	return 0
}

func (cpu *CPU) cpx(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	cpu.C = cpu.X >= v
	cpu.setZN(cpu.X - v)
	return 0
}

func (cpu *CPU) cpy(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	cpu.C = cpu.Y >= v
	cpu.setZN(cpu.Y - v)
	return 0
}

func (cpu *CPU) inc(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr) + 1
	bus.Write8(addr, v)
	cpu.setZN(v)
	return 0
}

func (cpu *CPU) dec(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr) - 1
	bus.Write8(addr, v)
	cpu.setZN(v)
	return 0
}

func (cpu *CPU) inx(Bus, uint16) uint8 { cpu.X++; cpu.setZN(cpu.X); return 0 }
func (cpu *CPU) dex(Bus, uint16) uint8 { cpu.X--; cpu.setZN(cpu.X); return 0 }
func (cpu *CPU) iny(Bus, uint16) uint8 { cpu.Y++; cpu.setZN(cpu.Y); return 0 }
func (cpu *CPU) dey(Bus, uint16) uint8 { cpu.Y--; cpu.setZN(cpu.Y); return 0 }

func (cpu *CPU) tax(Bus, uint16) uint8 { cpu.X = cpu.A; cpu.setZN(cpu.X); return 0 }
func (cpu *CPU) txa(Bus, uint16) uint8 { cpu.A = cpu.X; cpu.setZN(cpu.A); return 0 }
func (cpu *CPU) tay(Bus, uint16) uint8 { cpu.Y = cpu.A; cpu.setZN(cpu.Y); return 0 }
func (cpu *CPU) tya(Bus, uint16) uint8 { cpu.A = cpu.Y; cpu.setZN(cpu.A); return 0 }
func (cpu *CPU) tsx(Bus, uint16) uint8 { cpu.X = cpu.SP; cpu.setZN(cpu.X); return 0 }
func (cpu *CPU) txs(Bus, uint16) uint8 { cpu.SP = cpu.X; return 0 }

func (cpu *CPU) pha(bus Bus, addr uint16) uint8 { cpu.push(bus, cpu.A); return 0 }
func (cpu *CPU) pla(bus Bus, addr uint16) uint8 {
	cpu.A = cpu.pop(bus)
	cpu.setZN(cpu.A)
	return 0
}
func (cpu *CPU) php(bus Bus, addr uint16) uint8 {
	cpu.push(bus, cpu.statusByte()|bFlagMask)
	return 0
}
func (cpu *CPU) plp(bus Bus, addr uint16) uint8 { cpu.setStatusByte(cpu.pop(bus)); return 0 }

func (cpu *CPU) clc(Bus, uint16) uint8 { cpu.C = false; return 0 }
func (cpu *CPU) sec(Bus, uint16) uint8 { cpu.C = true; return 0 }
func (cpu *CPU) cli(Bus, uint16) uint8 { cpu.I = false; return 0 }
func (cpu *CPU) sei(Bus, uint16) uint8 { cpu.I = true; return 0 }
func (cpu *CPU) clv(Bus, uint16) uint8 { cpu.V = false; return 0 }
func (cpu *CPU) cld(Bus, uint16) uint8 { cpu.D = false; return 0 }
func (cpu *CPU) sed(Bus, uint16) uint8 { cpu.D = true; return 0 }

func (cpu *CPU) jmp(bus Bus, addr uint16) uint8 { cpu.PC = addr; return 0 }
func (cpu *CPU) jsr(bus Bus, addr uint16) uint8 {
	cpu.pushWord(bus, cpu.PC-1)
	cpu.PC = addr
	return 0
}
func (cpu *CPU) rts(bus Bus, addr uint16) uint8 { cpu.PC = cpu.popWord(bus) + 1; return 0 }
func (cpu *CPU) rti(bus Bus, addr uint16) uint8 {
	cpu.setStatusByte(cpu.pop(bus))
	cpu.PC = cpu.popWord(bus)
	return 0
}

func branch(cpu *CPU, taken bool, addr uint16, pageCrossed bool) uint8 {
	if !taken {
		return 0
	}
	cpu.PC = addr
	if pageCrossed {
		return 2
	}
	return 1
}

func (cpu *CPU) bcc(b Bus, addr uint16, pc bool) uint8 { return branch(cpu, !cpu.C, addr, pc) }
func (cpu *CPU) bcs(b Bus, addr uint16, pc bool) uint8 { return branch(cpu, cpu.C, addr, pc) }
func (cpu *CPU) bne(b Bus, addr uint16, pc bool) uint8 { return branch(cpu, !cpu.Z, addr, pc) }
func (cpu *CPU) beq(b Bus, addr uint16, pc bool) uint8 { return branch(cpu, cpu.Z, addr, pc) }
func (cpu *CPU) bpl(b Bus, addr uint16, pc bool) uint8 { return branch(cpu, !cpu.N, addr, pc) }
func (cpu *CPU) bmi(b Bus, addr uint16, pc bool) uint8 { return branch(cpu, cpu.N, addr, pc) }
func (cpu *CPU) bvc(b Bus, addr uint16, pc bool) uint8 { return branch(cpu, !cpu.V, addr, pc) }
func (cpu *CPU) bvs(b Bus, addr uint16, pc bool) uint8 { return branch(cpu, cpu.V, addr, pc) }

func (cpu *CPU) bit(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	cpu.N = v&nFlagMask != 0
	cpu.V = v&vFlagMask != 0
	cpu.Z = cpu.A&v == 0
	return 0
}

func (cpu *CPU) nop(Bus, uint16) uint8 { return 0 }

func (cpu *CPU) brk(bus Bus, addr uint16) uint8 {
	cpu.PC++ // padding byte
	cpu.pushWord(bus, cpu.PC)
	cpu.push(bus, cpu.statusByte()|bFlagMask)
	cpu.I = true
	low := uint16(bus.Read8(irqVector))
	high := uint16(bus.Read8(irqVector + 1))
	cpu.PC = (high << 8) | low
	return 0
}

// --- Documented illegal opcodes ---

func (cpu *CPU) lax(bus Bus, addr uint16) uint8 {
	cpu.A = bus.Read8(addr)
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) sax(bus Bus, addr uint16) uint8 { bus.Write8(addr, cpu.A&cpu.X); return 0 }

func (cpu *CPU) dcp(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr) - 1
	bus.Write8(addr, v)
	cpu.C = cpu.A >= v
	cpu.setZN(cpu.A - v)
	return 0
}

func (cpu *CPU) isb(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr) + 1
	bus.Write8(addr, v)
	cpu.sbc(bus, addr)
	return 0
}

func (cpu *CPU) slo(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	cpu.C = v&0x80 != 0
	v <<= 1
	bus.Write8(addr, v)
	cpu.A |= v
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) rla(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	old := cpu.C
	cpu.C = v&0x80 != 0
	v <<= 1
	if old {
		v |= 0x01
	}
	bus.Write8(addr, v)
	cpu.A &= v
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) sre(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	cpu.C = v&0x01 != 0
	v >>= 1
	bus.Write8(addr, v)
	cpu.A ^= v
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) rra(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr)
	old := cpu.C
	cpu.C = v&0x01 != 0
	v >>= 1
	if old {
		v |= 0x80
	}
	bus.Write8(addr, v)
	cpu.adc(bus, addr)
	return 0
}

// --- Unstable illegal opcodes ---
//
// These are documented on real 6502/2A03 silicon but depend on bus
// capacitance/analog effects that vary between chip revisions. The "magic"
// constant ORed into A for ANE/LXA and the address+1 trick for
// SHA/SHX/SHY/TAS follow the common approximation used by mainstream NES
// emulators, not a single universal hardware truth.

func (cpu *CPU) anc(bus Bus, addr uint16) uint8 {
	cpu.A &= bus.Read8(addr)
	cpu.setZN(cpu.A)
	cpu.C = cpu.A&0x80 != 0
	return 0
}

func (cpu *CPU) alr(bus Bus, addr uint16) uint8 {
	cpu.A &= bus.Read8(addr)
	cpu.C = cpu.A&0x01 != 0
	cpu.A >>= 1
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) arr(bus Bus, addr uint16) uint8 {
	cpu.A &= bus.Read8(addr)
	carryIn := cpu.C
	cpu.A >>= 1
	if carryIn {
		cpu.A |= 0x80
	}
	cpu.setZN(cpu.A)
	cpu.C = cpu.A&0x40 != 0
	cpu.V = (cpu.A&0x40 != 0) != (cpu.A&0x20 != 0)
	return 0
}

const unstableMagic = 0xEE

func (cpu *CPU) ane(bus Bus, addr uint16) uint8 {
	cpu.A = (cpu.A | unstableMagic) & cpu.X & bus.Read8(addr)
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) lxa(bus Bus, addr uint16) uint8 {
	cpu.A = (cpu.A | unstableMagic) & bus.Read8(addr)
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
	return 0
}

func (cpu *CPU) las(bus Bus, addr uint16) uint8 {
	v := bus.Read8(addr) & cpu.SP
	cpu.A, cpu.X, cpu.SP = v, v, v
	cpu.setZN(v)
	return 0
}

func (cpu *CPU) sha(bus Bus, addr uint16) uint8 {
	high := uint8(addr>>8) + 1
	bus.Write8(addr, cpu.A&cpu.X&high)
	return 0
}

func (cpu *CPU) shx(bus Bus, addr uint16) uint8 {
	high := uint8(addr>>8) + 1
	bus.Write8(addr, cpu.X&high)
	return 0
}

func (cpu *CPU) shy(bus Bus, addr uint16) uint8 {
	high := uint8(addr>>8) + 1
	bus.Write8(addr, cpu.Y&high)
	return 0
}

func (cpu *CPU) tas(bus Bus, addr uint16) uint8 {
	cpu.SP = cpu.A & cpu.X
	high := uint8(addr>>8) + 1
	bus.Write8(addr, cpu.SP&high)
	return 0
}

// execute dispatches a decoded opcode and returns its extra cycle count.
func (cpu *CPU) execute(bus Bus, opcode uint8, addr uint16, pageCrossed bool) uint8 {
	switch opcode {
	case 0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1:
		return cpu.lda(bus, addr)
	case 0xA2, 0xA6, 0xB6, 0xAE, 0xBE:
		return cpu.ldx(bus, addr)
	case 0xA0, 0xA4, 0xB4, 0xAC, 0xBC:
		return cpu.ldy(bus, addr)
	case 0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91:
		return cpu.sta(bus, addr)
	case 0x86, 0x96, 0x8E:
		return cpu.stx(bus, addr)
	case 0x84, 0x94, 0x8C:
		return cpu.sty(bus, addr)

	case 0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71:
		return cpu.adc(bus, addr)
	case 0xE9, 0xEB, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1:
		return cpu.sbc(bus, addr)

	case 0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31:
		return cpu.and(bus, addr)
	case 0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11:
		return cpu.ora(bus, addr)
	case 0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51:
		return cpu.eor(bus, addr)

	case 0x0A:
		cpu.C = cpu.A&0x80 != 0
		cpu.A <<= 1
		cpu.setZN(cpu.A)
		return 0
	case 0x06, 0x16, 0x0E, 0x1E:
		return cpu.asl(bus, addr)
	case 0x4A:
		cpu.C = cpu.A&0x01 != 0
		cpu.A >>= 1
		cpu.setZN(cpu.A)
		return 0
	case 0x46, 0x56, 0x4E, 0x5E:
		return cpu.lsr(bus, addr)
	case 0x2A:
		old := cpu.C
		cpu.C = cpu.A&0x80 != 0
		cpu.A <<= 1
		if old {
			cpu.A |= 0x01
		}
		cpu.setZN(cpu.A)
		return 0
	case 0x26, 0x36, 0x2E, 0x3E:
		return cpu.rol(bus, addr)
	case 0x6A:
		old := cpu.C
		cpu.C = cpu.A&0x01 != 0
		cpu.A >>= 1
		if old {
			cpu.A |= 0x80
		}
		cpu.setZN(cpu.A)
		return 0
	case 0x66, 0x76, 0x6E, 0x7E:
		return cpu.ror(bus, addr)

	case 0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1:
		return cpu.cmp(bus, addr)
	case 0xE0, 0xE4, 0xEC:
		return cpu.cpx(bus, addr)
	case 0xC0, 0xC4, 0xCC:
		return cpu.cpy(bus, addr)

	case 0xE6, 0xF6, 0xEE, 0xFE:
		return cpu.inc(bus, addr)
	case 0xC6, 0xD6, 0xCE, 0xDE:
		return cpu.dec(bus, addr)
	case 0xE8:
		return cpu.inx(bus, addr)
	case 0xCA:
		return cpu.dex(bus, addr)
	case 0xC8:
		return cpu.iny(bus, addr)
	case 0x88:
		return cpu.dey(bus, addr)

	case 0xAA:
		return cpu.tax(bus, addr)
	case 0x8A:
		return cpu.txa(bus, addr)
	case 0xA8:
		return cpu.tay(bus, addr)
	case 0x98:
		return cpu.tya(bus, addr)
	case 0xBA:
		return cpu.tsx(bus, addr)
	case 0x9A:
		return cpu.txs(bus, addr)

	case 0x48:
		return cpu.pha(bus, addr)
	case 0x68:
		return cpu.pla(bus, addr)
	case 0x08:
		return cpu.php(bus, addr)
	case 0x28:
		return cpu.plp(bus, addr)

	case 0x18:
		return cpu.clc(bus, addr)
	case 0x38:
		return cpu.sec(bus, addr)
	case 0x58:
		return cpu.cli(bus, addr)
	case 0x78:
		return cpu.sei(bus, addr)
	case 0xB8:
		return cpu.clv(bus, addr)
	case 0xD8:
		return cpu.cld(bus, addr)
	case 0xF8:
		return cpu.sed(bus, addr)

	case 0x4C, 0x6C:
		return cpu.jmp(bus, addr)
	case 0x20:
		return cpu.jsr(bus, addr)
	case 0x60:
		return cpu.rts(bus, addr)
	case 0x40:
		return cpu.rti(bus, addr)

	case 0x90:
		return cpu.bcc(bus, addr, pageCrossed)
	case 0xB0:
		return cpu.bcs(bus, addr, pageCrossed)
	case 0xD0:
		return cpu.bne(bus, addr, pageCrossed)
	case 0xF0:
		return cpu.beq(bus, addr, pageCrossed)
	case 0x10:
		return cpu.bpl(bus, addr, pageCrossed)
	case 0x30:
		return cpu.bmi(bus, addr, pageCrossed)
	case 0x50:
		return cpu.bvc(bus, addr, pageCrossed)
	case 0x70:
		return cpu.bvs(bus, addr, pageCrossed)

	case 0x24, 0x2C:
		return cpu.bit(bus, addr)
	case 0x00:
		return cpu.brk(bus, addr)

	case 0xEA, 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA, 0x80, 0x82, 0x89, 0xC2, 0xE2,
		0x04, 0x44, 0x64, 0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4,
		0x0C, 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return cpu.nop(bus, addr)

	case 0xA3, 0xA7, 0xAF, 0xB3, 0xB7, 0xBF:
		return cpu.lax(bus, addr)
	case 0x83, 0x87, 0x8F, 0x97:
		return cpu.sax(bus, addr)
	case 0xC3, 0xC7, 0xCF, 0xD3, 0xD7, 0xDF, 0xDB:
		return cpu.dcp(bus, addr)
	case 0xE3, 0xE7, 0xEF, 0xF3, 0xF7, 0xFF, 0xFB:
		return cpu.isb(bus, addr)
	case 0x03, 0x07, 0x0F, 0x13, 0x17, 0x1F, 0x1B:
		return cpu.slo(bus, addr)
	case 0x23, 0x27, 0x2F, 0x33, 0x37, 0x3F, 0x3B:
		return cpu.rla(bus, addr)
	case 0x43, 0x47, 0x4F, 0x53, 0x57, 0x5F, 0x5B:
		return cpu.sre(bus, addr)
	case 0x63, 0x67, 0x6F, 0x73, 0x77, 0x7F, 0x7B:
		return cpu.rra(bus, addr)

	case 0x0B, 0x2B:
		return cpu.anc(bus, addr)
	case 0x4B:
		return cpu.alr(bus, addr)
	case 0x6B:
		return cpu.arr(bus, addr)
	case 0x8B:
		return cpu.ane(bus, addr)
	case 0xAB:
		return cpu.lxa(bus, addr)
	case 0xBB:
		return cpu.las(bus, addr)
	case 0x9F, 0x93:
		return cpu.sha(bus, addr)
	case 0x9E:
		return cpu.shx(bus, addr)
	case 0x9C:
		return cpu.shy(bus, addr)
	case 0x9B:
		return cpu.tas(bus, addr)

	default:
		return 0
	}
}

// initInstructions populates the 256-entry decode table.
func (cpu *CPU) initInstructions() {
	set := func(op uint8, name string, bytes, cycles uint8, mode AddressingMode) {
		cpu.instructions[op] = &Instruction{name, op, bytes, cycles, mode}
	}

	set(0xA9, "LDA", 2, 2, Immediate)
	set(0xA5, "LDA", 2, 3, ZeroPage)
	set(0xB5, "LDA", 2, 4, ZeroPageX)
	set(0xAD, "LDA", 3, 4, Absolute)
	set(0xBD, "LDA", 3, 4, AbsoluteX)
	set(0xB9, "LDA", 3, 4, AbsoluteY)
	set(0xA1, "LDA", 2, 6, IndexedIndirect)
	set(0xB1, "LDA", 2, 5, IndirectIndexed)

	set(0xA2, "LDX", 2, 2, Immediate)
	set(0xA6, "LDX", 2, 3, ZeroPage)
	set(0xB6, "LDX", 2, 4, ZeroPageY)
	set(0xAE, "LDX", 3, 4, Absolute)
	set(0xBE, "LDX", 3, 4, AbsoluteY)

	set(0xA0, "LDY", 2, 2, Immediate)
	set(0xA4, "LDY", 2, 3, ZeroPage)
	set(0xB4, "LDY", 2, 4, ZeroPageX)
	set(0xAC, "LDY", 3, 4, Absolute)
	set(0xBC, "LDY", 3, 4, AbsoluteX)

	set(0x85, "STA", 2, 3, ZeroPage)
	set(0x95, "STA", 2, 4, ZeroPageX)
	set(0x8D, "STA", 3, 4, Absolute)
	set(0x9D, "STA", 3, 5, AbsoluteX)
	set(0x99, "STA", 3, 5, AbsoluteY)
	set(0x81, "STA", 2, 6, IndexedIndirect)
	set(0x91, "STA", 2, 6, IndirectIndexed)

	set(0x86, "STX", 2, 3, ZeroPage)
	set(0x96, "STX", 2, 4, ZeroPageY)
	set(0x8E, "STX", 3, 4, Absolute)

	set(0x84, "STY", 2, 3, ZeroPage)
	set(0x94, "STY", 2, 4, ZeroPageX)
	set(0x8C, "STY", 3, 4, Absolute)

	set(0x69, "ADC", 2, 2, Immediate)
	set(0x65, "ADC", 2, 3, ZeroPage)
	set(0x75, "ADC", 2, 4, ZeroPageX)
	set(0x6D, "ADC", 3, 4, Absolute)
	set(0x7D, "ADC", 3, 4, AbsoluteX)
	set(0x79, "ADC", 3, 4, AbsoluteY)
	set(0x61, "ADC", 2, 6, IndexedIndirect)
	set(0x71, "ADC", 2, 5, IndirectIndexed)

	set(0xE9, "SBC", 2, 2, Immediate)
	set(0xE5, "SBC", 2, 3, ZeroPage)
	set(0xF5, "SBC", 2, 4, ZeroPageX)
	set(0xED, "SBC", 3, 4, Absolute)
	set(0xFD, "SBC", 3, 4, AbsoluteX)
	set(0xF9, "SBC", 3, 4, AbsoluteY)
	set(0xE1, "SBC", 2, 6, IndexedIndirect)
	set(0xF1, "SBC", 2, 5, IndirectIndexed)

	set(0x29, "AND", 2, 2, Immediate)
	set(0x25, "AND", 2, 3, ZeroPage)
	set(0x35, "AND", 2, 4, ZeroPageX)
	set(0x2D, "AND", 3, 4, Absolute)
	set(0x3D, "AND", 3, 4, AbsoluteX)
	set(0x39, "AND", 3, 4, AbsoluteY)
	set(0x21, "AND", 2, 6, IndexedIndirect)
	set(0x31, "AND", 2, 5, IndirectIndexed)

	set(0x09, "ORA", 2, 2, Immediate)
	set(0x05, "ORA", 2, 3, ZeroPage)
	set(0x15, "ORA", 2, 4, ZeroPageX)
	set(0x0D, "ORA", 3, 4, Absolute)
	set(0x1D, "ORA", 3, 4, AbsoluteX)
	set(0x19, "ORA", 3, 4, AbsoluteY)
	set(0x01, "ORA", 2, 6, IndexedIndirect)
	set(0x11, "ORA", 2, 5, IndirectIndexed)

	set(0x49, "EOR", 2, 2, Immediate)
	set(0x45, "EOR", 2, 3, ZeroPage)
	set(0x55, "EOR", 2, 4, ZeroPageX)
	set(0x4D, "EOR", 3, 4, Absolute)
	set(0x5D, "EOR", 3, 4, AbsoluteX)
	set(0x59, "EOR", 3, 4, AbsoluteY)
	set(0x41, "EOR", 2, 6, IndexedIndirect)
	set(0x51, "EOR", 2, 5, IndirectIndexed)

	set(0x0A, "ASL", 1, 2, Accumulator)
	set(0x06, "ASL", 2, 5, ZeroPage)
	set(0x16, "ASL", 2, 6, ZeroPageX)
	set(0x0E, "ASL", 3, 6, Absolute)
	set(0x1E, "ASL", 3, 7, AbsoluteX)

	set(0x4A, "LSR", 1, 2, Accumulator)
	set(0x46, "LSR", 2, 5, ZeroPage)
	set(0x56, "LSR", 2, 6, ZeroPageX)
	set(0x4E, "LSR", 3, 6, Absolute)
	set(0x5E, "LSR", 3, 7, AbsoluteX)

	set(0x2A, "ROL", 1, 2, Accumulator)
	set(0x26, "ROL", 2, 5, ZeroPage)
	set(0x36, "ROL", 2, 6, ZeroPageX)
	set(0x2E, "ROL", 3, 6, Absolute)
	set(0x3E, "ROL", 3, 7, AbsoluteX)

	set(0x6A, "ROR", 1, 2, Accumulator)
	set(0x66, "ROR", 2, 5, ZeroPage)
	set(0x76, "ROR", 2, 6, ZeroPageX)
	set(0x6E, "ROR", 3, 6, Absolute)
	set(0x7E, "ROR", 3, 7, AbsoluteX)

	set(0xC9, "CMP", 2, 2, Immediate)
	set(0xC5, "CMP", 2, 3, ZeroPage)
	set(0xD5, "CMP", 2, 4, ZeroPageX)
	set(0xCD, "CMP", 3, 4, Absolute)
	set(0xDD, "CMP", 3, 4, AbsoluteX)
	set(0xD9, "CMP", 3, 4, AbsoluteY)
	set(0xC1, "CMP", 2, 6, IndexedIndirect)
	set(0xD1, "CMP", 2, 5, IndirectIndexed)

	set(0xE0, "CPX", 2, 2, Immediate)
	set(0xE4, "CPX", 2, 3, ZeroPage)
	set(0xEC, "CPX", 3, 4, Absolute)

	set(0xC0, "CPY", 2, 2, Immediate)
	set(0xC4, "CPY", 2, 3, ZeroPage)
	set(0xCC, "CPY", 3, 4, Absolute)

	set(0xE6, "INC", 2, 5, ZeroPage)
	set(0xF6, "INC", 2, 6, ZeroPageX)
	set(0xEE, "INC", 3, 6, Absolute)
	set(0xFE, "INC", 3, 7, AbsoluteX)

	set(0xC6, "DEC", 2, 5, ZeroPage)
	set(0xD6, "DEC", 2, 6, ZeroPageX)
	set(0xCE, "DEC", 3, 6, Absolute)
	set(0xDE, "DEC", 3, 7, AbsoluteX)

	set(0xE8, "INX", 1, 2, Implied)
	set(0xCA, "DEX", 1, 2, Implied)
	set(0xC8, "INY", 1, 2, Implied)
	set(0x88, "DEY", 1, 2, Implied)

	set(0xAA, "TAX", 1, 2, Implied)
	set(0x8A, "TXA", 1, 2, Implied)
	set(0xA8, "TAY", 1, 2, Implied)
	set(0x98, "TYA", 1, 2, Implied)
	set(0xBA, "TSX", 1, 2, Implied)
	set(0x9A, "TXS", 1, 2, Implied)

	set(0x48, "PHA", 1, 3, Implied)
	set(0x68, "PLA", 1, 4, Implied)
	set(0x08, "PHP", 1, 3, Implied)
	set(0x28, "PLP", 1, 4, Implied)

	set(0x18, "CLC", 1, 2, Implied)
	set(0x38, "SEC", 1, 2, Implied)
	set(0x58, "CLI", 1, 2, Implied)
	set(0x78, "SEI", 1, 2, Implied)
	set(0xB8, "CLV", 1, 2, Implied)
	set(0xD8, "CLD", 1, 2, Implied)
	set(0xF8, "SED", 1, 2, Implied)

	set(0x4C, "JMP", 3, 3, Absolute)
	set(0x6C, "JMP", 3, 5, Indirect)
	set(0x20, "JSR", 3, 6, Absolute)
	set(0x60, "RTS", 1, 6, Implied)
	set(0x40, "RTI", 1, 6, Implied)

	set(0x90, "BCC", 2, 2, Relative)
	set(0xB0, "BCS", 2, 2, Relative)
	set(0xD0, "BNE", 2, 2, Relative)
	set(0xF0, "BEQ", 2, 2, Relative)
	set(0x10, "BPL", 2, 2, Relative)
	set(0x30, "BMI", 2, 2, Relative)
	set(0x50, "BVC", 2, 2, Relative)
	set(0x70, "BVS", 2, 2, Relative)

	set(0x24, "BIT", 2, 3, ZeroPage)
	set(0x2C, "BIT", 3, 4, Absolute)
	set(0xEA, "NOP", 1, 2, Implied)
	set(0x00, "BRK", 1, 7, Implied)

	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(op, "NOP", 1, 2, Implied)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(op, "NOP", 2, 2, Immediate)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		set(op, "NOP", 2, 3, ZeroPage)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(op, "NOP", 2, 4, ZeroPageX)
	}
	set(0x0C, "NOP", 3, 4, Absolute)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, "NOP", 3, 4, AbsoluteX)
	}

	set(0xA7, "LAX", 2, 3, ZeroPage)
	set(0xB7, "LAX", 2, 4, ZeroPageY)
	set(0xAF, "LAX", 3, 4, Absolute)
	set(0xBF, "LAX", 3, 4, AbsoluteY)
	set(0xA3, "LAX", 2, 6, IndexedIndirect)
	set(0xB3, "LAX", 2, 5, IndirectIndexed)

	set(0x87, "SAX", 2, 3, ZeroPage)
	set(0x97, "SAX", 2, 4, ZeroPageY)
	set(0x8F, "SAX", 3, 4, Absolute)
	set(0x83, "SAX", 2, 6, IndexedIndirect)

	set(0xEB, "SBC", 2, 2, Immediate)

	set(0xC7, "DCP", 2, 5, ZeroPage)
	set(0xD7, "DCP", 2, 6, ZeroPageX)
	set(0xCF, "DCP", 3, 6, Absolute)
	set(0xDF, "DCP", 3, 7, AbsoluteX)
	set(0xDB, "DCP", 3, 7, AbsoluteY)
	set(0xC3, "DCP", 2, 8, IndexedIndirect)
	set(0xD3, "DCP", 2, 8, IndirectIndexed)

	set(0xE7, "ISB", 2, 5, ZeroPage)
	set(0xF7, "ISB", 2, 6, ZeroPageX)
	set(0xEF, "ISB", 3, 6, Absolute)
	set(0xFF, "ISB", 3, 7, AbsoluteX)
	set(0xFB, "ISB", 3, 7, AbsoluteY)
	set(0xE3, "ISB", 2, 8, IndexedIndirect)
	set(0xF3, "ISB", 2, 8, IndirectIndexed)

	set(0x07, "SLO", 2, 5, ZeroPage)
	set(0x17, "SLO", 2, 6, ZeroPageX)
	set(0x0F, "SLO", 3, 6, Absolute)
	set(0x1F, "SLO", 3, 7, AbsoluteX)
	set(0x1B, "SLO", 3, 7, AbsoluteY)
	set(0x03, "SLO", 2, 8, IndexedIndirect)
	set(0x13, "SLO", 2, 8, IndirectIndexed)

	set(0x27, "RLA", 2, 5, ZeroPage)
	set(0x37, "RLA", 2, 6, ZeroPageX)
	set(0x2F, "RLA", 3, 6, Absolute)
	set(0x3F, "RLA", 3, 7, AbsoluteX)
	set(0x3B, "RLA", 3, 7, AbsoluteY)
	set(0x23, "RLA", 2, 8, IndexedIndirect)
	set(0x33, "RLA", 2, 8, IndirectIndexed)

	set(0x47, "SRE", 2, 5, ZeroPage)
	set(0x57, "SRE", 2, 6, ZeroPageX)
	set(0x4F, "SRE", 3, 6, Absolute)
	set(0x5F, "SRE", 3, 7, AbsoluteX)
	set(0x5B, "SRE", 3, 7, AbsoluteY)
	set(0x43, "SRE", 2, 8, IndexedIndirect)
	set(0x53, "SRE", 2, 8, IndirectIndexed)

	set(0x67, "RRA", 2, 5, ZeroPage)
	set(0x77, "RRA", 2, 6, ZeroPageX)
	set(0x6F, "RRA", 3, 6, Absolute)
	set(0x7F, "RRA", 3, 7, AbsoluteX)
	set(0x7B, "RRA", 3, 7, AbsoluteY)
	set(0x63, "RRA", 2, 8, IndexedIndirect)
	set(0x73, "RRA", 2, 8, IndirectIndexed)

	set(0x0B, "ANC", 2, 2, Immediate)
	set(0x2B, "ANC", 2, 2, Immediate)
	set(0x4B, "ALR", 2, 2, Immediate)
	set(0x6B, "ARR", 2, 2, Immediate)
	set(0x8B, "ANE", 2, 2, Immediate)
	set(0xAB, "LXA", 2, 2, Immediate)
	set(0xBB, "LAS", 3, 4, AbsoluteY)
	set(0x9F, "SHA", 3, 5, AbsoluteY)
	set(0x93, "SHA", 2, 6, IndirectIndexed)
	set(0x9E, "SHX", 3, 5, AbsoluteY)
	set(0x9C, "SHY", 3, 5, AbsoluteX)
	set(0x9B, "TAS", 3, 5, AbsoluteY)
}
