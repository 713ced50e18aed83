package cpu

import "github.com/mrsharp/gbcore/gb/bit"

// Registers holds the Sharp LR35902's eight 8-bit registers (addressable
// in pairs as AF/BC/DE/HL) plus the stack pointer and program counter.
// F's low nibble is always zero; only bits 7-4 (Z N H C) are meaningful.
type Registers struct {
	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16
}

func (r *Registers) bc() uint16 { return bit.Combine(r.b, r.c) }
func (r *Registers) de() uint16 { return bit.Combine(r.d, r.e) }
func (r *Registers) hl() uint16 { return bit.Combine(r.h, r.l) }
func (r *Registers) af() uint16 { return bit.Combine(r.a, r.f&0xF0) }

func (r *Registers) setBC(v uint16) { r.b, r.c = bit.High(v), bit.Low(v) }
func (r *Registers) setDE(v uint16) { r.d, r.e = bit.High(v), bit.Low(v) }
func (r *Registers) setHL(v uint16) { r.h, r.l = bit.High(v), bit.Low(v) }
func (r *Registers) setAF(v uint16) { r.a, r.f = bit.High(v), bit.Low(v)&0xF0 }
