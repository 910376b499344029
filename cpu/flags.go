package cpu

// Flag is a single machine status flag bit.
type Flag uint8

const (
	FLAG_CARRY = Flag(0x01) // Last ALU result overflowed the signed 64-bit range.
	FLAG_ZERO  = Flag(0x02) // Last ALU result was zero.
	FLAG_JUMP  = Flag(0x10) // Jump pending; consumed by the next control advance.
)

// Flags is the machine status flag set. CARRY and ZERO are rewritten by
// every ALU operation and untouched by anything else; JUMP is one-shot.
type Flags uint8

// Set sets a flag.
func (fl *Flags) Set(flag Flag) {
	*fl |= Flags(flag)
}

// Clear clears a flag.
func (fl *Flags) Clear(flag Flag) {
	*fl &^= Flags(flag)
}

// SetTo sets or clears a flag based on value.
func (fl *Flags) SetTo(flag Flag, value bool) {
	if value {
		fl.Set(flag)
	} else {
		fl.Clear(flag)
	}
}

// Has returns true if the flag is set.
func (fl Flags) Has(flag Flag) bool {
	return (fl & Flags(flag)) != 0
}
