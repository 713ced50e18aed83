package memory

// Header field offsets within the ROM, per the standard DMG cartridge
// header layout (Pan Docs "The Cartridge Header").
const (
	titleAddress          = 0x134
	titleLength           = 16
	cartridgeTypeAddress  = 0x147
	romSizeAddress        = 0x148
	ramSizeAddress        = 0x149
	headerChecksumAddress = 0x14D
	globalChecksumAddress = 0x14E
)

// MBCType identifies the bank-controller family a cartridge uses.
type MBCType int

const (
	NoMBCType MBCType = iota
	MBC1Type
	MBC2Type
	MBC3Type
	MBC5Type
	MBCUnknownType
)

// Cartridge holds ROM data and the header fields needed to pick an MBC.
type Cartridge struct {
	data         []byte
	Title        string
	mbcType      MBCType
	romBanks     int
	ramBankCount uint8
	hasBattery   bool
	hasRTC       bool
	hasRumble    bool
}

// NewCartridge creates an empty cartridge with no ROM loaded, useful for
// booting the emulator without a game inserted.
func NewCartridge() *Cartridge {
	return &Cartridge{
		data:    make([]byte, 0x8000),
		Title:   "(No Cartridge)",
		mbcType: NoMBCType,
	}
}

// NewCartridgeWithData parses a ROM image's header and returns the
// resulting Cartridge. Data shorter than a minimal header is treated as
// an empty cartridge rather than panicking, since bus reads must never
// fail.
func NewCartridgeWithData(data []byte) *Cartridge {
	if len(data) <= globalChecksumAddress+1 {
		return NewCartridge()
	}

	cart := &Cartridge{
		data:         data,
		Title:        cleanTitle(data[titleAddress : titleAddress+titleLength]),
		romBanks:     romBankCount(data[romSizeAddress]),
		ramBankCount: ramBankCount(data[ramSizeAddress]),
	}
	cart.mbcType, cart.hasBattery, cart.hasRTC, cart.hasRumble = classifyCartType(data[cartridgeTypeAddress])

	return cart
}

// classifyCartType maps the header's cartridge-type byte to an MBC
// family and its optional hardware features.
func classifyCartType(b byte) (t MBCType, battery, rtc, rumble bool) {
	switch b {
	case 0x00:
		return NoMBCType, false, false, false
	case 0x01, 0x02:
		return MBC1Type, false, false, false
	case 0x03:
		return MBC1Type, true, false, false
	case 0x05:
		return MBC2Type, false, false, false
	case 0x06:
		return MBC2Type, true, false, false
	case 0x0F, 0x10:
		return MBC3Type, true, true, false
	case 0x11, 0x12:
		return MBC3Type, false, false, false
	case 0x13:
		return MBC3Type, true, false, false
	case 0x19, 0x1A:
		return MBC5Type, false, false, false
	case 0x1B:
		return MBC5Type, true, false, false
	case 0x1C, 0x1D:
		return MBC5Type, false, false, true
	case 0x1E:
		return MBC5Type, true, false, true
	default:
		return MBCUnknownType, false, false, false
	}
}

// headerChecksum recomputes the header checksum the same way boot ROMs do,
// mostly useful for validating test fixtures.
func (c *Cartridge) headerChecksum() uint8 {
	var sum uint8
	for i := 0x134; i <= 0x14C; i++ {
		sum = sum - c.data[i] - 1
	}
	return sum
}

// StoredHeaderChecksum returns the checksum byte embedded in the header.
func (c *Cartridge) StoredHeaderChecksum() uint8 {
	if len(c.data) <= headerChecksumAddress {
		return 0
	}
	return c.data[headerChecksumAddress]
}

// ChecksumValid reports whether the embedded header checksum matches the
// recomputed one.
func (c *Cartridge) ChecksumValid() bool {
	return c.headerChecksum() == c.StoredHeaderChecksum()
}
