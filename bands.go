package cc1101

import (
	"fmt"
	"time"
)

// Band selects one of the supported ISM bands.
type Band int

const (
	BandNone Band = iota
	Band315
	Band433
	Band868
	Band915
)

func (b Band) String() string {
	switch b {
	case BandNone:
		return "disabled"
	case Band315:
		return "315MHz"
	case Band433:
		return "433MHz"
	case Band868:
		return "868MHz"
	case Band915:
		return "915MHz"
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

// BandPreset couples a carrier frequency word with the PA ramp curve
// tuned for it. The two must always be written together; programming
// one without the other leaves the chip in an inconsistent RF state.
type BandPreset struct {
	Freq2, Freq1, Freq0 byte
	PATable             [8]byte
}

var bandPresets = map[Band]BandPreset{
	BandNone: {
		Freq2: 0x00, Freq1: 0x00, Freq0: 0x00,
		PATable: [8]byte{0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	},
	Band315: {
		Freq2: 0x0c, Freq1: 0x1d, Freq0: 0x89,
		PATable: [8]byte{0x17, 0x1d, 0x26, 0x69, 0x51, 0x86, 0xcc, 0xc3},
	},
	Band433: {
		Freq2: 0x10, Freq1: 0xa7, Freq0: 0x62,
		PATable: [8]byte{0x6c, 0x1c, 0x06, 0x3a, 0x51, 0x85, 0xc8, 0xc0},
	},
	Band868: {
		Freq2: 0x21, Freq1: 0x65, Freq0: 0x6a,
		PATable: [8]byte{0x03, 0x17, 0x1d, 0x26, 0x50, 0x86, 0xcd, 0xc0},
	},
	Band915: {
		Freq2: 0x23, Freq1: 0x31, Freq0: 0x3b,
		PATable: [8]byte{0x0b, 0x26, 0x2d, 0x15, 0x50, 0x83, 0xc3, 0xc0},
	},
}

// SetBand programs a band preset: the PA ramp as one burst write
// followed by the three frequency registers, then the settle delay.
// An unrecognised band is rejected before any bus traffic.
func (c *CC1101) SetBand(band Band) error {
	preset, ok := bandPresets[band]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownBand, band)
	}

	c.config["FREQ2"] = preset.Freq2
	c.config["FREQ1"] = preset.Freq1
	c.config["FREQ0"] = preset.Freq0

	if err := c.WriteBurst(PATABLE, preset.PATable[:]); err != nil {
		return err
	}
	if err := c.WriteSingleByte(FREQ2, preset.Freq2); err != nil {
		return err
	}
	if err := c.WriteSingleByte(FREQ1, preset.Freq1); err != nil {
		return err
	}
	if err := c.WriteSingleByte(FREQ0, preset.Freq0); err != nil {
		return err
	}
	c.settle()
	return nil
}

func (c *CC1101) settle() {
	time.Sleep(settleDelay)
}
