package cc1101

import (
	"fmt"
	"math"
)

// Reference crystal, fixed at 26 MHz on every supported module.
const (
	xoscMHz = 26.0
	xoscHz  = 26000000.0
)

// The three frequency ranges the synthesizer can lock to, in MHz.
var frequencyBands = [][2]float64{
	{300, 348},
	{387, 464},
	{779, 928},
}

func validFrequency(mhz float64) bool {
	for _, band := range frequencyBands {
		if mhz >= band[0] && mhz <= band[1] {
			return true
		}
	}
	return false
}

// frequencyWord encodes a carrier in MHz as the FREQ2/FREQ1/FREQ0
// triple: the integer multiple of the crystal, then a base-255
// expansion of the fractional remainder.
func frequencyWord(mhz float64) (byte, byte, byte) {
	f2 := math.Floor(mhz / xoscMHz)
	r1 := math.Mod(mhz, xoscMHz)
	f1 := math.Floor(r1 * 255 / xoscMHz)
	r2 := math.Mod(r1*255, xoscMHz)
	f0 := math.Floor(r2 * 255 / xoscMHz)
	return byte(f2), byte(f1), byte(f0)
}

// SetCarrierFrequency tunes the synthesizer to mhz. Frequencies outside
// the three supported bands are rejected before any register write.
// Blocks for the settle delay after the triple is programmed.
func (c *CC1101) SetCarrierFrequency(mhz float64) error {
	if !validFrequency(mhz) {
		return fmt.Errorf("%w: %.4f MHz", ErrFrequencyOutOfRange, mhz)
	}
	f2, f1, f0 := frequencyWord(mhz)

	c.config["FREQ2"] = f2
	c.config["FREQ1"] = f1
	c.config["FREQ0"] = f0

	if err := c.WriteSingleByte(FREQ2, f2); err != nil {
		return err
	}
	if err := c.WriteSingleByte(FREQ1, f1); err != nil {
		return err
	}
	if err := c.WriteSingleByte(FREQ0, f0); err != nil {
		return err
	}
	c.settle()
	return nil
}

// CarrierFrequency reconstructs the tuned carrier in MHz from the
// frequency registers. The reconstruction is lossy relative to the
// hardware word; treat it as diagnostic only.
func (c *CC1101) CarrierFrequency() (float64, error) {
	f2, err := c.ReadSingleByte(FREQ2)
	if err != nil {
		return 0, err
	}
	f1, err := c.ReadSingleByte(FREQ1)
	if err != nil {
		return 0, err
	}
	f0, err := c.ReadSingleByte(FREQ0)
	if err != nil {
		return 0, err
	}
	mhz := float64(f2)*xoscMHz + float64(f1)/255*xoscMHz + float64(f0)/(255*255)*xoscMHz
	return math.Round(mhz*10000) / 10000, nil
}

// baudSynth searches exponents 0..15 for the first whose 8-bit mantissa
// reproduces the requested rate through R = (256+M)*2^E*fxosc/2^28.
func baudSynth(kbaud float64) (exponent byte, mantissa byte, err error) {
	baud := kbaud * 1000
	for e := 0; e <= 15; e++ {
		m := math.Round(baud*(1<<28)/(xoscHz*float64(uint32(1)<<e))) - 256
		if m < 0 {
			return 0, 0, fmt.Errorf("%w: %.3f kBaud", ErrBaudOutOfRange, kbaud)
		}
		if m <= 255 {
			return byte(e), byte(m), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %.3f kBaud", ErrBaudOutOfRange, kbaud)
}

// SetBaudRate programs the data rate in kBaud. The exponent lands in
// the low nibble of MDMCFG4, preserving the bandwidth bits in the high
// nibble; the mantissa takes all of MDMCFG3.
func (c *CC1101) SetBaudRate(kbaud float64) error {
	e, m, err := baudSynth(kbaud)
	if err != nil {
		return err
	}
	if err := c.modifyRegister(MDMCFG4, 0x0f, e); err != nil {
		return err
	}
	return c.WriteSingleByte(MDMCFG3, m)
}

// BaudRate reads back the configured data rate in kBaud.
func (c *CC1101) BaudRate() (float64, error) {
	cfg4, err := c.ReadSingleByte(MDMCFG4)
	if err != nil {
		return 0, err
	}
	cfg3, err := c.ReadSingleByte(MDMCFG3)
	if err != nil {
		return 0, err
	}
	e := cfg4 & 0x0f
	baud := (256 + float64(cfg3)) * float64(uint32(1)<<e) * xoscHz / (1 << 28)
	return baud / 1000, nil
}

// deviationSynth searches exponents 0..3 for the first whose 3-bit
// mantissa reproduces the requested deviation through
// f = (8+M)*2^E*fxosc/2^17. A negative mantissa clamps to zero.
func deviationSynth(khz float64) (exponent byte, mantissa byte, err error) {
	hz := khz * 1000
	for e := 0; e <= 3; e++ {
		m := math.Round(hz*(1<<17)/(xoscHz*float64(uint32(1)<<e))) - 8
		if m < 0 {
			m = 0
		}
		if m <= 7 {
			return byte(e), byte(m), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %.3f kHz", ErrDeviationOutOfRange, khz)
}

// SetDeviation programs the FSK frequency deviation in kHz. The
// exponent and mantissa land in DEVIATN bits 6:4 and 2:0; the reserved
// bits 7 and 3 are preserved.
func (c *CC1101) SetDeviation(khz float64) error {
	e, m, err := deviationSynth(khz)
	if err != nil {
		return err
	}
	return c.modifyRegister(DEVIATN, 0x77, e<<4|m)
}

// Deviation reads back the configured deviation in kHz.
func (c *CC1101) Deviation() (float64, error) {
	reg, err := c.ReadSingleByte(DEVIATN)
	if err != nil {
		return 0, err
	}
	e := reg >> 4 & 0x07
	m := reg & 0x07
	hz := (8 + float64(m)) * float64(uint32(1)<<e) * xoscHz / (1 << 17)
	return hz / 1000, nil
}

// paIndex maps a requested output power in dBm onto the 3-bit PATABLE
// index through the datasheet thresholds.
func paIndex(dbm int) byte {
	steps := []struct {
		max   int
		index byte
	}{
		{-30, 0x00},
		{-20, 0x01},
		{-15, 0x02},
		{-10, 0x03},
		{0, 0x04},
		{5, 0x05},
		{7, 0x06},
	}
	for _, s := range steps {
		if dbm <= s.max {
			return s.index
		}
	}
	return 0x07
}

// SetOutputPower selects the PA ramp entry for the requested power in
// dBm, preserving the upper bits of FREND0.
func (c *CC1101) SetOutputPower(dbm int) error {
	return c.modifyRegister(FREND0, 0x07, paIndex(dbm))
}
