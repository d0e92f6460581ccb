package cc1101

import "sort"

// ConfigurationSet is the pending register image the chip is programmed
// to at startup and whenever a band is switched. It is never read back
// from hardware.
type ConfigurationSet map[string]byte

// writeOrder fixes the sequence WriteDefaultRegisters uses. Ordering
// only matters for the FREQ2/FREQ1/FREQ0 triple, which must stay
// contiguous and descending.
var writeOrder = []string{
	"FSCTRL1", "FSCTRL0",
	"FREQ2", "FREQ1", "FREQ0",
	"MDMCFG4", "MDMCFG3", "MDMCFG2", "MDMCFG1", "MDMCFG0",
	"CHANNR", "DEVIATN",
	"FREND1", "FREND0",
	"MCSM0", "FOCCFG", "BSCFG",
	"AGCCTRL2", "AGCCTRL1", "AGCCTRL0",
	"FSCAL3", "FSCAL2", "FSCAL1", "FSCAL0",
	"FSTEST", "TEST2", "TEST1", "TEST0",
	"IOCFG2", "IOCFG0",
	"FIFOTHR", "PKTCTRL1", "PKTCTRL0",
	"ADDR", "PKTLEN",
}

// DefaultConfiguration returns the startup baseline: 433.92 MHz, GFSK,
// variable length packets with CRC and appended status bytes.
func DefaultConfiguration() ConfigurationSet {
	return ConfigurationSet{
		"FSCTRL1": 0x06,
		"FSCTRL0": 0x00,

		"FREQ2": 0x10,
		"FREQ1": 0xa7,
		"FREQ0": 0x62,

		"MDMCFG4": 0xca,
		"MDMCFG3": 0x83,
		"MDMCFG2": 0x93,
		"MDMCFG1": 0x22,
		"MDMCFG0": 0xf8,

		"CHANNR":  0x00,
		"DEVIATN": 0x35,

		"FREND1": 0x56,
		"FREND0": 0x10,

		"MCSM0":  0x18,
		"FOCCFG": 0x16,
		"BSCFG":  0x6c,

		"AGCCTRL2": 0x43,
		"AGCCTRL1": 0x40,
		"AGCCTRL0": 0x91,

		"FSCAL3": 0xe9,
		"FSCAL2": 0x2a,
		"FSCAL1": 0x00,
		"FSCAL0": 0x1f,

		"FSTEST": 0x59,
		"TEST2":  0x81,
		"TEST1":  0x35,
		"TEST0":  0x09,

		// GDO0 asserts on sync word sent, deasserts at end of packet.
		"IOCFG2": 0x29,
		"IOCFG0": 0x06,

		"FIFOTHR": 0x47,
		// Two status bytes appended to payload: RSSI LQI and CRC OK.
		"PKTCTRL1": 0x04,
		// No address check, data whitening off, CRC enable, variable length packets.
		"PKTCTRL0": 0x05,

		"ADDR":   0x00,
		"PKTLEN": 0xff,
	}
}

// WriteDefaultRegisters programs every entry of the configuration set
// with one single write each. The whole set is resolved against the
// register map first so an unknown name rejects the operation before
// any bus traffic.
func (c *CC1101) WriteDefaultRegisters() error {
	for name := range c.config {
		if _, err := ConfigAddress(name); err != nil {
			return err
		}
	}
	written := make(map[string]bool, len(c.config))
	for _, name := range writeOrder {
		value, ok := c.config[name]
		if !ok {
			continue
		}
		addr, _ := ConfigAddress(name)
		if err := c.WriteSingleByte(addr, value); err != nil {
			return err
		}
		written[name] = true
	}
	// Entries outside the canonical order carry no ordering constraint;
	// flush them in a stable sequence anyway.
	rest := make([]string, 0, len(c.config))
	for name := range c.config {
		if !written[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		addr, _ := ConfigAddress(name)
		if err := c.WriteSingleByte(addr, c.config[name]); err != nil {
			return err
		}
	}
	return nil
}

// Configure replaces one entry of the pending configuration and writes
// it through.
func (c *CC1101) Configure(name string, value byte) error {
	addr, err := ConfigAddress(name)
	if err != nil {
		return err
	}
	c.config[name] = value
	return c.WriteSingleByte(addr, value)
}
