package cc1101

// Read-only accessors over the status registers. None of these have
// caller-visible side effects beyond the underlying bus read.

// PartInfo returns the chip part number and silicon version, cached
// after the first successful read.
func (c *CC1101) PartInfo() (partnum, version byte, err error) {
	if c.partRead {
		return c.partnum, c.version, nil
	}
	partnum, err = c.ReadStatus(PARTNUM)
	if err != nil {
		return 0, 0, err
	}
	version, err = c.ReadStatus(VERSION)
	if err != nil {
		return 0, 0, err
	}
	c.partnum, c.version = partnum, version
	c.partRead = true
	return partnum, version, nil
}

// ReadRSSI returns the received signal strength in dBm, converted per
// the datasheet.
func (c *CC1101) ReadRSSI() (int, error) {
	raw, err := c.ReadStatus(RSSI)
	if err != nil {
		return 0, err
	}
	return convertRSSI(int(raw)), nil
}

// Copied from TI datasheet.
func convertRSSI(rssi int) int {
	if rssi >= 128 {
		return (rssi-256)/2 - RSSI_OFFSET
	}
	return rssi/2 - RSSI_OFFSET
}

// ReadLQI returns the raw link quality estimate; the top bit is the
// CRC-OK flag of the last packet.
func (c *CC1101) ReadLQI() (byte, error) {
	return c.ReadStatus(LQI)
}

// TxBytes returns the number of bytes pending in the TX FIFO. The top
// bit flags an underflow.
func (c *CC1101) TxBytes() (byte, error) {
	raw, err := c.ReadStatus(TXBYTES)
	if err != nil {
		return 0, err
	}
	return raw & BYTES_IN_TXFIFO, nil
}

// RxBytes returns the number of bytes waiting in the RX FIFO. The top
// bit flags an overflow.
func (c *CC1101) RxBytes() (byte, error) {
	raw, err := c.ReadStatus(RXBYTES)
	if err != nil {
		return 0, err
	}
	return raw & BYTES_IN_RXFIFO, nil
}

// MachineState returns the radio control state, masked to its low 5
// bits.
func (c *CC1101) MachineState() (byte, error) {
	raw, err := c.ReadStatus(MARCSTATE)
	if err != nil {
		return 0, err
	}
	return raw & MARCSTATE_MASK, nil
}

// StateName names a masked machine state code for diagnostics.
func StateName(state byte) string {
	switch state {
	case StateSleep:
		return "SLEEP"
	case StateIdle:
		return "IDLE"
	case StateXOff:
		return "XOFF"
	case StateRx:
		return "RX"
	case StateTx:
		return "TX"
	case StateTxFIFOUnderrun:
		return "TXFIFO_UNDERFLOW"
	}
	return "UNKNOWN"
}
