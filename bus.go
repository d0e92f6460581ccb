package cc1101

// The CC1101 SPI protocol is header byte + payload: bits 7:6 of the
// header select the access mode, bits 5:0 carry the register address.
// Every transaction here is a single duplex transfer so the chip never
// sees a partial frame.

// Strobe sends a single command opcode and returns the chip status byte
// clocked out alongside it.
func (c *CC1101) Strobe(opcode byte) (byte, error) {
	if c.bus == nil {
		return 0, nil
	}
	data := []byte{opcode, 0x00}
	err := c.bus.TransferAndReceiveData(data)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadSingleByte reads one configuration register.
func (c *CC1101) ReadSingleByte(address byte) (byte, error) {
	if c.bus == nil {
		return 0, nil
	}
	data := []byte{address&ADDRESS_MASK | READ_SINGLE_BYTE, 0x00}
	err := c.bus.TransferAndReceiveData(data)
	if err != nil {
		return 0x00, err
	}
	return data[1], nil
}

// ReadStatus reads one status register. Status registers share their
// address range with the strobes and are only reachable with the burst
// bit set in the header.
func (c *CC1101) ReadStatus(address byte) (byte, error) {
	if c.bus == nil {
		return 0, nil
	}
	data := []byte{address&ADDRESS_MASK | READ_BURST, 0x00}
	err := c.bus.TransferAndReceiveData(data)
	if err != nil {
		return 0x00, err
	}
	return data[1], nil
}

// ReadBurst reads num bytes starting at address; the chip
// auto-increments after the header.
func (c *CC1101) ReadBurst(address byte, num int) ([]byte, error) {
	if c.bus == nil {
		return make([]byte, num), nil
	}
	buf := make([]byte, num+1)
	buf[0] = address&ADDRESS_MASK | READ_BURST
	err := c.bus.TransferAndReceiveData(buf)
	if err != nil {
		return nil, err
	}
	return buf[1:], nil
}

// WriteSingleByte writes one configuration register.
func (c *CC1101) WriteSingleByte(address byte, in byte) error {
	if c.bus == nil {
		return nil
	}
	data := []byte{address&ADDRESS_MASK | WRITE_SINGLE_BYTE, in}
	return c.bus.TransferAndReceiveData(data)
}

// WriteBurst writes data contiguously starting at address.
func (c *CC1101) WriteBurst(address byte, data []byte) error {
	if c.bus == nil {
		return nil
	}
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, address&ADDRESS_MASK|WRITE_BURST)
	buf = append(buf, data...)
	return c.bus.TransferAndReceiveData(buf)
}

// modifyRegister rewrites only the bits selected by mask, preserving
// the rest of the register.
func (c *CC1101) modifyRegister(address byte, mask byte, value byte) error {
	current, err := c.ReadSingleByte(address)
	if err != nil {
		return err
	}
	next := current&^mask | value&mask
	return c.WriteSingleByte(address, next)
}
