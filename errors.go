package cc1101

import "errors"

var (
	// ErrInit wraps a failure to acquire the SPI bus or a GDO line.
	ErrInit = errors.New("cc1101: initialization failed")
	// ErrUnknownRegister is returned when a symbolic name is outside the
	// fixed register, status and strobe sets.
	ErrUnknownRegister = errors.New("cc1101: unknown register")
	// ErrUnknownBand is returned for a band with no preset.
	ErrUnknownBand = errors.New("cc1101: unknown band")
	// ErrFrequencyOutOfRange is returned for carrier frequencies outside
	// the three supported bands. No register is written.
	ErrFrequencyOutOfRange = errors.New("cc1101: frequency out of range")
	// ErrBaudOutOfRange is returned when no exponent in 0..15 yields a
	// mantissa that fits its 8-bit field.
	ErrBaudOutOfRange = errors.New("cc1101: baud rate out of range")
	// ErrDeviationOutOfRange is returned when no exponent in 0..3 yields
	// a mantissa that fits its 3-bit field.
	ErrDeviationOutOfRange = errors.New("cc1101: deviation out of range")
	// ErrTxTimeout is returned when a transmit did not signal completion
	// or the chip did not drain back to idle within budget.
	ErrTxTimeout = errors.New("cc1101: transmit timed out")
	// ErrPacketTooLong is returned for payloads that do not fit in the
	// length-prefixed FIFO frame.
	ErrPacketTooLong = errors.New("cc1101: packet too long")
)
