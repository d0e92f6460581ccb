package cc1101

import "fmt"

const (
	// Read/write flags. OR'd into the 6-bit register address by the bus
	// layer; never stored in the address tables below.
	WRITE_SINGLE_BYTE = 0x00
	WRITE_BURST       = 0x40
	READ_SINGLE_BYTE  = 0x80
	READ_BURST        = 0xc0

	ADDRESS_MASK = 0x3f

	// The TX and RX FIFOs alias one address, disambiguated by transfer
	// direction. The PA ramp table sits just below it.
	PATABLE = 0x3e
	RXFIFO  = 0x3f
	TXFIFO  = 0x3f

	BYTES_IN_RXFIFO = 0x7f
	BYTES_IN_TXFIFO = 0x7f
	OVERFLOW        = 0x80

	RSSI_OFFSET = 74

	// Bitmask for the machine state in MARCSTATE.
	MARCSTATE_MASK = 0x1f

	// Strobes
	SRES    = 0x30 // Reset
	SFSTXON = 0x31 // Enable and calibrate frequency synthesizer
	SXOFF   = 0x32 // Turn off crystal oscillator
	SCAL    = 0x33 // Calibrate frequency synthesizer
	SRX     = 0x34 // Set receive mode
	STX     = 0x35 // Set transmit mode
	SIDLE   = 0x36
	SWOR    = 0x38 // Start wake-on-radio
	SPWD    = 0x39 // Power down
	SFRX    = 0x3a // Flush RX FIFO buffer
	SFTX    = 0x3b // Flush TX FIFO buffer
	SWORRST = 0x3c // Reset wake-on-radio timer
	SNOP    = 0x3d

	// Status Registers. Same numeric range as the strobes; the chip
	// disambiguates by the burst bit in the header.
	PARTNUM        = 0x30
	VERSION        = 0x31
	FREQEST        = 0x32
	LQI            = 0x33
	RSSI           = 0x34
	MARCSTATE      = 0x35
	WORTIME1       = 0x36
	WORTIME0       = 0x37
	PKTSTATUS      = 0x38
	VCO_VC_DAC     = 0x39
	TXBYTES        = 0x3a
	RXBYTES        = 0x3b
	RCCTRL1_STATUS = 0x3c
	RCCTRL0_STATUS = 0x3d

	// Config Registers
	IOCFG2 = 0x00
	IOCFG1 = 0x01
	IOCFG0 = 0x02

	FIFOTHR = 0x03

	SYNC1 = 0x04
	SYNC0 = 0x05

	PKTLEN   = 0x06
	PKTCTRL1 = 0x07
	PKTCTRL0 = 0x08

	ADDR = 0x09

	CHANNR  = 0x0a
	FSCTRL1 = 0x0b
	FSCTRL0 = 0x0c

	FREQ2 = 0x0d
	FREQ1 = 0x0e
	FREQ0 = 0x0f

	MDMCFG4 = 0x10
	MDMCFG3 = 0x11
	MDMCFG2 = 0x12
	MDMCFG1 = 0x13
	MDMCFG0 = 0x14

	DEVIATN = 0x15

	MCSM2 = 0x16
	MCSM1 = 0x17
	MCSM0 = 0x18

	FOCCFG = 0x19
	BSCFG  = 0x1a

	AGCCTRL2 = 0x1b
	AGCCTRL1 = 0x1c
	AGCCTRL0 = 0x1d

	WOREVT1 = 0x1e
	WOREVT0 = 0x1f
	WORCTRL = 0x20

	FREND1 = 0x21
	FREND0 = 0x22

	FSCAL3 = 0x23
	FSCAL2 = 0x24
	FSCAL1 = 0x25
	FSCAL0 = 0x26

	RCCTRL1 = 0x27
	RCCTRL0 = 0x28

	FSTEST  = 0x29
	PTEST   = 0x2a
	AGCTEST = 0x2b
	TEST2   = 0x2c
	TEST1   = 0x2d
	TEST0   = 0x2e
)

// RegisterKind distinguishes the address spaces that alias the same
// 6-bit range and are told apart only by the header mode bits.
type RegisterKind int

const (
	KindConfig RegisterKind = iota
	KindStatus
	KindStrobe
	KindFIFO
)

var configRegisters = map[string]byte{
	"IOCFG2":   IOCFG2,
	"IOCFG1":   IOCFG1,
	"IOCFG0":   IOCFG0,
	"FIFOTHR":  FIFOTHR,
	"SYNC1":    SYNC1,
	"SYNC0":    SYNC0,
	"PKTLEN":   PKTLEN,
	"PKTCTRL1": PKTCTRL1,
	"PKTCTRL0": PKTCTRL0,
	"ADDR":     ADDR,
	"CHANNR":   CHANNR,
	"FSCTRL1":  FSCTRL1,
	"FSCTRL0":  FSCTRL0,
	"FREQ2":    FREQ2,
	"FREQ1":    FREQ1,
	"FREQ0":    FREQ0,
	"MDMCFG4":  MDMCFG4,
	"MDMCFG3":  MDMCFG3,
	"MDMCFG2":  MDMCFG2,
	"MDMCFG1":  MDMCFG1,
	"MDMCFG0":  MDMCFG0,
	"DEVIATN":  DEVIATN,
	"MCSM2":    MCSM2,
	"MCSM1":    MCSM1,
	"MCSM0":    MCSM0,
	"FOCCFG":   FOCCFG,
	"BSCFG":    BSCFG,
	"AGCCTRL2": AGCCTRL2,
	"AGCCTRL1": AGCCTRL1,
	"AGCCTRL0": AGCCTRL0,
	"WOREVT1":  WOREVT1,
	"WOREVT0":  WOREVT0,
	"WORCTRL":  WORCTRL,
	"FREND1":   FREND1,
	"FREND0":   FREND0,
	"FSCAL3":   FSCAL3,
	"FSCAL2":   FSCAL2,
	"FSCAL1":   FSCAL1,
	"FSCAL0":   FSCAL0,
	"RCCTRL1":  RCCTRL1,
	"RCCTRL0":  RCCTRL0,
	"FSTEST":   FSTEST,
	"PTEST":    PTEST,
	"AGCTEST":  AGCTEST,
	"TEST2":    TEST2,
	"TEST1":    TEST1,
	"TEST0":    TEST0,
}

var statusRegisters = map[string]byte{
	"PARTNUM":        PARTNUM,
	"VERSION":        VERSION,
	"FREQEST":        FREQEST,
	"LQI":            LQI,
	"RSSI":           RSSI,
	"MARCSTATE":      MARCSTATE,
	"WORTIME1":       WORTIME1,
	"WORTIME0":       WORTIME0,
	"PKTSTATUS":      PKTSTATUS,
	"VCO_VC_DAC":     VCO_VC_DAC,
	"TXBYTES":        TXBYTES,
	"RXBYTES":        RXBYTES,
	"RCCTRL1_STATUS": RCCTRL1_STATUS,
	"RCCTRL0_STATUS": RCCTRL0_STATUS,
}

var strobes = map[string]byte{
	"SRES":    SRES,
	"SFSTXON": SFSTXON,
	"SXOFF":   SXOFF,
	"SCAL":    SCAL,
	"SRX":     SRX,
	"STX":     STX,
	"SIDLE":   SIDLE,
	"SWOR":    SWOR,
	"SPWD":    SPWD,
	"SFRX":    SFRX,
	"SFTX":    SFTX,
	"SWORRST": SWORRST,
	"SNOP":    SNOP,
}

// Register describes one slot of the chip's address map. Config,
// status and strobe entries alias the same 6-bit range; Kind records
// which header mode reaches them.
type Register struct {
	Name    string
	Address byte
	Kind    RegisterKind
}

// LookupRegister resolves a symbolic name across all address spaces,
// preferring the configuration space where names collide.
func LookupRegister(name string) (Register, error) {
	if addr, ok := configRegisters[name]; ok {
		return Register{Name: name, Address: addr, Kind: KindConfig}, nil
	}
	if addr, ok := statusRegisters[name]; ok {
		return Register{Name: name, Address: addr, Kind: KindStatus}, nil
	}
	if op, ok := strobes[name]; ok {
		return Register{Name: name, Address: op, Kind: KindStrobe}, nil
	}
	switch name {
	case "PATABLE":
		return Register{Name: name, Address: PATABLE, Kind: KindFIFO}, nil
	case "FIFO":
		return Register{Name: name, Address: TXFIFO, Kind: KindFIFO}, nil
	}
	return Register{}, fmt.Errorf("%w: %s", ErrUnknownRegister, name)
}

// ConfigAddress resolves a symbolic configuration register name to its
// 6-bit address.
func ConfigAddress(name string) (byte, error) {
	addr, ok := configRegisters[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	return addr, nil
}

// StatusAddress resolves a symbolic status register name to its 6-bit
// address. Status registers must be read with the burst mode bits set.
func StatusAddress(name string) (byte, error) {
	addr, ok := statusRegisters[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	return addr, nil
}

// StrobeOpcode resolves a symbolic command strobe name to its opcode.
func StrobeOpcode(name string) (byte, error) {
	op, ok := strobes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	return op, nil
}
