// Package cc1101 drives a TI CC1101 sub-GHz transceiver over SPI and
// sequences its transmit path. Receive-side decoding is out of scope;
// the raw FIFO and the register file are the whole surface.
package cc1101

//go:generate mockgen -destination mocks/mocks.go -package mocks github.com/kidoman/embd SPIBus,DigitalPin

import (
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/rpi"
)

var gdo0pin = flag.Int("gdo0", 24, "GPIO pin connected to CC1101 GDO0 (BCM numbering)")
var ledpin = flag.Int("led", 25, "GPIO pin driving the activity LED (BCM numbering)")

const (
	// Fixed wait after any frequency change for the synthesizer to lock.
	settleDelay = 50 * time.Millisecond

	expectedPartnum = 0x00
	expectedVersion = 0x14
)

type CC1101 struct {
	bus embd.SPIBus
	// Configured to assert when the sync word has been transmitted and
	// deassert at the end of the packet; the falling edge signals
	// transmit completion. See IOCFG0.
	gdo0 embd.DigitalPin
	// Activity LED, toggled around transmissions. Not part of the chip
	// signal path.
	led  embd.DigitalPin
	lock sync.Mutex

	// One-slot handoff from the GDO0 edge callback to Send. Drained at
	// the start of every transmit so a stale edge cannot satisfy the
	// next one.
	txDone chan struct{}

	config ConfigurationSet

	// Cached after the first read; the part never changes at runtime.
	partnum, version byte
	partRead         bool
}

// Setup acquires the SPI bus and both GPIO lines, resets the chip,
// verifies its identity and programs the default configuration.
// Acquisition failures are fatal and surfaced to the caller; once Setup
// has succeeded, register traffic on a later bus failure degrades to
// no-ops instead.
func Setup() (*CC1101, error) {
	if err := embd.InitSPI(); err != nil {
		return nil, fmt.Errorf("%w: SPI: %v", ErrInit, err)
	}
	if err := embd.InitGPIO(); err != nil {
		return nil, fmt.Errorf("%w: GPIO: %v", ErrInit, err)
	}

	gdo0, err := embd.NewDigitalPin(*gdo0pin)
	if err != nil {
		return nil, fmt.Errorf("%w: GDO0 pin: %v", ErrInit, err)
	}
	if err := gdo0.SetDirection(embd.In); err != nil {
		return nil, fmt.Errorf("%w: GDO0 direction: %v", ErrInit, err)
	}

	led, err := embd.NewDigitalPin(*ledpin)
	if err != nil {
		return nil, fmt.Errorf("%w: LED pin: %v", ErrInit, err)
	}
	if err := led.SetDirection(embd.Out); err != nil {
		return nil, fmt.Errorf("%w: LED direction: %v", ErrInit, err)
	}

	bus := embd.NewSPIBus(embd.SPIMode0, 0, 50000, 8, 0)

	c := &CC1101{
		bus:    bus,
		gdo0:   gdo0,
		led:    led,
		txDone: make(chan struct{}, 1),
		config: DefaultConfiguration(),
	}
	c.Reset()
	if err := c.SelfTest(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	if err := c.WriteDefaultRegisters(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	err = gdo0.Watch(embd.EdgeFalling, func(pin embd.DigitalPin) {
		c.signalTxDone()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GDO0 watch: %v", ErrInit, err)
	}

	return c, nil
}

func (c *CC1101) signalTxDone() {
	select {
	case c.txDone <- struct{}{}:
	default:
		// A completion is already pending; Send consumes one per cycle.
	}
}

func (c *CC1101) Close() {
	c.Strobe(SRES)
	if c.bus != nil {
		c.bus.Close()
	}
	if c.gdo0 != nil {
		c.gdo0.Close()
	}
	if c.led != nil {
		c.led.Close()
	}
	embd.CloseGPIO()
	embd.CloseSPI()
}

// Reset issues the SRES strobe.
func (c *CC1101) Reset() error {
	_, err := c.Strobe(SRES)
	return err
}

// SelfTest checks the part number and version against the values the
// datasheet documents for the CC1101.
func (c *CC1101) SelfTest() error {
	partnum, version, err := c.PartInfo()
	if err != nil {
		return err
	}
	log.Printf("Partnum: %#02x Version: %#02x", partnum, version)
	if partnum != expectedPartnum || version != expectedVersion {
		return fmt.Errorf("self test failed: partnum %#02x version %#02x", partnum, version)
	}
	return nil
}

// SetSyncWord programs the two sync word registers.
func (c *CC1101) SetSyncWord(word uint16) error {
	err := c.WriteSingleByte(SYNC1, byte(word>>8))
	if err != nil {
		return err
	}
	return c.WriteSingleByte(SYNC0, byte(word&0xff))
}

func (c *CC1101) SetState(state byte) error {
	_, err := c.Strobe(state)
	// Worst case state change is ~1ms for IDLE -> RX with calibration.
	time.Sleep(time.Millisecond)
	return err
}

func (c *CC1101) SetTx() error {
	return c.SetState(STX)
}

func (c *CC1101) SetIdle() error {
	return c.SetState(SIDLE)
}

// SetLED drives the activity LED line.
func (c *CC1101) SetLED(on bool) error {
	if c.led == nil {
		return nil
	}
	level := embd.Low
	if on {
		level = embd.High
	}
	return c.led.Write(level)
}
