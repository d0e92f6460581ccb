package cc1101

import (
	"context"
	"fmt"
	"log"
	"time"
)

const (
	// Largest payload once the length prefix is accounted for.
	maxPayload = 254

	// Budget for the GDO0 completion edge after STX.
	txCompleteTimeout = 500 * time.Millisecond
	// Budget and interval for the drain back to IDLE.
	drainTimeout  = 200 * time.Millisecond
	drainInterval = 10 * time.Millisecond
)

// Machine states reported by MARCSTATE (low 5 bits).
const (
	StateSleep          = 0x00
	StateIdle           = 0x01
	StateXOff           = 0x02
	StateRx             = 0x0d
	StateTx             = 0x13
	StateTxFIFOUnderrun = 0x16
)

// Send loads payload into the TX FIFO as a length-prefixed frame,
// triggers transmission and sequences the chip back to idle, flushing
// the TX FIFO afterwards. Completion is signalled by the GDO0 falling
// edge; a bounded poll of the machine state backs it up. The result
// reflects whether the drain back to idle finished within budget.
func (c *CC1101) Send(ctx context.Context, payload []byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if len(payload) > maxPayload {
		return fmt.Errorf("%w: %d bytes", ErrPacketTooLong, len(payload))
	}

	// Drop any completion left over from an earlier cycle.
	select {
	case <-c.txDone:
	default:
	}

	frame := make([]byte, 0, len(payload)+1)
	frame = append(frame, byte(len(payload)))
	frame = append(frame, payload...)
	if err := c.WriteBurst(TXFIFO, frame); err != nil {
		return err
	}

	c.SetLED(true)
	defer c.SetLED(false)

	if err := c.SetTx(); err != nil {
		return err
	}

	if err := c.awaitCompletion(ctx); err != nil {
		// Leave the chip in a defined state even on a failed send.
		c.SetIdle()
		c.Strobe(SFTX)
		return err
	}

	if err := c.SetIdle(); err != nil {
		return err
	}
	if err := c.drainToIdle(ctx); err != nil {
		return err
	}
	_, err := c.Strobe(SFTX)
	return err
}

// awaitCompletion blocks until the GDO0 edge callback hands over a
// completion, the machine state shows the transmission already ended,
// the budget runs out or ctx is cancelled.
func (c *CC1101) awaitCompletion(ctx context.Context) error {
	deadline := time.NewTimer(txCompleteTimeout)
	defer deadline.Stop()
	poll := time.NewTicker(drainInterval)
	defer poll.Stop()

	for {
		select {
		case <-c.txDone:
			return nil
		case <-poll.C:
			// Fallback for a missed edge: once the chip has left TX the
			// packet is out (or the FIFO underran).
			state, err := c.MachineState()
			if err != nil {
				return err
			}
			if state == StateTxFIFOUnderrun {
				return fmt.Errorf("%w: TX FIFO underrun", ErrTxTimeout)
			}
			if state != StateTx {
				log.Printf("Transmit completion inferred from machine state %#02x", state)
				return nil
			}
		case <-deadline.C:
			return fmt.Errorf("%w: no completion signal after %v", ErrTxTimeout, txCompleteTimeout)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// drainToIdle polls the machine state until the chip reports IDLE.
func (c *CC1101) drainToIdle(ctx context.Context) error {
	deadline := time.NewTimer(drainTimeout)
	defer deadline.Stop()
	poll := time.NewTicker(drainInterval)
	defer poll.Stop()

	for {
		state, err := c.MachineState()
		if err != nil {
			return err
		}
		if state == StateIdle {
			return nil
		}
		select {
		case <-poll.C:
		case <-deadline.C:
			return fmt.Errorf("%w: stuck in state %#02x", ErrTxTimeout, state)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
