package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Wielebny666/cc1101"
)

func main() {
	flag.Parse()

	radio, err := cc1101.Setup()
	if err != nil {
		log.Fatalf("Failed to set up radio: %v", err)
	}
	defer radio.Close()

	partnum, version, err := radio.PartInfo()
	if err != nil {
		log.Fatalf("Failed to read part info: %v", err)
	}
	fmt.Printf("Partnum:   %#02x\n", partnum)
	fmt.Printf("Version:   %#02x\n", version)

	mhz, err := radio.CarrierFrequency()
	if err != nil {
		log.Fatalf("Failed to read frequency: %v", err)
	}
	fmt.Printf("Carrier:   %.4f MHz (approximate)\n", mhz)

	kbaud, err := radio.BaudRate()
	if err != nil {
		log.Fatalf("Failed to read baud rate: %v", err)
	}
	fmt.Printf("Baud rate: %.3f kBaud\n", kbaud)

	khz, err := radio.Deviation()
	if err != nil {
		log.Fatalf("Failed to read deviation: %v", err)
	}
	fmt.Printf("Deviation: %.3f kHz\n", khz)

	state, err := radio.MachineState()
	if err != nil {
		log.Fatalf("Failed to read machine state: %v", err)
	}
	fmt.Printf("State:     %s (%#02x)\n", cc1101.StateName(state), state)

	rssi, err := radio.ReadRSSI()
	if err != nil {
		log.Fatalf("Failed to read RSSI: %v", err)
	}
	fmt.Printf("RSSI:      %ddBm\n", rssi)

	lqi, err := radio.ReadLQI()
	if err != nil {
		log.Fatalf("Failed to read LQI: %v", err)
	}
	fmt.Printf("LQI:       %d (CRC OK: %d)\n", lqi&0x7f, lqi>>7)

	tx, err := radio.TxBytes()
	if err != nil {
		log.Fatalf("Failed to read TXBYTES: %v", err)
	}
	rx, err := radio.RxBytes()
	if err != nil {
		log.Fatalf("Failed to read RXBYTES: %v", err)
	}
	fmt.Printf("FIFO:      %d TX / %d RX bytes\n", tx, rx)
}
