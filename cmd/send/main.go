package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Wielebny666/cc1101"
)

var band = flag.String("band", "433", "ISM band preset: 315, 433, 868 or 915")
var freq = flag.Float64("freq", 0, "Carrier frequency in MHz (0 keeps the band preset)")
var baud = flag.Float64("baud", 38.4, "Data rate in kBaud")
var deviation = flag.Float64("deviation", 20, "FSK deviation in kHz")
var power = flag.Int("power", 10, "Output power in dBm")
var syncWord = flag.Uint("sync", 0xd391, "16-bit sync word")
var message = flag.String("message", "", "Payload to transmit")
var repeat = flag.Int("repeat", 3, "Number of times to transmit the payload")

var bands = map[string]cc1101.Band{
	"315": cc1101.Band315,
	"433": cc1101.Band433,
	"868": cc1101.Band868,
	"915": cc1101.Band915,
}

func main() {
	flag.Parse()

	preset, ok := bands[*band]
	if !ok {
		log.Fatalf("Unknown band: %s", *band)
	}
	if *message == "" {
		log.Fatal("Nothing to send; set -message")
	}

	radio, err := cc1101.Setup()
	if err != nil {
		log.Fatalf("Failed to set up radio: %v", err)
	}
	defer radio.Close()

	if err := radio.SetBand(preset); err != nil {
		log.Fatalf("Failed to select band: %v", err)
	}
	if *freq != 0 {
		if err := radio.SetCarrierFrequency(*freq); err != nil {
			log.Fatalf("Failed to tune: %v", err)
		}
	}
	if err := radio.SetBaudRate(*baud); err != nil {
		log.Fatalf("Failed to set baud rate: %v", err)
	}
	if err := radio.SetDeviation(*deviation); err != nil {
		log.Fatalf("Failed to set deviation: %v", err)
	}
	if err := radio.SetOutputPower(*power); err != nil {
		log.Fatalf("Failed to set output power: %v", err)
	}
	if err := radio.SetSyncWord(uint16(*syncWord)); err != nil {
		log.Fatalf("Failed to set sync word: %v", err)
	}

	for i := 0; i < *repeat; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := radio.Send(ctx, []byte(*message))
		cancel()
		if err != nil {
			log.Fatalf("Send %d/%d failed: %v", i+1, *repeat, err)
		}
		log.Printf("Sent %d/%d (%d bytes)", i+1, *repeat, len(*message))
	}
}
