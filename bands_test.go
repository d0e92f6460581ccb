package cc1101

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Wielebny666/cc1101/mocks"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSetBand(t *testing.T) {
	Convey("A preset is exactly one PA burst plus the frequency triple", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		gomock.InOrder(
			bus.EXPECT().TransferAndReceiveData([]byte{PATABLE | WRITE_BURST, 0x03, 0x17, 0x1d, 0x26, 0x50, 0x86, 0xcd, 0xc0}).Return(nil),
			bus.EXPECT().TransferAndReceiveData([]byte{FREQ2, 0x21}).Return(nil),
			bus.EXPECT().TransferAndReceiveData([]byte{FREQ1, 0x65}).Return(nil),
			bus.EXPECT().TransferAndReceiveData([]byte{FREQ0, 0x6a}).Return(nil),
		)

		So(radio.SetBand(Band868), ShouldBeNil)
		So(radio.config["FREQ2"], ShouldEqual, 0x21)
		So(radio.config["FREQ1"], ShouldEqual, 0x65)
		So(radio.config["FREQ0"], ShouldEqual, 0x6a)
	}))
	Convey("An unknown band is rejected before any bus traffic", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		err := radio.SetBand(Band(42))
		So(errors.Is(err, ErrUnknownBand), ShouldBeTrue)
	}))
}

func TestBandPresets(t *testing.T) {
	Convey("Every preset carries a full ramp curve", t, func() {
		for band, preset := range bandPresets {
			So(len(preset.PATable), ShouldEqual, 8)
			So(band.String(), ShouldNotStartWith, "Band(")
		}
	})
}
