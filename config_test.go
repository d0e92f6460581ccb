package cc1101

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Wielebny666/cc1101/mocks"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteDefaultRegisters(t *testing.T) {
	Convey("One single write per entry, frequency triple in order", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		gomock.InOrder(
			bus.EXPECT().TransferAndReceiveData([]byte{FREQ2, 0x10}).Return(nil),
			bus.EXPECT().TransferAndReceiveData([]byte{FREQ1, 0xa7}).Return(nil),
			bus.EXPECT().TransferAndReceiveData([]byte{FREQ0, 0x62}).Return(nil),
		)
		bus.EXPECT().TransferAndReceiveData(gomock.Any()).DoAndReturn(func(data []byte) error {
			So(len(data), ShouldEqual, 2)
			So(data[0]&0xc0, ShouldEqual, 0)
			return nil
		}).Times(len(radio.config) - 3)

		So(radio.WriteDefaultRegisters(), ShouldBeNil)
	}))
	Convey("An unknown entry rejects the whole set before any write", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		radio.config["BOGUS"] = 0x01

		err := radio.WriteDefaultRegisters()
		So(errors.Is(err, ErrUnknownRegister), ShouldBeTrue)
	}))
}

func TestConfigure(t *testing.T) {
	Convey("Configure writes through and records the value", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{MDMCFG2, 0x30}).Return(nil)

		So(radio.Configure("MDMCFG2", 0x30), ShouldBeNil)
		So(radio.config["MDMCFG2"], ShouldEqual, 0x30)
	}))
	Convey("Unknown names fail fast", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		err := radio.Configure("MDMCFG5", 0x00)
		So(errors.Is(err, ErrUnknownRegister), ShouldBeTrue)
	}))
}
