package cc1101

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Wielebny666/cc1101/mocks"

	. "github.com/smartystreets/goconvey/convey"
)

func WithMocks(t *testing.T, f func(bus *mocks.MockSPIBus, radio *CC1101)) func() {
	return func() {
		mock := gomock.NewController(t)
		defer mock.Finish()
		bus := mocks.NewMockSPIBus(mock)
		radio := &CC1101{
			bus:    bus,
			txDone: make(chan struct{}, 1),
			config: DefaultConfiguration(),
		}
		f(bus, radio)
	}
}

func TestSelfTest(t *testing.T) {
	Convey("Matching part", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{PARTNUM | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x00})
		bus.EXPECT().TransferAndReceiveData([]byte{VERSION | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x14})

		So(radio.SelfTest(), ShouldBeNil)
	}))
	Convey("Wrong part", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{PARTNUM | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x00})
		bus.EXPECT().TransferAndReceiveData([]byte{VERSION | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x04})

		So(radio.SelfTest(), ShouldNotBeNil)
	}))
}

func TestStrobe(t *testing.T) {
	Convey("Strobe", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{SNOP, 0x00}).Return(nil).SetArg(0, []byte{0x0f, 0x00})

		ret, err := radio.Strobe(SNOP)
		So(err, ShouldBeNil)
		So(ret, ShouldEqual, 0x0f)
	}))
}

func TestReset(t *testing.T) {
	Convey("Reset", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{SRES, 0x00}).Return(nil)

		So(radio.Reset(), ShouldBeNil)
	}))
}

func TestSetState(t *testing.T) {
	Convey("TX", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{STX, 0x00}).Return(nil)
		So(radio.SetTx(), ShouldBeNil)
	}))
	Convey("IDLE", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{SIDLE, 0x00}).Return(nil)
		So(radio.SetIdle(), ShouldBeNil)
	}))
}

func TestSetSyncWord(t *testing.T) {
	Convey("SetSyncWord", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		gomock.InOrder(
			bus.EXPECT().TransferAndReceiveData([]byte{SYNC1, 0xd3}).Return(nil),
			bus.EXPECT().TransferAndReceiveData([]byte{SYNC0, 0x91}).Return(nil),
		)
		So(radio.SetSyncWord(0xd391), ShouldBeNil)
	}))
}
