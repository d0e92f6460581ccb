package cc1101

import (
	"testing"

	"github.com/Wielebny666/cc1101/mocks"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPartInfoCached(t *testing.T) {
	Convey("The part registers are read exactly once", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{PARTNUM | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x00})
		bus.EXPECT().TransferAndReceiveData([]byte{VERSION | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x14})

		partnum, version, err := radio.PartInfo()
		So(err, ShouldBeNil)
		So(partnum, ShouldEqual, 0x00)
		So(version, ShouldEqual, 0x14)

		partnum, version, err = radio.PartInfo()
		So(err, ShouldBeNil)
		So(partnum, ShouldEqual, 0x00)
		So(version, ShouldEqual, 0x14)
	}))
}

func TestConvertRSSI(t *testing.T) {
	Convey("Datasheet conversion", t, func() {
		So(convertRSSI(0), ShouldEqual, -74)
		So(convertRSSI(50), ShouldEqual, -49)
		So(convertRSSI(0x80), ShouldEqual, -138)
		So(convertRSSI(0xff), ShouldEqual, -74)
	})
}

func TestMachineState(t *testing.T) {
	Convey("MARCSTATE is masked to its low 5 bits", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{MARCSTATE | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x93})

		state, err := radio.MachineState()
		So(err, ShouldBeNil)
		So(state, ShouldEqual, StateTx)
	}))
}

func TestFifoCounts(t *testing.T) {
	Convey("Overflow and underflow flags are stripped", t, WithMocks(t, func(bus *mocks.MockSPIBus, radio *CC1101) {
		bus.EXPECT().TransferAndReceiveData([]byte{TXBYTES | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x85})
		bus.EXPECT().TransferAndReceiveData([]byte{RXBYTES | READ_BURST, 0x00}).Return(nil).SetArg(0, []byte{0x00, 0x81})

		tx, err := radio.TxBytes()
		So(err, ShouldBeNil)
		So(tx, ShouldEqual, 5)

		rx, err := radio.RxBytes()
		So(err, ShouldBeNil)
		So(rx, ShouldEqual, 1)
	}))
}

func TestStateName(t *testing.T) {
	Convey("Known states have names", t, func() {
		So(StateName(StateIdle), ShouldEqual, "IDLE")
		So(StateName(StateTx), ShouldEqual, "TX")
		So(StateName(0x1f), ShouldEqual, "UNKNOWN")
	})
}
