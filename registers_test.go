package cc1101

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegisterLookup(t *testing.T) {
	Convey("Known names resolve", t, func() {
		addr, err := ConfigAddress("FREQ2")
		So(err, ShouldBeNil)
		So(addr, ShouldEqual, FREQ2)

		addr, err = StatusAddress("MARCSTATE")
		So(err, ShouldBeNil)
		So(addr, ShouldEqual, MARCSTATE)

		op, err := StrobeOpcode("SFTX")
		So(err, ShouldBeNil)
		So(op, ShouldEqual, SFTX)
	})
	Convey("LookupRegister reports the address space", t, func() {
		reg, err := LookupRegister("FREQ2")
		So(err, ShouldBeNil)
		So(reg.Kind, ShouldEqual, KindConfig)

		reg, err = LookupRegister("MARCSTATE")
		So(err, ShouldBeNil)
		So(reg.Kind, ShouldEqual, KindStatus)

		reg, err = LookupRegister("STX")
		So(err, ShouldBeNil)
		So(reg.Kind, ShouldEqual, KindStrobe)

		reg, err = LookupRegister("FIFO")
		So(err, ShouldBeNil)
		So(reg.Kind, ShouldEqual, KindFIFO)
		So(reg.Address, ShouldEqual, TXFIFO)

		_, err = LookupRegister("PLL")
		So(errors.Is(err, ErrUnknownRegister), ShouldBeTrue)
	})
	Convey("Unknown names are rejected", t, func() {
		_, err := ConfigAddress("FREQ3")
		So(errors.Is(err, ErrUnknownRegister), ShouldBeTrue)

		_, err = StatusAddress("IOCFG2")
		So(errors.Is(err, ErrUnknownRegister), ShouldBeTrue)

		_, err = StrobeOpcode("SRX2")
		So(errors.Is(err, ErrUnknownRegister), ShouldBeTrue)
	})
}

func TestRegisterMapInvariants(t *testing.T) {
	Convey("Full register sets are present", t, func() {
		So(len(configRegisters), ShouldEqual, 47)
		So(len(statusRegisters), ShouldEqual, 14)
		So(len(strobes), ShouldEqual, 13)
	})
	Convey("Stored addresses never carry mode bits", t, func() {
		for name, addr := range configRegisters {
			So(addr&^byte(ADDRESS_MASK), ShouldEqual, 0)
			So(name, ShouldNotBeEmpty)
		}
		for _, addr := range statusRegisters {
			So(addr&^byte(ADDRESS_MASK), ShouldEqual, 0)
		}
		for _, op := range strobes {
			So(op, ShouldBeBetweenOrEqual, 0x30, 0x3d)
		}
	})
}
