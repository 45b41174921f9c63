package offer

import (
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDerivation(t *testing.T) {
	Convey("Given two token accounts", t, func() {
		give, receive := bartertest.NewAddress(), bartertest.NewAddress()

		Convey("The offer address is stable", func() {
			a, abump, err := DeriveOfferAddress(give, 20, receive, 50)
			So(err, ShouldBeNil)
			b, bbump, err := DeriveOfferAddress(give, 20, receive, 50)
			So(err, ShouldBeNil)
			So(a, ShouldResemble, b)
			So(abump, ShouldEqual, bbump)
			So(barter.IsOnCurve(a), ShouldBeFalse)

			Convey("and depends on every term", func() {
				swapped, _, err := DeriveOfferAddress(receive, 50, give, 20)
				So(err, ShouldBeNil)
				So(swapped, ShouldNotResemble, a)

				other, _, err := DeriveOfferAddress(give, 21, receive, 50)
				So(err, ShouldBeNil)
				So(other, ShouldNotResemble, a)
			})

			Convey("and re-derives from its bump", func() {
				seeds := append(offerSeeds(give, 20, receive, 50), []byte{abump})
				addr, err := barter.CreateProgramAddress(ProgramID, seeds...)
				So(err, ShouldBeNil)
				So(addr, ShouldResemble, a)
			})
		})

		Convey("The vault ignores the amounts", func() {
			v, _, err := DeriveVaultAddress(give, receive)
			So(err, ShouldBeNil)
			o, _, err := DeriveOfferAddress(give, 20, receive, 50)
			So(err, ShouldBeNil)
			So(v, ShouldNotResemble, o)

			reversed, _, err := DeriveVaultAddress(receive, give)
			So(err, ShouldBeNil)
			So(reversed, ShouldNotResemble, v)
		})

		Convey("The deriver remembers results", func() {
			d, err := NewDeriver(8)
			So(err, ShouldBeNil)

			want, bump, err := DeriveOfferAddress(give, 20, receive, 50)
			So(err, ShouldBeNil)
			for i := 0; i < 2; i++ {
				got, err := d.Offer(give, 20, receive, 50)
				So(err, ShouldBeNil)
				So(got.Address, ShouldResemble, want)
				So(got.Bump, ShouldEqual, bump)
			}
			So(d.cache.Len(), ShouldEqual, 1)

			vault, vbump, err := DeriveVaultAddress(give, receive)
			So(err, ShouldBeNil)
			got, err := d.Vault(give, receive)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, Derivation{Address: vault, Bump: vbump})
			So(d.cache.Len(), ShouldEqual, 2)
		})

		Convey("A deriver needs a positive size", func() {
			_, err := NewDeriver(0)
			So(err, ShouldNotBeNil)
		})
	})
}
