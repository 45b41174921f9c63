package barter

import (
	"crypto/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/crypto/ed25519"
)

func TestCreateProgramAddressVectors(t *testing.T) {
	seedKey := MustParseAddress("SeedPubey1111111111111111111111111111111111")
	program := MustParseAddress("BPFLoader1111111111111111111111111111111111")

	cases := map[string]struct {
		seeds [][]byte
		want  string
	}{
		"empty and one byte seeds": {
			seeds: [][]byte{{}, {1}},
			want:  "3gF2KMe9KiC6FNVBmfg9i267aMPvK37FewCip4eGBFcT",
		},
		"unicode seed": {
			seeds: [][]byte{[]byte("☉")},
			want:  "7ytmC1nT1xY4RfxCV2ZgyA7UakC93do5ZdyhdF3EtPj7",
		},
		"two word seeds": {
			seeds: [][]byte{[]byte("Talking"), []byte("Squirrels")},
			want:  "HwRVBufQ4haG5XSgpspwKtNd3PC9GM9m1196uJW36vds",
		},
		"public key seed": {
			seeds: [][]byte{seedKey},
			want:  "GUs5qLUfsEHkcMB9T38vjr18ypEhRuNWiePW2LoK4E3K",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			addr, err := CreateProgramAddress(program, tc.seeds...)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got := addr.String(); got != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestProgramDerivation(t *testing.T) {
	Convey("Given a program id", t, func() {
		program := NewProgramID("escrow")

		Convey("Seed limits are enforced", func() {
			_, err := CreateProgramAddress(program, make([]byte, MaxSeedLength))
			So(err, ShouldBeNil)

			_, err = CreateProgramAddress(program, make([]byte, MaxSeedLength+1))
			So(ErrInvalidSeeds.Is(err), ShouldBeTrue)

			_, err = CreateProgramAddress(program, make([][]byte, MaxSeeds+1)...)
			So(ErrInvalidSeeds.Is(err), ShouldBeTrue)

			_, _, err = FindProgramAddress(program, make([][]byte, MaxSeeds)...)
			So(ErrInvalidSeeds.Is(err), ShouldBeTrue)
		})

		Convey("Finding an address is repeatable", func() {
			a1, b1, err := FindProgramAddress(program, []byte("give"), []byte("receive"))
			So(err, ShouldBeNil)
			a2, b2, err := FindProgramAddress(program, []byte("give"), []byte("receive"))
			So(err, ShouldBeNil)
			So(a1, ShouldResemble, a2)
			So(b1, ShouldEqual, b2)

			Convey("The address is off the curve", func() {
				So(IsOnCurve(a1), ShouldBeFalse)
				So(a1.Validate(), ShouldBeNil)
			})

			Convey("The bump reproduces the address", func() {
				addr, err := CreateProgramAddress(program, []byte("give"), []byte("receive"), []byte{b1})
				So(err, ShouldBeNil)
				So(addr, ShouldResemble, a1)
			})

			Convey("Seed order matters", func() {
				swapped, _, err := FindProgramAddress(program, []byte("receive"), []byte("give"))
				So(err, ShouldBeNil)
				So(swapped, ShouldNotResemble, a1)
			})

			Convey("A different program yields a different address", func() {
				other, _, err := FindProgramAddress(NewProgramID("token"), []byte("give"), []byte("receive"))
				So(err, ShouldBeNil)
				So(other, ShouldNotResemble, a1)
			})
		})

		Convey("Public keys are on the curve", func() {
			pub, _, err := ed25519.GenerateKey(rand.Reader)
			So(err, ShouldBeNil)
			So(IsOnCurve(Address(pub)), ShouldBeTrue)
		})
	})
}

func TestFindProgramAddressRandomPrograms(t *testing.T) {
	for i := 0; i < 200; i++ {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			t.Fatalf("cannot generate key: %s", err)
		}
		addr, _, err := FindProgramAddress(Address(pub), []byte("Lil'"), []byte("Bits"))
		if err != nil {
			t.Fatalf("program %s: %s", Address(pub), err)
		}
		if IsOnCurve(addr) {
			t.Fatalf("program %s: derived address on curve", Address(pub))
		}
	}
}
