package algorithms

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"qreg/register"
)

func TestBellAndGHZ(t *testing.T) {
	Convey("Given a freshly prepared Bell pair", t, func() {
		q, err := Bell(register.WithSource(register.NewSeededSource(11)))
		So(err, ShouldBeNil)

		Convey("Then only |00⟩ and |11⟩ carry probability", func() {
			probs := q.Probabilities()
			So(probs[0], ShouldAlmostEqual, 0.5, 1e-12)
			So(probs[1], ShouldEqual, 0)
			So(probs[2], ShouldEqual, 0)
			So(probs[3], ShouldAlmostEqual, 0.5, 1e-12)
		})

		Convey("When sampled many times", func() {
			h, err := q.Sample(2000)
			So(err, ShouldBeNil)

			Convey("Then both qubits always agree", func() {
				So(h.Outcomes(), ShouldResemble, []uint64{0, 3})
				So(h.Frequency(0), ShouldAlmostEqual, 0.5, 0.05)
			})
		})
	})

	Convey("Given a five-qubit GHZ state", t, func() {
		q, err := GHZ(5)
		So(err, ShouldBeNil)

		Convey("Then the extremes split the probability", func() {
			probs := q.Probabilities()
			So(probs[0], ShouldAlmostEqual, 0.5, 1e-12)
			So(probs[31], ShouldAlmostEqual, 0.5, 1e-12)
			So(q.Norm(), ShouldAlmostEqual, 1, 1e-9)
		})
	})

	Convey("Given too few qubits for GHZ", t, func() {
		_, err := GHZ(1)

		Convey("Then preparation is refused", func() {
			So(errors.Is(err, register.ErrInvalidInput), ShouldBeTrue)
		})
	})
}

func TestDeutsch(t *testing.T) {
	oracles := []struct {
		name     string
		oracle   Oracle
		constant bool
	}{
		{"f(x) = 0", ConstantOracle(0), true},
		{"f(x) = 1", ConstantOracle(1), true},
		{"f(x) = x", BalancedOracle(1), false},
		{"f(x) = 1 - x", Negate(BalancedOracle(1)), false},
	}

	for _, tc := range oracles {
		Convey("Given the oracle "+tc.name, t, func() {
			src := register.NewSeededSource(5)

			Convey("Then Deutsch classifies it every time", func() {
				for i := 0; i < 20; i++ {
					constant, err := Deutsch(tc.oracle, register.WithSource(src))
					So(err, ShouldBeNil)
					So(constant, ShouldEqual, tc.constant)
				}
			})
		})
	}
}

func TestDeutschJozsa(t *testing.T) {
	Convey("Given a four-bit function", t, func() {
		src := register.WithSource(register.NewSeededSource(99))

		Convey("When it is constant", func() {
			for _, v := range []int{0, 1} {
				constant, err := DeutschJozsa(4, ConstantOracle(v), src)
				So(err, ShouldBeNil)
				So(constant, ShouldBeTrue)
			}
		})

		Convey("When it is balanced", func() {
			for _, mask := range []uint64{0b0001, 0b1000, 0b1010, 0b1111} {
				constant, err := DeutschJozsa(4, BalancedOracle(mask), src)
				So(err, ShouldBeNil)
				So(constant, ShouldBeFalse)
			}
		})

		Convey("When the oracle is malformed", func() {
			_, err := DeutschJozsa(4, BalancedOracle(0b10000), src)
			So(errors.Is(err, register.ErrInvalidInput), ShouldBeTrue)

			_, err = DeutschJozsa(4, ConstantOracle(2), src)
			So(errors.Is(err, register.ErrInvalidInput), ShouldBeTrue)

			_, err = DeutschJozsa(0, ConstantOracle(0), src)
			So(errors.Is(err, register.ErrInvalidInput), ShouldBeTrue)
		})
	})
}

func TestBernsteinVazirani(t *testing.T) {
	Convey("Given a hidden five-bit string", t, func() {
		src := register.WithSource(register.NewSeededSource(3))

		Convey("Then one query recovers it", func() {
			for _, secret := range []uint64{0, 0b00001, 0b10110, 0b11111} {
				got, err := BernsteinVazirani(5, secret, src)
				So(err, ShouldBeNil)
				So(got.Width(), ShouldEqual, 5)
				So(got.Value(), ShouldEqual, secret)
			}
		})

		Convey("Then a secret wider than the input is rejected", func() {
			_, err := BernsteinVazirani(3, 0b1000, src)
			So(errors.Is(err, register.ErrInvalidInput), ShouldBeTrue)
		})
	})
}

func TestTeleport(t *testing.T) {
	Convey("Given a qubit rotated away from |0⟩", t, func() {
		const theta = 1.1
		prepare := func(q *register.QuantumRegister, qubit int) error {
			if err := q.RY(qubit, theta); err != nil {
				return err
			}
			return q.T(qubit)
		}
		want := register.NewAmplitude(math.Cos(theta/2), 0)
		wantBeta := register.NewAmplitude(math.Sin(theta/2), 0).Mul(register.NewAmplitude(math.Cos(math.Pi/4), math.Sin(math.Pi/4)))

		Convey("When it is teleported repeatedly", func() {
			src := register.NewSeededSource(2024)
			seen := map[[2]int]bool{}

			for i := 0; i < 64; i++ {
				res, err := Teleport(prepare, register.WithSource(src))
				So(err, ShouldBeNil)
				seen[[2]int{res.M1, res.M2}] = true

				alpha, beta := res.Received()
				So(alpha.Sub(want).Abs(), ShouldBeLessThan, 1e-9)
				So(beta.Sub(wantBeta).Abs(), ShouldBeLessThan, 1e-9)

				p := res.Register.QubitProbabilities()[2]
				So(p.Prob1, ShouldAlmostEqual, math.Pow(math.Sin(theta/2), 2), 1e-9)
			}

			Convey("Then every correction branch was exercised", func() {
				So(len(seen), ShouldEqual, 4)
			})
		})
	})

	Convey("Given a preparation that fails", t, func() {
		_, err := Teleport(func(q *register.QuantumRegister, _ int) error { return q.H(4) })

		Convey("Then the error is passed through", func() {
			So(errors.Is(err, register.ErrIndexOutOfRange), ShouldBeTrue)
		})
	})
}

func TestSuperdenseCoding(t *testing.T) {
	Convey("Given each two-bit message", t, func() {
		src := register.WithSource(register.NewSeededSource(8))

		Convey("Then the receiver decodes it exactly", func() {
			for _, msg := range []string{"00", "01", "10", "11"} {
				got, err := SuperdenseCoding(msg, src)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, msg)
			}
		})
	})

	Convey("Given a message that is not two bits", t, func() {
		for _, msg := range []string{"", "0", "012", "2a"} {
			_, err := SuperdenseCoding(msg)
			So(errors.Is(err, register.ErrInvalidInput), ShouldBeTrue)
		}
	})
}
