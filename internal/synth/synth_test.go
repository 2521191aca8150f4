package synth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avetk/ladsyn/internal/poly"
	"github.com/avetk/ladsyn/internal/synth"
)

var _ = Describe("Synthesize", func() {
	It("realizes a bare series inductor", func() {
		// Z(s) = s/1
		ladder, err := synth.Synthesize(poly.New([]float64{0, 1}), poly.New([]float64{1}))
		Expect(err).NotTo(HaveOccurred())
		Expect(ladder.Z).To(Equal([]string{"s"}))
		Expect(ladder.Y).To(BeEmpty())
		Expect(ladder.Kind).To(Equal(synth.KindCauerI))
	})

	It("rewrites a constant first quotient into a series inductor entry", func() {
		// Z(s) = (s+1)/s: first quotient is the constant 1 with remainder 1.
		ladder, err := synth.Synthesize(poly.New([]float64{1, 1}), poly.New([]float64{0, 1}))
		Expect(err).NotTo(HaveOccurred())
		Expect(ladder.Z).To(Equal([]string{"s"}))
		Expect(ladder.Y).To(Equal([]string{"1"}))
		Expect(ladder.Kind).To(Equal(synth.KindFirstSection))
	})

	It("splits a compound first shunt term into a resistor/inductor pair", func() {
		// Z(s) = (s^2+4s+3)/(s^2+2s): the forced entry section is Z=[s],
		// Y=[2s+3], then first-section normalization splits it.
		ladder, err := synth.Synthesize(poly.New([]float64{3, 4, 1}), poly.New([]float64{0, 2, 1}))
		Expect(err).NotTo(HaveOccurred())
		Expect(ladder.Z).To(Equal([]string{"1", "s/2"}))
		Expect(ladder.Y).To(Equal([]string{"s/2"}))
		Expect(ladder.Kind).To(Equal(synth.KindFirstSection))
	})

	It("realizes a pure LC ladder from a reactance function", func() {
		// Z(s) = (s^4+3s^2+1)/(s^3+2s), the classic Cauer-I example.
		ladder, err := synth.Synthesize(
			poly.New([]float64{1, 0, 3, 0, 1}),
			poly.New([]float64{0, 2, 0, 1}),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(ladder.Z) + len(ladder.Y)).To(BeNumerically(">", 0))
		Expect(ladder.Y).To(Equal([]string{"s", "s"}))
		// The leading series "s" over a unit-slope shunt gets normalized.
		Expect(ladder.Z).To(Equal([]string{"1", "s", "s"}))
	})

	It("falls back to the Cauer-II expansion when the impedance form degenerates", func() {
		// Z(s) = (s^2+2)/(s^3+3s) has deg N < deg D, so the impedance-led
		// expansion is empty; the admittance-led one yields the ladder.
		ladder, err := synth.Synthesize(
			poly.New([]float64{2, 0, 1}),
			poly.New([]float64{0, 3, 0, 1}),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(ladder.Kind).To(Equal(synth.KindCauerII))
		Expect(ladder.Y).NotTo(BeEmpty())
	})

	It("rejects a zero denominator", func() {
		ladder, err := synth.Synthesize(poly.New([]float64{1, 1}), poly.New(nil))
		Expect(err).To(MatchError(poly.ErrDivideByZero))
		Expect(ladder).To(BeNil())
	})

	It("rejects a zero denominator regardless of numerator", func() {
		for _, coeffs := range [][]float64{nil, {1}, {0, 1}, {1, 2, 3}} {
			ladder, err := synth.Synthesize(poly.New(coeffs), poly.New(nil))
			Expect(err).To(MatchError(poly.ErrDivideByZero))
			Expect(ladder).To(BeNil())
		}
	})

	It("rejects negative element values on both expansions", func() {
		// Z(s) = s-1 expands to a single negative-constant term and its dual
		// is empty: not a passive network.
		ladder, err := synth.Synthesize(poly.New([]float64{-1, 1}), poly.New([]float64{1}))
		Expect(err).To(MatchError(synth.ErrUnrealizable))
		Expect(ladder).To(BeNil())
	})

	It("rejects a degenerate network with both terminals empty", func() {
		// Z(s) = 1/s^3 makes no progress in either direction without a
		// first-section rewrite available.
		ladder, err := synth.Synthesize(poly.New([]float64{1}), poly.New([]float64{0, 0, 0, 1}))
		Expect(err).To(MatchError(synth.ErrUnrealizable))
		Expect(ladder).To(BeNil())
	})

	It("fails with exactly one of the two defined error kinds", func() {
		inputs := []struct{ n, d []float64 }{
			{[]float64{1, 1}, nil},
			{[]float64{-1, 1}, []float64{1}},
			{[]float64{1, 0, 1}, []float64{1}},
		}
		for _, in := range inputs {
			ladder, err := synth.Synthesize(poly.New(in.n), poly.New(in.d))
			Expect(err).To(HaveOccurred())
			Expect(ladder).To(BeNil())
			Expect(err).To(Or(MatchError(poly.ErrDivideByZero), MatchError(synth.ErrUnrealizable)))
		}
	})
})
