package solver_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numint/internal/observe"
	"github.com/san-kum/numint/internal/ode"
	"github.com/san-kum/numint/internal/solver"
	"github.com/san-kum/numint/internal/steppers"
)

var _ = Describe("Fixed-step integration", func() {
	var (
		decay ode.System
		rec   *observe.Recorder
	)

	BeforeEach(func() {
		decay = ode.SystemFunc(func(x ode.State, t float64) ode.State {
			return ode.State{-x[0]}
		})
		rec = observe.NewRecorder()
	})

	It("delivers the initial sample before any step", func() {
		_, _, err := solver.IntegrateFixed(steppers.NewRK4(), decay, ode.State{1.0}, 0, 1, 0.1, rec)
		Expect(err).NotTo(HaveOccurred())

		first, t0 := rec.At(0)
		Expect(t0).To(BeZero())
		Expect(first[0]).To(Equal(1.0))
	})

	It("lands exactly on the end of the span", func() {
		_, n, err := solver.IntegrateFixed(steppers.NewRK4(), decay, ode.State{1.0}, 0, 1, 0.3, rec)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(uint64(4)))

		_, tLast := rec.Last()
		Expect(tLast).To(Equal(1.0))
	})

	It("tracks the analytic solution", func() {
		final, _, err := solver.IntegrateFixed(steppers.NewRK4(), decay, ode.State{1.0}, 0, 1, 1e-3, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(final[0]).To(BeNumerically("~", math.Exp(-1), 1e-10))
	})

	It("rejects an inverted span", func() {
		_, _, err := solver.IntegrateFixed(steppers.NewRK4(), decay, ode.State{1.0}, 1, 0, 0.1, nil)
		Expect(err).To(MatchError(ode.ErrInvalidSpan))
	})
})

var _ = Describe("Adaptive integration", func() {
	var (
		oscillator ode.System
		ad         ode.AdaptiveStepper
		rec        *observe.Recorder
	)

	BeforeEach(func() {
		oscillator = ode.SystemFunc(func(x ode.State, t float64) ode.State {
			return ode.State{x[1], -x[0]}
		})
		var err error
		ad, err = steppers.NewAdaptive(steppers.NewRK4(), steppers.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		rec = observe.NewRecorder()
	})

	It("tracks the analytic solution within tolerance", func() {
		final, _, err := solver.IntegrateAdaptive(ad, oscillator, ode.State{1.0, 0.0}, 0, 5, 1e-3, rec)
		Expect(err).NotTo(HaveOccurred())
		Expect(final[0]).To(BeNumerically("~", math.Cos(5), 1e-4))
		Expect(final[1]).To(BeNumerically("~", -math.Sin(5), 1e-4))
	})

	It("reports strictly increasing sample times", func() {
		_, _, err := solver.IntegrateAdaptive(ad, oscillator, ode.State{1.0, 0.0}, 0, 5, 1e-3, rec)
		Expect(err).NotTo(HaveOccurred())

		times := rec.Times()
		for i := 1; i < len(times); i++ {
			Expect(times[i]).To(BeNumerically(">", times[i-1]))
		}
	})

	It("lands exactly on the end of the span", func() {
		_, _, err := solver.IntegrateAdaptive(ad, oscillator, ode.State{1.0, 0.0}, 0, 2.5, 1e-3, rec)
		Expect(err).NotTo(HaveOccurred())

		_, tLast := rec.Last()
		Expect(tLast).To(Equal(2.5))
	})

	It("spends fewer steps than the fixed grid", func() {
		_, n, err := solver.IntegrateAdaptive(ad, oscillator, ode.State{1.0, 0.0}, 0, 10, 1e-3, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeNumerically("<", uint64(2000)))
	})

	Context("when the tolerance is unreachable in strict mode", func() {
		BeforeEach(func() {
			opts := steppers.DefaultOptions()
			opts.Tolerance = 1e-300
			opts.Iterations = 0
			opts.FailOnTolerance = true
			var err error
			ad, err = steppers.NewAdaptive(steppers.NewRK4(), opts)
			Expect(err).NotTo(HaveOccurred())
		})

		It("surfaces the tolerance failure with step context", func() {
			_, _, err := solver.IntegrateAdaptive(ad, oscillator, ode.State{1.0, 0.0}, 0, 1, 1e-2, nil)
			Expect(err).To(MatchError(ode.ErrToleranceNotMet))

			var se *ode.StepError
			Expect(errors.As(err, &se)).To(BeTrue())
			Expect(se.Step).To(Equal(uint64(1)))
		})
	})
})
