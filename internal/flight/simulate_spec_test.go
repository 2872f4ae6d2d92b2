package flight_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/flight"
	"github.com/san-kum/trajsim/internal/physics"
)

func build(mass, speed, angle, drag, area float64, opts ...flight.Option) flight.Config {
	cfg, err := flight.NewConfig(mass, speed, angle, drag, area, opts...)
	Expect(err).NotTo(HaveOccurred())
	return cfg
}

func run(cfg flight.Config) *flight.Trajectory {
	traj, err := flight.Simulate(cfg)
	Expect(err).NotTo(HaveOccurred())
	return traj
}

var _ = Describe("Simulate", func() {
	configs := []TableEntry{
		Entry("paper plane", 0.005, 10.0, 30.0, 0.1, 0.01, 0.01, 100.0),
		Entry("vacuum", 0.005, 10.0, 30.0, 0.0, 0.0, 0.01, 100.0),
		Entry("heavy drag", 0.005, 10.0, 30.0, 1.0, 0.01, 0.01, 100.0),
		Entry("vertical", 1.0, 20.0, 90.0, 0.0, 0.0, 0.005, 100.0),
		Entry("flat", 0.01, 5.0, 0.0, 0.2, 0.02, 0.01, 100.0),
		Entry("short budget", 1.0, 30.0, 80.0, 0.0, 0.0, 0.01, 0.5),
		Entry("at rest", 0.02, 0.0, 45.0, 0.5, 0.05, 0.01, 100.0),
	}

	DescribeTable("invariants",
		func(mass, speed, angle, drag, area, dt, maxTime float64) {
			traj := run(build(mass, speed, angle, drag, area,
				flight.WithTimeStep(dt), flight.WithMaxTime(maxTime)))

			By("starting at the origin")
			Expect(traj.At(0).Time).To(Equal(0.0))
			Expect(traj.At(0).X).To(Equal(0.0))
			Expect(traj.At(0).Y).To(Equal(0.0))

			By("advancing time by exactly one step per sample")
			for i := 1; i < traj.Len(); i++ {
				Expect(traj.At(i).Time).To(Equal(traj.At(i-1).Time + dt))
			}
			Expect(traj.Steps()).To(Equal(traj.Len() - 1))

			By("ending on the ground or at the time budget")
			final := traj.Final()
			Expect(final.Y < 0 || final.Time >= maxTime).To(BeTrue())

			By("not running past the first terminal sample")
			for i := 0; i < traj.Len()-1; i++ {
				s := traj.At(i)
				Expect(s.Y).To(BeNumerically(">=", 0))
				Expect(s.Time).To(BeNumerically("<", maxTime))
			}
		},
		configs,
	)

	DescribeTable("determinism",
		func(mass, speed, angle, drag, area, dt, maxTime float64) {
			cfg := build(mass, speed, angle, drag, area,
				flight.WithTimeStep(dt), flight.WithMaxTime(maxTime))
			Expect(run(cfg).Samples()).To(Equal(run(cfg).Samples()))
		},
		configs,
	)

	Context("without drag", func() {
		It("lands within one step of the analytic range (scenario A)", func() {
			traj := run(build(0.005, 10, 30, 0, 0,
				flight.WithTimeStep(0.01), flight.WithMaxTime(100)))

			exact := flight.FrictionlessRange(10, 30)
			Expect(exact).To(BeNumerically("~", 8.83, 0.01))
			Expect(traj.Outcome()).To(Equal(flight.Landed))
			stepDisplacement := traj.Final().VX * traj.TimeStep()
			Expect(stepDisplacement).To(BeNumerically("~", 10*math.Cos(30*physics.DegToRad)*0.01, 1e-12))
			Expect(traj.Range()).To(BeNumerically("~", exact, stepDisplacement))
		})

		It("converges to the analytic range as the step shrinks", func() {
			exact := flight.FrictionlessRange(12, 40)
			prevErr := math.Inf(1)
			for _, dt := range []float64{0.02, 0.01, 0.001} {
				traj := run(build(0.005, 12, 40, 0, 0, flight.WithTimeStep(dt)))
				rangeErr := math.Abs(traj.Range() - exact)
				Expect(rangeErr).To(BeNumerically("<=", 12*dt))
				Expect(rangeErr).To(BeNumerically("<", prevErr))
				prevErr = rangeErr
			}
		})

		It("treats zero wing area like zero drag coefficient", func() {
			noArea := run(build(0.005, 10, 30, 1.0, 0))
			noDrag := run(build(0.005, 10, 30, 0, 0.01))
			Expect(noArea.Samples()).To(Equal(noDrag.Samples()))
		})
	})

	Context("with drag", func() {
		It("shortens the range (scenario C)", func() {
			dragged := run(build(0.005, 10, 30, 1.0, 0.01))
			vacuum := run(build(0.005, 10, 30, 0, 0))

			Expect(dragged.Outcome()).To(Equal(flight.Landed))
			Expect(dragged.Range()).To(BeNumerically("<", vacuum.Range()))
		})

		It("loses mechanical energy", func() {
			traj := run(build(0.005, 10, 30, 0.1, 0.01))
			Expect(traj.Metrics()[flight.MetricEnergyDrift]).To(BeNumerically(">", 0.05))
		})
	})

	Context("with an invalid configuration", func() {
		It("rejects non-positive mass before integrating (scenario B)", func() {
			for _, mass := range []float64{0, -0.005} {
				cfg, err := flight.NewConfig(mass, 10, 30, 0, 0)
				Expect(err).To(MatchError(dynamo.ErrInvalidConfiguration))

				traj, err := flight.Simulate(cfg)
				Expect(err).To(MatchError(dynamo.ErrInvalidConfiguration))
				Expect(traj).To(BeNil())
			}
		})
	})
})
