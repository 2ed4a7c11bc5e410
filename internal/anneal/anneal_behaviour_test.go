package anneal_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/anneal/internal/anneal"
	"github.com/san-kum/anneal/internal/objective"
)

var _ = Describe("Annealer", func() {
	var (
		a   *anneal.Annealer
		cfg anneal.Config
	)

	BeforeEach(func() {
		a = anneal.New(anneal.Func(objective.Rosenbrock), rand.New(rand.NewSource(42)))
		cfg = anneal.Config{A: -2, B: 2, Kmax: 1000}
	})

	Context("minimizing Rosenbrock with a fixed seed", func() {
		It("runs the full budget and ends below the starting cost", func() {
			result, err := a.Run(cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Trajectory).To(HaveLen(1000))
			Expect(result.Iterations()).To(Equal(1000))
			Expect(math.IsInf(result.FinalCost, 0) || math.IsNaN(result.FinalCost)).To(BeFalse())
			Expect(result.FinalCost).To(BeNumerically("<", result.InitialCost))
			Expect(result.FinalCost).To(Equal(result.Trajectory[999]))
			Expect(result.FinalCost).To(Equal(objective.Rosenbrock(result.Final.X, result.Final.Y)))
		})

		It("is reproducible for the same seed", func() {
			first, err := a.Run(cfg)
			Expect(err).NotTo(HaveOccurred())

			again := anneal.New(anneal.Func(objective.Rosenbrock), rand.New(rand.NewSource(42)))
			second, err := again.Run(cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Final).To(Equal(first.Final))
			Expect(second.Trajectory).To(Equal(first.Trajectory))
		})
	})

	Context("observing every step", func() {
		var steps []anneal.Step

		BeforeEach(func() {
			steps = nil
			a.AddObserver(anneal.ObserverFunc(func(s anneal.Step) {
				steps = append(steps, s)
			}))
		})

		It("strictly lowers the trajectory whenever the proposal improved", func() {
			result, err := a.Run(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(steps).To(HaveLen(len(result.Trajectory)))

			prev := result.InitialCost
			for k, s := range steps {
				if s.Improved {
					Expect(s.Accepted).To(BeTrue())
					Expect(result.Trajectory[k]).To(BeNumerically("<", prev), "step %d", k)
				}
				prev = result.Trajectory[k]
			}
		})

		It("reports the linear temperature schedule", func() {
			_, err := a.Run(cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(steps[0].Temperature).To(Equal(1.0))
			Expect(steps[999].Temperature).To(Equal(0.001))
			for _, k := range []int{1, 10, 333, 500, 998} {
				Expect(steps[k].Temperature).To(Equal(float64(1000-k) / 1000))
			}
		})

		It("only accepts worse moves at a positive probability", func() {
			_, err := a.Run(cfg)
			Expect(err).NotTo(HaveOccurred())

			for _, s := range steps {
				if s.Accepted && !s.Improved {
					Expect(s.Probability).To(BeNumerically(">", 0))
					Expect(s.Probability).To(BeNumerically("<=", 1))
				}
			}
		})
	})

	Context("with reversed bounds", func() {
		It("samples the same interval", func() {
			for seed := int64(100); seed < 200; seed++ {
				fwd, err := anneal.New(anneal.Func(objective.Rosenbrock), rand.New(rand.NewSource(seed))).
					Run(anneal.Config{A: -2, B: 2})
				Expect(err).NotTo(HaveOccurred())

				rev, err := anneal.New(anneal.Func(objective.Rosenbrock), rand.New(rand.NewSource(seed))).
					Run(anneal.Config{A: 2, B: -2})
				Expect(err).NotTo(HaveOccurred())

				Expect(rev.Initial).To(Equal(fwd.Initial))
				Expect(rev.Initial.X).To(BeNumerically(">=", -2))
				Expect(rev.Initial.X).To(BeNumerically("<=", 2))
				Expect(rev.Initial.Y).To(BeNumerically(">=", -2))
				Expect(rev.Initial.Y).To(BeNumerically("<=", 2))
			}
		})
	})

	Context("with a zero budget", func() {
		It("returns the initial candidate untouched", func() {
			cfg.Kmax = 0
			result, err := a.Run(cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Trajectory).To(BeEmpty())
			Expect(result.Final).To(Equal(result.Initial))
			Expect(result.FinalCost).To(Equal(objective.Rosenbrock(result.Initial.X, result.Initial.Y)))
		})
	})

	Context("with invalid configuration", func() {
		It("fails fast", func() {
			cfg.Kmax = -5
			result, err := a.Run(cfg)
			Expect(err).To(MatchError(anneal.ErrInvalidIterations))
			Expect(result).To(BeNil())
		})
	})
})
