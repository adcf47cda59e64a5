package viz

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

var _ = Describe("Loop", func() {
	var (
		scene *sim.Scene
		loop  *Loop
		rec   *recorder
	)

	BeforeEach(func() {
		scene = sim.NewScene(sim.WithSeed(42))
		loop = NewLoop(scene, NewPainter(), zerolog.Nop())
		rec = newRecorder(640, 480)
	})

	Describe("frame chain", func() {
		It("ticks then paints on every playing frame", func() {
			tok, err := loop.Attach(rec, Input{Position: vortex.Center, Playing: true})
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 100; i++ {
				Expect(loop.Frame(tok)).To(Equal(Rendered))
			}
			Expect(scene.Clock.OrbitalAngle).To(BeNumerically("~", 100*vortex.DefaultBaseOmega, 1e-12))
			Expect(scene.Clock.SpinAngle).To(Equal(scene.Clock.OrbitalAngle))
			Expect(loop.Frames()).To(Equal(100))
			Expect(rec.ops[0].kind).To(Equal("clear"))
		})

		It("repaints frozen state while paused", func() {
			tok, _ := loop.Attach(rec, Input{Position: vortex.InnerEdge, Playing: false})
			angles := make([]uint64, scene.Particles.Len())
			for i, t := range scene.Particles.Tracers() {
				angles[i] = math.Float64bits(t.Angle)
			}

			for i := 0; i < 30; i++ {
				Expect(loop.Frame(tok)).To(Equal(Rendered))
			}
			Expect(scene.Clock).To(Equal(sim.Clock{}))
			for i, t := range scene.Particles.Tracers() {
				Expect(math.Float64bits(t.Angle)).To(Equal(angles[i]))
			}
			Expect(rec.ops).NotTo(BeEmpty())
		})

		It("freezes spin in the outer flow", func() {
			tok, _ := loop.Attach(rec, Input{Position: vortex.OuterFlow, Playing: true})
			Expect(loop.Frame(tok)).To(Equal(Rendered))
			Expect(scene.Clock.OrbitalAngle).To(BeNumerically("~", 0.0093, 1e-4))
			Expect(scene.Clock.SpinAngle).To(BeZero())
		})
	})

	Describe("cancellation", func() {
		It("drops frames from a chain retired by Configure", func() {
			old, _ := loop.Attach(rec, Input{Position: vortex.Center, Playing: true})
			next, err := loop.Configure(Input{Position: vortex.OuterFlow, Playing: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(next).NotTo(Equal(old))

			Expect(loop.Frame(old)).To(Equal(Cancelled))
			Expect(scene.Ticks()).To(BeZero())
			Expect(loop.Frame(next)).To(Equal(Rendered))
			Expect(scene.Ticks()).To(Equal(1))
		})

		It("cancels every pending token on Detach and is idempotent", func() {
			tok, _ := loop.Attach(rec, Input{Position: vortex.Center, Playing: true})
			loop.Detach()
			loop.Detach()

			Expect(loop.Active()).To(BeFalse())
			Expect(loop.Surface()).To(BeNil())
			Expect(loop.Frame(tok)).To(Equal(Cancelled))
			Expect(loop.Frame(loop.Token())).To(Equal(Cancelled))
		})

		It("keeps angles continuous when the position changes", func() {
			tok, _ := loop.Attach(rec, Input{Position: vortex.InnerEdge, Playing: true})
			loop.Frame(tok)
			spin := scene.Clock.SpinAngle

			tok, _ = loop.Configure(Input{Position: vortex.OuterFlow, Playing: true})
			loop.Frame(tok)
			Expect(scene.Clock.SpinAngle).To(Equal(spin))
			Expect(loop.Profile().Radius).To(Equal(220.0))
		})
	})

	Describe("missing surface", func() {
		It("skips frames before a surface is attached", func() {
			tok, err := loop.Configure(Input{Position: vortex.Center, Playing: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(loop.Frame(tok)).To(Equal(Skipped))
			Expect(scene.Ticks()).To(BeZero())
		})

		It("skips while the surface is unavailable and resumes after", func() {
			tok, _ := loop.Attach(rec, Input{Position: vortex.Center, Playing: true})
			rec.available = false
			Expect(loop.Frame(tok)).To(Equal(Skipped))

			rec.available = true
			Expect(loop.Frame(tok)).To(Equal(Rendered))
		})

		It("skips zero-sized surfaces", func() {
			tok, _ := loop.Attach(newRecorder(0, 0), Input{Position: vortex.Center, Playing: true})
			Expect(loop.Frame(tok)).To(Equal(Skipped))
		})
	})

	Describe("input validation", func() {
		It("rejects unknown positions without touching the chain", func() {
			tok, _ := loop.Attach(rec, Input{Position: vortex.Center, Playing: true})
			_, err := loop.Configure(Input{Position: vortex.Position(9)})
			Expect(errors.Is(err, vortex.ErrUnknownPosition)).To(BeTrue())
			Expect(loop.Frame(tok)).To(Equal(Rendered))
		})
	})

	It("exposes the active classification", func() {
		_, _ = loop.Attach(rec, Input{Position: vortex.OuterFlow})
		c := loop.Classification()
		Expect(c.IsRotational).To(BeFalse())
		Expect(c.CurlState).To(Equal("Zero Curl"))
	})
})
