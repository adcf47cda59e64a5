package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/vortexcurl/internal/export"
	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/viz"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

const tourYAML = `name: edge to outer
description: watch the disc stop spinning
steps:
  - position: inner_edge
    frames: 5
  - position: outer
    frames: 4
  - position: outer_flow
    playing: false
    frames: 3
`

var _ = Describe("Scenario", func() {
	It("loads steps with position names and default playing", func() {
		s, err := LoadScenario(writeTour(tourYAML))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Name).To(Equal("edge to outer"))
		Expect(s.Steps).To(HaveLen(3))
		Expect(s.Steps[1].Position).To(Equal(vortex.OuterFlow))
		Expect(s.Steps[0].IsPlaying()).To(BeTrue())
		Expect(s.Steps[2].IsPlaying()).To(BeFalse())
		Expect(s.TotalFrames()).To(Equal(12))
	})

	It("rejects empty and malformed scenarios", func() {
		_, err := LoadScenario(writeTour("name: nothing\n"))
		Expect(errors.Is(err, ErrEmptyScenario)).To(BeTrue())

		_, err = LoadScenario(writeTour("steps:\n  - position: center\n    frames: 0\n"))
		Expect(errors.Is(err, ErrInvalidStep)).To(BeTrue())

		_, err = LoadScenario(writeTour("steps:\n  - position: eye\n    frames: 2\n"))
		Expect(err).To(HaveOccurred())
	})

	It("builds a default tour over every position", func() {
		s := DefaultTour(10)
		Expect(s.Steps).To(HaveLen(len(vortex.Positions)))
		Expect(s.Validate()).To(Succeed())
	})
})

var _ = Describe("Runner", func() {
	var (
		scene  *sim.Scene
		runner *Runner
		raster *export.Raster
	)

	BeforeEach(func() {
		scene = sim.NewScene(sim.WithSeed(5))
		raster = export.NewRaster(200, 160)
		runner = &Runner{
			Loop:    viz.NewLoop(scene, viz.NewPainter(), zerolog.Nop()),
			Surface: raster,
			Log:     zerolog.Nop(),
		}
	})

	It("renders every frame and carries angles across steps", func() {
		s, err := LoadScenario(writeTour(tourYAML))
		Expect(err).NotTo(HaveOccurred())

		rec := export.NewGIFRecorder(30)
		runner.OnFrame = func(step, frame int) error {
			rec.Capture(raster)
			return nil
		}

		results, err := runner.Run(context.Background(), s)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(3))
		Expect(rec.Len()).To(Equal(12))

		// spin froze once the disc left the core
		Expect(results[1].SpinAngle).To(Equal(results[0].SpinAngle))
		Expect(results[1].OrbitalAngle).To(BeNumerically(">", results[0].OrbitalAngle))
		// paused step leaves the clock alone
		Expect(results[2].OrbitalAngle).To(Equal(results[1].OrbitalAngle))
		Expect(scene.Ticks()).To(Equal(9))

		Expect(runner.Loop.Active()).To(BeFalse())
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		runner.OnFrame = func(step, frame int) error {
			if frame == 2 {
				cancel()
			}
			return nil
		}
		_, err := runner.Run(ctx, DefaultTour(10))
		Expect(err).To(MatchError(context.Canceled))
		Expect(scene.Ticks()).To(Equal(3))
	})

	It("propagates frame callback errors", func() {
		boom := errors.New("disk full")
		runner.OnFrame = func(int, int) error { return boom }
		_, err := runner.Run(context.Background(), DefaultTour(1))
		Expect(errors.Is(err, boom)).To(BeTrue())
	})

	It("counts skipped frames on an empty surface", func() {
		runner.Surface = export.NewRaster(0, 0)
		results, err := runner.Run(context.Background(), DefaultTour(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Skipped).To(Equal(2))
		Expect(results[0].Frames).To(BeZero())
	})

	It("refuses an empty scenario", func() {
		_, err := runner.Run(context.Background(), &Scenario{})
		Expect(err).To(MatchError(ErrEmptyScenario))
	})
})

func writeTour(body string) string {
	path := filepath.Join(GinkgoT().TempDir(), "tour.yaml")
	Expect(os.WriteFile(path, []byte(body), 0644)).To(Succeed())
	return path
}
