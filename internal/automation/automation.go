// Package automation replays scripted tours of the vortex headlessly.
package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/vortexcurl/internal/viz"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

var (
	ErrEmptyScenario = errors.New("automation: scenario has no steps")
	ErrInvalidStep   = errors.New("automation: step needs a positive frame count")
)

// Scenario defines a scripted sequence of observation settings.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step holds one setting for a number of frames. Playing defaults to true.
type Step struct {
	Position vortex.Position `yaml:"position"`
	Playing  *bool           `yaml:"playing,omitempty"`
	Frames   int             `yaml:"frames"`
	Note     string          `yaml:"note,omitempty"`
}

func (s Step) IsPlaying() bool {
	return s.Playing == nil || *s.Playing
}

// StepResult is the scene state at the end of a step.
type StepResult struct {
	Position     vortex.Position
	Frames       int
	Skipped      int
	OrbitalAngle float64
	SpinAngle    float64
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("automation: parse %s: %w", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i, step := range s.Steps {
		if step.Frames <= 0 {
			return fmt.Errorf("step %d: %w", i+1, ErrInvalidStep)
		}
		if !step.Position.Valid() {
			return fmt.Errorf("step %d: %w", i+1, vortex.ErrUnknownPosition)
		}
	}
	return nil
}

// TotalFrames is the number of frames the scenario renders.
func (s *Scenario) TotalFrames() int {
	n := 0
	for _, step := range s.Steps {
		n += step.Frames
	}
	return n
}

// DefaultTour visits every position in order for frames each.
func DefaultTour(frames int) *Scenario {
	s := &Scenario{
		Name:        "curl tour",
		Description: "from the rotating core out to the irrotational flow",
	}
	for _, p := range vortex.Positions {
		s.Steps = append(s.Steps, Step{Position: p, Frames: frames})
	}
	return s
}

// FrameFunc is called after every rendered frame.
type FrameFunc func(step, frame int) error

// Runner drives a loop through a scenario on one surface.
type Runner struct {
	Loop    *viz.Loop
	Surface viz.Surface
	OnFrame FrameFunc
	Log     zerolog.Logger
}

// Run executes all steps in order. The surface is attached for the duration
// of the run and detached afterwards, even on error.
func (r *Runner) Run(ctx context.Context, scenario *Scenario) ([]StepResult, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	results := make([]StepResult, 0, len(scenario.Steps))
	defer r.Loop.Detach()

	for i, step := range scenario.Steps {
		in := viz.Input{Position: step.Position, Playing: step.IsPlaying()}
		var (
			tok viz.Token
			err error
		)
		if i == 0 {
			tok, err = r.Loop.Attach(r.Surface, in)
		} else {
			tok, err = r.Loop.Configure(in)
		}
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		r.Log.Info().
			Int("step", i+1).
			Str("position", step.Position.String()).
			Bool("playing", in.Playing).
			Int("frames", step.Frames).
			Msg("running tour step")

		res := StepResult{Position: step.Position}
		for f := 0; f < step.Frames; f++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			switch r.Loop.Frame(tok) {
			case viz.Cancelled:
				return results, fmt.Errorf("step %d: frame chain cancelled", i+1)
			case viz.Skipped:
				res.Skipped++
				continue
			}
			res.Frames++
			if r.OnFrame != nil {
				if err := r.OnFrame(i, f); err != nil {
					return results, fmt.Errorf("step %d frame %d: %w", i+1, f, err)
				}
			}
		}

		clock := r.Loop.Scene().Clock
		res.OrbitalAngle, res.SpinAngle = clock.OrbitalAngle, clock.SpinAngle
		results = append(results, res)
	}

	return results, nil
}
