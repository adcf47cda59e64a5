// Package gui runs the visualization in a native raylib window.
package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/san-kum/vortexcurl/internal/analysis"
	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/viz"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

var (
	ColText    = rl.NewColor(226, 232, 240, 255)
	ColTextDim = rl.NewColor(100, 116, 139, 255)
	ColRot     = rl.NewColor(249, 115, 22, 255)
	ColIrrot   = rl.NewColor(56, 189, 248, 255)
	ColPanel   = rl.NewColor(15, 23, 42, 220)
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
	panelWidth    = 360
	fontPath      = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

// Options configures a window session.
type Options struct {
	Input  viz.Input
	FPS    int
	Seed   int64
	Logger zerolog.Logger
}

type App struct {
	loop      *viz.Loop
	window    *Window
	input     viz.Input
	token     viz.Token
	font      rl.Font
	telemetry []float64
	quit      bool
	log       zerolog.Logger
}

// initWindow opens a resizable window and sets the frame rate.
func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(defaultWidth, defaultHeight, "vortexcurl")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont prefers Liberation Mono and falls back to raylib's built-in font.
func loadFont() rl.Font {
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(opts Options) (*App, error) {
	scene := sim.NewScene(sim.WithSeed(opts.Seed))
	a := &App{
		loop:      viz.NewLoop(scene, viz.NewPainter(), opts.Logger),
		window:    &Window{},
		input:     opts.Input,
		font:      loadFont(),
		telemetry: analysis.SampleRadial(scene.Field, sim.MaxVisualRadius, 120).Speed,
		log:       opts.Logger.With().Str("component", "gui").Logger(),
	}
	a.fit()
	tok, err := a.loop.Attach(a.window, opts.Input)
	if err != nil {
		return nil, err
	}
	a.token = tok
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	initWindow(fps)
	defer rl.CloseWindow()

	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	defer app.loop.Detach()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// fit tracks the framebuffer size so the scene stays centered after resizes.
func (a *App) fit() {
	viz.Fit(a.window, viz.Box{W: rl.GetScreenWidth(), H: rl.GetScreenHeight()})
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.fit()
	}

	in, ok := a.input, true
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
		return
	case rl.IsKeyPressed(rl.KeySpace), rl.IsKeyPressed(rl.KeyP):
		in.Playing = !in.Playing
	case rl.IsKeyPressed(rl.KeyOne):
		in.Position = vortex.Center
	case rl.IsKeyPressed(rl.KeyTwo):
		in.Position = vortex.InnerEdge
	case rl.IsKeyPressed(rl.KeyThree):
		in.Position = vortex.OuterFlow
	case rl.IsKeyPressed(rl.KeyLeft):
		in.Position = in.Position.Prev()
	case rl.IsKeyPressed(rl.KeyRight):
		in.Position = in.Position.Next()
	default:
		ok = false
	}
	if !ok || in == a.input {
		return
	}

	tok, err := a.loop.Configure(in)
	if err != nil {
		a.log.Error().Err(err).Msg("rejected input")
		return
	}
	a.input, a.token = in, tok
}

func (a *App) Draw() {
	rl.BeginDrawing()
	if a.loop.Frame(a.token) == viz.Cancelled {
		a.quit = true
	}
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	c := a.loop.Classification()
	w, h := a.window.Bounds()
	x := w - panelWidth
	rl.DrawRectangle(int32(x), 0, panelWidth, int32(h), ColPanel)

	x += 24
	a.drawText("VORTEX CURL", x, 30, 28, ColText)
	a.drawText("LOCAL VS. BULK ROTATION", x, 64, 14, ColTextDim)

	accent := ColIrrot
	if c.IsRotational {
		accent = ColRot
	}
	a.drawText(c.Label, x, 110, 20, accent)
	a.drawText(strings.ToUpper(c.CurlState), x, 140, 16, accent)
	a.drawText(fmt.Sprintf("%-10s %s", "FLOW", c.FlowType), x, 180, 14, ColText)
	a.drawText(fmt.Sprintf("%-10s %s", "VELOCITY", c.VelocityClass), x, 200, 14, ColText)

	status := "PLAYING"
	col := ColText
	if !a.input.Playing {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, x, 230, 16, col)

	a.DrawTelemetry(x, 280, panelWidth-48, 80)

	a.drawText("[SPACE] PLAY  [1-3] POSITION  [Q] QUIT", x, h-40, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, h-30, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots v(r) with a marker at the disc's orbit radius.
func (a *App) DrawTelemetry(rectX, rectY, width, height int) {
	if len(a.telemetry) < 2 {
		return
	}

	maxVal := a.telemetry[0]
	for _, v := range a.telemetry {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	points := make([]rl.Vector2, len(a.telemetry))
	for i, val := range a.telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.telemetry)-1))*float32(width)
		py := float32(rectY+height) - float32(val/maxVal)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColIrrot)

	r := a.loop.Profile().Radius
	mx := float32(rectX) + float32(r/sim.MaxVisualRadius)*float32(width)
	rl.DrawLineEx(rl.NewVector2(mx, float32(rectY)), rl.NewVector2(mx, float32(rectY+height)), 1, ColRot)
	a.drawText(fmt.Sprintf("v(r) at r=%.0f: %.2f", r, a.loop.Scene().Field.Speed(r)), rectX, rectY+height+8, 14, ColTextDim)
}
