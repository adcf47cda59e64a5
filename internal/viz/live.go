package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/san-kum/vortexcurl/internal/analysis"
	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

const (
	defaultWidth  = 120
	defaultHeight = 36
	sidebarWidth  = 46
	canvasPadding = 2
	defaultFPS    = 60
)

type frameMsg struct{ token Token }

// Options configures an interactive session.
type Options struct {
	Input  Input
	FPS    int
	Seed   int64
	Theme  string
	Logger zerolog.Logger
}

// Model is the terminal front end: it owns the loop and the canvas and acts
// as the selection UI and info panel around them.
type Model struct {
	loop          *Loop
	canvas        *Canvas
	input         Input
	token         Token
	interval      time.Duration
	width, height int
	speeds        []float64
	showHelp      bool
	log           zerolog.Logger
}

// NewModel initializes the scene, the canvas and the first frame chain.
func NewModel(opts Options) (Model, error) {
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}

	scene := sim.NewScene(sim.WithSeed(opts.Seed))
	m := Model{
		loop:     NewLoop(scene, NewPainter(), opts.Logger),
		canvas:   NewCanvas(0, 0),
		input:    opts.Input,
		interval: time.Second / time.Duration(fps),
		width:    defaultWidth,
		height:   defaultHeight,
		speeds:   analysis.SampleRadial(scene.Field, sim.MaxVisualRadius, 40).Speed,
		log:      opts.Logger,
	}
	m.fit()

	tok, err := m.loop.Attach(m.canvas, opts.Input)
	if err != nil {
		return Model{}, err
	}
	m.token = tok
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.schedule(m.token)
}

func (m Model) schedule(tok Token) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return frameMsg{token: tok} })
}

// Update handles input events and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fit()
		return m, nil
	case frameMsg:
		if m.loop.Frame(msg.token) == Cancelled {
			return m, nil
		}
		return m, m.schedule(msg.token)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.input
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.loop.Detach()
		return m, tea.Quit
	case " ", "p":
		in.Playing = !in.Playing
	case "1":
		in.Position = vortex.Center
	case "2":
		in.Position = vortex.InnerEdge
	case "3":
		in.Position = vortex.OuterFlow
	case "left", "h":
		in.Position = in.Position.Prev()
	case "right", "l":
		in.Position = in.Position.Next()
	case "t":
		NextTheme()
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	default:
		return m, nil
	}
	if in == m.input {
		return m, nil
	}
	return m.reconfigure(in)
}

// reconfigure retires the running frame chain and starts a new one.
func (m Model) reconfigure(in Input) (tea.Model, tea.Cmd) {
	tok, err := m.loop.Configure(in)
	if err != nil {
		m.log.Error().Err(err).Msg("rejected input")
		return m, nil
	}
	m.input, m.token = in, tok
	return m, m.schedule(tok)
}

// fit keeps the canvas sized to the space left of the sidebar.
func (m *Model) fit() {
	cols := m.width - sidebarWidth - 2*canvasPadding
	rows := m.height - 2
	Fit(m.canvas, Box{W: cols * 2, H: rows * 4})
}

// View renders the canvas and the info panel side by side.
func (m Model) View() string {
	t := CurrentTheme
	canvasView := lipgloss.NewStyle().Padding(1, canvasPadding, 0, canvasPadding).Render(m.canvas.Render())
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.sidebar(t))
	if m.showHelp {
		return helpView(t) + "\n" + main
	}
	return main
}

func (m Model) sidebar(t Theme) string {
	c := m.loop.Classification()
	var s strings.Builder

	s.WriteString(GradientText("VORTEX", t.Primary, t.Secondary) + " " +
		headerStyle(t).Render("CURL") + "\n")
	s.WriteString(labelStyle(t).Render("LOCAL VS. BULK ROTATION") + "\n\n")

	dot := badgeStyle(t.Irrotational).Render("●")
	if c.IsRotational {
		dot = badgeStyle(t.Rotational).Render("●")
	}
	s.WriteString(dot + " " + headerStyle(t).Render(c.Label) + "\n\n")

	text := lipgloss.NewStyle().Width(sidebarWidth - 6).Italic(true).Foreground(t.Muted)
	s.WriteString(text.Render(fmt.Sprintf("%q", c.Transcript)) + "\n\n")

	curl := badgeStyle(t.Irrotational).Render(strings.ToUpper(c.CurlState))
	fill := 0.0
	if c.IsRotational {
		curl = badgeStyle(t.Rotational).Render(strings.ToUpper(c.CurlState))
		fill = 1
	}
	s.WriteString(labelStyle(t).Render("CURL STATE  ") + curl + "\n")
	s.WriteString(ProgressBar(fill, sidebarWidth-8, t.Rotational, t.Border) + "\n\n")

	s.WriteString(m.slider(t) + "\n\n")
	s.WriteString(labelStyle(t).Render(fmt.Sprintf("%-14s", "FLOW TYPE")) + textStyle(t).Render(c.FlowType) + "\n")
	s.WriteString(labelStyle(t).Render(fmt.Sprintf("%-14s", "VELOCITY")) + textStyle(t).Render(c.VelocityClass) + "\n")

	status := badgeStyle(t.Irrotational).Render("▶ PLAYING")
	if !m.input.Playing {
		status = badgeStyle(t.Muted).Render("⏸ PAUSED")
	}
	s.WriteString(labelStyle(t).Render(fmt.Sprintf("%-14s", "STATUS")) + status + "\n\n")

	if len(m.speeds) > 1 {
		graph := asciigraph.Plot(m.speeds,
			asciigraph.Height(4),
			asciigraph.Width(sidebarWidth-14),
			asciigraph.Caption("speed v(r)"),
		)
		s.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Render(graph) + "\n\n")
	}

	s.WriteString(Separator(sidebarWidth-6, t) + "\n")
	s.WriteString(keyHintStyle(t).Render("SP:Play/Pause  ←→/1-3:Position\nT:Theme  ?:Help  Q:Quit"))
	return panelStyle(t, sidebarWidth).Render(s.String())
}

func (m Model) slider(t Theme) string {
	parts := make([]string, 0, len(vortex.Positions))
	for _, p := range vortex.Positions {
		c, _ := vortex.Classify(p)
		if p == m.input.Position {
			parts = append(parts, badgeStyle(t.Primary).Render("● "+strings.ToUpper(c.ShortName)))
		} else {
			parts = append(parts, labelStyle(t).Render("○ "+strings.ToUpper(c.ShortName)))
		}
	}
	return labelStyle(t).Render("ORBIT POSITION") + "\n" + strings.Join(parts, "   ")
}

func helpView(t Theme) string {
	return lipgloss.NewStyle().Foreground(t.Text).Render(`
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space/P  - Play/Pause               ║
║  1 2 3    - Center / Inner / Outer   ║
║  ←/H →/L  - Move inward / outward    ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`)
}

// Loop exposes the frame loop, mainly for tests.
func (m Model) Loop() *Loop { return m.loop }

// Run starts the full-screen terminal session and blocks until it exits.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	m.loop.Detach()
	return err
}
