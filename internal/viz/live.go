package viz

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/anneal/internal/anneal"
)

// ErrInterrupted is returned by RunLive when the view is closed before the
// run completes.
var ErrInterrupted = errors.New("viz: live view closed before the run finished")

// StepMsg carries one iteration into the live view.
type StepMsg anneal.Step

// DoneMsg ends the run.
type DoneMsg struct {
	Result *anneal.Result
	Err    error
}

// LiveModel follows a run as Steps arrive.
type LiveModel struct {
	objective     string
	kmax          int
	width, height int
	exitOnDone    bool

	costs  []float64
	last   anneal.Step
	seen   bool
	done   bool
	result *anneal.Result
	err    error
}

func NewLiveModel(objective string, kmax, width, height int) LiveModel {
	return LiveModel{
		objective: objective,
		kmax:      kmax,
		width:     width,
		height:    height,
		costs:     make([]float64, 0, kmax),
	}
}

func (m LiveModel) Init() tea.Cmd {
	return nil
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case StepMsg:
		m.last = anneal.Step(msg)
		m.seen = true
		m.costs = append(m.costs, msg.Cost)
	case DoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		if m.exitOnDone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LiveModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("anneal live: %s", m.objective)))
	b.WriteString("\n")
	b.WriteString(row("iteration", fmt.Sprintf("%d / %d", len(m.costs), m.kmax)))
	b.WriteString("\n")

	if m.seen {
		b.WriteString(row("temperature", fmt.Sprintf("%.4f", m.last.Temperature)))
		b.WriteString("\n")
		b.WriteString(row("incumbent", formatPoint(m.last.Incumbent)))
		b.WriteString("\n")
		b.WriteString(row("cost", bestStyle.Render(fmt.Sprintf("%.6g", m.last.Cost))))
		b.WriteString("\n")
		b.WriteString(row("last proposal", fmt.Sprintf("%s p=%.3g", formatPoint(m.last.Proposal), m.last.Probability)))
		b.WriteString("\n")
	}

	if len(m.costs) > 1 {
		chart := asciigraph.Plot(m.costs,
			asciigraph.Height(m.height),
			asciigraph.Width(m.width),
			asciigraph.Caption("incumbent cost"),
		)
		b.WriteString(graphStyle.Render(chart))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	case m.done:
		b.WriteString(bestStyle.Render("done"))
	}

	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}

// Done reports whether the run finished, with its outcome.
func (m LiveModel) Done() (bool, *anneal.Result, error) {
	return m.done, m.result, m.err
}

type LiveOptions struct {
	Width  int
	Height int
	// ExitOnDone closes the view as soon as the run finishes instead of
	// waiting for a key press.
	ExitOnDone     bool
	ProgramOptions []tea.ProgramOption
}

// RunLive runs the annealer in the background and follows it in a Bubble
// Tea program. It registers an observer on a.
func RunLive(a *anneal.Annealer, cfg anneal.Config, objective string, opts LiveOptions) (*anneal.Result, error) {
	m := NewLiveModel(objective, cfg.Kmax, opts.Width, opts.Height)
	m.exitOnDone = opts.ExitOnDone

	p := tea.NewProgram(m, opts.ProgramOptions...)
	a.AddObserver(anneal.ObserverFunc(func(s anneal.Step) {
		p.Send(StepMsg(s))
	}))

	go func() {
		result, err := a.Run(cfg)
		p.Send(DoneMsg{Result: result, Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	done, result, runErr := final.(LiveModel).Done()
	if !done {
		return nil, ErrInterrupted
	}
	return result, runErr
}
