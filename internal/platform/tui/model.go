package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termgold/goldmine/internal/game"
	"github.com/termgold/goldmine/internal/storage"
)

// Options configures a game session.
type Options struct {
	TickRate int // Simulation ticks per second
	Width    int // Initial terminal width
	Height   int // Initial terminal height
}

// DefaultOptions returns sensible session defaults. Ten ticks per second is
// plenty: accrual is computed from real elapsed time, the rate only bounds
// display latency.
func DefaultOptions() Options {
	return Options{
		TickRate: 10,
		Width:    80,
		Height:   24,
	}
}

// Model is the Bubble Tea model hosting one game run. It owns the loop the
// engine is driven by: measure elapsed time, feed commands, redraw.
type Model struct {
	engine   *game.Engine
	store    *storage.Store // may be nil; history is best-effort
	keys     KeyMap
	help     help.Model
	gauge    progress.Model
	tickRate int
	width    int
	height   int
	lastTick time.Time
	quitting bool
	runSaved bool
}

// NewModel creates a Bubble Tea model around an engine.
func NewModel(engine *game.Engine, store *storage.Store, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultOptions().TickRate
	}

	gauge := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	return Model{
		engine:   engine,
		store:    store,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		gauge:    gauge,
		tickRate: opts.TickRate,
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.gauge.Width = gaugeWidth(msg.Width)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if cmd := m.keys.Command(msg); cmd != game.CommandNone {
		m.engine.Apply(cmd, time.Now())
	}

	return m, nil
}

// handleTick advances the simulation by the real elapsed time since the
// previous tick. The engine clamps the step, so a stalled terminal cannot
// grant a catch-up windfall.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.engine.Tick(now.Sub(m.lastTick).Seconds())
	}
	m.lastTick = now

	return m, tickCmd(m.tickRate)
}

// saveRun records the finished run once. Best-effort: a storage failure
// never blocks quitting.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	st := m.engine.State()
	if st.LifetimeEarned <= 0 {
		return
	}

	//nolint:errcheck // Best-effort save, quitting proceeds regardless
	m.store.SaveRun(storage.RunEntry{
		LifetimeEarned: st.LifetimeEarned,
		Clicks:         st.Clicks,
		UpgradesOwned:  st.TotalOwned(),
		Achievements:   st.UnlockedCount(),
		DurationSecs:   int(time.Since(st.StartedAt).Seconds()),
	})
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render(m.engine.Snapshot())
}

// Run starts the Bubble Tea program hosting the game.
func Run(engine *game.Engine, store *storage.Store, opts Options) error {
	model := NewModel(engine, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
