package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/pairs/internal/game"
	"github.com/idilsaglam/pairs/internal/store"
)

// Options tune the board behavior.
type Options struct {
	// RevealFor is how long a mismatched pair stays visible before the
	// scheduled conceal lands.
	RevealFor time.Duration
	// Record is called with the result of a finished game. Nil disables
	// recording; a failure is shown on the summary but never blocks play.
	Record func(store.Entry) ([]store.Entry, error)
}

// concealMsg is the scheduled hide for a mismatched pair. It carries the
// session epoch so a conceal that outlives a restart lands as a no-op.
type concealMsg struct {
	epoch uint64
	a, b  int
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Flip    key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Restart, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Flip, k.Restart, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Flip:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "flip")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

// Model is the Bubble Tea model for one game of pairs.
type Model struct {
	session   *game.Session
	revealFor time.Duration
	record    func(store.Entry) ([]store.Entry, error)

	cursor    int
	stopwatch stopwatch.Model
	keys      keyMap
	help      help.Model

	width  int
	height int

	finished bool
	summary  store.Entry
	saveErr  string
}

// New builds the board model for a session.
func New(session *game.Session, opts Options) Model {
	if opts.RevealFor <= 0 {
		opts.RevealFor = 900 * time.Millisecond
	}
	return Model{
		session:   session,
		revealFor: opts.RevealFor,
		record:    opts.Record,
		stopwatch: stopwatch.NewWithInterval(time.Second),
		keys:      defaultKeyMap(),
		help:      help.New(),
		// A zero-pair deck is already won.
		finished: session.Complete(),
	}
}

// Run starts the interactive board and blocks until the player quits.
func Run(session *game.Session, opts Options) error {
	p := tea.NewProgram(New(session, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case concealMsg:
		// The session state-checks the epoch; stale conceals die here.
		m.session.Conceal(msg.epoch, msg.a, msg.b)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			return m.restart()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.finished {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < m.session.TotalPairs()*2-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if cols := m.columns(); m.cursor-cols >= 0 {
				m.cursor -= cols
			}
		case key.Matches(msg, m.keys.Down):
			if cols := m.columns(); cols > 0 && m.cursor+cols < m.session.TotalPairs()*2 {
				m.cursor += cols
			}
		case key.Matches(msg, m.keys.Flip):
			return m.flip()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

// flip reveals the card under the cursor and reacts to what the session says
// happened.
func (m Model) flip() (Model, tea.Cmd) {
	cards := m.session.Cards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return m, nil
	}
	// Face-up cards are not worth a reveal event; the session would ignore
	// it anyway.
	if cards[m.cursor].State != game.Hidden {
		return m, nil
	}

	res := m.session.Reveal(m.cursor)
	var cmds []tea.Cmd

	// The clock starts with the first flip and only once.
	if res.Event != game.EventIgnored && !m.stopwatch.Running() {
		cmds = append(cmds, m.stopwatch.Start())
	}

	switch res.Event {
	case game.EventMismatched:
		msg := concealMsg{epoch: res.Epoch, a: res.Positions[0], b: res.Positions[1]}
		cmds = append(cmds, tea.Tick(m.revealFor, func(time.Time) tea.Msg { return msg }))

	case game.EventMatched:
		if res.Complete {
			m.finished = true
			cmds = append(cmds, m.stopwatch.Stop())
			m.summary = store.Entry{
				Pairs:    m.session.TotalPairs(),
				Moves:    m.session.Moves(),
				Stars:    m.session.Stars(),
				Seconds:  int(m.stopwatch.Elapsed().Seconds()),
				PlayedAt: time.Now().UTC(),
			}
			if m.record != nil && m.summary.Pairs > 0 {
				if _, err := m.record(m.summary); err != nil {
					m.saveErr = err.Error()
				}
			}
		}
	}
	return m, tea.Batch(cmds...)
}

// restart resets the session. Bumping the session epoch already invalidated
// any conceal still ticking.
func (m Model) restart() (Model, tea.Cmd) {
	m.session.Reset()
	m.finished = m.session.Complete()
	m.summary = store.Entry{}
	m.saveErr = ""
	m.cursor = 0
	return m, tea.Batch(m.stopwatch.Stop(), m.stopwatch.Reset())
}

// columns picks a near-square grid for the deck size.
func (m Model) columns() int {
	return gridColumns(m.session.TotalPairs() * 2)
}

func gridColumns(cards int) int {
	if cards <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(cards))))
}
