package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/repcoach/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// restExtendStep is how much "+" adds to a running countdown.
const restExtendStep = 15 * time.Second

type restKeyMap struct {
	Toggle key.Binding
	Extend key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func (k restKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Extend, k.Reset, k.Quit}
}

func (k restKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newRestKeyMap() restKeyMap {
	return restKeyMap{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Extend: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add 15s")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// restModel counts down one rest interval.
type restModel struct {
	total    time.Duration
	timer    timer.Model
	progress progress.Model
	keys     restKeyMap
	help     help.Model

	done bool
}

func newRestModel(d time.Duration) restModel {
	return restModel{
		total:    d,
		timer:    timer.NewWithInterval(d, time.Second),
		progress: progress.New(progress.WithGradient(string(formatter.ColorGreen), string(formatter.ColorHeader))),
		keys:     newRestKeyMap(),
		help:     help.New(),
	}
}

func (m restModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m restModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		if msg.ID != m.timer.ID() {
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-4, 10), 60)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m, m.timer.Toggle()
		case key.Matches(msg, m.keys.Extend):
			m.timer.Timeout += restExtendStep
			m.total += restExtendStep
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.timer.Timeout = m.total
			if !m.timer.Running() {
				return m, m.timer.Start()
			}
			return m, nil
		}
	}
	return m, nil
}

// elapsed is the fraction of the interval already rested.
func (m restModel) elapsed() float64 {
	if m.total <= 0 {
		return 1
	}
	f := 1 - float64(m.timer.Timeout)/float64(m.total)
	return min(max(f, 0), 1)
}

func (m restModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("REST"))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(formatter.StyleGreen.Render("Rest over. Next set!"))
		b.WriteString("\n")
		return b.String()
	}

	remaining := formatRemaining(m.timer.Timeout)
	if !m.timer.Running() {
		remaining += formatter.Dim("  (paused)")
	}
	b.WriteString(formatter.Bold(remaining))
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(m.elapsed()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// formatRemaining renders a countdown as m:ss.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
