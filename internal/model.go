package internal

import (
	"context"
	"time"

	"flowsync/internal/insight"
	"flowsync/internal/logging"
	"flowsync/internal/meeting"
	"flowsync/internal/meta"
	"flowsync/internal/seed"
	"flowsync/internal/task"
	"flowsync/internal/timer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgTick is delivered once per second by the clock driver.
type MsgTick struct {
	Now time.Time
}

// TaskStore receives task completion changes.
type TaskStore interface {
	SetTaskCompleted(ctx context.Context, id string, completed bool) error
}

// Model owns all dashboard state. Every mutation happens in Update.
type Model struct {
	Now          time.Time
	Timer        *timer.Timer
	Tasks        task.List
	Meetings     []meeting.Meeting
	Productivity insight.Series
	Insights     []string
	Cursor       int

	Width  int
	Height int

	ctx   context.Context
	keys  KeyMap
	help  help.Model
	store TaskStore
	log   *logging.Logger
}

type Option func(*Model)

// WithStore writes task toggles through to s.
func WithStore(s TaskStore) Option {
	return func(m *Model) { m.store = s }
}

// WithContext scopes store writes to ctx.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

func WithLogger(l *logging.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithFullHelp starts with the expanded help view.
func WithFullHelp(show bool) Option {
	return func(m *Model) { m.help.ShowAll = show }
}

// WithClock sets the initial current time.
func WithClock(now time.Time) Option {
	return func(m *Model) { m.Now = now }
}

func NewModel(data seed.Data, opts ...Option) *Model {
	m := &Model{
		Now:          time.Now(),
		Timer:        timer.New(),
		Tasks:        data.Tasks.Clone(),
		Meetings:     data.Meetings,
		Productivity: data.Productivity,
		Insights:     data.Insights,
		Width:        defaultWidth,
		ctx:          context.Background(),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		log:          logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With("component", "dashboard")
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(meta.Title)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		m.Now = msg.Now
		m.Timer.Tick()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *Model) SelectedTask() (task.Task, bool) {
	if m.Cursor >= 0 && m.Cursor < len(m.Tasks) {
		return m.Tasks[m.Cursor], true
	}
	return task.Task{}, false
}

// ToggleTask flips the completion flag of the task with the given id. An
// unknown id changes nothing.
func (m *Model) ToggleTask(id string) {
	if !m.Tasks.Toggle(id) {
		m.log.Debug("toggle ignored, no such task", "task_id", id)
		return
	}

	t, _ := m.Tasks.Find(id)
	m.log.Info("task toggled", "task_id", id, "completed", t.Completed, "completed_total", m.Tasks.CompletedCount())

	if m.store == nil {
		return
	}
	if err := m.store.SetTaskCompleted(m.ctx, id, t.Completed); err != nil {
		m.log.Warn("failed to store task toggle", "task_id", id, "error", err)
	}
}

// ToggleTimer starts or pauses the focus timer.
func (m *Model) ToggleTimer() {
	running := m.Timer.Toggle()
	m.log.Info("focus timer toggled", "running", running, "elapsed_seconds", m.Timer.Elapsed())
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.Cursor < len(m.Tasks)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.keys.ToggleTask):
		if t, ok := m.SelectedTask(); ok {
			m.ToggleTask(t.ID)
		}
	case key.Matches(msg, m.keys.Timer):
		m.ToggleTimer()
	case key.Matches(msg, m.keys.AddTask):
		// Shown on screen but not backed by any action.
		m.log.Debug("add task pressed")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}
