// Package tui implements the Bubble Tea console for aurora.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurora-ops/aurora/internal/aurora"
	"github.com/aurora-ops/aurora/internal/core/catalog"
	"github.com/aurora-ops/aurora/internal/core/command"
	"github.com/aurora-ops/aurora/internal/core/task"
)

// focusArea identifies which panel receives key input.
type focusArea int

const (
	focusInput focusArea = iota
	focusBoard
)

// sampleInput is the raw-paste example surfaced by the "load sample" key,
// the same three products the board has always shipped with.
const sampleInput = `Aurora Performance Tee | AUR-TEE-01 | 799 | Activewear | 120 | Quick dry fabric with reflective strip | sports;running;fitness
Nebula Luxe Saree | NBL-SAE-23 | 1499 | Ethnic Wear | 80 | Soft silk blend with zari border | festive;wedding;traditional
Lumos Night Lamp | LUM-LMP-09 | 1299 | Home Decor | 60 | Rechargeable, 3 brightness modes | lighting;home;gift`

// outcomeMsg carries an interpreter result back into the update loop.
type outcomeMsg struct {
	outcome command.Outcome
}

// errMsg carries a shell-level failure (store access, export write).
type errMsg struct {
	err error
}

// exportedMsg reports a completed CSV export.
type exportedMsg struct {
	path string
}

// Model is the console state. It is the single writer for all mutable
// session state: tasks flow through the store, catalog state lives here.
type Model struct {
	app *aurora.App

	input textinput.Model
	convo viewport.Model

	width  int
	height int
	ready  bool

	focus    focusArea
	selected int

	marketplace catalog.Marketplace
	rawCatalog  string
	rows        []catalog.OutputRow
	tasks       []task.Task

	showHelp bool
	status   string
	err      error
}

// New creates the console model. The assistant greeting is appended here
// so a fresh session always opens with it.
func New(app *aurora.App) Model {
	input := textinput.New()
	input.Placeholder = "Type a command… (help lists what I understand)"
	input.CharLimit = 280
	input.Focus()

	m := Model{
		app:         app,
		input:       input,
		marketplace: catalog.Marketplace(app.Config.Catalog.DefaultMarketplace),
	}

	if len(app.Assistant.History()) == 0 {
		app.Assistant.Greet()
	}
	m.tasks = m.loadTasks()

	return m
}

func (m Model) loadTasks() []task.Task {
	tasks, err := m.app.Tasks.List(context.Background(), task.ListFilter{})
	if err != nil {
		return nil
	}
	return tasks
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// runCommand interprets the input against the current snapshot in a
// command, keeping the update loop free while a speech command plays.
func (m Model) runCommand(input string) tea.Cmd {
	snapshot := command.Context{
		Tasks:       m.tasks,
		RawCatalog:  m.rawCatalog,
		CatalogRows: m.rows,
		Marketplace: m.marketplace,
	}
	app := m.app
	return func() tea.Msg {
		outcome, err := app.Assistant.Handle(context.Background(), input, snapshot)
		if err != nil {
			return errMsg{err}
		}
		return outcomeMsg{outcome}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.convo = viewport.New(msg.Width-4, convoHeight(msg.Height))
		m.ready = true
		m.refreshConvo()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case outcomeMsg:
		m.tasks = msg.outcome.Tasks
		m.rows = msg.outcome.CatalogRows
		m.err = nil
		m.status = ""
		m.refreshConvo()
		return m, nil

	case exportedMsg:
		m.status = "exported " + msg.path
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.focus == focusBoard {
			m.focus = focusInput
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, tea.Quit

	case "tab":
		if m.focus == focusInput {
			m.focus = focusBoard
			m.input.Blur()
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
		return m, nil

	case "ctrl+n":
		// Switching the channel always clears generated rows so stale
		// cross-marketplace listings never linger on screen.
		m.marketplace = nextMarketplace(m.marketplace)
		m.rows = nil
		return m, nil

	case "ctrl+l":
		m.rawCatalog = sampleInput
		m.status = "sample catalog loaded"
		return m, nil

	case "ctrl+g":
		return m, m.runCommand("generate catalog")

	case "ctrl+e":
		return m, m.exportCmd()

	case "ctrl+_":
		m.showHelp = true
		return m, nil
	}

	if m.focus == focusBoard {
		return m.handleBoardKey(msg)
	}

	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		if input == "" {
			return m, nil
		}
		if input == "?" {
			m.showHelp = true
			m.input.SetValue("")
			return m, nil
		}
		m.input.SetValue("")
		return m, m.runCommand(input)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleBoardKey mirrors the original board buttons: move the cursor, set
// the selected task's status.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}
	case "p":
		return m.setSelectedStatus(task.StatusPending)
	case "i":
		return m.setSelectedStatus(task.StatusInProgress)
	case "c":
		return m.setSelectedStatus(task.StatusCompleted)
	case "m":
		m.marketplace = nextMarketplace(m.marketplace)
		m.rows = nil
	case "?":
		m.showHelp = true
	}
	return m, nil
}

func (m Model) setSelectedStatus(status task.Status) (tea.Model, tea.Cmd) {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return m, nil
	}

	id := m.tasks[m.selected].ID
	if err := m.app.Tasks.UpdateStatus(context.Background(), id, status); err != nil {
		m.err = err
		return m, nil
	}

	m.tasks = m.loadTasks()
	return m, nil
}

func (m Model) exportCmd() tea.Cmd {
	if len(m.rows) == 0 {
		return func() tea.Msg {
			return errMsg{catalog.ErrNoRecords}
		}
	}

	app := m.app
	rows := m.rows
	marketplace := m.marketplace
	return func() tea.Msg {
		path, err := app.Catalog.WriteExport(rows, marketplace, "")
		if err != nil {
			return errMsg{err}
		}
		return exportedMsg{path}
	}
}

// nextMarketplace cycles through the channel list in display order.
func nextMarketplace(m catalog.Marketplace) catalog.Marketplace {
	for i, key := range catalog.Marketplaces {
		if key == m {
			return catalog.Marketplaces[(i+1)%len(catalog.Marketplaces)]
		}
	}
	return catalog.Marketplaces[0]
}

func convoHeight(total int) int {
	h := total / 3
	if h < 5 {
		h = 5
	}
	return h
}
