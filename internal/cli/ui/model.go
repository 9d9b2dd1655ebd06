// Package ui implements the interactive session as a Bubble Tea program:
// a prompt for file paths, a scrollback of results, and a picker view over
// the discovered inputs.
package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
)

// Runner is the slice of the engine and history the session needs. The
// concrete implementation lives in the cli package; tests substitute fakes.
type Runner interface {
	// Process runs one file through the pipeline and records it.
	Process(ctx context.Context, path string) insight.FileReport
	// Summary renders the session summary accumulated so far.
	Summary() string
	// Discover lists the eligible input files under the working directory.
	Discover() ([]string, error)
}

const listHeightMargin = 6

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("62")).Padding(0, 1)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type sessionMode int

const (
	modePrompt sessionMode = iota
	modeBusy
	modePicking
)

// fileDoneMsg carries a finished file back into the update loop.
type fileDoneMsg struct{ report insight.FileReport }

// pickReadyMsg carries the discovered inputs for the picker view.
type pickReadyMsg struct {
	paths []string
	err   error
}

// pathItem adapts a file path to the list component.
type pathItem string

func (p pathItem) FilterValue() string { return string(p) }
func (p pathItem) Title() string       { return string(p) }
func (p pathItem) Description() string { return "" }

// Model is the session state.
type Model struct {
	runner  Runner
	version string

	input   textinput.Model
	spinner spinner.Model
	picker  list.Model

	mode    sessionMode
	current string
	lines   []string
	width   int
	height  int

	quitting bool
}

// NewModel builds a session over runner. version appears in the banner.
func NewModel(runner Runner, version string) *Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("file> ")
	ti.Placeholder = "path, or quit / summary / pick"
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	picker := list.New([]list.Item{}, delegate, 0, 0)
	picker.Title = "Pick a file"
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(true)
	picker.DisableQuitKeybindings()

	return &Model{
		runner:  runner,
		version: version,
		input:   ti,
		spinner: sp,
		picker:  picker,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := m.height - listHeightMargin
		if h < 1 {
			h = 1
		}
		m.picker.SetSize(m.width, h)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		if m.mode != modeBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fileDoneMsg:
		m.appendReport(msg.report)
		m.mode = modePrompt
		m.current = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case pickReadyMsg:
		if msg.err != nil {
			m.lines = append(m.lines, failStyle.Render("pick: ")+msg.err.Error())
			m.mode = modePrompt
			return m, nil
		}
		if len(msg.paths) == 0 {
			m.lines = append(m.lines, warnStyle.Render("pick: no input files found"))
			m.mode = modePrompt
			return m, nil
		}
		items := make([]list.Item, len(msg.paths))
		for i, p := range msg.paths {
			items[i] = pathItem(p)
		}
		m.mode = modePicking
		return m, m.picker.SetItems(items)
	}

	if m.mode == modePrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeBusy:
		return m, nil

	case modePicking:
		switch msg.String() {
		case "esc":
			m.mode = modePrompt
			m.input.Focus()
			return m, textinput.Blink
		case "enter":
			item, ok := m.picker.SelectedItem().(pathItem)
			if !ok {
				return m, nil
			}
			m.mode = modePrompt
			return m.startProcessing(string(item))
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	default: // modePrompt
		if msg.String() == "enter" {
			return m.submit(strings.TrimSpace(m.input.Value()))
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// submit interprets the prompt line: a sentinel or a file path. Sentinels
// match case-insensitively.
func (m *Model) submit(value string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(value) {
	case "":
		return m, nil
	case insight.QuitSentinel:
		m.quitting = true
		return m, tea.Quit
	case insight.SummarySentinel:
		m.lines = append(m.lines, "", m.runner.Summary(), "")
		m.input.SetValue("")
		return m, nil
	case insight.PickSentinel:
		m.mode = modeBusy
		m.input.SetValue("")
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			paths, err := m.runner.Discover()
			return pickReadyMsg{paths: paths, err: err}
		})
	default:
		return m.startProcessing(value)
	}
}

func (m *Model) startProcessing(path string) (tea.Model, tea.Cmd) {
	m.mode = modeBusy
	m.current = path
	m.input.SetValue("")
	m.input.Blur()
	runner := m.runner
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return fileDoneMsg{report: runner.Process(context.Background(), path)}
	})
}

func (m *Model) appendReport(r insight.FileReport) {
	name := filepath.Base(r.Input)
	if r.Succeeded() {
		m.lines = append(m.lines,
			fmt.Sprintf("%s %s (%s, %s)", successStyle.Render("ok"), name, r.Format, formatDuration(r.Duration)))
		for _, line := range strings.Split(r.Summary, "\n") {
			m.lines = append(m.lines, "   "+line)
		}
		m.lines = append(m.lines, hintStyle.Render("   wrote "+r.OutputPath))
	} else {
		m.lines = append(m.lines,
			fmt.Sprintf("%s %s: %s", failStyle.Render("failed"), name, r.Error))
	}
	if r.Warning != "" {
		m.lines = append(m.lines, warnStyle.Render("   warning: "+r.Warning))
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "bye\n"
	}

	var b strings.Builder
	b.WriteString(bannerStyle.Render(fmt.Sprintf("file-insight %s", m.version)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter a file path, or: quit, summary, pick"))
	b.WriteString("\n\n")

	for _, line := range m.tailLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch m.mode {
	case modeBusy:
		b.WriteString(fmt.Sprintf("\n%s processing %s\n", m.spinner.View(), m.current))
	case modePicking:
		b.WriteString("\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter: select  esc: cancel"))
		b.WriteString("\n")
	default:
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

// tailLines keeps the scrollback within the terminal height.
func (m *Model) tailLines() []string {
	budget := m.height - listHeightMargin
	if budget < 1 || len(m.lines) <= budget {
		return m.lines
	}
	return m.lines[len(m.lines)-budget:]
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
