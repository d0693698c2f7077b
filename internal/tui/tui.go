// Package tui implements the interactive terminal form for generating
// and exporting worksheets.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eduforge/worksheet-api/internal/domain"
	"github.com/eduforge/worksheet-api/internal/export"
)

// WorksheetGenerator is the service boundary the TUI depends on.
// Satisfied by *generation.Service.
type WorksheetGenerator interface {
	GenerateWorksheet(ctx context.Context, req domain.WorksheetRequest) (*domain.Worksheet, error)
}

type state int

const (
	stateForm state = iota
	stateGenerating
	stateResult
)

// Field order in the form.
const (
	fieldBoard = iota
	fieldGrade
	fieldSubject
	fieldTopic
	fieldStream
	fieldCount
	fieldTotal
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3333"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var fieldLabels = [fieldTotal]string{
	"School board",
	"Class / grade",
	"Subject",
	"Topic or chapter",
	"Stream (optional)",
	"Number of questions",
}

type generatedMsg struct {
	worksheet *domain.Worksheet
}

type generationFailedMsg struct {
	err error
}

type exportedMsg struct {
	path string
}

type exportFailedMsg struct {
	err error
}

// Model is the root Bubble Tea model for the worksheet form.
type Model struct {
	generator WorksheetGenerator

	inputs  [fieldTotal]textinput.Model
	focus   int
	loader  spinner.Model
	state   state
	started time.Time

	worksheet *domain.Worksheet
	err       error
	status    string
}

// New creates the form model with sensible placeholder values.
func New(generator WorksheetGenerator) Model {
	placeholders := [fieldTotal]string{
		"e.g. CBSE",
		"e.g. 12",
		"e.g. Physics",
		"e.g. Electromagnetic Induction",
		"e.g. Science",
		fmt.Sprintf("%d-%d, default %d",
			domain.MinQuestionCount, domain.MaxQuestionCount, domain.DefaultQuestionCount),
	}
	limits := [fieldTotal]int{
		domain.MaxFieldLength,
		domain.MaxGradeLength,
		domain.MaxFieldLength,
		domain.MaxTopicLength,
		domain.MaxFieldLength,
		2,
	}

	m := Model{generator: generator}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Prompt = "> "
		m.inputs[i] = ti
	}
	m.inputs[fieldBoard].Focus()

	m.loader = spinner.New(
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		spinner.WithSpinner(spinner.Dot),
	)

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// request builds the domain request from the current form values. The
// count field falls back to zero on garbage so Normalize applies the
// default; Validate catches genuinely out-of-range values.
func (m Model) request() domain.WorksheetRequest {
	count, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldCount].Value()))

	return domain.WorksheetRequest{
		Board:         m.inputs[fieldBoard].Value(),
		Grade:         m.inputs[fieldGrade].Value(),
		Subject:       m.inputs[fieldSubject].Value(),
		Topic:         m.inputs[fieldTopic].Value(),
		Stream:        m.inputs[fieldStream].Value(),
		QuestionCount: count,
	}
}

func (m Model) generateCmd(req domain.WorksheetRequest) tea.Cmd {
	return func() tea.Msg {
		ws, err := m.generator.GenerateWorksheet(context.Background(), req)
		if err != nil {
			return generationFailedMsg{err: err}
		}
		return generatedMsg{worksheet: ws}
	}
}

func (m Model) exportCmd(format string) tea.Cmd {
	ws := m.worksheet
	return func() tea.Msg {
		path := export.Filename(ws.Metadata.Subject, ws.Metadata.Topic, format)

		f, err := os.Create(path)
		if err != nil {
			return exportFailedMsg{err: err}
		}
		defer f.Close()

		switch format {
		case "csv":
			err = export.WriteCSV(f, ws)
		case "pdf":
			err = export.WritePDF(f, ws)
		default:
			err = export.WriteText(f, ws)
		}
		if err != nil {
			return exportFailedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd

	case generatedMsg:
		m.state = stateResult
		m.worksheet = msg.worksheet
		m.err = nil
		m.status = fmt.Sprintf("Generated in %s with %d attempt(s).",
			time.Since(m.started).Round(time.Second), msg.worksheet.Metadata.Attempts)
		return m, nil

	case generationFailedMsg:
		m.state = stateForm
		m.err = msg.err
		return m, nil

	case exportedMsg:
		m.status = "Saved " + msg.path
		return m, nil

	case exportFailedMsg:
		m.status = errorStyle.Render("Export failed: " + msg.err.Error())
		return m, nil
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateGenerating:
		// Only ctrl+c works while a request is in flight.
		return m, nil

	case stateResult:
		switch msg.String() {
		case "t":
			return m, m.exportCmd("txt")
		case "c":
			return m, m.exportCmd("csv")
		case "p":
			return m, m.exportCmd("pdf")
		case "n", "esc":
			m.state = stateForm
			m.status = ""
			return m, nil
		case "q":
			return m, tea.Quit
		}
		return m, nil

	default:
		return m.updateForm(msg)
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "enter":
		if m.focus < fieldTotal-1 {
			return m.moveFocus(1), nil
		}

		req := m.request()
		req.Normalize()
		if err := req.Validate(); err != nil {
			m.err = err
			return m, nil
		}

		m.state = stateGenerating
		m.err = nil
		m.status = ""
		m.started = time.Now()
		return m, tea.Batch(m.loader.Tick, m.generateCmd(req))
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldTotal) % fieldTotal
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Worksheet Generator"))
	b.WriteString("\n\n")

	switch m.state {
	case stateGenerating:
		b.WriteString(m.loader.View())
		b.WriteString(" Generating worksheet, this can take a minute...\n")

	case stateResult:
		b.WriteString(m.worksheet.Text)
		b.WriteString("\n\n")
		if m.status != "" {
			b.WriteString(statusStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("t: save text  c: save CSV  p: save PDF  n: new worksheet  q: quit"))
		b.WriteString("\n")

	default:
		for i := range m.inputs {
			b.WriteString(labelStyle.Render(fieldLabels[i]))
			b.WriteString("\n")
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab: next field  enter on last field: generate  esc: quit"))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the interactive program and blocks until the user quits.
func Run(generator WorksheetGenerator) error {
	p := tea.NewProgram(New(generator))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}
	return nil
}
