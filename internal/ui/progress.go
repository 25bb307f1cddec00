package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"glint/internal/pipeline"
)

const labelWidth = 8

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// fileRow is the last known state of one file.
type fileRow struct {
	path    string
	stage   pipeline.Stage
	status  pipeline.Status
	elapsed time.Duration
	errText string
}

func (r fileRow) label() string {
	switch r.status {
	case pipeline.StatusDone:
		return "ok"
	case pipeline.StatusCached:
		return "cached"
	case pipeline.StatusError:
		return "error"
	case pipeline.StatusWorking:
		switch r.stage {
		case pipeline.StageLex:
			return "lexing"
		case pipeline.StageParse:
			return "parsing"
		case pipeline.StageCache:
			return "caching"
		}
	}
	return "queued"
}

func (r fileRow) style() lipgloss.Style {
	switch r.status {
	case pipeline.StatusDone, pipeline.StatusCached:
		return okStyle
	case pipeline.StatusError:
		return errStyle
	case pipeline.StatusWorking:
		return activeStyle
	}
	return idleStyle
}

// weight is the row's share of overall progress: started files count half.
func (r fileRow) weight() float64 {
	switch {
	case r.status.Terminal():
		return 1
	case r.status == pipeline.StatusWorking:
		return 0.5
	}
	return 0
}

type progressModel struct {
	title  string
	events <-chan pipeline.Event

	spinner spinner.Model
	bar     progress.Model

	rows  []fileRow
	byKey map[string]int
	width int
	done  bool
}

type eventMsg pipeline.Event
type doneMsg struct{}

// NewProgressModel renders per-file progress of a check run fed by events.
// Files that only show up in events are appended to the list.
func NewProgressModel(title string, files []string, events <-chan pipeline.Event) tea.Model {
	return newProgressModel(title, files, events)
}

func newProgressModel(title string, files []string, events <-chan pipeline.Event) *progressModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(activeStyle))
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(76))

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		byKey:   make(map[string]int, len(files)),
		width:   80,
	}
	for _, f := range files {
		m.row(f)
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(pipeline.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n\n")

	pathWidth := max(m.width-labelWidth-16, 20)
	for _, r := range m.rows {
		fmt.Fprintf(&b, "  %s %s", r.style().Render(fmt.Sprintf("%*s", labelWidth, r.label())), truncate(r.path, pathWidth))
		switch {
		case r.errText != "":
			b.WriteString("  " + errStyle.Render(truncate(r.errText, max(m.width/2, 20))))
		case r.status.Terminal() && r.elapsed > 0:
			b.WriteString("  " + dimStyle.Render(r.elapsed.Round(time.Microsecond).String()))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *progressModel) header() string {
	finished, failed := m.counts()
	h := fmt.Sprintf("%s %d/%d", m.title, finished, len(m.rows))
	if failed > 0 {
		h += fmt.Sprintf(", %d failed", failed)
	}
	if m.done {
		return "done: " + h
	}
	return m.spinner.View() + " " + h
}

// next waits for the following event; a closed channel ends the model.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) row(path string) *fileRow {
	i, ok := m.byKey[path]
	if !ok {
		i = len(m.rows)
		m.rows = append(m.rows, fileRow{path: path, status: pipeline.StatusQueued})
		m.byKey[path] = i
	}
	return &m.rows[i]
}

func (m *progressModel) apply(ev pipeline.Event) tea.Cmd {
	if ev.File == "" {
		return nil
	}
	r := m.row(ev.File)
	r.stage, r.status = ev.Stage, ev.Status
	if ev.Elapsed > 0 {
		r.elapsed = ev.Elapsed
	}
	if ev.Err != nil {
		r.errText = firstLine(ev.Err.Error())
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		sum += r.weight()
	}
	return sum / float64(len(m.rows))
}

func (m *progressModel) counts() (finished, failed int) {
	for _, r := range m.rows {
		if r.status.Terminal() {
			finished++
		}
		if r.status == pipeline.StatusError {
			failed++
		}
	}
	return finished, failed
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate shortens value to width display cells, marking the cut with "...".
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
