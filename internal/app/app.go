// Package app is the interactive strands session: an editor on top, the
// arrow canvas below it, and a permissiveness slider that drives the
// threshold.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/strands/editor"
	"github.com/iw2rmb/strands/internal/config"
	"github.com/iw2rmb/strands/internal/logging"
	"github.com/iw2rmb/strands/render/term"
	"github.com/iw2rmb/strands/trigram"
)

type Options struct {
	// Model is shared with the caller; nil starts from an empty model.
	Model  *trigram.Model
	Text   string
	Config config.Config
	Logger *slog.Logger
	// Renderer defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
	// StartDir is where the corpus picker opens. Empty means ".".
	StartDir string
	// Loaded are the results of corpus files ingested before the session;
	// failures among them are shown on the status line.
	Loaded []trigram.Result
}

type mode int

const (
	modeEdit mode = iota
	modePick
)

type Model struct {
	keys KeyMap
	cfg  config.Config
	s    *session

	editor editor.Model
	canvas viewport.Model
	slider progress.Model
	picker filepicker.Model
	help   help.Model

	mode     mode
	status   string
	renderer *lipgloss.Renderer
	styles   styles

	width, height int
}

type styles struct {
	label, status, failure, rule lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		label:   r.NewStyle().Foreground(lipgloss.Color("245")),
		status:  r.NewStyle().Foreground(lipgloss.Color("250")),
		failure: r.NewStyle().Foreground(lipgloss.Color("203")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func New(opt Options) Model {
	if opt.Model == nil {
		opt.Model = trigram.New()
	}
	if opt.Renderer == nil {
		opt.Renderer = lipgloss.DefaultRenderer()
	}
	if opt.StartDir == "" {
		opt.StartDir = "."
	}

	s := &session{
		model: opt.Model,
		geom:  opt.Config.FrameGeometry(),
		log:   logging.OrDiscard(opt.Logger),
	}
	s.setValue(opt.Config.Value)

	keys := DefaultKeyMap()
	ed := editor.New(editor.Config{
		Text:         opt.Text,
		ShowLineNums: true,
		Style:        editor.StyleFor(opt.Renderer),
		KeyMap:       keys.Editor,
		Clipboard:    &editor.MemoryClipboard{},
		OnChange: func(ev editor.ChangeEvent) {
			if ev.TextChanged {
				s.dirty = true
			}
		},
	})

	picker := filepicker.New()
	picker.CurrentDirectory = opt.StartDir

	m := Model{
		keys:     keys,
		cfg:      opt.Config,
		s:        s,
		editor:   ed,
		canvas:   viewport.New(0, 0),
		slider:   progress.New(progress.WithSolidFill("#f2a33a"), progress.WithoutPercentage()),
		picker:   picker,
		help:     help.New(),
		renderer: opt.Renderer,
		styles:   newStyles(opt.Renderer),
	}
	m.status = m.loadFailures(opt.Loaded)
	s.replan(ed.Buffer())
	m.refreshCanvas()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Value is the current slider position.
func (m Model) Value() float64 { return m.s.value }

// Threshold is the frequency arrows currently have to exceed.
func (m Model) Threshold() float64 { return m.s.threshold() }

// Text is the editor contents.
func (m Model) Text() string { return m.editor.Buffer().Text() }

// Status is the last status line message.
func (m Model) Status() string { return m.status }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	if m.s.dirty {
		m.s.replan(m.editor.Buffer())
		m.refreshCanvas()
	}
	m.followCursor()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case loadedMsg:
		return m.handleLoaded(msg), nil

	case exportedMsg:
		if msg.err != nil {
			m.status = m.styles.failure.Render("export failed: " + msg.err.Error())
		} else {
			m.status = "exported " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.canvas, cmd = m.canvas.Update(msg)
		return m, cmd
	}

	// Directory listings for the picker arrive as their own messages.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.mode == modePick {
		if key.Matches(msg, m.keys.Cancel) {
			m.mode = modeEdit
			return m, nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.mode = modeEdit
			m.status = "loading " + path
			return m, loadCmd(path, m.cfg.Encoding, m.s.log)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Load):
		m.mode = modePick
		return m, m.picker.Init()
	case key.Matches(msg, m.keys.Clear):
		m.s.model.Clear()
		m.s.dirty = true
		m.status = "model cleared"
		m.s.log.Info("model cleared")
	case key.Matches(msg, m.keys.Export):
		m.status = "exporting " + m.cfg.Export.Path
		return m, exportCmd(m.cfg.Export.Path, m.s.frame, m.s.geom, m.s.log)
	case key.Matches(msg, m.keys.FineUp):
		m.s.setValue(m.s.value + m.cfg.Slider.FineStep)
	case key.Matches(msg, m.keys.FineDown):
		m.s.setValue(m.s.value - m.cfg.Slider.FineStep)
	case key.Matches(msg, m.keys.CoarseUp):
		m.s.setValue(m.s.value + m.cfg.Slider.CoarseStep)
	case key.Matches(msg, m.keys.CoarseDown):
		m.s.setValue(m.s.value - m.cfg.Slider.CoarseStep)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLoaded(msg loadedMsg) Model {
	res := msg.result
	m.s.model.Merge(msg.staged)
	m.s.dirty = true
	if !res.OK() {
		m.status = m.styles.failure.Render(fmt.Sprintf("load failed: %v", res.Err))
		return m
	}
	m.status = fmt.Sprintf("loaded %s: %d trigrams, %d distinct in model",
		res.Path, res.Recorded, m.s.model.Len())
	return m
}

func (m Model) loadFailures(results []trigram.Result) string {
	var failed []string
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r.Err.Error())
		}
	}
	if len(failed) == 0 {
		return ""
	}
	return m.styles.failure.Render("load failed: " + strings.Join(failed, "; "))
}

func (m *Model) refreshCanvas() {
	m.canvas.SetContent(term.Render(m.s.frame, term.Options{Renderer: m.renderer}))
}

// followCursor keeps the three canvas rows of the cursor's line in view.
func (m *Model) followCursor() {
	h := m.canvas.Height
	if h <= 0 {
		return
	}
	top := 3 * m.editor.Buffer().Cursor().Row
	switch y := m.canvas.YOffset; {
	case top < y:
		m.canvas.SetYOffset(top)
	case top+3 > y+h:
		m.canvas.SetYOffset(top + 3 - h)
	}
}
