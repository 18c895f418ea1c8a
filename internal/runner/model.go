package runner

import (
	"context"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/toolbelt/internal/messages"
	"github.com/ryan-rushton/toolbelt/internal/output"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/store"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

// NoticeDuration is how long a notice stays up.
const NoticeDuration = 3 * time.Second

// Notice texts.
const (
	NoticeCopied        = "Copied to clipboard"
	NoticeNothingToCopy = "Nothing to copy"
	NoticeNothingToSave = "Nothing to save"
	NoticeReset         = "Tool has been reset"
	NoticeFeedback      = "Thank you! Your feedback helps us improve."
	NoticeSaveFailed    = "Failed to save file"
	NoticeCopyFailed    = "Failed to copy to clipboard"
)

type viewState int

const (
	stateEdit viewState = iota
	stateProcessing
	stateResult
	stateError
)

type doneMsg struct {
	run    int
	result transform.Result
	err    error
}

type progressMsg struct {
	run     int
	percent int
	ch      <-chan int
}

type tutorialMsg struct {
	show bool
}

type savedMsg struct {
	paths []string
	err   error
}

// Model is a running tool screen.
type Model struct {
	spec Spec
	env  Env

	state    viewState
	controls []control
	focus    int

	// busy is shared by every copy of the model so a second trigger cannot
	// start another run while one is in flight.
	busy   *atomic.Bool
	cancel context.CancelFunc
	run    int

	percent int
	bar     progress.Model
	spin    spinner.Model

	result   transform.Result
	errMsg   string
	feedback string

	notice    string
	noticeErr bool
	noticeSeq int

	tutorial shell.Tutorial
	width    int
}

// New returns the screen for spec.
func New(spec Spec, env Env) Model {
	m := Model{
		spec:     spec,
		env:      env,
		busy:     &atomic.Bool{},
		percent:  -1,
		bar:      progress.New(progress.WithWidth(40), progress.WithDefaultGradient()),
		spin:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		tutorial: shell.NewTutorial(spec.Title, spec.Steps),
	}
	for _, f := range spec.Fields {
		m.controls = append(m.controls, newControl(f))
	}
	if len(m.controls) > 0 {
		m.controls[0].focus()
	}
	if spec.Live {
		m.recompute()
	}
	return m
}

// Spec returns the tool's declaration.
func (m Model) Spec() Spec { return m.spec }

func (m Model) Init() tea.Cmd {
	return m.checkTutorial()
}

func (m Model) checkTutorial() tea.Cmd {
	if m.env.SkipTutorials || len(m.spec.Steps) == 0 {
		return nil
	}
	kv, name := m.env.Store, m.spec.Title
	return func() tea.Msg {
		if kv == nil {
			return tutorialMsg{show: true}
		}
		hidden, err := store.TutorialHidden(context.Background(), kv, name)
		return tutorialMsg{show: err == nil && !hidden}
	}
}

func (m Model) hideTutorial() tea.Cmd {
	kv, name, log := m.env.Store, m.spec.Title, m.env.logger()
	if kv == nil {
		return nil
	}
	return func() tea.Msg {
		if err := store.HideTutorial(context.Background(), kv, name); err != nil {
			log.Warn("hiding tutorial", "tool", name, "error", err)
		}
		return nil
	}
}

// Values returns the current form values.
func (m Model) Values() map[string]string {
	vals := make(map[string]string, len(m.controls))
	for _, c := range m.controls {
		vals[c.field.Key] = c.value()
	}
	return vals
}

func (m Model) notify(text string, isErr bool) (Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = text
	m.noticeErr = isErr
	seq := m.noticeSeq
	return m, tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return messages.ClearNoticeMsg{Seq: seq}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.controls = slices.Clone(m.controls)
		for i := range m.controls {
			m.controls[i].setWidth(max(20, min(msg.Width-12, 100)))
		}
		return m, nil

	case tutorialMsg:
		if msg.show {
			m.tutorial = m.tutorial.Open()
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progressMsg:
		if msg.run != m.run || m.state != stateProcessing {
			return m, nil
		}
		m.percent = msg.percent
		return m, waitProgress(msg.run, msg.ch)

	case doneMsg:
		return m.finish(msg)

	case savedMsg:
		if msg.err != nil {
			m.env.logger().Warn("saving result", "tool", m.spec.ID, "error", msg.err)
			return m.notify(toolerr.Message(msg.err, NoticeSaveFailed), true)
		}
		return m.notify("Saved "+strings.Join(msg.paths, ", "), false)

	case messages.NoticeMsg:
		return m.notify(msg.Text, msg.Error)

	case messages.ClearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil

	case tea.KeyMsg:
		m.controls = slices.Clone(m.controls)
		return m.handleKey(msg)
	}

	if len(m.controls) == 0 {
		return m, nil
	}
	m.controls = slices.Clone(m.controls)
	return m, m.controls[m.focus].update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tutorial.Visible() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var closed bool
		m.tutorial, closed = m.tutorial.Update(msg)
		if closed && m.tutorial.DontShowAgain() {
			return m, m.hideTutorial()
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.stop()
		return m, tea.Quit
	case "esc":
		m.stop()
		return m, func() tea.Msg { return messages.BackMsg{} }
	case "f1":
		m.tutorial = m.tutorial.Open()
		return m, nil
	case "ctrl+r":
		return m.reset()
	case "ctrl+g":
		return m.start()
	}

	switch m.state {
	case stateProcessing:
		return m, nil
	case stateResult:
		return m.handleResultKey(msg)
	}
	return m.handleEditKey(msg)
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		return m.copyResult()
	case "s":
		return m.save()
	case "+", "=":
		return m.recordFeedback(true)
	case "-":
		return m.recordFeedback(false)
	case "e", "enter":
		m.state = stateEdit
		return m, nil
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.controls) == 0 {
		if msg.String() == "enter" {
			return m.start()
		}
		return m, nil
	}
	c := &m.controls[m.focus]

	switch msg.String() {
	case "tab":
		return m.moveFocus(1)
	case "shift+tab":
		return m.moveFocus(-1)
	case "enter":
		if c.field.singleLine() {
			return m.start()
		}
	case "left", "right":
		if c.field.Kind == FieldChoice {
			if msg.String() == "left" {
				c.cycle(-1)
			} else {
				c.cycle(1)
			}
			return m.edited(nil)
		}
	case " ":
		if c.field.Kind == FieldToggle {
			c.on = !c.on
			return m.edited(nil)
		}
	}
	cmd := c.update(msg)
	return m.edited(cmd)
}

// edited runs after the form changed.
func (m Model) edited(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.spec.Live {
		m.recompute()
	}
	return m, cmd
}

// recompute runs a live tool synchronously; live transforms are pure and
// quick.
func (m *Model) recompute() {
	res, err := execute(context.Background(), m.spec, transform.Input{Values: m.Values()})
	if err != nil {
		m.result = transform.Result{}
		return
	}
	m.result = res
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.controls[m.focus].blur()
	n := len(m.controls)
	m.focus = ((m.focus+delta)%n + n) % n
	return m, m.controls[m.focus].focus()
}

// start begins a run unless one is already in flight.
func (m Model) start() (tea.Model, tea.Cmd) {
	if !m.busy.CompareAndSwap(false, true) {
		return m, nil
	}
	m.run++
	m.state = stateProcessing
	m.percent = -1
	m.errMsg = ""
	m.feedback = ""

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	ch := make(chan int, 101)
	run, spec, vals, log := m.run, m.spec, m.Values(), m.env.logger()
	exec := func() tea.Msg {
		defer close(ch)
		in, err := spec.BuildInput(ctx, vals)
		if err != nil {
			return doneMsg{run: run, err: err}
		}
		in.Progress = func(p int) {
			select {
			case ch <- p:
			default:
			}
		}
		res, err := Execute(ctx, spec, in, log)
		return doneMsg{run: run, result: res, err: err}
	}
	return m, tea.Batch(exec, waitProgress(run, ch), m.spin.Tick)
}

func waitProgress(run int, ch <-chan int) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg{run: run, percent: p, ch: ch}
	}
}

func (m Model) finish(msg doneMsg) (tea.Model, tea.Cmd) {
	if msg.run != m.run || m.state != stateProcessing {
		return m, nil
	}
	m.busy.Store(false)
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if msg.err != nil {
		m.state = stateError
		m.errMsg = toolerr.Message(msg.err, m.spec.Failure)
		return m.notify(m.errMsg, true)
	}
	m.state = stateResult
	m.result = msg.result
	if m.spec.Success != "" {
		return m.notify(m.spec.Success, false)
	}
	return m, nil
}

// stop abandons any run in flight.
func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.state == stateProcessing {
		m.busy.Store(false)
		m.run++
		m.state = stateEdit
	}
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.stop()
	for i := range m.controls {
		m.controls[i].reset()
	}
	m.state = stateEdit
	m.result = transform.Result{}
	m.errMsg = ""
	m.feedback = ""
	m.percent = -1
	if m.spec.Live {
		m.recompute()
	}
	return m.notify(NoticeReset, false)
}

func (m Model) copyResult() (tea.Model, tea.Cmd) {
	text := m.result.Copyable()
	if text == "" {
		return m.notify(NoticeNothingToCopy, true)
	}
	if err := output.Copy(m.env.Clipboard, text); err != nil {
		m.env.logger().Warn("copy failed", "tool", m.spec.ID, "error", err)
		return m.notify(NoticeCopyFailed, true)
	}
	return m.notify(NoticeCopied, false)
}

func (m Model) save() (tea.Model, tea.Cmd) {
	downloads := m.spec.Downloads(m.result)
	if len(downloads) == 0 {
		return m.notify(NoticeNothingToSave, true)
	}
	saver := m.env.Saver
	if saver == nil {
		saver = output.NewSaver("")
	}
	return m, func() tea.Msg {
		paths, err := saver.SaveAll(context.Background(), downloads)
		return savedMsg{paths: paths, err: err}
	}
}

func (m Model) recordFeedback(positive bool) (tea.Model, tea.Cmd) {
	if m.feedback != "" {
		return m, nil
	}
	m.feedback = store.Negative
	if positive {
		m.feedback = store.Positive
	}
	m, notice := m.notify(NoticeFeedback, false)
	return m, tea.Batch(m.saveFeedback(positive), notice)
}

func (m Model) saveFeedback(positive bool) tea.Cmd {
	kv, name, log, at := m.env.Store, m.spec.Title, m.env.logger(), m.env.now()
	if kv == nil {
		return nil
	}
	return func() tea.Msg {
		if err := store.RecordFeedback(context.Background(), kv, name, positive, at); err != nil {
			log.Warn("recording feedback", "tool", name, "error", err)
		}
		return nil
	}
}
