package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbocquet/callsheet/internal/config"
	"github.com/tbocquet/callsheet/internal/playback"
	"github.com/tbocquet/callsheet/internal/script"
	"github.com/tbocquet/callsheet/internal/state"
	"github.com/tbocquet/callsheet/internal/ui"
	"github.com/tbocquet/callsheet/internal/ui/action"
	"github.com/tbocquet/callsheet/internal/ui/clockbar"
	"github.com/tbocquet/callsheet/internal/ui/confirm"
	"github.com/tbocquet/callsheet/internal/ui/cursor"
	"github.com/tbocquet/callsheet/internal/ui/help"
	"github.com/tbocquet/callsheet/internal/ui/overlay"
	"github.com/tbocquet/callsheet/internal/ui/scriptview"
	"github.com/tbocquet/callsheet/internal/ui/styles"
)

type tickMsg time.Time

const statusLineHeight = 1

type model struct {
	cfg      *config.Config
	stateMgr *state.Manager
	svc      playback.Service
	view     *scriptview.Model

	scriptPath string
	edges      *cursor.EdgeState
	status     string

	jump     textinput.Model
	jumping  bool
	dialog   confirm.Model
	helpView help.Model
	ticking  bool

	width  int
	height int
}

func initialModel(args []string) (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, err
	}

	saved, _ := stateMgr.GetViewer()

	// Script path: CLI arg > saved session > config default
	var scriptPath string
	switch {
	case len(args) > 0:
		scriptPath = args[0]
	case saved != nil && saved.ScriptPath != "":
		if _, statErr := os.Stat(saved.ScriptPath); statErr == nil {
			scriptPath = saved.ScriptPath
		}
	default:
		scriptPath = cfg.DefaultScript
	}

	svc := playback.New()
	if scriptPath != "" {
		scr, loadErr := script.LoadFile(scriptPath)
		if loadErr != nil {
			if len(args) > 0 {
				stateMgr.Close()
				return model{}, fmt.Errorf("loading %s: %w", scriptPath, loadErr)
			}
			// A stale saved or default path should not block startup
			scriptPath = ""
		} else {
			svc.LoadScript(scr)
		}
	}
	svc.SetPreferences(resolvePreferences(cfg, saved))

	opts := scriptview.Options{
		ShowClockTimes:      cfg.Viewer.ShowClockTimes,
		UseMilitaryTime:     cfg.Viewer.UseMilitaryTime,
		ColorizeDepartments: cfg.Viewer.ColorizeEnabled(),
	}
	if saved != nil {
		if saved.ShowClockTimes != nil {
			opts.ShowClockTimes = *saved.ShowClockTimes
		}
		if saved.UseMilitaryTime != nil {
			opts.UseMilitaryTime = *saved.UseMilitaryTime
		}
	}

	view := scriptview.New(svc, opts)
	view.Sync()
	if saved != nil {
		view.SetFollow(saved.Follow)
	}

	jump := textinput.New()
	jump.Placeholder = "m:ss"
	jump.CharLimit = 16
	jump.Width = 12

	return model{
		cfg:        cfg,
		stateMgr:   stateMgr,
		svc:        svc,
		view:       view,
		scriptPath: scriptPath,
		jump:       jump,
	}, nil
}

// resolvePreferences layers saved per-user overrides over the config file.
func resolvePreferences(cfg *config.Config, saved *state.ViewerState) playback.Preferences {
	p := playback.Preferences{
		Lookahead:    time.Duration(cfg.Viewer.LookaheadSeconds) * time.Second,
		Highlighting: cfg.Viewer.HighlightingEnabled(),
		AutoSortCues: cfg.Viewer.AutoSortCues,
	}
	if saved == nil {
		return p
	}
	if saved.LookaheadSeconds != nil {
		p.Lookahead = time.Duration(*saved.LookaheadSeconds) * time.Second
	}
	if saved.Highlighting != nil {
		p.Highlighting = *saved.Highlighting
	}
	if saved.AutoSortCues != nil {
		p.AutoSortCues = *saved.AutoSortCues
	}
	return p
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) viewerHeight() int {
	return max(m.height-ui.ClockBarHeight-statusLineHeight, 0)
}

func (m model) tickInterval() time.Duration {
	return time.Duration(m.cfg.TickMs) * time.Millisecond
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(tea.WindowSizeMsg{
			Width:  m.width,
			Height: m.viewerHeight(),
		})
		return m, cmd

	case tea.KeyMsg:
		if m.dialog.Active() {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}
		if m.helpView.Active() {
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.handleKey(msg)

	case tickMsg:
		cmd := m.view.Sync()
		if m.svc.Phase().IsActive() {
			return m, tea.Batch(cmd, tickCmd(m.tickInterval()))
		}
		m.ticking = false
		return m, cmd

	case action.Msg:
		return m.handleAction(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.svc.Phase().IsActive() {
			m.dialog.Show("Quit", "The show clock is running. Quit anyway?", confirmQuit)
			return m, nil
		}
		return m.quit()

	case " ":
		return m.transport(m.toggleTransport())

	case "S":
		if m.svc.IsSafety() {
			return m.transport(m.svc.Release())
		}
		return m.transport(m.svc.Hold())

	case "C":
		return m.transport(m.svc.Complete())

	case "R":
		if m.svc.Phase() != playback.PhaseIdle {
			m.dialog.Show("Reset", "Reset the show clock to 0:00?", confirmReset)
			return m, nil
		}
		return m, nil

	case "?":
		m.helpView.Toggle()
		return m, nil

	case "t":
		m.jumping = true
		m.jump.Reset()
		m.jump.Focus()
		return m, textinput.Blink

	case "h":
		p := m.svc.Preferences()
		p.Highlighting = !p.Highlighting
		return m.setPreferences(p)

	case "a":
		p := m.svc.Preferences()
		p.AutoSortCues = !p.AutoSortCues
		return m.setPreferences(p)

	case "+", "=":
		p := m.svc.Preferences()
		p.Lookahead += 5 * time.Second
		return m.setPreferences(p)

	case "-":
		p := m.svc.Preferences()
		p.Lookahead -= 5 * time.Second
		return m.setPreferences(p)
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// toggleTransport maps the space bar onto the phase machine.
func (m model) toggleTransport() error {
	switch {
	case m.svc.Phase() == playback.PhaseIdle:
		return m.svc.Start()
	case m.svc.IsComplete():
		return playback.ErrNotActive
	default:
		return m.svc.Toggle()
	}
}

// transport applies the result of a transport operation: surface errors
// in the status line, refresh the view, and keep the clock ticking.
func (m model) transport(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.status = transportStatus(err)
		return m, m.view.Sync()
	}
	m.status = ""
	cmd := m.view.Sync()
	// One tick loop at a time; it re-arms itself while the show is active
	if m.svc.Phase().IsActive() && !m.ticking {
		m.ticking = true
		return m, tea.Batch(cmd, tickCmd(m.tickInterval()))
	}
	return m, cmd
}

func transportStatus(err error) string {
	switch {
	case err == nil:
		return ""
	case err == playback.ErrSafetyHold:
		return "safety hold active, S to release"
	case err == playback.ErrNotActive:
		return "show not running, R to reset"
	case err == playback.ErrNoScript:
		return "no script loaded"
	default:
		return err.Error()
	}
}

func (m model) setPreferences(p playback.Preferences) (tea.Model, tea.Cmd) {
	m.svc.SetPreferences(p)
	m.saveSession()
	return m, m.view.Sync()
}

// Confirmation contexts for the modal dialog.
const (
	confirmQuit  = "quit"
	confirmReset = "reset"
)

func (m model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch act := msg.Action.(type) {
	case scriptview.EdgeChanged:
		edges := act.State
		m.edges = &edges
	case scriptview.ToggleGroupCollapse:
		m.view.ToggleCollapsed(act.ID)
		return m, m.view.Sync()
	case confirm.Result:
		return m.handleConfirm(act)
	}
	return m, nil
}

func (m model) handleConfirm(res confirm.Result) (tea.Model, tea.Cmd) {
	if !res.Confirmed {
		return m, nil
	}
	switch res.Context {
	case confirmQuit:
		return m.quit()
	case confirmReset:
		m.svc.Reset()
		m.status = ""
		return m, m.view.Sync()
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.saveSession()
	m.svc.Close()
	m.stateMgr.Close()
	return m, tea.Quit
}

func (m model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jump.Blur()
		return m, nil

	case "enter":
		m.jumping = false
		m.jump.Blur()
		pos, err := parseJumpTime(m.jump.Value())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if seekErr := m.svc.SeekTo(pos); seekErr != nil {
			m.status = transportStatus(seekErr)
			return m, nil
		}
		m.status = ""
		return m, m.view.Sync()
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// parseJumpTime accepts "ss", "m:ss" or "h:mm:ss".
func parseJumpTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if s == "" || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	var total time.Duration
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		total = total*60 + time.Duration(n)*time.Second
	}
	return total, nil
}

// saveSession persists the script path, follow mode and the operator's
// preference overrides.
func (m model) saveSession() {
	p := m.svc.Preferences()
	lookahead := int(p.Lookahead / time.Second)
	highlighting := p.Highlighting
	autoSort := p.AutoSortCues
	opts := m.view.Options()
	clockTimes := opts.ShowClockTimes
	military := opts.UseMilitaryTime

	m.stateMgr.SaveViewer(state.ViewerState{
		ScriptPath:       m.scriptPath,
		Follow:           m.view.Following(),
		LookaheadSeconds: &lookahead,
		Highlighting:     &highlighting,
		AutoSortCues:     &autoSort,
		ShowClockTimes:   &clockTimes,
		UseMilitaryTime:  &military,
	})
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	bar := clockbar.Render(clockbar.NewState(m.svc, true, m.view.Options().UseMilitaryTime), m.width)

	screen := m.view.View() + "\n" + m.statusLine() + "\n" + bar
	switch {
	case m.dialog.Active():
		box := overlay.Center(m.dialog.View(), m.width, m.height)
		screen = overlay.Compose(screen, box, m.width)
	case m.helpView.Active():
		box := overlay.Center(m.helpView.View(), m.width, m.height)
		screen = overlay.Compose(screen, box, m.width)
	}
	return screen
}

// statusLine shows the jump prompt, the last transport message, or a
// scroll hint, in that order of priority.
func (m model) statusLine() string {
	s := styles.T().S()

	var line string
	switch {
	case m.jumping:
		line = s.Title.Render("Jump to: ") + m.jump.View()
	case m.status != "":
		line = s.Warning.Render(m.status)
	case m.edges != nil && !m.edges.AllFit:
		var hints []string
		if !m.edges.AtTop {
			hints = append(hints, "▲")
		}
		if !m.edges.AtBottom {
			hints = append(hints, "▼")
		}
		if len(hints) > 0 {
			line = s.Subtle.Render(strings.Join(hints, " ") + " scroll")
		}
	}

	return line
}

func main() {
	m, err := initialModel(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "callsheet: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "callsheet: %v\n", err)
		os.Exit(1)
	}
}
