package model

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbhint/internal/cli"
	"github.com/bnema/dumbhint/internal/cli/styles"
	"github.com/bnema/dumbhint/internal/infrastructure/fixture"
)

// RunMsg carries a function posted to the UI goroutine.
type RunMsg func()

type highlightDoneMsg struct{}

// Dispatcher posts functions to a running tea.Program. Posts made before
// the program is attached are delivered once it is.
type Dispatcher struct {
	mu      sync.Mutex
	program *tea.Program
	pending []func()
}

// Post schedules fn on the UI goroutine. It never blocks: Send blocks
// while Update runs, and Update itself posts.
func (d *Dispatcher) Post(fn func()) {
	d.mu.Lock()
	p := d.program
	if p == nil {
		d.pending = append(d.pending, fn)
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	go p.Send(RunMsg(fn))
}

// Attach starts delivering to p.
func (d *Dispatcher) Attach(p *tea.Program) {
	d.mu.Lock()
	d.program = p
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()
	for _, fn := range pending {
		go p.Send(RunMsg(fn))
	}
}

// DemoModel is the Bubble Tea model that renders a fixture tree with the
// hint controller running on it.
type DemoModel struct {
	host  *cli.Host
	pres  *Presenter
	theme *styles.Theme
	keys  styles.DemoKeyMap
	help  help.Model

	prompt    textinput.Model
	prompting bool
	output    string
	width     int
	height    int
}

// NewDemoModel creates the demo model. pres must be the presenter host's
// controller draws through.
func NewDemoModel(theme *styles.Theme, host *cli.Host, pres *Presenter, hintKeys string) DemoModel {
	prompt := textinput.New()
	prompt.Prompt = ":"
	prompt.Placeholder = "reset | hint <mode> | cancel | windows"
	prompt.PromptStyle = theme.Highlight
	prompt.TextStyle = theme.Normal

	return DemoModel{
		host:   host,
		pres:   pres,
		theme:  theme,
		keys:   styles.DefaultDemoKeyMap(hintKeys),
		help:   styles.NewStyledHelp(theme),
		prompt: prompt,
		width:  100,
		height: 30,
	}
}

// Init implements tea.Model.
func (DemoModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RunMsg:
		msg()
		return m, m.highlightCmd()

	case highlightDoneMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m DemoModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	m.pres.ClearErr()

	if k, ok := KeyFromTea(msg); ok {
		if m.host.Ctrl.RouteKeyEvent(m.host.Focused(), k) {
			return m, m.highlightCmd()
		}
	}

	switch {
	case key.Matches(msg, m.keys.Command):
		m.prompting = true
		m.prompt.Reset()
		return m, m.prompt.Focus()
	case key.Matches(msg, m.keys.Reset):
		m.run([]string{"reset"})
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	exec := m.host.Exec
	if editing := exec.Editing; editing != nil {
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			editing.Text = editing.Label() + string(msg.Runes)
		case tea.KeyBackspace:
			if r := []rune(editing.Label()); len(r) > 0 {
				editing.Text = string(r[:len(r)-1])
			}
		case tea.KeyEnter, tea.KeyEsc:
			exec.Editing = nil
		}
		return m, nil
	}
	if msg.Type == tea.KeyEsc && len(exec.OpenPopups) > 0 {
		exec.ClosePopups()
	}
	return m, nil
}

func (m DemoModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case tea.KeyEnter:
		m.prompting = false
		m.prompt.Blur()
		m.run(strings.Fields(m.prompt.Value()))
		return m, m.highlightCmd()
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *DemoModel) run(argv []string) {
	out, err := m.host.Ctrl.Execute(argv)
	if err != nil {
		m.output = ""
		return
	}
	m.output = strings.TrimRight(out, "\n")
}

func (m DemoModel) highlightCmd() tea.Cmd {
	d := m.pres.TakeTick()
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return highlightDoneMsg{} })
}

// View implements tea.Model.
func (m DemoModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteString("\n\n")
	sb.WriteString(m.canvas().Render(m.theme))
	sb.WriteString("\n\n")
	sb.WriteString(m.footer())
	return sb.String()
}

func (m DemoModel) header() string {
	title := m.theme.Title.Render(styles.IconKeyboard + " dumbhint")
	state := "normal"
	if wc, ok := m.host.Ctrl.ActiveWindow(); ok {
		state = wc.Describe()
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", m.theme.ModeBadge.Render(state))
}

func (m DemoModel) footer() string {
	var lines []string
	if status := m.pres.Status(); status != "" {
		lines = append(lines, m.theme.StatusBar.Render(status))
	}
	if err := m.pres.Err(); err != "" {
		lines = append(lines, m.theme.ErrorStyle.Render(styles.IconX+" "+err))
	}
	if log := m.host.Exec.Log; len(log) > 0 {
		lines = append(lines, m.theme.Subtle.Render("last action: ")+m.theme.Normal.Render(log[len(log)-1]))
	}
	if m.output != "" {
		lines = append(lines, m.theme.Normal.Render(m.output))
	}
	if m.prompting {
		lines = append(lines, m.prompt.View())
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

// canvas draws the first window, its open popups and every hint label.
func (m DemoModel) canvas() *styles.Canvas {
	var nodes []*fixture.Node
	if len(m.host.Tree.Windows) > 0 {
		collect(m.host.Tree.Windows[0], &nodes)
	}
	var popups []*fixture.Node
	for _, p := range m.host.Exec.OpenPopups {
		if p.IsVisible() {
			collect(p, &popups)
		}
	}

	width, height := 0, 0
	for _, n := range append(append([]*fixture.Node{}, nodes...), popups...) {
		b := n.Bounds()
		width = max(width, b.X+b.W+4)
		height = max(height, b.Y+b.H)
		for _, pos := range n.VisibleItems() {
			ib := n.ItemBounds(pos)
			width = max(width, ib.X+ib.W+1)
			height = max(height, ib.Y+ib.H)
		}
	}
	c := styles.NewCanvas(min(width, max(m.width, 20)), height)

	exec := m.host.Exec
	for _, n := range nodes {
		m.drawNode(c, n, exec, styles.PaintText)
	}
	for _, n := range popups {
		b := n.Bounds()
		c.Fill(b.X, b.Y, b.W, styles.PaintPopup)
		m.drawNode(c, n, exec, styles.PaintPopup)
	}

	for _, view := range m.pres.Views() {
		for _, l := range view.Labels {
			p := styles.PaintHint
			if l.Selected {
				p = styles.PaintHintSelected
			}
			c.Put(l.Bounds.X, l.Bounds.Y, l.Code, p)
		}
	}
	if code, b, ok := m.pres.Accepted(); ok {
		c.Put(b.X, b.Y, code, styles.PaintHintAccepted)
	}
	return c
}

func (DemoModel) drawNode(c *styles.Canvas, n *fixture.Node, exec *fixture.Executor, base styles.Paint) {
	paint := base
	switch {
	case !n.IsEnabled():
		paint = styles.PaintDisabled
	case exec.Editing == n:
		paint = styles.PaintEditing
	case exec.Focused == n && exec.FocusedItem == nil:
		paint = styles.PaintFocused
	}

	b := n.Bounds()
	items := n.VisibleItems()
	if len(items) == 0 {
		c.Put(b.X, b.Y, n.Label(), paint)
		return
	}
	c.Put(b.X, b.Y, n.Label(), styles.PaintMuted)
	for _, pos := range items {
		ib := n.ItemBounds(pos)
		p := base
		if exec.Focused == n && exec.FocusedItem != nil && *exec.FocusedItem == pos {
			p = styles.PaintFocused
		}
		c.Put(ib.X, ib.Y, fmt.Sprintf("%-*s", max(ib.W-1, 0), n.ItemText(pos)), p)
	}
}

// collect appends the visible nodes of n's subtree.
func collect(n *fixture.Node, out *[]*fixture.Node) {
	if !n.IsVisible() {
		return
	}
	*out = append(*out, n)
	for _, c := range n.Nodes {
		collect(c, out)
	}
}
