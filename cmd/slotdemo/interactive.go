package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/slotpool/errors"
	"github.com/wippyai/slotpool/slot"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	deadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type demoState int

const (
	stateTable demoState = iota
	stateInputName
)

// demoModel drives the interactive view of a single pool. The model holds
// counted units (strong refs) and weak refs on behalf of the user; every
// key action maps to one pool operation.
type demoModel struct {
	pool     *slot.Pool[mesh]
	units    []slot.StrongRef[mesh]
	weaks    []slot.WeakRef[mesh]
	input    textinput.Model
	status   string
	created  int
	selected int
	state    demoState
}

func newDemoModel(maxCap int) *demoModel {
	pool := slot.New[mesh]()
	if maxCap > 0 {
		pool.SetMaxCapacity(maxCap)
	}
	return &demoModel{pool: pool}
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

// liveHandles returns the handles of live slots in index order.
func (m *demoModel) liveHandles() []slot.Handle {
	var handles []slot.Handle
	m.pool.Each(func(h slot.Handle, _ *mesh) bool {
		handles = append(handles, h)
		return true
	})
	return handles
}

func (m *demoModel) selectedHandle() (slot.Handle, bool) {
	handles := m.liveHandles()
	if len(handles) == 0 {
		return slot.InvalidHandle(), false
	}
	if m.selected >= len(handles) {
		m.selected = len(handles) - 1
	}
	return handles[m.selected], true
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateInputName {
		switch keyMsg.String() {
		case "enter":
			name := m.input.Value()
			if name == "" {
				name = fmt.Sprintf("Mesh-%d", m.created)
			}
			m.created++
			ref := m.pool.Create(mesh{name: name, vertices: 3 * m.created})
			if ref.Valid() {
				m.units = append(m.units, ref)
				m.status = fmt.Sprintf("created %s as %s", name, ref.Handle())
			} else {
				m.status = errors.CapacityExhausted(m.pool.Count(), m.pool.MaxCapacity()).Error()
			}
			m.state = stateTable
		case "esc":
			m.state = stateTable
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.liveHandles())-1 {
			m.selected++
		}

	case "c":
		ti := textinput.New()
		ti.Placeholder = "mesh name"
		ti.Prompt = "name: "
		ti.Width = 30
		ti.Focus()
		m.input = ti
		m.state = stateInputName

	case "r":
		h, ok := m.selectedHandle()
		if !ok {
			m.status = "nothing to release"
			break
		}
		released := false
		for i := range m.units {
			if m.units[i].Handle() == h {
				m.units[i].Release()
				m.units = append(m.units[:i], m.units[i+1:]...)
				released = true
				break
			}
		}
		if released {
			m.status = fmt.Sprintf("released one unit of %s", h)
		} else {
			m.status = fmt.Sprintf("no held unit for %s", h)
		}

	case "l":
		h, ok := m.selectedHandle()
		if !ok {
			m.status = "nothing to clone"
			break
		}
		for i := range m.units {
			if m.units[i].Handle() == h {
				m.units = append(m.units, m.units[i].Clone())
				m.status = fmt.Sprintf("cloned %s, use count %d", h, m.pool.RefCount(h))
				break
			}
		}

	case "w":
		h, ok := m.selectedHandle()
		if !ok {
			m.status = "nothing to observe"
			break
		}
		for i := range m.units {
			if m.units[i].Handle() == h {
				m.weaks = append(m.weaks, m.units[i].Weak())
				m.status = fmt.Sprintf("weak ref derived from %s", h)
				break
			}
		}

	case "u":
		upgraded := 0
		expired := 0
		for _, w := range m.weaks {
			if ref, ok := w.Upgrade(); ok {
				m.units = append(m.units, ref)
				upgraded++
			} else {
				expired++
			}
		}
		m.weaks = m.weaks[:0]
		m.status = fmt.Sprintf("upgraded %d weak refs, %d expired", upgraded, expired)

	case "s":
		before := m.pool.Capacity()
		m.pool.ShrinkToFit()
		m.status = fmt.Sprintf("shrink: capacity %d -> %d", before, m.pool.Capacity())

	case "x":
		m.pool.Clear()
		m.units = m.units[:0]
		m.weaks = m.weaks[:0]
		m.selected = 0
		m.status = "pool cleared"
	}

	return m, nil
}

func (m *demoModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("slotpool demo"))
	b.WriteString(fmt.Sprintf("  alive %d / capacity %d", m.pool.Count(), m.pool.Capacity()))
	if m.pool.MaxCapacity() > 0 {
		b.WriteString(fmt.Sprintf(" (max %d)", m.pool.MaxCapacity()))
	}
	b.WriteString("\n\n")

	if m.state == stateInputName {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter create • esc cancel"))
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %-5s %-5s %-20s %s", "index", "gen", "refs", "name", "vertices")))
	b.WriteString("\n")

	rows := 0
	m.pool.Each(func(h slot.Handle, v *mesh) bool {
		line := fmt.Sprintf("%-8d %-5d %-5d %-20s %d",
			h.Index, h.Generation, m.pool.RefCount(h), v.name, v.vertices)
		if rows == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		rows++
		return true
	})
	if rows == 0 {
		b.WriteString(deadStyle.Render("  (no live slots)"))
		b.WriteString("\n")
	}

	if len(m.weaks) > 0 {
		b.WriteString(deadStyle.Render(fmt.Sprintf("\n%d weak refs held", len(m.weaks))))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • c create • l clone • r release • w weak • u upgrade • s shrink • x clear • q quit"))
	return b.String()
}

func runInteractive(maxCap int) error {
	p := tea.NewProgram(newDemoModel(maxCap), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
