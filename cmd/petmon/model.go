package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gopet/pet4032/bus"
	"github.com/gopet/pet4032/cpu"
)

// model is the petmon bubbletea state: the wired CPU/bus pair plus
// whatever the last step changed, so the view can highlight it.
type model struct {
	cpu *cpu.CPU
	bus *bus.Bus

	prevPC uint16
	steps  int
	quit   bool
}

func newModel(c *cpu.CPU, b *bus.Bus) model {
	return model{cpu: c, bus: b, prevPC: c.PC}
}

func (m model) Init() tea.Cmd { return nil }

// Update advances the core by one full instruction on space/j, mirroring
// the aggregate IRQ line the way cmd/pet's driver loop does, and quits on
// q or ctrl+c.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			m.cpu.ExecuteInstruction()
			if m.bus.IRQAsserted() {
				m.cpu.RequestIRQ()
			} else {
				m.cpu.ReleaseIRQ()
			}
			m.steps++
		}
	}
	return m, nil
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	pcStyle    = lipgloss.NewStyle().Reverse(true)
)

// renderPage renders one 16 byte row of memory starting at start,
// highlighting the byte at the program counter.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.bus.Read(addr)
		cell := fmt.Sprintf("%02X ", b)
		if addr == m.cpu.PC {
			cell = pcStyle.Render(cell)
		}
		s += cell
	}
	return s
}

// memoryView renders eight rows of memory framing the program counter so
// the next few instructions are visible above and below it.
func (m model) memoryView() string {
	base := m.cpu.PC &^ 0x0F
	var rows []string
	for i := -2; i <= 5; i++ {
		row := int32(base) + int32(i)*16
		if row < 0 || row > 0xFFFF {
			continue
		}
		rows = append(rows, m.renderPage(uint16(row)))
	}
	return strings.Join(rows, "\n")
}

// flagsView renders the N V - B D I Z C status line, matching the
// register's documented bit order.
func (m model) flagsView() string {
	names := []string{"N", "V", "-", "B", "D", "I", "Z", "C"}
	vals := []bool{
		m.cpu.P.NegativeVal(), m.cpu.P.OverflowVal(), true, m.cpu.P.BreakVal(),
		m.cpu.P.DecimalVal(), m.cpu.P.InterruptDisableVal(), m.cpu.P.ZeroVal(), m.cpu.P.CarryVal(),
	}
	var top, bottom strings.Builder
	for i, n := range names {
		top.WriteString(n + " ")
		if vals[i] {
			bottom.WriteString("1 ")
		} else {
			bottom.WriteString("0 ")
		}
	}
	return top.String() + "\n" + bottom.String()
}

func (m model) registersView() string {
	return fmt.Sprintf(
		"%s\nPC: %04X  (was %04X)\nSP: %02X\nA:  %02X\nX:  %02X\nY:  %02X\n\n%s\nsteps: %d",
		labelStyle.Render("registers"),
		m.cpu.PC, m.prevPC, m.cpu.SP, m.cpu.A, m.cpu.X, m.cpu.Y,
		m.flagsView(), m.steps,
	)
}

func (m model) View() string {
	if m.quit {
		return ""
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			lipgloss.NewStyle().MarginRight(4).Render(m.memoryView()),
			m.registersView(),
		),
		"",
		"space/j: step one instruction   q: quit",
	)
}
