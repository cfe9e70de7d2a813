// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/auralux/midiscope/pkg/midiwire"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Per-channel activity tracked from the decoded stream
type channelState struct {
	heldNotes   map[uint8]struct{}
	lastNote    string
	lastProgram int // -1 until a program change is seen
	lastCC      string
	bend        int16
	hasBend     bool
	lastActive  time.Time
}

type eventLogEntry struct {
	timestamp time.Time
	message   string
}

type tuiModel struct {
	connInfo     string
	showRealtime bool
	stats        *midiwire.Statistics
	channels     [16]channelState
	eventLog     []eventLogEntry
	maxLog       int
	logView      viewport.Model
	logDirty     bool
	width        int
	height       int
	connected    bool
	quitting     bool
}

type tickMsg time.Time

func initialTUIModel(connInfo string, showRealtime bool) tuiModel {
	m := tuiModel{
		connInfo:     connInfo,
		showRealtime: showRealtime,
		stats:        midiwire.NewStatistics(),
		eventLog:     make([]eventLogEntry, 0),
		maxLog:       200,
		logView:      viewport.New(80, 10),
		width:        80,
		height:       24,
		connected:    true,
	}
	for i := range m.channels {
		m.channels[i].lastProgram = -1
	}
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		tea.EnterAltScreen,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.stats.Reset()
			m.addLogEntry("Statistics reset")
		default:
			var cmd tea.Cmd
			m.logView, cmd = m.logView.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width - 4
		logHeight := msg.Height - 16
		if logHeight < 5 {
			logHeight = 5
		}
		m.logView.Height = logHeight
		m.logDirty = true

	case tickMsg:
		// Update statistics rates
		m.stats.CalculateRates()
		return m, tickCmd()

	case connectionLostMsg:
		m.connected = false
		m.addLogEntry("CONNECTION LOST")

	case streamBatchMsg:
		if msg.dropped > 0 {
			m.stats.AddDropped(msg.dropped)
		}
		for _, message := range msg.messages {
			m.stats.Update(message)
			m.trackChannelActivity(message)
			if m.showRealtime || !isRealtime(message) {
				m.addLogEntry(midiwire.FormatMessage(message))
			}
		}
	}

	if m.logDirty {
		m.refreshLogView()
		m.logDirty = false
	}

	return m, nil
}

func (m *tuiModel) addLogEntry(message string) {
	m.eventLog = append(m.eventLog, eventLogEntry{
		timestamp: time.Now(),
		message:   message,
	})

	// Keep only last N entries
	if len(m.eventLog) > m.maxLog {
		m.eventLog = m.eventLog[len(m.eventLog)-m.maxLog:]
	}
	m.logDirty = true
}

func (m *tuiModel) refreshLogView() {
	timestampStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	atBottom := m.logView.AtBottom()
	var b strings.Builder
	for _, entry := range m.eventLog {
		b.WriteString(timestampStyle.Render(entry.timestamp.Format("15:04:05.000")))
		b.WriteString(" ")
		b.WriteString(entry.message)
		b.WriteString("\n")
	}
	m.logView.SetContent(b.String())
	if atBottom {
		m.logView.GotoBottom()
	}
}

// trackChannelActivity updates the per-channel summary from one message
func (m *tuiModel) trackChannelActivity(msg midiwire.Message) {
	var ch int
	switch msg := msg.(type) {
	case midiwire.NoteOn:
		ch = int(msg.Channel.Num())
		c := &m.channels[ch]
		if c.heldNotes == nil {
			c.heldNotes = make(map[uint8]struct{})
		}
		if msg.Velocity.Byte() == 0 {
			// NoteOn with velocity 0 releases the note on most hardware
			delete(c.heldNotes, msg.Note.Byte())
		} else {
			c.heldNotes[msg.Note.Byte()] = struct{}{}
			c.lastNote = midiwire.NoteName(msg.Note)
		}
	case midiwire.NoteOff:
		ch = int(msg.Channel.Num())
		delete(m.channels[ch].heldNotes, msg.Note.Byte())
	case midiwire.ControlChange:
		ch = int(msg.Channel.Num())
		m.channels[ch].lastCC = fmt.Sprintf("cc%d=%d", msg.Controller.Byte(), msg.Value.Byte())
	case midiwire.ProgramChange:
		ch = int(msg.Channel.Num())
		m.channels[ch].lastProgram = int(msg.Program.Byte())
	case midiwire.PitchBend:
		ch = int(msg.Channel.Num())
		m.channels[ch].bend = msg.Value.Bend()
		m.channels[ch].hasBend = true
	case midiwire.PolyPressure:
		ch = int(msg.Channel.Num())
	case midiwire.ChannelPressure:
		ch = int(msg.Channel.Num())
	default:
		return
	}
	m.channels[ch].lastActive = time.Now()
}

func (m tuiModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	// Header
	var s strings.Builder
	s.WriteString(titleStyle.Render("MIDISCOPE - MONITOR"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Press 'q' to quit, 'r' to reset stats", m.connInfo)))
	s.WriteString("\n\n")

	if !m.connected {
		s.WriteString(errorStyle.Render("✗ Connection lost"))
		s.WriteString("\n\n")
	}

	// Statistics
	m.stats.CalculateRates()
	statsContent := strings.Builder{}
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Messages:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.TotalMessages)),
		labelStyle.Render("Notes:"), valueStyle.Render(fmt.Sprintf("%d on / %d off", m.stats.NoteOns, m.stats.NoteOffs)),
		labelStyle.Render("CC:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.ControlChanges)),
	))
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Bends:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.PitchBends)),
		labelStyle.Render("Realtime:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Realtime)),
		labelStyle.Render("Dropped Bytes:"), func() string {
			if m.stats.DroppedBytes > 0 {
				return errorStyle.Render(fmt.Sprintf("%d", m.stats.DroppedBytes))
			}
			return valueStyle.Render("0")
		}(),
	))
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("Message Rate:"), valueStyle.Render(fmt.Sprintf("%.1f msg/s", m.stats.MessageRate)),
		labelStyle.Render("Byte Rate:"), valueStyle.Render(fmt.Sprintf("%.1f B/s", m.stats.ByteRate)),
	))

	s.WriteString(boxStyle.Render(statsContent.String()))
	s.WriteString("\n\n")

	// Channel activity (only channels that have seen traffic)
	channelContent := strings.Builder{}
	active := 0
	for i := range m.channels {
		c := &m.channels[i]
		if c.lastActive.IsZero() {
			continue
		}
		active++

		line := fmt.Sprintf("%s ", labelStyle.Render(fmt.Sprintf("ch%-2d", i+1)))
		if len(c.heldNotes) > 0 {
			line += valueStyle.Render(fmt.Sprintf("%d held (last %s)", len(c.heldNotes), c.lastNote))
		} else if c.lastNote != "" {
			line += headerStyle.Render(fmt.Sprintf("last note %s", c.lastNote))
		} else {
			line += headerStyle.Render("-")
		}
		if c.lastProgram >= 0 {
			line += headerStyle.Render(fmt.Sprintf("  prog=%d", c.lastProgram))
		}
		if c.lastCC != "" {
			line += headerStyle.Render("  " + c.lastCC)
		}
		if c.hasBend && c.bend != 0 {
			line += headerStyle.Render(fmt.Sprintf("  bend=%+d", c.bend))
		}
		channelContent.WriteString(line)
		channelContent.WriteString("\n")
	}

	if active > 0 {
		s.WriteString(labelStyle.Render("Channels:"))
		s.WriteString("\n")
		s.WriteString(boxStyle.Render(strings.TrimRight(channelContent.String(), "\n")))
		s.WriteString("\n\n")
	}

	// Event log
	s.WriteString(labelStyle.Render("Events:"))
	s.WriteString("\n")
	if len(m.eventLog) == 0 {
		s.WriteString(boxStyle.Width(m.width - 4).Render(headerStyle.Render("  (no events yet)")))
	} else {
		s.WriteString(boxStyle.Width(m.width - 4).Render(m.logView.View()))
	}

	return s.String()
}
