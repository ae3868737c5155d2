// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Virinco AS

package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/virinco/vicscope/pkg/vicpack"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live packet monitor with statistics and trace view",
	Long: `Monitor a live packet feed in a terminal UI.

Shows running decode statistics, the detailed trace of the most recent
packet in a scrollable pane, and a log of decode errors. Reads
newline-terminated hex-encoded packets from a serial port or WebSocket feed.

Keys: up/down or j/k scroll the trace pane, q quits.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().BoolVar(&noSIPrefix, "no-prefix", false, "Disable SI prefixes in traces")
}

// Error log entry
type errorLogEntry struct {
	timestamp time.Time
	message   string
}

// Messages
type tickMsg time.Time
type packetMsg struct {
	line      string
	packet    *vicpack.Packet
	export    *vicpack.Export
	decodeErr error
}
type feedClosedMsg struct {
	err error
}

// TUI model
type monitorModel struct {
	connInfo      string
	stats         *vicpack.Statistics
	trace         viewport.Model
	traceSet      bool
	lastPacket    string
	errorLog      []errorLogEntry
	maxLogEntries int
	feedClosed    bool
	feedErr       error
	width         int
	height        int
	quitting      bool
}

func initialMonitorModel(connInfo string) monitorModel {
	vp := viewport.New(80, 12)
	return monitorModel{
		connInfo:      connInfo,
		stats:         vicpack.NewStatistics(),
		trace:         vp,
		errorLog:      make([]errorLogEntry, 0),
		maxLogEntries: 100,
		width:         80,
		height:        24,
	}
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(
		monitorTickCmd(),
		tea.EnterAltScreen,
	)
}

func monitorTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trace.Width = msg.Width - 4
		traceHeight := msg.Height - 16
		if traceHeight < 4 {
			traceHeight = 4
		}
		m.trace.Height = traceHeight

	case tickMsg:
		m.stats.CalculateRates()
		return m, monitorTickCmd()

	case packetMsg:
		if msg.decodeErr != nil {
			m.stats.Update(msg.packet, msg.decodeErr, 0)
			m.addLogEntry(fmt.Sprintf("DECODE ERROR: %v (%q)", msg.decodeErr, msg.line))
			break
		}
		m.stats.Update(msg.packet, nil, vicpack.UnknownTypeCount(msg.export))

		opts := vicpack.DefaultRenderOptions()
		opts.Detail = true
		opts.SIPrefix = !noSIPrefix
		trace, err := vicpack.FormatPacket(msg.packet, opts)
		if err == nil {
			// The viewport wants plain LF lines
			m.trace.SetContent(strings.ReplaceAll(trace, "\r\n", "\n"))
			m.traceSet = true
			m.lastPacket = msg.line
		}

	case feedClosedMsg:
		m.feedClosed = true
		m.feedErr = msg.err
	}

	// Forward remaining key/mouse events to the trace viewport
	var cmd tea.Cmd
	m.trace, cmd = m.trace.Update(msg)
	return m, cmd
}

func (m *monitorModel) addLogEntry(message string) {
	m.errorLog = append(m.errorLog, errorLogEntry{timestamp: time.Now(), message: message})

	// Keep only last N entries
	if len(m.errorLog) > m.maxLogEntries {
		m.errorLog = m.errorLog[len(m.errorLog)-m.maxLogEntries:]
	}
}

func (m monitorModel) View() string {
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

	statsLabelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	statsValueStyle := lipgloss.NewStyle().
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
	s.WriteString(titleStyle.Render("VICSCOPE - PACKET MONITOR"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Press 'q' to quit", m.connInfo)))
	s.WriteString("\n")
	if m.feedClosed {
		if m.feedErr != nil {
			s.WriteString(errorStyle.Render(fmt.Sprintf("Feed closed: %v", m.feedErr)))
		} else {
			s.WriteString(errorStyle.Render("Feed closed"))
		}
		s.WriteString("\n")
	}
	s.WriteString("\n")

	// Statistics
	errorCount := m.stats.MalformedInput + m.stats.OutOfRange + m.stats.UnknownSensors + m.stats.OtherErrors
	statsContent := strings.Builder{}
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		statsLabelStyle.Render("Total:"), statsValueStyle.Render(fmt.Sprintf("%d", m.stats.TotalPackets)),
		statsLabelStyle.Render("Decoded:"), statsValueStyle.Render(fmt.Sprintf("%d", m.stats.Decoded)),
		statsLabelStyle.Render("Errors:"), errorStyle.Render(fmt.Sprintf("%d", errorCount)),
	))
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		statsLabelStyle.Render("Measurements:"), statsValueStyle.Render(fmt.Sprintf("%d", m.stats.Measurements)),
		statsLabelStyle.Render("Unknown types:"), statsValueStyle.Render(fmt.Sprintf("%d", m.stats.UnknownTypes)),
	))
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s",
		statsLabelStyle.Render("Packet Rate:"), statsValueStyle.Render(fmt.Sprintf("%.1f pkts/s", m.stats.PacketRate)),
		statsLabelStyle.Render("Error Rate:"), func() string {
			if m.stats.ErrorRate > 0 {
				return errorStyle.Render(fmt.Sprintf("%.1f err/s", m.stats.ErrorRate))
			}
			return statsValueStyle.Render(fmt.Sprintf("%.1f err/s", m.stats.ErrorRate))
		}(),
	))
	s.WriteString(boxStyle.Render(statsContent.String()))
	s.WriteString("\n\n")

	// Last packet trace
	s.WriteString(statsLabelStyle.Render("Last Packet:"))
	if m.lastPacket != "" {
		s.WriteString(headerStyle.Render(" " + m.lastPacket))
	}
	s.WriteString("\n")
	if m.traceSet {
		s.WriteString(boxStyle.Render(m.trace.View()))
	} else {
		s.WriteString(boxStyle.Render(headerStyle.Render("(no packets yet)")))
	}
	s.WriteString("\n\n")

	// Error log
	s.WriteString(statsLabelStyle.Render("Recent Errors:"))
	s.WriteString("\n")

	logHeight := 5
	logContent := strings.Builder{}
	startIdx := len(m.errorLog) - logHeight
	if startIdx < 0 {
		startIdx = 0
	}

	if len(m.errorLog) == 0 {
		logContent.WriteString(headerStyle.Render("  (no errors yet)"))
	} else {
		for i := startIdx; i < len(m.errorLog); i++ {
			entry := m.errorLog[i]
			timestamp := entry.timestamp.Format("01/02/06 15:04:05.000")
			logContent.WriteString(fmt.Sprintf("%s %s\n",
				headerStyle.Render(timestamp),
				errorStyle.Render("✗ "+entry.message),
			))
		}
	}
	s.WriteString(boxStyle.Width(m.width - 4).Render(logContent.String()))

	return s.String()
}

func runMonitor(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	m := initialMonitorModel(connInfo)
	p := tea.NewProgram(m)

	// Feed packets into the program from a reader goroutine
	go func() {
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			packet, export, err := decodePacket(line)
			p.Send(packetMsg{line: line, packet: packet, export: export, decodeErr: err})
		}
		p.Send(feedClosedMsg{err: scanner.Err()})
	}()

	_, err = p.Run()
	return err
}
