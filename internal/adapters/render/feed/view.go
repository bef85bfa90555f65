package feed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/meshsos/internal/application"
	"github.com/bnema/meshsos/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// impactScale is the impact that fills the bar completely, in m/s².
const impactScale = 200.0

type RenderOptions struct {
	Now time.Time
}

func Render(messages []domain.SOSMessage, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderFeed(messages, opts, s)
	})
}

func RenderHandshake(snapshot application.HandshakeSnapshot, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderHandshake(snapshot, opts, s)
	})
}

func renderFeed(messages []domain.SOSMessage, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("SOS Outbox"),
		s.header.Render(fmt.Sprintf("messages: %d", len(messages))),
	}

	if len(messages) == 0 {
		lines = append(lines, s.empty.Render("No SOS messages yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, msg := range messages {
		lines = append(lines, s.section.Render(renderMessage(msg, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMessage(msg domain.SOSMessage, opts RenderOptions, s styles) string {
	parts := []string{messageBadge(msg, s) + " " + s.message.Render(msg.Text)}

	if msg.FallImpact != nil {
		parts = append(parts, impactLine(*msg.FallImpact, msg.FallSeverity, s))
	}
	if msg.Location != nil {
		parts = append(parts, s.detail.Render(fmt.Sprintf("location: %.5f, %.5f (±%.0f m)",
			msg.Location.Latitude, msg.Location.Longitude, msg.Location.Accuracy)))
	}

	ageColor := ageFadeColor(msg.Timestamp, opts.Now)
	meta := fmt.Sprintf("%s · %s · hops %d · from %s", msg.Status, formatAge(msg.Timestamp, opts.Now), msg.Hops, shortID(msg.SenderID))
	parts = append(parts, lipgloss.NewStyle().Foreground(ageColor).Render(meta))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func messageBadge(msg domain.SOSMessage, s styles) string {
	switch {
	case msg.IsPanic:
		return s.panic.Render("[PANIC]")
	case msg.IsAutoTriggered:
		return s.auto.Render("[FALL]")
	default:
		return s.badge.Render("[SOS]")
	}
}

func impactLine(impact float64, severity domain.Severity, s styles) string {
	color := severityColor(severity)
	label := lipgloss.NewStyle().Bold(true).Foreground(color).Render(strings.ToUpper(string(severity)))
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render("impact:"),
		" ",
		renderImpactBar(impact, 20, color, s),
		" ",
		s.detail.Render(fmt.Sprintf("%d m/s²", int(math.Round(impact)))),
		" ",
		label,
	)
}

func renderImpactBar(impact float64, width int, color lipgloss.Color, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampFraction(impact/impactScale)))
	fill := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("=", filled))
	empty := s.barEmpty.Render(strings.Repeat("-", width-filled))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill,
		empty,
		s.barBracket.Render("]"),
	)
}

func renderHandshake(snap application.HandshakeSnapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Mesh Pairing"),
		s.header.Render(fmt.Sprintf("state: %s · role: %s · peers: %d", snap.State, roleLabel(snap.Role), snap.PeerCount)),
	}

	if snap.Status != "" {
		lines = append(lines, s.status.Render(snap.Status))
	}
	if msg := snap.ErrorMessage(); msg != "" {
		lines = append(lines, s.warning.Render("error: "+msg))
	}
	if snap.State == domain.StateConnecting && !snap.Connected && !opts.Now.IsZero() && !snap.Deadline.IsZero() {
		remaining := snap.Deadline.Sub(opts.Now)
		if remaining < 0 {
			remaining = 0
		}
		lines = append(lines, s.detail.Render(fmt.Sprintf("timeout in %ds", int(math.Ceil(remaining.Seconds())))))
	}
	if snap.Signal != "" {
		lines = append(lines, s.section.Render(s.signal.Render(snap.Signal)))
	}
	if len(snap.PeerIDs) > 0 {
		lines = append(lines, s.detail.Render("connected: "+strings.Join(snap.PeerIDs, ", ")))
	}

	if len(snap.Logs) > 0 {
		logLines := make([]string, 0, len(snap.Logs))
		for _, entry := range snap.Logs {
			logLines = append(logLines, s.logTime.Render("["+entry.At.Format("15:04:05")+"]")+" "+s.detail.Render(entry.Message))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, logLines...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func roleLabel(role domain.HandshakeRole) string {
	if role == domain.RoleNone {
		return "none"
	}
	return string(role)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return "unknown time"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	age := now.Sub(at)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%d min ago", int(age.Minutes()))
	case age < 24*time.Hour:
		hours := int(age.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		return at.Format("15:04 on 02 Jan")
	}
}

// ageFadeColor fades from bright white for fresh messages to grey after a day.
func ageFadeColor(at, now time.Time) lipgloss.Color {
	if now.IsZero() || at.IsZero() || at.After(now) {
		return lipgloss.Color("255")
	}

	const window = 24 * time.Hour
	fresh := window.Seconds() - now.Sub(at).Seconds()
	normalized := clampFraction(fresh / window.Seconds())

	code := 240 + int(15*normalized)
	return lipgloss.Color(fmt.Sprintf("%d", code))
}
