package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/notify"
	"github.com/dmitrijs2005/mailtriage/internal/client/services"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	notificationStyles = map[notify.Level]lipgloss.Style{
		notify.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		notify.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		notify.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}

	severityStyles = map[services.Severity]lipgloss.Style{
		services.SeverityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		services.SeverityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		services.SeverityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Email table column widths.
const (
	colID       = 5
	colSender   = 24
	colSubject  = 36
	colCategory = 14
	colScore    = 6
)

func renderNotification(n notify.Notification) string {
	style, ok := notificationStyles[n.Level]
	if !ok {
		style = mutedStyle
	}
	return style.Render(fmt.Sprintf("[%s] %s", n.Level, n.Message))
}

// badge renders a category name in its own color.
func badge(name, color string) string {
	if name == "" {
		name = "uncategorized"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(name)
}

func percent(confidence float64) string {
	return fmt.Sprintf("%.1f%%", confidence*100)
}

// fitWidth truncates by display width and pads on the right.
func fitWidth(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}

func renderClassification(c *services.Classification) string {
	var b strings.Builder
	e := c.Email
	b.WriteString(headerStyle.Render("Classification"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Email #%d   category %s   confidence %s\n",
		e.ID, badge(e.CategoryName, c.Color), severityStyles[c.Severity].Render(percent(e.ConfidenceScore)+" ("+string(c.Severity)+")"))
	if e.SuggestedResponse != "" {
		b.WriteString(mutedStyle.Render("Suggested response:"))
		b.WriteByte('\n')
		b.WriteString(e.SuggestedResponse)
		b.WriteByte('\n')
	}
	b.WriteString(mutedStyle.Render("Type 'feedback' if the category is wrong."))
	return b.String()
}

func renderStats(s *models.Stats) string {
	if s == nil {
		return mutedStyle.Render("No statistics loaded; type 'refresh' to retry.")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Dashboard"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total emails:   %d\n", s.TotalEmails)
	fmt.Fprintf(&b, "Total users:    %d\n", s.TotalUsers)
	fmt.Fprintf(&b, "Feedback:       %d\n", s.TotalFeedback)
	fmt.Fprintf(&b, "Avg confidence: %s\n", percent(s.AvgConfidence))
	if len(s.EmailsByCategory) > 0 {
		b.WriteString(headerStyle.Render("By category"))
		for _, cc := range s.EmailsByCategory {
			fmt.Fprintf(&b, "\n  %s %d", fitWidth(cc.Category, colCategory), cc.Count)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderEmailTable(emails []models.ScoredEmail, colors colorResolver) string {
	if len(emails) == 0 {
		return mutedStyle.Render("No emails yet.")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(
		fitWidth("ID", colID) + " " + fitWidth("From", colSender) + " " +
			fitWidth("Subject", colSubject) + " " + fitWidth("Category", colCategory) + " " +
			fitWidth("Conf", colScore)))
	for _, e := range emails {
		b.WriteByte('\n')
		b.WriteString(fitWidth(fmt.Sprint(e.ID), colID) + " ")
		b.WriteString(fitWidth(e.Sender, colSender) + " ")
		b.WriteString(fitWidth(e.Subject, colSubject) + " ")
		b.WriteString(badge(fitWidth(e.CategoryName, colCategory), colors.ColorFor(e.CategoryID)) + " ")
		b.WriteString(severityStyles[services.SeverityFor(e.ConfidenceScore)].Render(percent(e.ConfidenceScore)))
	}
	return b.String()
}

func renderEmail(e *models.ScoredEmail, colors colorResolver) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Email #%d", e.ID)))
	fmt.Fprintf(&b, "\nFrom:     %s\nSubject:  %s\nCategory: %s\nScore:    %s\nReceived: %s\n\n%s",
		e.Sender, e.Subject,
		badge(e.CategoryName, colors.ColorFor(e.CategoryID)),
		severityStyles[services.SeverityFor(e.ConfidenceScore)].Render(percent(e.ConfidenceScore)),
		e.CreatedAt, e.Body)
	if e.SuggestedResponse != "" {
		b.WriteString("\n\n" + mutedStyle.Render("Suggested response:") + "\n" + e.SuggestedResponse)
	}
	return b.String()
}

func renderCategories(cats []models.Category) string {
	if len(cats) == 0 {
		return mutedStyle.Render("No categories loaded.")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Categories"))
	for _, c := range cats {
		color := c.Color
		if color == "" {
			color = services.NeutralColor
		}
		fmt.Fprintf(&b, "\n  %3d  %s  %s", c.ID, badge(fitWidth(c.Name, colCategory), color), mutedStyle.Render(c.Description))
	}
	return b.String()
}

func renderUsers(users []models.User) string {
	if len(users) == 0 {
		return mutedStyle.Render("No users loaded.")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Users"))
	for _, u := range users {
		role := "user"
		if u.IsAdmin {
			role = "admin"
		}
		fmt.Fprintf(&b, "\n  %3d  %s %s %s  %s", u.ID, fitWidth(u.Username, 16), fitWidth(u.Email, colSender), role, mutedStyle.Render(u.CreatedAt))
	}
	return b.String()
}
