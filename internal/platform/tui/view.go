package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termgold/goldmine/internal/economy"
	"github.com/termgold/goldmine/internal/game"
)

// Styles for the game screen.
var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	goldStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	rateStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	clickStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	totalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	affordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	expensiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236"))

	activeTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("4")).
			Foreground(lipgloss.Color("15")).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// gaugeWidth sizes the gold gauge to the mining panel.
func gaugeWidth(screenW int) int {
	w := screenW/2 - 8
	if w < 10 {
		w = 10
	}
	return w
}

// render draws the full game screen from a snapshot.
func (m Model) render(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString(m.renderStatus(snap))
	b.WriteString("\n")

	left := m.renderMining(snap)
	right := m.renderTabs(snap)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderStatus draws the top status bar.
func (m Model) renderStatus(snap game.Snapshot) string {
	status := fmt.Sprintf("%s  %s | %s | %s | %s",
		titleStyle.Render("TERMINAL GOLD MINE"),
		goldStyle.Render("Gold: "+economy.FormatGold(snap.Gold)),
		rateStyle.Render(fmt.Sprintf("Rate: %s/sec", economy.FormatGold(snap.PassiveRate))),
		clickStyle.Render("Click: +"+economy.FormatGold(snap.ClickPower)),
		totalStyle.Render("Total: "+economy.FormatGold(snap.LifetimeEarned)),
	)
	return panelStyle.Width(m.width - 2).Render(status)
}

// renderMining draws the left-hand click panel with the gold gauge.
func (m Model) renderMining(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CLICK FOR GOLD!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Press %s to mine %s gold\n",
		affordStyle.Render("SPACE"),
		goldStyle.Render("+"+economy.FormatGold(snap.ClickPower))))
	b.WriteString(dimStyle.Render("(0.5s cooldown)"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Or just wait and earn %s\n",
		rateStyle.Render(economy.FormatGold(snap.PassiveRate)+" gold/sec")))
	b.WriteString(dimStyle.Render(fmt.Sprintf("Clicks: %d", snap.Clicks)))
	b.WriteString("\n\n")

	// Gauge fills as gold accumulates toward the next hundred.
	b.WriteString(m.gauge.ViewAs(math.Mod(snap.Gold, 100) / 100))

	return panelStyle.Width(m.width/2 - 2).Render(b.String())
}

// renderTabs draws the tab bar and the active tab's list.
func (m Model) renderTabs(snap game.Snapshot) string {
	var b strings.Builder

	tabs := []struct {
		label string
		tab   game.Tab
	}{
		{"1-Passive", game.TabPassive},
		{"2-Click", game.TabClick},
		{fmt.Sprintf("3-Achievements (%d/%d)", snap.UnlockedCount, len(snap.Achievements)), game.TabAchievements},
	}

	var rendered []string
	for _, t := range tabs {
		if t.tab == snap.ActiveTab {
			rendered = append(rendered, activeTabStyle.Render(t.label))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n\n")

	switch snap.ActiveTab {
	case game.TabPassive:
		b.WriteString(m.renderUpgrades(snap.Passive, snap.Selected, "/sec"))
	case game.TabClick:
		b.WriteString(m.renderUpgrades(snap.ClickUpgrades, snap.Selected, "/click"))
	case game.TabAchievements:
		b.WriteString(m.renderAchievements(snap.Achievements, snap.Selected))
	}

	return panelStyle.Width(m.width/2 - 2).Render(b.String())
}

// renderUpgrades draws one upgrade list with a cursor.
func (m Model) renderUpgrades(rows []game.UpgradeRow, selected int, unit string) string {
	var b strings.Builder

	for i, row := range rows {
		cursor := "  "
		if i == selected {
			cursor = "> "
		}

		costStyle := expensiveStyle
		if row.Affordable {
			costStyle = affordStyle
		}

		line := fmt.Sprintf("%s%s %s  %s %s",
			cursor,
			nameStyle.Render(fmt.Sprintf("%s (%d)", row.Name, row.Owned)),
			costStyle.Render("Cost: "+economy.FormatGold(row.NextCost)),
			rateStyle.Render("+"+economy.FormatGold(row.Effect)+unit),
			dimStyle.Render(row.Description),
		)
		if i == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderAchievements draws the milestone list with progress.
func (m Model) renderAchievements(rows []game.AchievementRow, selected int) string {
	var b strings.Builder

	for i, row := range rows {
		cursor := "  "
		if i == selected {
			cursor = "> "
		}

		status := pendingStyle.Render("[    ]")
		if row.Unlocked {
			status = doneStyle.Render("[DONE]")
		}

		progress := math.Min(row.Progress, row.Target)
		line := fmt.Sprintf("%s%s %s  %s",
			cursor,
			status,
			nameStyle.Render(row.Name),
			dimStyle.Render(fmt.Sprintf("%s  %s / %s",
				row.Description,
				economy.FormatGold(progress),
				economy.FormatGold(row.Target))),
		)
		if i == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
