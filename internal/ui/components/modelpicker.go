// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/styles"
)

// ModelPicker is the overlay for choosing a completion model from the
// catalog.
type ModelPicker struct {
	theme  styles.Theme
	cursor int
}

// NewModelPicker builds a picker with the cursor on selectedID.
func NewModelPicker(theme styles.Theme, selectedID string) ModelPicker {
	p := ModelPicker{theme: theme}
	for i, m := range model.Catalog {
		if m.ID == selectedID {
			p.cursor = i
			break
		}
	}
	return p
}

// MoveUp moves the cursor up, wrapping.
func (p *ModelPicker) MoveUp() {
	p.cursor--
	if p.cursor < 0 {
		p.cursor = len(model.Catalog) - 1
	}
}

// MoveDown moves the cursor down, wrapping.
func (p *ModelPicker) MoveDown() {
	p.cursor = (p.cursor + 1) % len(model.Catalog)
}

// Selected returns the catalog entry under the cursor.
func (p ModelPicker) Selected() model.ModelInfo {
	return model.Catalog[p.cursor]
}

// View renders the picker box. currentID marks the active model.
func (p ModelPicker) View(currentID string) string {
	var b strings.Builder

	b.WriteString(p.theme.Title.Render("Select Model"))
	b.WriteString("\n\n")

	for i, m := range model.Catalog {
		marker := "  "
		if i == p.cursor {
			marker = "> "
		}
		name := p.theme.ModelBadge.Foreground(styles.ModelAccent(m.Color)).Render(m.Name)
		line := marker + name
		if m.ID == currentID {
			line += p.theme.Success.Render(" ✓")
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString("    " + p.theme.Muted.Render(m.Provider+" · "+m.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.theme.Help.Render("enter: select · esc: cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorPrimary).
		Padding(1, 2).
		Render(b.String())
}
