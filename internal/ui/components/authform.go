// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/styles"
)

// AuthMode selects between the sign-in and sign-up forms.
type AuthMode int

const (
	ModeSignIn AuthMode = iota
	ModeSignUp
)

// AuthForm is the welcome screen form: email and password for
// sign-in, plus a name field for sign-up. The password is collected
// for interface parity only; nothing ever checks it.
type AuthForm struct {
	theme  styles.Theme
	Mode   AuthMode
	name   textinput.Model
	email  textinput.Model
	pass   textinput.Model
	focus  int
	ErrMsg string
}

// NewAuthForm builds the form in sign-in mode.
func NewAuthForm(theme styles.Theme) AuthForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return AuthForm{theme: theme, Mode: ModeSignIn, name: name, email: email, pass: pass}
}

// ToggleMode flips between sign-in and sign-up and resets focus.
func (f *AuthForm) ToggleMode() {
	if f.Mode == ModeSignIn {
		f.Mode = ModeSignUp
	} else {
		f.Mode = ModeSignIn
	}
	f.ErrMsg = ""
	f.focus = 0
	f.applyFocus()
}

// fields returns the visible inputs in tab order.
func (f *AuthForm) fields() []*textinput.Model {
	if f.Mode == ModeSignUp {
		return []*textinput.Model{&f.name, &f.email, &f.pass}
	}
	return []*textinput.Model{&f.email, &f.pass}
}

// NextField advances focus, wrapping.
func (f *AuthForm) NextField() {
	f.focus = (f.focus + 1) % len(f.fields())
	f.applyFocus()
}

func (f *AuthForm) applyFocus() {
	for i, field := range f.fields() {
		if i == f.focus {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

// Values returns the trimmed form values.
func (f AuthForm) Values() (name, email, password string) {
	return strings.TrimSpace(f.name.Value()),
		strings.TrimSpace(f.email.Value()),
		f.pass.Value()
}

// Update forwards a message to the focused input.
func (f AuthForm) Update(msg tea.Msg) (AuthForm, tea.Cmd) {
	fields := f.fields()
	var cmd tea.Cmd
	*fields[f.focus], cmd = fields[f.focus].Update(msg)
	return f, cmd
}

// View renders the form centered in the given box.
func (f AuthForm) View(width, height int) string {
	var b strings.Builder

	b.WriteString(f.theme.Title.Render("Welcome to AI ChatBot"))
	b.WriteString("\n")
	if f.Mode == ModeSignUp {
		b.WriteString(f.theme.Subtitle.Render("Create an account"))
	} else {
		b.WriteString(f.theme.Subtitle.Render("Sign in to continue"))
	}
	b.WriteString("\n\n")

	if f.Mode == ModeSignUp {
		b.WriteString(f.name.View())
		b.WriteString("\n")
	}
	b.WriteString(f.email.View())
	b.WriteString("\n")
	b.WriteString(f.pass.View())
	b.WriteString("\n\n")

	if f.ErrMsg != "" {
		b.WriteString(f.theme.Error.Render(f.ErrMsg))
		b.WriteString("\n\n")
	}

	switchHint := "ctrl+s: switch to sign up"
	if f.Mode == ModeSignUp {
		switchHint = "ctrl+s: switch to sign in"
	}
	b.WriteString(f.theme.Help.Render("enter: submit · tab: next field · " + switchHint + " · ctrl+c: quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorPrimary).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
