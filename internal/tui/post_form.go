package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// postFormModel is the new post form: a single-line title and a multi-line body.
type postFormModel struct {
	title  textinput.Model
	body   textarea.Model
	focus  int
	saving bool
}

func newPostFormModel() postFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = validators.MaxNameLength
	title.Width = 50
	title.Focus()

	body := textarea.New()
	body.Placeholder = "body"
	body.SetWidth(60)
	body.SetHeight(8)
	body.CharLimit = 0

	return postFormModel{title: title, body: body}
}

func (m postFormModel) form() models.PostForm {
	return models.PostForm{
		Title: strings.TrimSpace(m.title.Value()),
		Body:  m.body.Value(),
	}
}

func (m postFormModel) switchFocus() postFormModel {
	if m.focus == 0 {
		m.focus = 1
		m.title.Blur()
		m.body.Focus()
	} else {
		m.focus = 0
		m.body.Blur()
		m.title.Focus()
	}
	return m
}

func (m postFormModel) Update(msg tea.Msg) (postFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.tab, keys.backtab) {
			return m.switchFocus(), nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m postFormModel) View() string {
	var b strings.Builder
	b.WriteString("Title │ [")
	b.WriteString(m.title.View())
	b.WriteString("]\n\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")
	if m.saving {
		b.WriteString("\n[Save...]")
	} else {
		b.WriteString("\n[Save]")
	}
	return b.String()
}
