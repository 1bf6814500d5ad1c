package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-blog/models"
)

type listModel struct {
	posts   []models.Post
	idx     int
	loading bool
	spinner spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Post, bool) {
	if len(m.posts) == 0 || m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

func (m *listModel) setPosts(posts []models.Post) {
	m.loading = false
	m.posts = posts
	if m.idx >= len(m.posts) {
		m.idx = len(m.posts) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.posts)-1 {
		m.idx++
	}
}

func authorName(post models.Post) string {
	if post.Author == nil {
		return "-"
	}
	return post.Author.Username
}

func (m listModel) View() string {
	if m.loading {
		return m.spinner.View() + " Loading posts..."
	}
	if len(m.posts) == 0 {
		return "There are no posts yet."
	}

	var b strings.Builder
	b.WriteString("  ID   │ Title                          │ Author          │ Created\n")
	b.WriteString("───────┼────────────────────────────────┼─────────────────┼───────────\n")
	for i, post := range m.posts {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-5d│ %-30s │ %-15s │ %s\n",
			cursor,
			post.PostID,
			fitText(post.Title, 30),
			fitText(authorName(post), 15),
			formatDate(post.Created),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
