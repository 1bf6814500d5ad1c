package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

type detailModel struct {
	post    models.Post
	loading bool
}

func (m detailModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Title:    %s\n", m.post.Title))
	b.WriteString(fmt.Sprintf("Author:   %s\n", authorName(m.post)))
	b.WriteString(fmt.Sprintf("Created:  %s\n", formatDate(m.post.Created)))
	if m.loading {
		b.WriteString("\nRefreshing...\n")
	}
	b.WriteString("\n")
	b.WriteString(valueOrDash(m.post.Body))
	return b.String()
}
