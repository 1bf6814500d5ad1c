package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-blog/internal/service"
)

type mainScreen int

const (
	screenList mainScreen = iota
	screenDetail
	screenCreate
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	username string
	version  string

	screen mainScreen
	list   listModel
	detail detailModel
	form   postFormModel

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		username: services.AuthService.Username(),
		list:     newListModel(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPosts(), m.cmdServerVersion(), m.list.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postsLoadedMsg:
		if msg.err != nil {
			m.list.loading = false
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.list.setPosts(msg.posts)
		return m, nil
	case postLoadedMsg:
		m.detail.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.detail.post = msg.post
		return m, nil
	case postCreatedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = fmt.Sprintf("Post %q created.", msg.post.Title)
		m.errMsg = ""
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadPosts(), m.list.spinner.Tick)
	case serverVersionMsg:
		if msg.err == nil {
			m.version = msg.version
		}
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenCreate {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenCreate:
		return m.updateCreate(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.moveUp()
	case key.Matches(msg, keys.down):
		m.list.moveDown()
	case key.Matches(msg, keys.enter):
		post, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.screen = screenDetail
		m.status = ""
		m.errMsg = ""
		m.detail = detailModel{post: post}
		// Only own posts can be fetched one by one.
		if post.Author != nil && post.Author.Username == m.username {
			m.detail.loading = true
			return m, m.cmdLoadPost(post.PostID)
		}
	case key.Matches(msg, keys.newPost):
		m.screen = screenCreate
		m.status = ""
		m.errMsg = ""
		m.form = newPostFormModel()
		return m, textinput.Blink
	case key.Matches(msg, keys.refresh):
		m.list.loading = true
		m.status = ""
		return m, tea.Batch(m.cmdLoadPosts(), m.list.spinner.Tick)
	case key.Matches(msg, keys.copy):
		m.copyToClipboard(m.services.AuthService.Token(), "API token copied.")
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.status = ""
		m.errMsg = ""
	case key.Matches(msg, keys.copy):
		m.copyToClipboard(m.detail.post.Body, "Post body copied.")
	}
	return m, nil
}

func (m mainLoopModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.save):
		if m.form.saving {
			return m, nil
		}
		m.form.saving = true
		m.errMsg = ""
		return m, m.cmdCreatePost()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) copyToClipboard(text, done string) {
	if text == "" {
		m.status = "Nothing to copy."
		return
	}
	if err := clipboardWrite(text); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.errMsg = ""
	m.status = done
}

func (m mainLoopModel) View() string {
	var body, title, hotKeys string

	switch m.screen {
	case screenCreate:
		title = "NEW POST"
		body = m.form.View()
		hotKeys = "esc: cancel │ tab: next field │ ctrl+s: save"
	case screenDetail:
		title = strings.ToUpper(fitText(m.detail.post.Title, 40))
		body = m.detail.View()
		hotKeys = "esc: back │ c: copy body │ q: quit"
	default:
		title = "POSTS"
		body = m.list.View()
		hotKeys = "enter: open │ n: new │ r: refresh │ c: copy token │ l: log out │ q: quit"
	}

	var b strings.Builder
	b.WriteString("Logged in as ")
	b.WriteString(valueOrDash(m.username))
	if m.version != "" {
		b.WriteString(" │ server ")
		b.WriteString(m.version)
	}
	b.WriteString("\n\n")
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderError(m.errMsg))
	}

	return appStyle.Render(renderPage(title, b.String(), hotKeys))
}

func (m mainLoopModel) cmdLoadPosts() tea.Cmd {
	ctx, posts := m.ctx, m.services.PostService
	return func() tea.Msg {
		list, err := posts.ListPosts(ctx)
		return postsLoadedMsg{posts: list, err: err}
	}
}

func (m mainLoopModel) cmdLoadPost(postID int64) tea.Cmd {
	ctx, posts := m.ctx, m.services.PostService
	return func() tea.Msg {
		post, err := posts.GetPost(ctx, postID)
		return postLoadedMsg{post: post, err: err}
	}
}

func (m mainLoopModel) cmdCreatePost() tea.Cmd {
	ctx, posts, form := m.ctx, m.services.PostService, m.form.form()
	return func() tea.Msg {
		post, err := posts.CreatePost(ctx, form)
		return postCreatedMsg{post: post, err: err}
	}
}

func (m mainLoopModel) cmdServerVersion() tea.Cmd {
	ctx, info := m.ctx, m.services.AppInfoService
	return func() tea.Msg {
		version, err := info.GetServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
