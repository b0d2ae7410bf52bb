package blogtui

import (
	"blog-cli/format"
	"blog-cli/lib"
	"blog-cli/term"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *blogUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		return m, spinnerCmd

	case tea.WindowSizeMsg:
		m.windowResized(msg.Width, msg.Height)

	case storeChangedMsg:
		m.clampSelection()
		if m.router.Current().Name == lib.RoutePostPage {
			m.renderPost()
		}

	case loadSettledMsg:
		// status is read from the loader at render time

	case postCreatedMsg:
		m.submitting = false
		if msg.err == nil {
			m.titleInput.Reset()
			m.bodyInput.Reset()
		}

	case postDeletedMsg:
		m.clampSelection()

	case tea.KeyMsg:
		if bubbleKey.Matches(msg, m.keymap.forceQuit) {
			return m, tea.Quit
		}

		route := m.router.Current().Name

		// the new post form takes "/" as text
		if !m.searching && route != lib.RouteNewPost && bubbleKey.Matches(msg, m.keymap.search) {
			m.searching = true
			cmd = m.searchInput.Focus()
		} else if m.searching {
			cmd = m.updateSearch(msg)
		} else {
			switch route {
			case lib.RouteHome:
				cmd = m.updateHome(msg)
			case lib.RouteNewPost:
				cmd = m.updateNewPost(msg)
			case lib.RoutePostPage:
				cmd = m.updatePostPage(msg)
			default:
				cmd = m.updateStaticPage(msg)
			}
		}
	}

	m.syncRoute()

	return m, cmd
}

func (m *blogUIModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.searchInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.blog.Store.SetSearch(m.searchInput.Value())
	m.selectedIdx = 0
	return cmd
}

func (m *blogUIModel) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubbleKey.Matches(msg, m.keymap.quit):
		return tea.Quit
	case bubbleKey.Matches(msg, m.keymap.up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
	case bubbleKey.Matches(msg, m.keymap.down):
		if m.selectedIdx < len(m.blog.Store.Results())-1 {
			m.selectedIdx++
		}
	case bubbleKey.Matches(msg, m.keymap.enter):
		results := m.blog.Store.Results()
		if m.selectedIdx < len(results) {
			m.router.Navigate(lib.PostPath(results[m.selectedIdx].Id))
		}
	case bubbleKey.Matches(msg, m.keymap.newPost):
		m.router.Navigate(lib.NewPostPath)
	case bubbleKey.Matches(msg, m.keymap.about):
		m.router.Navigate(lib.AboutPath)
	case bubbleKey.Matches(msg, m.keymap.reload):
		m.mount()
	}
	return nil
}

func (m *blogUIModel) updateNewPost(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubbleKey.Matches(msg, m.keymap.back):
		m.goBack()
		return nil
	case bubbleKey.Matches(msg, m.keymap.switchField):
		return m.focusField(!m.bodyFocused)
	case bubbleKey.Matches(msg, m.keymap.submit):
		if m.submitting {
			return nil
		}
		m.submitting = true
		return submitDraft(m.blog)
	}

	var cmd tea.Cmd
	if m.bodyFocused {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
		m.blog.Draft.SetBody(m.bodyInput.Value())
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.blog.Draft.SetTitle(m.titleInput.Value())
	}
	return cmd
}

func (m *blogUIModel) updatePostPage(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubbleKey.Matches(msg, m.keymap.quit):
		return tea.Quit
	case bubbleKey.Matches(msg, m.keymap.back):
		m.goBack()
	case bubbleKey.Matches(msg, m.keymap.scrollUp):
		m.postViewport.LineUp(1)
	case bubbleKey.Matches(msg, m.keymap.scrollDown):
		m.postViewport.LineDown(1)
	case bubbleKey.Matches(msg, m.keymap.deletePost):
		postId := m.router.Current().PostId
		if _, ok := m.blog.Store.FindPost(postId); ok {
			return deletePost(m.blog, postId)
		}
	}
	return nil
}

func (m *blogUIModel) updateStaticPage(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubbleKey.Matches(msg, m.keymap.quit):
		return tea.Quit
	case bubbleKey.Matches(msg, m.keymap.back):
		m.goBack()
	}
	return nil
}

func submitDraft(blog *lib.Blog) tea.Cmd {
	return func() tea.Msg {
		post, err := blog.SubmitDraft()
		return postCreatedMsg{post: post, err: err}
	}
}

func deletePost(blog *lib.Blog, postId int) tea.Cmd {
	return func() tea.Msg {
		err := blog.DeletePost(postId)
		return postDeletedMsg{postId: postId, err: err}
	}
}

func (m *blogUIModel) goBack() {
	if !m.router.Back() {
		m.router.Navigate(lib.HomePath)
	}
}

func (m *blogUIModel) focusField(body bool) tea.Cmd {
	m.bodyFocused = body
	if body {
		m.titleInput.Blur()
		return m.bodyInput.Focus()
	}
	m.bodyInput.Blur()
	return m.titleInput.Focus()
}

// syncRoute reacts to a route change, whether it came from a key press or
// from a create/delete navigating on its own.
func (m *blogUIModel) syncRoute() {
	current := m.router.Current()
	if current == m.shownRoute {
		return
	}
	previous := m.shownRoute
	m.shownRoute = current

	if previous.Name == lib.RouteNewPost {
		m.titleInput.Blur()
		m.bodyInput.Blur()
	}

	switch current.Name {
	case lib.RouteNewPost:
		m.titleInput.SetValue(m.blog.Draft.Title())
		m.bodyInput.SetValue(m.blog.Draft.Body())
		m.focusField(false)
	case lib.RoutePostPage:
		m.renderPost()
		m.postViewport.GotoTop()
	case lib.RouteHome:
		m.clampSelection()
	}
}

func (m *blogUIModel) clampSelection() {
	n := len(m.blog.Store.Results())
	if m.selectedIdx >= n {
		m.selectedIdx = max(n-1, 0)
	}
}

func (m *blogUIModel) renderPost() {
	post, ok := m.blog.Store.FindPost(m.router.Current().PostId)
	if !ok {
		m.postViewport.SetContent("")
		return
	}

	md, err := term.GetMarkdownWidth(format.PostMarkdown(post), m.postViewport.Width)
	if err != nil {
		md = term.GetPlain(post.Body)
	}
	m.postViewport.SetContent(md)
}

func (m *blogUIModel) windowResized(w, h int) {
	m.width = w
	m.height = h

	m.searchInput.Width = max(w-6, 10)
	m.titleInput.Width = max(w-4, 10)
	m.bodyInput.SetWidth(max(w-4, 10))
	m.bodyInput.SetHeight(max(h-14, 3))

	m.postViewport.Width = w
	m.postViewport.Height = max(h-10, 3)
	m.ready = true

	if m.router.Current().Name == lib.RoutePostPage {
		m.renderPost()
	}
}
