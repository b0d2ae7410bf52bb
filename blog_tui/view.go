package blogtui

import (
	"fmt"
	"strings"

	"blog-cli/lib"
	shared "blog-cli/shared"

	"github.com/charmbracelet/lipgloss"
)

const previewLen = 25

var borderColor = lipgloss.Color("#444")
var helpTextColor = lipgloss.Color("#ddd")
var accentColor = lipgloss.Color("205")
var errorColor = lipgloss.Color("#ff5f5f")
var mutedColor = lipgloss.Color("#888")

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#fff")).Background(lipgloss.Color("#5f5fd7"))
var errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
var mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
var selectedStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
var titleStyle = lipgloss.NewStyle().Bold(true)

func (m *blogUIModel) View() string {
	views := []string{
		m.renderHeader(),
		m.renderNav(),
	}
	if status := m.renderStatus(); status != "" {
		views = append(views, status)
	}
	views = append(views,
		m.renderMain(),
		m.renderFooter(),
		m.renderHelp(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (m *blogUIModel) renderHeader() string {
	return headerStyle.Render(m.title)
}

func (m *blogUIModel) renderNav() string {
	nav := mutedStyle.Render("Home • New Post • About")
	return lipgloss.JoinVertical(lipgloss.Left, m.searchInput.View(), nav) + "\n"
}

func (m *blogUIModel) renderMain() string {
	switch m.router.Current().Name {
	case lib.RouteHome:
		return m.renderHome()
	case lib.RouteNewPost:
		return m.renderNewPost()
	case lib.RoutePostPage:
		return m.renderPostPage()
	case lib.RouteAbout:
		return renderAbout()
	}
	return renderMissing()
}

// renderStatus shows the list request's progress or failure above every page.
func (m *blogUIModel) renderStatus() string {
	status := m.blog.Loader.Status()

	var lines []string
	if status.IsLoading {
		lines = append(lines, " "+m.spinner.View()+" Loading...")
	}
	if status.FetchError != "" {
		lines = append(lines, errorStyle.Render(status.FetchError))
	}
	return strings.Join(lines, "\n")
}

func (m *blogUIModel) renderHome() string {
	results := m.blog.Store.Results()
	if len(results) == 0 {
		return mutedStyle.Render("No posts to display.")
	}

	var b strings.Builder
	for i, post := range results {
		b.WriteString(renderFeedItem(post, i == m.selectedIdx))
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderFeedItem(post *shared.Post, selected bool) string {
	cursor := "  "
	title := titleStyle.Render(post.Title)
	if selected {
		cursor = selectedStyle.Render("▶ ")
		title = selectedStyle.Render(post.Title)
	}

	return fmt.Sprintf("%s%s\n  %s\n  %s\n",
		cursor,
		title,
		mutedStyle.Render(post.Datetime),
		shared.Truncate(post.Body, previewLen),
	)
}

func (m *blogUIModel) renderNewPost() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New Post") + "\n\n")
	b.WriteString("Title:\n")
	b.WriteString(m.titleInput.View() + "\n\n")
	b.WriteString("Post:\n")
	b.WriteString(m.bodyInput.View() + "\n")

	if m.submitting {
		b.WriteString("\n " + m.spinner.View() + " Submitting...")
	}

	return b.String()
}

func (m *blogUIModel) renderPostPage() string {
	if _, ok := m.blog.Store.FindPost(m.router.Current().PostId); !ok {
		return titleStyle.Render("Post Not Found") + "\n" +
			mutedStyle.Render("Well, that's disappointing.") + "\n\n" +
			"Visit Our Homepage (esc)"
	}

	return m.postViewport.View()
}

func renderAbout() string {
	return titleStyle.Render("About") + "\n\n" + lib.AboutText
}

func renderMissing() string {
	return titleStyle.Render("Page Not Found") + "\n" +
		mutedStyle.Render("Well, that's disappointing.") + "\n\n" +
		"Visit Our Homepage (esc)"
}

func (m *blogUIModel) renderFooter() string {
	return "\n" + mutedStyle.Render(fmt.Sprintf("Copyright © %d", m.year))
}

func (m *blogUIModel) renderHelp() string {
	style := lipgloss.NewStyle().Width(m.width).Foreground(helpTextColor).BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(borderColor)

	if m.searching {
		return style.Render(" type to search • (enter/esc) done")
	}

	var s string
	switch m.router.Current().Name {
	case lib.RouteHome:
		s = " (↑/↓) select • (enter) open • (/) search • (n)ew post • (a)bout • (r)eload • (q)uit"
	case lib.RouteNewPost:
		s = " (tab) switch field • (ctrl+s) submit • (esc) back"
	case lib.RoutePostPage:
		s = " (j/k) scroll • (d)elete • (/) search • (esc) back • (q)uit"
	default:
		s = " (/) search • (esc) back • (q)uit"
	}
	return style.Render(s)
}
