package blogtui

import (
	"context"
	"log"

	"blog-cli/lib"
	shared "blog-cli/shared"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang-module/carbon/v2"
)

// storeChangedMsg is sent whenever the post store's contents or query change.
type storeChangedMsg struct{}

type loadSettledMsg struct {
	result lib.FetchResult
}

type postCreatedMsg struct {
	post *shared.Post
	err  error
}

type postDeletedMsg struct {
	postId int
	err    error
}

type blogUIModel struct {
	blog   *lib.Blog
	router *lib.Router
	title  string
	year   int
	keymap keymap

	ctx     context.Context
	unmount func()

	searchInput textinput.Model
	titleInput  textinput.Model
	bodyInput   textarea.Model
	searching   bool
	bodyFocused bool
	submitting  bool

	selectedIdx int

	postViewport viewport.Model
	shownRoute   lib.Route

	spinner spinner.Model

	ready  bool
	width  int
	height int
}

type keymap = struct {
	up,
	down,
	enter,
	search,
	newPost,
	about,
	reload,
	back,
	switchField,
	submit,
	deletePost,
	scrollUp,
	scrollDown,
	quit,
	forceQuit bubbleKey.Binding
}

func (m *blogUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

func initialModel(ctx context.Context, blog *lib.Blog, router *lib.Router, title string) *blogUIModel {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	search := textinput.New()
	search.Placeholder = "Search posts"
	search.Prompt = "🔍 "
	search.CharLimit = 120

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.Prompt = ""
	titleInput.CharLimit = 200

	body := textarea.New()
	body.Placeholder = "Write your post..."
	body.ShowLineNumbers = false
	body.CharLimit = 0

	initialState := blogUIModel{
		blog:   blog,
		router: router,
		title:  title,
		year:   carbon.Now().Year(),
		ctx:    ctx,

		searchInput: search,
		titleInput:  titleInput,
		bodyInput:   body,
		spinner:     s,

		postViewport: viewport.New(80, 20),
		shownRoute:   router.Current(),

		keymap: keymap{
			up: bubbleKey.NewBinding(
				bubbleKey.WithKeys("up", "k"),
				bubbleKey.WithHelp("up", "prev"),
			),

			down: bubbleKey.NewBinding(
				bubbleKey.WithKeys("down", "j"),
				bubbleKey.WithHelp("down", "next"),
			),

			enter: bubbleKey.NewBinding(
				bubbleKey.WithKeys("enter"),
				bubbleKey.WithHelp("enter", "open"),
			),

			search: bubbleKey.NewBinding(
				bubbleKey.WithKeys("/"),
				bubbleKey.WithHelp("/", "search"),
			),

			newPost: bubbleKey.NewBinding(
				bubbleKey.WithKeys("n"),
				bubbleKey.WithHelp("n", "new post"),
			),

			about: bubbleKey.NewBinding(
				bubbleKey.WithKeys("a"),
				bubbleKey.WithHelp("a", "about"),
			),

			reload: bubbleKey.NewBinding(
				bubbleKey.WithKeys("r"),
				bubbleKey.WithHelp("r", "reload"),
			),

			back: bubbleKey.NewBinding(
				bubbleKey.WithKeys("esc"),
				bubbleKey.WithHelp("esc", "back"),
			),

			switchField: bubbleKey.NewBinding(
				bubbleKey.WithKeys("tab", "shift+tab"),
				bubbleKey.WithHelp("tab", "switch field"),
			),

			submit: bubbleKey.NewBinding(
				bubbleKey.WithKeys("ctrl+s"),
				bubbleKey.WithHelp("ctrl+s", "submit"),
			),

			deletePost: bubbleKey.NewBinding(
				bubbleKey.WithKeys("d"),
				bubbleKey.WithHelp("d", "delete"),
			),

			scrollUp: bubbleKey.NewBinding(
				bubbleKey.WithKeys("up", "k"),
				bubbleKey.WithHelp("k", "scroll up"),
			),

			scrollDown: bubbleKey.NewBinding(
				bubbleKey.WithKeys("down", "j"),
				bubbleKey.WithHelp("j", "scroll down"),
			),

			quit: bubbleKey.NewBinding(
				bubbleKey.WithKeys("q"),
				bubbleKey.WithHelp("q", "quit"),
			),

			forceQuit: bubbleKey.NewBinding(
				bubbleKey.WithKeys("ctrl+c"),
				bubbleKey.WithHelp("ctrl+c", "quit"),
			),
		},
	}

	return &initialState
}

// mount starts the list request, aborting one still in flight.
func (m *blogUIModel) mount() {
	m.unmount = m.blog.Loader.Mount(m.ctx)
}

func (m *blogUIModel) cleanup() {
	log.Println("Cleaning up blog UI model")
	if m.unmount != nil {
		m.unmount()
	}
}
