package blogtui

import (
	"context"
	"fmt"
	"sync"

	"blog-cli/lib"
	"blog-cli/types"

	tea "github.com/charmbracelet/bubbletea"
)

var ui *tea.Program
var mu sync.Mutex

// StartBlogUI runs the interactive blog until the user quits. The list
// request starts as soon as the UI is up and is aborted if it's still in
// flight on exit.
func StartBlogUI(ctx context.Context, client types.ApiClient, title string) error {
	router := lib.NewRouter()
	blog := lib.NewBlog(client, router)

	initial := initialModel(ctx, blog, router, title)

	mu.Lock()
	ui = tea.NewProgram(initial, tea.WithAltScreen(), tea.WithContext(ctx))
	mu.Unlock()

	unsubscribe := blog.Store.Subscribe(func() {
		send(storeChangedMsg{})
	})
	defer unsubscribe()

	blog.Loader.OnSettle(func(res lib.FetchResult) {
		send(loadSettledMsg{result: res})
	})

	initial.mount()

	_, err := ui.Run()

	initial.cleanup()

	if err != nil {
		return fmt.Errorf("error running blog UI: %v", err)
	}

	return nil
}

func send(msg tea.Msg) {
	mu.Lock()
	p := ui
	mu.Unlock()

	if p == nil {
		return
	}

	// store changes can fire from inside Update, which would block on a
	// synchronous Send
	go p.Send(msg)
}
