package lib

import (
	"context"
	"fmt"
	"log"
	"sync"

	shared "blog-cli/shared"
	"blog-cli/types"
)

type FetchOutcome int

const (
	FetchPending FetchOutcome = iota
	FetchSucceeded
	FetchFailed
	FetchCancelled
)

func (o FetchOutcome) String() string {
	switch o {
	case FetchSucceeded:
		return "succeeded"
	case FetchFailed:
		return "failed"
	case FetchCancelled:
		return "cancelled"
	}
	return "pending"
}

type FetchResult struct {
	Outcome FetchOutcome
	Posts   []*shared.Post
	Err     *shared.ApiError
}

type RequestStatus struct {
	IsLoading  bool
	FetchError string
}

// PostLoader issues the list request for a mounted view and tracks its
// loading and error state.
type PostLoader struct {
	client types.ApiClient
	store  *PostStore

	mu         sync.Mutex
	isLoading  bool
	fetchError string
	cancel     context.CancelFunc
	gen        int
	done       chan struct{}
	result     FetchResult
	onSettle   []func(FetchResult)
}

func NewPostLoader(client types.ApiClient, store *PostStore) *PostLoader {
	done := make(chan struct{})
	close(done)

	return &PostLoader{
		client:    client,
		store:     store,
		isLoading: true,
		done:      done,
	}
}

func (l *PostLoader) Status() RequestStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return RequestStatus{IsLoading: l.isLoading, FetchError: l.fetchError}
}

// OnSettle registers fn to run each time a mounted request settles.
func (l *PostLoader) OnSettle(fn func(FetchResult)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onSettle = append(l.onSettle, fn)
}

// Mount issues a single list request in the background. Calling the
// returned unmount func aborts it if it hasn't settled yet. Mounting again
// aborts whatever the previous mount left in flight.
func (l *PostLoader) Mount(ctx context.Context) (unmount func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.done = done
	l.isLoading = true
	l.result = FetchResult{}
	l.mu.Unlock()

	go func() {
		defer close(done)
		res := l.fetch(ctx)
		l.settle(gen, res)
	}()

	return cancel
}

// Wait blocks until the most recent mount settles and returns its result.
func (l *PostLoader) Wait() FetchResult {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	<-done

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result
}

// Load mounts, waits for the request to settle, and releases the context.
func (l *PostLoader) Load(ctx context.Context) FetchResult {
	unmount := l.Mount(ctx)
	defer unmount()
	return l.Wait()
}

func (l *PostLoader) fetch(ctx context.Context) FetchResult {
	posts, apiErr := l.client.ListPosts(ctx)

	if apiErr != nil {
		if apiErr.IsCancelled() || ctx.Err() == context.Canceled {
			return FetchResult{Outcome: FetchCancelled, Err: apiErr}
		}
		return FetchResult{Outcome: FetchFailed, Err: apiErr}
	}

	// a response that lands after unmount is dropped
	if ctx.Err() != nil {
		return FetchResult{Outcome: FetchCancelled}
	}

	return FetchResult{Outcome: FetchSucceeded, Posts: posts}
}

func (l *PostLoader) settle(gen int, res FetchResult) {
	// a newer mount owns the state now
	if l.superseded(gen) {
		log.Printf("Dropping superseded fetch (%s)\n", res.Outcome)
		return
	}

	switch res.Outcome {
	case FetchSucceeded:
		l.store.ReplacePosts(res.Posts)
	case FetchCancelled:
		log.Println("Fetch request cancelled")
	case FetchFailed:
		log.Printf("Error fetching posts: %v\n", res.Err)
	}

	l.mu.Lock()
	// store observers may have remounted while the posts were replaced
	if gen != l.gen {
		l.mu.Unlock()
		log.Printf("Dropping superseded fetch (%s)\n", res.Outcome)
		return
	}
	switch res.Outcome {
	case FetchSucceeded:
		l.fetchError = ""
	case FetchFailed:
		l.fetchError = fetchErrorMessage(res.Err)
	}
	l.isLoading = false
	l.result = res
	fns := append([]func(FetchResult){}, l.onSettle...)
	l.mu.Unlock()

	for _, fn := range fns {
		fn(res)
	}
}

func (l *PostLoader) superseded(gen int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen != l.gen
}

func fetchErrorMessage(apiErr *shared.ApiError) string {
	if apiErr == nil {
		return ""
	}
	if apiErr.Type == shared.ApiErrorTypeStatus {
		return fmt.Sprintf("Something went wrong: %s", apiErr.Msg)
	}
	return apiErr.Msg
}
