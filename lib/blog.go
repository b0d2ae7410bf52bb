package lib

import (
	"fmt"
	"log"
	"sync"
	"time"

	shared "blog-cli/shared"
	"blog-cli/types"
)

type PostDraft struct {
	mu    sync.Mutex
	title string
	body  string
}

func (d *PostDraft) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

func (d *PostDraft) Body() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.body
}

func (d *PostDraft) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

func (d *PostDraft) SetBody(body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.body = body
}

func (d *PostDraft) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = ""
	d.body = ""
}

// Blog wires the post store, the list loader and the create/delete flows
// to one api client and one navigator.
type Blog struct {
	Store  *PostStore
	Loader *PostLoader
	Draft  *PostDraft

	client   types.ApiClient
	navigate Navigator
	now      func() time.Time
}

type BlogOption func(*Blog)

// WithClock replaces time.Now for post datetimes.
func WithClock(now func() time.Time) BlogOption {
	return func(b *Blog) {
		b.now = now
	}
}

func NewBlog(client types.ApiClient, navigate Navigator, opts ...BlogOption) *Blog {
	store := NewPostStore()

	b := &Blog{
		Store:    store,
		Loader:   NewPostLoader(client, store),
		Draft:    &PostDraft{},
		client:   client,
		navigate: navigate,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewPost builds the post CreatePost would send, without sending it.
func (b *Blog) NewPost(title, body string) shared.Post {
	return shared.Post{
		Id:       b.Store.NextPostId(),
		Title:    title,
		Datetime: shared.FormatDatetime(b.now()),
		Body:     body,
	}
}

// CreatePost sends a new post to the service. The post the service returns
// is what lands in the store. On failure, including a response without a
// post in it, nothing local changes.
func (b *Blog) CreatePost(title, body string) (*shared.Post, error) {
	newPost := b.NewPost(title, body)

	created, apiErr := b.client.CreatePost(newPost)
	if apiErr != nil {
		log.Println("Error adding post", apiErr.Msg)
		return nil, fmt.Errorf("error adding post: %v", apiErr.Msg)
	}

	b.Store.AppendPost(created)
	b.Draft.Clear()
	b.navigate.Navigate(HomePath)

	return created, nil
}

// SubmitDraft creates a post from the current draft fields.
func (b *Blog) SubmitDraft() (*shared.Post, error) {
	return b.CreatePost(b.Draft.Title(), b.Draft.Body())
}

func (b *Blog) DeletePost(postId int) error {
	apiErr := b.client.DeletePost(postId)
	if apiErr != nil {
		log.Println("Error deleting post", apiErr.Msg)
		return fmt.Errorf("error deleting post: %v", apiErr.Msg)
	}

	b.Store.RemovePost(postId)
	b.navigate.Navigate(HomePath)

	return nil
}
