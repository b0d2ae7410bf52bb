package lib

import (
	"context"
	"sync"

	shared "blog-cli/shared"
)

type stubClient struct {
	mu sync.Mutex

	posts     []*shared.Post
	listErr   *shared.ApiError
	createErr *shared.ApiError
	deleteErr *shared.ApiError

	// createdId overrides the id the service hands back
	createdId int

	// block parks ListPosts until closed or the context ends
	block chan struct{}

	listCalls int
	created   []shared.CreatePostRequest
	deleted   []int
}

func (c *stubClient) ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError) {
	c.mu.Lock()
	c.listCalls++
	block := c.block
	c.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeCancelled, Msg: ctx.Err().Error()}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.posts, nil
}

func (c *stubClient) CreatePost(req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.createErr != nil {
		return nil, c.createErr
	}
	c.created = append(c.created, req)

	post := req
	if c.createdId != 0 {
		post.Id = c.createdId
	}
	return &post, nil
}

func (c *stubClient) DeletePost(postId int) *shared.ApiError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deleted = append(c.deleted, postId)
	return nil
}

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordingNavigator) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string{}, n.paths...)
}

func post(id int, title, body string) *shared.Post {
	return &shared.Post{Id: id, Title: title, Body: body}
}

func ids(posts []*shared.Post) []int {
	res := []int{}
	for _, p := range posts {
		res = append(res, p.Id)
	}
	return res
}
