package lib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-cli/api"
	shared "blog-cli/shared"
	"blog-cli/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2024, time.April, 5, 15, 45, 12, 0, time.UTC)
}

func TestCreatePostAssignsNextId(t *testing.T) {
	client := &stubClient{}
	nav := &recordingNavigator{}
	blog := NewBlog(client, nav, WithClock(fixedNow))
	blog.Store.ReplacePosts([]*shared.Post{post(5, "old", "")})

	created, err := blog.CreatePost("T", "B")
	require.NoError(t, err)
	assert.Equal(t, 6, created.Id)

	require.Len(t, client.created, 1)
	assert.Equal(t, shared.Post{Id: 6, Title: "T", Body: "B", Datetime: "April 05, 2024 3:45:12 PM"}, client.created[0])
	assert.Equal(t, []int{5, 6}, ids(blog.Store.Posts()))
	assert.Equal(t, []string{HomePath}, nav.Paths())
}

func TestCreatePostOnEmptyCollection(t *testing.T) {
	client := &stubClient{}
	blog := NewBlog(client, &recordingNavigator{}, WithClock(fixedNow))

	created, err := blog.CreatePost("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, created.Id)
}

func TestCreatePostKeepsServiceRepresentation(t *testing.T) {
	client := &stubClient{createdId: 40}
	blog := NewBlog(client, &recordingNavigator{}, WithClock(fixedNow))
	blog.Store.ReplacePosts([]*shared.Post{post(1, "", "")})

	created, err := blog.CreatePost("T", "B")
	require.NoError(t, err)
	assert.Equal(t, 40, created.Id)
	assert.Equal(t, []int{1, 40}, ids(blog.Store.Posts()))
	assert.Equal(t, 41, blog.Store.NextPostId())
}

func TestCreatePostIsNotIdempotent(t *testing.T) {
	client := &stubClient{}
	blog := NewBlog(client, &recordingNavigator{}, WithClock(fixedNow))

	first, err := blog.CreatePost("same", "same")
	require.NoError(t, err)
	second, err := blog.CreatePost("same", "same")
	require.NoError(t, err)

	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, 2, blog.Store.Len())
}

func TestCreatePostFailureLeavesStateAlone(t *testing.T) {
	client := &stubClient{createErr: &shared.ApiError{Type: shared.ApiErrorTypeStatus, Status: 500, Msg: "nope"}}
	nav := &recordingNavigator{}
	blog := NewBlog(client, nav, WithClock(fixedNow))
	blog.Store.ReplacePosts([]*shared.Post{post(1, "a", "b")})
	blog.Draft.SetTitle("draft title")
	blog.Draft.SetBody("draft body")

	created, err := blog.SubmitDraft()
	assert.Nil(t, created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")

	assert.Equal(t, 1, blog.Store.Len())
	assert.Empty(t, nav.Paths())
	assert.Equal(t, "draft title", blog.Draft.Title())
	assert.Equal(t, "draft body", blog.Draft.Body())
}

func TestSubmitDraftClearsInputs(t *testing.T) {
	client := &stubClient{}
	blog := NewBlog(client, &recordingNavigator{}, WithClock(fixedNow))
	blog.Draft.SetTitle("Hello")
	blog.Draft.SetBody("World")

	created, err := blog.SubmitDraft()
	require.NoError(t, err)
	assert.Equal(t, "Hello", created.Title)
	assert.Equal(t, "World", created.Body)
	assert.Empty(t, blog.Draft.Title())
	assert.Empty(t, blog.Draft.Body())
}

func TestDeletePostRemovesAndNavigates(t *testing.T) {
	client := &stubClient{}
	nav := &recordingNavigator{}
	blog := NewBlog(client, nav)
	blog.Store.ReplacePosts([]*shared.Post{post(1, "a", ""), post(2, "b", "")})

	require.NoError(t, blog.DeletePost(1))
	assert.Equal(t, []int{2}, ids(blog.Store.Posts()))
	assert.Equal(t, []int{1}, client.deleted)
	assert.Equal(t, []string{HomePath}, nav.Paths())

	_, ok := blog.Store.FindPost(1)
	assert.False(t, ok)
}

func TestDeletePostUnknownIdSucceedsLocally(t *testing.T) {
	client := &stubClient{}
	nav := &recordingNavigator{}
	blog := NewBlog(client, nav)
	blog.Store.ReplacePosts([]*shared.Post{post(1, "a", "")})

	require.NoError(t, blog.DeletePost(77))
	assert.Equal(t, []int{1}, ids(blog.Store.Posts()))
	assert.Equal(t, []string{HomePath}, nav.Paths())
}

func TestDeletePostFailure(t *testing.T) {
	client := &stubClient{deleteErr: &shared.ApiError{Type: shared.ApiErrorTypeStatus, Status: 404, Msg: "Not Found"}}
	nav := &recordingNavigator{}
	blog := NewBlog(client, nav)
	blog.Store.ReplacePosts([]*shared.Post{post(1, "a", "")})

	err := blog.DeletePost(1)
	require.Error(t, err)
	assert.Equal(t, []int{1}, ids(blog.Store.Posts()))
	assert.Empty(t, nav.Paths())
}

func TestBlogAgainstService(t *testing.T) {
	svc := testutil.NewFakePostService(
		&shared.Post{Id: 1, Title: "Cats", Body: "Meow"},
		&shared.Post{Id: 2, Title: "Dogs", Body: "Woof"},
	)
	defer svc.Close()

	router := NewRouter()
	blog := NewBlog(api.NewApi(svc.URL()), router, WithClock(fixedNow))

	res := blog.Loader.Load(context.Background())
	require.Equal(t, FetchSucceeded, res.Outcome)

	router.Navigate(NewPostPath)
	created, err := blog.CreatePost("Owls", "Hoot")
	require.NoError(t, err)
	assert.Equal(t, 3, created.Id)
	assert.Equal(t, RouteHome, router.Current().Name)

	blog.Store.SetSearch("o")
	assert.Equal(t, []int{3, 2}, ids(blog.Store.Results()))

	router.Navigate(PostPath(2))
	require.NoError(t, blog.DeletePost(2))
	assert.Equal(t, RouteHome, router.Current().Name)
	assert.Equal(t, []int{3}, ids(blog.Store.Results()))
	assert.Len(t, svc.Posts(), 2)

	assert.Equal(t, []string{"GET /posts", "POST /posts", "DELETE /posts/2"}, svc.Requests())
}

func TestCreatePostEmptyResponseIsFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer mockServer.Close()

	nav := &recordingNavigator{}
	blog := NewBlog(api.NewApi(mockServer.URL), nav, WithClock(fixedNow))
	blog.Draft.SetTitle("T")

	created, err := blog.SubmitDraft()
	assert.Nil(t, created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding response")
	assert.Equal(t, 0, blog.Store.Len())
	assert.Empty(t, nav.Paths())
	assert.Equal(t, "T", blog.Draft.Title())
}
