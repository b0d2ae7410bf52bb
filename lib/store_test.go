package lib

import (
	"testing"

	shared "blog-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostStoreRecomputesResults(t *testing.T) {
	store := NewPostStore()
	assert.Empty(t, store.Results())

	store.ReplacePosts([]*shared.Post{
		post(1, "Cats", "Meow"),
		post(2, "Dogs", "Woof"),
	})
	assert.Equal(t, []int{2, 1}, ids(store.Results()))

	store.SetSearch("o")
	assert.Equal(t, "o", store.Search())
	assert.Equal(t, []int{2}, ids(store.Results()))

	store.AppendPost(post(3, "Owls", "Hoot"))
	assert.Equal(t, []int{3, 2}, ids(store.Results()))

	store.RemovePost(2)
	assert.Equal(t, []int{3}, ids(store.Results()))
	assert.Equal(t, []int{1, 3}, ids(store.Posts()))

	store.SetSearch("")
	assert.Equal(t, []int{3, 1}, ids(store.Results()))
}

func TestPostStoreNextPostId(t *testing.T) {
	store := NewPostStore()
	assert.Equal(t, 1, store.NextPostId())

	store.ReplacePosts([]*shared.Post{post(5, "", "")})
	assert.Equal(t, 6, store.NextPostId())

	store.ReplacePosts([]*shared.Post{post(3, "", ""), post(9, "", ""), post(4, "", "")})
	assert.Equal(t, 10, store.NextPostId())
}

func TestPostStoreRemoveMissingIdIsNoop(t *testing.T) {
	store := NewPostStore()
	store.ReplacePosts([]*shared.Post{post(1, "a", "b")})

	store.RemovePost(42)
	assert.Equal(t, []int{1}, ids(store.Posts()))
}

func TestPostStoreFindPost(t *testing.T) {
	store := NewPostStore()
	store.ReplacePosts([]*shared.Post{post(1, "a", "b"), post(2, "c", "d")})

	found, ok := store.FindPost(2)
	require.True(t, ok)
	assert.Equal(t, "c", found.Title)

	_, ok = store.FindPost(3)
	assert.False(t, ok)
}

func TestPostStoreSubscribe(t *testing.T) {
	store := NewPostStore()

	calls := 0
	unsubscribe := store.Subscribe(func() {
		calls++
		// subscribers may read the store
		_ = store.Results()
	})

	store.SetSearch("x")
	store.AppendPost(post(1, "x", ""))
	assert.Equal(t, 2, calls)

	unsubscribe()
	store.RemovePost(1)
	assert.Equal(t, 2, calls)
}

func TestPostStoreReturnsCopies(t *testing.T) {
	store := NewPostStore()
	store.ReplacePosts([]*shared.Post{post(1, "a", "b")})

	posts := store.Posts()
	posts[0] = post(99, "", "")
	assert.Equal(t, []int{1}, ids(store.Posts()))
}
