package lib

import (
	"sync"

	shared "blog-cli/shared"

	"github.com/samber/lo"
)

// PostStore owns the post collection and the search query. Results are
// recomputed on every change and subscribers are told after the lock is
// released.
type PostStore struct {
	mu      sync.RWMutex
	posts   []*shared.Post
	search  string
	results []*shared.Post

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSubId   int
}

func NewPostStore() *PostStore {
	return &PostStore{
		posts:       []*shared.Post{},
		results:     []*shared.Post{},
		subscribers: map[int]func(){},
	}
}

func (s *PostStore) Posts() []*shared.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*shared.Post{}, s.posts...)
}

func (s *PostStore) Results() []*shared.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*shared.Post{}, s.results...)
}

func (s *PostStore) Search() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

func (s *PostStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func (s *PostStore) FindPost(postId int) (*shared.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.posts, func(post *shared.Post) bool {
		return post.Id == postId
	})
}

// NextPostId is one past the highest id in the collection, or 1 when it's empty.
func (s *PostStore) NextPostId() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.posts) == 0 {
		return 1
	}
	last := lo.MaxBy(s.posts, func(a, b *shared.Post) bool {
		return a.Id > b.Id
	})
	return last.Id + 1
}

func (s *PostStore) SetSearch(search string) {
	s.update(func() {
		s.search = search
	})
}

func (s *PostStore) ReplacePosts(posts []*shared.Post) {
	s.update(func() {
		s.posts = append([]*shared.Post{}, posts...)
	})
}

func (s *PostStore) AppendPost(post *shared.Post) {
	s.update(func() {
		s.posts = append(append([]*shared.Post{}, s.posts...), post)
	})
}

func (s *PostStore) RemovePost(postId int) {
	s.update(func() {
		s.posts = lo.Reject(s.posts, func(post *shared.Post, _ int) bool {
			return post.Id == postId
		})
	})
}

// Subscribe registers fn to run after every change. The returned func removes it.
func (s *PostStore) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubId
	s.nextSubId++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *PostStore) update(mutate func()) {
	s.mu.Lock()
	mutate()
	s.results = FilterPosts(s.posts, s.search)
	s.mu.Unlock()

	s.subMu.Lock()
	fns := lo.Values(s.subscribers)
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
