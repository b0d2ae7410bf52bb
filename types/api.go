package types

import (
	"context"

	shared "blog-cli/shared"
)

type ApiClient interface {
	ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError)
	CreatePost(req shared.CreatePostRequest) (*shared.Post, *shared.ApiError)
	DeletePost(postId int) *shared.ApiError
}
