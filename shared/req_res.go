package shared

// the service stores whatever the client sends, id included
type CreatePostRequest = Post
