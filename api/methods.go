package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	shared "blog-cli/shared"

	"github.com/davecgh/go-spew/spew"
)

func (a *Api) ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError) {
	serverUrl := a.host + "/posts"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverUrl, nil)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, requestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var posts []*shared.Post
	err = json.NewDecoder(resp.Body).Decode(&posts)
	if err != nil {
		if ctx.Err() != nil {
			return nil, requestError(ctx, err)
		}
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeDecode, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	debugDump("ListPosts", posts)

	return posts, nil
}

func (a *Api) CreatePost(req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	serverUrl := a.host + "/posts"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := a.client.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, requestError(context.Background(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var post shared.Post
	err = json.NewDecoder(resp.Body).Decode(&post)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeDecode, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	debugDump("CreatePost", &post)

	return &post, nil
}

func (a *Api) DeletePost(postId int) *shared.ApiError {
	serverUrl := PostUrl(a.host, postId)

	req, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return requestError(context.Background(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(resp.Body)
		return HandleApiError(resp, errorBody)
	}

	// body content isn't part of the contract; drain it so the connection is reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func debugDump(label string, v any) {
	if os.Getenv("BLOG_DEBUG") == "" {
		return
	}
	log.Printf("%s response:\n%s", label, spew.Sdump(v))
}
