package fider

import (
	"context"
	"fmt"
)

type commentBody struct {
	Content string `json:"content"`
}

// ListComments fetches all comments on a post.
func (c *Client) ListComments(ctx context.Context, number int) (any, error) {
	return c.do(ctx, "GET", fmt.Sprintf("/api/v1/posts/%d/comments", number), nil, nil)
}

// AddComment adds a comment to a post.
func (c *Client) AddComment(ctx context.Context, number int, content string) (any, error) {
	return c.do(ctx, "POST", fmt.Sprintf("/api/v1/posts/%d/comments", number), nil, commentBody{Content: content})
}

// UpdateComment replaces a comment's content.
func (c *Client) UpdateComment(ctx context.Context, postNumber, commentID int, content string) (any, error) {
	return c.do(ctx, "PUT", fmt.Sprintf("/api/v1/posts/%d/comments/%d", postNumber, commentID), nil, commentBody{Content: content})
}

// DeleteComment removes a comment from a post.
func (c *Client) DeleteComment(ctx context.Context, postNumber, commentID int) (any, error) {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/v1/posts/%d/comments/%d", postNumber, commentID), nil, nil)
}
