package fider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// PostFilter narrows a ListPosts call. Zero-valued fields are omitted from
// the query string.
type PostFilter struct {
	Query string
	View  string
	Limit int
	Tags  string
}

type postBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type deletePostBody struct {
	Text string `json:"text"`
}

type postStatusBody struct {
	Status         string `json:"status"`
	Text           string `json:"text"`
	OriginalNumber int    `json:"originalNumber,omitempty"`
}

// ListPosts fetches posts matching the filter.
func (c *Client) ListPosts(ctx context.Context, filter PostFilter) (any, error) {
	query := url.Values{}
	if filter.Query != "" {
		query.Set("query", filter.Query)
	}
	if filter.View != "" {
		query.Set("view", filter.View)
	}
	if filter.Limit != 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Tags != "" {
		query.Set("tags", filter.Tags)
	}
	return c.do(ctx, "GET", "/api/v1/posts", query, nil)
}

// GetPost fetches a single post by number.
func (c *Client) GetPost(ctx context.Context, number int) (any, error) {
	return c.do(ctx, "GET", fmt.Sprintf("/api/v1/posts/%d", number), nil, nil)
}

// CreatePost creates a post. Fider requires a description field even when
// empty, so it is always sent.
func (c *Client) CreatePost(ctx context.Context, title, description string) (any, error) {
	return c.do(ctx, "POST", "/api/v1/posts", nil, postBody{Title: title, Description: description})
}

// EditPost replaces a post's title and description.
func (c *Client) EditPost(ctx context.Context, number int, title, description string) (any, error) {
	return c.do(ctx, "PUT", fmt.Sprintf("/api/v1/posts/%d", number), nil, postBody{Title: title, Description: description})
}

// DeletePost deletes a post, recording the given reason.
func (c *Client) DeletePost(ctx context.Context, number int, reason string) (any, error) {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/v1/posts/%d", number), nil, deletePostBody{Text: reason})
}

// SetPostStatus changes a post's status. originalNumber is only sent when
// non-zero (the duplicate target).
func (c *Client) SetPostStatus(ctx context.Context, number int, status, text string, originalNumber int) (any, error) {
	body := postStatusBody{Status: status, Text: text, OriginalNumber: originalNumber}
	return c.do(ctx, "PUT", fmt.Sprintf("/api/v1/posts/%d/status", number), nil, body)
}
