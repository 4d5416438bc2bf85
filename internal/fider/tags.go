package fider

import (
	"context"
	"fmt"
	"net/url"
)

type tagBody struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsPublic bool   `json:"isPublic"`
}

// ListTags fetches all tags.
func (c *Client) ListTags(ctx context.Context) (any, error) {
	return c.do(ctx, "GET", "/api/v1/tags", nil, nil)
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, name, color string, isPublic bool) (any, error) {
	return c.do(ctx, "POST", "/api/v1/tags", nil, tagBody{Name: name, Color: color, IsPublic: isPublic})
}

// UpdateTag replaces a tag's name, color and visibility.
func (c *Client) UpdateTag(ctx context.Context, slug, name, color string, isPublic bool) (any, error) {
	return c.do(ctx, "PUT", "/api/v1/tags/"+url.PathEscape(slug), nil, tagBody{Name: name, Color: color, IsPublic: isPublic})
}

// DeleteTag removes a tag.
func (c *Client) DeleteTag(ctx context.Context, slug string) (any, error) {
	return c.do(ctx, "DELETE", "/api/v1/tags/"+url.PathEscape(slug), nil, nil)
}

// AssignTag attaches a tag to a post.
func (c *Client) AssignTag(ctx context.Context, postNumber int, slug string) (any, error) {
	return c.do(ctx, "POST", fmt.Sprintf("/api/v1/posts/%d/tags/%s", postNumber, url.PathEscape(slug)), nil, nil)
}

// UnassignTag detaches a tag from a post.
func (c *Client) UnassignTag(ctx context.Context, postNumber int, slug string) (any, error) {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/v1/posts/%d/tags/%s", postNumber, url.PathEscape(slug)), nil, nil)
}
