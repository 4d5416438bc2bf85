package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// decodeArgs parses a tool's argument object into its typed struct, rejecting
// unknown and mistyped fields before any outbound call is built.
func decodeArgs(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

type listPostsArgs struct {
	Query string `json:"query"`
	View  string `json:"view"`
	Limit int    `json:"limit"`
	Tags  string `json:"tags"`
}

type getPostArgs struct {
	Number int `json:"number"`
}

func (a getPostArgs) validate() error {
	if a.Number == 0 {
		return errors.New("Post number is required")
	}
	return nil
}

type createPostArgs struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (a createPostArgs) validate() error {
	if a.Title == "" {
		return errors.New("Post title is required")
	}
	return nil
}

type editPostArgs struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (a editPostArgs) validate() error {
	if a.Number == 0 {
		return errors.New("Post number is required")
	}
	if a.Title == "" {
		return errors.New("Post title is required")
	}
	return nil
}

type deletePostArgs struct {
	Number int    `json:"number"`
	Reason string `json:"reason"`
}

func (a deletePostArgs) validate() error {
	if a.Number == 0 {
		return errors.New("Post number is required")
	}
	return nil
}

type respondToPostArgs struct {
	Number         int    `json:"number"`
	Status         string `json:"status"`
	Text           string `json:"text"`
	OriginalNumber int    `json:"originalNumber"`
}

func (a respondToPostArgs) validate() error {
	if a.Number == 0 {
		return errors.New("Post number is required")
	}
	if a.Status == "" {
		return errors.New("Status is required")
	}
	if !slices.Contains(postStatuses, a.Status) {
		return fmt.Errorf("Invalid status. Must be one of: %s", strings.Join(postStatuses, ", "))
	}
	if a.Status == "duplicate" && a.OriginalNumber == 0 {
		return errors.New("originalNumber is required when status is 'duplicate'")
	}
	return nil
}

type listCommentsArgs struct {
	Number int `json:"number"`
}

func (a listCommentsArgs) validate() error {
	if a.Number == 0 {
		return errors.New("Post number is required")
	}
	return nil
}

type addCommentArgs struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

func (a addCommentArgs) validate() error {
	if a.Number == 0 {
		return errors.New("Post number is required")
	}
	if a.Content == "" {
		return errors.New("Comment content is required")
	}
	return nil
}

type updateCommentArgs struct {
	PostNumber int    `json:"post_number"`
	CommentID  int    `json:"comment_id"`
	Content    string `json:"content"`
}

func (a updateCommentArgs) validate() error {
	if a.PostNumber == 0 {
		return errors.New("Post number is required")
	}
	if a.CommentID == 0 {
		return errors.New("Comment ID is required")
	}
	if a.Content == "" {
		return errors.New("Comment content is required")
	}
	return nil
}

type deleteCommentArgs struct {
	PostNumber int `json:"post_number"`
	CommentID  int `json:"comment_id"`
}

func (a deleteCommentArgs) validate() error {
	if a.PostNumber == 0 {
		return errors.New("Post number is required")
	}
	if a.CommentID == 0 {
		return errors.New("Comment ID is required")
	}
	return nil
}

type createTagArgs struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsPublic *bool  `json:"isPublic"`
}

func (a createTagArgs) validate() error {
	if a.Name == "" {
		return errors.New("Tag name is required")
	}
	if a.Color == "" {
		return errors.New("Tag color is required")
	}
	return nil
}

type updateTagArgs struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsPublic *bool  `json:"isPublic"`
}

func (a updateTagArgs) validate() error {
	if a.Slug == "" {
		return errors.New("Tag slug is required")
	}
	if a.Name == "" {
		return errors.New("Tag name is required")
	}
	if a.Color == "" {
		return errors.New("Tag color is required")
	}
	return nil
}

type deleteTagArgs struct {
	Slug string `json:"slug"`
}

func (a deleteTagArgs) validate() error {
	if a.Slug == "" {
		return errors.New("Tag slug is required")
	}
	return nil
}

type assignTagArgs struct {
	PostNumber int    `json:"post_number"`
	Slug       string `json:"slug"`
}

func (a assignTagArgs) validate() error {
	if a.PostNumber == 0 {
		return errors.New("Post number is required")
	}
	if a.Slug == "" {
		return errors.New("Tag slug is required")
	}
	return nil
}

// isPublicOrDefault applies the documented default: tags are public unless
// the caller says otherwise.
func isPublicOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
