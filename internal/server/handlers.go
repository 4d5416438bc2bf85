package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fider-contrib/fider-mcp/internal/fider"
	"github.com/mark3labs/mcp-go/mcp"
)

// callTool routes a tool invocation to its handler. The switch is the closed
// enumeration matching toolCatalog; an unlisted name is an error, not a fall
// through.
func (s *Server) callTool(ctx context.Context, name string, args json.RawMessage) (*mcp.CallToolResult, error) {
	switch name {
	case ToolListPosts:
		return s.listPosts(ctx, args)
	case ToolGetPost:
		return s.getPost(ctx, args)
	case ToolCreatePost:
		return s.createPost(ctx, args)
	case ToolEditPost:
		return s.editPost(ctx, args)
	case ToolDeletePost:
		return s.deletePost(ctx, args)
	case ToolRespondToPost:
		return s.respondToPost(ctx, args)
	case ToolListComments:
		return s.listComments(ctx, args)
	case ToolAddComment:
		return s.addComment(ctx, args)
	case ToolUpdateComment:
		return s.updateComment(ctx, args)
	case ToolDeleteComment:
		return s.deleteComment(ctx, args)
	case ToolListTags:
		return s.listTags(ctx)
	case ToolCreateTag:
		return s.createTag(ctx, args)
	case ToolUpdateTag:
		return s.updateTag(ctx, args)
	case ToolDeleteTag:
		return s.deleteTag(ctx, args)
	case ToolAssignTag:
		return s.assignTag(ctx, args)
	case ToolUnassignTag:
		return s.unassignTag(ctx, args)
	default:
		return nil, fmt.Errorf("Unknown tool: %s", name)
	}
}

// textResult wraps a rendered string as the single text content block every
// handler returns.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
	}
}

// prettyJSON renders a decoded payload the way the rest of the result text
// expects it: two-space indented JSON. nil renders as "null".
func prettyJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func (s *Server) listPosts(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args listPostsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	data, err := s.client.ListPosts(ctx, fider.PostFilter{
		Query: args.Query,
		View:  args.View,
		Limit: args.Limit,
		Tags:  args.Tags,
	})
	if err != nil {
		return nil, err
	}

	count := 0
	if posts, ok := data.([]any); ok {
		count = len(posts)
	}
	return textResult(fmt.Sprintf("Found %d posts:\n\n%s", count, prettyJSON(data))), nil
}

func (s *Server) getPost(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args getPostArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	data, err := s.client.GetPost(ctx, args.Number)
	if err != nil {
		if fider.IsNotFound(err) {
			return nil, fmt.Errorf("Post #%d not found", args.Number)
		}
		return nil, err
	}
	return textResult(fmt.Sprintf("Post #%d:\n\n%s", args.Number, prettyJSON(data))), nil
}

func (s *Server) createPost(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args createPostArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	data, err := s.client.CreatePost(ctx, args.Title, args.Description)
	if err != nil {
		return nil, err
	}
	return textResult("Post created successfully:\n\n" + prettyJSON(data)), nil
}

func (s *Server) editPost(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args editPostArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	if _, err := s.client.EditPost(ctx, args.Number, args.Title, args.Description); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Post #%d updated successfully", args.Number)), nil
}

func (s *Server) deletePost(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args deletePostArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	reason := args.Reason
	if reason == "" {
		reason = "Deleted via MCP"
	}
	if _, err := s.client.DeletePost(ctx, args.Number, reason); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Post #%d deleted successfully", args.Number)), nil
}

func (s *Server) respondToPost(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args respondToPostArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	if _, err := s.client.SetPostStatus(ctx, args.Number, args.Status, args.Text, args.OriginalNumber); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Post #%d status updated to '%s' successfully", args.Number, args.Status)), nil
}

func (s *Server) listComments(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args listCommentsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	data, err := s.client.ListComments(ctx, args.Number)
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Comments for post #%d:\n\n%s", args.Number, prettyJSON(data))), nil
}

func (s *Server) addComment(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args addCommentArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	data, err := s.client.AddComment(ctx, args.Number, args.Content)
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Comment added successfully to post #%d:\n\n%s", args.Number, prettyJSON(data))), nil
}

func (s *Server) updateComment(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args updateCommentArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	if _, err := s.client.UpdateComment(ctx, args.PostNumber, args.CommentID, args.Content); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Comment #%d updated successfully", args.CommentID)), nil
}

func (s *Server) deleteComment(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args deleteCommentArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	if _, err := s.client.DeleteComment(ctx, args.PostNumber, args.CommentID); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Comment #%d deleted successfully", args.CommentID)), nil
}

func (s *Server) listTags(ctx context.Context) (*mcp.CallToolResult, error) {
	data, err := s.client.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return textResult("Available tags:\n\n" + prettyJSON(data)), nil
}

func (s *Server) createTag(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args createTagArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	data, err := s.client.CreateTag(ctx, args.Name, args.Color, isPublicOrDefault(args.IsPublic))
	if err != nil {
		return nil, err
	}
	return textResult("Tag created successfully:\n\n" + prettyJSON(data)), nil
}

func (s *Server) updateTag(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args updateTagArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	data, err := s.client.UpdateTag(ctx, args.Slug, args.Name, args.Color, isPublicOrDefault(args.IsPublic))
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Tag '%s' updated successfully:\n\n%s", args.Slug, prettyJSON(data))), nil
}

func (s *Server) deleteTag(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args deleteTagArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	if _, err := s.client.DeleteTag(ctx, args.Slug); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Tag '%s' deleted successfully", args.Slug)), nil
}

func (s *Server) assignTag(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args assignTagArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	if _, err := s.client.AssignTag(ctx, args.PostNumber, args.Slug); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Tag '%s' assigned to post #%d successfully", args.Slug, args.PostNumber)), nil
}

func (s *Server) unassignTag(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args assignTagArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	if _, err := s.client.UnassignTag(ctx, args.PostNumber, args.Slug); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Tag '%s' unassigned from post #%d successfully", args.Slug, args.PostNumber)), nil
}
