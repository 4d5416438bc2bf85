package server

import "github.com/mark3labs/mcp-go/mcp"

// Tool names form a closed set; the router in handlers.go switches over these
// constants exhaustively.
const (
	ToolListPosts     = "list_posts"
	ToolGetPost       = "get_post"
	ToolCreatePost    = "create_post"
	ToolEditPost      = "edit_post"
	ToolDeletePost    = "delete_post"
	ToolRespondToPost = "respond_to_post"
	ToolListComments  = "list_comments"
	ToolAddComment    = "add_comment"
	ToolUpdateComment = "update_comment"
	ToolDeleteComment = "delete_comment"
	ToolListTags      = "list_tags"
	ToolCreateTag     = "create_tag"
	ToolUpdateTag     = "update_tag"
	ToolDeleteTag     = "delete_tag"
	ToolAssignTag     = "assign_tag"
	ToolUnassignTag   = "unassign_tag"
)

// postStatuses are the transitions respond_to_post accepts.
var postStatuses = []string{"open", "planned", "started", "completed", "declined", "duplicate"}

// toolCatalog is the static descriptor set served by tools/list. Order is
// stable and mirrors the Fider API surface: posts, comments, tags.
var toolCatalog = []mcp.Tool{
	{
		Name:        ToolListPosts,
		Description: "List posts from Fider with optional filtering",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search keywords",
				},
				"view": map[string]any{
					"type":        "string",
					"description": "Filter and order. Options: all, recent, my-votes, most-wanted, most-discussed, planned, started, completed, declined, trending",
					"enum":        []string{"all", "recent", "my-votes", "most-wanted", "most-discussed", "planned", "started", "completed", "declined", "trending"},
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Number of entries to return (default: 30)",
					"minimum":     1,
					"maximum":     100,
				},
				"tags": map[string]any{
					"type":        "string",
					"description": "Comma-separated list of tags to filter by",
				},
			},
		},
	},
	{
		Name:        ToolGetPost,
		Description: "Get a specific post by its number",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"number": map[string]any{
					"type":        "integer",
					"description": "The post number to retrieve",
				},
			},
			Required: []string{"number"},
		},
	},
	{
		Name:        ToolCreatePost,
		Description: "Create a new post (requires authentication)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "The title of the post",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "The description of the post",
				},
			},
			Required: []string{"title"},
		},
	},
	{
		Name:        ToolEditPost,
		Description: "Edit an existing post (requires collaborator/admin role)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"number": map[string]any{
					"type":        "integer",
					"description": "The post number to edit",
				},
				"title": map[string]any{
					"type":        "string",
					"description": "The new title of the post",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "The new description of the post",
				},
			},
			Required: []string{"number", "title"},
		},
	},
	{
		Name:        ToolDeletePost,
		Description: "Delete a post (requires admin role)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"number": map[string]any{
					"type":        "integer",
					"description": "The post number to delete",
				},
				"reason": map[string]any{
					"type":        "string",
					"description": "Reason for deletion",
				},
			},
			Required: []string{"number"},
		},
	},
	{
		Name:        ToolRespondToPost,
		Description: "Respond to a post by changing its status (requires collaborator/admin role)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"number": map[string]any{
					"type":        "integer",
					"description": "The post number to respond to",
				},
				"status": map[string]any{
					"type":        "string",
					"description": "The new status of the post",
					"enum":        postStatuses,
				},
				"text": map[string]any{
					"type":        "string",
					"description": "Optional description of the status change",
				},
				"originalNumber": map[string]any{
					"type":        "integer",
					"description": "Required when status is 'duplicate' - the post number to merge into",
				},
			},
			Required: []string{"number", "status"},
		},
	},
	{
		Name:        ToolListComments,
		Description: "List comments for a specific post",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"number": map[string]any{
					"type":        "integer",
					"description": "The post number to get comments for",
				},
			},
			Required: []string{"number"},
		},
	},
	{
		Name:        ToolAddComment,
		Description: "Add a comment to a post (requires authentication)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"number": map[string]any{
					"type":        "integer",
					"description": "The post number to comment on",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "The comment content",
				},
			},
			Required: []string{"number", "content"},
		},
	},
	{
		Name:        ToolUpdateComment,
		Description: "Update a comment (requires authentication and ownership)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"post_number": map[string]any{
					"type":        "integer",
					"description": "The post number",
				},
				"comment_id": map[string]any{
					"type":        "integer",
					"description": "The comment ID to update",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "The new comment content",
				},
			},
			Required: []string{"post_number", "comment_id", "content"},
		},
	},
	{
		Name:        ToolDeleteComment,
		Description: "Delete a comment (requires authentication and ownership/admin)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"post_number": map[string]any{
					"type":        "integer",
					"description": "The post number",
				},
				"comment_id": map[string]any{
					"type":        "integer",
					"description": "The comment ID to delete",
				},
			},
			Required: []string{"post_number", "comment_id"},
		},
	},
	{
		Name:        ToolListTags,
		Description: "List all available tags",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	},
	{
		Name:        ToolCreateTag,
		Description: "Create a new tag (requires admin role)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "The tag name",
				},
				"color": map[string]any{
					"type":        "string",
					"description": "The tag color (hex format, e.g., #FF0000)",
				},
				"isPublic": map[string]any{
					"type":        "boolean",
					"description": "Whether the tag is public (default: true)",
				},
			},
			Required: []string{"name", "color"},
		},
	},
	{
		Name:        ToolUpdateTag,
		Description: "Update an existing tag (requires admin role)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"slug": map[string]any{
					"type":        "string",
					"description": "The tag slug to update",
				},
				"name": map[string]any{
					"type":        "string",
					"description": "The new tag name",
				},
				"color": map[string]any{
					"type":        "string",
					"description": "The new tag color (hex format, e.g., #FF0000)",
				},
				"isPublic": map[string]any{
					"type":        "boolean",
					"description": "Whether the tag is public",
				},
			},
			Required: []string{"slug", "name", "color"},
		},
	},
	{
		Name:        ToolDeleteTag,
		Description: "Delete a tag (requires admin role)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"slug": map[string]any{
					"type":        "string",
					"description": "The tag slug to delete",
				},
			},
			Required: []string{"slug"},
		},
	},
	{
		Name:        ToolAssignTag,
		Description: "Assign a tag to a post (requires collaborator/admin role)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"post_number": map[string]any{
					"type":        "integer",
					"description": "The post number",
				},
				"slug": map[string]any{
					"type":        "string",
					"description": "The tag slug to assign",
				},
			},
			Required: []string{"post_number", "slug"},
		},
	},
	{
		Name:        ToolUnassignTag,
		Description: "Unassign a tag from a post (requires collaborator/admin role)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"post_number": map[string]any{
					"type":        "integer",
					"description": "The post number",
				},
				"slug": map[string]any{
					"type":        "string",
					"description": "The tag slug to unassign",
				},
			},
			Required: []string{"post_number", "slug"},
		},
	},
}
