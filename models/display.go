package models

// DisplayItem is the tagged union the detail view renders: either a reported
// Issue or a CommunityPost. The marker method seals the union so helpers can
// type-switch exhaustively instead of probing optional fields at runtime.
type DisplayItem interface {
	displayItem()
}

func (Issue) displayItem()         {}
func (CommunityPost) displayItem() {}

// ItemTitle returns the headline for a display item.
func ItemTitle(item DisplayItem) string {
	switch v := item.(type) {
	case Issue:
		return v.Title
	case CommunityPost:
		return v.Title
	}
	return ""
}

// ItemDate returns the ISO date for a display item, empty when the post has
// none.
func ItemDate(item DisplayItem) string {
	switch v := item.(type) {
	case Issue:
		return v.Date
	case CommunityPost:
		return v.Date
	}
	return ""
}

// ItemCategory returns the department category, empty for uncategorized posts.
func ItemCategory(item DisplayItem) IssueCategory {
	switch v := item.(type) {
	case Issue:
		return v.Category
	case CommunityPost:
		return v.Category
	}
	return ""
}

// ItemEngagement returns the vote-like tally shown next to an item: upvotes
// for an issue, like count for a post.
func ItemEngagement(item DisplayItem) int {
	switch v := item.(type) {
	case Issue:
		return v.Upvotes
	case CommunityPost:
		return len(v.Likes)
	}
	return 0
}
