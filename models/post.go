package models

// CommunityPost is a community-feed item. Unlike an Issue it carries no
// single upvote counter; Likes is the set of user ids who liked it, with no
// duplicates.
type CommunityPost struct {
	ID       string        `json:"id" validate:"required"`
	Title    string        `json:"title" validate:"required,max=200"`
	Body     string        `json:"body,omitempty" validate:"max=1000"`
	Image    string        `json:"image,omitempty"`
	Date     string        `json:"date,omitempty"`
	UserID   string        `json:"userId" validate:"required"`
	Category IssueCategory `json:"category,omitempty"`
	Likes    []string      `json:"likes"`
}

// LikedBy reports whether the given user id is in the post's like set.
func (p CommunityPost) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
