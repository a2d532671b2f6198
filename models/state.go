package models

// Language enum
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

func (l Language) IsValid() bool {
	switch l {
	case English, Hindi:
		return true
	}
	return false
}

func (l Language) String() string {
	return string(l)
}

// AppState is the full application snapshot handed to consumers. It is a
// value: every dispatch produces a new AppState whose collections are fresh
// copies, so a previously taken snapshot stays valid and comparable.
//
// User is nil when nobody is signed in. Issues, Notifications and
// CommunityPosts are ordered newest-insertion-first; chronological or
// popularity ordering is a read-time concern (see the query package).
type AppState struct {
	User           *User           `json:"user"`
	Issues         []Issue         `json:"issues"`
	Notifications  []Notification  `json:"notifications"`
	DarkMode       bool            `json:"darkMode"`
	Language       Language        `json:"language"`
	CommunityPosts []CommunityPost `json:"communityPosts"`
}

// IssueByID returns the issue with the given id, or false when absent.
func (s AppState) IssueByID(id string) (Issue, bool) {
	for _, issue := range s.Issues {
		if issue.ID == id {
			return issue, true
		}
	}
	return Issue{}, false
}

// PostByID returns the community post with the given id, or false when absent.
func (s AppState) PostByID(id string) (CommunityPost, bool) {
	for _, post := range s.CommunityPosts {
		if post.ID == id {
			return post, true
		}
	}
	return CommunityPost{}, false
}
