package models

// Command is a tagged request describing exactly one state transition. The
// set of variants is closed; the store treats any other implementation as an
// unknown command and leaves state untouched.
type Command interface {
	// Kind returns the command tag, used for logging and diagnostics.
	Kind() string
}

// SetUser replaces the current user wholesale. A nil User means logout.
type SetUser struct {
	User *User `json:"user"`
}

// AddIssue prepends a fully-formed issue to the collection. The caller owns
// id uniqueness and timestamping.
type AddIssue struct {
	Issue Issue `json:"issue"`
}

// UpdateIssue merges the non-nil fields of Updates into the matching issue.
type UpdateIssue struct {
	ID      string      `json:"id"`
	Updates IssueUpdate `json:"updates"`
}

// DeleteIssue removes the issue with the matching id.
type DeleteIssue struct {
	ID string `json:"id"`
}

// UpvoteIssue increments the matching issue's upvote counter by exactly one.
// It never decrements; callers wanting toggle semantics use ToggleUpvote.
type UpvoteIssue struct {
	ID string `json:"id"`
}

// ToggleUpvote records or withdraws a specific user's upvote on an issue.
// The store owns both the upvoter set and the derived counter, so repeated
// toggles from the same user cannot inflate the count.
type ToggleUpvote struct {
	IssueID string `json:"issueId"`
	UserID  string `json:"userId"`
}

// AddNotification prepends a bulletin to the notification collection.
type AddNotification struct {
	Notification Notification `json:"notification"`
}

// ToggleDarkMode flips the dark mode preference.
type ToggleDarkMode struct{}

// SetLanguage replaces the language preference.
type SetLanguage struct {
	Language Language `json:"language"`
}

// AddPost prepends a community post to the feed.
type AddPost struct {
	Post CommunityPost `json:"post"`
}

// ToggleLike flips the current user's membership in a post's like set. It is
// a no-op when nobody is signed in.
type ToggleLike struct {
	PostID string `json:"postId"`
}

func (SetUser) Kind() string         { return "SET_USER" }
func (AddIssue) Kind() string        { return "ADD_ISSUE" }
func (UpdateIssue) Kind() string     { return "UPDATE_ISSUE" }
func (DeleteIssue) Kind() string     { return "DELETE_ISSUE" }
func (UpvoteIssue) Kind() string     { return "UPVOTE_ISSUE" }
func (ToggleUpvote) Kind() string    { return "TOGGLE_UPVOTE" }
func (AddNotification) Kind() string { return "ADD_NOTIFICATION" }
func (ToggleDarkMode) Kind() string  { return "TOGGLE_DARK_MODE" }
func (SetLanguage) Kind() string     { return "SET_LANGUAGE" }
func (AddPost) Kind() string         { return "ADD_POST" }
func (ToggleLike) Kind() string      { return "TOGGLE_LIKE" }
