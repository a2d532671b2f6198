package models

// IssueCategory enum
type IssueCategory string

const (
	Roads      IssueCategory = "roads"
	Sanitation IssueCategory = "sanitation"
	Water      IssueCategory = "water"
	Lighting   IssueCategory = "lighting"
)

// AllIssueCategories lists every valid category, in the order the
// department filter renders them.
var AllIssueCategories = []IssueCategory{Roads, Sanitation, Water, Lighting}

func (c IssueCategory) IsValid() bool {
	switch c {
	case Roads, Sanitation, Water, Lighting:
		return true
	}
	return false
}

func (c IssueCategory) String() string {
	return string(c)
}

// IssueStatus enum
type IssueStatus string

const (
	Submitted  IssueStatus = "submitted"
	InProgress IssueStatus = "in-progress"
	Resolved   IssueStatus = "resolved"
)

func (s IssueStatus) IsValid() bool {
	switch s {
	case Submitted, InProgress, Resolved:
		return true
	}
	return false
}

func (s IssueStatus) String() string {
	return string(s)
}

// Location is a WGS84 coordinate pair for the map view.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Issue represents a civic issue reported by a user. The reporting caller
// supplies the id and date; the store never generates either. Upvoters holds
// the ids of users whose upvote was recorded through ToggleUpvote. Upvotes can
// exceed its length: seed data and raw UpvoteIssue commands carry unattributed
// votes.
type Issue struct {
	ID          string        `json:"id" validate:"required"`
	Title       string        `json:"title" validate:"required,max=200"`
	Description string        `json:"description" validate:"required,max=1000"`
	Category    IssueCategory `json:"category" validate:"required"`
	Status      IssueStatus   `json:"status" validate:"required"`
	Date        string        `json:"date" validate:"required,datetime=2006-01-02"`
	Image       string        `json:"image,omitempty"`
	Audio       string        `json:"audio,omitempty"`
	Landmark    string        `json:"landmark,omitempty"`
	Upvotes     int           `json:"upvotes" validate:"min=0"`
	Upvoters    []string      `json:"upvoters,omitempty"`
	UserID      string        `json:"userId" validate:"required"`
	Location    Location      `json:"location"`
}

// IssueUpdate carries a partial update for an issue. Only non-nil fields are
// merged into the target.
type IssueUpdate struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *IssueCategory `json:"category,omitempty"`
	Status      *IssueStatus   `json:"status,omitempty"`
	Date        *string        `json:"date,omitempty"`
	Image       *string        `json:"image,omitempty"`
	Audio       *string        `json:"audio,omitempty"`
	Landmark    *string        `json:"landmark,omitempty"`
	Upvotes     *int           `json:"upvotes,omitempty"`
	Location    *Location      `json:"location,omitempty"`
}
