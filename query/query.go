// Package query provides read-side helpers over a state snapshot. The store
// keeps collections in insertion order; every screen-facing ordering or
// filtering lives here and never mutates its input.
package query

import (
	"sort"
	"strings"
	"time"

	"civicreport/models"
)

// All matches every category or status in an IssueFilter.
const All = "all"

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// DefaultMapPinLimit caps how many markers the map renders at once.
	DefaultMapPinLimit = 19
)

// SortOrder enum
type SortOrder string

const (
	SortNewest   SortOrder = "newest"
	SortOldest   SortOrder = "oldest"
	SortTopVoted SortOrder = "top-voted"
)

// IssueFilter narrows an issue list. Empty or "all" fields match everything;
// Search matches title or description case-insensitively.
type IssueFilter struct {
	Category string
	Status   string
	Search   string
}

// FilterIssues returns the issues matching the filter, preserving order.
func FilterIssues(issues []models.Issue, f IssueFilter) []models.Issue {
	search := strings.ToLower(f.Search)
	res := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if f.Category != "" && f.Category != All && string(issue.Category) != f.Category {
			continue
		}
		if f.Status != "" && f.Status != All && string(issue.Status) != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(issue.Title), search) &&
			!strings.Contains(strings.ToLower(issue.Description), search) {
			continue
		}
		res = append(res, issue)
	}
	return res
}

// SortIssues returns a sorted copy. Unparseable dates sort as oldest.
func SortIssues(issues []models.Issue, order SortOrder) []models.Issue {
	res := append([]models.Issue(nil), issues...)
	switch order {
	case SortOldest:
		sort.SliceStable(res, func(i, j int) bool {
			return parseDate(res[i].Date).Before(parseDate(res[j].Date))
		})
	case SortTopVoted:
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].Upvotes > res[j].Upvotes
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(res, func(i, j int) bool {
			return parseDate(res[j].Date).Before(parseDate(res[i].Date))
		})
	}
	return res
}

// Paginate slices one page out of the issue list and reports the total page
// count. Page numbers start at 1; out-of-range values fall back to the
// defaults.
func Paginate(issues []models.Issue, page, limit int) ([]models.Issue, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	totalPages := (len(issues) + limit - 1) / limit

	skip := (page - 1) * limit
	if skip >= len(issues) {
		return []models.Issue{}, totalPages
	}
	end := skip + limit
	if end > len(issues) {
		end = len(issues)
	}
	return issues[skip:end], totalPages
}

// UserIssues returns the issues reported by the given user, preserving order.
func UserIssues(issues []models.Issue, userID string) []models.Issue {
	res := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.UserID == userID {
			res = append(res, issue)
		}
	}
	return res
}

// Trending returns the n most upvoted issues for the community feed.
func Trending(issues []models.Issue, n int) []models.Issue {
	res := SortIssues(issues, SortTopVoted)
	if n > 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

// MapPin is the projection the map view plots.
type MapPin struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Lat      float64              `json:"lat"`
	Lng      float64              `json:"lng"`
	Category models.IssueCategory `json:"category"`
	Status   models.IssueStatus   `json:"status"`
	Landmark string               `json:"landmark,omitempty"`
}

// MapPins returns markers for the most recent issues, newest first. A limit
// below 1 falls back to DefaultMapPinLimit.
func MapPins(issues []models.Issue, limit int) []MapPin {
	if limit < 1 {
		limit = DefaultMapPinLimit
	}
	recent := SortIssues(issues, SortNewest)
	if len(recent) > limit {
		recent = recent[:limit]
	}
	pins := make([]MapPin, 0, len(recent))
	for _, issue := range recent {
		pins = append(pins, MapPin{
			ID:       issue.ID,
			Title:    issue.Title,
			Lat:      issue.Location.Lat,
			Lng:      issue.Location.Lng,
			Category: issue.Category,
			Status:   issue.Status,
			Landmark: issue.Landmark,
		})
	}
	return pins
}

func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
