package query

import (
	"sort"

	"civicreport/models"
)

const topVotedSize = 5

// CategoryCount is one slice of the issues-by-category chart.
type CategoryCount struct {
	Name  models.IssueCategory `json:"name"`
	Value int                  `json:"value"`
}

// TopIssue is one row of the most-upvoted list.
type TopIssue struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Category models.IssueCategory `json:"category"`
	Votes    int                  `json:"votes"`
}

// Analytics aggregates a snapshot for the dashboard.
type Analytics struct {
	TotalIssues      int             `json:"totalIssues"`
	OpenIssues       int             `json:"openIssues"`
	ResolvedIssues   int             `json:"resolvedIssues"`
	IssuesByCategory []CategoryCount `json:"issuesByCategory"`
	TopVoted         []TopIssue      `json:"topVotedIssues"`
}

// Summarize computes dashboard analytics from the current snapshot. Category
// buckets always appear, in department order, even when empty.
func Summarize(state models.AppState) Analytics {
	byCategory := make(map[models.IssueCategory]int)
	open := 0
	resolved := 0
	for _, issue := range state.Issues {
		byCategory[issue.Category]++
		if issue.Status == models.Resolved {
			resolved++
		} else {
			open++
		}
	}

	counts := make([]CategoryCount, 0, len(models.AllIssueCategories))
	for _, category := range models.AllIssueCategories {
		counts = append(counts, CategoryCount{Name: category, Value: byCategory[category]})
	}

	top := make([]TopIssue, 0, len(state.Issues))
	for _, issue := range state.Issues {
		top = append(top, TopIssue{
			ID:       issue.ID,
			Title:    issue.Title,
			Category: issue.Category,
			Votes:    issue.Upvotes,
		})
	}
	sort.Slice(top, func(i, j int) bool {
		return top[i].Votes > top[j].Votes
	})
	if len(top) > topVotedSize {
		top = top[:topVotedSize]
	}

	return Analytics{
		TotalIssues:      len(state.Issues),
		OpenIssues:       open,
		ResolvedIssues:   resolved,
		IssuesByCategory: counts,
		TopVoted:         top,
	}
}
