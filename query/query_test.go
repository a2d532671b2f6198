package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"civicreport/models"
	"civicreport/seed"
)

func issueIDs(issues []models.Issue) []string {
	ids := make([]string, 0, len(issues))
	for _, issue := range issues {
		ids = append(ids, issue.ID)
	}
	return ids
}

func TestFilterIssues(t *testing.T) {
	issues := seed.DefaultState().Issues

	tests := []struct {
		name   string
		filter IssueFilter
		want   []string
	}{
		{"no filter", IssueFilter{}, []string{"1", "2", "3", "4", "5"}},
		{"all sentinels", IssueFilter{Category: All, Status: All}, []string{"1", "2", "3", "4", "5"}},
		{"by category", IssueFilter{Category: "roads"}, []string{"1", "5"}},
		{"by status", IssueFilter{Status: "in-progress"}, []string{"2", "4"}},
		{"category and status", IssueFilter{Category: "roads", Status: "submitted"}, []string{"1", "5"}},
		{"search title", IssueFilter{Search: "pothole"}, []string{"1"}},
		{"search description", IssueFilter{Search: "WATER"}, []string{"4"}},
		{"search no match", IssueFilter{Search: "metro"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterIssues(issues, tt.filter)
			assert.Equal(t, tt.want, issueIDs(got))
		})
	}
}

func TestSortIssues(t *testing.T) {
	issues := seed.DefaultState().Issues
	before := append([]models.Issue(nil), issues...)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, issueIDs(SortIssues(issues, SortNewest)))
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, issueIDs(SortIssues(issues, SortOldest)))
	assert.Equal(t, []string{"4", "3", "1", "2", "5"}, issueIDs(SortIssues(issues, SortTopVoted)))

	// Input order is untouched.
	assert.Empty(t, cmp.Diff(before, issues))
}

func TestSortIssuesUnparseableDatesSortOldest(t *testing.T) {
	issues := []models.Issue{
		{ID: "a", Date: "2024-01-10"},
		{ID: "b", Date: "not-a-date"},
		{ID: "c", Date: "2024-01-12"},
	}
	assert.Equal(t, []string{"c", "a", "b"}, issueIDs(SortIssues(issues, SortNewest)))
}

func TestPaginate(t *testing.T) {
	issues := seed.DefaultState().Issues

	page, totalPages := Paginate(issues, 1, 2)
	assert.Equal(t, []string{"1", "2"}, issueIDs(page))
	assert.Equal(t, 3, totalPages)

	page, _ = Paginate(issues, 3, 2)
	assert.Equal(t, []string{"5"}, issueIDs(page))

	page, _ = Paginate(issues, 9, 2)
	assert.Empty(t, page)

	// Out-of-range page and limit fall back to defaults.
	page, totalPages = Paginate(issues, 0, 0)
	assert.Len(t, page, 5)
	assert.Equal(t, 1, totalPages)

	page, _ = Paginate(issues, 1, 500)
	assert.Len(t, page, 5)
}

func TestUserIssues(t *testing.T) {
	issues := seed.DefaultState().Issues
	assert.Equal(t, []string{"1", "3"}, issueIDs(UserIssues(issues, "1")))
	assert.Empty(t, UserIssues(issues, "nobody"))
}

func TestTrending(t *testing.T) {
	issues := seed.DefaultState().Issues
	assert.Equal(t, []string{"4", "3"}, issueIDs(Trending(issues, 2)))
	assert.Len(t, Trending(issues, 0), 5)
}

func TestMapPins(t *testing.T) {
	issues := seed.DefaultState().Issues

	pins := MapPins(issues, 0)
	assert.Len(t, pins, 5)
	assert.Equal(t, "1", pins[0].ID)
	assert.Equal(t, 23.3441, pins[0].Lat)
	assert.Equal(t, 85.3096, pins[0].Lng)
	assert.Equal(t, models.Roads, pins[0].Category)

	pins = MapPins(issues, 2)
	assert.Len(t, pins, 2)
	assert.Equal(t, []string{"1", "2"}, []string{pins[0].ID, pins[1].ID})
}

func TestSummarize(t *testing.T) {
	stats := Summarize(seed.DefaultState())

	assert.Equal(t, 5, stats.TotalIssues)
	assert.Equal(t, 4, stats.OpenIssues)
	assert.Equal(t, 1, stats.ResolvedIssues)

	assert.Equal(t, []CategoryCount{
		{Name: models.Roads, Value: 2},
		{Name: models.Sanitation, Value: 1},
		{Name: models.Water, Value: 1},
		{Name: models.Lighting, Value: 1},
	}, stats.IssuesByCategory)

	assert.Len(t, stats.TopVoted, 5)
	assert.Equal(t, TopIssue{ID: "4", Title: "Water Pipe Leakage", Category: models.Water, Votes: 20}, stats.TopVoted[0])
	assert.Equal(t, "3", stats.TopVoted[1].ID)
}

func TestSummarizeEmptyState(t *testing.T) {
	stats := Summarize(models.AppState{})
	assert.Zero(t, stats.TotalIssues)
	assert.Len(t, stats.IssuesByCategory, 4)
	assert.Empty(t, stats.TopVoted)
}
