package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"civicreport/models"
	"civicreport/store"
)

func TestDefaultStateShape(t *testing.T) {
	state := DefaultState()

	assert.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	assert.Equal(t, "John Doe", state.User.Name)

	assert.Len(t, state.Issues, 5)
	assert.Len(t, state.CommunityPosts, 7)
	assert.Empty(t, state.Notifications)
	assert.False(t, state.DarkMode)
	assert.Equal(t, models.English, state.Language)

	issue, ok := state.IssueByID("1")
	assert.True(t, ok)
	assert.Equal(t, 12, issue.Upvotes)
	assert.Equal(t, models.Roads, issue.Category)
}

func TestDefaultStateCallsAreIsolated(t *testing.T) {
	first := DefaultState()
	first.Issues[0].Title = "tampered"
	first.CommunityPosts[0].Likes = append(first.CommunityPosts[0].Likes, "u9")
	first.User.Name = "Somebody Else"

	second := DefaultState()
	assert.Equal(t, "Large Pothole on Main Street", second.Issues[0].Title)
	assert.Empty(t, second.CommunityPosts[0].Likes)
	assert.Equal(t, "John Doe", second.User.Name)
}

func TestSeedScenarioUpvote(t *testing.T) {
	s := store.New(DefaultState())

	s.Dispatch(models.UpvoteIssue{ID: "1"})

	state := s.Snapshot()
	assert.Len(t, state.Issues, 5)
	issue, _ := state.IssueByID("1")
	assert.Equal(t, 13, issue.Upvotes)
	for _, other := range state.Issues {
		if other.ID == "1" {
			continue
		}
		original, _ := DefaultState().IssueByID(other.ID)
		assert.Equal(t, original, other)
	}
}

func TestSeedScenarioDelete(t *testing.T) {
	s := store.New(DefaultState())

	s.Dispatch(models.DeleteIssue{ID: "3"})

	state := s.Snapshot()
	assert.Len(t, state.Issues, 4)
	for _, issue := range state.Issues {
		assert.NotEqual(t, "3", issue.ID)
	}
}

func TestBulletins(t *testing.T) {
	bulletins := Bulletins()
	assert.Len(t, bulletins, 3)
	assert.Equal(t, models.CityWide, bulletins[0].Type)
	assert.Equal(t, models.Local, bulletins[1].Type)
	assert.Equal(t, models.Alert, bulletins[2].Type)

	bulletins[0].Title = "tampered"
	assert.Equal(t, "Trash pickup delayed today due to holiday", Bulletins()[0].Title)
}

func TestDefaultCityStats(t *testing.T) {
	assert.Equal(t, 1247, DefaultCityStats.TotalIssues)
	assert.Equal(t, 892, DefaultCityStats.ResolvedIssues)
	assert.Equal(t, "3.2 days", DefaultCityStats.AvgResponseTime)
}
