package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	for _, category := range AllIssueCategories {
		assert.True(t, category.IsValid())
	}
	assert.False(t, IssueCategory("potholes").IsValid())
	assert.False(t, IssueCategory("").IsValid())

	assert.True(t, Submitted.IsValid())
	assert.True(t, InProgress.IsValid())
	assert.True(t, Resolved.IsValid())
	assert.False(t, IssueStatus("open").IsValid())

	assert.True(t, English.IsValid())
	assert.True(t, Hindi.IsValid())
	assert.False(t, Language("fr").IsValid())

	assert.True(t, CityWide.IsValid())
	assert.True(t, Local.IsValid())
	assert.True(t, Alert.IsValid())
	assert.False(t, NotificationType("spam").IsValid())
}

func TestCommandKinds(t *testing.T) {
	tests := []struct {
		cmd  Command
		kind string
	}{
		{SetUser{}, "SET_USER"},
		{AddIssue{}, "ADD_ISSUE"},
		{UpdateIssue{}, "UPDATE_ISSUE"},
		{DeleteIssue{}, "DELETE_ISSUE"},
		{UpvoteIssue{}, "UPVOTE_ISSUE"},
		{ToggleUpvote{}, "TOGGLE_UPVOTE"},
		{AddNotification{}, "ADD_NOTIFICATION"},
		{ToggleDarkMode{}, "TOGGLE_DARK_MODE"},
		{SetLanguage{}, "SET_LANGUAGE"},
		{AddPost{}, "ADD_POST"},
		{ToggleLike{}, "TOGGLE_LIKE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.cmd.Kind())
	}
}

func TestLikedBy(t *testing.T) {
	post := CommunityPost{ID: "p1", Likes: []string{"u1", "u2"}}
	assert.True(t, post.LikedBy("u1"))
	assert.False(t, post.LikedBy("u3"))
	assert.False(t, CommunityPost{}.LikedBy("u1"))
}

func TestSnapshotLookups(t *testing.T) {
	state := AppState{
		Issues:         []Issue{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}},
		CommunityPosts: []CommunityPost{{ID: "p1"}},
	}

	issue, ok := state.IssueByID("2")
	assert.True(t, ok)
	assert.Equal(t, "b", issue.Title)
	_, ok = state.IssueByID("9")
	assert.False(t, ok)

	_, ok = state.PostByID("p1")
	assert.True(t, ok)
	_, ok = state.PostByID("p9")
	assert.False(t, ok)
}

func TestDisplayItemHelpers(t *testing.T) {
	issue := Issue{Title: "Pothole", Date: "2024-01-15", Category: Roads, Upvotes: 12}
	post := CommunityPost{Title: "Drain blocked", Date: "2025-09-18", Category: Water, Likes: []string{"u1", "u2"}}

	items := []DisplayItem{issue, post}

	assert.Equal(t, "Pothole", ItemTitle(items[0]))
	assert.Equal(t, "Drain blocked", ItemTitle(items[1]))

	assert.Equal(t, "2024-01-15", ItemDate(items[0]))
	assert.Equal(t, Roads, ItemCategory(items[0]))
	assert.Equal(t, Water, ItemCategory(items[1]))

	assert.Equal(t, 12, ItemEngagement(items[0]))
	assert.Equal(t, 2, ItemEngagement(items[1]))
}
