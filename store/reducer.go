package store

import (
	"civicreport/models"
	"civicreport/utils"
)

// reduce is the pure transition function: newState = reduce(oldState, cmd).
// It never mutates oldState or anything reachable from it; collections that
// change are rebuilt, so snapshots taken before a dispatch stay valid.
//
// A non-nil error means the command was a no-op and the returned state is the
// input state unchanged. Dispatch swallows these errors, DispatchStrict
// surfaces them.
func reduce(state models.AppState, cmd models.Command) (models.AppState, error) {
	switch c := cmd.(type) {
	case models.SetUser:
		state.User = c.User
		return state, nil

	case models.AddIssue:
		state.Issues = prependIssue(state.Issues, c.Issue)
		return state, nil

	case models.UpdateIssue:
		issues, found := mergeIssue(state.Issues, c.ID, c.Updates)
		if !found {
			return state, ErrIssueNotFound
		}
		state.Issues = issues
		return state, nil

	case models.DeleteIssue:
		issues, found := deleteIssue(state.Issues, c.ID)
		if !found {
			return state, ErrIssueNotFound
		}
		state.Issues = issues
		return state, nil

	case models.UpvoteIssue:
		issues, found := mapIssue(state.Issues, c.ID, func(issue models.Issue) models.Issue {
			issue.Upvotes++
			return issue
		})
		if !found {
			return state, ErrIssueNotFound
		}
		state.Issues = issues
		return state, nil

	case models.ToggleUpvote:
		if c.UserID == "" {
			return state, ErrNoActiveUser
		}
		issues, found := mapIssue(state.Issues, c.IssueID, func(issue models.Issue) models.Issue {
			return toggleUpvoter(issue, c.UserID)
		})
		if !found {
			return state, ErrIssueNotFound
		}
		state.Issues = issues
		return state, nil

	case models.AddNotification:
		notifications := make([]models.Notification, 0, len(state.Notifications)+1)
		notifications = append(notifications, c.Notification)
		notifications = append(notifications, state.Notifications...)
		state.Notifications = notifications
		return state, nil

	case models.ToggleDarkMode:
		state.DarkMode = !state.DarkMode
		return state, nil

	case models.SetLanguage:
		state.Language = c.Language
		return state, nil

	case models.AddPost:
		posts := make([]models.CommunityPost, 0, len(state.CommunityPosts)+1)
		posts = append(posts, c.Post)
		posts = append(posts, state.CommunityPosts...)
		state.CommunityPosts = posts
		return state, nil

	case models.ToggleLike:
		if state.User == nil {
			return state, ErrNoActiveUser
		}
		posts, found := toggleLike(state.CommunityPosts, c.PostID, state.User.ID)
		if !found {
			return state, ErrPostNotFound
		}
		state.CommunityPosts = posts
		return state, nil
	}

	// Unrecognized command kinds are a forward-compatible no-op.
	return state, ErrUnknownCommand
}

func prependIssue(issues []models.Issue, issue models.Issue) []models.Issue {
	res := make([]models.Issue, 0, len(issues)+1)
	res = append(res, issue)
	res = append(res, issues...)
	return res
}

// mapIssue rebuilds the issue slice with fn applied to the issue matching id.
// fn receives a clone, so it may mutate its argument freely.
func mapIssue(issues []models.Issue, id string, fn func(models.Issue) models.Issue) ([]models.Issue, bool) {
	found := false
	res := make([]models.Issue, len(issues))
	for i, issue := range issues {
		if issue.ID == id {
			found = true
			res[i] = fn(cloneIssue(issue))
		} else {
			res[i] = issue
		}
	}
	return res, found
}

func deleteIssue(issues []models.Issue, id string) ([]models.Issue, bool) {
	found := false
	res := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.ID == id {
			found = true
			continue
		}
		res = append(res, issue)
	}
	return res, found
}

// mergeIssue overwrites only the fields present in the update.
func mergeIssue(issues []models.Issue, id string, updates models.IssueUpdate) ([]models.Issue, bool) {
	return mapIssue(issues, id, func(issue models.Issue) models.Issue {
		if updates.Title != nil {
			issue.Title = *updates.Title
		}
		if updates.Description != nil {
			issue.Description = *updates.Description
		}
		if updates.Category != nil {
			issue.Category = *updates.Category
		}
		if updates.Status != nil {
			issue.Status = *updates.Status
		}
		if updates.Date != nil {
			issue.Date = *updates.Date
		}
		if updates.Image != nil {
			issue.Image = *updates.Image
		}
		if updates.Audio != nil {
			issue.Audio = *updates.Audio
		}
		if updates.Landmark != nil {
			issue.Landmark = *updates.Landmark
		}
		if updates.Upvotes != nil {
			issue.Upvotes = *updates.Upvotes
		}
		if updates.Location != nil {
			issue.Location = *updates.Location
		}
		return issue
	})
}

// toggleUpvoter records or withdraws userID's upvote. The upvoter set is the
// source of truth; the counter follows it and never drops below zero even if
// seed counts and recorded upvoters disagree.
func toggleUpvoter(issue models.Issue, userID string) models.Issue {
	if utils.ContainsString(issue.Upvoters, userID) {
		issue.Upvoters = utils.RemoveString(issue.Upvoters, userID)
		if issue.Upvotes > 0 {
			issue.Upvotes--
		}
		return issue
	}
	issue.Upvoters = append(issue.Upvoters, userID)
	issue.Upvotes++
	return issue
}

func toggleLike(posts []models.CommunityPost, postID, userID string) ([]models.CommunityPost, bool) {
	found := false
	res := make([]models.CommunityPost, len(posts))
	for i, post := range posts {
		if post.ID != postID {
			res[i] = post
			continue
		}
		found = true
		clone := post
		if post.LikedBy(userID) {
			clone.Likes = utils.RemoveString(post.Likes, userID)
		} else {
			clone.Likes = append(append([]string(nil), post.Likes...), userID)
		}
		res[i] = clone
	}
	return res, found
}

func cloneIssue(in models.Issue) models.Issue {
	out := in
	out.Upvoters = append([]string(nil), in.Upvoters...)
	return out
}
