package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"civicreport/config"
	"civicreport/models"
	"civicreport/query"
	"civicreport/seed"
	"civicreport/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	cfg := config.Load()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logger := logrus.WithField("service", "civicreport")

	state := seed.DefaultState()
	state.Language = cfg.DefaultLanguage
	state.DarkMode = cfg.DefaultDarkMode

	st := store.New(state, store.WithLogger(logger))

	unsubscribe := st.Subscribe(func(s models.AppState) {
		logger.WithFields(logrus.Fields{
			"issues":        len(s.Issues),
			"posts":         len(s.CommunityPosts),
			"notifications": len(s.Notifications),
		}).Info("state updated")
	})
	defer unsubscribe()

	dispatch := st.Dispatch
	if cfg.StrictDispatch {
		dispatch = func(cmd models.Command) {
			if err := st.DispatchStrict(cmd); err != nil {
				logger.WithError(err).WithField("command", cmd.Kind()).Warn("command rejected")
			}
		}
	}

	// Walk the store through a typical session: a fresh report, community
	// interactions, and the seed bulletins. Ids and dates come from the
	// caller; the store never generates them.
	issueID := uuid.New().String()
	dispatch(models.AddIssue{Issue: models.Issue{
		ID:          issueID,
		Title:       "Overflowing bin at bus stand",
		Description: "Bin has not been emptied since last week, waste is spilling onto the footpath",
		Category:    models.Sanitation,
		Status:      models.Submitted,
		Date:        time.Now().Format("2006-01-02"),
		Landmark:    "Old Bus Stand",
		UserID:      "u1",
		Location:    models.Location{Lat: 23.3449, Lng: 85.3102},
	}})
	dispatch(models.ToggleUpvote{IssueID: issueID, UserID: "u1"})
	dispatch(models.ToggleLike{PostID: "p1"})
	for _, bulletin := range seed.Bulletins() {
		dispatch(models.AddNotification{Notification: bulletin})
	}

	stats := query.Summarize(st.Snapshot())
	logger.WithFields(logrus.Fields{
		"total":    stats.TotalIssues,
		"open":     stats.OpenIssues,
		"resolved": stats.ResolvedIssues,
	}).Info("session analytics")
}
