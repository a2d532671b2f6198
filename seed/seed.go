// Package seed holds the fixture state the app boots with. There is no
// persistence: every process starts from this snapshot.
package seed

import (
	"github.com/jinzhu/copier"

	"civicreport/models"
)

// baseState is the canonical boot snapshot: one signed-in user, the seed
// issue and community post collections, no notifications, light mode,
// English.
var baseState = models.AppState{
	User: &models.User{
		ID:    "u1",
		Name:  "John Doe",
		Phone: "1234567890",
	},
	Issues:        issues,
	Notifications: []models.Notification{},
	DarkMode:      false,
	Language:      models.English,
	CommunityPosts: []models.CommunityPost{
		{
			ID:       "p1",
			Title:    "Blocked drain on Elm Street",
			Body:     "Water has been pooling for weeks after heavy rains.",
			Date:     "2025-09-18",
			UserID:   "u1",
			Category: models.Water,
			Likes:    []string{},
		},
		{
			ID:       "p2",
			Title:    "Street light not working",
			Body:     "Dark stretch near City Park entrance, unsafe at night.",
			Date:     "2025-09-19",
			UserID:   "u2",
			Category: models.Lighting,
			Likes:    []string{},
		},
		{
			ID:       "p3",
			Title:    "Blocked drain on Elm Street",
			Body:     "Water has been pooling for weeks after heavy rains.",
			Date:     "2025-09-18",
			UserID:   "u3",
			Category: models.Water,
			Likes:    []string{},
		},
		{
			ID:       "p4",
			Title:    "Street light not working",
			Body:     "Dark stretch near City Park entrance, unsafe at night.",
			Date:     "2025-09-19",
			UserID:   "u4",
			Category: models.Lighting,
			Likes:    []string{},
		},
		{
			ID:       "p5",
			Title:    "Garbage dumping near river",
			Body:     "People are dumping trash daily, creating bad odor.",
			Date:     "2025-09-20",
			UserID:   "u5",
			Category: models.Sanitation,
			Likes:    []string{},
		},
		{
			ID:       "p6",
			Title:    "Pothole on Maple Avenue",
			Body:     "Huge pothole causing traffic jams.",
			Date:     "2025-09-20",
			UserID:   "u6",
			Category: models.Roads,
			Likes:    []string{},
		},
		{
			ID:       "p7",
			Title:    "Water leak in main pipeline",
			Body:     "Leakage has reduced water supply for nearby houses.",
			Date:     "2025-09-21",
			UserID:   "u7",
			Category: models.Water,
			Likes:    []string{},
		},
	},
}

var issues = []models.Issue{
	{
		ID:          "1",
		Title:       "Large Pothole on Main Street",
		Description: "Deep pothole causing damage to vehicles near the market area",
		Category:    models.Roads,
		Status:      models.Submitted,
		Date:        "2024-01-15",
		Image:       "https://images.pexels.com/photos/5691654/pexels-photo-5691654.jpeg?auto=compress&cs=tinysrgb&w=400",
		Landmark:    "Near Central Market",
		Upvotes:     12,
		UserID:      "1",
		Location:    models.Location{Lat: 23.3441, Lng: 85.3096},
	},
	{
		ID:          "2",
		Title:       "Garbage Not Collected",
		Description: "Garbage bins overflowing for past 3 days in residential area",
		Category:    models.Sanitation,
		Status:      models.InProgress,
		Date:        "2024-01-14",
		Image:       "https://images.pexels.com/photos/2827392/pexels-photo-2827392.jpeg?auto=compress&cs=tinysrgb&w=400",
		Landmark:    "Sector 5, Block A",
		Upvotes:     8,
		UserID:      "2",
		Location:    models.Location{Lat: 23.3456, Lng: 85.3125},
	},
	{
		ID:          "3",
		Title:       "Street Light Not Working",
		Description: "Multiple street lights are out making the area unsafe at night",
		Category:    models.Lighting,
		Status:      models.Resolved,
		Date:        "2024-01-13",
		Image:       "https://images.pexels.com/photos/1173777/pexels-photo-1173777.jpeg?auto=compress&cs=tinysrgb&w=400",
		Landmark:    "Park Road Junction",
		Upvotes:     15,
		UserID:      "1",
		Location:    models.Location{Lat: 23.3412, Lng: 85.3078},
	},
	{
		ID:          "4",
		Title:       "Water Pipe Leakage",
		Description: "Major water leakage causing road flooding and water wastage",
		Category:    models.Water,
		Status:      models.InProgress,
		Date:        "2024-01-12",
		Image:       "https://images.pexels.com/photos/2108845/pexels-photo-2108845.jpeg?auto=compress&cs=tinysrgb&w=400",
		Landmark:    "Colony Gate",
		Upvotes:     20,
		UserID:      "3",
		Location:    models.Location{Lat: 23.3478, Lng: 85.3145},
	},
	{
		ID:          "5",
		Title:       "Road Construction Debris",
		Description: "Construction materials left on road blocking traffic flow",
		Category:    models.Roads,
		Status:      models.Submitted,
		Date:        "2024-01-11",
		Image:       "https://images.pexels.com/photos/1078884/pexels-photo-1078884.jpeg?auto=compress&cs=tinysrgb&w=400",
		Landmark:    "Highway Circle",
		Upvotes:     5,
		UserID:      "2",
		Location:    models.Location{Lat: 23.3434, Lng: 85.3089},
	},
}

// bulletins are the municipal news items the notifications screen starts
// with. They are not part of the boot snapshot; the view dispatches them as
// AddNotification commands.
var bulletins = []models.Notification{
	{
		ID:          "1",
		Type:        models.CityWide,
		Title:       "Trash pickup delayed today due to holiday",
		Description: "Municipal services will resume normal schedule tomorrow",
		Date:        "2024-01-15",
		Icon:        "📢",
	},
	{
		ID:          "2",
		Type:        models.Local,
		Title:       "50 citizens reported water logging in your area",
		Description: "Emergency drainage team has been dispatched",
		Date:        "2024-01-15",
		Icon:        "💧",
	},
	{
		ID:          "3",
		Type:        models.Alert,
		Title:       "Traffic light outage at Central Crossing",
		Description: "Traffic police deployed for manual control",
		Date:        "2024-01-15",
		Icon:        "⚠️",
	},
}

// CityStats is the aggregate shown on the dashboard header.
type CityStats struct {
	TotalIssues     int    `json:"totalIssues"`
	ResolvedIssues  int    `json:"resolvedIssues"`
	AvgResponseTime string `json:"avgResponseTime"`
}

// DefaultCityStats mirrors the city-wide figures the dashboard renders.
var DefaultCityStats = CityStats{
	TotalIssues:     1247,
	ResolvedIssues:  892,
	AvgResponseTime: "3.2 days",
}

// TransitionMessages are the rotating splash-screen blurbs.
var TransitionMessages = []string{
	"🕳️ 50 potholes fixed this week",
	"🚮 Your city is 10kg free of garbage",
	"💡 80% success rate in electricity issues",
}

// DefaultState returns the boot snapshot. Each call returns an independent
// deep copy, so two stores (or a store and a test fixture) never share
// backing arrays.
func DefaultState() models.AppState {
	var out models.AppState
	if err := copier.CopyWithOption(&out, &baseState, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return out
}

// Bulletins returns a fresh copy of the seed notification feed.
func Bulletins() []models.Notification {
	var out []models.Notification
	if err := copier.CopyWithOption(&out, &bulletins, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return out
}
