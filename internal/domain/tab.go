package domain

// TabID identifies one of the dashboard views
type TabID string

// TabID constants
const (
	TabDashboard    TabID = "dashboard"
	TabProfile      TabID = "profile"
	TabSeasonal     TabID = "seasonal"
	TabAnalysis     TabID = "analysis"
	TabAchievements TabID = "achievements"
	TabSettings     TabID = "settings"
)

// Tab is a navigation entry
type Tab struct {
	ID    TabID
	Label string
	Icon  string
}

// Tabs lists the navigation entries in display order
var Tabs = []Tab{
	{ID: TabDashboard, Label: "Dashboard", Icon: "home"},
	{ID: TabProfile, Label: "Profile", Icon: "user"},
	{ID: TabSeasonal, Label: "Seasonal", Icon: "calendar"},
	{ID: TabAnalysis, Label: "ICT Analysis", Icon: "bar-chart"},
	{ID: TabAchievements, Label: "Achievements", Icon: "award"},
	{ID: TabSettings, Label: "Settings", Icon: "settings"},
}

// ParseTab converts a raw identifier into a TabID.
// The second return value is false for unrecognized identifiers.
func ParseTab(raw string) (TabID, bool) {
	for _, tab := range Tabs {
		if string(tab.ID) == raw {
			return tab.ID, true
		}
	}
	return "", false
}
