package models

type DashboardView struct {
	TotalTasks     int64             `json:"totalTasks"`
	CompletedTasks int64             `json:"completedTasks"`
	TotalNotes     int64             `json:"totalNotes"`
	TodaysTasks    []Task            `json:"todaysTasks"`
	RecentNotes    []NoteSummary     `json:"recentNotes"`
	RecentLeetcode []LeetcodeProblem `json:"recentLeetcode"`
	PinnedChats    []ChatgptChat     `json:"pinnedChats"`
}
