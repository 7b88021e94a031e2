package repository

// ListTasksOptions filters task listing.
type ListTasksOptions struct {
	Date        string // YYYY-MM-DD; empty matches all dates
	PendingOnly bool   // exclude completed tasks
}

// DateCount is one date's aggregate task counts.
type DateCount struct {
	Date             string
	Total            int
	Completed        int
	TotalMinutes     int
	CompletedMinutes int
}
