package meeting

// Meeting is a read-only calendar entry shown on the dashboard.
type Meeting struct {
	ID              string `db:"id"`
	Title           string `db:"title"`
	Time            string `db:"start_time"` // HH:MM
	DurationMinutes int    `db:"duration_minutes"`
	Participants    int    `db:"participants"`
	AIOptimized     bool   `db:"ai_optimized"`
}
