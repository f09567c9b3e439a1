// Package seed contains the literal data the dashboard starts with.
package seed

import (
	"flowsync/internal/insight"
	"flowsync/internal/meeting"
	"flowsync/internal/task"
)

// Stats panel values that are displayed as-is.
const (
	TasksCompletedLabel = "3/8"
	ProductivityScore   = 87
)

type Data struct {
	Tasks        task.List
	Meetings     []meeting.Meeting
	Productivity insight.Series
	Insights     []string
}

// Default returns a fresh copy of the demo data set.
func Default() Data {
	return Data{
		Tasks: task.List{
			{ID: "1", Title: "Review quarterly reports", Priority: task.PriorityHigh, AISuggested: true, EstimatedMinutes: 45},
			{ID: "2", Title: "Prepare presentation slides", Priority: task.PriorityMedium, EstimatedMinutes: 60},
			{ID: "3", Title: "Team standup meeting", Priority: task.PriorityHigh, Completed: true, EstimatedMinutes: 15},
			{ID: "4", Title: "Code review for new feature", Priority: task.PriorityMedium, AISuggested: true, EstimatedMinutes: 30},
		},
		Meetings: []meeting.Meeting{
			{ID: "1", Title: "Daily Standup", Time: "09:00", DurationMinutes: 15, Participants: 6, AIOptimized: true},
			{ID: "2", Title: "Product Review", Time: "14:00", DurationMinutes: 60, Participants: 4},
			{ID: "3", Title: "Client Call", Time: "16:30", DurationMinutes: 30, Participants: 3, AIOptimized: true},
		},
		Productivity: insight.Series{
			{Name: "Mon", Focus: 85, Meetings: 3, Tasks: 8},
			{Name: "Tue", Focus: 92, Meetings: 2, Tasks: 12},
			{Name: "Wed", Focus: 78, Meetings: 5, Tasks: 6},
			{Name: "Thu", Focus: 88, Meetings: 1, Tasks: 10},
			{Name: "Fri", Focus: 95, Meetings: 4, Tasks: 9},
		},
		Insights: []string{
			"Your productivity peaks between 9-11 AM. Schedule important tasks during this time.",
			"You have 3 back-to-back meetings today. Consider adding 10-minute buffers.",
			"Based on your patterns, you're 23% more productive on days with fewer than 4 meetings.",
			"AI suggests batching similar tasks together to reduce context switching.",
		},
	}
}
