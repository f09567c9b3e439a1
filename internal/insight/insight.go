// Package insight holds the canned analytics shown on the dashboard. Nothing
// here is computed; the series and messages are display values only.
package insight

// DataPoint is one day of the weekly productivity series.
type DataPoint struct {
	Name     string `db:"name"`
	Focus    int    `db:"focus"` // 0-100 score
	Meetings int    `db:"meetings"`
	Tasks    int    `db:"tasks"`
}

// Series is an ordered productivity series.
type Series []DataPoint

// MaxValue returns the largest focus or task value, used to scale charts.
func (s Series) MaxValue() int {
	m := 0
	for _, p := range s {
		m = max(m, p.Focus, p.Tasks)
	}
	return m
}

// Banner returns the insights shown in the top banner.
func Banner(all []string) []string {
	return all[:min(2, len(all))]
}

// Recommendations returns the insights shown in the recommendations panel.
func Recommendations(all []string) []string {
	if len(all) <= 2 {
		return nil
	}
	return all[2:]
}
