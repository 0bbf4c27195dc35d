package crawler

import "time"

// RecencyScore buckets a publication date into the 0-100 freshness scale:
// 100 within 30 days, 70 within 90, 40 within 180, 20 beyond that.
func RecencyScore(published, now time.Time) float64 {
	daysAgo := int(now.Sub(published).Hours() / 24)
	switch {
	case daysAgo <= 30:
		return 100
	case daysAgo <= 90:
		return 70
	case daysAgo <= 180:
		return 40
	default:
		return 20
	}
}
