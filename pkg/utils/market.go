package utils

import "time"

// SessionStatus describes where the current time falls in the US equities
// trading day.
type SessionStatus string

const (
	SessionPreMarket   SessionStatus = "PRE_MARKET"
	SessionOpen        SessionStatus = "OPEN"
	SessionClosingSoon SessionStatus = "CLOSING_SOON"
	SessionClosed      SessionStatus = "CLOSED"
)

// MarketLocation is the timezone for US equity markets.
var MarketLocation *time.Location

func init() {
	var err error
	MarketLocation, err = time.LoadLocation("America/New_York")
	if err != nil {
		// Fallback to UTC-5
		MarketLocation = time.FixedZone("EST", -5*60*60)
	}
}

// GetSessionStatus returns the session status for the given time.
func GetSessionStatus(now time.Time) SessionStatus {
	now = now.In(MarketLocation)

	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return SessionClosed
	}

	minutes := now.Hour()*60 + now.Minute()

	// Pre-market: 4:00 - 9:30
	if minutes >= 240 && minutes < 570 {
		return SessionPreMarket
	}

	// Regular session: 9:30 - 16:00
	if minutes >= 570 && minutes < 960 {
		// Last half hour before the close
		if minutes >= 930 {
			return SessionClosingSoon
		}
		return SessionOpen
	}

	return SessionClosed
}

// IsMarketOpen returns true if the regular session is underway.
func IsMarketOpen(now time.Time) bool {
	status := GetSessionStatus(now)
	return status == SessionOpen || status == SessionClosingSoon
}

// NextMarketOpen returns the next regular-session opening time.
func NextMarketOpen(now time.Time) time.Time {
	now = now.In(MarketLocation)

	next := time.Date(now.Year(), now.Month(), now.Day(), 9, 30, 0, 0, MarketLocation)
	if now.After(next) {
		next = next.AddDate(0, 0, 1)
	}
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
