package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-06-16 is a Monday.
func nyTime(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, MarketLocation)
}

func TestGetSessionStatus(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want SessionStatus
	}{
		{"overnight", nyTime(3, 0), SessionClosed},
		{"pre-market start", nyTime(4, 0), SessionPreMarket},
		{"just before open", nyTime(9, 29), SessionPreMarket},
		{"open bell", nyTime(9, 30), SessionOpen},
		{"mid session", nyTime(12, 0), SessionOpen},
		{"last half hour", nyTime(15, 30), SessionClosingSoon},
		{"close bell", nyTime(16, 0), SessionClosed},
		{"evening", nyTime(20, 0), SessionClosed},
		{"saturday", time.Date(2025, 6, 14, 12, 0, 0, 0, MarketLocation), SessionClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSessionStatus(tt.at))
		})
	}
}

func TestIsMarketOpen(t *testing.T) {
	assert.True(t, IsMarketOpen(nyTime(10, 0)))
	assert.True(t, IsMarketOpen(nyTime(15, 45)))
	assert.False(t, IsMarketOpen(nyTime(8, 0)))
	assert.False(t, IsMarketOpen(nyTime(17, 0)))
}

func TestNextMarketOpen(t *testing.T) {
	// Before the bell on a weekday opens the same day.
	next := NextMarketOpen(nyTime(8, 0))
	assert.Equal(t, nyTime(9, 30), next)

	// After the bell rolls to the next day.
	next = NextMarketOpen(nyTime(11, 0))
	assert.Equal(t, time.Date(2025, 6, 17, 9, 30, 0, 0, MarketLocation), next)

	// Friday afternoon rolls over the weekend to Monday.
	friday := time.Date(2025, 6, 13, 15, 0, 0, 0, MarketLocation)
	assert.Equal(t, nyTime(9, 30), NextMarketOpen(friday))
}
