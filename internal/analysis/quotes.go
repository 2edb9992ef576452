package analysis

import "time"

var quotes = [...]string{
	"Every day is a new beginning.",
	"You are stronger than you think.",
	"Recovery is not about perfection, it's about progress.",
	"Each day clean is a victory worth celebrating.",
	"Your future self will thank you for today's choices.",
	"Healing is not linear, but you're moving forward.",
	"You have the power to break free from addiction.",
	"Small steps lead to big changes.",
	"You are worthy of a healthy, fulfilling life.",
	"Every moment of resistance builds inner strength.",
}

// QuoteOfTheDay picks the same quote for every call on a given UTC day.
func QuoteOfTheDay(now time.Time) string {
	day := StartOfDay(now).Unix() / 86400
	i := int(day % int64(len(quotes)))
	if i < 0 {
		i += len(quotes)
	}
	return quotes[i]
}
