package book

import "time"

// windowDays is the lookahead for the upcoming-birthday scan: occurrences
// due today through six days out are reported.
const windowDays = 7

// UpcomingBirthdays returns contact names grouped by the weekday their next
// birthday occurrence falls on, for occurrences within the next seven days
// of today. Occurrences landing on a weekend are shifted to the following
// Monday before the window check. Names within a group keep book order.
//
// The weekend shift rebuilds the date from the birthday's original
// day-of-month plus the shift, rather than adding days to the occurrence.
// Near a month boundary the day component overflows and time.Date
// normalizes it into the next month (31 August + 2 becomes 2 September).
func (b *Book) UpcomingBirthdays(today time.Time) map[string][]string {
	today = midnight(today)
	byDay := make(map[string][]string)

	for _, name := range b.order {
		bday, ok := b.records[name].Birthday()
		if !ok {
			continue
		}
		date := bday.Date()

		next := time.Date(today.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = time.Date(today.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		}

		switch next.Weekday() {
		case time.Saturday:
			next = time.Date(next.Year(), next.Month(), date.Day()+2, 0, 0, 0, 0, time.UTC)
		case time.Sunday:
			next = time.Date(next.Year(), next.Month(), date.Day()+1, 0, 0, 0, 0, time.UTC)
		}

		deltaDays := int(next.Sub(today).Hours() / 24)
		if deltaDays >= windowDays {
			continue
		}

		day := today.AddDate(0, 0, deltaDays).Weekday().String()
		byDay[day] = append(byDay[day], name)
	}

	return byDay
}

// midnight truncates t to a UTC midnight so day deltas divide evenly.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
