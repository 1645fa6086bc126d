package services

import "time"

// Clock trả về "hôm nay" cho truy vấn ngày lễ sắp tới
type Clock interface {
	Today() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Today() time.Time {
	return truncateToDate(f())
}

// SystemClock reads the wall clock in the server's local zone.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always reports the given day; used by tests.
func FixedClock(day time.Time) Clock {
	return ClockFunc(func() time.Time { return day })
}

// truncateToDate keeps the calendar date only, expressed at 00:00 UTC so that
// day arithmetic is never shifted by DST or zone offsets.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
