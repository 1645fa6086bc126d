package models

import "time"

// DateLayout là định dạng ngày duy nhất mà API chấp nhận và trả về
const DateLayout = "2006-01-02"

// Holiday là một ngày lễ do nhà cung cấp dữ liệu trả về cho một năm
type Holiday struct {
	Date        string   `json:"date"`
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Fixed       bool     `json:"fixed"`
	Global      bool     `json:"global"`
	Counties    []string `json:"counties"`
	LaunchYear  *int     `json:"launchYear"`
	Types       []string `json:"types"`
}

// HolidaySummary is the reduced name/date/type projection served by the legacy endpoint.
type HolidaySummary struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

// Day trả về ngày lễ ở 00:00 UTC; ok=false khi Date không đúng định dạng
func (h Holiday) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, h.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Month returns the calendar month of the holiday, or 0 when Date is unparsable.
func (h Holiday) Month() int {
	t, ok := h.Day()
	if !ok {
		return 0
	}
	return int(t.Month())
}

func (h Holiday) Summary() HolidaySummary {
	s := HolidaySummary{Name: h.Name, Date: h.Date}
	if len(h.Types) > 0 {
		s.Type = h.Types[0]
	}
	return s
}
