package dto

import (
	"holidayapi/models"
	"holidayapi/services"
)

// YearHolidaysResponse là DTO cho GET /holidays/{year}
type YearHolidaysResponse struct {
	Success         bool                     `json:"success"`
	Year            int                      `json:"year"`
	TotalCount      int                      `json:"totalCount"`
	Holidays        []models.Holiday         `json:"holidays"`
	HolidaysByMonth map[int][]models.Holiday `json:"holidaysByMonth"`
}

// MonthHolidaysResponse là DTO cho GET /holidays/{year}/{month}
type MonthHolidaysResponse struct {
	Success   bool             `json:"success"`
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	MonthName string           `json:"monthName"`
	Count     int              `json:"count"`
	Holidays  []models.Holiday `json:"holidays"`
}

type UpcomingHolidaysResponse struct {
	Success  bool                       `json:"success"`
	Count    int                        `json:"count"`
	Holidays []services.UpcomingHoliday `json:"holidays"`
}

type CheckHolidayResponse struct {
	Success   bool            `json:"success"`
	Date      string          `json:"date"`
	IsHoliday bool            `json:"isHoliday"`
	Holiday   *models.Holiday `json:"holiday"`
}

type HolidayTypesResponse struct {
	Success        bool                        `json:"success"`
	Year           int                         `json:"year"`
	Types          []string                    `json:"types"`
	HolidaysByType map[string][]models.Holiday `json:"holidaysByType"`
}

type SearchHolidaysResponse struct {
	Success    bool             `json:"success"`
	Year       int              `json:"year"`
	Query      string           `json:"query"`
	Count      int              `json:"count"`
	Holidays   []models.Holiday `json:"holidays"`
	Suggestion string           `json:"suggestion,omitempty"`
}

// HolidaySummaryResponse is the reduced name/date/type listing.
type HolidaySummaryResponse struct {
	Success  bool                    `json:"success"`
	Year     int                     `json:"year"`
	Count    int                     `json:"count"`
	Holidays []models.HolidaySummary `json:"holidays"`
}
