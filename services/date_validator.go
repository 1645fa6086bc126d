package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"holidayapi/models"
)

const (
	MinYear = 1900
	MaxYear = 2100

	DefaultUpcomingCount = 5
)

var validate = validator.New()

type YearQuery struct {
	Year int
}

type MonthQuery struct {
	YearQuery
	Month int
}

type DateQuery struct {
	Date time.Time
}

// Raw returns the date in YYYY-MM-DD form.
func (q DateQuery) Raw() string {
	return q.Date.Format(models.DateLayout)
}

type UpcomingQuery struct {
	Count int
}

type SearchQuery struct {
	YearQuery
	Query string
}

// ValidateYear kiểm tra năm là số nguyên trong khoảng 1900-2100
func ValidateYear(rawYear string) (YearQuery, error) {
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return YearQuery{}, newValidationError(InvalidYear, "Valid year is required")
	}
	if err := validate.Var(year, "min=1900,max=2100"); err != nil {
		return YearQuery{}, newValidationError(InvalidYear, "Year must be between 1900 and 2100")
	}
	return YearQuery{Year: year}, nil
}

func ValidateMonth(rawYear, rawMonth string) (MonthQuery, error) {
	yq, err := ValidateYear(rawYear)
	if err != nil {
		return MonthQuery{}, err
	}

	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return MonthQuery{}, newValidationError(InvalidMonth, "Valid month is required")
	}
	if err := validate.Var(month, "min=1,max=12"); err != nil {
		return MonthQuery{}, newValidationError(InvalidMonth, "Month must be between 1 and 12")
	}
	return MonthQuery{YearQuery: yq, Month: month}, nil
}

// ValidateDate accepts only real calendar dates in strict YYYY-MM-DD form.
func ValidateDate(rawDate string) (DateQuery, error) {
	if err := validate.Var(rawDate, "required,datetime=2006-01-02"); err != nil {
		return DateQuery{}, newValidationError(InvalidDate, "Invalid date format. Use YYYY-MM-DD")
	}
	t, err := time.Parse(models.DateLayout, rawDate)
	if err != nil {
		return DateQuery{}, newValidationError(InvalidDate, "Invalid date format. Use YYYY-MM-DD")
	}
	return DateQuery{Date: t}, nil
}

// ValidateUpcoming: thiếu hoặc không phải số thì dùng mặc định 5, số < 1 là lỗi
func ValidateUpcoming(rawCount string) (UpcomingQuery, error) {
	if rawCount == "" {
		return UpcomingQuery{Count: DefaultUpcomingCount}, nil
	}
	count, err := strconv.Atoi(rawCount)
	if err != nil {
		return UpcomingQuery{Count: DefaultUpcomingCount}, nil
	}
	if err := validate.Var(count, "min=1"); err != nil {
		return UpcomingQuery{}, newValidationError(InvalidCount, "Count must be a positive integer")
	}
	return UpcomingQuery{Count: count}, nil
}

func ValidateSearch(rawYear, rawQuery string) (SearchQuery, error) {
	yq, err := ValidateYear(rawYear)
	if err != nil {
		return SearchQuery{}, err
	}
	q := strings.TrimSpace(rawQuery)
	if err := validate.Var(q, "required,max=100"); err != nil {
		return SearchQuery{}, newValidationError(InvalidQuery, "Search query must be 1 to 100 characters")
	}
	return SearchQuery{YearQuery: yq, Query: q}, nil
}
