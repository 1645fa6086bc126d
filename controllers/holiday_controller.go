package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"holidayapi/dto"
	"holidayapi/models"
	"holidayapi/response"
	"holidayapi/services"
)

const (
	msgNoData         = "No holiday data available for this year"
	msgFetchFailed    = "Failed to fetch holidays"
	msgUpcomingFailed = "Failed to fetch upcoming holidays"
	msgCheckFailed    = "Failed to check holiday status"
	msgTypesFailed    = "Failed to fetch holiday types"
	msgSearchFailed   = "Failed to search holidays"
)

// HolidayController gom các handler truy vấn ngày lễ; không giữ state giữa các request
type HolidayController struct {
	source services.HolidaySource
	clock  services.Clock
	log    *zap.Logger
}

func NewHolidayController(source services.HolidaySource, clock services.Clock, log *zap.Logger) *HolidayController {
	if clock == nil {
		clock = services.SystemClock
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HolidayController{source: source, clock: clock, log: log}
}

// GetYearHolidays godoc
// @Summary      Holidays of a year
// @Description  Full holiday list of the year plus the same list grouped by month
// @Tags         holidays
// @Produce      json
// @Param        year  path      int  true  "Year (1900-2100)"
// @Success      200   {object}  dto.YearHolidaysResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      404   {object}  response.FailureResponse
// @Failure      500   {object}  response.FailureResponse
// @Router       /holidays/{year} [get]
func (h *HolidayController) GetYearHolidays(c *gin.Context) {
	q, err := services.ValidateYear(c.Param("year"))
	if err != nil {
		h.fail(c, err, msgFetchFailed)
		return
	}

	holidays, err := h.source.FetchYear(c.Request.Context(), q.Year)
	if err != nil {
		h.fail(c, err, msgFetchFailed)
		return
	}

	response.Success(c, dto.YearHolidaysResponse{
		Success:         true,
		Year:            q.Year,
		TotalCount:      len(holidays),
		Holidays:        holidays,
		HolidaysByMonth: services.GroupByMonth(holidays),
	})
}

// GetMonthHolidays godoc
// @Summary      Holidays of a month
// @Tags         holidays
// @Produce      json
// @Param        year   path      int  true  "Year (1900-2100)"
// @Param        month  path      int  true  "Month (1-12)"
// @Success      200    {object}  dto.MonthHolidaysResponse
// @Failure      400    {object}  response.ErrorResponse
// @Failure      404    {object}  response.FailureResponse
// @Failure      500    {object}  response.FailureResponse
// @Router       /holidays/{year}/{month} [get]
func (h *HolidayController) GetMonthHolidays(c *gin.Context) {
	q, err := services.ValidateMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		h.fail(c, err, msgFetchFailed)
		return
	}

	holidays, err := h.source.FetchYear(c.Request.Context(), q.Year)
	if err != nil {
		h.fail(c, err, msgFetchFailed)
		return
	}

	monthHolidays, monthName := services.FilterByMonth(holidays, q.Month)
	response.Success(c, dto.MonthHolidaysResponse{
		Success:   true,
		Year:      q.Year,
		Month:     q.Month,
		MonthName: monthName,
		Count:     len(monthHolidays),
		Holidays:  monthHolidays,
	})
}

// GetUpcomingHolidays godoc
// @Summary      Upcoming holidays
// @Description  Next holidays from today across the current and next year, with days remaining
// @Tags         holidays
// @Produce      json
// @Param        count  query     int  false  "How many holidays to return (default 5)"
// @Success      200    {object}  dto.UpcomingHolidaysResponse
// @Failure      400    {object}  response.ErrorResponse
// @Failure      404    {object}  response.FailureResponse
// @Failure      500    {object}  response.FailureResponse
// @Router       /holidays/upcoming [get]
func (h *HolidayController) GetUpcomingHolidays(c *gin.Context) {
	q, err := services.ValidateUpcoming(c.Query("count"))
	if err != nil {
		h.fail(c, err, msgUpcomingFailed)
		return
	}

	today := h.clock.Today()
	all, err := h.fetchYears(c.Request.Context(), today.Year(), today.Year()+1)
	if err != nil {
		h.fail(c, err, msgUpcomingFailed)
		return
	}

	upcoming := services.Upcoming(all, today, q.Count)
	response.Success(c, dto.UpcomingHolidaysResponse{
		Success:  true,
		Count:    len(upcoming),
		Holidays: upcoming,
	})
}

// CheckHoliday godoc
// @Summary      Is a date a holiday
// @Tags         holidays
// @Produce      json
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  dto.CheckHolidayResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      404   {object}  response.FailureResponse
// @Failure      500   {object}  response.FailureResponse
// @Router       /holidays/check/{date} [get]
func (h *HolidayController) CheckHoliday(c *gin.Context) {
	q, err := services.ValidateDate(c.Param("date"))
	if err != nil {
		h.fail(c, err, msgCheckFailed)
		return
	}

	holidays, err := h.source.FetchYear(c.Request.Context(), q.Date.Year())
	if err != nil {
		h.fail(c, err, msgCheckFailed)
		return
	}

	res := dto.CheckHolidayResponse{Success: true, Date: q.Raw()}
	if holiday, ok := services.FindByDate(holidays, q.Date); ok {
		res.IsHoliday = true
		res.Holiday = &holiday
	}
	response.Success(c, res)
}

// GetHolidayTypes godoc
// @Summary      Holidays grouped by type
// @Tags         holidays
// @Produce      json
// @Param        year  path      int  true  "Year (1900-2100)"
// @Success      200   {object}  dto.HolidayTypesResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      404   {object}  response.FailureResponse
// @Failure      500   {object}  response.FailureResponse
// @Router       /holidays/{year}/types [get]
func (h *HolidayController) GetHolidayTypes(c *gin.Context) {
	q, err := services.ValidateYear(c.Param("year"))
	if err != nil {
		h.fail(c, err, msgTypesFailed)
		return
	}

	holidays, err := h.source.FetchYear(c.Request.Context(), q.Year)
	if err != nil {
		h.fail(c, err, msgTypesFailed)
		return
	}

	types, byType := services.GroupByType(holidays)
	response.Success(c, dto.HolidayTypesResponse{
		Success:        true,
		Year:           q.Year,
		Types:          types,
		HolidaysByType: byType,
	})
}

// SearchHolidays godoc
// @Summary      Search holidays by name
// @Tags         holidays
// @Produce      json
// @Param        year  path      int     true  "Year (1900-2100)"
// @Param        q     query     string  true  "Name or part of it"
// @Success      200   {object}  dto.SearchHolidaysResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      404   {object}  response.FailureResponse
// @Failure      500   {object}  response.FailureResponse
// @Router       /holidays/{year}/search [get]
func (h *HolidayController) SearchHolidays(c *gin.Context) {
	q, err := services.ValidateSearch(c.Param("year"), c.Query("q"))
	if err != nil {
		h.fail(c, err, msgSearchFailed)
		return
	}

	holidays, err := h.source.FetchYear(c.Request.Context(), q.Year)
	if err != nil {
		h.fail(c, err, msgSearchFailed)
		return
	}

	found, suggestion := services.SearchByName(holidays, q.Query)
	response.Success(c, dto.SearchHolidaysResponse{
		Success:    true,
		Year:       q.Year,
		Query:      q.Query,
		Count:      len(found),
		Holidays:   found,
		Suggestion: suggestion,
	})
}

// GetHolidaySummaries godoc
// @Summary      Holiday names of a year
// @Description  Reduced name/date/type listing
// @Tags         holidays
// @Produce      json
// @Param        year  path      int  true  "Year (1900-2100)"
// @Success      200   {object}  dto.HolidaySummaryResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      404   {object}  response.FailureResponse
// @Failure      500   {object}  response.FailureResponse
// @Router       /holidays/{year}/summary [get]
func (h *HolidayController) GetHolidaySummaries(c *gin.Context) {
	q, err := services.ValidateYear(c.Param("year"))
	if err != nil {
		h.fail(c, err, msgFetchFailed)
		return
	}

	holidays, err := h.source.FetchYear(c.Request.Context(), q.Year)
	if err != nil {
		h.fail(c, err, msgFetchFailed)
		return
	}

	summaries := make([]models.HolidaySummary, 0, len(holidays))
	for _, holiday := range holidays {
		summaries = append(summaries, holiday.Summary())
	}
	response.Success(c, dto.HolidaySummaryResponse{
		Success:  true,
		Year:     q.Year,
		Count:    len(summaries),
		Holidays: summaries,
	})
}

// fetchYears lấy song song dữ liệu của nhiều năm; một năm lỗi thì cả truy vấn lỗi
func (h *HolidayController) fetchYears(ctx context.Context, years ...int) ([]models.Holiday, error) {
	results := make([][]models.Holiday, len(years))
	g, ctx := errgroup.WithContext(ctx)
	for i, year := range years {
		i, year := i, year
		g.Go(func() error {
			holidays, err := h.source.FetchYear(ctx, year)
			if err != nil {
				return err
			}
			results[i] = holidays
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.Holiday
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// fail maps an error onto the response envelope. Upstream details are logged, never returned.
func (h *HolidayController) fail(c *gin.Context, err error, message string) {
	if ve, ok := services.AsValidationError(err); ok {
		response.ValidationError(c, ve.Message)
		return
	}
	if errors.Is(err, services.ErrUpstreamNotFound) {
		h.log.Info("no holiday data upstream", zap.String("path", c.Request.URL.Path), zap.Error(err))
		response.NotFound(c, msgNoData)
		return
	}
	h.log.Error(message, zap.String("path", c.Request.URL.Path), zap.Error(err))
	response.ServerError(c, message)
}
