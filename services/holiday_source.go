package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"holidayapi/models"
)

const (
	// DefaultHolidayBaseURL là API Nager.Date v3
	DefaultHolidayBaseURL = "https://date.nager.at/api/v3"
	// CountryCode is the only country this service answers for.
	CountryCode = "IN"

	DefaultUpstreamTimeout = 10 * time.Second

	maxUpstreamBody = 1 << 20
)

// HolidaySource fetches the raw holiday list of one year.
type HolidaySource interface {
	FetchYear(ctx context.Context, year int) ([]models.Holiday, error)
}

type NagerClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NagerClient gọi nhà cung cấp ngày lễ, mỗi lần FetchYear đúng một request
type NagerClient struct {
	httpClient *http.Client
	baseURL    string
	log        *zap.Logger
}

func NewNagerClient(opts NagerClientOptions) *NagerClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultHolidayBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultUpstreamTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &NagerClient{
		httpClient: opts.HTTPClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		log:        opts.Logger,
	}
}

// wireHoliday is the untyped provider record; mandatory fields are pointers so
// that a missing field can be told apart from an empty one.
type wireHoliday struct {
	Date        *string  `json:"date"`
	LocalName   string   `json:"localName"`
	Name        *string  `json:"name"`
	CountryCode string   `json:"countryCode"`
	Fixed       bool     `json:"fixed"`
	Global      bool     `json:"global"`
	Counties    []string `json:"counties"`
	LaunchYear  *int     `json:"launchYear"`
	Types       []string `json:"types"`
}

// FetchYear calls GET {base}/PublicHolidays/{year}/IN and maps the payload onto models.Holiday.
func (c *NagerClient) FetchYear(ctx context.Context, year int) ([]models.Holiday, error) {
	apiURL := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, CountryCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrUpstreamUnavailable, "failed to create an http request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("holiday provider request", zap.String("url", apiURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("holiday provider request failed", zap.Int("year", year), zap.Error(err))
		return nil, errors.Wrapf(ErrUpstreamUnavailable, "year %d: %v", year, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(ErrUpstreamNotFound, "year %d", year)
	case resp.StatusCode == http.StatusNoContent:
		return []models.Holiday{}, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.log.Warn("holiday provider returned an error status",
			zap.Int("year", year), zap.Int("status", resp.StatusCode))
		return nil, errors.Wrapf(ErrUpstreamUnavailable, "year %d: status %d", year, resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return nil, errors.Wrapf(ErrUpstreamUnavailable, "year %d: failed to read the response body: %v", year, err)
	}

	var records []wireHoliday
	if err := json.Unmarshal(b, &records); err != nil {
		c.log.Error("holiday provider payload is not a holiday list", zap.Int("year", year), zap.Error(err))
		return nil, errors.Wrapf(ErrMalformedPayload, "year %d: %v", year, err)
	}

	holidays := make([]models.Holiday, 0, len(records))
	for i, r := range records {
		h, err := r.toHoliday()
		if err != nil {
			c.log.Warn("skipping malformed holiday record",
				zap.Int("year", year), zap.Int("index", i), zap.Error(err))
			continue
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

func (w wireHoliday) toHoliday() (models.Holiday, error) {
	if w.Date == nil {
		return models.Holiday{}, errors.New("missing date")
	}
	if w.Name == nil || *w.Name == "" {
		return models.Holiday{}, errors.New("missing name")
	}
	date, err := NormalizeDate(*w.Date)
	if err != nil {
		return models.Holiday{}, err
	}

	types := w.Types
	if types == nil {
		types = []string{}
	}
	return models.Holiday{
		Date:        date,
		LocalName:   w.LocalName,
		Name:        *w.Name,
		CountryCode: w.CountryCode,
		Fixed:       w.Fixed,
		Global:      w.Global,
		Counties:    w.Counties,
		LaunchYear:  w.LaunchYear,
		Types:       types,
	}, nil
}

// NormalizeDate reduces a provider date such as "2024-01-26" or
// "2024-01-26T00:00:00" to the calendar-date form YYYY-MM-DD.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(models.DateLayout) {
		raw = raw[:len(models.DateLayout)]
	}
	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return "", errors.Wrapf(err, "invalid date %q", raw)
	}
	return t.Format(models.DateLayout), nil
}
