package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newStubClient(t *testing.T, status int, body string, gotURL *string) *NagerClient {
	t.Helper()

	httpClient := &http.Client{
		Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			if gotURL != nil {
				*gotURL = req.URL.String()
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewBufferString(body)),
				Header:     make(http.Header),
			}, nil
		}),
	}
	return NewNagerClient(NagerClientOptions{BaseURL: "https://holidays.test/api/v3/", HTTPClient: httpClient})
}

const nagerPayload = `[
  {"date":"2024-01-26","localName":"Republic Day","name":"Republic Day","countryCode":"IN","fixed":true,"global":true,"counties":null,"launchYear":null,"types":["Public"]},
  {"date":"2024-08-15","localName":"Independence Day","name":"Independence Day","countryCode":"IN","fixed":true,"global":true,"counties":null,"launchYear":1947,"types":["Public","Bank"]}
]`

func TestNagerClient_FetchYear(t *testing.T) {
	t.Parallel()

	var gotURL string
	c := newStubClient(t, http.StatusOK, nagerPayload, &gotURL)

	holidays, err := c.FetchYear(context.Background(), 2024)
	require.NoError(t, err)

	assert.Equal(t, "https://holidays.test/api/v3/PublicHolidays/2024/IN", gotURL)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2024-01-26", holidays[0].Date)
	assert.Equal(t, "Republic Day", holidays[0].Name)
	assert.True(t, holidays[0].Fixed)
	assert.Nil(t, holidays[0].LaunchYear)
	assert.Equal(t, []string{"Public", "Bank"}, holidays[1].Types)
	require.NotNil(t, holidays[1].LaunchYear)
	assert.Equal(t, 1947, *holidays[1].LaunchYear)
}

func TestNagerClient_FetchYear_Statuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantLen int
	}{
		{name: "not found", status: http.StatusNotFound, body: "", wantErr: ErrUpstreamNotFound},
		{name: "server error", status: http.StatusBadGateway, body: "oops", wantErr: ErrUpstreamUnavailable},
		{name: "no content", status: http.StatusNoContent, body: "", wantLen: 0},
		{name: "empty list", status: http.StatusOK, body: "[]", wantLen: 0},
		{name: "not a list", status: http.StatusOK, body: `{"title":"oops"}`, wantErr: ErrMalformedPayload},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			holidays, err := newStubClient(t, tt.status, tt.body, nil).FetchYear(context.Background(), 2024)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, holidays)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, holidays)
			assert.Len(t, holidays, tt.wantLen)
		})
	}
}

func TestNagerClient_FetchYear_SkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	body := `[
	  {"date":"2024-01-26","name":"Republic Day","types":["Public"]},
	  {"name":"No Date"},
	  {"date":"2024-02-30","name":"Bad Date"},
	  {"date":"2024-03-25"},
	  {"date":"2024-10-02T00:00:00","name":"Gandhi Jayanti"}
	]`
	holidays, err := newStubClient(t, http.StatusOK, body, nil).FetchYear(context.Background(), 2024)
	require.NoError(t, err)

	require.Len(t, holidays, 2)
	assert.Equal(t, "Republic Day", holidays[0].Name)
	assert.Equal(t, "2024-10-02", holidays[1].Date)
	assert.Equal(t, []string{}, holidays[1].Types)
}

func TestNagerClient_FetchYear_TransportError(t *testing.T) {
	t.Parallel()

	httpClient := &http.Client{
		Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		}),
	}
	c := NewNagerClient(NagerClientOptions{HTTPClient: httpClient})

	_, err := c.FetchYear(context.Background(), 2024)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.False(t, errors.Is(err, ErrUpstreamNotFound))
}

func TestNagerClient_FetchYear_Timeout(t *testing.T) {
	t.Parallel()

	httpClient := &http.Client{
		Timeout: 20 * time.Millisecond,
		Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		}),
	}
	c := NewNagerClient(NagerClientOptions{HTTPClient: httpClient})

	_, err := c.FetchYear(context.Background(), 2024)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	got, err := NormalizeDate("2024-01-26T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-26", got)

	got, err = NormalizeDate(" 2024-01-26 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-26", got)

	_, err = NormalizeDate("26/01/2024")
	assert.Error(t, err)
}
