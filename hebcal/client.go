// Package hebcal wraps the Hebcal REST API, extracting the Torah
// portion, holiday name and day classification for a calendar date.
package hebcal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Day type classifications derived from the Hebcal item categories.
const (
	DayTypeWeekday      = "weekday"
	DayTypeShabbat      = "shabbat"
	DayTypeYomTov       = "yomtov"
	DayTypeRoshChodesh  = "roshchodesh"
	DayTypeYomKippur    = "yom_kippur"
	DayTypeSimchatTorah = "simchat_torah"
)

// DateLayout is the query format Hebcal expects for start/end dates.
const DateLayout = "2006-01-02"

// Client calls the Hebcal calendar API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Hebcal client against baseURL (no trailing
// slash) with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// item is one entry of the Hebcal response. The category set is open
// ended; only shabbat, yomtov and roshchodesh are interpreted.
type item struct {
	Title    string `json:"title"`
	Hebrew   string `json:"hebrew"`
	Category string `json:"category"`
}

type calendarResponse struct {
	Items []item `json:"items"`
}

// LeyningInfo is the extracted Hebrew-calendar context for one date.
type LeyningInfo struct {
	Parsha  string `json:"parsha"`
	Yomtov  string `json:"yomtov"`
	DayType string `json:"day_type"`
}

// Lookup fetches the Hebcal items for a single date and classifies
// them. Any transport or decoding failure is returned as an error; the
// caller is expected to absorb it into a degraded response.
func (c *Client) Lookup(ctx context.Context, date time.Time) (LeyningInfo, error) {
	q := url.Values{}
	q.Set("cfg", "json")
	q.Set("v", "1")
	q.Set("maj", "on")
	q.Set("min", "on")
	q.Set("s", "on")
	q.Set("i", "off")
	q.Set("lg", "he")
	q.Set("start", date.Format(DateLayout))
	q.Set("end", date.Format(DateLayout))

	reqURL := c.baseURL + "/hebcal?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return LeyningInfo{}, fmt.Errorf("hebcal: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LeyningInfo{}, fmt.Errorf("hebcal: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LeyningInfo{}, fmt.Errorf("hebcal: unexpected status %d", resp.StatusCode)
	}

	var parsed calendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return LeyningInfo{}, fmt.Errorf("hebcal: failed to decode response: %w", err)
	}

	return classify(parsed.Items), nil
}
