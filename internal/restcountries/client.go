// Package restcountries is a client for the REST Countries v3.1 API.
package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"country-explorer/internal/model"
)

const (
	DefaultBaseURL = "https://restcountries.com/v3.1"
	defaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of an error response ends up in StatusError.
	maxErrorBody = 512
)

// listFields are the fields the list grid renders. /all rejects requests without a field list.
var listFields = []string{"name", "cca2", "flag", "flags", "capital", "region", "subregion", "population", "area"}

// Client fetches countries from the REST Countries API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client. A zero timeout keeps requests unbounded.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// NewDefaultClient creates a client for the public API with the default timeout.
func NewDefaultClient() *Client {
	return NewClient(DefaultBaseURL, "", defaultTimeout)
}

// All fetches the full country list.
func (c *Client) All(ctx context.Context) ([]model.Country, error) {
	endpoint := fmt.Sprintf("%s/all?fields=%s", c.baseURL, strings.Join(listFields, ","))

	var countries []model.Country
	if err := c.get(ctx, endpoint, &countries); err != nil {
		return nil, fmt.Errorf("fetch all countries: %w", err)
	}
	return countries, nil
}

// ByName looks a country up by name and returns the first match.
// An empty result or a 404 yields model.ErrNotFound.
func (c *Client) ByName(ctx context.Context, name string) (*model.Country, error) {
	endpoint := fmt.Sprintf("%s/name/%s", c.baseURL, url.PathEscape(name))

	var countries []model.Country
	if err := c.get(ctx, endpoint, &countries); err != nil {
		var statusErr *model.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("lookup %q: %w", name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("lookup %q: %w", name, err)
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("lookup %q: %w", name, model.ErrNotFound)
	}
	return &countries[0], nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &model.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
