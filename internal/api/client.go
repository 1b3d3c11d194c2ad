package api

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/immolist/immo-cli/internal/cache"
	"github.com/immolist/immo-cli/internal/models"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 2 * time.Minute
	defaultPageSize = 50
	maxPageSize     = 200
)

// browserProfile holds a consistent browser identity for a client session.
// The search API serves plain JSON but throttles obvious non-browser traffic.
type browserProfile struct {
	userAgent string
	secChUA   string
	mobile    bool
}

var userAgentTemplates = []struct {
	ua     string
	major  int
	mobile bool
}{
	{"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.XXXX.YYY Mobile Safari/537.36", 124, true},
	{"Mozilla/5.0 (Linux; Android 13; SM-A536B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.XXXX.YYY Mobile Safari/537.36", 120, true},
	{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.XXXX.YYY Safari/537.36", 131, false},
	{"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.XXXX.YYY Safari/537.36", 129, false},
}

// cryptoRandIntn returns a random integer [0, n) using crypto/rand
func cryptoRandIntn(n int) int {
	nBig, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return int(time.Now().UnixNano() % int64(n))
	}
	return int(nBig.Int64())
}

// newBrowserProfile generates a randomized but internally-consistent browser identity.
func newBrowserProfile() browserProfile {
	tmpl := userAgentTemplates[cryptoRandIntn(len(userAgentTemplates))]

	major := cryptoRandIntn(1000)
	minor := cryptoRandIntn(100)
	ua := strings.NewReplacer("XXXX", fmt.Sprintf("%d", major), "YYY", fmt.Sprintf("%d", minor)).Replace(tmpl.ua)

	secChUA := fmt.Sprintf(`"Chromium";v="%d", "Not?A_Brand";v="24", "Google Chrome";v="%d"`, tmpl.major, tmpl.major)

	return browserProfile{
		userAgent: ua,
		secChUA:   secChUA,
		mobile:    tmpl.mobile,
	}
}

// Cache interface for caching HTTP responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Client is the API client for kufar.by
type Client struct {
	httpClient *http.Client
	baseURL    string
	timezone   *time.Location
	cache      Cache
	browser    browserProfile
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithCache enables caching with the provided cache implementation
func WithCache(cache Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithDefaultCache enables caching with the default file cache
func WithDefaultCache(ttl time.Duration) ClientOption {
	return func(c *Client) {
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		fc, err := cache.NewFileCache(cache.DefaultCacheDir(), ttl)
		if err == nil {
			c.cache = fc
		}
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	tz, err := time.LoadLocation("Europe/Minsk")
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Jar:     jar,
		},
		baseURL:  BaseURL,
		timezone: tz,
		browser:  newBrowserProfile(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Timezone returns the client's timezone
func (c *Client) Timezone() *time.Location {
	return c.timezone
}

// ListingsRequest contains parameters for a listings search
type ListingsRequest struct {
	Filter   models.Filter // Deal type (default: all)
	Category string        // Ad category (default: apartments)
	Region   string        // Region slug, e.g. country-belarus~province-minsk
	Rooms    int           // Number of rooms (0 = any)
	Size     int           // Page size (default: 50, max: 200)
}

// GetListings fetches listings matching the request
func (c *Client) GetListings(ctx context.Context, req ListingsRequest) ([]models.Listing, error) {
	body, err := c.GetListingsRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp models.ListingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse listings response: %w", err)
	}

	listings := make([]models.Listing, 0, len(resp.Ads))
	for _, ad := range resp.Ads {
		listings = append(listings, *ad.ToListing(c.timezone))
	}

	return listings, nil
}

// GetListingsRaw fetches listings and returns raw JSON
func (c *Client) GetListingsRaw(ctx context.Context, req ListingsRequest) (json.RawMessage, error) {
	if req.Size < 0 || req.Size > maxPageSize {
		return nil, NewValidationError("size", fmt.Sprintf("must be between 0 and %d", maxPageSize))
	}

	params := url.Values{}

	cat := req.Category
	if cat == "" {
		cat = CategoryApartments
	}
	params.Set("cat", cat)
	params.Set("lang", "ru")
	params.Set("sort", SortByDateDesc)

	size := req.Size
	if size == 0 {
		size = defaultPageSize
	}
	params.Set("size", strconv.Itoa(size))

	if typ := req.Filter.QueryValue(); typ != "" {
		params.Set("typ", typ)
	}
	if req.Region != "" {
		params.Set("gtsy", req.Region)
	}
	if req.Rooms > 0 {
		params.Set("rms", fmt.Sprintf("v.or:%d", req.Rooms))
	}

	reqURL := c.baseURL + EndpointListings + "?" + params.Encode()

	return c.doRequest(ctx, reqURL)
}

// Search binds fixed request parameters, leaving only the deal-type filter
// variable. The returned value satisfies the listings store's Service
// interface.
type Search struct {
	client *Client
	req    ListingsRequest
}

// Search creates a Search bound to req.
func (c *Client) Search(req ListingsRequest) *Search {
	return &Search{client: c, req: req}
}

// FetchListings fetches listings with the bound parameters and the given filter.
func (s *Search) FetchListings(ctx context.Context, filter models.Filter) ([]models.Listing, error) {
	req := s.req
	req.Filter = filter
	return s.client.GetListings(ctx, req)
}

// doRequest performs an HTTP GET request with optional caching
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(reqURL); ok {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	bp := c.browser

	// Standard browser headers in Chrome-typical order
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Origin", "https://re.kufar.by")
	req.Header.Set("Referer", "https://re.kufar.by/")
	req.Header.Set("User-Agent", bp.userAgent)

	// Sec-Fetch headers (Chrome always sends these on XHR/fetch)
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-site")

	// Client hints
	req.Header.Set("sec-ch-ua", bp.secChUA)
	if bp.mobile {
		req.Header.Set("sec-ch-ua-mobile", "?1")
		req.Header.Set("sec-ch-ua-platform", `"Android"`)
	} else {
		req.Header.Set("sec-ch-ua-mobile", "?0")
		req.Header.Set("sec-ch-ua-platform", `"Windows"`)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(resp.StatusCode, resp.Status, extractEndpoint(reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.cache != nil {
		_ = c.cache.Set(reqURL, body)
	}

	return body, nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
