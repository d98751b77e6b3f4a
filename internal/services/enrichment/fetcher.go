package enrichment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/httpclient"
	"github.com/ternarybob/smarttravellers/internal/interfaces"
)

const (
	maxPageSize    = 8 * 1024 * 1024
	acceptLanguage = "en-IN,en;q=0.9"
)

// HTTPFetcher retrieves pages with a plain HTTP GET
type HTTPFetcher struct {
	httpClient *http.Client
	userAgent  string
	logger     arbor.ILogger
}

var _ interfaces.PageFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a page fetcher that keeps cookies across requests
func NewHTTPFetcher(userAgent string, timeout time.Duration, logger arbor.ILogger) *HTTPFetcher {
	return &HTTPFetcher{
		httpClient: httpclient.NewSessionClient(timeout),
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Fetch returns the response body of url
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", acceptLanguage)

	f.logger.Debug().Str("url", url).Msg("Fetching page")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", &interfaces.CollaboratorError{Service: "booking", Op: "fetch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &interfaces.CollaboratorError{
			Service:    "booking",
			Op:         "fetch",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status for %s", url),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", &interfaces.CollaboratorError{Service: "booking", Op: "fetch", Err: fmt.Errorf("failed to read body: %w", err)}
	}

	return string(body), nil
}

// ChromeFetcher renders pages in headless Chrome before returning the HTML
type ChromeFetcher struct {
	userAgent string
	waitTime  time.Duration
	timeout   time.Duration
	logger    arbor.ILogger
}

var _ interfaces.PageFetcher = (*ChromeFetcher)(nil)

// NewChromeFetcher creates a JavaScript-rendering page fetcher
func NewChromeFetcher(userAgent string, waitTime, timeout time.Duration, logger arbor.ILogger) *ChromeFetcher {
	return &ChromeFetcher{
		userAgent: userAgent,
		waitTime:  waitTime,
		timeout:   timeout,
		logger:    logger,
	}
}

// Fetch starts a browser, navigates to url and returns the rendered document
func (f *ChromeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(f.userAgent),
	)

	allocatorCtx, allocatorCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocatorCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocatorCtx,
		chromedp.WithLogf(func(s string, i ...interface{}) {
			f.logger.Debug().Msgf("chromedp: "+s, i...)
		}),
	)
	defer browserCancel()

	pageCtx, cancel := context.WithTimeout(browserCtx, f.timeout)
	defer cancel()

	f.logger.Debug().Str("url", url).Dur("wait", f.waitTime).Msg("Rendering page")

	var html string
	err := chromedp.Run(pageCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": acceptLanguage}),
		chromedp.Navigate(url),
		chromedp.Sleep(f.waitTime),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &interfaces.CollaboratorError{Service: "booking", Op: "render", Err: err}
	}

	return html, nil
}
