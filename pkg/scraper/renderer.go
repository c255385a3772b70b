package scraper

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// nameSelector is the element the renderer waits for before snapshotting the
// page; profile pages put the player name in the first h1.
const nameSelector = "h1"

// renderWait bounds how long the renderer waits for the name element once
// navigation finished.
const renderWait = 15 * time.Second

// Renderer fetches pages through a headless Chrome instance so that
// JavaScript-built results tables are present in the returned HTML.
type Renderer struct {
	timeout   time.Duration
	userAgent string
}

// NewRenderer creates a Renderer with the configured timeout.
func NewRenderer(opts Options) *Renderer {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Renderer{timeout: timeout, userAgent: opts.UserAgent}
}

// Fetch navigates to url, waits for the player-name element to become
// visible and returns the rendered document.
func (r *Renderer) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
	)
	if r.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(r.userAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var html string
	tasks := chromedp.Tasks{
		chromedp.Navigate(url),
		waitVisible(nameSelector, renderWait),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	}

	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return html, nil
}

// waitVisible wraps chromedp.WaitVisible with its own deadline so a page
// that never renders the selector fails before the whole fetch budget is
// spent.
func waitVisible(selector string, wait time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		waitCtx, cancel := context.WithTimeout(ctx, wait)
		defer cancel()
		return chromedp.WaitVisible(selector, chromedp.ByQuery).Do(waitCtx)
	})
}
