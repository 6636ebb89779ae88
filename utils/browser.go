package utils

import (
	"context"

	"github.com/chromedp/chromedp"

	"github.com/rennewman-going/alaska-award-scraper/config"
)

// NewAllocator creates a Chrome exec allocator context from the given
// Config. The viewport is tall enough that a full month grid renders
// without scrolling, and the locale is pinned so the calendar's price
// strings keep the "$"/"k" forms the parser expects.
func NewAllocator(parent context.Context, cfg config.Config) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true), // multi-hour runs exhaust /dev/shm in containers
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("lang", "en-US"),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1440, 1200),
	)
	return chromedp.NewExecAllocator(parent, opts...)
}
