// Package scraper is the site-specific fetch collaborator: it drives a
// Chrome tab to the Alaska Airlines award calendar and hands back raw
// day-cell text. Everything here is tied to the site's current markup;
// the award package consumes the text without knowing where it came from.
package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/rennewman-going/alaska-award-scraper/config"
)

const calendarBase = "https://www.alaskaair.com/search/calendar"

// Calendar fetches rendered award-calendar months over one browser tab.
// Not safe for concurrent use; each worker owns its own Calendar.
type Calendar struct {
	settle  time.Duration
	timeout time.Duration
	debug   debugCapture
}

// NewCalendar builds a Calendar from the runtime configuration.
func NewCalendar(cfg config.Config) *Calendar {
	return &Calendar{
		settle:  cfg.CalendarSettle,
		timeout: cfg.SelectorTimeout,
		debug:   debugCapture{path: cfg.DebugHTML},
	}
}

// FetchMonth navigates directly to the award calendar for one route month
// and returns the text of every rendered day cell. The returned slice is
// empty when the calendar never rendered.
func (c *Calendar) FetchMonth(ctx context.Context, origin, dest string, year, month int) ([]string, error) {
	url := calendarURL(origin, dest, year, month)

	// Navigation alone often times out while the page keeps loading in
	// the background; the settle sleep gives the web components time to
	// render either way.
	if err := chromedp.Run(ctx, chromedp.Navigate(url)); err != nil {
		log.Printf("[%s→%s] navigate: %v (continuing)", origin, dest, err)
	}
	if err := chromedp.Run(ctx, chromedp.Sleep(c.settle)); err != nil {
		return nil, fmt.Errorf("settle after navigate: %w", err)
	}

	if !c.waitForCalendar(ctx) {
		c.debug.capture(ctx)
		return nil, fmt.Errorf("calendar not rendered for %s→%s %04d-%02d", origin, dest, year, month)
	}
	c.debug.capture(ctx)

	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("capture calendar html: %w", err)
	}
	return CellTexts(strings.NewReader(html))
}

// waitForCalendar probes the container selector ladder until one appears.
func (c *Calendar) waitForCalendar(ctx context.Context) bool {
	for _, sel := range loadSelectors {
		waitCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := chromedp.Run(waitCtx, chromedp.WaitVisible(sel, chromedp.ByQuery))
		cancel()
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}
	}
	return false
}

func calendarURL(origin, dest string, year, month int) string {
	return fmt.Sprintf(
		"%s?O=%s&D=%s&OD=%04d-%02d-01"+
			"&A=1&RT=false&RequestType=Calendar&ShoppingMethod=onlineaward"+
			"&int=flightresultsmicrosite%%3Aviewby-calendar&locale=en-us",
		calendarBase, origin, dest, year, month,
	)
}
