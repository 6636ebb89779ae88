package scraper

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/chromedp/chromedp"
)

// debugCapture saves one HTML snapshot of the first calendar page seen,
// for updating the selector ladders when the site's markup changes. It is
// scoped to a Calendar instance rather than process-wide so parallel
// sessions don't race on a shared flag.
type debugCapture struct {
	mu   sync.Mutex
	done bool
	path string
}

func (d *debugCapture) capture(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done || d.path == "" {
		return
	}
	d.done = true

	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		log.Printf("debug snapshot failed: %v", err)
		return
	}
	if err := os.WriteFile(d.path, []byte(html), 0o644); err != nil {
		log.Printf("debug snapshot failed: %v", err)
		return
	}
	log.Printf("saved debug snapshot → %s", d.path)
}
