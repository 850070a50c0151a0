package report

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
)

// Generator prints rendered report pages to PDF with headless Chrome.
// Chrome/Chromium must be installed on the host.
type Generator struct {
	timeout time.Duration
}

func NewGenerator(timeout time.Duration) *Generator {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Generator{timeout: timeout}
}

// GeneratePDF renders the analysis to HTML and prints it. Returns the raw
// PDF bytes.
func (g *Generator) GeneratePDF(ctx context.Context, analysis *domain.Analysis) ([]byte, error) {
	html, err := RenderHTML(analysis)
	if err != nil {
		return nil, err
	}
	return g.printHTML(ctx, html)
}

func (g *Generator) printHTML(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, g.timeout)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}

	logger.Debug("PDF generated", zap.Int("bytes", len(pdf)))
	return pdf, nil
}
