package render

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Page sizes supported by the PDF printer.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
)

// DefaultPDFTimeout bounds a single print job, including browser startup.
const DefaultPDFTimeout = 45 * time.Second

// PDFOptions control the headless-browser print job.
type PDFOptions struct {
	PageSize string        // PageSizeA4 (default) or PageSizeLetter
	Timeout  time.Duration // zero means DefaultPDFTimeout
}

// paper dimensions in inches.
func paperSize(pageSize string) (width, height float64) {
	if pageSize == PageSizeLetter {
		return 8.5, 11.0
	}
	return 8.27, 11.69
}

// PrintPDF renders HTML to PDF with headless Chrome. Requires a local
// Chrome/Chromium installation; a *BrowserError is returned when the browser
// cannot be started or driven.
func PrintPDF(ctx context.Context, html []byte, opts PDFOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}

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

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	width, height := paperSize(opts.PageSize)

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &BrowserError{Message: "failed to print PDF", Cause: err}
	}

	return pdf, nil
}
