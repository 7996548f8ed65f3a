// argmap-snapshot captures a rendered argument map to a PNG using headless
// Chrome. Point it at a file produced by the echarts renderer or at a running
// argmapws instance.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

func main() {
	in := flag.String("in", "argmap.html", "HTML file or URL to capture")
	out := flag.String("o", "argmap.png", "output PNG file")
	width := flag.Int("width", 1280, "viewport width")
	height := flag.Int("height", 900, "viewport height")
	settle := flag.Duration("settle", 2*time.Second, "time to let the page render before capturing")
	timeout := flag.Duration("timeout", 60*time.Second, "overall capture timeout")

	flag.Parse()

	target, err := asNavigable(*in)
	if err != nil {
		log.Fatal(err)
	}

	timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), *timeout)
	defer timeoutCancel()

	ctx, cancel := chromedp.NewContext(timeoutCtx)
	defer cancel()

	startTime := time.Now()
	downloadedBytes := int64(0)

	countBytesAction := func(ctx context.Context) error {
		chromedp.ListenTarget(ctx, func(ev interface{}) {
			switch ev := ev.(type) {
			case *network.EventLoadingFinished:
				downloadedBytes += int64(ev.EncodedDataLength)
			}
		})
		return nil
	}

	var shot []byte
	err = chromedp.Run(ctx,
		network.Enable(),
		chromedp.ActionFunc(countBytesAction),
		chromedp.EmulateViewport(int64(*width), int64(*height)),
		chromedp.Navigate(target),
		chromedp.Sleep(*settle),
		chromedp.FullScreenshot(&shot, 90),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*out, shot, 0o644); err != nil {
		log.Fatal(err)
	}

	log.Printf("Captured %s -> %s (%d bytes downloaded, took %s)",
		target, *out, downloadedBytes, time.Since(startTime).Round(time.Millisecond))
}

// asNavigable turns a local file path into a file:// URL; URLs pass through.
func asNavigable(in string) (string, error) {
	if strings.HasPrefix(in, "http://") || strings.HasPrefix(in, "https://") || strings.HasPrefix(in, "file://") {
		return in, nil
	}
	abs, err := filepath.Abs(in)
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}
