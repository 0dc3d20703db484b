package rod

import (
	"sync"

	"github.com/fwojciec/skim"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultRecycleAfter is the number of pages a browser serves before it is
// replaced with a fresh process.
const DefaultRecycleAfter = 75

// browserManager owns the Chrome process behind a Fetcher. Chrome memory
// grows with every page and never returns to baseline, so a dashboard that
// runs for days swaps in a new browser after recycleAfter pages.
//
// browserManager is safe for concurrent use.
type browserManager struct {
	mu           sync.Mutex
	browser      *rod.Browser
	launcher     *launcher.Launcher
	pages        int
	recycleAfter int
	closed       bool
}

func newBrowserManager(recycleAfter int) (*browserManager, error) {
	if recycleAfter <= 0 {
		recycleAfter = DefaultRecycleAfter
	}
	bm := &browserManager{recycleAfter: recycleAfter}
	browser, l, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, l
	return bm, nil
}

// acquire returns the browser for the next page, recycling it first when
// it has served recycleAfter pages. A failed relaunch keeps the old browser.
func (bm *browserManager) acquire() (*rod.Browser, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, skim.Errorf(skim.EFETCH, "browser is closed")
	}
	if bm.pages >= bm.recycleAfter {
		if browser, l, err := launchBrowser(); err == nil {
			_ = bm.browser.Close()
			bm.launcher.Kill()
			bm.browser, bm.launcher = browser, l
			bm.pages = 0
		}
	}
	bm.pages++
	return bm.browser, nil
}

func (bm *browserManager) pid() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// close is idempotent.
func (bm *browserManager) close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	err := bm.browser.Close()
	bm.launcher.Kill()
	bm.browser, bm.launcher = nil, nil
	return err
}

func launchBrowser() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, skim.WrapError(skim.EFETCH, err, "failed to launch browser")
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, skim.WrapError(skim.EFETCH, err, "failed to connect to browser")
	}
	return browser, l, nil
}
