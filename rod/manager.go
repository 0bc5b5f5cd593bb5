package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultPagesPerBrowser is how many rendered pages a browser serves before
// it is replaced. A full site crawl renders hundreds of article pages and
// Chrome's memory footprint grows with each one, so the browser is cycled
// on a fixed page budget rather than kept for the whole crawl.
const DefaultPagesPerBrowser = 50

// browserManager hands out a headless Chrome instance and replaces it once
// it has rendered its page budget. All state is guarded by mu; rendering
// itself is sequential, so the lock is uncontended in practice.
type browserManager struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pages     int
	budget    int
	userAgent string
	closed    bool
}

// ManagerOption configures the browser lifecycle.
type ManagerOption func(*browserManager)

// WithPagesPerBrowser overrides the page budget after which the browser is
// replaced.
func WithPagesPerBrowser(n int) ManagerOption {
	return func(m *browserManager) {
		m.budget = n
	}
}

// WithUserAgent sets the User-Agent the browser identifies with, matching
// the one plain HTTP fetches send.
func WithUserAgent(ua string) ManagerOption {
	return func(m *browserManager) {
		m.userAgent = ua
	}
}

func newBrowserManager(opts ...ManagerOption) (*browserManager, error) {
	m := &browserManager{budget: DefaultPagesPerBrowser}
	for _, opt := range opts {
		opt(m)
	}

	b, l, err := m.launch()
	if err != nil {
		return nil, err
	}
	m.browser, m.launcher = b, l
	return m, nil
}

// browserFor returns the browser to render the next page with, replacing it
// first if the previous one has used up its budget. Callers report a
// rendered page back with pageDone.
func (m *browserManager) browserFor() *rod.Browser {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pages >= m.budget {
		if b, l, err := m.launch(); err == nil {
			m.shutdown()
			m.browser, m.launcher = b, l
			m.pages = 0
		}
		// On launch failure keep the old browser; it still works, it is
		// just over budget. The next browserFor call tries again.
	}
	return m.browser
}

// pageDone records one rendered page against the current browser's budget.
func (m *browserManager) pageDone() {
	m.mu.Lock()
	m.pages++
	m.mu.Unlock()
}

// Close shuts down the browser and its launcher. Safe to call twice.
func (m *browserManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	return m.shutdown()
}

// launch starts a fresh headless Chrome and connects to it. It does not
// touch manager state, so it can run while the old browser is still live.
func (m *browserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)
	if m.userAgent != "" {
		l = l.Set("user-agent", m.userAgent)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connect to browser: %w", err)
	}
	return b, l, nil
}

// shutdown closes the current browser and kills its launcher. mu must be
// held.
func (m *browserManager) shutdown() error {
	var err error
	if m.browser != nil {
		err = m.browser.Close()
		m.browser = nil
	}
	if m.launcher != nil {
		m.launcher.Kill()
		m.launcher = nil
	}
	return err
}
