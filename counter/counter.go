// Package counter is the shop page quantity field: a non-negative integer
// with increment, decrement and a confirm action that leaves the page.
package counter

import "log/slog"

// DefaultTarget is where Confirm navigates when no target is configured.
const DefaultTarget = "../carrinho/carrinho.html"

// ShopTarget is the address of the page the counter lives on. Confirm
// must lead somewhere else.
const ShopTarget = "index.html"

// Navigator replaces the current page. There is no history entry to go
// back to.
type Navigator interface {
	Replace(target string)
}

// Counter holds the quantity. The zero value is not usable; call New.
type Counter struct {
	value  int
	target string
	nav    Navigator
	log    *slog.Logger
}

// New returns a counter starting at start (clamped at zero) that navigates
// to target on Confirm. An empty target means DefaultTarget. log may be nil.
func New(start int, target string, nav Navigator, log *slog.Logger) *Counter {
	if target == "" {
		target = DefaultTarget
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Counter{value: max(start, 0), target: target, nav: nav, log: log}
}

// Value returns the current quantity.
func (c *Counter) Value() int { return c.value }

// Target returns the confirm destination.
func (c *Counter) Target() string { return c.target }

// Increment adds one.
func (c *Counter) Increment() {
	c.value++
}

// Decrement subtracts one unless the value is already zero.
func (c *Counter) Decrement() {
	if c.value > 0 {
		c.value--
	}
}

// Set stores v, clamped at zero, as when the field is edited directly.
func (c *Counter) Set(v int) {
	c.value = max(v, 0)
}

// Confirm replaces the current page with the target. The quantity is not
// carried over.
func (c *Counter) Confirm() {
	c.log.Info("quantity confirmed", slog.Int("value", c.value), slog.String("target", c.target))
	c.nav.Replace(c.target)
}
