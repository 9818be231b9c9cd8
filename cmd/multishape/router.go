package main

import (
	"log/slog"

	"github.com/go-theft-auto/multishape/counter"
)

type page uint8

const (
	pageShop page = iota
	pageCart
)

func (p page) String() string {
	if p == pageCart {
		return "cart"
	}
	return "shop"
}

// router switches between the program's pages. Replace implements
// counter.Navigator: the current page is swapped out and nothing is kept to
// go back to.
type router struct {
	current page
	routes  map[string]page
	log     *slog.Logger
}

func newRouter(confirmTarget string, log *slog.Logger) *router {
	if confirmTarget == "" {
		confirmTarget = counter.DefaultTarget
	}
	return &router{
		current: pageShop,
		routes: map[string]page{
			counter.ShopTarget: pageShop,
			confirmTarget:      pageCart,
		},
		log: log,
	}
}

func (r *router) Current() page { return r.current }

func (r *router) Replace(target string) {
	p, ok := r.routes[target]
	if !ok {
		r.log.Warn("no page for target", "target", target)
		return
	}
	r.log.Info("navigate", "from", r.current, "to", p, "target", target)
	r.current = p
}
