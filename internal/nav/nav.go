package nav

import (
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/cdterm/internal/logging"
)

// Destination is a single entry of the destination table.
type Destination struct {
	Name string // Canonical (lower-case) name, e.g. "works"
	Href string // Target page location, e.g. "works.html"
}

// destinations is the compiled-in destination table. Order matters: it is
// the order of the choice list and of the Tab hint.
var destinations = []Destination{
	{Name: "works", Href: "works.html"},
	{Name: "profile", Href: "profile.html"},
	{Name: "research", Href: "research.html"},
	{Name: "contact", Href: "contact.html"},
}

// Location performs a page transition to href.
type Location interface {
	Assign(href string)
}

// LocationFunc adapts an ordinary function to the Location interface.
type LocationFunc func(href string)

// Assign calls f(href).
func (f LocationFunc) Assign(href string) {
	f(href)
}

// Resolver validates destination names and navigates to them.
type Resolver struct {
	location Location
}

// New creates a Resolver that performs transitions through loc.
// A nil loc makes Navigate a no-op.
func New(loc Location) *Resolver {
	return &Resolver{location: loc}
}

// Names returns the destination names in table order.
// The returned slice is a copy and may be modified by the caller.
func Names() []string {
	names := make([]string, len(destinations))
	for i, d := range destinations {
		names[i] = d.Name
	}
	return names
}

// Destinations returns a copy of the destination table.
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// Lookup returns the page location for a canonical name.
func Lookup(name string) (string, bool) {
	for _, d := range destinations {
		if d.Name == name {
			return d.Href, true
		}
	}
	return "", false
}

// Names returns the destination names in table order.
func (r *Resolver) Names() []string {
	return Names()
}

// Resolve case-folds raw and returns the canonical name if it exactly
// matches a known destination.
func (r *Resolver) Resolve(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	lower := strings.ToLower(raw)
	if _, ok := Lookup(lower); ok {
		return lower, true
	}
	return "", false
}

// Navigate leaves the current page for the named destination.
// Unknown names are ignored.
func (r *Resolver) Navigate(name string) {
	key, ok := r.Resolve(name)
	if !ok {
		logging.Debug("Ignoring navigation to unknown destination", zap.String("name", name))
		return
	}
	href, _ := Lookup(key)
	if r.location == nil {
		return
	}

	logging.Info("Navigating", zap.String("destination", key), zap.String("href", href))
	r.location.Assign(href)
}
