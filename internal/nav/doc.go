// Package nav resolves destination names and performs page transitions.
//
// The set of destinations is fixed at compile time. Each canonical name maps
// to a like-named page resource:
//
//	works    -> works.html
//	profile  -> profile.html
//	research -> research.html
//	contact  -> contact.html
//
// Names are matched case-insensitively and only exactly; there is no partial
// or fuzzy matching here. Prefix completion lives in the terminal package.
//
// # Usage Example
//
//	resolver := nav.New(nav.LocationFunc(func(href string) {
//	    fmt.Println("leaving for", href)
//	}))
//
//	if name, ok := resolver.Resolve("Works"); ok {
//	    resolver.Navigate(name) // prints "leaving for works.html"
//	}
//
// # Side Effects
//
// Navigate is the only operation with a side effect. What "leaving the page"
// means is decided by the Location passed to New: the web front end sends a
// navigate frame to the browser, the terminal UI records the destination and
// quits.
package nav
