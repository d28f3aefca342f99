package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Instance represents a cdterm web server found on the network
type Instance struct {
	// Name is the mDNS instance name (e.g., "cdterm")
	Name string

	// Hostname is the mDNS hostname (e.g., "studio.local.")
	Hostname string

	// IP is the first advertised address, IPv4 preferred
	IP string

	// Port is the HTTP port the site is served on
	Port int

	// Metadata contains the TXT record data
	// Common fields: "path=/", "version=...", "pages=works,profile,research,contact"
	Metadata map[string]string

	// DiscoveredAt is when the instance was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the instance
func (i *Instance) String() string {
	return fmt.Sprintf("cdterm %s (%s) at %s", i.Name, i.Hostname, i.Addr())
}

// Addr returns the host:port address of the instance
func (i *Instance) Addr() string {
	return net.JoinHostPort(i.IP, strconv.Itoa(i.Port))
}

// URL returns the site URL of the instance
func (i *Instance) URL() string {
	path := i.GetMetadata("path")
	if path == "" {
		path = "/"
	}
	return "http://" + i.Addr() + path
}

// Pages returns the destination names advertised by the instance
func (i *Instance) Pages() []string {
	pages := i.GetMetadata("pages")
	if pages == "" {
		return nil
	}
	return strings.Split(pages, ",")
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (i *Instance) GetMetadata(key string) string {
	if i.Metadata == nil {
		return ""
	}
	return i.Metadata[key]
}
