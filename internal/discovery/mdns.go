package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/cdterm/internal/logging"
)

const (
	// ServiceType is the mDNS service type cdterm servers advertise
	ServiceType = "_cdterm._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for discovery
	DefaultScanTimeout = 5 * time.Second
)

// Scanner handles mDNS instance discovery
type Scanner struct {
	// Timeout is the maximum time to wait for instances
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// ScanForInstances discovers cdterm servers on the local network until the
// scanner timeout elapses or ctx is cancelled.
func (s *Scanner) ScanForInstances(ctx context.Context) ([]*Instance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)

	var mu sync.Mutex
	instances := make([]*Instance, 0)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			instance := parseServiceEntry(entry)
			if instance == nil {
				continue
			}
			mu.Lock()
			instances = append(instances, instance)
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return dedupe(instances), nil
}

// parseServiceEntry converts a zeroconf service entry to an Instance.
// Returns nil if the entry carries no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Instance {
	if entry == nil {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" || entry.Port == 0 {
		return nil
	}

	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}

	return &Instance{
		Name:         entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// dedupe drops repeated announcements of the same address, keeping the first.
func dedupe(instances []*Instance) []*Instance {
	seen := make(map[string]bool)
	out := make([]*Instance, 0, len(instances))
	for _, inst := range instances {
		key := inst.Name + "@" + inst.Addr()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, inst)
	}
	return out
}

// Advertisement is a running mDNS registration
type Advertisement struct {
	server *zeroconf.Server
}

// Advertise registers a cdterm server under instance on port.
func Advertise(instance string, port int, txt []string) (*Advertisement, error) {
	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Advertising via mDNS",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	return &Advertisement{server: server}, nil
}

// Shutdown withdraws the registration
func (a *Advertisement) Shutdown() {
	if a == nil || a.server == nil {
		return
	}
	a.server.Shutdown()
}

// TXTRecords builds the TXT records advertised for a server
func TXTRecords(version string, pages []string) []string {
	return []string{
		"path=/",
		"version=" + version,
		"pages=" + strings.Join(pages, ","),
	}
}

// Scan is a convenience function to scan with a custom timeout
func Scan(ctx context.Context, timeout time.Duration) ([]*Instance, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.ScanForInstances(ctx)
}
