// Package discovery advertises and finds cdterm web servers via mDNS.
//
// `cdterm serve` registers itself as a "_cdterm._tcp" service in the
// "local." domain so that other machines on the network can find the site
// with `cdterm scan` instead of guessing an address.
//
// # TXT Records
//
//	path=/                                     site root
//	version=v1.2.3                             cdterm version
//	pages=works,profile,research,contact       destination names
//
// # Usage Example
//
//	ad, err := discovery.Advertise("cdterm", 8080, discovery.TXTRecords(version.Version, nav.Names()))
//	if err != nil {
//	    return err
//	}
//	defer ad.Shutdown()
//
//	instances, err := discovery.Scan(ctx, 5*time.Second)
//	for _, inst := range instances {
//	    fmt.Println(inst.URL())
//	}
//
// # Network Requirements
//
// mDNS uses UDP multicast on port 5353; scanning finds nothing across
// subnets or when multicast is filtered.
package discovery
