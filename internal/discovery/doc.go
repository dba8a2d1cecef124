// Package discovery advertises and finds colorpick sync servers on the
// local network over multicast DNS.
//
// A server started with advertising enabled registers a "_colorpick._tcp"
// service whose TXT records carry the WebSocket path, the server's color
// space, the program version and "tls=1" when it serves wss. Scanner
// browses for those services.
//
// # Usage Example
//
//	// Advertise a server listening on port 7878
//	adv, err := discovery.Advertise("studio", 7878, discovery.TXTRecords("1.0.0", "hsl", false))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer adv.Shutdown()
//
//	// Elsewhere: find running servers
//	peers, err := discovery.NewScanner().Scan(context.Background())
//	for _, peer := range peers {
//	    fmt.Println(peer.Instance, peer.WebSocketURL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Peers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
