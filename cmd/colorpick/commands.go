package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/discovery"
	"github.com/muurk/colorpick/internal/logging"
	"github.com/muurk/colorpick/internal/metrics"
	"github.com/muurk/colorpick/internal/server"
	"github.com/muurk/colorpick/internal/ui"
	"github.com/muurk/colorpick/internal/version"
)

// Command flags
var (
	convertFrom  string
	convertTo    string
	convertPlain bool

	serveAddr      string
	serveAdvertise bool
	serveRateLimit int
	serveName      string
	serveTLSCert   string
	serveTLSKey    string

	discoverTimeout int
)

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(discoverCmd)
}

// convertCmd converts a color between notations
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color between RGB, HSL, HSV and hex",
	Long: `Convert a color between notations without opening the picker.

Triples may be separated by commas or spaces and may be wrapped as
"hsl(...)". Out-of-range components are clamped. When --from is omitted the
notation is detected: '#rrggbb' or six hex digits is hex, "hsl(...)" or
"hsv(...)" names its space, anything else is RGB.`,
	Example: `  # Hex to HSL
  colorpick convert '#ff8000' --to hsl

  # HSV triple to hex, plain output for scripts
  colorpick convert 30,100,100 --from hsv --to hex --plain

  # Show every notation at once
  colorpick convert 'hsl(210, 50%, 40%)'`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Input notation (rgb, hsl, hsv, hex; default: detect)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Output notation (rgb, hsl, hsv, hex; default: all)")
	convertCmd.Flags().BoolVar(&convertPlain, "plain", false, "Print only the converted value")
}

func runConvert(cmd *cobra.Command, args []string) error {
	settings, _, err := loadSettings()
	if err != nil {
		return err
	}
	digits, err := effectivePrecision(settings)
	if err != nil {
		return err
	}

	c, err := parseColor(args[0], convertFrom)
	if err != nil {
		return err
	}
	logging.Debug("Parsed color argument", zap.String("input", args[0]), zap.Stringer("color", c))

	formats := []string{"rgb", "hsl", "hsv", formatHex}
	if convertTo != "" {
		formats = []string{convertTo}
	}

	results := make([]ui.Detail, 0, len(formats)+1)
	for _, format := range formats {
		out, err := formatColor(c, format, digits)
		if err != nil {
			return err
		}
		if convertPlain {
			fmt.Fprintln(cmd.OutOrStdout(), out)
			continue
		}
		results = append(results, ui.Detail{Key: strings.ToUpper(format), Value: out})
	}
	if convertPlain {
		return nil
	}
	results = append(results, ui.Detail{Key: "Floats", Value: formatFloats(c, digits)})

	from := convertFrom
	if from == "" {
		from = detectFormat(args[0]) + " (detected)"
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("COLOR CONVERSION", "colorpick convert", []ui.Detail{
		{Key: "Input", Value: args[0]},
		{Key: "From", Value: from},
	})
	printer.Newline()
	printer.Println(ui.RenderSwatch(c.ToRgb(), 20, 3))
	printer.Newline()
	printer.PrintSuccess("Converted", results)
	return nil
}

// serveCmd shares a picker session over WebSocket
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Share a picker session over WebSocket",
	Long: `Start the live sync server.

Every client connected to /ws edits the same color. Each client keeps its
own field texts and receives only the fields the server had to overwrite.
Prometheus metrics are served on /metrics and a health check on /healthz.

With --advertise the server is announced on the local network as
` + discovery.ServiceType + ` so 'colorpick discover' can find it.

With --tls-cert and --tls-key the server speaks TLS and clients connect
with wss://.

The color is saved to the settings file when the server stops.`,
	Example: `  # Start with settings defaults
  colorpick serve

  # Custom port, announced via mDNS
  colorpick serve --addr :9000 --advertise --name studio

  # Disable per-client throttling
  colorpick serve --rate-limit 0

  # Serve wss:// with a PEM certificate
  colorpick serve --tls-cert cert.pem --tls-key key.pem`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: server.addr setting)")
	serveCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Advertise the server via mDNS (default: server.advertise setting)")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 0, "Messages per second accepted per client, 0 disables (default: server.rate_limit setting)")
	serveCmd.Flags().StringVar(&serveName, "name", "", "mDNS instance name (default: hostname)")
	serveCmd.Flags().StringVar(&serveTLSCert, "tls-cert", "", "PEM certificate for wss:// (default: server.tls_cert setting)")
	serveCmd.Flags().StringVar(&serveTLSKey, "tls-key", "", "PEM private key for wss:// (default: server.tls_key setting)")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, path, err := loadSettings()
	if err != nil {
		return err
	}
	digits, err := effectivePrecision(settings)
	if err != nil {
		return err
	}

	addr := settings.Server.Addr
	if cmd.Flags().Changed("addr") {
		addr = serveAddr
	}
	advertise := settings.Server.Advertise
	if cmd.Flags().Changed("advertise") {
		advertise = serveAdvertise
	}
	rateLimit := settings.Server.RateLimit
	if cmd.Flags().Changed("rate-limit") {
		if serveRateLimit < 0 {
			return errors.New("--rate-limit must not be negative")
		}
		rateLimit = serveRateLimit
	}
	certPath := settings.Server.TLSCert
	if cmd.Flags().Changed("tls-cert") {
		certPath = serveTLSCert
	}
	keyPath := settings.Server.TLSKey
	if cmd.Flags().Changed("tls-key") {
		keyPath = serveTLSKey
	}
	tlsConfig, err := server.LoadTLS(certPath, keyPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	initial := settings.Color()
	serverConfig := server.Config{
		Addr:      addr,
		Initial:   initial,
		Precision: digits,
		RateLimit: rateLimit,
		TLS:       tlsConfig,
	}
	srv := server.New(serverConfig, metrics.NewManager())

	details := []ui.Detail{
		{Key: "Listening", Value: ln.Addr().String()},
		{Key: "WebSocket", Value: serverConfig.WebSocketScheme() + "://" + ln.Addr().String() + discovery.DefaultPath},
		{Key: "Color", Value: "#" + initial.HexCode()},
		{Key: "Space", Value: initial.Space().String()},
		{Key: "Rate limit", Value: rateLimitText(rateLimit)},
	}

	if advertise {
		adv, err := advertiseServer(ln, initial.Space(), tlsConfig != nil)
		if err != nil {
			_ = ln.Close()
			return err
		}
		defer adv.Shutdown()
		details = append(details, ui.Detail{Key: "mDNS", Value: discovery.ServiceType})
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("LIVE SYNC SERVER", "colorpick serve", details)
	printer.Println("Press Ctrl+C to stop.")

	serveErr := srv.Serve(ctx, ln)

	settings.Remember(srv.Session().Color())
	if err := settings.SaveTo(path); err != nil {
		logging.Warn("Failed to save settings", zap.String("path", path), zap.Error(err))
	}

	if serveErr != nil {
		return fmt.Errorf("server error: %w", serveErr)
	}
	return nil
}

func rateLimitText(rateLimit int) string {
	if rateLimit == 0 {
		return "disabled"
	}
	return strconv.Itoa(rateLimit) + " msg/s per client"
}

func advertiseServer(ln net.Listener, space color.Space, secure bool) (*discovery.Advertisement, error) {
	tcpAddr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		return nil, fmt.Errorf("cannot advertise non-TCP address %s", ln.Addr())
	}

	name := serveName
	if name == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("failed to get hostname for mDNS name: %w", err)
		}
		name = hostname
	}

	txt := discovery.TXTRecords(version.Version, strings.ToLower(space.String()), secure)
	return discovery.Advertise(name, tcpAddr.Port, txt)
}

// discoverCmd lists sync servers on the local network
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find colorpick sync servers on the network",
	Long: `Browse the local network for ` + discovery.ServiceType + ` services
announced by 'colorpick serve --advertise'.`,
	Example: `  # Browse for 5 seconds (default)
  colorpick discover

  # Longer scan for slow networks
  colorpick discover --timeout 15`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&discoverTimeout, "timeout", int(discovery.DefaultScanTimeout/time.Second), "Scan timeout in seconds")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	if discoverTimeout <= 0 {
		return errors.New("--timeout must be positive")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for colorpick servers (timeout: %ds)...\n\n", discoverTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(discoverTimeout) * time.Second

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var stopProgress func()
	if ui.IsTerminalWriter(out) {
		bar := ui.NewProgress("Browsing", ui.GetTerminalWidth())
		stopProgress = bar.Track(out, scanner.Timeout, 100*time.Millisecond)
	}

	peers, err := scanner.Scan(ctx)
	if stopProgress != nil {
		stopProgress()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(peers) == 0 {
		printer := ui.NewPrinter(out)
		printer.PrintError("No servers found", errors.New("no "+discovery.ServiceType+" services answered"), []string{
			"Start a server with 'colorpick serve --advertise'",
			"Check that both machines are on the same network segment",
			"Multicast DNS may be blocked by a firewall",
			"Try increasing --timeout for slower networks",
		})
		return nil
	}

	fmt.Fprintf(out, "Found %d server(s):\n\n", len(peers))
	for i, peer := range peers {
		fmt.Fprintf(out, "%d. %s\n", i+1, peer.Instance)
		fmt.Fprintf(out, "   Host:      %s\n", peer.Hostname)
		fmt.Fprintf(out, "   WebSocket: %s\n", peer.WebSocketURL())
		if space := peer.GetMetadata("space"); space != "" {
			fmt.Fprintf(out, "   Space:     %s\n", space)
		}
		if v := peer.GetMetadata("version"); v != "" {
			fmt.Fprintf(out, "   Version:   %s\n", v)
		}
		fmt.Fprintln(out)
	}
	return nil
}
