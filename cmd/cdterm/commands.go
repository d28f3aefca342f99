package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/cdterm/internal/config"
	"github.com/muurk/cdterm/internal/discovery"
	"github.com/muurk/cdterm/internal/nav"
	"github.com/muurk/cdterm/internal/server"
	"github.com/muurk/cdterm/internal/tui"
	"github.com/muurk/cdterm/internal/ui"
)

func runTerminal(cmd *cobra.Command, args []string) error {
	t := cfg.Terminal

	dest, err := tui.Run(tui.Options{
		Intro:      t.Intro && !noIntro,
		IntroDelay: t.IntroDelay(),
		FadeDelay:  t.FadeDelay(),
		IntroLines: t.IntroLines,
		BaseURL:    t.BaseURL,
	})
	if err != nil {
		return err
	}

	// Print only the destination so the result can be piped
	if dest != "" {
		fmt.Fprintln(cmd.OutOrStdout(), dest)
	}
	return nil
}

// Serve command and flags
var (
	serveHost     string
	servePort     int
	serveSiteDir  string
	noAdvertise   bool
	serveInstance string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and its terminal over HTTP",
	Long: `Serve a static site directory together with the WebSocket endpoint
(/terminal) that drives the terminal widget on each page.

Every page connection gets its own terminal session. The server is
advertised on the local network via mDNS unless --no-advertise is given.
Flags override the values from the config file.`,
	Example: `  # Serve the current directory on port 8080
  cdterm serve

  # Serve ./public on localhost only, with debug logging
  cdterm serve --site ./public --host 127.0.0.1 --log-level debug

  # Serve without mDNS advertisement
  cdterm serve --no-advertise`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", config.DefaultHost, "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Listen port (0 = any free port)")
	serveCmd.Flags().StringVar(&serveSiteDir, "site", config.DefaultSiteDir, "Directory holding the site pages")
	serveCmd.Flags().BoolVar(&noAdvertise, "no-advertise", false, "Do not advertise the server via mDNS")
	serveCmd.Flags().StringVar(&serveInstance, "instance", config.DefaultInstance, "mDNS instance name")
}

func runServe(cmd *cobra.Command, args []string) error {
	s := *cfg.Server
	flags := cmd.Flags()
	if flags.Changed("host") {
		s.Host = serveHost
	}
	if flags.Changed("port") {
		s.Port = servePort
	}
	if flags.Changed("site") {
		s.SiteDir = serveSiteDir
	}
	if flags.Changed("instance") {
		s.Instance = serveInstance
	}
	if noAdvertise {
		s.Advertise = false
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Terminal server", "cdterm serve",
		ui.Field{Key: "Address", Value: s.Addr()},
		ui.Field{Key: "Site", Value: s.SiteDir},
		ui.Field{Key: "Pages", Value: strings.Join(nav.Names(), ", ")},
		ui.Field{Key: "mDNS", Value: advertiseLabel(s)},
	)

	srv, err := server.New(&server.Config{
		Host:      s.Host,
		Port:      s.Port,
		SiteDir:   s.SiteDir,
		Advertise: s.Advertise,
		Instance:  s.Instance,
		Timing: server.Timing{
			IntroDelay: cfg.Terminal.IntroDelay(),
			FadeDelay:  cfg.Terminal.FadeDelay(),
		},
	})
	if err != nil {
		p.PrintError("Server failed to start", err, []string{
			"Check that --site points at an existing directory",
		})
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(); err != nil {
		p.PrintError("Server stopped", err, []string{
			"Check that the port is free or pick another with --port",
			"Ports below 1024 may need elevated privileges",
		})
		return err
	}

	p.PrintSuccess("Server stopped")
	return nil
}

func advertiseLabel(s config.Server) string {
	if !s.Advertise {
		return "disabled"
	}
	return s.Instance + "." + discovery.ServiceType + "." + discovery.ServiceDomain
}

// Scan command
var scanTimeout int

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find cdterm servers on the local network",
	Long: `Browse the local network for cdterm servers advertised via mDNS and
list their address and pages.`,
	Example: `  # Scan for 5 seconds
  cdterm scan

  # Scan longer on slow networks
  cdterm scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", int(discovery.DefaultScanTimeout/time.Second), "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Server scan", "cdterm scan",
		ui.Field{Key: "Service", Value: discovery.ServiceType + "." + discovery.ServiceDomain},
		ui.Field{Key: "Timeout", Value: strconv.Itoa(scanTimeout) + "s"},
	)

	instances, err := discovery.Scan(cmd.Context(), time.Duration(scanTimeout)*time.Second)
	if err != nil {
		p.PrintError("Scan failed", err, []string{"Check that multicast is allowed on this network"})
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(instances) == 0 {
		p.PrintWarning("No servers found", []string{
			"Ensure 'cdterm serve' is running without --no-advertise",
			"Check that both machines are on the same network",
			"Try increasing --timeout for slower networks",
		})
		return nil
	}

	p.Printf("Found %d server(s):\n\n", len(instances))
	for i, inst := range instances {
		p.Printf("%d. %s\n", i+1, inst.Name)
		fields := []ui.Field{
			{Key: "URL", Value: inst.URL()},
			{Key: "Host", Value: inst.Hostname},
		}
		if pages := inst.Pages(); len(pages) > 0 {
			fields = append(fields, ui.Field{Key: "Pages", Value: strings.Join(pages, ", ")})
		}
		if v := inst.GetMetadata("version"); v != "" {
			fields = append(fields, ui.Field{Key: "Version", Value: v})
		}
		p.PrintFields(fields...)
		p.Newline()
	}
	return nil
}

// Config commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var forceInit bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default values",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if _, err := os.Stat(path); err == nil && !forceInit {
		p.PrintWarning("Configuration file already exists", []string{
			path,
			"Use --force to overwrite it with the defaults",
		})
		return nil
	}

	if err := config.New().Save(path); err != nil {
		p.PrintError("Could not write configuration", err, nil)
		return err
	}

	p.PrintSuccess("Configuration written", ui.Field{Key: "Path", Value: path})
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}
