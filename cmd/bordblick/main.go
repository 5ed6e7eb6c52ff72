package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bordblick/bordblick-cli/internal/api"
	"github.com/bordblick/bordblick-cli/internal/config"
	"github.com/bordblick/bordblick-cli/internal/output"
	"github.com/bordblick/bordblick-cli/internal/record"
	"github.com/bordblick/bordblick-cli/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bordblick",
	Short: "Live dashboard for the ICE onboard portal",
	Long: `bordblick shows live data from the iceportal.de onboard API while
you are riding an ICE and connected to the train's WiFi.

Features:
  - Full-screen dashboard with speed history, trip progress and stops
  - One-shot status and trip output for scripting
  - Ride recording and offline replay
  - JSON output

Quick Start:
  1. Launch dashboard:        bordblick (or bordblick dash)
  2. Show vehicle status:     bordblick status
  3. Show the route:          bordblick trip
  4. Record the ride:         bordblick dash --record
  5. Replay a recording:      bordblick dash --replay ~/.local/share/bordblick/recordings

Keyboard (dashboard):
  Tab / Shift+Tab  Cycle panel focus
  Enter            Expand stop detail (trip panel)
  j/k or arrows    Select stop (expanded trip panel)
  r                Refresh now
  q                Quit`,
	Version: version,
	RunE:    runDash,
}

// Global flags
var (
	flagJSON     bool
	flagRawJSON  bool
	flagColor    string
	flagEndpoint string
	flagReplay   string
	flagConfig   string
)

// Dashboard flags
var (
	flagInterval  time.Duration
	flagHistory   int
	flagRecord    bool
	flagRecordDir string
)

// Status/trip flags
var flagWatch bool

func init() {
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tripCmd)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "Override the portal base URL")
	rootCmd.PersistentFlags().StringVar(&flagReplay, "replay", "", "Replay a recording directory instead of polling the portal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.config/bordblick/config.yaml)")

	// Dashboard flags
	for _, cmd := range []*cobra.Command{rootCmd, dashCmd} {
		cmd.Flags().DurationVar(&flagInterval, "interval", 0, "Poll interval (default 1s)")
		cmd.Flags().IntVar(&flagHistory, "history", 0, "Snapshots kept for the speed graph (default 60)")
		cmd.Flags().BoolVar(&flagRecord, "record", false, "Record every poll for later replay")
		cmd.Flags().StringVar(&flagRecordDir, "record-dir", "", "Recording directory (default XDG data dir)")
	}

	// Status/trip flags
	statusCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Refresh every 2 seconds")
	tripCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Refresh every 30 seconds")
}

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Launch the full-screen dashboard",
	Long: `Launch the interactive full-screen dashboard. Polls the onboard
portal every second and keeps the last minute of snapshots for the
speed graph and the moving average.

When a poll fails the last good data stays on screen with a stale
notice; the dashboard recovers on the next successful poll.

Examples:
  bordblick dash
  bordblick dash --interval 2s --history 120
  bordblick dash --record
  bordblick dash --replay ~/.local/share/bordblick/recordings`,
	RunE: runDash,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current vehicle status",
	Long: `Show the current vehicle status: speed, series, wagon class,
internet state and GPS position.

Examples:
  bordblick status
  bordblick status --json
  bordblick status --watch`,
	RunE: runStatus,
}

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Show the route with all stops",
	Long: `Show the current route: every stop with scheduled arrival, delay
and track. The next stop is marked.

Examples:
  bordblick trip
  bordblick trip --raw-json
  bordblick trip --watch`,
	RunE: runTrip,
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagEndpoint != "" {
		cfg.Endpoint = flagEndpoint
	}
	if flagReplay != "" {
		cfg.Replay = flagReplay
	}
	if flagColor != "" {
		cfg.Color = flagColor
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = flagInterval
	}
	if cmd.Flags().Changed("history") {
		cfg.History = flagHistory
	}

	return cfg, nil
}

// createClient creates a portal client honoring the endpoint override.
func createClient(cfg *config.Config) *api.Client {
	opts := []api.ClientOption{}
	if cfg.Endpoint != "" {
		opts = append(opts, api.WithBaseURL(cfg.Endpoint))
	}
	return api.NewClient(opts...)
}

// createSource builds the snapshot source for the dashboard: replay,
// recording live client, or plain live client.
func createSource(cfg *config.Config) (api.SnapshotSource, error) {
	if cfg.Replay != "" {
		return record.NewPlayer(cfg.Replay)
	}

	client := createClient(cfg)
	if !flagRecord {
		return client, nil
	}

	dir := flagRecordDir
	if dir == "" {
		dir = record.DefaultDir()
	}
	recorder, err := record.NewRecorder(dir)
	if err != nil {
		return nil, err
	}
	return record.NewSource(client, recorder), nil
}

func getColors(cfg *config.Config) *output.Colors {
	return output.NewColors(output.ParseColorMode(cfg.Color))
}

func runDash(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	source, err := createSource(cfg)
	if err != nil {
		return err
	}

	model := tui.New(source, tui.Options{
		Interval: cfg.Interval,
		History:  cfg.History,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client := createClient(cfg)

	if flagWatch {
		w := &output.Watch{Out: os.Stdout, Interval: 2 * time.Second}
		return w.Run(ctx, func(out io.Writer) error {
			status, err := client.GetStatus(ctx)
			if err != nil {
				return err
			}
			output.RenderStatus(out, status, output.RenderOptions{Colors: getColors(cfg)})
			return nil
		})
	}

	if flagRawJSON {
		raw, err := client.GetStatusRaw(ctx)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	status, err := client.GetStatus(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	output.RenderStatus(os.Stdout, status, output.RenderOptions{Colors: getColors(cfg)})
	return nil
}

func runTrip(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client := createClient(cfg)

	if flagWatch {
		w := &output.Watch{Out: os.Stdout, Interval: 30 * time.Second}
		return w.Run(ctx, func(out io.Writer) error {
			trip, err := client.GetTrip(ctx)
			if err != nil {
				return err
			}
			output.RenderTrip(out, trip, output.RenderOptions{Colors: getColors(cfg)})
			return nil
		})
	}

	if flagRawJSON {
		raw, err := client.GetTripRaw(ctx)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	trip, err := client.GetTrip(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(trip)
	}

	output.RenderTrip(os.Stdout, trip, output.RenderOptions{Colors: getColors(cfg)})
	return nil
}

// printPrettyJSON re-indents a raw API response
func printPrettyJSON(data []byte) error {
	var prettyJSON interface{}
	if err := json.Unmarshal(data, &prettyJSON); err != nil {
		// If we can't parse it, just print raw
		fmt.Println(string(data))
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(prettyJSON)
}
