package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/immolist/immo-cli/internal/api"
	"github.com/immolist/immo-cli/internal/config"
	"github.com/immolist/immo-cli/internal/debuglog"
	"github.com/immolist/immo-cli/internal/models"
	"github.com/immolist/immo-cli/internal/netcheck"
	"github.com/immolist/immo-cli/internal/output"
	"github.com/immolist/immo-cli/internal/regions"
	"github.com/immolist/immo-cli/internal/store"
	"github.com/immolist/immo-cli/internal/tui"
)

var version = "0.2.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "immo",
	Short: "CLI for browsing Belarusian real-estate listings",
	Long: `immo is a command-line interface for browsing real-estate listings
from the kufar.by search API.

Features:
  - Apartments, houses, rooms, garages, commercial property and plots
  - Filter by deal type (rent or buy), region and number of rooms
  - Interactive full-screen TUI with live filter switching
  - JSON output for scripting
  - Response caching for faster repeated queries

Quick Start:
  1. Launch TUI:                immo (or immo tui)
  2. List newest apartments:    immo listings
  3. Rentals in Minsk:          immo listings --deal rent --region minsk
  4. Two-room flats for sale:   immo listings --deal buy --rooms 2
  5. Houses:                    immo listings --cat houses
  6. Known regions:             immo regions`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagJSON    bool
	flagRawJSON bool
	flagColor   string
	flagNoCache bool
)

// Listings flags
var (
	flagDeal     string
	flagCategory string
	flagRegion   string
	flagRooms    int
	flagSize     int
	flagLink     bool
	flagTime     bool
	flagWatch    bool
)

func init() {
	rootCmd.AddCommand(listingsCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(tuiCmd)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable response caching")

	// Listings-specific flags
	listingsCmd.Flags().StringVarP(&flagDeal, "deal", "d", "all", "Deal type: all, rent, buy")
	listingsCmd.Flags().StringVarP(&flagCategory, "cat", "c", "apartments", "Category: apartments, houses, rooms, garages, commercial, plots")
	listingsCmd.Flags().StringVarP(&flagRegion, "region", "g", "", "Region code (see 'immo regions')")
	listingsCmd.Flags().IntVar(&flagRooms, "rooms", 0, "Number of rooms (0 = any)")
	listingsCmd.Flags().IntVarP(&flagSize, "size", "n", 0, "Number of listings to fetch (max 200)")
	listingsCmd.Flags().BoolVarP(&flagLink, "link", "l", false, "Show listing links")
	listingsCmd.Flags().BoolVarP(&flagTime, "time", "t", false, "Show listing times")
	listingsCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh every 60 seconds")

	// TUI flags
	tuiCmd.Flags().StringVarP(&flagDeal, "deal", "d", "all", "Initial deal type: all, rent, buy")
	tuiCmd.Flags().StringVarP(&flagCategory, "cat", "c", "apartments", "Category: apartments, houses, rooms, garages, commercial, plots")
	tuiCmd.Flags().StringVarP(&flagRegion, "region", "g", "", "Region code (see 'immo regions')")
	tuiCmd.Flags().IntVar(&flagRooms, "rooms", 0, "Number of rooms (0 = any)")
}

var categories = map[string]string{
	"apartments": api.CategoryApartments,
	"houses":     api.CategoryHouses,
	"garages":    api.CategoryGarages,
	"rooms":      api.CategoryRooms,
	"commercial": api.CategoryCommercial,
	"plots":      api.CategoryPlots,
}

// createClient creates an API client honoring environment config and flags.
func createClient(cfg config.Config) (*api.Client, error) {
	opts := []api.ClientOption{api.WithTimeout(cfg.Timeout)}

	if cfg.BaseURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.BaseURL))
	}
	if !flagNoCache {
		opts = append(opts, api.WithDefaultCache(cfg.CacheTTL))
	}

	return api.NewClient(opts...)
}

// buildRequest translates command-line flags into a listings request.
func buildRequest() (api.ListingsRequest, error) {
	filter, err := models.ParseFilter(flagDeal)
	if err != nil {
		return api.ListingsRequest{}, err
	}

	cat, ok := categories[flagCategory]
	if !ok {
		return api.ListingsRequest{}, fmt.Errorf("unknown category %q (one of: apartments, houses, rooms, garages, commercial, plots)", flagCategory)
	}

	req := api.ListingsRequest{
		Filter:   filter,
		Category: cat,
		Rooms:    flagRooms,
		Size:     flagSize,
	}

	if flagRegion != "" {
		r := regions.Get(flagRegion)
		if r == nil {
			return api.ListingsRequest{}, fmt.Errorf("unknown region %q (one of: %s)", flagRegion, strings.Join(regions.Codes(), ", "))
		}
		req.Region = r.Slug
	}

	return req, nil
}

func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

// openDebugLog opens the debug log if configured, falling back to a
// discarding logger.
func openDebugLog(cfg config.Config) (*slog.Logger, func() error) {
	if cfg.DebugLog == "" {
		return debuglog.Discard(), func() error { return nil }
	}
	logger, closeFn, err := debuglog.Open(cfg.DebugLog)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: cannot open debug log: %v\n", err)
		return debuglog.Discard(), func() error { return nil }
	}
	return logger, closeFn
}

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Show the newest listings",
	Long: `Show the newest real-estate listings, newest first.

Filtering:
  --deal, -d <type>      Deal type: all, rent, buy
  --cat, -c <category>   apartments, houses, rooms, garages, commercial, plots
  --region, -g <code>    Region code (see 'immo regions')
  --rooms <n>            Number of rooms

Additional Output:
  --link, -l             Show listing links
  --time, -t             Show listing times
  --watch, -w            Refresh every 60 seconds (full-screen mode)

Examples:
  immo listings                              # Newest apartments, any deal
  immo listings --deal rent --region minsk   # Rentals in Minsk
  immo listings --deal buy --rooms 2         # Two-room flats for sale
  immo listings --cat houses --region brest  # Houses in the Brest region
  immo listings --json                       # JSON for scripting
  immo listings --watch                      # Watch mode with 60s refresh`,
	Args: cobra.NoArgs,
	RunE: runListings,
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List known region codes",
	RunE:  runRegions,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive full-screen TUI",
	Long: `Launch an interactive full-screen terminal UI for browsing listings.

Keyboard:
  Tab            Cycle focus between panels
  h/l or arrows  Move between deal-type chips
  Space/Enter    Apply a deal-type chip / open a listing
  j/k or arrows  Navigate the list
  Esc            Close the detail panel
  r              Refresh
  q              Quit`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, closeLog := openDebugLog(cfg)
	defer func() { _ = closeLog() }()

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	req, err := buildRequest()
	if err != nil {
		return err
	}

	s := store.New(client.Search(req), netcheck.New(), store.WithFilter(req.Filter))
	defer s.Dispose()

	model := tui.New(s, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runWatch runs a continuous refresh loop for watch mode
func runWatch(fetchAndRender func() error) error {
	const refreshInterval = 60 * time.Second

	sigChan := output.SetupSignalHandler()
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	// Hide cursor during watch mode
	output.HideCursor(os.Stdout)
	defer output.ShowCursor(os.Stdout)

	for {
		output.ClearScreen(os.Stdout)

		now := time.Now()
		fmt.Printf("Last update: %s | Next refresh in 60s | Press Ctrl+C to exit\n\n",
			now.Format("15:04:05"))

		if err := fetchAndRender(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		select {
		case <-ticker.C:
			continue
		case <-sigChan:
			output.ClearScreen(os.Stdout)
			fmt.Println("Watch mode ended.")
			return nil
		}
	}
}

func runListings(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Load()

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	req, err := buildRequest()
	if err != nil {
		return err
	}

	// Watch mode
	if flagWatch {
		return runWatch(func() error {
			colors := output.NewColors(getColorMode())
			listings, err := client.GetListings(ctx, req)
			if err != nil {
				return err
			}
			output.RenderListings(os.Stdout, listings, output.TableOptions{
				Colors:   colors,
				ShowLink: flagLink,
				ShowTime: flagTime,
			})
			return nil
		})
	}

	// Raw JSON output
	if flagRawJSON {
		raw, err := client.GetListingsRaw(ctx, req)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	listings, err := client.GetListings(ctx, req)
	if err != nil {
		return err
	}

	// JSON output
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	}

	// Text output with colors
	colors := output.NewColors(getColorMode())
	output.RenderListings(os.Stdout, listings, output.TableOptions{
		Colors:   colors,
		ShowLink: flagLink,
		ShowTime: flagTime,
	})

	return nil
}

func runRegions(cmd *cobra.Command, args []string) error {
	if flagJSON {
		list := make([]regions.Region, 0)
		for _, code := range regions.Codes() {
			list = append(list, *regions.Get(code))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	for _, code := range regions.Codes() {
		r := regions.Get(code)
		fmt.Printf("%-10s %-16s %s\n", r.Code, r.Name, r.Slug)
	}
	return nil
}

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
