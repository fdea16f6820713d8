package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/go-restaurant-finder/internal/api/restaurant"
	"github.com/FACorreiaa/go-restaurant-finder/internal/container"
)

type searchOptions struct {
	city    string
	keyword string
	radius  string
	json    bool
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:     "search",
		Short:   "Search restaurants once and print the listing",
		Example: "  restaurant-finder search --city Springfield --keyword pizza --radius 5",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logs go to stderr so stdout carries only the listing.
			cfg, logger, err := loadConfig(os.Stderr)
			if err != nil {
				return err
			}
			c, err := container.NewContainer(&cfg, logger)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return runSearch(ctx, c.RestaurantService, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.city, "city", "", "city or address to search around")
	cmd.Flags().StringVar(&opts.keyword, "keyword", "", "cuisine or place category, e.g. pizza")
	cmd.Flags().StringVar(&opts.radius, "radius", "", "search radius in whole kilometres")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print restaurants as JSON instead of listing lines")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("keyword")
	_ = cmd.MarkFlagRequired("radius")

	return cmd
}

func runSearch(ctx context.Context, svc restaurant.Service, out, errOut io.Writer, opts searchOptions) error {
	restaurants, err := svc.FindRestaurants(ctx, opts.city, opts.keyword, opts.radius)
	if err != nil {
		title, message := restaurant.UserMessage(err)
		fmt.Fprintf(errOut, "%s: %s\n", title, message)
		return err
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(restaurants)
	}

	for _, line := range restaurant.FormatListing(restaurants) {
		fmt.Fprintln(out, line)
	}
	return nil
}
