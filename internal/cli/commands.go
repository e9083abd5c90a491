package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/directions"
	"github.com/ambiyansyah-risyal/gmaps/distancematrix"
	"github.com/ambiyansyah-risyal/gmaps/elevation"
	"github.com/ambiyansyah-risyal/gmaps/geocoding"
	"github.com/ambiyansyah-risyal/gmaps/places"
	"github.com/ambiyansyah-risyal/gmaps/timezone"
)

func (a *app) geocodeCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "geocode ADDRESS...",
		Short: "Convert an address into coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.lang()
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			req := geocoding.NewRequest(client).
				WithAddress(strings.Join(args, " ")).
				WithLanguage(lang)
			if region != "" {
				reg, ok := gmaps.ParseRegion(region)
				if !ok {
					return fmt.Errorf("unsupported region %q", region)
				}
				req.WithRegion(reg)
			}

			resp, err := req.Execute(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(resp.Results)
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region bias as a ccTLD, e.g. uk")
	return cmd
}

func (a *app) reverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse LAT,LNG",
		Short: "Convert coordinates into addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(args)
			if err != nil {
				return err
			}
			lang, err := a.lang()
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := geocoding.NewReverseRequest(client).
				WithLatLng(points[0]).
				WithLanguage(lang).
				Execute(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(resp.Results)
		},
	}
}

func (a *app) directionsCmd() *cobra.Command {
	var (
		mode         string
		avoid        []string
		alternatives bool
	)

	cmd := &cobra.Command{
		Use:   "directions FROM TO",
		Short: "Find routes between two locations",
		Long: `Find routes between two locations. Each location is an address, a
"lat,lng" coordinate or "place_id:ID".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			travel, ok := directions.ParseTravelMode(mode)
			if !ok {
				return fmt.Errorf("unsupported travel mode %q", mode)
			}
			avoids, err := parseAvoid(avoid)
			if err != nil {
				return err
			}
			lang, err := a.lang()
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := directions.NewRequest(client, gmaps.ParseLocation(args[0]), gmaps.ParseLocation(args[1])).
				WithTravelMode(travel).
				WithAvoid(avoids...).
				WithAlternatives(alternatives).
				WithLanguage(lang).
				Execute(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(resp.Routes)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "driving", "travel mode: driving, walking, bicycling or transit")
	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "features to avoid: tolls, highways, ferries, indoor")
	cmd.Flags().BoolVar(&alternatives, "alternatives", false, "return alternative routes")
	return cmd
}

func (a *app) distanceCmd() *cobra.Command {
	var (
		origins      []string
		destinations []string
		mode         string
	)

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Compute travel distance and time for a matrix of origins and destinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(origins) == 0 || len(destinations) == 0 {
				return errors.New("at least one --origin and one --destination are required")
			}
			travel, ok := directions.ParseTravelMode(mode)
			if !ok {
				return fmt.Errorf("unsupported travel mode %q", mode)
			}
			lang, err := a.lang()
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := distancematrix.NewRequest(client, parseLocations(origins), parseLocations(destinations)).
				WithTravelMode(travel).
				WithLanguage(lang).
				Execute(cmd.Context())
			if err != nil {
				return err
			}
			for _, f := range resp.Failures() {
				fmt.Fprintf(a.errOut, "origin %d to destination %d: %s\n", f.Origin, f.Destination, f.RawStatus)
			}
			return a.print(resp)
		},
	}
	cmd.Flags().StringArrayVar(&origins, "origin", nil, "origin location (repeatable)")
	cmd.Flags().StringArrayVar(&destinations, "destination", nil, "destination location (repeatable)")
	cmd.Flags().StringVar(&mode, "mode", "driving", "travel mode: driving, walking, bicycling or transit")
	return cmd
}

func (a *app) elevationCmd() *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "elevation LAT,LNG...",
		Short: "Look up elevation at points or sampled along a path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(args)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			req := elevation.NewRequest(client)
			if samples > 0 {
				req.WithPath(samples, points...)
			} else {
				req.WithLocations(points...)
			}
			resp, err := req.Execute(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(resp.Results)
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 0, "sample this many points along the path through the given points")
	return cmd
}

func (a *app) timezoneCmd() *cobra.Command {
	var at int64

	cmd := &cobra.Command{
		Use:   "timezone LAT,LNG",
		Short: "Look up the time zone of a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(args)
			if err != nil {
				return err
			}
			ts := time.Now()
			if at != 0 {
				ts = time.Unix(at, 0)
			}
			lang, err := a.lang()
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := timezone.NewRequest(client, points[0], ts).
				WithLanguage(lang).
				Execute(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}
	cmd.Flags().Int64Var(&at, "at", 0, "unix timestamp to resolve daylight saving for (default now)")
	return cmd
}

func (a *app) placesCmd() *cobra.Command {
	var (
		near   string
		radius int
	)

	cmd := &cobra.Command{
		Use:   "places QUERY...",
		Short: "Search places by free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.lang()
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			req := places.NewTextSearch(client, strings.Join(args, " ")).WithLanguage(lang)
			if near != "" {
				center, err := gmaps.ParseLatLng(near)
				if err != nil {
					return err
				}
				req.WithLocation(center, radius)
			}
			resp, err := req.Execute(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}
	cmd.Flags().StringVar(&near, "near", "", "bias results around LAT,LNG")
	cmd.Flags().IntVar(&radius, "radius", 5000, "bias radius in meters, used with --near")
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	var extended bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if extended {
				return a.print(gmaps.GetVersionInfo())
			}
			_, err := fmt.Fprintln(a.out, gmaps.GetVersion())
			return err
		},
	}
	cmd.Flags().BoolVarP(&extended, "extended", "e", false, "print version metadata as JSON")
	return cmd
}

func parseLocations(args []string) []gmaps.Location {
	locs := make([]gmaps.Location, len(args))
	for i, arg := range args {
		locs[i] = gmaps.ParseLocation(arg)
	}
	return locs
}

func parseAvoid(names []string) ([]directions.Avoid, error) {
	out := make([]directions.Avoid, 0, len(names))
	for _, name := range names {
		v, ok := directions.ParseAvoid(name)
		if !ok {
			return nil, fmt.Errorf("unsupported avoid value %q", name)
		}
		out = append(out, v)
	}
	return out, nil
}
