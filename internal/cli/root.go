// Package cli implements the gmaps command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/internal/config"
)

// app carries the global flags and output streams shared by every command.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfgFile  string
	key      string
	logLevel string
	language string

	// extra options are appended after the configured ones
	extra []gmaps.Option
}

// NewRootCommand builds the command tree. extra options are applied to every
// client the commands create, after the loaded configuration.
func NewRootCommand(out, errOut io.Writer, extra ...gmaps.Option) *cobra.Command {
	a := &app{out: out, errOut: errOut, extra: extra}

	root := &cobra.Command{
		Use:   "gmaps",
		Short: "Query the Google Maps Platform web services",
		Long: `gmaps calls the Google Maps Platform web services and prints the decoded
response as JSON.

The API key and client behaviour come from a YAML config file, GMAPS_*
environment variables and the flags below, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default $"+config.PathEnvVar+")")
	root.PersistentFlags().StringVar(&a.key, "key", "", "API key (overrides config and environment)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error or disabled")
	root.PersistentFlags().StringVar(&a.language, "language", "", "language of the results, e.g. en or fr")

	root.AddCommand(
		a.geocodeCmd(),
		a.reverseCmd(),
		a.directionsCmd(),
		a.distanceCmd(),
		a.elevationCmd(),
		a.timezoneCmd(),
		a.placesCmd(),
		a.versionCmd(),
	)
	return root
}

// ExecuteContext runs the command tree against the process streams. ctx
// bounds every call the commands make.
func ExecuteContext(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// client loads the configuration and builds a client from it.
func (a *app) client() (*gmaps.Client, error) {
	overrides := make(map[string]any)
	if a.key != "" {
		overrides["key"] = a.key
	}
	if a.logLevel != "" {
		overrides["log.level"] = a.logLevel
	}

	cfg, err := config.Load(a.cfgFile, overrides)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.Options(cfg.Logger(a.errOut)), a.extra...)
	return gmaps.New(cfg.Key, opts...)
}

// lang resolves --language; an empty flag means the service default.
func (a *app) lang() (gmaps.Language, error) {
	if a.language == "" {
		return gmaps.LanguageUnknown, nil
	}
	l, ok := gmaps.ParseLanguage(a.language)
	if !ok {
		return l, fmt.Errorf("unsupported language %q", a.language)
	}
	return l, nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parsePoints(args []string) ([]gmaps.LatLng, error) {
	points := make([]gmaps.LatLng, 0, len(args))
	for _, arg := range args {
		ll, err := gmaps.ParseLatLng(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		points = append(points, ll)
	}
	return points, nil
}
