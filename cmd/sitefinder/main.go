package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"site-finder-service/internal/api/dto"
	"site-finder-service/internal/app"
	"site-finder-service/internal/config"
	"site-finder-service/internal/domain"
	"site-finder-service/internal/platform/obs"
	"site-finder-service/internal/services"
	"strings"
)

// sitefinder runs a single nearby-site query and prints the ranked tree.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "sitefinder:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sitefinder", flag.ContinueOnError)
	ref := fs.String("ref", "", "reference system name (required)")
	kindFlag := fs.String("type", "all", "site type: all, unknown, common, large")
	search := fs.String("search", "", "list systems whose name starts with this prefix and exit")
	asJSON := fs.Bool("json", false, "print JSON instead of a text tree")
	limit := fs.Int("n", 0, "print at most n systems (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(obs.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	components, err := app.Build(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer components.Close()

	if strings.TrimSpace(*search) != "" {
		matches, err := services.SearchSystems(ctx, *search, components.Searcher)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Fprintf(out, "%d\t%s\n", m.ID, m.Name)
		}
		return nil
	}

	if strings.TrimSpace(*ref) == "" {
		fs.Usage()
		return fmt.Errorf("-ref is required")
	}
	kind, err := domain.ParseSiteKind(*kindFlag)
	if err != nil {
		return err
	}

	res, err := services.FindNearbySites(ctx, services.FindNearbyRequest{Reference: *ref, Kind: kind}, components.Locator, components.Catalog)
	if err != nil {
		return err
	}
	if *limit > 0 && len(res.Systems) > *limit {
		res.Systems = res.Systems[:*limit]
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.FromNearbyResult(res))
	}
	return renderTree(out, res)
}
