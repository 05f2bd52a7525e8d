package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/alok944/event-horizon-college-hub/catalog"
	"github.com/alok944/event-horizon-college-hub/config"
	"github.com/alok944/event-horizon-college-hub/session"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var List = cli.Command{
	Name:  "list",
	Usage: "Lists catalog events matching the given filters",
	Flags: withConfigFlags(
		cli.StringFlag{Name: "search", Usage: "Text to look for in title, description or college"},
		cli.StringFlag{Name: "type", Value: string(horizon.AllTypes), Usage: "Event category, or all"},
		cli.StringFlag{Name: "college", Value: horizon.AllColleges, Usage: "Hosting college"},
		cli.StringFlag{Name: "start", Usage: "Only events starting at or after this date"},
		cli.StringFlag{Name: "virtual", Usage: "true for virtual events only, false for in person only"},
		cli.StringFlag{Name: "sort", Value: string(horizon.SortDateAsc), Usage: sortUsage()},
	),
	Action: listEvents,
}

func listEvents(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()

	provider, closeProvider, err := cfg.OpenProvider(ctx, logger)
	if err != nil {
		return err
	}
	defer closeProvider()

	events, err := provider.LoadEvents(ctx)
	if err != nil {
		return fmt.Errorf("unable to load events: %w", err)
	}

	store, err := catalog.NewStore(events, logger)
	if err != nil {
		return err
	}

	logger.Debug("catalog loaded", zap.Int("eventsCount", store.Len()))

	s := session.New(store, logger)
	if err := applyFlags(s, c); err != nil {
		return err
	}

	printView(os.Stdout, s.View())
	return nil
}

func applyFlags(s *session.Session, c *cli.Context) error {
	for _, field := range []struct{ filter, flag string }{
		{"search", "search"},
		{"type", "type"},
		{"college", "college"},
		{"startDate", "start"},
		{"isVirtual", "virtual"},
	} {
		if err := s.SetFilter(field.filter, c.String(field.flag)); err != nil {
			return err
		}
	}

	return s.SetSortKey(horizon.SortKey(c.String("sort")))
}

// sortUsage lists the accepted sort keys with their labels.
func sortUsage() string {
	options := make([]string, len(horizon.SortKeys))
	for i, k := range horizon.SortKeys {
		options[i] = fmt.Sprintf("%s (%s)", k, k.Label())
	}
	return "One of " + strings.Join(options, ", ")
}

func printView(w io.Writer, view session.View) {
	for _, tab := range view.Tabs {
		fmt.Fprintf(w, "%s (%d)  ", tab.Label, tab.Count)
	}
	fmt.Fprintln(w)

	if view.Status == horizon.StatusEmpty {
		fmt.Fprintln(w, "No events found")
		return
	}

	for _, e := range view.Events {
		fmtTime := e.Date.Format("Jan 2, 2006 at 3:04 PM")
		fmt.Fprintf(w, "[%s] %s: %s @ %s, %s (%s)\n", e.ID, e.Type.Label(), e.Title, fmtTime, e.DisplayLocation(), e.College)
	}
}
