package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"klassenbote/calendar"
	"klassenbote/calendar/portal"
	"klassenbote/calendar/vertretung"
	"klassenbote/internal/config"
	"klassenbote/schedule"
	"klassenbote/storage/boltdb"
)

// SourceUnavailableError marks an entire feed as missing or unreadable.
// For the calendar feed this is fatal to the run.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %s", e.Source, e.Err)
}

func (e SourceUnavailableError) Unwrap() error {
	return e.Err
}

var FetchCmd = cli.Command{
	Name:  "fetch",
	Usage: "Fetches the school calendar and substitution plan and rebuilds the weekly schedule",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:   "export",
			Usage:  "Calendar export source, URL or file path",
			EnvVar: "SCHULPORTAL_EXPORT",
		},
		&cli.StringFlag{
			Name:   "vertretung",
			Usage:  "Substitution plan source, URL or file path",
			EnvVar: "SCHULPORTAL_VERTRETUNG",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "Reference date for relevance filtering",
			Value: time.Now().Format("2006-01-02"),
		},
	},
	Action: fetchSchedule,
}

func fetchSchedule(c *cli.Context) error {
	cfg := config.Load()

	exportSrc := stringValue(c, "export")
	if exportSrc == "" {
		exportSrc = cfg.Portal.Export
	}
	planSrc := stringValue(c, "vertretung")
	if planSrc == "" {
		planSrc = cfg.Portal.Vertretung
	}
	if exportSrc == "" {
		return SourceUnavailableError{Source: "kalender", Err: fmt.Errorf("no export source configured")}
	}

	now := time.Now()
	if sf := c.String("date"); sf != "" {
		if parsed, err := time.Parse("2006-01-02", sf); err == nil {
			now = parsed
		}
	}

	var calRows []map[string]string
	var subRows []vertretung.Row

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		rc, err := openSource(ctx, exportSrc, cfg.Portal)
		if err != nil {
			return SourceUnavailableError{Source: "kalender", Err: err}
		}
		defer rc.Close()
		if calRows, err = portal.Read(rc); err != nil {
			return SourceUnavailableError{Source: "kalender", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		if planSrc == "" {
			return nil
		}
		// the substitution feed degrades gracefully
		rc, err := openSource(ctx, planSrc, cfg.Portal)
		if err != nil {
			errFn("Vertretungsplan nicht erreichbar: %s", err)
			return nil
		}
		defer rc.Close()
		if subRows, err = vertretung.Parse(rc, now); err != nil {
			errFn("Vertretungsplan nicht lesbar: %s", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	events := make([]calendar.Event, 0, len(calRows))
	for _, row := range calRows {
		ev, err := calendar.NormalizeCalendarRow(row)
		if err != nil {
			info("Zeile übersprungen: %s", err)
			continue
		}
		events = append(events, ev)
	}

	subs := make([]calendar.Event, 0, len(subRows))
	for _, r := range subRows {
		ev, err := vertretung.Normalize(r, now)
		if err != nil {
			info("%s", err)
		}
		subs = append(subs, ev)
	}

	week := schedule.Aggregate(events, subs, calendar.FromTime(now))
	info("%d Kalendereinträge, %d Vertretungen, %d Zeilen im Wochenplan", len(events), len(subs), week.Actionable())

	if c.GlobalBool("dry-run") {
		raw, err := json.MarshalIndent(week, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		return nil
	}

	st := boltdb.New(boltdb.Config{
		Path:  path.Join(c.GlobalString("path"), boltdb.DefaultFile),
		LogFn: boltdb.LoggerFn(info),
		ErrFn: boltdb.LoggerFn(errFn),
	})
	if err := st.SaveEvents(events); err != nil {
		errFn("Error saving events: %s", err)
	}
	return st.SaveSchedule(week)
}

// openSource reads a feed from a URL or a local file.
func openSource(ctx context.Context, src string, pc config.PortalConfig) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return os.Open(src)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	if pc.Username != "" {
		req.SetBasicAuth(pc.Username, pc.Password)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
	}
	return resp.Body, nil
}
