package cmd

import (
	"path"
	"time"

	"github.com/urfave/cli"

	"klassenbote/internal/config"
	"klassenbote/internal/post"
	"klassenbote/schedule"
	"klassenbote/storage/boltdb"
)

var PostCmd = cli.Command{
	Name:  "post",
	Usage: "Renders the schedule message and sends it to the class chat",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "weekly",
			Usage: "Send the week overview instead of the daily message",
		},
		&cli.StringFlag{
			Name:   "time",
			Usage:  "Greeting variant: morgen or nachmittag",
			EnvVar: "KLASSENBOTE_TIME",
		},
		&cli.StringFlag{
			Name:   "target",
			Usage:  "Target chat identifier",
			EnvVar: "TELEGRAM_CHAT_ID",
		},
		&cli.BoolFlag{
			Name:   "send",
			Usage:  "Actually send instead of printing",
			EnvVar: "SEND_MESSAGE",
		},
	},
	Action: postSchedule,
}

func postSchedule(c *cli.Context) error {
	cfg := config.Load()

	st := boltdb.New(boltdb.Config{
		Path:  path.Join(c.GlobalString("path"), boltdb.DefaultFile),
		LogFn: boltdb.LoggerFn(info),
		ErrFn: boltdb.LoggerFn(errFn),
	})
	week, err := st.LoadSchedule()
	if err != nil {
		return err
	}

	now := time.Now()
	tod := schedule.ParseTimeOfDay(stringValue(c, "time"))
	if !c.IsSet("time") && cfg.TimeOfDay != "" {
		tod = schedule.ParseTimeOfDay(cfg.TimeOfDay)
	}

	var text string
	if c.Bool("weekly") {
		text = schedule.RenderWeekly(week, now.Weekday(), tod, cfg.Class)
	} else {
		text = schedule.RenderDaily(week, now.Weekday(), tod, cfg.Class)
	}

	target := stringValue(c, "target")
	if target == "" {
		target = cfg.Telegram.ChatID
	}

	send := (c.Bool("send") || cfg.Send) && !c.GlobalBool("dry-run")

	posters := make([]post.PosterFn, 0)
	if send {
		if cfg.Telegram.BotToken != "" {
			posters = append(posters, post.ToTelegram(post.NewTelegram(cfg.Telegram.BotToken)))
		}
		if cfg.Mastodon.Instance != "" {
			if app, err := LoadMastodonClient(DataPath(), cfg.Mastodon.Instance); err == nil {
				posters = append(posters, post.ToMastodon(app))
			} else {
				errFn("Unable to load mastodon credentials: %s", err)
			}
		}
	}
	if len(posters) == 0 {
		posters = append(posters, post.ToStdout)
	}

	for _, fn := range posters {
		if err := fn(target, text); err != nil {
			return err
		}
	}
	return nil
}
