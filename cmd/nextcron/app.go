package main

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"k8s.io/utils/clock"

	cron "github.com/kaiserkarel/nextcron"
	"github.com/kaiserkarel/nextcron/internal/crontab"
	"github.com/kaiserkarel/nextcron/internal/logging"
	"github.com/kaiserkarel/nextcron/internal/render"
	"github.com/kaiserkarel/nextcron/internal/settings"
)

const (
	// NowArg asks for the current time of day instead of HH:MM.
	NowArg = "now"

	DESCRIPTION = `nextcron reads a crontab of "<minute> <hour> <job-name>" records, where
minute and hour are either "*" or a single value, and prints when every job
runs next, relative to the given time of day:

	HH:MM today|tomorrow <job-name>`
)

// Env is what the command reads from and writes to.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Fs     afero.Fs
	Clock  clock.PassiveClock
}

var flags = []cli.Flag{
	cli.StringFlag{
		Name:  "settings, s",
		Usage: "YAML settings file",
	},
	cli.StringFlag{
		Name:  "log-level, l",
		Usage: "debug, info, warn or error",
	},
	cli.BoolFlag{
		Name:  "sort",
		Usage: "order jobs by next run instead of crontab order",
	},
}

func Execute(args []string, env Env) error {
	app := cli.App{
		Name:        "nextcron",
		HelpName:    "nextcron",
		Usage:       "prints the next run of every crontab job",
		UsageText:   "nextcron [options] <HH:MM|now> <crontab>",
		Description: DESCRIPTION,
		Writer:      env.Stdout,
		ErrWriter:   env.Stderr,
		Flags:       flags,
		HideVersion: true,
		Action: func(ctx *cli.Context) error {
			return run(ctx, env)
		},
	}
	return app.Run(args)
}

func run(ctx *cli.Context, env Env) error {
	if ctx.NArg() < 2 {
		return errors.New("please specify current time HH:MM and config file")
	}
	timeArg, pathArg := ctx.Args().Get(0), ctx.Args().Get(1)

	set, err := settings.Load(env.Fs, ctx.String("settings"))
	if err != nil {
		return err
	}
	if ctx.IsSet("log-level") {
		set.LogLevel = ctx.String("log-level")
	}
	if ctx.Bool("sort") {
		set.Sort = true
	}

	log, err := logging.New(set.LogLevel)
	if err != nil {
		return err
	}
	if extra := ctx.Args()[2:]; len(extra) > 0 {
		log.Info("ignoring extra arguments", "args", extra)
	}

	loc, err := time.LoadLocation(set.Location)
	if err != nil {
		return errors.Wrapf(err, "location %q", set.Location)
	}

	planner, err := cron.New(
		cron.WithLogger(log),
		cron.WithClock(env.Clock),
		cron.WithLocation(loc),
	)
	if err != nil {
		return err
	}

	var reference cron.Occurrence
	if strings.EqualFold(timeArg, NowArg) {
		reference = planner.Now()
	} else if reference, err = cron.ParseTime(timeArg); err != nil {
		return err
	}
	log.V(1).Info("reference time", "time", reference.String())

	jobs, err := crontab.Load(env.Fs, pathArg)
	if err != nil {
		return err
	}
	for _, job := range jobs {
		if err := planner.Add(job); err != nil {
			return err
		}
	}

	results, err := planner.Plan(reference)
	if err != nil {
		return err
	}
	if set.Sort {
		sort.Stable(cron.ByNextRun(results))
	}
	log.Info("resolved jobs", "count", len(results), "crontab", pathArg)

	return render.Text(env.Stdout, results)
}
