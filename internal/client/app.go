package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-content-keeper/internal/app"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/service"
	"github.com/MKhiriev/go-content-keeper/internal/tui"
	"github.com/MKhiriev/go-content-keeper/internal/workers"
	"github.com/MKhiriev/go-content-keeper/models"
	"golang.org/x/sync/errgroup"
)

const usage = `usage: content-keeper [flags] <entity> <command> [args]

entities: posts, categories, subcategories, items
commands:
  list                  load from the server and print the collection
  create <json|->       create a record
  update <id> <json|->  update a record
  delete <id>...        delete records
  watch                 print mutation events, refreshing periodically
  panel                 open the interactive panel
  reset                 drop the local copy of the collection

  content-keeper version  print build information
  content-keeper reset    drop every local collection

flags: -e endpoint  -t timeout  -token token  -storage backend  -d dsn
       -redis-url url  -redis-prefix prefix  -refresh-interval d
       -log-level level  -log-file path  -c config.json`

type App struct {
	services  *service.ContentServices
	workers   *workers.Workers
	tui       *tui.TUI
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

var _ Client = (*App)(nil)

func NewApp(
	services *service.ContentServices,
	ui *tui.TUI,
	bgWorkers *workers.Workers,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*App, error) {
	if services == nil {
		return nil, errors.New("client: nil services")
	}
	if bgWorkers == nil {
		bgWorkers = workers.NewWorkers()
	}

	return &App{
		services:  services,
		workers:   bgWorkers,
		tui:       ui,
		buildInfo: buildInfo,
		logger:    log,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}, nil
}

// Run implements Client. Failures are reported to the user on stderr in
// the same wording the panel uses, and returned.
func (a *App) Run(ctx context.Context, args []string) error {
	err := a.dispatch(ctx, args)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsage), errors.Is(err, ErrUnknownEntity):
			fmt.Fprintf(a.errOut, "%v\n\n%s\n", err, usage)
		default:
			fmt.Fprintln(a.errOut, app.UserMessage(err))
		}
		a.logger.Err(err).Str("func", "App.Run").Strs("args", args).Msg("command failed")
	}
	return err
}

// Close stops every synchronizer.
func (a *App) Close() error {
	return a.services.Close()
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}
	switch args[0] {
	case "version":
		_, err := fmt.Fprint(a.out, a.buildInfo.String())
		return err
	case "reset":
		if err := a.services.Reset(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(a.out, "dropped all local collections")
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: missing command for %q", ErrUsage, args[0])
	}

	entity, ok := models.ParseEntity(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEntity, args[0])
	}

	cmd, rest := args[1], args[2:]
	switch entity {
	case models.EntityPost:
		return runCommand(ctx, a, a.services.Posts, cmd, rest)
	case models.EntityCategory:
		return runCommand(ctx, a, a.services.Categories, cmd, rest)
	case models.EntitySubCategory:
		return runCommand(ctx, a, a.services.SubCategories, cmd, rest)
	default:
		return runCommand(ctx, a, a.services.Items, cmd, rest)
	}
}

func runCommand[T models.Record, I any](
	ctx context.Context,
	a *App,
	sync service.Synchronizer[T, I],
	cmd string,
	args []string,
) error {
	switch cmd {
	case "list":
		return list(ctx, a.out, sync)
	case "create":
		return create(ctx, a.in, a.out, sync, args)
	case "update":
		return update(ctx, a.in, a.out, sync, args)
	case "delete":
		return remove(ctx, a.out, sync, args)
	case "reset":
		return reset(ctx, a.out, sync)
	case "watch":
		return a.withWorkers(ctx, func(ctx context.Context) error {
			return watch(ctx, a.out, sync)
		})
	case "panel":
		if a.tui == nil {
			return fmt.Errorf("%w: panel is not available", ErrUsage)
		}
		return a.withWorkers(ctx, func(ctx context.Context) error {
			return a.tui.Panel(ctx, sync.Entity())
		})
	}
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// withWorkers runs fn next to the background workers and stops the workers
// once fn returns.
func (a *App) withWorkers(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.workers.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return fn(gctx)
	})
	return g.Wait()
}
