package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hostsmith/hostsmith/src/internal/api"
	"github.com/hostsmith/hostsmith/src/internal/builder"
	"github.com/hostsmith/hostsmith/src/internal/config"
	"github.com/hostsmith/hostsmith/src/internal/dnsserver"
	"github.com/hostsmith/hostsmith/src/internal/log"
)

const shutdownTimeout = 10 * time.Second

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}
	return gc
}

// ServeCommand runs an initial build and then keeps the HTTP API and the
// DNS sinkhole online until interrupted.
type ServeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	bindAddr string
}

func (g *ServeCommand) Name() string {
	return g.fs.Name()
}

func (g *ServeCommand) Init(args []string, ctx *AppContext) error {
	g.fs.StringVar(&g.bindAddr, "bind", "", "API listen address (overrides api.listen from config)")

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	if g.bindAddr == "" {
		g.bindAddr = cfg.GetAPIListen()
	}

	return g.cfg.ValidateSourcesPresent()
}

func (g *ServeCommand) Run() error {
	b := builder.New(g.cfg)

	result, err := b.Build()
	if err != nil {
		return err
	}
	log.Infof("Initial build done: %d unique domains in %s", result.UniqueCount, result.OutputPath)

	var sinkhole *dnsserver.Sinkhole
	if g.cfg.DNS != nil && g.cfg.DNS.Enable {
		sinkhole, err = dnsserver.NewSinkhole(g.cfg.GetDNSListenAddr(), g.cfg.GetDNSListenPort(), g.cfg.General.TargetIP)
		if err != nil {
			return err
		}
		sinkhole.SetHostnames(result.Hostnames())
	}

	onBuild := func(r *builder.Result) {
		if sinkhole != nil {
			sinkhole.SetHostnames(r.Hostnames())
		}
	}

	handler := api.NewHandler(g.cfg, b, onBuild)
	handler.SetLastBuild(result)
	server := api.NewServer(g.bindAddr, handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	apiRunner := NewRestartableRunner(RunnerConfig{Name: "api-server"}, func(ctx context.Context) error {
		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		select {
		case <-ctx.Done():
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			return server.Stop(shutdownCtx)
		case err := <-errCh:
			return err
		}
	})

	if err := apiRunner.Start(ctx); err != nil {
		return err
	}

	var dnsRunner *RestartableRunner
	if sinkhole != nil {
		dnsRunner = NewRestartableRunner(RunnerConfig{Name: "dns-sinkhole"}, func(ctx context.Context) error {
			if err := sinkhole.Start(); err != nil {
				return err
			}
			<-ctx.Done()
			sinkhole.Stop()
			return nil
		})
		if err := dnsRunner.Start(ctx); err != nil {
			stopRunner(apiRunner)
			return err
		}
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-shutdown
	log.Infof("Received signal %v, shutting down...", sig)

	cancel()
	if dnsRunner != nil {
		stopRunner(dnsRunner)
	}
	stopRunner(apiRunner)

	return nil
}

func stopRunner(r *RestartableRunner) {
	if err := r.Stop(); err != nil {
		log.Errorf("Failed to stop runner: %v", err)
	}
}
