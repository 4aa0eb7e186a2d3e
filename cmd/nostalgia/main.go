// Nostalgia runs a lobby server for the MCPE 0.x message set over framed TCP
// and, optionally, WebSocket. It does not implement RakNet, so it serves clients
// built on this module rather than the stock game.
//
// Configuration is read from a TOML file (--config or $NOSTALGIA_CONFIG), an
// optional .env file and NOSTALGIA_* variables. Flags override all of them.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/gstoney/mcpeproto"
	"github.com/gstoney/mcpeproto/internal/config"
	"github.com/gstoney/mcpeproto/internal/lobby"
	"github.com/gstoney/mcpeproto/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "nostalgia:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath, addr, wsAddr, logLevel string

	flagSet := pflag.NewFlagSet("nostalgia", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "path to the TOML config file")
	flagSet.StringVar(&addr, "addr", "", "TCP listen address (overrides config)")
	flagSet.StringVar(&wsAddr, "ws-addr", "", "WebSocket listen address (overrides config)")
	flagSet.StringVar(&logLevel, "log-level", "", "trace, debug, info, warn or error")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadEnv(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("addr") {
		cfg.Addr = addr
	}
	if flagSet.Changed("ws-addr") {
		cfg.WSAddr = wsAddr
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.Configure("nostalgia", cfg.LogLevel, os.Stderr)

	codec, err := cfg.Wire.Codec()
	if err != nil {
		return err
	}

	l := lobby.New(cfg, log.With().Str("component", "lobby").Logger())
	srv := &mcpeproto.Server{
		Addr:                 cfg.Addr,
		Transport:            cfg.Transport.TransportConfig(),
		CompressionThreshold: cfg.Transport.CompressionThreshold,
		Codec:                codec,
		Handler:              l.Handle,
		Logger:               log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 2)
	running := 0

	if cfg.Addr != "" {
		running++
		go func() { errc <- srv.ListenAndServe(ctx) }()
	}
	if cfg.WSAddr != "" {
		running++
		go func() { errc <- serveWebSocket(ctx, cfg, srv, log) }()
	}

	log.Info().
		Int32("protocol", cfg.Protocol).
		Str("world", cfg.World.Name).
		Msg("server started")

	var firstErr error
	for i := 0; i < running; i++ {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	log.Info().Strs("online", l.Online()).Msg("server stopped")
	return firstErr
}

func serveWebSocket(ctx context.Context, cfg config.Config, srv *mcpeproto.Server, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle(cfg.WSPath, srv)

	hs := &http.Server{
		Addr:              cfg.WSAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		hs.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.WSAddr).Str("path", cfg.WSPath).Msg("websocket listening")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
