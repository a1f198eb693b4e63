package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/RedPaladin7/croupier-player/player"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := player.ParseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.ShowVersion {
		fmt.Printf("Croupier Player v%s\n", player.Version)
		os.Exit(0)
	}

	logrus.SetLevel(cfg.LogLevel)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	transport := player.NewUDPTransport(player.ListenAddr(cfg.Local.Port))
	conn, err := transport.Listen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to receive message on port \"%d\".\n", cfg.Local.Port)
		logrus.Errorf("listen on %s: %s", cfg.Local, err)
	}

	session := player.NewSession(cfg.Local, cfg.Name)
	console := player.NewConsole(os.Stdout, os.Stderr)
	hands := player.NewHandTracker()
	listener := player.NewListener(session, transport, console, hands)
	dispatcher := player.NewDispatcher(session, transport, console, hands)

	logrus.WithFields(logrus.Fields{
		"version": player.Version,
		"local":   cfg.Local.String(),
		"name":    cfg.Name,
	}).Info("Croupier player starting")

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	if conn != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := listener.Run(ctx, conn); err != nil {
				logrus.Errorf("listener: %s", err)
			}
		}()
	}

	if cfg.APIListenAddr != "" {
		api := player.NewAPIServer(cfg.APIListenAddr, session, hands, dispatcher)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := api.Run(ctx); err != nil {
				logrus.Errorf("API server: %s", err)
			}
		}()
	}

	if err := dispatcher.Run(os.Stdin); err != nil {
		logrus.Errorf("reading commands: %s", err)
	}
	cancel()
	wg.Wait()
	os.Exit(0)
}
