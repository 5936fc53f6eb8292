package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/coachdesk/coachdesk/config"
	"github.com/coachdesk/coachdesk/internal/adminapi"
	"github.com/coachdesk/coachdesk/internal/app"
	"github.com/coachdesk/coachdesk/internal/payment"
	"github.com/coachdesk/coachdesk/internal/webapi"
	"github.com/coachdesk/coachdesk/internal/webserver"
)

var (
	h     = flag.Bool("h", false, "help usage")
	cfile = flag.String("c", "coachdesk.yml", "config file")
)

func main() {
	flag.Parse()
	if *h {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.LoadConfig(*cfile)

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	gateway := payment.NewGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.BaseURL)

	ws := webserver.NewWebServer(cfg)
	webapi.Register(ws, application.Store(), gateway, application.Bus())
	adminapi.Register(ws, application.Store())

	errCh := make(chan error, 1)
	go func() {
		errCh <- ws.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zap.S().Errorf("http server error: %v", err)
	case sig := <-sigCh:
		zap.S().Infof("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := ws.Shutdown(ctx); err != nil {
			zap.S().Errorf("shutdown error: %v", err)
		}
	}
}
