package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pairboard/pairboard/pkg/api"
	"github.com/pairboard/pairboard/pkg/log"
	"github.com/pairboard/pairboard/pkg/server"
	"github.com/pairboard/pairboard/pkg/sessions"
	"github.com/pairboard/pairboard/pkg/version"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	logLevel := flag.String("log-level", "info", "Log level")
	tlsCertFile := flag.String("tls-cert", "", "TLS certificate file")
	tlsKeyFile := flag.String("tls-key", "", "TLS key file")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting pairboard server version %s", version.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionManager := sessions.NewSessionManager()
	wsServer := server.NewServer(server.NewServerOptions{
		SessionManager: sessionManager,
	})

	var tls *api.TLSConfig
	if *tlsCertFile != "" && *tlsKeyFile != "" {
		tls = &api.TLSConfig{
			CertFile: *tlsCertFile,
			KeyFile:  *tlsKeyFile,
		}
	}

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Addr:     *addr,
		TLS:      tls,
		WSServer: wsServer,
	})
	go apiServer.Start()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
