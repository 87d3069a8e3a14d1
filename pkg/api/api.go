// SPDX-License-Identifier: AGPL-3.0-only

// Package api exposes the relation algebra and chart builders over HTTP.
package api

import (
	"flag"
	"net/http"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/grafana/dskit/server"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/landsense/lucc/pkg/interval"
)

type Config struct {
	HTTPListenAddress string
	HTTPListenPort    int
	GRPCListenAddress string
	GRPCListenPort    int
}

func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&cfg.HTTPListenAddress, "server.http-listen-address", "", "Bind address the HTTP API listens on.")
	f.IntVar(&cfg.HTTPListenPort, "server.http-listen-port", 8080, "Port the HTTP API listens on.")
	f.StringVar(&cfg.GRPCListenAddress, "server.grpc-listen-address", "", "Bind address of the unused gRPC listener the server library opens.")
	f.IntVar(&cfg.GRPCListenPort, "server.grpc-listen-port", 9095, "Port of the unused gRPC listener the server library opens.")
}

// API serves the relation and chart endpoints.
type API struct {
	cfg        Config
	logger     log.Logger
	registerer prometheus.Registerer
	evaluator  *interval.Evaluator
	metrics    *Metrics

	server *server.Server
	done   sync.WaitGroup
}

func New(cfg Config, evaluator *interval.Evaluator, logger log.Logger, registerer prometheus.Registerer) *API {
	return &API{
		cfg:        cfg,
		logger:     logger,
		registerer: registerer,
		evaluator:  evaluator,
		metrics:    NewMetrics(registerer),
	}
}

// RegisterRoutes installs the API routes on the router.
func (a *API) RegisterRoutes(router *mux.Router) {
	router.Path("/api/v1/relations").Methods("GET").HandlerFunc(a.listRelations)
	router.Path("/api/v1/relations/eval").Methods("POST").HandlerFunc(a.evalRelation)
	router.Path("/api/v1/charts/{type}").Methods("POST").HandlerFunc(a.buildChart)
}

// Start sets up the server and runs it in a dedicated goroutine.
func (a *API) Start() error {
	serv, err := server.New(server.Config{
		HTTPListenAddress:             a.cfg.HTTPListenAddress,
		HTTPListenPort:                a.cfg.HTTPListenPort,
		HTTPServerReadTimeout:         30 * time.Second,
		HTTPServerWriteTimeout:        30 * time.Second,
		ServerGracefulShutdownTimeout: 0,

		GRPCListenAddress: a.cfg.GRPCListenAddress,
		GRPCListenPort:    a.cfg.GRPCListenPort,

		MetricsNamespace:        metricsNamespace,
		Registerer:              a.registerer,
		RegisterInstrumentation: true,

		Log: a.logger,
	})
	if err != nil {
		return err
	}

	router := serv.HTTP

	// Health check endpoint.
	router.Path("/").Methods("GET").Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	a.RegisterRoutes(router)

	a.server = serv

	a.done.Add(1)
	go func() {
		defer a.done.Done()

		if err := a.server.Run(); err != nil {
			level.Error(a.logger).Log("msg", "API server failed", "err", err)
		}
	}()

	level.Info(a.logger).Log("msg", "API server is up and running", "httpPort", a.cfg.HTTPListenPort)
	return nil
}

func (a *API) Stop() {
	if a.server == nil {
		return
	}
	a.server.Shutdown()
}

// Await blocks until the server has terminated.
func (a *API) Await() {
	a.done.Wait()
}
