package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	apidata "github.com/vicharak-in/tlinker/api/data"
	apiruns "github.com/vicharak-in/tlinker/api/runs"
	apischedule "github.com/vicharak-in/tlinker/api/schedule"
	apiselections "github.com/vicharak-in/tlinker/api/selections"
	"github.com/vicharak-in/tlinker/config"
	coremetrics "github.com/vicharak-in/tlinker/core/metrics"
	"github.com/vicharak-in/tlinker/core/runlog"
	"github.com/vicharak-in/tlinker/core/schedule"
	"github.com/vicharak-in/tlinker/infra/logger"
	"github.com/vicharak-in/tlinker/infra/metrics"
	"github.com/vicharak-in/tlinker/internal/dataset"
)

// Service orchestrates the dataset store, the scheduling engine and the
// HTTP API.
type Service struct {
	Store   *dataset.Store
	Engine  *schedule.Engine
	Runs    runlog.Store
	handler *apischedule.Handler
	cfg     *config.Config
	log     logger.Logger
	srv     *http.Server
}

// New creates a Service from the configuration. The dataset directory is
// loaded when configured; otherwise the bundled sample data is seeded.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	store := dataset.NewStore()
	if cfg.Data.Dir != "" {
		if err := dataset.LoadDir(store, cfg.Data.Dir); err != nil {
			return nil, fmt.Errorf("load data dir: %w", err)
		}
		logg.Infof("loaded datasets from %s", cfg.Data.Dir)
	} else {
		if err := dataset.Seed(store); err != nil {
			return nil, fmt.Errorf("seed sample data: %w", err)
		}
		logg.Infof("seeded bundled sample data")
	}

	var runs runlog.Store = runlog.NopStore{}
	if cfg.RunLog.Path != "" {
		s, err := runlog.NewJSONLStore(cfg.RunLog.Path,
			cfg.RunLog.MaxSizeMB, cfg.RunLog.MaxBackups, cfg.RunLog.MaxAgeDays)
		if err != nil {
			return nil, fmt.Errorf("run log: %w", err)
		}
		runs = s
	}

	eng := schedule.New(logger.New("engine"), sink)
	svc := &Service{
		Store:   store,
		Engine:  eng,
		Runs:    runs,
		handler: apischedule.NewHandler(store, eng, runs, logg),
		cfg:     cfg,
		log:     logg,
	}
	return svc, nil
}

func (s *Service) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			s.log.Errorf("write health: %v", err)
		}
	})
	mux.Handle("/api/data/", apidata.NewHandler(s.Store, s.log))
	mux.Handle("/api/add_row/", apidata.NewAddRowHandler(s.Store, s.log))
	mux.Handle("/api/remove_row/", apidata.NewRemoveRowHandler(s.Store, s.log))
	mux.Handle("/api/upload/", apidata.NewUploadHandler(s.Store, s.log))
	mux.Handle("/api/selections", apiselections.NewHandler(s.Store, s.log))
	mux.Handle("/api/generate", s.handler.Generate())
	mux.Handle("/api/timetable", s.handler.Timetable())
	mux.Handle("/api/export/", s.handler.Export())
	mux.Handle("/api/report", s.handler.Report())
	mux.Handle("/api/runs", apiruns.NewHandler(s.Runs, s.cfg.HTTP.APIToken))
	return mux
}

// Run starts the HTTP API and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	ln, err := net.Listen("tcp", s.cfg.HTTP.Addr)
	if err != nil {
		return err
	}
	s.srv = &http.Server{Handler: s.routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("shutdown server: %v", err)
		}
		cancel()
	}()
	s.log.Infof("API server listening on %s", ln.Addr())
	err = s.srv.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close releases resources held by the service.
func (s *Service) Close() error { return s.Runs.Close() }
