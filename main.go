// portal-berita
// =============
// A small content-publishing API: categories and articles held in an
// in-memory store, exposed over REST.
//
// Boot the server:
// ----------------
// $ go run main.go
//
// Client requests:
// ----------------
// $ curl http://localhost:3333/categories
// $ curl http://localhost:3333/categories/technology/articles
// $ curl http://localhost:3333/articles/latest?limit=5
// $ curl http://localhost:3333/articles/global-climate-summit-agreement
// $ curl "http://localhost:3333/search?q=inflation"
//
// Prometheus metrics are served from the diag port:
// $ curl http://localhost:9999/metrics
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"

	"github.com/habiutomo/portal-berita/internal/article"
	"github.com/habiutomo/portal-berita/internal/category"
	appconfig "github.com/habiutomo/portal-berita/internal/config"
	"github.com/habiutomo/portal-berita/internal/store"
)

const ServiceName = "portal-berita"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

type App struct {
	sugarLogger *zap.SugaredLogger
}

func main() {
	cfg := appconfig.Load()

	var (
		routes   = flag.Bool("routes", appconfig.GetEnvBool("PORTAL_ROUTES", false), "Generate router documentation")
		addr     = flag.String("addr", cfg.Addr, "application port")
		diagAddr = flag.String("diag_addr", cfg.DiagAddr, "diag port")
	)

	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	a := App{
		sugarLogger: sugar,
	}

	st := store.New()
	if err := store.Seed(st); err != nil {
		sugar.Fatalw("seeding failed", "error", err)
	}
	sugar.Infow("store seeded",
		"categories", len(st.Categories()),
		"articles", len(st.Articles()),
	)

	promConfig := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(promConfig.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)
	exporter, err := prometheus.New(promConfig, c)
	if err != nil {
		a.sugarLogger.Panicf("failed to initialize prometheus exporter %v", err)
	}
	global.SetMeterProvider(exporter.MeterProvider())

	meter := global.Meter(ServiceName)
	labels := []attribute.KeyValue{
		attribute.String("service", ServiceName),
	}
	requestsCompleted := metric.Must(meter).NewInt64Counter(
		"http/server/completed_count",
		metric.WithDescription("Count of completed requests"),
	).Bind(labels...)
	defer requestsCompleted.Unbind()

	r := chi.NewRouter()

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	r.Use(middleware.RequestID)
	r.Use(a.Logger)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler)
	r.Use(countCompleted(requestsCompleted))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("portal-berita."))
		if err != nil {
			sugar.Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logger := r.Context().Value(CtxKeyLogger).(*zap.SugaredLogger)
		logger.Infow("ping")
		_, err := w.Write([]byte("pong"))
		if err != nil {
			sugar.Errorw(err.Error())
		}
	})

	articles := article.NewHandler(st, sugar)
	categories := category.NewHandler(st, sugar)

	r.Mount("/articles", articles.Routes())
	r.Mount("/categories", categories.Routes())
	r.Get("/search", articles.Search) // GET /search?q=text

	// Passing -routes to the program will generate docs for the above
	// router definition.
	if *routes {
		// nolint
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/habiutomo/portal-berita",
			Intro:       "portal-berita generated routes.",
		}))

		return
	}

	srv := &http.Server{
		Addr:         *addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		err := http.ListenAndServe(*diagAddr, diagRouter)
		if err != nil && err != http.ErrServerClosed {
			a.sugarLogger.Errorw(err.Error())
		}
	}()

	go func() {
		sugar.Infow("listening", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.sugarLogger.Fatalw(err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.sugarLogger.Errorw("shutdown error", "error", err)
	}
}

// Logger injects the application logger into each request context.
func (a *App) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, a.sugarLogger)))
	})
}

// countCompleted increments the bound counter after each request finishes.
func countCompleted(counter metric.BoundInt64Counter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			counter.Add(r.Context(), 1)
		})
	}
}
