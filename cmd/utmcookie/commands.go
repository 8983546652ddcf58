package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/gatrack/pkg/config"
	"github.com/dmitrymomot/gatrack/pkg/httpserver"
	"github.com/dmitrymomot/gatrack/pkg/logger"
	"github.com/dmitrymomot/gatrack/pkg/requestid"
	"github.com/dmitrymomot/gatrack/pkg/tracker"
	"github.com/dmitrymomot/gatrack/pkg/tracking"
)

type visitorOutput struct {
	UniqueID          uint32    `json:"unique_id" yaml:"unique_id"`
	FirstVisitTime    time.Time `json:"first_visit_time" yaml:"first_visit_time"`
	PreviousVisitTime time.Time `json:"previous_visit_time" yaml:"previous_visit_time"`
	CurrentVisitTime  time.Time `json:"current_visit_time" yaml:"current_visit_time"`
	VisitCount        int       `json:"visit_count" yaml:"visit_count"`
	IPAddress         string    `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	UserAgent         string    `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Locale            string    `json:"locale,omitempty" yaml:"locale,omitempty"`
}

func newVisitorOutput(v *tracking.Visitor) visitorOutput {
	return visitorOutput{
		UniqueID:          v.UniqueID(),
		FirstVisitTime:    v.FirstVisitTime().UTC(),
		PreviousVisitTime: v.PreviousVisitTime().UTC(),
		CurrentVisitTime:  v.CurrentVisitTime().UTC(),
		VisitCount:        v.VisitCount(),
		IPAddress:         v.IPAddress,
		UserAgent:         v.UserAgent,
		Locale:            v.Locale,
	}
}

type sessionOutput struct {
	TrackCount int       `json:"track_count" yaml:"track_count"`
	StartTime  time.Time `json:"start_time" yaml:"start_time"`
}

func newSessionOutput(s *tracking.Session) sessionOutput {
	return sessionOutput{
		TrackCount: s.TrackCount(),
		StartTime:  s.StartTime().UTC(),
	}
}

type cookiesOutput struct {
	UTMA    string        `json:"__utma" yaml:"__utma"`
	UTMB    string        `json:"__utmb" yaml:"__utmb"`
	Visitor visitorOutput `json:"visitor" yaml:"visitor"`
	Session sessionOutput `json:"session" yaml:"session"`
}

func singleArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s takes exactly one cookie value", errUsage, cmd)
	}
	return args[0], nil
}

func decodeUTMA(args []string, enc encoder) error {
	value, err := singleArg("utma", args)
	if err != nil {
		return err
	}
	v, err := tracking.NewVisitor().ExtractFromUTMA(value)
	if err != nil {
		return err
	}
	return enc(newVisitorOutput(v))
}

func decodeUTMB(args []string, enc encoder) error {
	value, err := singleArg("utmb", args)
	if err != nil {
		return err
	}
	s, err := tracking.NewSession().ExtractFromUTMB(value)
	if err != nil {
		return err
	}
	return enc(newSessionOutput(s))
}

func generate(args []string, enc encoder, stderr io.Writer) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ua := fs.String("ua", "", "user agent of the visitor")
	domain := fs.String("domain", "", "cookie domain used for the domain hash")
	res := fs.String("res", "", "screen resolution, e.g. 1920x1080")
	depth := fs.String("depth", "", "screen colour depth in bits")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: new takes no positional arguments", errUsage)
	}

	now := time.Now().Truncate(time.Second)
	clock := tracking.WithClock(func() time.Time { return now })

	v := tracking.NewVisitor(clock)
	v.UserAgent = *ua
	v.ScreenResolution = *res
	v.ScreenColourDepth = *depth

	s := tracking.NewSession(clock)
	v.AddSession(s)
	s.IncrementTrackCount()

	hash := tracker.DomainHash(*domain)
	return enc(cookiesOutput{
		UTMA:    v.UTMA(hash),
		UTMB:    s.UTMB(hash),
		Visitor: newVisitorOutput(v),
		Session: newSessionOutput(s),
	})
}

type serveConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	HTTP    httpserver.Config
	Tracker tracker.Config
}

func serve(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", "", "listen address, overrides HTTP_ADDR")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg serveConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithEnvironment(cfg.Env, "utmcookie"),
		logger.WithContextExtractors(requestid.LoggerExtractor(), tracker.LoggerExtractor()),
	)

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).
		Run(ctx, newRouter(cfg.Tracker, tracker.WithLogger(log)))
}

// newRouter serves the current tracking state of the caller on every path
// except /healthz.
func newRouter(cfg tracker.Config, opts ...tracker.Option) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", httpserver.LivenessHandler())
	r.Group(func(r chi.Router) {
		r.Use(requestid.Middleware)
		r.Use(tracker.Middleware(cfg, opts...))
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			v, _ := tracker.VisitorFromContext(r.Context())
			s, _ := tracker.SessionFromContext(r.Context())
			w.Header().Set("Content-Type", "application/json")
			enc, _ := newEncoder("json", w)
			_ = enc(struct {
				Visitor visitorOutput `json:"visitor"`
				Session sessionOutput `json:"session"`
			}{newVisitorOutput(v), newSessionOutput(s)})
		})
	})
	return r
}
