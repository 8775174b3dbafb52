package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"
	"k8s.io/klog/v2"

	"givenergyexporter/pkg/exposition"
	"givenergyexporter/pkg/register"
)

// Poller produces one full metric set per call. Every scrape triggers a
// fresh poll of the inverter, so the exposed values are never cached.
type Poller interface {
	PollOnce(ctx context.Context) ([]register.Metric, error)
}

type Server struct {
	Router *gin.Engine
	Listen string
	Poller Poller

	lastPoll  atomic.Time
	lastError atomic.Error
}

func NewServer(router *gin.Engine, listen string, poller Poller) *Server {
	s := &Server{
		Router: router,
		Listen: listen,
		Poller: poller,
	}
	s.installHandlers()
	return s
}

func (s *Server) installHandlers() {
	s.Router.GET("/metrics", s.metrics)
	s.Router.GET("/healthz", s.healthz)
}

func (s *Server) metrics(c *gin.Context) {
	metrics, err := s.Poller.PollOnce(c.Request.Context())
	s.lastError.Store(err)
	if err != nil {
		klog.ErrorS(err, "Poll failed")
		c.String(http.StatusBadGateway, "poll failed: %v\n", err)
		return
	}
	s.lastPoll.Store(time.Now())

	c.Writer.Header().Set("Content-Type", "text/plain; version=0.0.4")
	c.Status(http.StatusOK)
	if err := exposition.Render(c.Writer, metrics, time.Now()); err != nil {
		klog.ErrorS(err, "Render failed")
	}
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.lastError.Load(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	body := gin.H{"status": "ok"}
	if at := s.lastPoll.Load(); !at.IsZero() {
		body["lastPoll"] = at.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, body)
}

// Serve starts the listener and returns the shutdown closure.
func (s *Server) Serve() (func(ctx context.Context), error) {
	srv := &http.Server{
		Addr:    s.Listen,
		Handler: s.Router,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			klog.Error(err)
		}
	}()

	return func(ctx context.Context) {
		srv.SetKeepAlivesEnabled(false)
		if err := srv.Shutdown(ctx); err != nil {
			klog.Error(err)
		}
	}, nil
}
