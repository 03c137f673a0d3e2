// Package grpc is the client side of the stringlang.v1.Analyzer service.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	analyzerpb "stringlang/internal/interface/grpc"
	"stringlang/pkg/unicodeblock"
)

var (
	clientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_client_requests_total",
			Help: "Total number of Analyzer client requests",
		},
		[]string{"method", "status"},
	)

	clientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analyzer_client_request_duration_seconds",
			Help:    "Analyzer client request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method"},
	)

	// 0 = closed, 1 = open, 2 = half-open
	clientBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "analyzer_client_circuit_breaker_state",
			Help: "Analyzer client circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)
)

// Client errors. Status codes the server returns are mapped onto these by
// mapGRPCError, so callers can use errors.Is.
var (
	ErrUnavailable        = errors.New("analyzer service unavailable")
	ErrCircuitBreakerOpen = errors.New("analyzer service temporarily disabled (circuit breaker open)")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrTimeout            = errors.New("operation timed out")
)

// Client calls a remote Analyzer through a circuit breaker.
type Client struct {
	conn    *grpc.ClientConn
	client  analyzerpb.AnalyzerClient
	cfg     ClientConfig
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewClient connects to cfg.Address and waits up to cfg.ConnectTimeout for
// the connection to become ready. Extra dial options are appended after the
// insecure transport credentials.
func NewClient(cfg ClientConfig, opts ...grpc.DialOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(cfg.Address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}
	conn.Connect()
	if !waitForConnection(ctx, conn) {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Error("failed to close gRPC connection", slog.Any("error", closeErr))
		}
		return nil, fmt.Errorf("%w: connection timeout", ErrUnavailable)
	}

	bc := cfg.CircuitBreaker
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "analyzer-client",
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < bc.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= bc.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// a rejected argument says nothing about the server's health
			return err == nil || errors.Is(err, ErrInvalidArgument)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			updateBreakerMetric(name, to)
		},
	})

	return &Client{
		conn:    conn,
		client:  analyzerpb.NewAnalyzerClient(conn),
		cfg:     cfg,
		breaker: breaker,
		logger:  slog.Default(),
	}, nil
}

// Analyze returns the remote report for text.
func (c *Client) Analyze(ctx context.Context, text string) (unicodeblock.Report, error) {
	return call(ctx, c, "Analyze", func(ctx context.Context) (unicodeblock.Report, error) {
		out, err := c.client.Analyze(ctx, wrapperspb.String(text))
		if err != nil {
			return unicodeblock.Report{}, mapGRPCError(err)
		}
		return analyzerpb.ListToReport(out)
	})
}

// ListBlocks returns the remote catalog in its order.
func (c *Client) ListBlocks(ctx context.Context) ([]unicodeblock.Block, error) {
	return call(ctx, c, "ListBlocks", func(ctx context.Context) ([]unicodeblock.Block, error) {
		out, err := c.client.ListBlocks(ctx, &emptypb.Empty{})
		if err != nil {
			return nil, mapGRPCError(err)
		}
		blocks := make([]unicodeblock.Block, 0, len(out.GetValues()))
		for _, v := range out.GetValues() {
			f := v.GetStructValue().GetFields()
			blocks = append(blocks, unicodeblock.Block{
				Name: f["name"].GetStringValue(),
				Low:  rune(f["low"].GetNumberValue()),
				High: rune(f["high"].GetNumberValue()),
			})
		}
		return blocks, nil
	})
}

// call runs fn with the per-call timeout behind the breaker and records the
// outcome as "success", "error" or "circuit_breaker_open".
func call[T any](ctx context.Context, c *Client, method string, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		clientRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}()

	result, err := c.breaker.Execute(func() (any, error) { return fn(ctx) })
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			clientRequestsTotal.WithLabelValues(method, "circuit_breaker_open").Inc()
			return zero, ErrCircuitBreakerOpen
		}
		clientRequestsTotal.WithLabelValues(method, "error").Inc()
		c.logger.Warn("analyzer call failed", slog.String("method", method), slog.Any("error", err))
		return zero, err
	}
	clientRequestsTotal.WithLabelValues(method, "success").Inc()
	return result.(T), nil
}

// State reports the circuit breaker state.
func (c *Client) State() gobreaker.State { return c.breaker.State() }

// Close releases the connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// mapGRPCError turns a gRPC status into the package's sentinel errors so
// callers need not import grpc/codes.
func mapGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	switch st.Code() {
	case codes.DeadlineExceeded:
		return ErrTimeout
	case codes.Unavailable:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("analyzer service error: %s", st.Message())
	}
}

func waitForConnection(ctx context.Context, conn *grpc.ClientConn) bool {
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return true
		}
		if !conn.WaitForStateChange(ctx, state) {
			return false
		}
	}
}

func updateBreakerMetric(name string, state gobreaker.State) {
	var value float64
	switch state {
	case gobreaker.StateClosed:
		value = 0
	case gobreaker.StateOpen:
		value = 1
	case gobreaker.StateHalfOpen:
		value = 2
	}
	clientBreakerState.WithLabelValues(name).Set(value)
}
