package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tradingiq/bybit-client/interfaces"
	"github.com/tradingiq/bybit-client/internal/config"
	"github.com/tradingiq/bybit-client/internal/sink"
	"github.com/tradingiq/bybit-client/internal/telemetry"
	"github.com/tradingiq/bybit-client/types"
	"github.com/tradingiq/bybit-client/websocket"
)

const shutdownTimeout = 5 * time.Second

func newStreamCommand(root *rootOptions) *cobra.Command {
	var (
		count  int
		topics []string
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Subscribe to topics and publish the events they yield",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(root)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if len(topics) > 0 {
				cfg.Stream.Topics = topics
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runStream(cmd.Context(), cfg, log, count)
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many events (0 streams until interrupted)")
	cmd.Flags().StringSliceVar(&topics, "topic", nil, "topic to subscribe to, overrides stream.topics (repeatable)")
	return cmd
}

func runStream(ctx context.Context, cfg *config.Config, log *zap.Logger, count int) error {
	if cfg.Telemetry.Endpoint != "" {
		shutdown, err := telemetry.InitTracer(ctx, telemetry.Config{
			Endpoint:    cfg.Telemetry.Endpoint,
			ServiceName: cfg.ServiceName,
			Insecure:    cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	channels, err := cfg.Stream.Channels()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := []websocket.ClientOption{
		websocket.WithPingInterval(cfg.Stream.PingInterval),
		websocket.WithDialTimeout(cfg.Stream.DialTimeout),
		websocket.WithMetrics(websocket.NewMetrics(registry)),
	}
	if cfg.Stream.APIKey != "" {
		opts = append(opts, websocket.WithCredentials(cfg.Stream.APIKey, cfg.Stream.APISecret))
	}
	client := websocket.NewClient(cfg.Stream.Host, log.Named("ws"), opts...)

	sinks := sink.Multi{sink.NewLog(log.Named("events"))}
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := sink.NewKafka(cfg.Kafka, log.Named("kafka"))
		if err != nil {
			return err
		}
		sinks = append(sinks, kafka)
	}
	defer func() {
		if err := sinks.Close(); err != nil {
			log.Warn("Failed to close sinks", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		g.Go(func() error {
			log.Info("Serving metrics", zap.String("addr", cfg.Metrics.Addr), zap.String("path", cfg.Metrics.Path))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer cancel()
		return stream(ctx, client, channels, sinks, count, log)
	})

	return g.Wait()
}

// stream connects, subscribes and forwards events to sink until ctx is done
// or count events were published.
func stream(ctx context.Context, client interfaces.StreamClient, channels []types.Channel, sink interfaces.EventSink, count int, log *zap.Logger) error {
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Subscribe(ctx, channels...); err != nil {
		return err
	}

	for n := 0; count <= 0 || n < count; {
		event, err := client.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var decodeErr *websocket.DecodeError
			if errors.As(err, &decodeErr) {
				log.Warn("Skipping undecodable frame", zap.Error(err))
				continue
			}
			return err
		}

		if err := sink.Publish(ctx, event); err != nil {
			return err
		}
		n++
	}

	log.Info("Event limit reached", zap.Int("count", count))
	if err := client.UnsubscribeAll(ctx); err != nil {
		log.Warn("Failed to unsubscribe", zap.Error(err))
	}
	return nil
}
