package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	csvadapter "github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/adapters/csv"
	eventadapter "github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/adapters/events"
	grpcadapter "github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/adapters/grpc"
	httpadapter "github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/adapters/http"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/adapters/memory"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/application"
	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
	"google.golang.org/grpc"
)

// Overrides carries command-line settings that take precedence over the
// config file and environment.
type Overrides struct {
	WithdrawalDisputePolicy string
	SortSnapshotByClient    *bool
}

type Runtime struct {
	cfg     Config
	logger  *slog.Logger
	repos   *memory.Repositories
	service *application.Service
}

// NewRuntime wires the ledger service. The log stream goes to stderr so
// stdout stays free for the account snapshot.
func NewRuntime(ctx context.Context, configPath string, overrides Overrides) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if overrides.WithdrawalDisputePolicy != "" {
		policy := domain.WithdrawalDisputePolicy(overrides.WithdrawalDisputePolicy)
		switch policy {
		case domain.WithdrawalDisputePermissive, domain.WithdrawalDisputeStrict:
			cfg.WithdrawalDisputePolicy = policy
		default:
			return nil, fmt.Errorf("unknown withdrawal dispute policy %q", overrides.WithdrawalDisputePolicy)
		}
	}
	if overrides.SortSnapshotByClient != nil {
		cfg.SortSnapshotByClient = *overrides.SortSnapshotByClient
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	repos := memory.NewRepositories()
	service := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName:             cfg.ServiceID,
			WithdrawalDisputePolicy: cfg.WithdrawalDisputePolicy,
			SortSnapshotByClient:    cfg.SortSnapshotByClient,
		},
		Transactions: repos.Transactions,
		Accounts:     repos.Accounts,
		Audit:        eventadapter.NewLoggingAuditPublisher(logger),
	})

	_ = ctx
	return &Runtime{cfg: cfg, logger: logger, repos: repos, service: service}, nil
}

func (r *Runtime) Service() *application.Service { return r.service }

// RunBatch drains one CSV command stream from input and writes the final
// account snapshot to output.
func (r *Runtime) RunBatch(ctx context.Context, input io.Reader, output io.Writer) (application.ProcessStats, error) {
	source := csvadapter.NewCommandReader(input)
	processor := application.NewProcessor(r.logger, source, r.service)
	stats, err := processor.Run(ctx)
	if err != nil {
		return stats, err
	}

	accounts, err := r.service.Snapshot(ctx)
	if err != nil {
		return stats, err
	}
	if err := csvadapter.NewAccountWriter(output).WriteAll(accounts); err != nil {
		return stats, fmt.Errorf("write snapshot: %w", err)
	}
	r.logger.InfoContext(ctx, "stream processed",
		"accepted", stats.Accepted,
		"rejected", stats.Rejected,
		"malformed", stats.Malformed,
		"accounts", len(accounts),
	)
	return stats, nil
}

// RunServe exposes the read-only inspection API until interrupted.
func (r *Runtime) RunServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := httpadapter.NewHandler(r.service)
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", r.cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	grpcadapter.Register(grpcServer, grpcadapter.NewHealthServer(r.service))
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", r.cfg.GRPCPort))
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()
	r.logger.InfoContext(ctx, "inspection api listening", "http_port", r.cfg.HTTPPort, "grpc_port", r.cfg.GRPCPort)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		r.logger.ErrorContext(ctx, "runtime failure", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	return nil
}
