// Package cli builds the ray command tree: one binary with a run command
// per process role and an introspection command.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/internal/metrics"
	"github.com/vivi/ray/internal/objstore"
	"github.com/vivi/ray/internal/scheduler"
	"github.com/vivi/ray/internal/worker"
	"github.com/vivi/ray/pkg/types"
)

var log = slog.Default()

// BuildCLI assembles the root command.
func BuildCLI() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ray",
		Short:         "Distributed task-parallel compute runtime",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	root.AddCommand(schedulerCmd(&configPath))
	root.AddCommand(objstoreCmd(&configPath))
	root.AddCommand(workerCmd(&configPath))
	root.AddCommand(infoCmd(&configPath))
	return root
}

func schedulerCmd(configPath *string) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Run the central scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Scheduler.Address = address
			}
			return runScheduler(cfg)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address (host:port)")
	return cmd
}

func runScheduler(cfg Config) error {
	startMetrics(cfg.Metrics)
	collector := metrics.NewCollector()

	ctl := scheduler.NewGrpcControl()
	defer ctl.Close()

	sched := scheduler.New(scheduler.Config{
		DeliveryRetryLimit: cfg.Scheduler.DeliveryRetryLimit,
	}, ctl, ctl, collector)

	lis, err := net.Listen("tcp", cfg.Scheduler.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Scheduler.Address, err)
	}
	grpcServer := grpc.NewServer()
	rayv1.RegisterSchedulerServer(grpcServer, scheduler.NewServer(sched))

	log.Info("scheduler listening",
		"address", cfg.Scheduler.Address, "cluster_id", sched.ClusterID())
	return serveUntilSignal(grpcServer, lis, func() {
		sched.Stop()
	})
}

func objstoreCmd(configPath *string) *cobra.Command {
	var address, schedulerAddr string
	cmd := &cobra.Command{
		Use:   "objstore",
		Short: "Run a per-node object store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.ObjStore.Address = address
			}
			if schedulerAddr != "" {
				cfg.ObjStore.SchedulerAddress = schedulerAddr
			}
			return runObjStore(cfg)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address (host:port)")
	cmd.Flags().StringVar(&schedulerAddr, "scheduler", "", "scheduler address (host:port)")
	return cmd
}

func runObjStore(cfg Config) error {
	startMetrics(cfg.Metrics)
	collector := metrics.NewCollector()

	conn, err := grpc.NewClient(cfg.ObjStore.SchedulerAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial scheduler: %w", err)
	}
	defer conn.Close()

	reply, err := rayv1.NewSchedulerClient(conn).RegisterObjStore(context.Background(),
		&rayv1.RegisterObjStoreRequest{ObjstoreAddress: cfg.ObjStore.Address})
	if err != nil {
		return fmt.Errorf("objstore registration failed: %w", err)
	}

	peers := objstore.NewGrpcPeers()
	defer peers.Close()

	store := objstore.New(
		types.ObjStoreID(reply.ObjstoreId),
		cfg.ObjStore.Address,
		objstore.Config{ChunkSize: cfg.ObjStore.ChunkSizeBytes},
		objstore.NewGrpcReporter(conn),
		peers,
		collector,
	)

	lis, err := net.Listen("tcp", cfg.ObjStore.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ObjStore.Address, err)
	}
	grpcServer := grpc.NewServer()
	rayv1.RegisterObjStoreServer(grpcServer, objstore.NewServer(store))

	log.Info("objstore listening",
		"address", cfg.ObjStore.Address, "objstore_id", reply.ObjstoreId)
	return serveUntilSignal(grpcServer, lis, nil)
}

func workerCmd(configPath *string) *cobra.Command {
	var address, schedulerAddr, objstoreAddr string
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run a worker with the builtin function set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Worker.Address = address
			}
			if schedulerAddr != "" {
				cfg.Worker.SchedulerAddress = schedulerAddr
			}
			if objstoreAddr != "" {
				cfg.Worker.ObjStoreAddress = objstoreAddr
			}
			return runWorker(cfg)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address (host:port)")
	cmd.Flags().StringVar(&schedulerAddr, "scheduler", "", "scheduler address (host:port)")
	cmd.Flags().StringVar(&objstoreAddr, "objstore", "", "co-located object store address (host:port)")
	return cmd
}

func runWorker(cfg Config) error {
	startMetrics(cfg.Metrics)

	schedConn, err := grpc.NewClient(cfg.Worker.SchedulerAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial scheduler: %w", err)
	}
	defer schedConn.Close()
	storeConn, err := grpc.NewClient(cfg.Worker.ObjStoreAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial objstore: %w", err)
	}
	defer storeConn.Close()

	w := worker.New(
		cfg.Worker.Address,
		cfg.Worker.ObjStoreAddress,
		rayv1.NewSchedulerClient(schedConn),
		rayv1.NewObjStoreClient(storeConn),
		builtinRegistry(),
	)

	lis, err := net.Listen("tcp", cfg.Worker.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Worker.Address, err)
	}
	grpcServer := grpc.NewServer()
	rayv1.RegisterWorkerServiceServer(grpcServer, worker.NewServer(w))

	serveErr := make(chan error, 1)
	go func() { serveErr <- grpcServer.Serve(lis) }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Register(ctx); err != nil {
		grpcServer.Stop()
		return err
	}

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	log.Info("worker running", "address", cfg.Worker.Address, "worker_id", uint64(w.ID()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	case err := <-serveErr:
		cancel()
		return err
	case err := <-runErr:
		if err != nil && ctx.Err() == nil {
			grpcServer.Stop()
			return err
		}
	}
	cancel()
	grpcServer.GracefulStop()
	return nil
}

func infoCmd(configPath *string) *cobra.Command {
	var schedulerAddr string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print scheduler and task state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}
			if schedulerAddr != "" {
				cfg.Scheduler.Address = schedulerAddr
			}
			return runInfo(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&schedulerAddr, "scheduler", "", "scheduler address (host:port)")
	return cmd
}

func runInfo(cmd *cobra.Command, cfg Config) error {
	conn, err := grpc.NewClient(cfg.Scheduler.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial scheduler: %w", err)
	}
	defer conn.Close()
	client := rayv1.NewSchedulerClient(conn)

	info, err := client.SchedulerInfo(cmd.Context(), &rayv1.SchedulerInfoRequest{})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cluster:      %s\n", info.ClusterId)
	fmt.Fprintf(out, "queued tasks: %v\n", info.Operationid)
	fmt.Fprintf(out, "idle workers: %v\n", info.AvailWorker)
	fmt.Fprintf(out, "functions:\n")
	for _, fn := range info.Function {
		fmt.Fprintf(out, "  %s arity=%d workers=%v\n", fn.Name, fn.NumReturnVals, fn.WorkerId)
	}

	tasks, err := client.TaskInfo(cmd.Context(), &rayv1.TaskInfoRequest{})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "tasks:\n")
	for _, t := range tasks.Task {
		line := fmt.Sprintf("  #%d %s %s worker=%d", t.OperationId, t.FunctionName, t.Status, t.WorkerId)
		if t.ErrorMessage != "" {
			line += " error=" + t.ErrorMessage
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// startMetrics exposes /metrics when enabled, on its own goroutine.
func startMetrics(cfg MetricsConfig) {
	if !cfg.Enabled {
		return
	}
	go func() {
		if err := metrics.StartServer(cfg.Port); err != nil {
			log.Error("metrics server failed", "error", err)
		}
	}()
}

// serveUntilSignal runs a gRPC server until SIGINT/SIGTERM, then shuts it
// down gracefully and runs the optional cleanup.
func serveUntilSignal(s *grpc.Server, lis net.Listener, cleanup func()) error {
	serveErr := make(chan error, 1)
	go func() { serveErr <- s.Serve(lis) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
		s.GracefulStop()
		if cleanup != nil {
			cleanup()
		}
		return nil
	case err := <-serveErr:
		return err
	}
}
