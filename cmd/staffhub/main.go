package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"staffhub/internal/config"
	"staffhub/internal/handlers"
	"staffhub/internal/logger"
	"staffhub/internal/repositories"
	"staffhub/internal/rpc"
	"staffhub/internal/services"
	"staffhub/migrations"
	"staffhub/pkg/database"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	rootCmd := &cobra.Command{
		Use:          "staffhub",
		Short:        "Tenant and staff directory service",
		SilenceUsage: true,
	}

	var httpPort int
	httpCmd := &cobra.Command{
		Use:   "http-server",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTTPServer(cmd.Context(), cfg, zlog, httpPort)
		},
	}
	httpCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP listen port")

	var grpcPort int
	grpcCmd := &cobra.Command{
		Use:   "grpc-server",
		Short: "Run the gRPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGRPCServer(cmd.Context(), cfg, zlog, grpcPort)
		},
	}
	grpcCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC listen port")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), cfg, zlog)
		},
	}

	rootCmd.AddCommand(httpCmd, grpcCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runHTTPServer(ctx context.Context, cfg *config.Config, zlog *zap.Logger, port int) error {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	tenantService := services.NewTenantService(repositories.NewTenantRepo(pool))
	staffService := services.NewStaffService(repositories.NewStaffRepo(pool))

	e := handlers.NewRouter(
		handlers.NewHealthHandlers(),
		handlers.NewTenantHandlers(tenantService),
		handlers.NewStaffHandlers(staffService),
		zlog,
	)

	zlog.Info("HTTP server started", zap.Int("port", port))
	return e.Start(fmt.Sprintf(":%d", port))
}

func runGRPCServer(ctx context.Context, cfg *config.Config, zlog *zap.Logger, port int) error {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	tenantService := services.NewTenantService(repositories.NewTenantRepo(pool))
	staffService := services.NewStaffService(repositories.NewStaffRepo(pool))

	return rpc.Serve(port, tenantService, staffService, zlog)
}

func runMigrations(ctx context.Context, cfg *config.Config, zlog *zap.Logger) error {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	zlog.Info("running migrations")
	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		return err
	}
	zlog.Info("migrations completed")
	return nil
}
