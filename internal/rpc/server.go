package rpc

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"staffhub/internal/services"
	"staffhub/proto/staffpb"
	"staffhub/proto/tenantpb"
)

// Serve runs the gRPC server on the given port until SIGINT/SIGTERM, then
// drains in-flight calls before returning.
func Serve(port int, tenantService services.TenantService, staffService services.StaffService, logger *zap.Logger) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	s := grpc.NewServer()
	tenantpb.RegisterTenantServiceServer(s, NewTenantServer(tenantService))
	staffpb.RegisterStaffServiceServer(s, NewStaffServer(staffService))

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gRPC server started", zap.Int("port", port))
		errCh <- s.Serve(lis)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down gRPC server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("gRPC server stopped gracefully")
	case <-ctx.Done():
		logger.Warn("graceful stop timed out, forcing shutdown")
		s.Stop()
	}
	return nil
}
