// Command storefront is a terminal client for the ShopWave storefront service.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	storefrontv1 "github.com/fekuna/shopwave-storefront/api/storefront/v1"
	"github.com/fekuna/shopwave-storefront/internal/middleware"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

var errNoSession = errors.New("no session: pass --session or set STOREFRONT_SESSION (create one with `storefront session new`)")

var (
	serverAddr string
	sessionID  string
	timeout    time.Duration

	conn   *grpc.ClientConn
	client storefrontv1.StorefrontServiceClient
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Browse the ShopWave catalog and manage a cart from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conn, err = grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("connect to %s: %w", serverAddr, err)
		}
		client = storefrontv1.NewStorefrontServiceClient(conn)

		if path, err := completionPath(); err == nil {
			offerInstall(&installSlot, path, cmd.InOrStdin(), cmd.OutOrStdout())
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if conn != nil {
			return conn.Close()
		}
		return nil
	},
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", envOr("STOREFRONT_ADDR", "localhost:8086"), "storefront gRPC address")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session", os.Getenv("STOREFRONT_SESSION"), "session id for stateful commands")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "per-call timeout")

	productsCmd.Flags().String("category", "", "only show this category")
	productsCmd.Flags().String("search", "", "case-insensitive title search")

	sessionCmd.AddCommand(sessionNewCmd, sessionEndCmd)
	rootCmd.AddCommand(
		categoriesCmd,
		productsCmd,
		productCmd,
		sessionCmd,
		viewCmd,
		selectCmd,
		searchCmd,
		addCmd,
		cartCmd,
		watchCmd,
		installCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// callContext bounds a call by --timeout.
func callContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

// sessionContext attaches the --session id as x-session-id metadata.
func sessionContext(cmd *cobra.Command) (context.Context, context.CancelFunc, error) {
	if sessionID == "" {
		return nil, nil, errNoSession
	}
	ctx, cancel := callContext(cmd)
	return metadata.AppendToOutgoingContext(ctx, middleware.SessionMetadataKey, sessionID), cancel, nil
}
