package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zgz/product-service/internal/constants"
	"github.com/zgz/product-service/internal/log"
	product "github.com/zgz/product-service/product/cmd"
)

func Start() {
	logger := log.InitLogger(fmt.Sprintf("/var/log/%s.log", constants.AppProductService)).
		With().
		Str(log.KeyAppName, constants.AppProductService).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: constants.AppProductService}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "product",
		Short: "Run product service",
		Run: func(cmd *cobra.Command, args []string) {
			product.RunProductService(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
