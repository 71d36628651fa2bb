package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/cloudflare/tableflip"
	"github.com/infinitybotlist/eureka/genconfig"
	"github.com/kulthx/botconfig/config"
	"github.com/kulthx/botconfig/webserver"
	"github.com/kulthx/botconfig/webserver/state"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "botconfig",
	Short:         "Bot token and config service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWebserver,
}

var webserverCmd = &cobra.Command{
	Use:   "webserver",
	Short: "Starts the webserver",
	RunE:  runWebserver,
}

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Writes a sample config file",
	Run: func(cmd *cobra.Command, args []string) {
		genconfig.GenConfig(config.Config{})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the config file")
	rootCmd.AddCommand(webserverCmd, genconfigCmd)
}

func runWebserver(cmd *cobra.Command, args []string) error {
	s, err := state.Setup(configPath)

	if err != nil {
		return err
	}

	defer s.Logger.Sync()

	r := webserver.CreateWebserver(s)

	addr := ":" + strconv.Itoa(s.Config.Meta.Port)

	// If GOOS is windows, do normal http server
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		s.Logger.Warn("Tableflip not supported on this platform, this is not a production-capable server.")
		return http.ListenAndServe(addr, r)
	}

	upg, err := tableflip.New(tableflip.Options{})

	if err != nil {
		return err
	}

	defer upg.Stop()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP)
		for range sig {
			s.Logger.Info("Received SIGHUP, upgrading server")
			if err := upg.Upgrade(); err != nil {
				s.Logger.Error("Upgrade failed", zap.Error(err))
			}
		}
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		s.Logger.Info("Shutting down")
		upg.Stop()
	}()

	// Listen must be called before Ready
	ln, err := upg.Listen("tcp", addr)

	if err != nil {
		s.Logger.Error("Error binding to socket", zap.Error(err))
		return err
	}

	defer ln.Close()

	server := http.Server{
		ReadTimeout: 30 * time.Second,
		Handler:     r,
	}

	go func() {
		err := server.Serve(ln)
		if err != http.ErrServerClosed {
			s.Logger.Error("Server failed due to unexpected error", zap.Error(err))
		}
	}()

	if err := upg.Ready(); err != nil {
		s.Logger.Error("Error calling upg.Ready", zap.Error(err))
		return err
	}

	s.Logger.Info("Listening", zap.String("addr", addr), zap.String("base_path", s.Config.Meta.BasePath))

	<-upg.Exit()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
