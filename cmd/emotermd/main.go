// This package contains the main function that executes the emotermd command,
// the emotion detector server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"emoterm/detect"
	"emoterm/infra/watson"
	"emoterm/server"
)

const httpTimeout = 30 * time.Second

var startupMessage = `
Emotion detector started at http://ADDRESS:PORT
POST text to http://ADDRESS:PORT/emotionDetector
Press Ctrl+C to stop the server
`

type serverOpts struct {
	Address   string
	Port      int
	WatsonURL string
	Offline   bool
	Debug     bool
	Color     bool
}

var opts serverOpts

var cmd = &cobra.Command{
	Use:     "emotermd [flags]",
	Short:   "emotermd is the emoterm emotion detection server",
	Run:     run,
	Version: versioninfo.Short(),
}

func init() {
	cmd.Flags().StringVar(&opts.Address, "address", "0.0.0.0", "address to listen on")
	cmd.Flags().IntVar(&opts.Port, "port", 5000, "port to listen on")
	cmd.Flags().StringVar(&opts.WatsonURL, "watson-url", watson.DefaultURL,
		"Watson NLP EmotionPredict endpoint")
	cmd.Flags().BoolVar(&opts.Offline, "offline", false,
		"skip Watson and use only the keyword detector")
	cmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "enable debug log")
	cmd.Flags().BoolVar(&opts.Color, "color", true, "enable color log")
}

func run(cmd *cobra.Command, _ []string) {
	// setup log
	logOpts := new(tint.Options)
	if opts.Debug {
		logOpts.Level = slog.LevelDebug
	}
	logOpts.AddSource = opts.Debug
	logOpts.NoColor = !opts.Color || !isatty.IsTerminal(os.Stdout.Fd())
	logOpts.TimeFormat = "[15:04:05.000]"
	handler := tint.NewHandler(os.Stdout, logOpts)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	var upstream detect.Upstream
	if opts.Offline {
		slog.Info("Running offline, keyword detector only")
	} else {
		upstream = watson.NewClient(opts.WatsonURL)
		slog.Debug("Watson upstream configured", "url", opts.WatsonURL)
	}
	detector := detect.NewDetector(upstream)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		ErrorMessage: "Request timed out",
		Timeout:      httpTimeout,
	}))
	server.Register(e, detector)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	addr := fmt.Sprintf("%v:%v", opts.Address, opts.Port)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped", "error", err)
			cancel()
		}
	}()
	slog.Info("Listening", "address", addr)
	printStartupMessage()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

func printStartupMessage() {
	message := startupMessage
	address := opts.Address
	if address == "0.0.0.0" {
		address = "localhost"
	}
	message = strings.ReplaceAll(message, "ADDRESS", address)
	message = strings.ReplaceAll(message, "PORT", fmt.Sprint(opts.Port))
	fmt.Println(message)
}

func main() {
	// loading .env: environment variables have precedence over the file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}
	cobra.CheckErr(cmd.Execute())
}
