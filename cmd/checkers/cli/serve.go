package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkers/internal/bot"
	"checkers/internal/http"
	"checkers/internal/processor"
	"checkers/internal/service"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const gracefulShutdownTimeout = 5 * time.Second

func Serve() *cobra.Command {
	var (
		host    string
		port    int
		dev     bool
		pidPath string
		pidLock bool
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host games over an HTTP API",
		Long: heredoc.Doc(`
			serve hosts games in memory behind a JSON API:

			  POST   /api/v1/games                 create a game
			  GET    /api/v1/games/:gameId         game state
			  POST   /api/v1/games/:gameId/moves   {"move": "3 6 4 5"} or {"move": "bot"}
			  GET    /api/v1/games/:gameId/board   ASCII board
			  DELETE /api/v1/games/:gameId         remove a game
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if pidLock && pidPath == "" {
				return fmt.Errorf("--pid-lock requires --pid")
			}
			if pidPath != "" {
				release, err := writePIDFile(pidPath, pidLock)
				if err != nil {
					return fmt.Errorf("failed to manage PID file: %w", err)
				}
				defer release()
				logrus.Infof("PID file created at: %s (lock: %v)", pidPath, pidLock)
			}

			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			svc := service.New()
			proc := processor.New(svc, bot.NewRandom(seed))
			app := http.NewFiberApp(proc, svc, dev)

			addr := fmt.Sprintf("%s:%d", host, port)
			listenErr := make(chan error, 1)
			go func() {
				logrus.Infof("API listening on: http://%s", addr)
				logrus.Infof("API endpoints: http://%s/api/v1/games", addr)
				if dev {
					logrus.Info("Rate limit: 20 requests/second per IP (dev mode)")
				}
				listenErr <- app.Listen(addr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-listenErr:
				svc.Shutdown()
				return fmt.Errorf("API server listen error: %w", err)
			case <-quit:
			case <-cmd.Context().Done():
			}

			logrus.Info("Shutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
			defer cancel()

			if err := app.ShutdownWithContext(ctx); err != nil {
				logrus.Warnf("Server forced to shutdown: %v", err)
			}
			svc.Shutdown()

			logrus.Info("Server exited")
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "localhost", "API server host")
	cmd.Flags().IntVar(&port, "port", 8080, "API server port")
	cmd.Flags().BoolVar(&dev, "dev", false, "Development mode (relaxed rate limits)")
	cmd.Flags().StringVar(&pidPath, "pid", "", "Optional path to write PID file")
	cmd.Flags().BoolVar(&pidLock, "pid-lock", false, "Lock PID file to allow only one instance (requires --pid)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the computer player (0 picks one)")

	return cmd
}
