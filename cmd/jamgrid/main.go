package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bandicon/jam-schedule-service/internal/apiclient"
	"github.com/bandicon/jam-schedule-service/internal/grid"
	"github.com/bandicon/jam-schedule-service/internal/tui"
	"github.com/bandicon/jam-schedule-service/pkg/logger"
	"github.com/bandicon/jam-schedule-service/pkg/types"
)

const (
	apiEnv     = "JAMGRID_API"
	defaultAPI = "http://localhost:8080"
)

var rootCmd = &cobra.Command{
	Use:   "jamgrid",
	Short: "Terminal availability grid for Bandicon jams",
	Long:  "jamgrid shows who in a jam is free at each hour of a day and lets you drag over hours to save your own availability.",
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the availability grid of a jam",
	RunE:  runOpen,
}

func init() {
	openCmd.Flags().Int64("jam", 0, "jam ID")
	openCmd.Flags().String("date", "", "day to open, YYYYMMDD (default today)")
	openCmd.Flags().Int64("user", 0, "your user ID, sent as X-User-ID")
	openCmd.Flags().String("api", "", "service base URL (default $"+apiEnv+" or "+defaultAPI+")")
	openCmd.Flags().Duration("timeout", 10*time.Second, "request timeout")
	openCmd.Flags().String("log-file", "", "write logs to this file")
	openCmd.Flags().String("log-level", "info", "log level")
	_ = openCmd.MarkFlagRequired("jam")
	_ = openCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(openCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runOpen открывает сетку джема: полноэкранный режим с событиями мыши,
// логи только в файл, чтобы не портить экран
func runOpen(cmd *cobra.Command, args []string) error {
	jamID, _ := cmd.Flags().GetInt64("jam")
	userID, _ := cmd.Flags().GetInt64("user")
	dateFlag, _ := cmd.Flags().GetString("date")
	apiURL, _ := cmd.Flags().GetString("api")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	logFile, _ := cmd.Flags().GetString("log-file")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if jamID <= 0 || userID <= 0 {
		return fmt.Errorf("--jam and --user must be positive")
	}

	date := types.NewDateString(time.Now())
	if dateFlag != "" {
		var err error
		if date, err = types.NewDateStringFromString(dateFlag); err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
	}

	// Флаг, затем переменная окружения, затем адрес по умолчанию
	if apiURL == "" {
		apiURL = os.Getenv(apiEnv)
	}
	if apiURL == "" {
		apiURL = defaultAPI
	}

	log, err := logger.NewFileOnly(logFile, logLevel)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	client := apiclient.NewClient(apiURL, userID, timeout, log)
	hub := grid.NewReleaseHub()
	app := tui.NewApp(ctx, client, jamID, date.String(), hub, log)
	defer app.Close()

	log.Info("jamgrid: jam=%d user=%d date=%s api=%s", jamID, userID, date, apiURL)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running grid: %w", err)
	}
	return nil
}
