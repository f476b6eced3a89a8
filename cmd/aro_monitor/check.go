package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/aro-monitor/internal/config"
	"github.com/jonathan/aro-monitor/internal/logging"
	"github.com/jonathan/aro-monitor/internal/monitor"
	"github.com/jonathan/aro-monitor/internal/notify"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one fetch-scan-notify cycle",
	Long:  "Fetches the listing page once, scans it for available ARO one-bedroom units, and sends notifications on the configured channels. Exits 0 whether or not availability was found.",
	RunE:  runCheck,
}

var checkTargetURL string

func init() {
	checkCmd.Flags().StringVarP(&checkTargetURL, "url", "u", "", "Override the target listing page URL")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if checkTargetURL != "" {
		cfg.TargetURL = checkTargetURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		OutputPaths: []string{"stdout", cfg.LogFile},
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	email, err := notify.NewEmailNotifier(*cfg)
	if err != nil {
		return fmt.Errorf("build email channel: %w", err)
	}
	sms := notify.NewSMSNotifier(*cfg)

	mon := monitor.New(monitor.Options{
		Config: *cfg,
		Logger: log,
		Email:  email,
		SMS:    sms,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("=== ARO monitor started ===", logging.String("property", cfg.PropertyName))

	found := mon.RunCycle(ctx)

	if ctx.Err() != nil {
		log.Info("monitoring interrupted")
		return nil
	}

	log.Info("=== ARO monitor finished ===", logging.Bool("availability_found", found))
	return nil
}
