package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pwgen/internal/breach"
	"pwgen/internal/cli"
	"pwgen/internal/domain"
	"pwgen/internal/service"
	"pwgen/internal/target"
)

var version = "dev"

func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, "error:", invErr.Message)
			cli.Usage(os.Stderr)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(domain.ExitUsage)
	}

	level := slog.LevelInfo
	if inv.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	breachURL := getEnvString("PWGEN_BREACH_URL", breach.DefaultBaseURL)
	breachTimeout := getEnvDuration("PWGEN_BREACH_TIMEOUT", breach.DefaultTimeout)

	deps := cli.Deps{
		Registry: target.Default(),
		NewBreachChecker: func() service.BreachChecker {
			logger.Debug("breach check enabled", "endpoint", breachURL, "timeout", breachTimeout)
			return breach.NewClient(
				breach.WithBaseURL(breachURL),
				breach.WithTimeout(breachTimeout),
				breach.WithLogger(logger),
			)
		},
		Logger:  logger,
		Version: version,
	}

	if err := cli.Run(context.Background(), inv, deps, os.Stdout); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(domain.ExitCode(err))
	}
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvString(key string, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
