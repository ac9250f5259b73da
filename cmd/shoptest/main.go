package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/urfave/cli/v2"

	"github.com/ParZival6677/shoptest/internal/config"
	"github.com/ParZival6677/shoptest/internal/logging"
	"github.com/ParZival6677/shoptest/internal/stubshop"
)

var version = "0.1.0"

// InstallCommand returns the install command, which provisions the
// playwright driver and browser binaries the suite launches.
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the browser driver and browser binaries",
		Action: func(c *cli.Context) error {
			logger := logging.Default()
			logger.Info("installing browser driver and browsers")
			if err := playwright.Install(); err != nil {
				return fmt.Errorf("failed to install browsers: %w", err)
			}
			logger.Info("install complete")
			return nil
		},
	}
}

// ServeStubCommand returns the serve-stub command, which runs the stub
// storefront standalone for manual poking.
func ServeStubCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve-stub",
		Usage: "Run the stub storefront as a standalone server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address",
				Value: ":8080",
			},
			&cli.BoolFlag{
				Name:  "no-guest-gate",
				Usage: "skip the checkout-as-guest page for anonymous checkouts",
			},
		},
		Action: func(c *cli.Context) error {
			logger := logging.Default()
			opts := stubshop.DefaultOptions()
			opts.GuestGate = !c.Bool("no-guest-gate")

			listener, server, err := stubshop.StartServer(stubshop.New(opts), c.String("addr"), logger)
			if err != nil {
				return err
			}
			defer listener.Close()

			return stubshop.WaitForShutdown(server, nil, logger)
		},
	}
}

// DoctorCommand returns the doctor command, which checks that the driver
// runs and the configured storefront answers.
func DoctorCommand() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check driver and storefront reachability",
		Action: func(c *cli.Context) error {
			logger := logging.Default()

			pw, err := playwright.Run()
			if err != nil {
				return fmt.Errorf("driver did not start, run `shoptest install` first: %w", err)
			}
			logger.Info("driver started")
			if err := pw.Stop(); err != nil {
				return fmt.Errorf("driver did not stop cleanly: %w", err)
			}

			shopCfg := config.LoadShopConfig()
			if shopCfg.BaseURL == "" {
				logger.Info("no storefront base URL configured, suite will use the stub storefront")
				return nil
			}
			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Get(shopCfg.BaseURL)
			if err != nil {
				return fmt.Errorf("storefront unreachable at %s: %w", shopCfg.BaseURL, err)
			}
			resp.Body.Close()
			logger.Info("storefront reachable", "url", shopCfg.BaseURL, "status", resp.StatusCode)
			return nil
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "shoptest",
		Usage:   "Storefront regression suite management tool",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			ServeStubCommand(),
			DoctorCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
