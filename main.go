package main

import (
	"flag"
	"fmt"
	"os"

	"light-calculator/calc"
	"light-calculator/db"
	"light-calculator/ui"
	"light-calculator/utils"
)

var (
	version = "0.1.0"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	keys := flag.String("keys", "", `Replay a key sequence without opening a window, e.g. "7 + 3 ="`)
	language := flag.String("lang", "", "UI language (ar or en), overrides the config file")
	debug := flag.Bool("debug", false, "Write debug lines to the log")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Light Calculator v%s\n", version)
		os.Exit(0)
	}

	if *keys != "" {
		os.Exit(replay(*keys))
	}

	logger, err := utils.NewLogger(utils.GetLogPath())
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()
	logger.SetDebug(*debug)

	logger.Info("Starting Light Calculator v%s", version)

	utils.LoadDotEnv()

	// Load or create default configuration
	actualConfigPath := *configPath
	if actualConfigPath == "" {
		actualConfigPath, err = utils.EnsureDefaultConfig()
		if err != nil {
			logger.Error("Failed to create default config: %v", err)
			os.Exit(1)
		}
		logger.Info("Using config file: %s", actualConfigPath)
	}

	config, err := utils.LoadConfig(actualConfigPath)
	if err != nil {
		logger.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	if *language != "" {
		config.OverrideLanguage(*language)
	}

	// History store is opt-in, nothing is written to disk otherwise
	var database *db.DB
	if config.Data.PersistHistory {
		database, err = db.New(config.Data.DBPath)
		if err != nil {
			logger.Error("Failed to initialize database: %v", err)
			os.Exit(1)
		}

		if stats, err := database.GetStats(); err == nil {
			logger.Info("History store %s: %d entries, %d bytes", config.Data.DBPath, stats.EntryCount, stats.DBSizeBytes)
		}
	}

	// Cleanup closes the history store
	app := ui.NewApp(config, actualConfigPath, database, logger)
	defer app.Cleanup()

	logger.Info("Application started")
	app.Run()
	logger.Info("Application stopped")
}

// replay runs keys through a fresh engine and prints the outcome
func replay(keys string) int {
	engine := calc.NewEngine(calc.DefaultEnv())
	if err := engine.Replay(keys); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	fmt.Println(engine.Display())
	for _, entry := range engine.History() {
		fmt.Printf("  %s = %s\n", entry.Expression, entry.Result)
	}
	return 0
}
