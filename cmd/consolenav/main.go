package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"consolenav/internal/auth"
	"consolenav/internal/config"
	"consolenav/internal/intent"
	"consolenav/internal/logging"
	"consolenav/internal/nav"
	"consolenav/internal/registry"
	"consolenav/internal/snapshot"
	"consolenav/internal/state"
)

var version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse":
		runParse(os.Args[2:])
	case "inspect":
		runInspect(os.Args[2:])
	case "version":
		fmt.Printf("consolenav v%s\n", version)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: consolenav <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  parse    Parse a command and resolve its navigation target")
	fmt.Println("  inspect  Detect console state from a snapshot file")
	fmt.Println("  version  Print version information")
}

// setup loads env and config and initializes logging. A missing config file
// falls back to defaults so the binary works with zero setup.
func setup(configPath, envFile string) (*config.Config, zerolog.Logger) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load env file %s: %v\n", envFile, err)
		}
	} else {
		godotenv.Load(".env")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = config.DefaultConfig()
	}

	log := logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Component: "consolenav",
	})
	return cfg, log
}

func loadRegistry(cfg *config.Config, log zerolog.Logger) *registry.Registry {
	if cfg.Resolver.RegistryDir == "" {
		return registry.Default()
	}
	reg, err := registry.Load(cfg.Resolver.RegistryDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Resolver.RegistryDir).Msg("loading registry")
	}
	return reg
}

func runParse(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "Path to config file")
	envFile := fs.String("env-file", "", "Path to .env file (optional)")
	multi := fs.Bool("multi", false, "Split compound commands on and/then")
	fs.Parse(args)

	command := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if command == "" {
		fmt.Fprintln(os.Stderr, "Usage: consolenav parse [options] <command text>")
		os.Exit(1)
	}

	cfg, log := setup(*configPath, *envFile)
	parser := intent.NewParser(
		intent.WithMinConfidence(cfg.Parser.MinConfidence),
		intent.WithLogger(log),
	)
	resolver := nav.NewResolver(
		loadRegistry(cfg, log),
		nav.WithDefaultNamespace(cfg.Resolver.DefaultNamespace),
		nav.WithLogger(log),
	)

	var intents []*intent.ParsedIntent
	if *multi {
		intents = parser.ParseMultiple(command)
	} else {
		intents = []*intent.ParsedIntent{parser.Parse(command)}
	}

	type result struct {
		Intent     *intent.ParsedIntent `json:"intent"`
		Resolution nav.URLResolution    `json:"resolution"`
	}
	results := make([]result, 0, len(intents))
	for _, in := range intents {
		results = append(results, result{Intent: in, Resolution: resolver.Resolve(in)})
	}

	printJSON(results)
}

func runInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "Path to config file")
	envFile := fs.String("env-file", "", "Path to .env file (optional)")
	url := fs.String("url", "", "Current console URL")
	snapshotPath := fs.String("snapshot", "", "Path to snapshot JSON file")
	fs.Parse(args)

	if *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: consolenav inspect -url <url> -snapshot <file>")
		os.Exit(1)
	}

	_, log := setup(*configPath, *envFile)

	f, err := os.Open(*snapshotPath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening snapshot")
	}
	defer f.Close()

	snap, err := snapshot.Decode(f)
	if err != nil {
		log.Fatal().Err(err).Msg("decoding snapshot")
	}

	detector := state.NewDetector(auth.NewHeuristicAnalyzer(), state.WithLogger(log))
	printJSON(detector.Detect(*url, snap))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}
