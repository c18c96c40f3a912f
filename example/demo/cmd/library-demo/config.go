package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/config"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = config.LogFormatText

	defaultJSONData = `[{"title": "Clean Code"}, {"title": "Design Patterns"}]`
	defaultCSVData  = "title\nRefactoring\nThe Pragmatic Programmer"
)

// Config holds all demo configuration parameters.
type Config struct {
	ObservabilityEnabled bool
	LogLevel             string
	LogFormat            string
	JSONFile             string
	CSVFile              string
	YAMLFile             string
}

// BookData holds the raw book data per format, an empty string means nothing to import.
type BookData struct {
	JSON string
	CSV  string
	YAML string
}

// parseFlags parses command line flags and returns configuration.
func parseFlags(args []string) (Config, error) {
	flags := flag.NewFlagSet("library-demo", flag.ContinueOnError)

	var (
		observability = flags.Bool("observability-enabled", false, "Enable OpenTelemetry observability")
		logLevel      = flags.String("log-level", defaultLogLevel, "Log level: debug, info, warn or error")
		logFormat     = flags.String("log-format", defaultLogFormat, "Log format: text or json")
		jsonFile      = flags.String("json-file", "", "JSON file with a list of {\"title\": ...} objects")
		csvFile       = flags.String("csv-file", "", "CSV file with a title column")
		yamlFile      = flags.String("yaml-file", "", "YAML file with a list of title mappings")
	)

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if _, err := config.ParseLogLevel(*logLevel); err != nil {
		return Config{}, err
	}

	return Config{
		ObservabilityEnabled: *observability,
		LogLevel:             *logLevel,
		LogFormat:            *logFormat,
		JSONFile:             *jsonFile,
		CSVFile:              *csvFile,
		YAMLFile:             *yamlFile,
	}, nil
}

// LoadBookData reads the configured files. JSON and CSV fall back to the built-in sample data.
func (c Config) LoadBookData() (BookData, error) {
	var (
		data = BookData{JSON: defaultJSONData, CSV: defaultCSVData}
		err  error
	)

	if data.JSON, err = readOr(c.JSONFile, data.JSON); err != nil {
		return BookData{}, err
	}

	if data.CSV, err = readOr(c.CSVFile, data.CSV); err != nil {
		return BookData{}, err
	}

	if data.YAML, err = readOr(c.YAMLFile, ""); err != nil {
		return BookData{}, err
	}

	return data, nil
}

func readOr(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading book data: %w", err)
	}

	return string(content), nil
}
