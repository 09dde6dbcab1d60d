package main

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/dhruvmanila/remove-print-statements"
	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"
)

// Config carries every knob of a run. A zero Config is usable: default
// targets, no ignores, one worker per CPU.
type Config struct {
	Verbose bool     `json:"verbose"`
	Json    bool     `json:"json"`
	DryRun  bool     `json:"dry_run"`
	Backup  bool     `json:"backup"`
	Jobs    int      `json:"jobs"`
	Targets []string `json:"targets"`
	Ignore  []string `json:"ignore"`
}

// A target is spelled as a plain name or as pkg.name.
var targetPattern = regexp.MustCompile(`^[a-zA-Z_]\w*(\.[a-zA-Z_]\w*)?$`)

func getConfig(configFilePath string) (*Config, error) {
	data, err := rmprint.LoadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	if !isJson(data) {
		data, err = convertFromYaml(data)
		if err != nil {
			return nil, err
		}
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var config Config
	err := json.Unmarshal(data, &config)

	if err != nil {
		return nil, err
	}

	return &config, nil
}

func (config *Config) UnmarshalJSON(data []byte) error {
	type unfurlConfig Config

	err := json.Unmarshal(data, (*unfurlConfig)(config))

	if err != nil {
		return err
	}

	err = validateImportantConfigFields(config)
	if err != nil {
		return err
	}

	configString, err := config.toString()
	if err != nil {
		return err
	}

	log.WithField("config", configString).Debug("Finished parsing config.")

	return nil
}

func (config *Config) toString() (string, error) {
	configString, err := json.Marshal(config)
	if err != nil {
		return "", err
	}
	return string(configString), nil
}

func validateImportantConfigFields(config *Config) error {
	if config.Jobs < 0 {
		return fmt.Errorf("jobs cannot be negative: %d", config.Jobs)
	}

	for _, target := range config.Targets {
		if !targetPattern.MatchString(target) {
			return fmt.Errorf("invalid target %q, must be a name or pkg.name", target)
		}
	}

	return nil
}

// Command-line arguments are higher-priority than config file options
func consolidateArgsIntoConfig(opts *Args, config *Config) {
	if opts.Process.DryRun {
		config.DryRun = true
	}

	if opts.Process.Backup {
		config.Backup = true
	}

	if opts.General.Verbose {
		config.Verbose = true
	}

	if opts.General.Json {
		config.Json = true
	}

	if opts.Process.Jobs != 0 {
		config.Jobs = opts.Process.Jobs
	}

	if len(opts.Process.Target) != 0 {
		config.Targets = opts.Process.Target
	}

	config.Ignore = append(config.Ignore, opts.Process.Ignore...)
}

// Support YAML configuration files
func convertFromYaml(yamlData []byte) ([]byte, error) {
	return yaml.YAMLToJSON(yamlData)
}

func isJson(data []byte) bool {
	jsonPattern := regexp.MustCompile(`[\s]*{.*`)
	return jsonPattern.Match(data)
}
