package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `verbose: true
jobs: 2
targets:
  - println
  - log.Println
ignore:
  - generated.go
`
	assert.Nil(t, os.WriteFile(path, []byte(data), 0644))

	config, err := getConfig(path)
	assert.Nil(t, err)
	assert.True(t, config.Verbose)
	assert.False(t, config.DryRun)
	assert.Equal(t, 2, config.Jobs)
	assert.Equal(t, []string{"println", "log.Println"}, config.Targets)
	assert.Equal(t, []string{"generated.go"}, config.Ignore)
}

func TestGetConfigJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"dry_run": true, "targets": ["print"]}`
	assert.Nil(t, os.WriteFile(path, []byte(data), 0644))

	config, err := getConfig(path)
	assert.Nil(t, err)
	assert.True(t, config.DryRun)
	assert.Equal(t, []string{"print"}, config.Targets)
}

func TestGetConfigMissing(t *testing.T) {
	_, err := getConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestParseConfigInvalidTarget(t *testing.T) {
	_, err := parseConfig([]byte(`{"targets": ["not a name"]}`))
	assert.NotNil(t, err)
}

func TestParseConfigNegativeJobs(t *testing.T) {
	_, err := parseConfig([]byte(`{"jobs": -1}`))
	assert.NotNil(t, err)
}

func TestValidTargets(t *testing.T) {
	valid := []string{"println", "fmt.Println", "log.Printf", "debugPrint", "pkg_v2.Dump"}
	for _, target := range valid {
		assert.True(t, targetPattern.MatchString(target), target)
	}

	invalid := []string{"", ".", "fmt.", ".Println", "a.b.c", "fmt.Println()", "1print"}
	for _, target := range invalid {
		assert.False(t, targetPattern.MatchString(target), target)
	}
}

func TestConsolidateArgsIntoConfig(t *testing.T) {
	opts := &Args{}
	opts.Process.DryRun = true
	opts.Process.Backup = true
	opts.General.Verbose = true
	opts.Process.Jobs = 4
	opts.Process.Target = []string{"log.Println"}
	opts.Process.Ignore = []string{"b.go"}

	config := &Config{Targets: []string{"println"}, Ignore: []string{"a.go"}}
	consolidateArgsIntoConfig(opts, config)

	assert.True(t, config.DryRun)
	assert.True(t, config.Backup)
	assert.True(t, config.Verbose)
	assert.Equal(t, 4, config.Jobs)
	assert.Equal(t, []string{"log.Println"}, config.Targets)
	assert.Equal(t, []string{"a.go", "b.go"}, config.Ignore)
}

func TestConsolidateArgsKeepConfigValues(t *testing.T) {
	opts := &Args{}

	config := &Config{Verbose: true, Jobs: 3, Targets: []string{"println"}}
	consolidateArgsIntoConfig(opts, config)

	assert.True(t, config.Verbose)
	assert.Equal(t, 3, config.Jobs)
	assert.Equal(t, []string{"println"}, config.Targets)
}
