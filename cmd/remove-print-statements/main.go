package main

import (
	"fmt"
	"os"

	"github.com/dhruvmanila/remove-print-statements"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	returnOk = iota
	returnChanged
	returnUsage
)

// Codes 126 and up are reserved by the shell.
const returnError = 123

var FS = afero.NewOsFs()

type Args struct {
	General struct {
		Debug   bool   `long:"debug" description:"Debug log output"`
		Help    bool   `short:"h" long:"help" description:"Show this help message"`
		Verbose bool   `short:"v" long:"verbose" description:"Preview the print statements along with their location"`
		Json    bool   `long:"json" description:"Log events in json format"`
		Config  string `long:"config" description:"Path to a configuration file"`
		Version bool   `long:"version" description:"Print the version and exit"`
	} `group:"General options"`

	Process struct {
		DryRun bool     `short:"n" long:"dry-run" description:"Perform a dry run without writing back the transformed files"`
		Backup bool     `long:"backup" description:"Keep a .orig copy of every file before transforming it"`
		Ignore []string `long:"ignore" description:"Paths to ignore, add multiple as required"`
		Target []string `long:"target" description:"Call names to remove in place of the default print family, add multiple as required"`
		Jobs   int      `long:"jobs" description:"Number of files processed in parallel, zero meaning one per CPU"`
	} `group:"Process options"`

	Positional struct {
		Filenames []string `positional-arg-name:"FILENAME"`
	} `positional-args:"yes"`
}

func exitError(format string, args ...interface{}) (exitCode int) {
	log.Errorf(format, args...)

	return returnError
}

func exitUsage(format string, args ...interface{}) (exitCode int) {
	log.Errorf(format, args...)

	return returnUsage
}

func checkArguments(args []string, opts *Args) (bool, int) {
	p := flags.NewNamedParser("remove-print-statements", flags.None)

	p.ShortDescription = "Remove print statements from Go source files"

	if _, err := p.AddGroup("remove-print-statements", "remove-print-statements arguments", opts); err != nil {
		return true, exitError(err.Error())
	}

	completion := len(os.Getenv("GO_FLAGS_COMPLETION")) > 0

	_, err := p.ParseArgs(args)
	if opts.General.Help && !completion {
		p.WriteHelp(os.Stdout)

		return true, returnOk
	} else if opts.General.Version {
		fmt.Printf("remove-print-statements, %s\n", rmprint.Version)

		return true, returnOk
	}

	if err != nil {
		return true, exitUsage(err.Error())
	}

	if completion {
		return true, returnOk
	}

	if opts.General.Debug {
		opts.General.Verbose = true
	}

	return false, 0
}

func setUpLogging(config *Config) {
	if config.Json {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}

	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	// Failure logs stay off stdout so the verbose listing and the summary
	// remain machine-parseable.
	log.SetOutput(os.Stderr)
}

// selectFiles drops every path listed in ignore, keeping the input order.
func selectFiles(filenames []string, ignore []string) []string {
	if len(ignore) == 0 {
		return filenames
	}

	skip := make(map[string]struct{}, len(ignore))
	for _, path := range ignore {
		skip[path] = struct{}{}
	}

	var files []string
	for _, path := range filenames {
		if _, ok := skip[path]; ok {
			continue
		}
		files = append(files, path)
	}

	return files
}

func mainCmd(args []string) (exitCode int) {
	var opts = &Args{}
	if exit, exitCode := checkArguments(args, opts); exit {
		return exitCode
	}

	config := &Config{}
	if opts.General.Config != "" {
		var err error
		config, err = getConfig(opts.General.Config)
		if err != nil {
			return exitUsage("could not load config: %v", err)
		}
	}

	consolidateArgsIntoConfig(opts, config)
	if err := validateImportantConfigFields(config); err != nil {
		return exitUsage(err.Error())
	}
	setUpLogging(config)

	if len(opts.Positional.Filenames) == 0 {
		return returnOk
	}

	files := selectFiles(opts.Positional.Filenames, config.Ignore)
	results := processFiles(config, files)

	return reportResults(config, results)
}

func main() {
	os.Exit(mainCmd(os.Args[1:]))
}
