package cli

import (
	"os"

	"squall/pkg/squall/core"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

type GlobalOpts struct {
	Verbosity   log.Level `short:"v" help:"Set log level" default:"info"`
	AzureDevops bool      `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
}

type cli struct {
	Global GlobalOpts `embed:""`
	Run    RunCmd     `cmd:"" help:"Run the test batch"`
	List   ListCmd    `cmd:"" help:"List the tests in the table"`
}

// Context is handed to every command by Main.
type Context struct {
	Log    *log.Logger
	Global GlobalOpts
	Tests  []core.Test
}

func ParseCommandLine(name string) (*kong.Context, GlobalOpts) {
	// Force display help if no arguments are provided
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "--help")
	}

	cli := cli{}
	ctx := kong.Parse(&cli, kong.Name(name))
	return ctx, cli.Global
}

// Main parses the command line, configures logging and executes the
// selected command over the given test table. It exits the process when
// the command fails, so the batch outcome drives the exit code.
func Main(name string, tests []core.Test) {
	kctx, global := ParseCommandLine(name)

	logger := configureLogging(global)
	logger.Infof("Starting '%s' - %d test(s) in the table.", name, len(tests))

	app := &Context{
		Log:    logger,
		Global: global,
		Tests:  tests,
	}
	validateTable(app)

	err := kctx.Run(app)
	kctx.FatalIfErrorf(err)
}

// Configures the process wide standard logger and returns it. The
// default manager logs through the same instance, so one verbosity
// setting governs the command's own lines and the per test progress
// lines.
func configureLogging(global GlobalOpts) *log.Logger {
	logger := log.StandardLogger()
	logger.SetLevel(global.Verbosity)
	logger.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})
	return logger
}

// Selection is by name, so a table must carry unique non empty names
// even though managers themselves accept duplicates.
func validateTable(app *Context) {
	seen := make(map[string]bool)
	for _, t := range app.Tests {
		if t.Name == "" {
			app.Log.Fatalf("Table test has no name")
		}
		if seen[t.Name] {
			app.Log.Fatalf("Test '%s' already exists", t.Name)
		}
		seen[t.Name] = true
	}
}
