// Command gloss prints the ASL gloss of English text given as arguments or,
// without arguments, of each line read from stdin.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
	"github.com/nguyentantai21042004/gloss-flow/internal/processor"
	"github.com/nguyentantai21042004/gloss-flow/internal/signmap"
	"github.com/nguyentantai21042004/gloss-flow/internal/validator"
)

type options struct {
	configPath string
	envFile    string
	validate   bool
	asJSON     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config; enables validator and sign mapping settings")
	flag.StringVar(&opts.envFile, "env", ".env", "dotenv file with API keys")
	flag.BoolVar(&opts.validate, "validate", false, "check each gloss with the configured validator (needs -config)")
	flag.BoolVar(&opts.asJSON, "json", false, "print the full result document as JSON")
	flag.Parse()

	ctx := context.Background()
	if err := run(ctx, opts, flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gloss: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, args []string, stdin io.Reader, stdout io.Writer) error {
	proc, err := buildProcessor(opts)
	if err != nil {
		return err
	}

	emit := func(n int, text string) error {
		res, err := proc.ProcessText(ctx, fmt.Sprintf("input-%d", n), text)
		if err != nil {
			return err
		}
		if !opts.asJSON {
			_, err = fmt.Fprintln(stdout, res.Gloss)
			return err
		}
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	if len(args) > 0 {
		return emit(1, strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(stdin)
	for n := 1; scanner.Scan(); n++ {
		if err := emit(n, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// buildProcessor wires only the text-side collaborators.
func buildProcessor(opts options) (processor.Processor, error) {
	if opts.configPath == "" {
		if opts.validate {
			return nil, fmt.Errorf("-validate needs -config")
		}
		return processor.New(&config.Config{}, processor.Deps{}), nil
	}

	if err := config.LoadEnv(opts.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Logs go to stderr so stdout stays machine readable
	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	deps := processor.Deps{Logger: log}

	if opts.validate {
		cfg.Validator.Enabled = true
		if deps.Validator, err = validator.New(cfg.Validator, log); err != nil {
			return nil, err
		}
	}
	if cfg.Signs.MappingPath != "" {
		if deps.Signs, err = signmap.Load(cfg.Signs.MappingPath, cfg.Signs.SpaceKey); err != nil {
			return nil, err
		}
	}

	return processor.New(cfg, deps), nil
}
