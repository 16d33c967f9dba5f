package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/spf13/pflag"

	"github.com/jeffrom/cmsg/config"
	"github.com/jeffrom/cmsg/runner"
	"github.com/jeffrom/cmsg/vcs/gitcli"
)

var (
	// overridden by go build -X
	Version string
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	cfg := config.New(nil)

	var help bool
	var version bool
	var cfgFile string
	var check bool
	var checkCommits []string
	var readStats bool
	var readAllStats bool
	var printConfig bool
	var reformat bool
	var query string
	flags := pflag.NewFlagSet("cmsg", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.BoolVarP(&check, "check", "C", false, "only validate commits from git history")
	flags.StringArrayVar(&checkCommits, "check-commit", nil, "only validate provided commit `message`")
	flags.StringVar(&query, "query", "", "git log `query` for --check and --stats, e.g. v1.0.0..HEAD")
	flags.BoolVarP(&readStats, "stats", "S", false, "print commit message stats (with top tens)")
	flags.BoolVarP(&readAllStats, "stats-all", "A", false, "print all commit message stats")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output `format`: text, json or yaml")
	flags.StringVar(&cfg.Template, "template", "", "go text/template for text output `format`")
	flags.BoolVarP(&reformat, "reformat", "R", false, "print the canonical form of the message instead of its fields")
	flags.BoolVar(&cfg.MarkBreaking, "mark-breaking", false, "render \"!\" for any breaking commit when reformatting")
	flags.BoolVarP(&cfg.Debug, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "Print default configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()[1:]

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}
	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}

	cmsgYAML, err := readCmsgYAML(cfgFile)
	if err != nil {
		return err
	}
	if cmsgYAML != nil {
		if err := mergo.Merge(&cfg, cmsgYAML, mergo.WithOverride); err != nil {
			return err
		}
	}
	if cfg.Debug {
		b, err := json.MarshalIndent(cfg, "", "  ")
		die(err)
		cfg.Debugf("config: %s", string(b))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	git := gitcli.New(cfg, "")
	rnr := runner.New(cfg, git)
	ctx := context.Background()

	if readStats || readAllStats {
		stats, err := rnr.Stats(ctx)
		if err != nil {
			return err
		}
		return stats.TextSummary(cfg.Term.Stdout, readAllStats)
	}

	shouldCheck := check || flags.Lookup("check-commit").Changed
	if shouldCheck {
		hasPipe := !config.IsTerminal(os.Stdin)
		var err error
		if check {
			err = rnr.CheckCommitsFromGit(ctx, query)
		} else if hasPipe && len(checkCommits) == 1 && checkCommits[0] == "-" {
			err = rnr.CheckReader(ctx, os.Stdin)
		} else {
			err = rnr.CheckMessages(ctx, checkCommits)
		}
		if err != nil {
			cf := runner.CheckFailure{}
			if errors.As(err, &cf) {
				if err := cf.WriteFailure(os.Stdout); err != nil {
					fmt.Fprintln(os.Stderr, "failed to write invalid commit information:", err)
				}
			}
			return err
		}
		cfg.Printf("OK")
		return nil
	}

	// default mode: parse messages from args or stdin and print them
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if config.IsTerminal(os.Stdin) {
			usage(cfg, flags)
			return errors.New("no commit message provided")
		}
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		args = []string{string(b)}
	}
	for _, msg := range args {
		if reformat {
			if err := rnr.Reformat(cfg.Term.Stdout, msg); err != nil {
				return err
			}
			continue
		}
		if err := rnr.Parse(cfg.Term.Stdout, msg); err != nil {
			return err
		}
	}
	return nil
}

func die(err error) {
	if err != nil {
		panic(err)
	}
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [message...]

A utility for parsing Conventional Commit messages.

FLAGS
%s
EXAMPLES

# parse a message and print its fields
$ cmsg 'feat(parser): add ability to parse arrays'

# parse a full message from stdin as json
$ git log -1 --pretty=%%B | cmsg -f json -

# validate the current branch's history
$ cmsg --check

# validate a range
$ cmsg --check --query v1.0.0..HEAD

# validate a single message
$ cmsg --check-commit 'fix: correct minor typos in code'
`, os.Args[0], flags.FlagUsages())
}

func readCmsgYAML(p string) (*config.Config, error) {
	if p != "" {
		b, err := ioutil.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, "cmsg.yaml")
		b, err := ioutil.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}
