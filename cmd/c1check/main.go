package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"c1check/internal/config"
	"c1check/internal/logs"
	"c1check/pkg/compiler"
	"c1check/pkg/utils"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("c1check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	showTokens := fs.Bool("tokens", false, "print the token stream of each file")
	quiet := fs.Bool("q", false, "only report failures")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: c1check [-config file] [-tokens] [-q] path...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return exitUsage
	}

	logger, closer, err := logs.New(logs.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		File:  cfg.Log.File,
	}, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "log setup error:", err)
		return exitUsage
	}
	defer closer.Close()
	slog.SetDefault(logger)

	files, err := utils.CollectSources(fs.Args(), cfg.Check.Extensions)
	if err != nil {
		fmt.Fprintln(stderr, "path error:", err)
		return exitUsage
	}

	code := exitOK
	for _, file := range files {
		src, name, err := readSource(file, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "failed to read %q: %v\n", file, err)
			return exitUsage
		}

		if *showTokens {
			tokens := compiler.Lex(src)
			fmt.Fprintf(stdout, "Tokens %s (%d)\n", name, len(tokens))
			for _, tok := range tokens {
				fmt.Fprintln(stdout, " ", tok)
			}
		}

		res := compiler.Check(name, src)
		if res.Valid {
			if !*quiet {
				fmt.Fprintf(stdout, "OK   %s\n", name)
			}
			continue
		}
		code = exitFail
		fmt.Fprintf(stdout, "FAIL %s: %v\n", name, res.Err)
		if !res.Err.AtEOF {
			fmt.Fprintf(stdout, "  |> %s\n", res.Err.Snippet(src))
		}
	}
	slog.Debug("check finished", "files", len(files), "exit", code)
	return code
}

// readSource returns the contents of file and the name to report it under.
// "-" reads stdin.
func readSource(file string, stdin io.Reader) (src string, name string, err error) {
	if file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	}
	fullPath, _, err := utils.GetPathInfo(file)
	if err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", "", err
	}
	return string(data), file, nil
}
