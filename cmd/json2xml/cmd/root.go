// Package cmd implements the json2xml command line.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/creachadair/jsonxml"
	"github.com/creachadair/jsonxml/internal/config"
	"github.com/creachadair/jsonxml/internal/logutil"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

// OutputFile is the name of the file the translation is written to.
const OutputFile = "output.xml"

// Process exit codes.
const (
	exitOK      = 0 // translation completed without errors
	exitIO      = 1 // input or output could not be opened
	exitPartial = 2 // translation completed with errors
)

// An exitError ends the command with a specific exit code. If err is nil the
// cause has already been reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

type flags struct {
	configPath string
	maxDepth   int
	jwcc       bool
	tokens     bool
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fl flags
	root := &cobra.Command{
		Use:   "json2xml [file]",
		Short: "Translate simplified JSON into XML",
		Long: `json2xml reads a simplified JSON document and writes its XML translation
to ` + OutputFile + `. Structural errors are reported on stderr and parsing
continues after each one, so the output may be partial.

Exit status:
  0  translation completed without errors
  1  the input or output file could not be opened
  2  translation completed with errors (partial output)`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, &fl)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.Flags()
	pf.StringVar(&fl.configPath, "config", "", "Config file (TOML)")
	pf.IntVar(&fl.maxDepth, "max-depth", 0, "Maximum nesting depth (default 512)")
	pf.BoolVar(&fl.jwcc, "jwcc", false, "Accept comments and trailing commas in the input")
	pf.BoolVar(&fl.tokens, "tokens", false, "List the tokens of the input instead of translating it")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "Verbose output")
	return root
}

// Execute runs the command line in os.Args and returns the exit status.
func Execute() int { return Run(os.Args[1:], os.Stdout, os.Stderr) }

// Run runs the command line args, writing results to stdout and messages to
// stderr, and returns the exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var xerr *exitError
	if errors.As(err, &xerr) {
		if xerr.err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", xerr.err)
		}
		return xerr.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitIO
}

// loadConfig combines the config file, the environment, and the flags, in
// increasing order of precedence.
func loadConfig(cmd *cobra.Command, fl *flags) (*config.Config, error) {
	cfg := config.Default()
	if fl.configPath != "" {
		var err error
		cfg, err = config.Load(fl.configPath)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("max-depth") {
		if fl.maxDepth < 0 {
			return nil, fmt.Errorf("--max-depth must not be negative (got %d)", fl.maxDepth)
		}
		cfg.MaxDepth = fl.maxDepth
	}
	if cmd.Flags().Changed("jwcc") {
		cfg.AllowComments = fl.jwcc
	}
	if fl.verbose {
		cfg.Debug = true
	}
	return cfg, nil
}

func runTranslate(cmd *cobra.Command, args []string, fl *flags) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	cfg, err := loadConfig(cmd, fl)
	if err != nil {
		return &exitError{code: exitIO, err: err}
	}
	log := logutil.NewLogger(stderr, logutil.Level(cfg.Debug))

	inPath := cfg.DefaultInput
	if len(args) != 0 {
		inPath = args[0]
	} else {
		fmt.Fprintf(stderr, "Aviso: no se especifico archivo. Usando '%s'.\n", inPath)
	}

	in, err := os.Open(inPath)
	if err != nil {
		log.Debug("open input", "path", inPath, "err", err)
		fmt.Fprintf(stderr, "No se puede abrir '%s'.\n", inPath)
		fmt.Fprintf(stderr, "Uso: %s <archivo .json o .txt>\n", cmd.Root().Name())
		return &exitError{code: exitIO}
	}
	defer in.Close()

	input, err := readInput(in, cfg.AllowComments, log)
	if err != nil {
		return &exitError{code: exitIO, err: err}
	}

	if fl.tokens {
		nerr, err := dumpTokens(stdout, input)
		if err != nil {
			return &exitError{code: exitIO, err: err}
		} else if nerr != 0 {
			return &exitError{code: exitPartial}
		}
		return nil
	}

	out, err := os.Create(OutputFile)
	if err != nil {
		log.Debug("create output", "path", OutputFile, "err", err)
		fmt.Fprintf(stderr, "No se puede abrir '%s' para escribir\n", OutputFile)
		return &exitError{code: exitIO}
	}

	start := time.Now()
	res, terr := jsonxml.Translate(input, out, &jsonxml.Options{
		MaxDepth:    cfg.MaxDepth,
		Diagnostics: stderr,
	})
	if cerr := out.Close(); terr == nil {
		terr = cerr
	}
	if terr != nil {
		return &exitError{code: exitIO, err: terr}
	}
	log.Debug("translation complete", "input", inPath, "output", OutputFile,
		"errors", len(res.Diagnostics), "elapsed", time.Since(start))

	if res.OK() {
		fmt.Fprintf(stdout, "Traduccion completada. Revisar %s\n", OutputFile)
		return nil
	}
	fmt.Fprintf(stdout, "Traduccion completada con %d error(es). Revisar %s (salida parcial) y la consola.\n",
		len(res.Diagnostics), OutputFile)
	return &exitError{code: exitPartial}
}

// readInput returns a reader for the contents of r. If jwcc is set, comments
// and trailing commas are blanked out first; positions in the input are
// unchanged. Input that hujson cannot parse is used as it is, so that its
// errors are reported by the translator.
func readInput(r io.Reader, jwcc bool, log *slog.Logger) (io.Reader, error) {
	if !jwcc {
		return r, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		log.Warn("input is not valid JWCC; translating it unchanged", "err", err)
		return bytes.NewReader(data), nil
	}
	return bytes.NewReader(std), nil
}
