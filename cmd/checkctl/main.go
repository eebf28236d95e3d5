// Package main implements checkctl, a command line front end for the input
// checks.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"inputguard/internal/checks/service"
	"inputguard/internal/checks/validator"
	"inputguard/pkg/config"
	apperrors "inputguard/pkg/errors"
	"inputguard/pkg/logger"
	"inputguard/pkg/model"
)

const (
	exitCheckFailed = 1
	exitError       = 2
)

var version = "dev"

// Options holds the flags shared by every subcommand.
type Options struct {
	Codec   string
	Verbose bool
}

type codedError struct {
	err  error
	code int
}

func (e codedError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e codedError) Unwrap() error { return e.err }

func errWithCode(err error, code int) error {
	return codedError{err: err, code: code}
}

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		var cErr codedError
		if errors.As(err, &cErr) {
			os.Exit(cErr.code)
		}
		os.Exit(exitError)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:   "checkctl",
		Short: "Validate and normalize input values",
		Long: `checkctl runs the same input checks as the checks service.

Values given on the command line are parsed as JSON when they are valid JSON
(numbers, arrays, objects) and used as plain strings otherwise.`,
		Example: `  checkctl check string "  hello "
  checkctl check number 42 --name age --min 18 --max 120
  checkctl check geocode '{"latitude":32.1,"longitude":34.8,"country":"Israel","countryCode":"IL","city":"Tel Aviv"}'
  checkctl check id 3f2504e0-4f89-11d3-9a0c-0305e82c3301 --codec uuid
  echo '{"_id":{"$oid":"507f1f77bcf86cd799439011"}}' | checkctl stringify`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.Codec, "codec", "", "Identifier codec: objectid or uuid (default from ID_CODEC)")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newCheckCmd(opts), newStringifyCmd(opts), newKindsCmd())
	return root
}

func newCheckCmd(opts *Options) *cobra.Command {
	var (
		name         string
		lower, upper float64
		raw          bool
	)

	cmd := &cobra.Command{
		Use:       "check <kind> <value>",
		Short:     "Run one check and print the normalized value",
		Long: `Run one check and print the normalized value.

Values for string, id, url, image-url and country-code are always taken
literally. For other kinds the value is parsed as JSON when it is valid JSON,
so numbers, arrays and objects can be passed directly.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: model.Kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts, cmd.ErrOrStderr())
			if err != nil {
				return errWithCode(err, exitError)
			}

			req := &model.CheckRequest{Name: name, Value: parseValue(args[1], raw || textKind(args[0]))}
			if cmd.Flags().Changed("min") {
				req.Min = &lower
			}
			if cmd.Flags().Changed("max") {
				req.Max = &upper
			}

			res, err := svc.Check(cmd.Context(), args[0], req)
			if err != nil {
				return errWithCode(formatError(err), exitCheckFailed)
			}
			return writeJSON(cmd.OutOrStdout(), res.Value)
		},
	}

	cmd.Flags().StringVar(&name, "name", "value", "Field name used in error messages")
	cmd.Flags().Float64Var(&lower, "min", 0, "Inclusive lower bound for number checks")
	cmd.Flags().Float64Var(&upper, "max", 0, "Inclusive upper bound for number checks")
	cmd.Flags().BoolVar(&raw, "raw", false, "Treat the value as a plain string even if it is valid JSON")
	return cmd
}

func newStringifyCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stringify",
		Short: "Read Extended JSON documents from stdin and render _id fields as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(opts, cmd.ErrOrStderr())
			if err != nil {
				return errWithCode(err, exitError)
			}

			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errWithCode(fmt.Errorf("read stdin: %w", err), exitError)
			}

			out, err := svc.Stringify(cmd.Context(), in)
			if err != nil {
				return errWithCode(formatError(err), exitCheckFailed)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported check kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(model.Kinds, "\n"))
			return err
		},
	}
}

func newService(opts *Options, stderr io.Writer) (service.CheckService, error) {
	cfg := config.FromEnv()
	if opts.Codec != "" {
		cfg.IDCodec = opts.Codec
	}

	level := logger.WARN
	if opts.Verbose {
		level = logger.DEBUG
	}
	cfg.Log = logger.New(logger.Config{
		Level:   level,
		Format:  logger.TEXT,
		Output:  stderr,
		Service: "checkctl",
	})

	checker, err := cfg.Checker()
	if err != nil {
		return nil, fmt.Errorf("build checker: %w", err)
	}
	return service.NewCheckService(checker, validator.NewRequestValidator(cfg.Log), cfg), nil
}

// textKind reports whether kind only accepts strings, so its argument is never
// decoded as JSON.
func textKind(kind string) bool {
	switch kind {
	case model.KindString, model.KindID, model.KindURL, model.KindImageURL, model.KindCountryCode:
		return true
	}
	return false
}

// parseValue decodes arg as a single JSON value, falling back to the literal
// string.
func parseValue(arg string, raw bool) any {
	if raw {
		return arg
	}

	dec := json.NewDecoder(strings.NewReader(arg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return arg
	}
	if _, err := dec.Token(); err != io.EOF {
		return arg
	}
	return v
}

func formatError(err error) error {
	appErr := apperrors.AsAppError(err)
	msg := fmt.Sprintf("%s: %s", appErr.Code, appErr.Message)
	if len(appErr.Details) > 0 {
		details, _ := json.Marshal(appErr.Details)
		msg += " " + string(details)
	}
	return errors.New(msg)
}

func writeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
