// Package main provides the go:generate entrypoint for numconv-generator.
//
// numconv-generator derives integer conversions for enum types:
//   - Scans Go packages for //numconv:derive directives on type declarations
//   - Validates each annotated type (enums with unit variants only)
//   - Generates FromInt64/FromUint64 constructors and Int64/Uint64 methods
//   - Writes one generated file per (capability, type) pair
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numconv-generator/internal/analyze"
	"numconv-generator/internal/derive"
	"numconv-generator/internal/diagnostic"
	"numconv-generator/internal/typedesc"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	dryRun  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "numconv-generator [packages]",
		Short:         "derive integer conversions for annotated enum types",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print generated code to stdout instead of writing files")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(patterns []string, opts options) error {
	log, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	targets, err := analyze.LoadTargets(patterns...)
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		log.Infow("no annotated types found", "patterns", patterns)
		return nil
	}

	diags := &diagnostic.Diagnostics{}

	for _, target := range targets {
		deriveTarget(target, opts, log, diags)
	}

	for _, d := range diags.Errors {
		fmt.Fprintln(os.Stderr, d)
	}

	if diags.HasErrors() {
		return errors.Newf("%d of %d derivations failed", len(diags.Errors), countDerivations(targets))
	}

	return nil
}

// deriveTarget runs every requested derivation for one annotated type.
// Each derivation is independent; a failure is recorded and the rest of the
// run continues.
func deriveTarget(target analyze.Target, opts options, log *zap.SugaredLogger, diags *diagnostic.Diagnostics) {
	def := typedesc.Extract(target.Spec, target.File)

	for _, capability := range target.Capabilities {
		mod, err := derive.Derive(def, capability)
		if err != nil {
			diags.AddError("derive", err.Error(), target.TypeName, capability.String())
			continue
		}

		log.Debugw("derived module",
			"type", target.TypeName,
			"capability", capability.String(),
			"scope", mod.Scope,
			"variants", len(mod.Variants),
		)

		if opts.verbose {
			log.Debugf("resolved discriminants:\n%s", spew.Sdump(mod.Variants))
		}

		file, err := derive.Emit(target.PkgName, mod)
		if err != nil {
			diags.AddError("emit", err.Error(), target.TypeName, capability.String())
			continue
		}

		if opts.dryRun {
			fmt.Printf("=== %s ===\n%s\n", file.Filename, file.Content)
			continue
		}

		path := filepath.Join(target.Dir, file.Filename)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			diags.AddError("write", err.Error(), target.TypeName, capability.String())
			continue
		}

		log.Infow("wrote generated file", "path", path)
	}
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}

	return logger.Sugar(), nil
}

func countDerivations(targets []analyze.Target) int {
	n := 0
	for _, t := range targets {
		n += len(t.Capabilities)
	}

	return n
}
