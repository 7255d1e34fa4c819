package main

import (
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/geofduf/string-sequence/internal/logger"
	"github.com/geofduf/string-sequence/internal/report"
	"github.com/geofduf/string-sequence/internal/script"
	"github.com/geofduf/string-sequence/sequence"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type options struct {
	cfgPath string
	tree    bool
}

func init() {
	log.SetFlags(log.Ldate | log.Lmicroseconds | log.Lshortfile | log.LUTC)
}

func main() {
	if err := newCommand().Execute(); err != nil {
		if err, ok := err.(stackTracer); ok {
			for _, f := range err.StackTrace() {
				log.Printf("%v | func %n()\n", f, f)
			}
		}
		log.Fatal(err.Error())
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "seqctl",
		Short:         "Run a script of sequence operations and print the result",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "script.yaml", "Path to file")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "Print sequences as a tree")
	return cmd
}

func run(cmd *cobra.Command, opts options) (err error) {
	s, err := script.Load(opts.cfgPath)
	if err != nil {
		return err
	}

	l, closeLog, err := logger.NewLogger(s.Logging)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, closeLog())
	}()
	defer l.Sync() //nolint:errcheck

	statements, err := s.Statements()
	if err != nil {
		return err
	}

	l.Info("running script",
		zap.String(logger.ScriptPathField, opts.cfgPath),
		zap.Int(logger.StepCountField, len(statements)),
	)

	store := sequence.NewStore(sequence.WithLogger(l))
	s.Seed(store)
	batchErr := store.Batch(statements)
	for _, key := range store.Keys() {
		if x, ok := store.Get(key); ok {
			l.Debug("sequence ready", zap.String(logger.SequenceKeyField, key), zap.Int("length", x.Len()))
		}
	}

	out := cmd.OutOrStdout()
	if opts.tree {
		err = report.Tree(store, out)
	} else {
		err = report.Lines(store, out)
	}
	if err != nil {
		return errors.Wrap(err, "can't write report")
	}

	if batchErr != nil {
		return errors.WithMessagef(batchErr, "%d step(s) failed", len(multierr.Errors(batchErr)))
	}

	return nil
}
