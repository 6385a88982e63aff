package main

import (
	"fmt"
	"io"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/irisnb/gaussnb/bayes"
	"github.com/irisnb/gaussnb/bayes/plotting"
)

const (
	defaultTrainPath = "iris_data_files/iris_training.dat"
	defaultTestPath  = "iris_data_files/iris_test.dat"
)

type options struct {
	Train     string `arg:"--train" help:"training data file"`
	Test      string `arg:"--test" help:"test data file"`
	Examples  string `arg:"--examples" help:"YAML file of example vectors to classify after the test run"`
	Mode      string `arg:"--mode" help:"per-record (default) or gaussian"`
	Plot      string `arg:"--plot" help:"directory to write per-feature density charts into"`
	Confusion bool   `arg:"--confusion" help:"log the confusion matrix of the test run"`
	Verbose   bool   `arg:"-v,--verbose" help:"debug logging"`
}

func defaultOptions() options {
	return options{
		Train: defaultTrainPath,
		Test:  defaultTestPath,
		Mode:  bayes.PerRecord.String(),
	}
}

// mHandleErr is the error handler for the main function. Any error is fatal.
func mHandleErr(logger *zap.SugaredLogger, err error) {
	if err != nil {
		logger.Fatalf("%v", err)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	opts := defaultOptions()
	arg.MustParse(&opts)

	l, err := newLogger(opts.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer l.Sync()
	logger := l.Sugar()

	mHandleErr(logger, run(opts, os.Stdout, logger))
}

func run(opts options, out io.Writer, logger *zap.SugaredLogger) error {
	cfg := bayes.DefaultConfig()
	mode, err := bayes.ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	training, test, err := bayes.LoadDataset(opts.Train, opts.Test, cfg)
	if err != nil {
		return err
	}
	logger.Infow("loaded dataset", "training", len(training), "test", len(test))

	examples := bayes.DefaultExamples()
	if opts.Examples != "" {
		if examples, err = bayes.LoadExamples(opts.Examples, cfg); err != nil {
			return err
		}
	}

	model := bayes.New(cfg, mode)
	if err := model.Fit(training); err != nil {
		return errors.WithMessage(err, "fit")
	}
	logger.Debugw("fitted", "mode", mode)

	confusion := bayes.NewConfusion(cfg.Classes)
	tally, err := bayes.Evaluate(model, test, func(p bayes.Prediction) {
		fmt.Fprintf(out, "%v, %v\n", p.Record.Class, p.Predicted)
		confusion.Add(p)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "model accuracy: %v\n", tally.Accuracy())
	logger.Infow("evaluated", "mode", mode, "right", tally.Right, "wrong", tally.Wrong)
	if opts.Confusion {
		logger.Infof("confusion matrix:\n%v", confusion)
	}

	for _, ex := range examples {
		predicted, err := model.Predict(ex.Features)
		if err != nil {
			return errors.Wrapf(err, "example %v", ex.Features)
		}
		fmt.Fprintf(out, "should be %v: %v\n", ex.Expect, predicted)
	}

	if opts.Plot != "" {
		files, err := plotting.SaveDensities(model, opts.Plot)
		if err != nil {
			return err
		}
		logger.Infow("wrote density charts", "files", files)
	}
	return nil
}
