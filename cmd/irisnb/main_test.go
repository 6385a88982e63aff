package main

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/irisnb/gaussnb/bayes"
)

func testOptions() options {
	opts := defaultOptions()
	opts.Train = "../../" + defaultTrainPath
	opts.Test = "../../" + defaultTestPath
	return opts
}

func runGolden(t *testing.T, opts options, golden string) {
	var out bytes.Buffer
	require.NoError(t, run(opts, &out, zap.NewNop().Sugar()))

	want, err := ioutil.ReadFile(golden)
	require.NoError(t, err)
	assert.Equal(t, string(want), out.String())
}

func TestRunPerRecord(t *testing.T) {
	runGolden(t, testOptions(), "testdata/per-record.golden")
}

func TestRunGaussian(t *testing.T) {
	opts := testOptions()
	opts.Mode = "gaussian"
	opts.Examples = "../../iris_data_files/examples.yaml"
	opts.Confusion = true
	runGolden(t, opts, "testdata/gaussian.golden")
}

func TestRunPlots(t *testing.T) {
	opts := testOptions()
	opts.Mode = "gaussian"
	opts.Plot = t.TempDir()
	require.NoError(t, run(opts, ioutil.Discard, zap.NewNop().Sugar()))

	files, err := ioutil.ReadDir(opts.Plot)
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

func TestRunErrors(t *testing.T) {
	nop := zap.NewNop().Sugar()

	opts := testOptions()
	opts.Train = "missing.dat"
	err := run(opts, ioutil.Discard, nop)
	require.Error(t, err)
	assert.IsType(t, &bayes.IOError{}, errors.Cause(err))

	opts = testOptions()
	opts.Mode = "multinomial"
	assert.Error(t, run(opts, ioutil.Discard, nop))

	// a malformed test line stops the run before anything is printed
	bad := t.TempDir() + "/bad.dat"
	require.NoError(t, ioutil.WriteFile(bad, []byte("5.1 3.5 1.4 0.2 1\n5.1 x 1.4 0.2 1\n"), 0644))
	opts = testOptions()
	opts.Test = bad
	var out bytes.Buffer
	err = run(opts, &out, nop)
	require.Error(t, err)
	assert.IsType(t, &bayes.ParseError{}, errors.Cause(err))
	assert.Empty(t, out.String())
}
