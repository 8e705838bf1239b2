package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/sortbench"
)

const sampleCSV = `Title,Id,col2,col3,Winning Bid,col5,col6,col7,Fund
Zebra,3,x,x,$30.00,x,x,x,General Fund
Apple,1,x,x,$10.00,x,x,x,General Fund
Mango,2,x,x,$20.00,x,x,x,Enterprise
`

// useSampleCSV points the csv config at a temp dataset for one test.
func useSampleCSV(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bids.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	viper.Set("csv", path)
	t.Cleanup(func() { viper.Set("csv", "") })
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]sortbench.Algorithm{
		"selection": sortbench.Selection,
		"quick":     sortbench.Quick,
		"Merge":     sortbench.Merge,
		"HEAP":      sortbench.Heap,
	}
	for name, want := range cases {
		alg, err := parseAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, want, alg)
	}

	_, err := parseAlgorithm("bogo")
	assert.Error(t, err)
}

func TestRunBench(t *testing.T) {
	useSampleCSV(t, sampleCSV)

	var buf bytes.Buffer
	benchCmd.SetOut(&buf)
	defer benchCmd.SetOut(nil)

	require.NoError(t, runBench(benchCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Running benchmark on 3 bids...")
	assert.Contains(t, out, "SORTING ALGORITHM PERFORMANCE COMPARISON")
	assert.Contains(t, out, "Selection Sort")
	assert.Contains(t, out, "Heap Sort")
	assert.Contains(t, out, "O(n log n)")
}

func TestRunBench_EmptyDataset(t *testing.T) {
	useSampleCSV(t, "Title,Id,col2,col3,Winning Bid,col5,col6,col7,Fund\n")

	var buf bytes.Buffer
	benchCmd.SetOut(&buf)
	defer benchCmd.SetOut(nil)

	require.NoError(t, runBench(benchCmd, nil))
	assert.Contains(t, buf.String(), "No data available for benchmarking.")
}

func TestRunSort(t *testing.T) {
	useSampleCSV(t, sampleCSV)

	sortAlgo = "merge"
	sortTop = 0
	defer func() { sortAlgo = "quick"; sortTop = 10 }()

	var buf bytes.Buffer
	sortCmd.SetOut(&buf)
	defer sortCmd.SetOut(nil)

	require.NoError(t, runSort(sortCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Merge Sort completed in")

	// Sorted ascending by title.
	apple := bytes.Index(buf.Bytes(), []byte("Apple"))
	mango := bytes.Index(buf.Bytes(), []byte("Mango"))
	zebra := bytes.Index(buf.Bytes(), []byte("Zebra"))
	assert.True(t, apple < mango && mango < zebra, "expected Apple < Mango < Zebra in output:\n%s", out)
}

func TestRunSort_UnknownAlgorithm(t *testing.T) {
	sortAlgo = "bogo"
	defer func() { sortAlgo = "quick" }()

	err := runSort(sortCmd, nil)
	assert.ErrorContains(t, err, "unknown algorithm")
}

func TestRunSort_MissingFile(t *testing.T) {
	viper.Set("csv", filepath.Join(t.TempDir(), "nope.csv"))
	defer viper.Set("csv", "")

	sortAlgo = "quick"
	err := runSort(sortCmd, nil)
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	useSampleCSV(t, sampleCSV)

	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	require.NoError(t, listCmd.RunE(listCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Displaying 3 bids:")
	assert.Contains(t, out, "1: Apple | $10.00 | General Fund")
}
