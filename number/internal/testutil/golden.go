// Package testutil provides shared test infrastructure for the number kernel.
// It loads the golden factorization dataset used by number/ tests.
package testutil

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/factorizations.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is a single value with its expected factor set.
type GoldenTestCase struct {
	Name    string         `json:"name"`
	Kind    string         `json:"kind"`
	Value   string         `json:"value"` // decimal, arbitrary precision
	Factors []GoldenFactor `json:"factors"`
}

// GoldenFactor is one expected (prime, exponent) pair.
type GoldenFactor struct {
	Prime    string `json:"prime"`
	Exponent int    `json:"exponent"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: number/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "factorizations.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// MustBigInt parses a decimal string or fails the test.
func MustBigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid integer %q in golden dataset", s)
	}
	return v
}
