package main

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResultsCSV(t *testing.T) {
	results := []spResult{
		{spParam: spParam{row: 0, s: 3, t: 7}, found: true, length: 1250.5, duration: 1500 * time.Microsecond},
		{spParam: spParam{row: 1, s: 9, t: 2}, found: false, duration: 20 * time.Microsecond},
	}

	var buf bytes.Buffer
	require.NoError(t, writeResultsCSV(&buf, results))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"s", "t", "found", "length", "duration_us"},
		{"3", "7", "true", "1250.5", "1500"},
		{"9", "2", "false", "0", "20"},
	}, records)
}
