package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "../../almanac/testdata/example.txt"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLowest(t *testing.T) {
	tcs := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "Seeds",
			args: []string{"lowest", example},
			want: "35\n",
		},
		{
			name: "Ranges",
			args: []string{"lowest", "--ranges", example},
			want: "46\n",
		},
		{
			name: "Parallel",
			args: []string{"lowest", "-p", "4", example},
			want: "35\n",
		},
		{
			name: "ParallelRanges",
			args: []string{"lowest", "-p", "4", "-r", example},
			want: "46\n",
		},
		{
			name: "YAML",
			args: []string{"lowest", "../../almanac/testdata/example.yaml"},
			want: "35\n",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLowest_NoSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("seeds:\n\na-to-b map:\n1 2 3\n"), 0644))

	got, err := run(t, "lowest", path)
	require.NoError(t, err)
	assert.Equal(t, "none\n", got)

	got, err = run(t, "lowest", "--ranges", path)
	require.NoError(t, err)
	assert.Equal(t, "none\n", got)
}

func TestLowest_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.txt")
	require.NoError(t, os.WriteFile(path, []byte("seeds: 1 2 3\n"), 0644))

	_, err := run(t, "lowest", "--ranges", path)
	assert.Error(t, err)

	_, err = run(t, "lowest", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "lowest")
	assert.Error(t, err)
}

func TestTrace(t *testing.T) {
	got, err := run(t, "trace", example, "79")
	require.NoError(t, err)
	assert.Equal(t, "seed 79\nsoil 81\nfertilizer 81\nwater 81\nlight 74\ntemperature 78\nhumidity 78\nlocation 82\n", got)

	_, err = run(t, "trace", example, "x")
	assert.Error(t, err)
}
