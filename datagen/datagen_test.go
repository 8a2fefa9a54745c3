package datagen

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteScatterShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.csv")
	err := Write(path, Config{
		Rows: 50,
		Seed: 13,
		Fields: []Field{
			{Name: "snowmelt", Kind: Float, Min: 0.05, Max: 60, LogScale: true},
			{Name: "area total", Kind: Int, Min: 1, Max: 800, LogScale: true},
			{Name: "type", Kind: Choice, Choices: []string{"EAIS", "AP", "WAIS"}},
			{Name: "time", Kind: Choice, Choices: []string{"November", "December", "January", "February"}, Weights: []float64{1, 1, 1, 1}},
		},
	})
	require.NoError(t, err)

	rows := readRows(t, path)
	require.Len(t, rows, 51)
	assert.Equal(t, []string{"snowmelt", "area total", "type", "time"}, rows[0])

	regions := map[string]bool{"EAIS": true, "AP": true, "WAIS": true}
	months := map[string]bool{"November": true, "December": true, "January": true, "February": true}
	for _, rec := range rows[1:] {
		melt, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, melt, 0.05)
		assert.LessOrEqual(t, melt, 60.0)

		area, err := strconv.Atoi(rec[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, area, 1)
		assert.LessOrEqual(t, area, 800)

		assert.True(t, regions[rec[2]], rec[2])
		assert.True(t, months[rec[3]], rec[3])
	}
}

func TestWriteDeterministic(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Rows: 20,
		Seed: 7,
		Fields: []Field{
			{Name: "v", Kind: Float},
			{Name: "d", Kind: Date},
			{Name: "ok", Kind: Bool},
		},
	}

	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, Write(a, cfg))
	require.NoError(t, Write(b, cfg))

	ab, err := os.ReadFile(a)
	require.NoError(t, err)
	bb, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, ab, bb)

	cfg.Seed = 8
	c := filepath.Join(dir, "c.csv")
	require.NoError(t, Write(c, cfg))
	cb, err := os.ReadFile(c)
	require.NoError(t, err)
	assert.NotEqual(t, ab, cb)
}

func TestWriteOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	cfg := Config{Rows: 1, Seed: 1, Fields: []Field{{Name: "v", Kind: Int}}}

	require.NoError(t, Write(path, cfg))

	err := Write(path, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	cfg.Overwrite = true
	require.NoError(t, Write(path, cfg))
}

func TestWriteStringField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.csv")
	err := Write(path, Config{
		Rows: 10,
		Seed: 3,
		Fields: []Field{
			{Name: "id", Kind: String, Length: 4, Charset: "ab", Prefix: "x-", Suffix: "!"},
		},
	})
	require.NoError(t, err)

	re := regexp.MustCompile(`^x-[ab]{4}!$`)
	for _, rec := range readRows(t, path)[1:] {
		assert.Regexp(t, re, rec[0])
	}
}

func TestWriteDateField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.csv")
	err := Write(path, Config{
		Rows: 5,
		Seed: 3,
		Fields: []Field{
			{Name: "day", Kind: Date, Start: "2021-06-15", End: "2021-06-15", Format: "02/01/2006"},
		},
	})
	require.NoError(t, err)

	for _, rec := range readRows(t, path)[1:] {
		assert.Equal(t, "15/06/2021", rec[0])
	}
}

func TestWriteComma(t *testing.T) {
	path := filepath.Join(t.TempDir(), "semi.csv")
	err := Write(path, Config{
		Rows:  1,
		Seed:  1,
		Comma: ';',
		Fields: []Field{
			{Name: "a", Kind: Int},
			{Name: "b", Kind: Int},
		},
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "a;b")
}

func TestWriteValidation(t *testing.T) {
	dir := t.TempDir()
	write := func(f Field) error {
		return Write(filepath.Join(dir, "v.csv"), Config{
			Rows:      1,
			Seed:      1,
			Overwrite: true,
			Fields:    []Field{f},
		})
	}

	err := Write(filepath.Join(dir, "empty.csv"), Config{Rows: 1})
	require.Error(t, err)

	require.Error(t, write(Field{Kind: Int}))

	err = write(Field{Name: "v", Kind: Kind(99)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")

	err = write(Field{Name: "v", Kind: Float, Min: 0, Max: 60, LogScale: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log scale")

	err = write(Field{Name: "v", Kind: Choice, Choices: []string{"A", "B"}, Weights: []float64{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")

	err = write(Field{Name: "v", Kind: Date, Start: "2022-01-01", End: "2021-01-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "float", Float.String())
	assert.Equal(t, "choice", Choice.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
