// Package datagen writes seeded random CSV files from per-field
// specifications. It backs the figure commands with reproducible mock
// data.
package datagen

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Kind is a field's value type.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Date
	Bool
	Choice
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Date:
		return "date"
	case Bool:
		return "bool"
	case Choice:
		return "choice"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field describes one CSV column. Only the fields matching the Kind
// are consulted; zero values fall back to the documented defaults.
type Field struct {
	Name string
	Kind Kind

	// Min and Max bound Int and Float values. Both zero means 0 to
	// 100. With LogScale set, values are Base raised to a uniform
	// exponent between log(Min) and log(Max), so they spread evenly
	// on a log axis; Min must be positive. Base defaults to 10.
	Min, Max float64
	LogScale bool
	Base     float64

	// Decimals rounds Float values (default 2); negative keeps the
	// full value.
	Decimals int

	// Length, Charset, Prefix and Suffix shape String values: Prefix
	// plus Length random charset runes (default 8 ASCII letters) plus
	// Suffix.
	Length  int
	Charset string
	Prefix  string
	Suffix  string

	// Start and End bound Date values, inclusive, in the 2006-01-02
	// layout (defaults 2020-01-01 to 2023-12-31). Format is the
	// output layout, default 2006-01-02.
	Start, End string
	Format     string

	// Choices are the Choice values (default A, B, C), drawn
	// uniformly or by Weights.
	Choices []string
	Weights []float64
}

// sampler validates the field and compiles it to a draw function.
func (f Field) sampler() (func(*rand.Rand) string, error) {
	if f.Name == "" {
		return nil, fmt.Errorf("datagen: every field needs a name")
	}
	switch f.Kind {
	case Int, Float:
		lo, hi := f.Min, f.Max
		if lo == 0 && hi == 0 {
			lo, hi = 0, 100
		}
		num := func(r *rand.Rand) float64 {
			return lo + r.Float64()*(hi-lo)
		}
		if f.LogScale {
			if lo <= 0 {
				return nil, fmt.Errorf("datagen: field %s: log scale needs Min > 0, got %v", f.Name, lo)
			}
			base := f.Base
			if base == 0 {
				base = 10
			}
			llo := math.Log(lo) / math.Log(base)
			lhi := math.Log(hi) / math.Log(base)
			num = func(r *rand.Rand) float64 {
				return math.Pow(base, llo+r.Float64()*(lhi-llo))
			}
		}
		if f.Kind == Int {
			return func(r *rand.Rand) string {
				return strconv.Itoa(int(num(r)))
			}, nil
		}
		dec := f.Decimals
		if dec == 0 {
			dec = 2
		}
		if dec < 0 {
			dec = -1
		}
		return func(r *rand.Rand) string {
			return strconv.FormatFloat(num(r), 'f', dec, 64)
		}, nil

	case String:
		n := f.Length
		if n == 0 {
			n = 8
		}
		cs := []rune(f.Charset)
		if len(cs) == 0 {
			cs = []rune(asciiLetters)
		}
		return func(r *rand.Rand) string {
			b := make([]rune, n)
			for i := range b {
				b[i] = cs[r.Intn(len(cs))]
			}
			return f.Prefix + string(b) + f.Suffix
		}, nil

	case Date:
		start, end := f.Start, f.End
		if start == "" {
			start = "2020-01-01"
		}
		if end == "" {
			end = "2023-12-31"
		}
		layout := f.Format
		if layout == "" {
			layout = "2006-01-02"
		}
		t0, err := time.Parse("2006-01-02", start)
		if err != nil {
			return nil, fmt.Errorf("datagen: field %s: %w", f.Name, err)
		}
		t1, err := time.Parse("2006-01-02", end)
		if err != nil {
			return nil, fmt.Errorf("datagen: field %s: %w", f.Name, err)
		}
		days := int(t1.Sub(t0).Hours() / 24)
		if days < 0 {
			return nil, fmt.Errorf("datagen: field %s: End %s is before Start %s", f.Name, end, start)
		}
		return func(r *rand.Rand) string {
			return t0.AddDate(0, 0, r.Intn(days+1)).Format(layout)
		}, nil

	case Bool:
		return func(r *rand.Rand) string {
			return strconv.FormatBool(r.Intn(2) == 0)
		}, nil

	case Choice:
		choices := f.Choices
		if len(choices) == 0 {
			choices = []string{"A", "B", "C"}
		}
		if f.Weights == nil {
			return func(r *rand.Rand) string {
				return choices[r.Intn(len(choices))]
			}, nil
		}
		if len(f.Weights) != len(choices) {
			return nil, fmt.Errorf("datagen: field %s: %d weights for %d choices", f.Name, len(f.Weights), len(choices))
		}
		cum := make([]float64, len(f.Weights))
		var total float64
		for i, w := range f.Weights {
			total += w
			cum[i] = total
		}
		if total <= 0 {
			return nil, fmt.Errorf("datagen: field %s: weights must sum above zero", f.Name)
		}
		return func(r *rand.Rand) string {
			x := r.Float64() * total
			for i, c := range cum {
				if x < c {
					return choices[i]
				}
			}
			return choices[len(choices)-1]
		}, nil
	}
	return nil, fmt.Errorf("datagen: field %s: unknown kind %v", f.Name, f.Kind)
}

// Config drives Write.
type Config struct {
	Fields []Field
	Rows   int

	// Seed makes the output reproducible; zero seeds from the clock.
	Seed int64

	// Overwrite allows replacing an existing file.
	Overwrite bool

	// Comma is the CSV delimiter, ',' when zero.
	Comma rune
}

// Write generates cfg.Rows records and writes them as CSV with a
// header row. An existing file is an error unless cfg.Overwrite is
// set.
func Write(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil && !cfg.Overwrite {
		return fmt.Errorf("datagen: %s already exists (set Overwrite to replace it)", path)
	}
	if len(cfg.Fields) == 0 {
		return fmt.Errorf("datagen: at least one field is required")
	}

	header := make([]string, len(cfg.Fields))
	samplers := make([]func(*rand.Rand) string, len(cfg.Fields))
	for i, f := range cfg.Fields {
		s, err := f.sampler()
		if err != nil {
			return err
		}
		header[i] = f.Name
		samplers[i] = s
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("datagen: %w", err)
	}
	w := csv.NewWriter(out)
	if cfg.Comma != 0 {
		w.Comma = cfg.Comma
	}

	err = w.Write(header)
	for i := 0; err == nil && i < cfg.Rows; i++ {
		rec := make([]string, len(samplers))
		for j, s := range samplers {
			rec[j] = s(r)
		}
		err = w.Write(rec)
	}
	if err == nil {
		w.Flush()
		err = w.Error()
	}
	cerr := out.Close()
	if err != nil {
		return fmt.Errorf("datagen: write %s: %w", path, err)
	}
	if cerr != nil {
		return fmt.Errorf("datagen: write %s: %w", path, cerr)
	}
	return nil
}
