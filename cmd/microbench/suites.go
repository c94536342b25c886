// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"golang.org/x/microbench/benchrun"
)

// A suite is a fixed set of named candidate computations over shared
// input. All candidates within a suite see identical data, so their
// timings are directly comparable.
type suite struct {
	name        string
	description string
	register    func(*benchrun.Registry) error
}

var suites = []suite{
	{
		name:        "sqrt",
		description: "square root: math.Sqrt vs exp(log(x)/2) vs x^0.5",
		register:    registerSqrt,
	},
	{
		name:        "grow",
		description: "building a slice: append-grow vs preallocate vs indexed copy",
		register:    registerGrow,
	},
	{
		name:        "concat",
		description: "building a string: += vs strings.Builder vs strings.Join",
		register:    registerConcat,
	},
}

func findSuite(name string) (*suite, error) {
	for i := range suites {
		if suites[i].name == name {
			return &suites[i], nil
		}
	}
	return nil, fmt.Errorf("unknown suite %q (try \"microbench list\")", name)
}

// sink defeats dead-code elimination of candidate results.
var sink float64

func registerSqrt(reg *benchrun.Registry) error {
	xs := fixedFloats(1 << 16)
	candidates := map[string]func() error{
		"sqrt": func() error {
			var s float64
			for _, x := range xs {
				s += math.Sqrt(x)
			}
			sink = s
			return nil
		},
		"exp-log": func() error {
			var s float64
			for _, x := range xs {
				s += math.Exp(math.Log(x) / 2)
			}
			sink = s
			return nil
		},
		"pow": func() error {
			var s float64
			for _, x := range xs {
				s += math.Pow(x, 0.5)
			}
			sink = s
			return nil
		},
	}
	return registerAll(reg, []string{"sqrt", "exp-log", "pow"}, candidates)
}

func registerGrow(reg *benchrun.Registry) error {
	const n = 1 << 16
	src := fixedFloats(n)
	candidates := map[string]func() error{
		"append-grow": func() error {
			var out []float64
			for _, x := range src {
				out = append(out, x*2)
			}
			sink = out[n-1]
			return nil
		},
		"prealloc": func() error {
			out := make([]float64, 0, n)
			for _, x := range src {
				out = append(out, x*2)
			}
			sink = out[n-1]
			return nil
		},
		"indexed": func() error {
			out := make([]float64, n)
			for i, x := range src {
				out[i] = x * 2
			}
			sink = out[n-1]
			return nil
		},
	}
	return registerAll(reg, []string{"append-grow", "prealloc", "indexed"}, candidates)
}

func registerConcat(reg *benchrun.Registry) error {
	const n = 1 << 12
	words := make([]string, n)
	for i := range words {
		words[i] = strconv.Itoa(i)
	}
	candidates := map[string]func() error{
		"plus-equals": func() error {
			var s string
			for _, w := range words {
				s += w
			}
			sink = float64(len(s))
			return nil
		},
		"builder": func() error {
			var b strings.Builder
			for _, w := range words {
				b.WriteString(w)
			}
			sink = float64(b.Len())
			return nil
		},
		"join": func() error {
			sink = float64(len(strings.Join(words, "")))
			return nil
		},
	}
	return registerAll(reg, []string{"plus-equals", "builder", "join"}, candidates)
}

func registerAll(reg *benchrun.Registry, order []string, candidates map[string]func() error) error {
	for _, name := range order {
		if err := reg.Register(name, candidates[name]); err != nil {
			return err
		}
	}
	return nil
}

// fixedFloats returns n positive floats from a fixed seed, so every
// candidate and every run sees the same input.
func fixedFloats(n int) []float64 {
	rng := rand.New(rand.NewSource(1))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = 1 + 1000*rng.Float64()
	}
	return xs
}
