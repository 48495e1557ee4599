package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/exactfloat/precise"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type result struct {
	input  string
	exact  string
	fields precise.Components
}

// convertAll converts inputs concurrently, running at most opts.jobs
// conversions at a time. Results are returned in input order.
// The first invalid input cancels the remaining conversions.
func convertAll(ctx context.Context, inputs []string, opts options) ([]result, error) {
	results := make([]result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, opts.jobs)
loop:
	for i, in := range inputs {
		i, in := i, in
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			break loop
		}
		g.Go(func() error {
			defer func() { <-sem }()
			r, err := convert(in, opts)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func convert(in string, opts options) (result, error) {
	r := result{input: in}
	switch {
	case opts.bits:
		b, err := strconv.ParseUint(in, 0, opts.width)
		if err != nil {
			return result{}, fmt.Errorf("parsing %q as a %d-bit pattern: %w", in, opts.width, err)
		}
		if opts.width == 32 {
			r.exact = precise.FromBits32(uint32(b))
			r.fields = precise.Decompose32(math.Float32frombits(uint32(b)))
		} else {
			r.exact = precise.FromBits64(b)
			r.fields = precise.Decompose64(math.Float64frombits(b))
		}
	default:
		f, err := strconv.ParseFloat(in, opts.width)
		if err != nil {
			if !errors.Is(err, strconv.ErrRange) {
				return result{}, fmt.Errorf("parsing %q as float%d: %w", in, opts.width, err)
			}
			log.Warningf("Value %q is out of range for float%d, converting %v.", in, opts.width, f)
		}
		if opts.width == 32 {
			r.exact = precise.Float32(float32(f))
			r.fields = precise.Decompose32(float32(f))
		} else {
			r.exact = precise.Float64(f)
			r.fields = precise.Decompose64(f)
		}
	}
	log.Debugf("Converted %q: %v.", in, r.fields)
	return r, nil
}
