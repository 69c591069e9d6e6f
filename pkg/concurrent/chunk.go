package concurrent

import (
	"context"
	"sync"

	"github.com/lintang-b-s/geodistances/pkg"

	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/errgroup"
)

// Chunk is the half-open index range [Start, End).
type Chunk struct {
	Index int
	Start int
	End   int
}

func (c Chunk) Len() int {
	return c.End - c.Start
}

// ChunkSize is ceil(n / workers), and at least 1.
func ChunkSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	if size < 1 {
		return 1
	}
	return size
}

// Chunks splits [0, n) into contiguous ranges of ChunkSize(n, workers). The
// last chunk may be shorter. n == 0 yields no chunks.
func Chunks(n, workers int) []Chunk {
	size := ChunkSize(n, workers)
	chunks := make([]Chunk, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Start: start,
			End:   min(start+size, n),
		})
	}
	return chunks
}

// MapChunks runs fn over Chunks(n, workers) with at most workers goroutines
// and returns the results in chunk order, whatever order they finished in.
// The first error cancels ctx for the remaining chunks. A panicking chunk is
// reported as pkg.ErrInternalServerError.
func MapChunks[T any](ctx context.Context, n, workers int, fn func(ctx context.Context, c Chunk) (T, error)) ([]T, error) {
	chunks := Chunks(n, workers)
	results := make([]T, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var (
				res T
				err error
				pc  panics.Catcher
			)
			pc.Try(func() {
				res, err = fn(ctx, c)
			})
			if r := pc.Recovered(); r != nil {
				return pkg.WrapErrorf(r.AsError(), pkg.ErrInternalServerError, "chunk %d [%d, %d) panicked", c.Index, c.Start, c.End)
			}
			if err != nil {
				return err
			}
			results[c.Index] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MapIndices calls fn for every index in [0, n) using at most workers
// goroutines and returns the results by index. Once ctx is done or a row
// panics, the remaining rows are skipped and the first error is returned; a
// panic is reported as pkg.ErrInternalServerError.
func MapIndices[T any](ctx context.Context, n, workers int, fn func(i int) T) ([]T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	mapper := iter.Mapper[int, T]{MaxGoroutines: max(workers, 1)}
	results := mapper.Map(idx, func(i *int) T {
		var res T
		if err := ctx.Err(); err != nil {
			fail(err)
			return res
		}

		var pc panics.Catcher
		pc.Try(func() {
			res = fn(*i)
		})
		if r := pc.Recovered(); r != nil {
			fail(pkg.WrapErrorf(r.AsError(), pkg.ErrInternalServerError, "row %d panicked", *i))
		}
		return res
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
