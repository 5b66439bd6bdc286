package coverage

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ramdani/geocell-backend-go/internal/models"
	"github.com/ramdani/geocell-backend-go/internal/palette"
	"github.com/ramdani/geocell-backend-go/internal/stats"
)

// Link builds spider-graph segments: one per sample whose serving cell
// exists in the index, from the sample position to the cell's boresight
// point, colored by the cell's assigned color. Samples attributed to a
// cell outside the loaded site list are skipped silently.
func Link(samples []models.MeasurementSample, idx Index, colors palette.Assignment) []models.AssociationSegment {
	segments := make([]models.AssociationSegment, 0, len(samples))
	for _, s := range samples {
		edge, ok := idx.Boresight(s.Cellname)
		if !ok {
			continue
		}
		segments = append(segments, models.AssociationSegment{
			Cellname: s.Cellname,
			From:     s.Position,
			To:       edge,
			Color:    colors.Color(s.Cellname),
		})
	}
	return segments
}

// LinkParallel is Link fanned out across worker goroutines. Per-sample
// association is independent, so samples are split into contiguous
// chunks and the per-chunk results are merged back in original sample
// order. Only ctx cancellation can make it return an error.
func LinkParallel(ctx context.Context, samples []models.MeasurementSample, idx Index, colors palette.Assignment) ([]models.AssociationSegment, error) {
	workers := runtime.NumCPU()
	if workers > len(samples) {
		workers = len(samples)
	}
	if workers <= 1 {
		return Link(samples, idx, colors), nil
	}

	chunks := make([][]models.AssociationSegment, workers)
	chunkSize := (len(samples) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > len(samples) {
			end = len(samples)
		}
		if start >= end {
			break
		}
		w := w
		chunk := samples[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunks[w] = Link(chunk, idx, colors)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]models.AssociationSegment, 0, len(samples))
	for _, c := range chunks {
		merged = append(merged, c...)
	}
	return merged, nil
}

// BucketStatistics counts samples per signal bucket in scale order, so
// the legend ordering is stable. Percentages are 0 when there are no
// samples.
func BucketStatistics(samples []models.MeasurementSample, scale palette.SignalScale) []models.BucketStatistic {
	if len(scale) == 0 {
		return nil
	}

	counts := make([]int, len(scale))
	for _, s := range samples {
		counts[palette.ClassifyIndex(s.RSRP, scale)]++
	}

	out := make([]models.BucketStatistic, 0, len(scale))
	for i, b := range scale {
		out = append(out, models.BucketStatistic{
			Label:      b.Label,
			Color:      b.Color,
			Count:      counts[i],
			Percentage: stats.Percentage(counts[i], len(samples)),
		})
	}
	return out
}

// CategoryStatistics counts samples per serving cell, ordered by
// descending count with ties broken by cellname, mirroring a "largest
// contributor first" legend. Cells never seen in the samples are
// omitted.
func CategoryStatistics(samples []models.MeasurementSample, colors palette.Assignment) []models.CategoryStatistic {
	counts := make(map[string]int)
	for _, s := range samples {
		counts[s.Cellname]++
	}

	out := make([]models.CategoryStatistic, 0, len(counts))
	for cell, n := range counts {
		out = append(out, models.CategoryStatistic{
			Cellname:   cell,
			Color:      colors.Color(cell),
			Count:      n,
			Percentage: stats.Percentage(n, len(samples)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Cellname < out[j].Cellname
	})
	return out
}
