package bvh

import (
	"fmt"
	"sort"

	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
)

// Strategy selects how a range of surfaces is partitioned at each split
type Strategy int

const (
	// StrategyMedian sorts the range by centroid along the longest axis
	// and places half the surfaces in each subtree
	StrategyMedian Strategy = iota

	// StrategyMidpoint partitions around the spatial midpoint of the
	// longest axis, falling back to the median split when one side would
	// be empty
	StrategyMidpoint

	// StrategySAH evaluates bucketed candidate planes on every axis and
	// picks the one minimizing the surface area heuristic cost, becoming
	// a leaf when no plane beats the cost of not splitting
	StrategySAH
)

// String returns the strategy's CLI name
func (s Strategy) String() string {
	switch s {
	case StrategyMedian:
		return "median"
	case StrategyMidpoint:
		return "midpoint"
	case StrategySAH:
		return "sah"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a CLI name into a Strategy
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "median":
		return StrategyMedian, nil
	case "midpoint":
		return StrategyMidpoint, nil
	case "sah":
		return StrategySAH, nil
	default:
		return 0, fmt.Errorf("unknown partition strategy %q (expected median, midpoint or sah)", name)
	}
}

// traversalCost is the SAH cost of one extra box test relative to one
// surface intersection test
const traversalCost = 1.0

func centroid(s geometry.Surface) core.Vec3 {
	return s.BoundingBox().Center()
}

// partition reorders surfaces[lo:hi) around a split point and returns the
// index of the first surface in the right half and the split axis. Every
// strategy produces two non-empty halves, so leaves are created only by
// the LeafSize threshold. Surfaces with equal centroids keep their
// original relative order so identical inputs always build identical trees.
func (b *builder) partition(lo, hi int, bounds core.AABB) (mid, axis int) {
	switch b.opts.Strategy {
	case StrategyMidpoint:
		return b.midpointSplit(lo, hi, bounds)
	case StrategySAH:
		return b.sahSplit(lo, hi, bounds)
	default:
		return b.medianSplit(lo, hi, bounds)
	}
}

// medianSplit bisects the range at the median centroid along the longest
// axis. It always produces two non-empty halves for ranges of length >= 2.
func (b *builder) medianSplit(lo, hi int, bounds core.AABB) (mid, axis int) {
	axis = bounds.LongestAxis()
	section := b.surfaces[lo:hi]
	sort.SliceStable(section, func(i, j int) bool {
		return centroid(section[i]).Component(axis) < centroid(section[j]).Component(axis)
	})
	return lo + (hi-lo)/2, axis
}

// midpointSplit partitions around the spatial midpoint of the longest axis
func (b *builder) midpointSplit(lo, hi int, bounds core.AABB) (mid, axis int) {
	axis = bounds.LongestAxis()
	midpoint := bounds.Center().Component(axis)

	mid = b.stablePartition(lo, hi, func(s geometry.Surface) bool {
		return centroid(s).Component(axis) < midpoint
	})
	if mid == lo || mid == hi {
		// Everything landed on one side; the median split always bisects
		mid, axis = b.medianSplit(lo, hi, bounds)
	}
	return mid, axis
}

// sahSplit evaluates bucketed candidate planes on each axis and partitions
// at the cheapest one. Cost model: traversalCost + pL*NL + pR*NR where
// pL/pR are the child-to-parent surface area ratios. When no plane beats
// the cost of intersecting the whole range it falls back to the median
// split, keeping leaves bounded by the LeafSize threshold.
func (b *builder) sahSplit(lo, hi int, bounds core.AABB) (mid, axis int) {
	n := hi - lo
	parentArea := bounds.SurfaceArea()
	if parentArea <= 0 {
		// Degenerate parent box; cost ratios are meaningless here
		return b.medianSplit(lo, hi, bounds)
	}

	bestCost := float64(n) // cost of not splitting: intersect everything
	bestAxis := -1
	bestSplit := 0.0

	var counts [64]int
	var boxes [64]core.AABB
	buckets := b.opts.SAHBuckets
	if buckets > len(counts) {
		buckets = len(counts)
	}

	for candidateAxis := 0; candidateAxis < 3; candidateAxis++ {
		axisMin := bounds.Min.Component(candidateAxis)
		extent := bounds.Max.Component(candidateAxis) - axisMin
		if extent <= 0 {
			// Zero extent: a hard "don't split on this axis" signal
			continue
		}

		for i := 0; i < buckets; i++ {
			counts[i] = 0
			boxes[i] = core.EmptyAABB()
		}
		for _, s := range b.surfaces[lo:hi] {
			bucket := int(float64(buckets) * (centroid(s).Component(candidateAxis) - axisMin) / extent)
			if bucket >= buckets {
				bucket = buckets - 1
			}
			if bucket < 0 {
				bucket = 0
			}
			counts[bucket]++
			boxes[bucket] = boxes[bucket].Union(s.BoundingBox())
		}

		// Sweep the buckets, considering the plane after each one
		leftBox := core.EmptyAABB()
		leftCount := 0
		for i := 0; i < buckets-1; i++ {
			leftBox = leftBox.Union(boxes[i])
			leftCount += counts[i]

			rightCount := n - leftCount
			if leftCount == 0 || rightCount == 0 {
				continue
			}

			rightBox := core.EmptyAABB()
			for j := i + 1; j < buckets; j++ {
				rightBox = rightBox.Union(boxes[j])
			}

			cost := traversalCost +
				(leftBox.SurfaceArea()/parentArea)*float64(leftCount) +
				(rightBox.SurfaceArea()/parentArea)*float64(rightCount)
			if cost < bestCost {
				bestCost = cost
				bestAxis = candidateAxis
				bestSplit = axisMin + extent*float64(i+1)/float64(buckets)
			}
		}
	}

	if bestAxis < 0 {
		// No candidate beat the cost of not splitting, but the range is
		// over the leaf threshold; bisect it and let the recursion finish
		return b.medianSplit(lo, hi, bounds)
	}

	mid = b.stablePartition(lo, hi, func(s geometry.Surface) bool {
		return centroid(s).Component(bestAxis) < bestSplit
	})
	if mid == lo || mid == hi {
		// All centroids in one bucket range; shouldn't happen for a
		// winning plane, but guard against float edge cases
		mid, bestAxis = b.medianSplit(lo, hi, bounds)
	}
	return mid, bestAxis
}

// stablePartition reorders surfaces[lo:hi) so every surface satisfying
// pred comes before every surface that does not, preserving relative order
// within each group. Returns the index of the first non-matching surface.
func (b *builder) stablePartition(lo, hi int, pred func(geometry.Surface) bool) int {
	left := b.scratch[:0]
	rightStart := hi - lo
	right := b.scratch[rightStart:rightStart]

	for _, s := range b.surfaces[lo:hi] {
		if pred(s) {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	mid := lo + len(left)
	copy(b.surfaces[lo:], left)
	copy(b.surfaces[mid:hi], right)
	return mid
}
