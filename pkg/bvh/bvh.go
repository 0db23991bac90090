// Package bvh builds and traverses a bounding volume hierarchy over scene
// surfaces. The tree is a flattened node arena built in the same recursive
// pass that partitions the surface slice in place: a node's left child is
// always the next slot in the arena, leaves reference contiguous ranges of
// the reordered slice, and the root is node 0.
package bvh

import (
	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
)

// Options tunes construction. The bucket count and leaf threshold have no
// single canonical value, so both are configuration with defaults.
type Options struct {
	Strategy   Strategy
	LeafSize   int // Ranges at or below this size become leaves
	SAHBuckets int // Candidate planes per axis for StrategySAH
}

// DefaultOptions returns sensible construction defaults
func DefaultOptions() Options {
	return Options{
		Strategy:   StrategySAH,
		LeafSize:   4,
		SAHBuckets: 12,
	}
}

// node is one slot in the flattened arena. Internal nodes store the index
// of the right child (the left child is the next slot) and the axis the
// range was split on; leaves store a range into the reordered surfaces.
type node struct {
	bounds core.AABB

	// Internal node fields; rightChild == 0 marks a leaf (slot 0 is
	// always the root so it can never be anyone's right child)
	rightChild int32
	splitAxis  uint8

	// Leaf fields
	start int32
	count int32
}

func (n *node) isLeaf() bool {
	return n.rightChild == 0
}

// BVH is an immutable hierarchy over a reordered surface slice. Build once
// per scene, then share read-only across workers.
type BVH struct {
	nodes    []node
	surfaces []geometry.Surface
}

// Build constructs a BVH from the given surfaces. The input slice is
// copied, so the caller's ordering is left untouched; the copy is
// reordered in place during partitioning. An empty input yields a valid
// empty BVH whose queries report no hit.
func Build(surfaces []geometry.Surface, opts Options) *BVH {
	if opts.LeafSize <= 0 {
		opts.LeafSize = DefaultOptions().LeafSize
	}
	if opts.SAHBuckets < 2 {
		opts.SAHBuckets = DefaultOptions().SAHBuckets
	}

	if len(surfaces) == 0 {
		return &BVH{}
	}

	owned := make([]geometry.Surface, len(surfaces))
	copy(owned, surfaces)

	b := &builder{
		opts:     opts,
		surfaces: owned,
		scratch:  make([]geometry.Surface, len(owned)),
		nodes:    make([]node, 0, 2*len(owned)),
	}
	b.build(0, len(owned))

	return &BVH{nodes: b.nodes, surfaces: owned}
}

// Bounds returns the bounding box of the whole hierarchy; the empty box
// for an empty BVH
func (bvh *BVH) Bounds() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.EmptyAABB()
	}
	return bvh.nodes[0].bounds
}

// Surfaces exposes the reordered surface slice. Callers must treat it as
// read-only; leaf ranges index into it.
func (bvh *BVH) Surfaces() []geometry.Surface {
	return bvh.surfaces
}

type builder struct {
	opts     Options
	surfaces []geometry.Surface
	scratch  []geometry.Surface
	nodes    []node
}

// build emits the subtree for surfaces[lo:hi) and returns its root index.
// The recursion reserves a placeholder slot before descending so children
// land at predictable indices, then patches the placeholder once the right
// subtree's position is known, so construction and partitioning happen in
// one pass.
func (b *builder) build(lo, hi int) int32 {
	bounds := geometry.BoundsOf(b.surfaces[lo:hi])
	n := hi - lo

	if n <= b.opts.LeafSize {
		return b.emitLeaf(lo, hi, bounds)
	}

	mid, axis := b.partition(lo, hi, bounds)

	self := int32(len(b.nodes))
	b.nodes = append(b.nodes, node{}) // placeholder, patched below

	b.build(lo, mid) // left child lands at self+1
	right := b.build(mid, hi)

	b.nodes[self] = node{
		bounds:     bounds,
		rightChild: right,
		splitAxis:  uint8(axis),
	}
	return self
}

func (b *builder) emitLeaf(lo, hi int, bounds core.AABB) int32 {
	self := int32(len(b.nodes))
	b.nodes = append(b.nodes, node{
		bounds: bounds,
		start:  int32(lo),
		count:  int32(hi - lo),
	})
	return self
}

// Hit finds the nearest surface intersection within the interval.
// Traversal is iterative with an explicit stack: subtrees whose box is
// missed are pruned, the interval max shrinks to the closest hit found so
// far, and the child nearer along the split axis is visited first.
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	if len(bvh.nodes) == 0 {
		return core.HitRecord{}, false
	}

	stack := make([]int32, 1, 64)
	stack[0] = 0

	var closest core.HitRecord
	found := false

	for len(stack) > 0 {
		self := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &bvh.nodes[self]

		if !n.bounds.Hit(ray, rayT) {
			continue
		}

		if n.isLeaf() {
			for _, s := range bvh.surfaces[n.start : n.start+n.count] {
				if hit, ok := s.Hit(ray, rayT); ok {
					closest = hit
					found = true
					rayT.Max = hit.T
				}
			}
			continue
		}

		// Push the far child first so the near child pops first; which
		// child is nearer follows the ray direction sign on the split axis
		near, far := orderChildren(n, ray, self)
		stack = append(stack, far, near)
	}

	return closest, found
}

// orderChildren orders the children of an internal node near-first for the
// given ray. self is the node's own index (left child = self+1).
func orderChildren(n *node, ray core.Ray, self int32) (near, far int32) {
	left := self + 1
	right := n.rightChild
	if ray.Direction.Component(int(n.splitAxis)) < 0 {
		return right, left
	}
	return left, right
}

// AnyHit reports whether the ray intersects anything within the interval,
// short-circuiting on the first hit. Used for occlusion queries where the
// closest hit is irrelevant.
func (bvh *BVH) AnyHit(ray core.Ray, rayT core.Interval) bool {
	if len(bvh.nodes) == 0 {
		return false
	}

	stack := make([]int32, 1, 64)
	stack[0] = 0

	for len(stack) > 0 {
		self := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &bvh.nodes[self]

		if !n.bounds.Hit(ray, rayT) {
			continue
		}

		if n.isLeaf() {
			for _, s := range bvh.surfaces[n.start : n.start+n.count] {
				if _, ok := s.Hit(ray, rayT); ok {
					return true
				}
			}
			continue
		}

		stack = append(stack, n.rightChild, self+1)
	}

	return false
}
