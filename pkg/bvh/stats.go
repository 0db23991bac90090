package bvh

// Stats describes the shape of a built hierarchy
type Stats struct {
	TotalNodes    int
	LeafNodes     int
	TotalSurfaces int
	MaxLeafSize   int
	MaxDepth      int
	AvgLeafDepth  float64
}

// Stats walks the tree and collects structural statistics
func (bvh *BVH) Stats() Stats {
	if len(bvh.nodes) == 0 {
		return Stats{}
	}

	stats := Stats{}
	depthSum := 0

	type frame struct {
		index int32
		depth int
	}
	stack := []frame{{0, 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &bvh.nodes[f.index]

		stats.TotalNodes++
		if f.depth > stats.MaxDepth {
			stats.MaxDepth = f.depth
		}

		if n.isLeaf() {
			stats.LeafNodes++
			stats.TotalSurfaces += int(n.count)
			if int(n.count) > stats.MaxLeafSize {
				stats.MaxLeafSize = int(n.count)
			}
			depthSum += f.depth
			continue
		}

		stack = append(stack,
			frame{f.index + 1, f.depth + 1},
			frame{n.rightChild, f.depth + 1},
		)
	}

	if stats.LeafNodes > 0 {
		stats.AvgLeafDepth = float64(depthSum) / float64(stats.LeafNodes)
	}
	return stats
}
