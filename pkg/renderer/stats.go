package renderer

import "time"

// RenderStats summarizes a completed render
type RenderStats struct {
	Width           int
	Height          int
	TotalPixels     int
	SamplesPerPixel int
	TotalSamples    int
	Tiles           int
	Workers         int
	Elapsed         time.Duration
}

// RaysPerSecond returns the primary ray throughput of the render
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
