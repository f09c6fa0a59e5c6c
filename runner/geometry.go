package runner

// LaunchGeometry is the partition of a problem into @outer blocks of
// Threads @inner workers
type LaunchGeometry struct {
	Blocks  int64
	Threads int64
}

// Geometry assigns one worker per element: blocks = ceil(n / width)
func Geometry(n int64, width int) LaunchGeometry {
	if width <= 0 {
		panic("launch width must be positive")
	}
	g := LaunchGeometry{Threads: int64(width)}
	if n > 0 {
		g.Blocks = (n-1)/int64(width) + 1
	}
	return g
}

// Workers returns the total number of workers launched, including the ones
// past the end of the problem that exit immediately
func (g LaunchGeometry) Workers() int64 {
	return g.Blocks * g.Threads
}
