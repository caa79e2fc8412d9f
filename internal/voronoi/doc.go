// Package voronoi renders an animated Voronoi diagram of touch-placed seeds
// into a fixed-size RGB565 frame.
//
// An Engine holds up to MaxPointCount seeds. Each call to Draw pushes the
// seeds apart with a short-range inverse-square repulsion, labels every pixel
// with its nearest seed and paints the frame, then hands it to a Presenter.
//
// Labelling uses the Jump Flood Algorithm over two ping-pong seed grids. The
// result is approximate near cell boundaries, where two seeds are almost
// equidistant, and exact almost everywhere else. When the grids cannot be
// allocated the engine labels pixels by an exact brute-force scan instead;
// Reallocate retries the allocation. Binaries built with -tags opencl can run
// the flood passes on an OpenCL device.
//
// All engine state sits behind one mutex, so CommitPoint (the input side) and
// Draw (the render side) may run on different goroutines.
package voronoi
