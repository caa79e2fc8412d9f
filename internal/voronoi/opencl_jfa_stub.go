//go:build !opencl

package voronoi

import "errors"

var errOpenCLUnavailable = errors.New("OpenCL support is not enabled; rebuild with -tags opencl")

type openCLJumpFlood struct{}

func newOpenCLJumpFlood(width, height int) (*openCLJumpFlood, error) {
	return nil, errOpenCLUnavailable
}

func (s *openCLJumpFlood) Classify(_ []Point, labels []int16) { fillLabels(labels, noSeed) }

func (s *openCLJumpFlood) Name() string { return ModeOpenCLJumpFlood }

func (s *openCLJumpFlood) DeviceName() string { return "" }

func (s *openCLJumpFlood) Close() {}
