//go:build opencl

package voronoi

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLJumpFlood runs the jump flood passes on an OpenCL device. Device
// buffers A and B play the role of the host seed grids; host holds the seeded
// grid A for upload and receives the settled result.
type openCLJumpFlood struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	passKernel *cl.Kernel
	copyKernel *cl.Kernel
	bufs       [2]*cl.MemObject
	host       []SeedCell
	width      int
	height     int
	deviceName string
	warned     bool
}

const jumpFloodKernelSource = `__kernel void jfa_pass(
    const int width,
    const int height,
    const int step,
    __global const short* src,
    __global short* dst)
{
    int idx = get_global_id(0);
    if (idx >= width * height) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    short bx = src[idx * 3];
    short by = src[idx * 3 + 1];
    short bs = src[idx * 3 + 2];
    int best = -1;
    if (bs >= 0) {
        int ddx = x - bx;
        int ddy = y - by;
        best = ddx * ddx + ddy * ddy;
    }
    for (int oy = -1; oy <= 1; oy++) {
        for (int ox = -1; ox <= 1; ox++) {
            if (ox == 0 && oy == 0) {
                continue;
            }
            int nx = x + ox * step;
            int ny = y + oy * step;
            if (nx < 0 || nx >= width || ny < 0 || ny >= height) {
                continue;
            }
            int n = (ny * width + nx) * 3;
            short s = src[n + 2];
            if (s < 0) {
                continue;
            }
            int ddx = x - src[n];
            int ddy = y - src[n + 1];
            int d = ddx * ddx + ddy * ddy;
            if (best < 0 || d < best) {
                best = d;
                bx = src[n];
                by = src[n + 1];
                bs = s;
            }
        }
    }
    dst[idx * 3] = bx;
    dst[idx * 3 + 1] = by;
    dst[idx * 3 + 2] = bs;
}

__kernel void copy_cells(
    const int count,
    __global const short* src,
    __global short* dst)
{
    int i = get_global_id(0);
    if (i >= count) {
        return;
    }
    dst[i] = src[i];
}`

func newOpenCLJumpFlood(width, height int) (*openCLJumpFlood, error) {
	if width < 1 || height < 1 || width > maxGridSide || height > maxGridSide {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &openCLJumpFlood{width: width, height: height, deviceName: device.Name()}
	if err := s.init(device); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// init builds the program and allocates both device grids. On error the
// caller releases whatever was created.
func (s *openCLJumpFlood) init(device *cl.Device) error {
	var err error
	s.context, err = cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return fmt.Errorf("creating OpenCL context: %w", err)
	}
	s.queue, err = s.context.CreateCommandQueue(device, 0)
	if err != nil {
		return fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	s.program, err = s.context.CreateProgramWithSource([]string{jumpFloodKernelSource})
	if err != nil {
		return fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return fmt.Errorf("building OpenCL program: %w", err)
	}
	s.passKernel, err = s.program.CreateKernel("jfa_pass")
	if err != nil {
		return fmt.Errorf("creating pass kernel: %w", err)
	}
	s.copyKernel, err = s.program.CreateKernel("copy_cells")
	if err != nil {
		return fmt.Errorf("creating copy kernel: %w", err)
	}
	size := s.width * s.height * cellBytes
	for i := range s.bufs {
		s.bufs[i], err = s.context.CreateEmptyBuffer(cl.MemReadWrite, size)
		if err != nil {
			return fmt.Errorf("allocating device grid %c: %w", 'A'+i, err)
		}
	}
	s.host = make([]SeedCell, s.width*s.height)
	if err := s.passKernel.SetArgs(int32(s.width), int32(s.height), int32(0), s.bufs[0], s.bufs[1]); err != nil {
		return fmt.Errorf("setting pass kernel arguments: %w", err)
	}
	if err := s.copyKernel.SetArgs(int32(s.width*s.height*3), s.bufs[1], s.bufs[0]); err != nil {
		return fmt.Errorf("setting copy kernel arguments: %w", err)
	}
	return nil
}

func (s *openCLJumpFlood) Name() string { return ModeOpenCLJumpFlood }

// DeviceName reports the OpenCL device in use.
func (s *openCLJumpFlood) DeviceName() string { return s.deviceName }

func (s *openCLJumpFlood) Classify(points []Point, labels []int16) {
	if len(points) == 0 || s.queue == nil {
		fillLabels(labels, noSeed)
		return
	}
	if err := s.flood(points); err != nil {
		// The frame is still drawn; fall back to an exact scan for it.
		if !s.warned {
			log.Printf("OpenCL jump flood failed, classifying on the host: %v", err)
			s.warned = true
		}
		for y := 0; y < s.height; y++ {
			for x := 0; x < s.width; x++ {
				labels[y*s.width+x] = int16(nearestPoint(points, x, y))
			}
		}
		return
	}
	for i, c := range s.host {
		labels[i] = c.Seed
	}
}

func (s *openCLJumpFlood) flood(points []Point) error {
	for i := range s.host {
		s.host[i] = SeedCell{Seed: noSeed}
	}
	for i, p := range points {
		plantCell(s.host, s.width, s.height, i, p)
	}
	byteLen := len(s.host) * cellBytes
	ptr := unsafe.Pointer(&s.host[0])
	if _, err := s.queue.EnqueueWriteBuffer(s.bufs[0], true, 0, byteLen, ptr, nil); err != nil {
		return fmt.Errorf("writing grid A: %w", err)
	}
	global := []int{s.width * s.height}
	front := 0
	for step := initialStep(s.width, s.height); step > 0; step /= 2 {
		if err := s.passKernel.SetArgInt32(2, int32(step)); err != nil {
			return fmt.Errorf("setting step: %w", err)
		}
		if err := s.passKernel.SetArgBuffer(3, s.bufs[front]); err != nil {
			return fmt.Errorf("binding source grid: %w", err)
		}
		if err := s.passKernel.SetArgBuffer(4, s.bufs[1-front]); err != nil {
			return fmt.Errorf("binding destination grid: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.passKernel, nil, global, nil, nil); err != nil {
			return fmt.Errorf("enqueueing pass kernel: %w", err)
		}
		front = 1 - front
	}
	if front != 0 {
		if _, err := s.queue.EnqueueNDRangeKernel(s.copyKernel, nil, []int{len(s.host) * 3}, nil, nil); err != nil {
			return fmt.Errorf("settling grid A: %w", err)
		}
	}
	if _, err := s.queue.EnqueueReadBuffer(s.bufs[0], true, 0, byteLen, ptr, nil); err != nil {
		return fmt.Errorf("reading grid A: %w", err)
	}
	return nil
}

func (s *openCLJumpFlood) Close() {
	for i, buf := range s.bufs {
		if buf != nil {
			buf.Release()
			s.bufs[i] = nil
		}
	}
	if s.copyKernel != nil {
		s.copyKernel.Release()
		s.copyKernel = nil
	}
	if s.passKernel != nil {
		s.passKernel.Release()
		s.passKernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
	s.host = nil
}
