// Package gpuutil holds the low-level hal helpers shared by the graphics
// core: buffer upload, synchronous texture readback, and WGSL compilation.
package gpuutil

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// CreateAndUploadBuffer creates a GPU buffer of the given usage and uploads
// data into it through the queue.
func CreateAndUploadBuffer(device hal.Device, queue hal.Queue, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
