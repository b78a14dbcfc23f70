// This file is part of this software.

// Package audio implements the I2S peripheral: a steady-rate producer of
// signed 16-bit stereo samples (spec §6). The codec I2C slave is held by
// the peripheral but not consulted: samples pass through unscaled and no
// sample rate is read from it.
package audio

import "github.com/Davidslv/zigpod-sub010/hardware/peripherals/i2c"

// Register offsets for the small I2S control surface firmware pokes:
// enable, FIFO data (mono-interleaved stereo write), and FIFO status.
const (
	RegControl    = 0x00
	RegFIFOData   = 0x04
	RegFIFOStatus = 0x08
)

const ctrlEnable = 1 << 0
const fifoStatusSpace = 1 << 0 // FIFO always has room; this model never blocks

// ringCapacity bounds the producer/consumer ring (spec §5: "a bounded
// lock-free ring for audio samples"). A plain slice with no locking stands
// in for the lock-free structure here: the core is single-threaded and
// hands each batch to the Sink itself, from Tick or when the ring fills.
const ringCapacity = 1 << 14

// Sink receives produced samples; a host audio backend implements this.
type Sink interface {
	Accept(samples []int16)
}

// I2S is the register file and sample producer.
type I2S struct {
	codec   *i2c.Codec
	sink    Sink
	enabled bool
	ring    []int16
}

// New creates an I2S peripheral attached to codec.
func New(codec *i2c.Codec) *I2S {
	return &I2S{codec: codec}
}

// SetSink attaches the host audio consumer.
func (s *I2S) SetSink(sink Sink) { s.sink = sink }

// pushSample appends one 16-bit sample written by firmware through the
// FIFO register, unchanged; left and right channels alternate in the
// stream. Samples written while the peripheral is disabled are dropped.
func (s *I2S) pushSample(v int16) {
	if !s.enabled {
		return
	}
	s.ring = append(s.ring, v)
	if len(s.ring) >= ringCapacity {
		s.flush()
	}
}

func (s *I2S) flush() {
	if s.sink != nil && len(s.ring) > 0 {
		s.sink.Accept(s.ring)
	}
	s.ring = s.ring[:0]
}

// Tick is called once per orchestrator time-advance (spec §4.10: "Emits...
// audio-sample production through peripheral-side hooks on a configurable
// cadence"); it flushes whatever has accumulated so the sink sees samples
// promptly even without filling the ring.
func (s *I2S) Tick() {
	if len(s.ring) > 0 {
		s.flush()
	}
}

// Read32 implements bus.Handler.
func (s *I2S) Read32(offset uint32) uint32 {
	switch offset {
	case RegControl:
		if s.enabled {
			return ctrlEnable
		}
		return 0
	case RegFIFOStatus:
		return fifoStatusSpace
	default:
		return 0
	}
}

// Write32 implements bus.Handler.
func (s *I2S) Write32(offset uint32, val uint32) {
	switch offset {
	case RegControl:
		s.enabled = val&ctrlEnable != 0
	case RegFIFOData:
		s.pushSample(int16(val))
	}
}
