// This file is part of this software.

// Package audiocapture writes the I2S peripheral's produced sample stream
// to a host WAV file, for developers debugging audio output without a live
// sink attached. This is debug tooling, not part of the emulated machine.
package audiocapture

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Recorder encodes signed 16-bit stereo samples into a WAV file as each
// batch is written; Close finalises the WAV header and closes the file.
type Recorder struct {
	enc  *wav.Encoder
	file *os.File
	buf  *audio.IntBuffer
}

// NewRecorder creates a Recorder writing 16-bit stereo PCM at sampleRate to
// path.
func NewRecorder(path string, sampleRate int) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc := wav.NewEncoder(f, sampleRate, 16, 2, 1)
	return &Recorder{
		enc:  enc,
		file: f,
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

// WriteSamples appends interleaved left/right 16-bit samples, as produced
// by the I2S peripheral's steady output rate (spec §6).
func (r *Recorder) WriteSamples(samples []int16) error {
	r.buf.Data = r.buf.Data[:0]
	for _, s := range samples {
		r.buf.Data = append(r.buf.Data, int(s))
	}
	return r.enc.Write(r.buf)
}

// Close flushes the WAV header/trailer and closes the backing file.
func (r *Recorder) Close() error {
	if err := r.enc.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
