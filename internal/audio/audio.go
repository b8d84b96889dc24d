// Package audio is the host-side sample sink for nes.APU: it owns the
// portaudio output stream and drains the channel nes.Console.SetAudioOut
// feeds, matching the teacher's stream-callback shape.
package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const sampleRate = 44100

// Stream owns an open portaudio output stream and the channel the NES
// core's APU writes samples into.
type Stream struct {
	stream  *portaudio.Stream
	Channel chan float32
}

// New allocates a Stream with a buffered channel of sampleRate samples
// (half a second of the interleaved stereo output), matching the
// teacher's slack for scheduling jitter.
func New() *Stream {
	return &Stream{Channel: make(chan float32, sampleRate)}
}

// Start initializes portaudio and opens the default output stream. The
// callback drains Channel, scaling down the raw APU waveform the way the
// teacher's stream callback does; starved samples play as silence rather
// than blocking the audio thread.
func (s *Stream) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: initialize: %w", err)
	}
	cb := func(out []float32) {
		for i := range out {
			select {
			case x := <-s.Channel:
				out[i] = x * 0.05
			default:
				out[i] = 0
			}
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, cb)
	if err != nil {
		return fmt.Errorf("audio: open default stream: %w", err)
	}
	s.stream = stream
	if err := stream.Start(); err != nil {
		return fmt.Errorf("audio: start stream: %w", err)
	}
	return nil
}

// Close stops the stream and terminates portaudio.
func (s *Stream) Close() {
	if s.stream != nil {
		s.stream.Close()
	}
	portaudio.Terminate()
}
