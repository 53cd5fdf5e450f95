package asset

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
	"github.com/h2non/filetype"
	"github.com/lixenwraith/moonwalk/constants"
)

// Sound is a fully decoded sample held in memory at the speaker rate
type Sound struct {
	Buffer *beep.Buffer
}

// Len returns the sample count, 0 for an empty sound
func (s *Sound) Len() int {
	if s == nil || s.Buffer == nil {
		return 0
	}
	return s.Buffer.Len()
}

// DecodeSound sniffs wav/mp3 data, decodes it and resamples to rate
func DecodeSound(data []byte, rate beep.SampleRate) (*Sound, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("sniff sound: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch kind.Extension {
	case "wav":
		stream, format, err = wav.Decode(bytes.NewReader(data))
	case "mp3":
		stream, format, err = mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind.Extension, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != rate {
		src = beep.Resample(constants.ResampleQuality, format.SampleRate, rate, stream)
		format.SampleRate = rate
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind.Extension, err)
	}
	return &Sound{Buffer: buf}, nil
}
