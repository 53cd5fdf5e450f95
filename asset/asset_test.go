package asset

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gopxl/beep"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// wavBytes builds a 16-bit mono PCM wav with a ramp signal
func wavBytes(rate, samples int) []byte {
	var buf bytes.Buffer
	dataLen := samples * 2
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(rate))
	binary.Write(&buf, binary.LittleEndian, uint32(rate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for i := 0; i < samples; i++ {
		binary.Write(&buf, binary.LittleEndian, int16(i*100))
	}
	return buf.Bytes()
}

func collect(t *testing.T, l *Loader, n int) map[string]Result {
	t.Helper()
	out := make(map[string]Result, n)
	timeout := time.After(5 * time.Second)
	for len(out) < n {
		select {
		case r := <-l.Results():
			out[r.Tag] = r
		case <-timeout:
			t.Fatalf("timed out with %d/%d results", len(out), n)
		}
	}
	return out
}

func TestDecodeTextureDownsamples(t *testing.T) {
	data := pngBytes(t, 1024, 512, color.RGBA{R: 255, A: 255})

	tex, err := DecodeTexture(data)
	require.NoError(t, err)
	assert.Equal(t, MaxTextureWidth, tex.Width)
	assert.Equal(t, MaxTextureHeight, tex.Height)

	c := tex.Sample(0.5, 0.5)
	assert.InDelta(t, 1.0, c.R, 0.01)
	assert.InDelta(t, 0.0, c.G, 0.01)
}

func TestDecodeTextureRejectsNonImage(t *testing.T) {
	_, err := DecodeTexture([]byte("not an image at all"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTextureSampleWraps(t *testing.T) {
	tex := &Texture{Width: 2, Height: 1, Pix: []colorful.Color{{R: 1}, {B: 1}}}
	assert.Equal(t, tex.Sample(0.25, 0), tex.Sample(1.25, 3))
	assert.Equal(t, tex.Sample(0.75, 0), tex.Sample(-0.25, 0))
}

func TestPlaceholderTextureStable(t *testing.T) {
	base := colorful.Color{R: 0.2, G: 0.4, B: 0.8}
	a := PlaceholderTexture("earth", base)
	b := PlaceholderTexture("earth", base)
	require.Equal(t, a.Width*a.Height, len(a.Pix))
	assert.Equal(t, a.Pix, b.Pix)
}

func TestParseModel(t *testing.T) {
	m := DefaultModel()
	require.NotNil(t, m.Clip(ClipIdle))
	require.NotNil(t, m.Clip(ClipRun))
	assert.Equal(t, "stickman", m.Name)

	run := m.Clip(ClipRun)
	assert.Equal(t, run.Frames[0], run.FrameAt(0))
	assert.Equal(t, run.Frames[1], run.FrameAt(run.FrameDuration*1.5))
	// Loops past the end
	assert.Equal(t, run.Frames[0], run.FrameAt(run.Duration()+0.01))
}

func TestParseModelMissingClip(t *testing.T) {
	_, err := ParseModel([]byte(`
name = "broken"
[[clips]]
name = "idle"
frame_duration = 0.5
frames = [["o"]]
`))
	assert.Error(t, err)

	_, err = ParseModel([]byte(`name = "empty"`))
	assert.ErrorIs(t, err, ErrEmptyModel)
}

func TestDecodeSoundWav(t *testing.T) {
	s, err := DecodeSound(wavBytes(22050, 200), beep.SampleRate(44100))
	require.NoError(t, err)
	assert.Greater(t, s.Len(), 200)
	assert.Equal(t, beep.SampleRate(44100), s.Buffer.Format().SampleRate)
}

func TestDecodeSoundUnknown(t *testing.T) {
	_, err := DecodeSound(pngBytes(t, 2, 2, color.White), beep.SampleRate(44100))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoaderDeliversResults(t *testing.T) {
	fsys := fstest.MapFS{
		"textures/earth.png":         {Data: pngBytes(t, 8, 4, color.RGBA{G: 200, A: 255})},
		"models/stickman/model.toml": {Data: []byte(DefaultCharacterModel)},
		"sounds/drums.wav":           {Data: wavBytes(44100, 100)},
	}

	l := NewLoader(context.Background(), LoaderConfig{
		FS:         fsys,
		SampleRate: beep.SampleRate(44100),
		Retries:    1,
		RetryDelay: time.Millisecond,
	})
	l.Load(Request{Kind: KindTexture, Path: "textures/earth.png", Tag: "earth"})
	l.Load(Request{Kind: KindModel, Path: "models/stickman/model.toml", Tag: "character"})
	l.Load(Request{Kind: KindSound, Path: "sounds/drums.wav", Tag: "drums"})
	l.Load(Request{Kind: KindTexture, Path: "textures/missing.jpg", Tag: "missing"})

	got := collect(t, l, 4)
	l.Wait()

	require.NoError(t, got["earth"].Err)
	assert.NotNil(t, got["earth"].Texture)
	require.NoError(t, got["character"].Err)
	assert.NotNil(t, got["character"].Model)
	require.NoError(t, got["drums"].Err)
	assert.Equal(t, 100, got["drums"].Sound.Len())

	miss := got["missing"].Err
	require.Error(t, miss)
	assert.ErrorIs(t, miss, ErrLoadFailure)
	assert.ErrorIs(t, miss, fs.ErrNotExist)

	var le *LoadError
	require.True(t, errors.As(miss, &le))
	assert.Equal(t, KindTexture, le.Kind)
	assert.Equal(t, "textures/missing.jpg", le.Path)

	assert.Equal(t, 0, l.Pending())
	assert.Equal(t, 1, l.Failed())
}

func TestLoaderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLoader(ctx, LoaderConfig{FS: fstest.MapFS{}})
	l.Load(Request{Kind: KindModel, Path: "models/x.toml", Tag: "x"})
	l.Wait()
	assert.Equal(t, 0, l.Pending())
}

var errDeviceBusy = errors.New("device busy")

// flakyFS fails the first n opens with a transient error
type flakyFS struct {
	fs    fs.FS
	n     int32
	calls atomic.Int32
}

func (f *flakyFS) Open(name string) (fs.File, error) {
	if f.calls.Add(1) <= f.n {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errDeviceBusy}
	}
	return f.fs.Open(name)
}

func TestLoaderRetriesTransientErrors(t *testing.T) {
	files := fstest.MapFS{"models/stickman/model.toml": {Data: []byte(DefaultCharacterModel)}}

	tests := []struct {
		name      string
		failures  int32
		retries   int
		wantErr   bool
		wantCalls int32
	}{
		{"recovers within retries", 2, 2, false, 3},
		{"gives up after retries", 3, 2, true, 3},
		{"negative retries try once", 5, -1, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := &flakyFS{fs: files, n: tt.failures}
			l := NewLoader(context.Background(), LoaderConfig{
				FS:         fsys,
				Retries:    tt.retries,
				RetryDelay: time.Millisecond,
			})
			l.Load(Request{Kind: KindModel, Path: "models/stickman/model.toml", Tag: "character"})
			got := collect(t, l, 1)["character"]
			l.Wait()

			assert.Equal(t, tt.wantCalls, fsys.calls.Load())
			if !tt.wantErr {
				require.NoError(t, got.Err)
				assert.NotNil(t, got.Model)
				assert.Equal(t, 0, l.Failed())
				return
			}
			var le *LoadError
			require.True(t, errors.As(got.Err, &le))
			assert.ErrorIs(t, got.Err, ErrLoadFailure)
			assert.ErrorIs(t, got.Err, errDeviceBusy)
			assert.Nil(t, got.Model)
			assert.Equal(t, 1, l.Failed())
		})
	}
}
