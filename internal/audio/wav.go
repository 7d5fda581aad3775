package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoAudioData means the synthesis call succeeded but carried no payload.
var ErrNoAudioData = errors.New("no audio data received from API")

const wavHeaderSize = 44

// Format describes raw little-endian PCM samples.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// SpeechFormat is what the speech model returns: 24 kHz mono 16-bit.
var SpeechFormat = Format{SampleRate: 24000, Channels: 1, BitsPerSample: 16}

func (f Format) blockAlign() int { return f.Channels * f.BitsPerSample / 8 }
func (f Format) byteRate() int   { return f.SampleRate * f.blockAlign() }

// FormatFromMIME reads the rate parameter of an "audio/L16;rate=24000" style
// MIME type. Anything missing or unparsable falls back to SpeechFormat.
func FormatFromMIME(mime string) Format {
	f := SpeechFormat
	for _, param := range strings.Split(mime, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(k, "rate") {
			continue
		}
		if rate, err := strconv.Atoi(v); err == nil && rate > 0 {
			f.SampleRate = rate
		}
	}
	return f
}

// EncodeWAV prepends a canonical 44-byte RIFF/WAVE header to pcm. The RIFF
// chunk size is 36+len(pcm) and the data chunk size is len(pcm).
func EncodeWAV(pcm []byte, f Format) []byte {
	out := make([]byte, wavHeaderSize+len(pcm))
	le := binary.LittleEndian

	copy(out[0:4], "RIFF")
	le.PutUint32(out[4:8], uint32(wavHeaderSize-8+len(pcm)))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	le.PutUint32(out[16:20], 16) // fmt chunk size
	le.PutUint16(out[20:22], 1)  // PCM
	le.PutUint16(out[22:24], uint16(f.Channels))
	le.PutUint32(out[24:28], uint32(f.SampleRate))
	le.PutUint32(out[28:32], uint32(f.byteRate()))
	le.PutUint16(out[32:34], uint16(f.blockAlign()))
	le.PutUint16(out[34:36], uint16(f.BitsPerSample))

	copy(out[36:40], "data")
	le.PutUint32(out[40:44], uint32(len(pcm)))

	copy(out[wavHeaderSize:], pcm)
	return out
}

// Header is the parsed form of a WAV header, used to check encoded output.
type Header struct {
	RIFFSize uint32
	Format   Format
	ByteRate uint32
	DataSize uint32
}

// ParseHeader reads back the fields EncodeWAV writes.
func ParseHeader(wav []byte) (Header, error) {
	if len(wav) < wavHeaderSize {
		return Header{}, fmt.Errorf("wav too short: %d bytes", len(wav))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" ||
		string(wav[12:16]) != "fmt " || string(wav[36:40]) != "data" {
		return Header{}, errors.New("not a canonical PCM wav header")
	}
	le := binary.LittleEndian
	return Header{
		RIFFSize: le.Uint32(wav[4:8]),
		Format: Format{
			Channels:      int(le.Uint16(wav[22:24])),
			SampleRate:    int(le.Uint32(wav[24:28])),
			BitsPerSample: int(le.Uint16(wav[34:36])),
		},
		ByteRate: le.Uint32(wav[28:32]),
		DataSize: le.Uint32(wav[40:44]),
	}, nil
}

// Duration returns the playback length in seconds of pcm in format f.
func (f Format) Duration(pcmBytes int) float64 {
	if f.byteRate() == 0 {
		return 0
	}
	return float64(pcmBytes) / float64(f.byteRate())
}
