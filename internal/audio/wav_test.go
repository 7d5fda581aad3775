package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAVTwoSecondsOfSilence(t *testing.T) {
	// 2 s * 24000 samples/s * 2 bytes/sample
	pcm := make([]byte, 2*24000*2)

	wav := EncodeWAV(pcm, SpeechFormat)
	require.Len(t, wav, 44+len(pcm))

	h, err := ParseHeader(wav)
	require.NoError(t, err)

	assert.Equal(t, uint32(36+len(pcm)), h.RIFFSize)
	assert.Equal(t, uint32(len(pcm)), h.DataSize)
	assert.Equal(t, uint32(len(wav)-8), h.RIFFSize, "RIFF size covers everything after the size field")
	assert.Equal(t, SpeechFormat, h.Format)
	assert.Equal(t, uint32(48000), h.ByteRate)
	assert.InDelta(t, 2.0, SpeechFormat.Duration(len(pcm)), 1e-9)
}

func TestEncodeWAVHeaderBytes(t *testing.T) {
	wav := EncodeWAV([]byte{0x01, 0x02, 0x03, 0x04}, SpeechFormat)

	want := []byte{
		'R', 'I', 'F', 'F', 40, 0, 0, 0, 'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ', 16, 0, 0, 0, 1, 0, 1, 0,
		0xC0, 0x5D, 0, 0, // 24000
		0x80, 0xBB, 0, 0, // 48000
		2, 0, 16, 0,
		'd', 'a', 't', 'a', 4, 0, 0, 0,
		0x01, 0x02, 0x03, 0x04,
	}
	assert.Equal(t, want, wav)
}

func TestEncodeWAVEmptyPayload(t *testing.T) {
	h, err := ParseHeader(EncodeWAV(nil, SpeechFormat))
	require.NoError(t, err)
	assert.Equal(t, uint32(36), h.RIFFSize)
	assert.Equal(t, uint32(0), h.DataSize)
}

func TestParseHeaderRejectsGarbage(t *testing.T) {
	_, err := ParseHeader([]byte("RIFF"))
	assert.Error(t, err)

	_, err = ParseHeader(make([]byte, 44))
	assert.Error(t, err)
}

func TestFormatFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		rate int
	}{
		{"audio/L16;codec=pcm;rate=24000", 24000},
		{"audio/L16; rate=16000", 16000},
		{"audio/L16", 24000},
		{"audio/L16;rate=abc", 24000},
		{"", 24000},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			f := FormatFromMIME(tt.mime)
			assert.Equal(t, tt.rate, f.SampleRate)
			assert.Equal(t, 1, f.Channels)
			assert.Equal(t, 16, f.BitsPerSample)
		})
	}
}
