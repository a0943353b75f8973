package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectImage(t *testing.T) {
	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 24)...)
	jpeg := append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 24)...)
	webp := append([]byte("RIFF\x00\x00\x00\x00WEBPVP8 "), make([]byte, 16)...)

	tests := []struct {
		name     string
		data     []byte
		wantMIME string
		wantExt  string
		wantErr  error
	}{
		{name: "png", data: png, wantMIME: "image/png", wantExt: ".png"},
		{name: "jpeg", data: jpeg, wantMIME: "image/jpeg", wantExt: ".jpg"},
		{name: "webp", data: webp, wantMIME: "image/webp", wantExt: ".webp"},
		{name: "empty", data: nil, wantErr: ErrEmptyImage},
		{name: "gif", data: []byte("GIF89a\x01\x00\x01\x00"), wantErr: ErrUnsupportedImage},
		{name: "text", data: []byte("hello"), wantErr: ErrUnsupportedImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, ext, err := DetectImage(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, mime)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestGenerationRequest_Mode(t *testing.T) {
	var req GenerationRequest = TextRequest{}
	assert.Equal(t, ModeText, req.Mode())

	req = &ImageRequest{}
	assert.Equal(t, ModeImage, req.Mode())
}

func TestSession_IsZero(t *testing.T) {
	assert.True(t, Session{}.IsZero())
	assert.True(t, Session{User: User{Email: "a@x.com"}}.IsZero())
	assert.False(t, Session{Token: "T1"}.IsZero())
}
