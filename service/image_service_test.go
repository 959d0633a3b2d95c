package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDescribeReportsFormatAndSize(t *testing.T) {
	svc := NewImageService()

	got := svc.Describe(encodeTestPNG(t, 12, 8))

	assert.Equal(t, "Image processed: png format, size: 12x8", got)
}

func TestDescribeInvalidBase64(t *testing.T) {
	svc := NewImageService()

	got := svc.Describe("!!! not base64 !!!")

	assert.Contains(t, got, "Error processing image:")
}

func TestDescribeNonImagePayload(t *testing.T) {
	svc := NewImageService()

	got := svc.Describe(base64.StdEncoding.EncodeToString([]byte("just some text")))

	assert.Contains(t, got, "Error processing image:")
}
