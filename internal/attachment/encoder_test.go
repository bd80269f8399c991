package attachment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("unreadable blob")
}

func TestEncodeRoundTrip(t *testing.T) {
	att, err := Encode(context.Background(), "report.pdf", "application/pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	require.NotNil(t, att)

	assert.Equal(t, "report.pdf", att.Name)
	assert.Equal(t, "application/pdf", att.Type)
	assert.True(t, strings.HasPrefix(att.Data, "data:application/pdf;base64,"))

	mimeType, data, err := Decode(att)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mimeType)
	assert.Equal(t, []byte("pdf bytes"), data)
}

func TestEncodeDefaultsMIMEType(t *testing.T) {
	att, err := Encode(context.Background(), "blob.bin", "", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", att.Type)
}

func TestEncodeEmptyName(t *testing.T) {
	att, err := Encode(context.Background(), "  ", "text/plain", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrEmptyName)
	assert.Nil(t, att)
}

func TestEncodeReadFailurePropagates(t *testing.T) {
	att, err := Encode(context.Background(), "broken.txt", "text/plain", failingReader{})
	require.Error(t, err)
	assert.Nil(t, att, "no partial attachment on read failure")
}

func TestEncodeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	att, err := Encode(ctx, "late.txt", "text/plain", strings.NewReader("x"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, att)
}

func TestDecodeRejectsNonDataURI(t *testing.T) {
	_, _, err := Decode(nil)
	require.ErrorIs(t, err, ErrNotDataURI)
}
