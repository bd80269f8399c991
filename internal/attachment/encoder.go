// Package attachment converts uploaded file blobs into the inline data-URI
// representation stored alongside a notice, and back.
package attachment

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spec-kit/notice-board/internal/domain"
)

const defaultMIMEType = "application/octet-stream"

var (
	// ErrEmptyName is returned when the blob carries no file name.
	ErrEmptyName = errors.New("attachment name is empty")
	// ErrNotDataURI is returned when stored attachment data is not a data URI.
	ErrNotDataURI = errors.New("attachment data is not a data URI")
)

// Encode reads the blob and produces a self-contained attachment whose Data
// field is a base64 data URI. A read failure propagates and no partial
// attachment is returned; calls are independent and share no state.
func Encode(ctx context.Context, name, mimeType string, r io.Reader) (*domain.Attachment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if mimeType == "" {
		mimeType = defaultMIMEType
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read attachment blob: %w", err)
	}

	return &domain.Attachment{
		Name: name,
		Type: mimeType,
		Data: fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw)),
	}, nil
}

// Decode reconstructs the original bytes and MIME type from a stored
// attachment's data URI.
func Decode(att *domain.Attachment) (mimeType string, data []byte, err error) {
	if att == nil {
		return "", nil, ErrNotDataURI
	}
	rest, ok := strings.CutPrefix(att.Data, "data:")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = defaultMIMEType
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode attachment payload: %w", err)
	}
	return mimeType, data, nil
}
