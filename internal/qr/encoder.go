// Package qr renders QR codes as PNG images.
package qr

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the default image width and height in pixels.
const DefaultSize = 256

// Encoder renders PNG QR codes at a configurable default size.
type Encoder struct {
	size int
}

// NewEncoder creates an encoder. A non-positive size falls back to
// DefaultSize.
func NewEncoder(size int) *Encoder {
	if size <= 0 {
		size = DefaultSize
	}
	return &Encoder{size: size}
}

// Encode renders data as a PNG QR code at the encoder's default size.
func (e *Encoder) Encode(data string) ([]byte, error) {
	return e.EncodeSized(data, e.size)
}

// EncodeSized renders data as a PNG QR code, size pixels per side. A
// non-positive size falls back to the encoder's default.
func (e *Encoder) EncodeSized(data string, size int) ([]byte, error) {
	if size <= 0 {
		size = e.size
	}
	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

// EncodeBase64 renders data as a PNG QR code and returns it base64
// encoded, ready for embedding in JSON or a data URI.
func (e *Encoder) EncodeBase64(data string) (string, error) {
	png, err := e.Encode(data)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
