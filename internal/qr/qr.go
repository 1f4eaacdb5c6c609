// Package qr renders the wallpaper URL as a QR code so a phone can open it.
package qr

import (
	"fmt"
	"image"
	"os"

	"github.com/skip2/go-qrcode"
)

// DefaultSizePx is the edge length used when callers pass 0.
const DefaultSizePx = 256

// Image returns a QR code image for payload.
// If payload is empty, it returns (nil, nil).
func Image(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = DefaultSizePx
	}

	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return code.Image(sizePx), nil
}

// PNG returns payload encoded as a PNG QR code.
func PNG(payload string, sizePx int) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("empty qr payload")
	}
	if sizePx <= 0 {
		sizePx = DefaultSizePx
	}
	data, err := qrcode.Encode(payload, qrcode.Medium, sizePx)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return data, nil
}

// WriteFile writes payload as a PNG QR code to path.
func WriteFile(payload string, sizePx int, path string) error {
	data, err := PNG(payload, sizePx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
