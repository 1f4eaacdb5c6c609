package model

import (
	"fmt"
	"image"
	"time"
)

// PreviewRequest represents a single preview fetch
type PreviewRequest struct {
	ID         string
	URL        string // relative reference as set by the controller
	Status     PreviewStatus
	Image      image.Image // decoded image when Ready
	Width      int         // source width before scaling
	Height     int         // source height before scaling
	LastError  string      // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the request took, or zero while it is active
func (pr *PreviewRequest) Elapsed() time.Duration {
	if pr.FinishedAt.IsZero() || pr.StartedAt.IsZero() {
		return 0
	}
	return pr.FinishedAt.Sub(pr.StartedAt)
}

// GetSizeString returns the source size as WxH, or "—" if unknown
func (pr *PreviewRequest) GetSizeString() string {
	if pr.Width <= 0 || pr.Height <= 0 {
		return "—"
	}
	return fmt.Sprintf("%dx%d", pr.Width, pr.Height)
}
