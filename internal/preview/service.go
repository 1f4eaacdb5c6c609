package preview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	// Formats the renderer may answer with.
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/ytget/wallpanel/internal/model"
	"github.com/ytget/wallpanel/internal/urlbuilder"
)

// Defaults
const (
	DefaultTimeout      = 15 * time.Second
	DefaultMaxDimension = 720
	MaxBodyBytes        = 32 << 20
)

var (
	// ErrUnexpectedStatus is returned for non-2xx renderer responses.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrNotImage is returned when the response is not an image.
	ErrNotImage = errors.New("response is not an image")

	// ErrSuperseded marks a request replaced by a newer reference.
	ErrSuperseded = errors.New("superseded by a newer preview")
)

// Service loads preview images from the rendering service
type Service struct {
	client  *http.Client
	origin  func() string
	timeout time.Duration
	maxDim  int
	log     *slog.Logger

	mu       sync.Mutex
	current  *model.PreviewRequest
	cancel   context.CancelFunc
	onUpdate func(model.PreviewRequest) // callback for UI updates
	wg       sync.WaitGroup
}

// NewService creates a preview service resolving references against origin.
// A nil client uses http.DefaultClient.
func NewService(origin func() string, client *http.Client) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		client:  client,
		origin:  origin,
		timeout: DefaultTimeout,
		maxDim:  DefaultMaxDimension,
		log:     slog.Default(),
	}
}

// SetUpdateCallback sets the callback for request updates. It is called with
// the service lock held and must not call back into the Service.
func (s *Service) SetUpdateCallback(callback func(model.PreviewRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetTimeout sets the per-request timeout
func (s *Service) SetTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.timeout = d
	}
}

// SetMaxDimension sets the longest side of published images; 0 disables scaling
func (s *Service) SetMaxDimension(px int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if px < 0 {
		px = 0
	}
	s.maxDim = px
}

// SetLogger sets the logger
func (s *Service) SetLogger(l *slog.Logger) {
	if l != nil {
		s.log = l
	}
}

// SetReference implements the controller's preview sink.
func (s *Service) SetReference(ref string) {
	s.Load(ref)
}

// Load starts fetching ref and cancels any request still in flight.
// Setting the reference of the current active or ready request again is a
// no-op, matching how an image element treats an unchanged source.
func (s *Service) Load(ref string) model.PreviewRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.URL == ref &&
		(s.current.Status.IsActive() || s.current.Status == model.PreviewStatusReady) {
		return *s.current
	}
	return s.startLocked(ref)
}

// Reload fetches ref again even if it is unchanged, e.g. after the origin moved.
func (s *Service) Reload(ref string) model.PreviewRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked(ref)
}

func (s *Service) startLocked(ref string) model.PreviewRequest {
	s.supersedeLocked()

	req := &model.PreviewRequest{
		ID:        uuid.NewString(),
		URL:       ref,
		Status:    model.PreviewStatusPending,
		StartedAt: time.Now(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	s.current = req
	s.cancel = cancel
	s.notifyLocked(req)

	s.wg.Add(1)
	go s.run(ctx, cancel, req, s.maxDim)

	return *req
}

// Current returns the latest request
func (s *Service) Current() (model.PreviewRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.PreviewRequest{}, false
	}
	return *s.current, true
}

// Cancel aborts the active request, if any
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
}

// Close cancels the active request and waits for fetches to return
func (s *Service) Close() {
	s.Cancel()
	s.wg.Wait()
}

func (s *Service) supersedeLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.current != nil && s.current.Status.IsActive() {
		s.current.Status = model.PreviewStatusCancelled
		s.current.LastError = ErrSuperseded.Error()
		s.current.FinishedAt = time.Now()
		s.notifyLocked(s.current)
	}
}

// run fetches one request and publishes the result if it is still current
func (s *Service) run(ctx context.Context, cancel context.CancelFunc, req *model.PreviewRequest, maxDim int) {
	defer s.wg.Done()
	defer cancel()

	s.mu.Lock()
	if s.current != req || !req.Status.IsActive() {
		s.mu.Unlock()
		return
	}
	req.Status = model.PreviewStatusLoading
	s.notifyLocked(req)
	target := urlbuilder.Absolute(s.origin(), req.URL)
	s.mu.Unlock()

	img, src, err := s.fetch(ctx, target, maxDim)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != req || !req.Status.IsActive() {
		s.log.Debug("dropping superseded preview", "id", req.ID, "url", req.URL)
		return
	}
	req.FinishedAt = time.Now()
	if err != nil {
		req.Status = model.PreviewStatusError
		req.LastError = err.Error()
		s.log.Warn("preview failed", "id", req.ID, "url", target, "error", err)
	} else {
		req.Status = model.PreviewStatusReady
		req.Image = img
		req.Width = src.Dx()
		req.Height = src.Dy()
		s.log.Debug("preview ready", "id", req.ID, "size", req.GetSizeString(), "elapsed", req.Elapsed())
	}
	s.cancel = nil
	s.notifyLocked(req)
}

// fetch downloads and decodes target, returning the scaled image and source bounds
func (s *Service) fetch(ctx context.Context, target string, maxDim int) (image.Image, image.Rectangle, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Accept", "image/png, image/jpeg;q=0.9")
	httpReq.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, image.Rectangle{}, fmt.Errorf("%w: content type %q", ErrNotImage, mediaType)
	}

	src, _, err := image.Decode(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("decoding image: %w", err)
	}
	return Scale(src, maxDim), src.Bounds(), nil
}

// Scale fits src into a maxDim square keeping aspect ratio. Images already
// small enough, or maxDim <= 0, are returned unchanged.
func Scale(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) || w == 0 || h == 0 {
		return src
	}

	var dw, dh int
	if w >= h {
		dw = maxDim
		dh = max(1, h*maxDim/w)
	} else {
		dh = maxDim
		dw = max(1, w*maxDim/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// notifyLocked calls the update callback with a snapshot of req
func (s *Service) notifyLocked(req *model.PreviewRequest) {
	if s.onUpdate != nil {
		s.onUpdate(*req)
	}
}
