package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ytget/wallpanel/internal/model"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

type updates struct {
	mu   sync.Mutex
	list []model.PreviewRequest
}

func (u *updates) add(r model.PreviewRequest) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.list = append(u.list, r)
}

func (u *updates) forID(id string) []model.PreviewStatus {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []model.PreviewStatus
	for _, r := range u.list {
		if r.ID == id {
			out = append(out, r.Status)
		}
	}
	return out
}

func waitFinished(t *testing.T, s *Service, id string) model.PreviewRequest {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		cur, ok := s.Current()
		if ok && cur.ID == id && cur.Status.IsFinished() {
			return cur
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("request %s did not finish", id)
	return model.PreviewRequest{}
}

func newTestService(srv *httptest.Server) *Service {
	return NewService(func() string { return srv.URL }, srv.Client())
}

func TestLoad_Ready(t *testing.T) {
	body := pngBytes(t, 100, 200)
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()

	s := newTestService(srv)
	defer s.Close()
	u := &updates{}
	s.SetUpdateCallback(u.add)

	ref := "/wallpaper?device=iphone-15&lang=en&timezone=0&weekends=off"
	req := s.Load(ref)
	if req.Status != model.PreviewStatusPending {
		t.Errorf("Expected Pending on Load, got %s", req.Status)
	}
	if req.ID == "" {
		t.Error("Expected request ID to be set")
	}

	done := waitFinished(t, s, req.ID)
	if done.Status != model.PreviewStatusReady {
		t.Fatalf("Expected Ready, got %s (%s)", done.Status, done.LastError)
	}
	if done.GetSizeString() != "100x200" {
		t.Errorf("Expected source size 100x200, got %s", done.GetSizeString())
	}
	if done.Image == nil {
		t.Fatal("Expected decoded image")
	}
	if gotPath != "/wallpaper" || gotQuery != "device=iphone-15&lang=en&timezone=0&weekends=off" {
		t.Errorf("Unexpected request %s?%s", gotPath, gotQuery)
	}

	statuses := u.forID(req.ID)
	expected := []model.PreviewStatus{model.PreviewStatusPending, model.PreviewStatusLoading, model.PreviewStatusReady}
	if len(statuses) != len(expected) {
		t.Fatalf("Expected updates %v, got %v", expected, statuses)
	}
	for i := range expected {
		if statuses[i] != expected[i] {
			t.Errorf("Update %d: expected %s, got %s", i, expected[i], statuses[i])
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Write([]byte("<html></html>"))
			},
			wantErr: ErrNotImage,
		},
		{
			name: "decode",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				w.Write([]byte("not a png"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(test.handler)
			defer srv.Close()

			s := newTestService(srv)
			defer s.Close()

			req := s.Load("/wallpaper?device=&lang=&timezone=&weekends=")
			done := waitFinished(t, s, req.ID)
			if done.Status != model.PreviewStatusError {
				t.Fatalf("Expected Error, got %s", done.Status)
			}
			if done.LastError == "" {
				t.Error("Expected LastError to be set")
			}
			if test.wantErr != nil && !strings.Contains(done.LastError, test.wantErr.Error()) {
				t.Errorf("Expected error containing %q, got %q", test.wantErr, done.LastError)
			}
		})
	}
}

func TestLoad_LatestWins(t *testing.T) {
	release := make(chan struct{})
	body := pngBytes(t, 10, 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("device") == "slow" {
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()
	defer close(release)

	s := newTestService(srv)
	defer s.Close()
	u := &updates{}
	s.SetUpdateCallback(u.add)

	slow := s.Load("/wallpaper?device=slow&lang=en&timezone=0&weekends=off")
	fast := s.Load("/wallpaper?device=fast&lang=en&timezone=0&weekends=off")

	done := waitFinished(t, s, fast.ID)
	if done.Status != model.PreviewStatusReady {
		t.Fatalf("Expected latest request Ready, got %s", done.Status)
	}

	slowStatuses := u.forID(slow.ID)
	if len(slowStatuses) == 0 || slowStatuses[len(slowStatuses)-1] != model.PreviewStatusCancelled {
		t.Errorf("Expected superseded request to end Cancelled, got %v", slowStatuses)
	}
	for _, st := range slowStatuses {
		if st == model.PreviewStatusReady {
			t.Error("Superseded request must never publish")
		}
	}
}

func TestLoad_SameReferenceIsNoop(t *testing.T) {
	var mu sync.Mutex
	hits := 0
	body := pngBytes(t, 10, 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()

	s := newTestService(srv)
	defer s.Close()

	ref := "/wallpaper?device=iphone-se&lang=en&timezone=0&weekends=off"
	first := s.Load(ref)
	waitFinished(t, s, first.ID)

	second := s.Load(ref)
	if second.ID != first.ID {
		t.Errorf("Expected unchanged reference to keep request %s, got %s", first.ID, second.ID)
	}

	third := s.Reload(ref)
	if third.ID == first.ID {
		t.Error("Expected Reload to start a new request")
	}
	waitFinished(t, s, third.ID)

	mu.Lock()
	defer mu.Unlock()
	if hits != 2 {
		t.Errorf("Expected 2 fetches, got %d", hits)
	}
}

func TestCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	s := newTestService(srv)
	req := s.Load("/wallpaper?device=x&lang=&timezone=&weekends=")
	s.Cancel()

	cur, ok := s.Current()
	if !ok || cur.ID != req.ID {
		t.Fatal("Expected current request to remain visible")
	}
	if cur.Status != model.PreviewStatusCancelled {
		t.Errorf("Expected Cancelled, got %s", cur.Status)
	}
	if !strings.Contains(cur.LastError, ErrSuperseded.Error()) {
		t.Errorf("Unexpected LastError %q", cur.LastError)
	}
	s.Close()
}

func TestScale(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{100, 200, 0, 100, 200},
		{100, 200, 400, 100, 200},
		{1179, 2556, 720, 332, 720},
		{2000, 1000, 500, 500, 250},
		{3000, 1, 300, 300, 1},
	}

	for _, test := range tests {
		src := image.NewRGBA(image.Rect(0, 0, test.w, test.h))
		got := Scale(src, test.max).Bounds()
		if got.Dx() != test.wantW || got.Dy() != test.wantH {
			t.Errorf("Scale(%dx%d, %d) = %dx%d, expected %dx%d",
				test.w, test.h, test.max, got.Dx(), got.Dy(), test.wantW, test.wantH)
		}
	}
}

func TestSettersClamp(t *testing.T) {
	s := NewService(func() string { return "" }, nil)
	if s.client != http.DefaultClient {
		t.Error("Expected nil client to fall back to http.DefaultClient")
	}

	s.SetMaxDimension(-5)
	if s.maxDim != 0 {
		t.Errorf("Expected negative max dimension to clamp to 0, got %d", s.maxDim)
	}

	s.SetTimeout(0)
	if s.timeout != DefaultTimeout {
		t.Errorf("Expected zero timeout to be ignored, got %v", s.timeout)
	}
}
