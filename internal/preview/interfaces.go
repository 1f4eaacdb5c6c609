package preview

import (
	"github.com/ytget/wallpanel/internal/model"
)

// Loader defines the interface for the preview service.
type Loader interface {
	SetReference(ref string)
	SetUpdateCallback(func(model.PreviewRequest))
	Load(ref string) model.PreviewRequest
	Reload(ref string) model.PreviewRequest
	Current() (model.PreviewRequest, bool)
	Cancel()
	Close()
}
