package upload

import "context"

// ImageResult maps variant name (original, large, medium, thumbnail) to
// its public URL. Clients store the large URL on the entity and use the
// thumbnail in tables.
type ImageResult struct {
	URLs map[string]string `json:"urls"`
}

// AudioResult is the stored file plus the probed playback length, which
// pre-fills the duration field on the track form.
type AudioResult struct {
	URL      string `json:"url"`
	Duration int    `json:"duration"`
}

// Service stores admin uploads and returns public URLs.
type Service interface {
	// UploadImage validates the image, renders the resize variants and
	// stores original plus variants under folder/.
	UploadImage(ctx context.Context, folder, filename string, data []byte) (*ImageResult, error)

	// UploadAudio stores the file and probes its duration. A file whose
	// tags cannot be read still uploads, with duration zero.
	UploadAudio(ctx context.Context, folder, filename string, data []byte) (*AudioResult, error)
}
