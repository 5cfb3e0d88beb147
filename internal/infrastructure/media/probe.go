package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sentriz/audiotags"
)

// Prober reads playback properties from uploaded audio. taglib needs a
// file path, so the upload bytes are spooled to a temp file first.
type Prober struct{}

func NewProber() *Prober {
	return &Prober{}
}

// CanProbe reports whether the filename looks like a supported audio format.
func (Prober) CanProbe(filename string) bool {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".mp3", ".flac", ".aac", ".m4a", ".ogg", ".opus", ".wav", ".wma", ".wv":
		return true
	}
	return false
}

// Duration returns the playback length in whole seconds.
func (p *Prober) Duration(filename string, data []byte) (int, error) {
	if !p.CanProbe(filename) {
		return 0, fmt.Errorf("unsupported audio format: %s", filepath.Ext(filename))
	}

	tmp, err := os.CreateTemp("", "probe-*"+filepath.Ext(filename))
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(data); err != nil {
		return 0, fmt.Errorf("write temp file: %w", err)
	}

	_, props, err := audiotags.Read(tmp.Name())
	if err != nil {
		return 0, fmt.Errorf("read audio properties: %w", err)
	}

	return props.Length, nil
}
