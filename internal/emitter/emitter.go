// Package emitter replaces the landing page document on disk with the
// embedded payload.
package emitter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tervahagn/landing/internal/domain"
	"github.com/tervahagn/landing/internal/fingerprint"
)

// Emitter writes one fixed payload to one fixed path.
type Emitter struct {
	path    string
	payload string
}

// New creates an Emitter for the given target path and payload.
func New(path, payload string) *Emitter {
	return &Emitter{path: path, payload: payload}
}

// Emit truncates the target and writes the payload in full.
// The parent directory is never created. The handle is closed on every path;
// a close failure is reported when the write itself succeeded.
func (e *Emitter) Emit() (emission *domain.Emission, err error) {
	target, err := filepath.Abs(e.path)
	if err != nil {
		return nil, fmt.Errorf("resolve target path %s: %w", e.path, err)
	}

	sum, err := fingerprint.String(e.payload)
	if err != nil {
		return nil, fmt.Errorf("fingerprint payload: %w", err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open target: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			emission = nil
			err = fmt.Errorf("close target %s: %w", target, closeErr)
		}
	}()

	n, err := io.WriteString(f, e.payload)
	if err != nil {
		return nil, fmt.Errorf("write target: %w", err)
	}

	return &domain.Emission{
		TargetPath:  target,
		Bytes:       int64(n),
		Fingerprint: sum,
	}, nil
}
