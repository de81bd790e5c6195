package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/tervahagn/landing/internal/domain"
	"github.com/tervahagn/landing/internal/fingerprint"
	"github.com/viant/afs"
)

// Verifier compares the target file on disk with the payload.
type Verifier struct {
	fs afs.Service
}

// NewVerifier creates a new Verifier reading through fs.
func NewVerifier(fs afs.Service) *Verifier {
	return &Verifier{fs: fs}
}

// Verify reads the target and reports whether it holds exactly the payload.
// Returns domain.ErrTargetMissing if the target does not exist.
func (v *Verifier) Verify(ctx context.Context, path, payload string) (*domain.Verification, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve target path %s: %w", path, err)
	}

	exists, err := v.fs.Exists(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("check target %s: %w", target, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrTargetMissing, target)
	}

	content, err := v.fs.DownloadWithURL(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("read target %s: %w", target, err)
	}

	expected, err := fingerprint.String(payload)
	if err != nil {
		return nil, fmt.Errorf("fingerprint payload: %w", err)
	}
	actual, err := fingerprint.Sum(content)
	if err != nil {
		return nil, fmt.Errorf("fingerprint target: %w", err)
	}

	return &domain.Verification{
		TargetPath:  target,
		Match:       bytes.Equal(content, []byte(payload)),
		Expected:    expected,
		Actual:      actual,
		ActualBytes: int64(len(content)),
	}, nil
}
