package service

import (
	"context"
	"log/slog"

	"github.com/tervahagn/landing/internal/domain"
)

// Emitter writes the payload to its target.
type Emitter interface {
	Emit() (*domain.Emission, error)
}

// Ledger records successful emissions.
type Ledger interface {
	Create(ctx context.Context, emission *domain.Emission) error
}

// EmitService runs the emitter and records the result when a ledger is configured.
type EmitService struct {
	emitter Emitter
	ledger  Ledger
}

// NewEmitService creates a new EmitService. ledger may be nil.
func NewEmitService(emitter Emitter, ledger Ledger) *EmitService {
	return &EmitService{
		emitter: emitter,
		ledger:  ledger,
	}
}

// Emit replaces the target with the payload. Nothing is recorded when the
// write fails. Once the write has completed the emission counts as successful,
// so a ledger failure is only logged.
func (s *EmitService) Emit(ctx context.Context) (*domain.Emission, error) {
	emission, err := s.emitter.Emit()
	if err != nil {
		return nil, err
	}

	slog.Info("landing page written",
		"target", emission.TargetPath,
		"bytes", emission.Bytes,
		"fingerprint", emission.Fingerprint,
	)

	if s.ledger == nil {
		return emission, nil
	}

	if err := s.ledger.Create(ctx, emission); err != nil {
		slog.Warn("failed to record emission", "error", err, "target", emission.TargetPath)
		return emission, nil
	}

	slog.Debug("emission recorded", "id", emission.ID)

	return emission, nil
}
