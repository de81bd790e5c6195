package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/tervahagn/landing/internal/domain"
	"github.com/tervahagn/landing/internal/emitter"
	"github.com/tervahagn/landing/internal/service"
	"github.com/tervahagn/landing/internal/static"
)

func TestVerifier_MatchAfterEmit(t *testing.T) {
	target := filepath.Join(t.TempDir(), static.Filename)
	emission, err := emitter.New(target, static.IndexHTML).Emit()
	require.NoError(t, err)

	v, err := service.NewVerifier(afs.New()).Verify(context.Background(), target, static.IndexHTML)
	require.NoError(t, err)
	assert.True(t, v.Match)
	assert.Equal(t, target, v.TargetPath)
	assert.Equal(t, emission.Fingerprint, v.Expected)
	assert.Equal(t, v.Expected, v.Actual)
	assert.Equal(t, emission.Bytes, v.ActualBytes)
}

func TestVerifier_Mismatch(t *testing.T) {
	target := filepath.Join(t.TempDir(), static.Filename)
	require.NoError(t, os.WriteFile(target, []byte("<!DOCTYPE html><html>edited by hand</html>"), 0o644))

	v, err := service.NewVerifier(afs.New()).Verify(context.Background(), target, static.IndexHTML)
	require.NoError(t, err)
	assert.False(t, v.Match)
	assert.NotEqual(t, v.Expected, v.Actual)
}

func TestVerifier_MissingTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), static.Filename)

	_, err := service.NewVerifier(afs.New()).Verify(context.Background(), target, static.IndexHTML)
	require.ErrorIs(t, err, domain.ErrTargetMissing)
}
