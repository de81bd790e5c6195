package emitter_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tervahagn/landing/internal/emitter"
	"github.com/tervahagn/landing/internal/fingerprint"
	"github.com/tervahagn/landing/internal/static"
)

type EmitterTestSuite struct {
	suite.Suite
	siteDir string
	target  string
}

func (s *EmitterTestSuite) SetupTest() {
	s.siteDir = filepath.Join(s.T().TempDir(), "Social-Scheduler-Landing")
	s.Require().NoError(os.Mkdir(s.siteDir, 0o755))
	s.target = filepath.Join(s.siteDir, static.Filename)
}

func (s *EmitterTestSuite) readTarget() string {
	data, err := os.ReadFile(s.target)
	s.Require().NoError(err)
	return string(data)
}

// TestEmit_RoundTrip checks the written bytes equal the payload exactly.
func (s *EmitterTestSuite) TestEmit_RoundTrip() {
	emission, err := emitter.New(s.target, static.IndexHTML).Emit()
	s.Require().NoError(err)

	s.Equal(static.IndexHTML, s.readTarget())
	s.Equal(s.target, emission.TargetPath)
	s.Equal(int64(len(static.IndexHTML)), emission.Bytes)
	s.False(emission.IsRecorded())

	want, err := fingerprint.String(static.IndexHTML)
	s.Require().NoError(err)
	s.Equal(want, emission.Fingerprint)
}

// TestEmit_LandingPageShape checks the produced document on an empty site directory.
func (s *EmitterTestSuite) TestEmit_LandingPageShape() {
	_, err := emitter.New(s.target, static.IndexHTML).Emit()
	s.Require().NoError(err)

	content := s.readTarget()
	s.True(strings.HasPrefix(content, "<!DOCTYPE html>"))
	s.True(strings.HasSuffix(content, "</html>"))
	s.Contains(content, "Social Scheduler")
}

func (s *EmitterTestSuite) TestEmit_Idempotent() {
	e := emitter.New(s.target, static.IndexHTML)

	_, err := e.Emit()
	s.Require().NoError(err)
	first := s.readTarget()

	_, err = e.Emit()
	s.Require().NoError(err)

	s.Equal(first, s.readTarget())
}

// TestEmit_ReplacesExistingContent checks no trace of a longer old document remains.
func (s *EmitterTestSuite) TestEmit_ReplacesExistingContent() {
	old := strings.Repeat("<p>stale landing page</p>\n", 5000)
	s.Require().NoError(os.WriteFile(s.target, []byte(old), 0o644))

	_, err := emitter.New(s.target, static.IndexHTML).Emit()
	s.Require().NoError(err)

	content := s.readTarget()
	s.Equal(static.IndexHTML, content)
	s.NotContains(content, "stale landing page")
}

// TestEmit_MissingDirectory checks the parent directory is never created.
func (s *EmitterTestSuite) TestEmit_MissingDirectory() {
	missing := filepath.Join(s.T().TempDir(), "absent", static.Filename)

	emission, err := emitter.New(missing, static.IndexHTML).Emit()
	s.Require().Error(err)
	s.Nil(emission)
	s.True(errors.Is(err, fs.ErrNotExist))

	_, statErr := os.Stat(filepath.Dir(missing))
	s.True(errors.Is(statErr, fs.ErrNotExist))
}

// TestEmit_PermissionDenied checks a read-only target is left untouched.
func (s *EmitterTestSuite) TestEmit_PermissionDenied() {
	if os.Geteuid() == 0 {
		s.T().Skip("permission checks do not apply to root")
	}

	const previous = "<!DOCTYPE html><html>previous</html>"
	s.Require().NoError(os.WriteFile(s.target, []byte(previous), 0o644))
	s.Require().NoError(os.Chmod(s.target, 0o444))
	s.Require().NoError(os.Chmod(s.siteDir, 0o555))
	s.T().Cleanup(func() {
		_ = os.Chmod(s.siteDir, 0o755)
		_ = os.Chmod(s.target, 0o644)
	})

	_, err := emitter.New(s.target, static.IndexHTML).Emit()
	s.Require().Error(err)
	s.True(errors.Is(err, fs.ErrPermission))

	s.Equal(previous, s.readTarget())
}

// TestEmit_TargetIsDirectory checks a path-type conflict fails without touching
// the existing page next to it. Unlike the permission check it holds for root.
func (s *EmitterTestSuite) TestEmit_TargetIsDirectory() {
	const previous = "<!DOCTYPE html><html>previous</html>"
	s.Require().NoError(os.WriteFile(s.target, []byte(previous), 0o644))

	conflict := filepath.Join(s.siteDir, "landing")
	s.Require().NoError(os.Mkdir(conflict, 0o755))

	emission, err := emitter.New(conflict, static.IndexHTML).Emit()
	s.Require().Error(err)
	s.Nil(emission)

	info, err := os.Stat(conflict)
	s.Require().NoError(err)
	s.True(info.IsDir())
	s.Equal(previous, s.readTarget())
}

func (s *EmitterTestSuite) TestEmit_RelativePathResolved() {
	chdir(s.T(), s.siteDir)

	emission, err := emitter.New(static.Filename, static.IndexHTML).Emit()
	s.Require().NoError(err)
	s.True(filepath.IsAbs(emission.TargetPath))
	s.Equal(static.IndexHTML, s.readTarget())
}

func TestEmitterTestSuite(t *testing.T) {
	suite.Run(t, new(EmitterTestSuite))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
