package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stemlab/internal/catalog"
	"github.com/abhisek/stemlab/internal/playground"
)

const minimalLessons = `schema_version: v1.0.0
lessons:
  - id: "1"
    title: "Intro"
    category: "Micro:bit"
    difficulty: Beginner
    progress: 0
    tags: ["basics"]
  - id: "2"
    title: "Blink"
    category: "Arduino"
    difficulty: Beginner
    progress: 40
`

const minimalMicrobit = `schema_version: v1.0.0
target: microbit
name: "Micro:bit"
parts:
  - id: "1"
    name: "Micro:bit V2"
    category: "Board"
plans:
  - lesson_id: "1"
    title: "Intro"
    parts: ["1"]
    steps:
      - id: "1"
        title: "Connect"
`

const minimalArduino = `schema_version: v1.2.0
target: arduino
parts:
  - id: "1"
    name: "Arduino Uno"
  - id: "2"
    name: "LED"
plans:
  - lesson_id: "2"
    parts: ["1", "2", "2"]
`

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"lessons.yaml":            {Data: []byte(minimalLessons)},
		"platforms/microbit.yaml": {Data: []byte(minimalMicrobit)},
		"platforms/arduino.yaml":  {Data: []byte(minimalArduino)},
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Lessons, 16)
	for _, tg := range playground.Targets() {
		p, ok := c.Platform(tg)
		require.True(t, ok, "platform %s", tg)
		assert.Equal(t, 20, p.Library.Len(), "platform %s parts", tg)
		assert.Equal(t, 8, p.Plans.Len(), "platform %s plans", tg)
	}

	assert.Empty(t, Check(c), "embedded content should not drift")
}

func TestDefault_TrafficLightNeedsThreeLEDs(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	p, _ := c.Platform(playground.TargetArduino)
	plan, ok := p.Plans.Lookup("10")
	require.True(t, ok)

	var leds int
	for _, id := range plan.Parts {
		if id == "2" {
			leds++
		}
	}
	assert.Equal(t, 3, leds)
}

func TestLoad_Minimal(t *testing.T) {
	c, err := Load(fixtureFS())
	require.NoError(t, err)

	require.Len(t, c.Lessons, 2)
	assert.Equal(t, catalog.Lesson{
		ID:         "1",
		Title:      "Intro",
		Category:   catalog.CategoryMicrobit,
		Difficulty: catalog.Beginner,
		Tags:       []string{"basics"},
	}, c.Lessons[0])

	// Absent optional fields decode as zero values.
	assert.Empty(t, c.Lessons[1].Description)
	assert.Nil(t, c.Lessons[1].Tags)

	ard, ok := c.Platform(playground.TargetArduino)
	require.True(t, ok)
	assert.Equal(t, "arduino", ard.Name)
	plan, ok := ard.Plans.Lookup("2")
	require.True(t, ok)
	assert.Empty(t, plan.Steps)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(fstest.MapFS)
		wantErr string
	}{
		{
			name:    "missing lessons file",
			mutate:  func(m fstest.MapFS) { delete(m, "lessons.yaml") },
			wantErr: "read lessons.yaml",
		},
		{
			name: "malformed yaml",
			mutate: func(m fstest.MapFS) {
				m["lessons.yaml"] = &fstest.MapFile{Data: []byte("lessons: [\n")}
			},
			wantErr: "parse lessons.yaml",
		},
		{
			name: "missing lesson id",
			mutate: func(m fstest.MapFS) {
				m["lessons.yaml"] = &fstest.MapFile{Data: []byte("schema_version: v1\nlessons:\n  - title: x\n")}
			},
			wantErr: "schema validation failed",
		},
		{
			name: "progress out of range",
			mutate: func(m fstest.MapFS) {
				m["lessons.yaml"] = &fstest.MapFile{Data: []byte("schema_version: v1\nlessons:\n  - id: \"1\"\n    progress: 120\n")}
			},
			wantErr: "schema validation failed",
		},
		{
			name: "unknown field",
			mutate: func(m fstest.MapFS) {
				m["lessons.yaml"] = &fstest.MapFile{Data: []byte("schema_version: v1\nlessons:\n  - id: \"1\"\n    rating: 5\n")}
			},
			wantErr: "schema validation failed",
		},
		{
			name: "duplicate lesson id",
			mutate: func(m fstest.MapFS) {
				m["lessons.yaml"] = &fstest.MapFile{Data: []byte("schema_version: v1\nlessons:\n  - id: \"1\"\n  - id: \"1\"\n")}
			},
			wantErr: `duplicate lesson ID: "1"`,
		},
		{
			name: "duplicate part id",
			mutate: func(m fstest.MapFS) {
				m["platforms/arduino.yaml"] = &fstest.MapFile{Data: []byte("schema_version: v1\ntarget: arduino\nparts:\n  - id: \"1\"\n  - id: \"1\"\n")}
			},
			wantErr: `platform "arduino": duplicate part ID: "1"`,
		},
		{
			name: "duplicate plan",
			mutate: func(m fstest.MapFS) {
				m["platforms/arduino.yaml"] = &fstest.MapFile{Data: []byte("schema_version: v1\ntarget: arduino\nparts: []\nplans:\n  - lesson_id: \"2\"\n  - lesson_id: \"2\"\n")}
			},
			wantErr: `duplicate plan for lesson "2"`,
		},
		{
			name:    "missing platform",
			mutate:  func(m fstest.MapFS) { delete(m, "platforms/arduino.yaml") },
			wantErr: `platform "arduino" has no content file`,
		},
		{
			name: "unknown platform",
			mutate: func(m fstest.MapFS) {
				m["platforms/rpi.yaml"] = &fstest.MapFile{Data: []byte("schema_version: v1\ntarget: rpi\nparts: []\n")}
			},
			wantErr: `unknown platform "rpi"`,
		},
		{
			name: "duplicate platform",
			mutate: func(m fstest.MapFS) {
				m["platforms/arduino2.yaml"] = &fstest.MapFile{Data: []byte(minimalArduino)}
			},
			wantErr: `duplicate platform: "arduino"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fixtureFS()
			tt.mutate(fsys)
			_, err := Load(fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_CombinesValidationErrors(t *testing.T) {
	fsys := fixtureFS()
	fsys["lessons.yaml"] = &fstest.MapFile{Data: []byte("schema_version: v1\nlessons:\n  - id: \"1\"\n  - id: \"1\"\n")}
	delete(fsys, "platforms/arduino.yaml")

	_, err := Load(fsys)
	require.Error(t, err)
	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "content validation failed:"))
	assert.Contains(t, msg, "duplicate lesson ID")
	assert.Contains(t, msg, "has no content file")
}

func TestLoad_SchemaVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"v1", true},
		{"v1.4", true},
		{"v1.0.0", true},
		{"v2.0.0", false},
		{"v0.9.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			fsys := fixtureFS()
			fsys["lessons.yaml"] = &fstest.MapFile{Data: []byte("schema_version: " + tt.version + "\nlessons: []\n")}
			_, err := Load(fsys)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrUnsupportedVersion), "got %v", err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for name, f := range fixtureFS() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}

	c, err := Open(dir)
	require.NoError(t, err)
	assert.Len(t, c.Lessons, 2)

	_, err = LoadDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = LoadDir(filepath.Join(dir, "lessons.yaml"))
	assert.ErrorContains(t, err, "not a directory")
}
