// Package content loads the authored lesson catalog, part libraries and
// lesson plans. The default content is embedded in the binary; a directory
// with the same layout can replace it.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/stemlab/internal/catalog"
	"github.com/abhisek/stemlab/internal/parts"
	"github.com/abhisek/stemlab/internal/plans"
	"github.com/abhisek/stemlab/internal/playground"
)

//go:embed data
var embedded embed.FS

const (
	// LessonsFile is the catalog path inside a content tree.
	LessonsFile = "lessons.yaml"
	// PlatformsDir holds one YAML file per playground target.
	PlatformsDir = "platforms"

	// SupportedMajor is the schema major version this build understands.
	SupportedMajor = "v1"
)

// ErrUnsupportedVersion is returned for content written for another schema
// major version.
var ErrUnsupportedVersion = errors.New("unsupported content schema version")

// Content is everything the application needs from authored data.
type Content struct {
	Lessons   []catalog.Lesson
	Platforms playground.Platforms
}

// Platform returns the platform content for t.
func (c *Content) Platform(t playground.Target) (*playground.Platform, bool) {
	return c.Platforms.Get(t)
}

// Default loads the embedded content.
func Default() (*Content, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return Load(sub)
}

// LoadDir loads content from a directory on disk.
func LoadDir(dir string) (*Content, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s: not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Open loads content from dir, or the embedded content when dir is empty.
func Open(dir string) (*Content, error) {
	if dir == "" {
		return Default()
	}
	return LoadDir(dir)
}

type lessonsDoc struct {
	SchemaVersion string      `yaml:"schema_version"`
	Lessons       []lessonDoc `yaml:"lessons"`
}

type lessonDoc struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Difficulty  string   `yaml:"difficulty"`
	Progress    int      `yaml:"progress"`
	Glyph       string   `yaml:"glyph"`
	Tags        []string `yaml:"tags"`
}

type platformDoc struct {
	SchemaVersion string    `yaml:"schema_version"`
	Target        string    `yaml:"target"`
	Name          string    `yaml:"name"`
	Parts         []partDoc `yaml:"parts"`
	Plans         []planDoc `yaml:"plans"`
}

type partDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Glyph    string `yaml:"glyph"`
}

type planDoc struct {
	LessonID    string    `yaml:"lesson_id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Parts       []string  `yaml:"parts"`
	Steps       []stepDoc `yaml:"steps"`
}

type stepDoc struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
}

// Load reads and validates a content tree from fsys.
func Load(fsys fs.FS) (*Content, error) {
	var ld lessonsDoc
	if err := decodeFile(fsys, LessonsFile, schemaLessons, &ld); err != nil {
		return nil, err
	}

	files, err := fs.Glob(fsys, path.Join(PlatformsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list platform files: %w", err)
	}
	slices.Sort(files)

	pds := make([]platformDoc, 0, len(files))
	for _, f := range files {
		var pd platformDoc
		if err := decodeFile(fsys, f, schemaPlatform, &pd); err != nil {
			return nil, err
		}
		pds = append(pds, pd)
	}

	if err := validate(ld, pds); err != nil {
		return nil, err
	}

	c := &Content{
		Lessons:   make([]catalog.Lesson, 0, len(ld.Lessons)),
		Platforms: make(playground.Platforms, len(pds)),
	}
	for _, l := range ld.Lessons {
		c.Lessons = append(c.Lessons, catalog.Lesson{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			Category:    catalog.Category(l.Category),
			Difficulty:  catalog.Difficulty(l.Difficulty),
			Progress:    l.Progress,
			Tags:        l.Tags,
			Glyph:       l.Glyph,
		})
	}
	for _, pd := range pds {
		p := pd.toPlatform()
		c.Platforms[p.Target] = p
	}
	return c, nil
}

func (pd platformDoc) toPlatform() *playground.Platform {
	ps := make([]parts.Part, len(pd.Parts))
	for i, p := range pd.Parts {
		ps[i] = parts.Part{ID: p.ID, Name: p.Name, Category: p.Category, Glyph: p.Glyph}
	}

	pls := make([]plans.Plan, len(pd.Plans))
	for i, p := range pd.Plans {
		steps := make([]plans.Step, len(p.Steps))
		for j, s := range p.Steps {
			steps[j] = plans.Step{ID: s.ID, Title: s.Title, Description: s.Description, Code: s.Code}
		}
		pls[i] = plans.Plan{
			LessonID:    p.LessonID,
			Title:       p.Title,
			Description: p.Description,
			Steps:       steps,
			Parts:       p.Parts,
		}
	}

	name := pd.Name
	if name == "" {
		name = pd.Target
	}
	return &playground.Platform{
		Target:  playground.Target(pd.Target),
		Name:    name,
		Library: parts.NewLibrary(ps),
		Plans:   plans.NewBook(pls),
	}
}

// decodeFile reads name from fsys, validates it against the named schema
// and decodes it into out.
func decodeFile(fsys fs.FS, name, schemaName string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := validateSchema(schemaName, doc); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := checkVersion(doc); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func checkVersion(doc any) error {
	m, _ := doc.(map[string]any)
	v, _ := m["schema_version"].(string)
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}
