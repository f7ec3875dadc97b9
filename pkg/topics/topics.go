// Package topics serves named documentation topics out of a file
// system, typically an embedded one. Each file under the root whose
// extension is recognized becomes a topic named after its base name.
package topics

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/rustadex/stderr/pkg/errors"
)

// Manager holds the scanned topic set.
type Manager struct {
	fsys       fs.FS
	root       string
	extensions []string
	topics     map[string]*Topic
}

// Topic is one loaded documentation page.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager.
type Options struct {
	// Extensions recognized as topic files. Defaults to .txt and .md.
	Extensions []string
}

// New creates a Manager reading topics from root inside fsys.
func New(fsys fs.FS, root string) *Manager {
	return NewWithOptions(fsys, root, Options{})
}

// NewWithOptions creates a Manager with explicit options.
func NewWithOptions(fsys fs.FS, root string, opts Options) *Manager {
	m := &Manager{
		fsys:       fsys,
		root:       root,
		extensions: opts.Extensions,
		topics:     make(map[string]*Topic),
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	return m
}

// Load scans the root directory for topic files. A missing root is not
// an error; it just yields an empty topic set.
func (m *Manager) Load() error {
	if _, err := fs.Stat(m.fsys, m.root); err != nil {
		return nil
	}

	return fs.WalkDir(m.fsys, m.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to scan topics under %s", m.root)
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !m.recognized(ext) {
			return nil
		}

		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to read topic %s", p)
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Path:    p,
			Content: string(content),
		}
		return nil
	})
}

func (m *Manager) recognized(ext string) bool {
	for _, e := range m.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Get retrieves a topic by name. Leading flag dashes are stripped, so
// `--verbose` resolves the topic named verbose.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	topic, ok := m.topics[name]
	return topic, ok
}

// Names returns all topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders a topic's content through r, chosen by the topic
// file's extension.
func (m *Manager) Render(topic *Topic, r Renderer) string {
	return r.Render(topic.Content, path.Ext(topic.Path))
}
