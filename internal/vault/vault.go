// Package vault persists the produced documents under an output folder.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/takak2166/notion2obsidian/internal/logger"
)

// Vault writes documents below a root directory. Each write is one
// os.WriteFile call, so a document is either fully present or absent.
type Vault struct {
	root string
}

// New creates the root directory if needed and returns a Vault over it.
func New(root string) (*Vault, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Vault{root: root}, nil
}

// WriteDocument stores one markdown document under folder.
func (v *Vault) WriteDocument(folder, name string, content []byte) error {
	return v.write(folder, name, content)
}

// WriteViewSchema stores the generated base document under folder.
func (v *Vault) WriteViewSchema(folder, name string, content []byte) error {
	return v.write(folder, name, content)
}

func (v *Vault) write(folder, name string, content []byte) error {
	dir := filepath.Join(v.root, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create folder %q: %w", folder, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write %q: %w", name, err)
	}

	logger.Debug("Wrote file", map[string]interface{}{
		"path": path,
		"size": len(content),
	})
	return nil
}

// SafeName turns a title into a legal path segment. Characters that are
// invalid on common filesystems are replaced, surrounding dots and spaces
// are trimmed, and a title that sanitizes to nothing gets a random stem so
// the document is still produced.
func SafeName(title string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		`\`, "-",
		":", "-",
		"*", "",
		"?", "",
		`"`, "'",
		"<", "(",
		">", ")",
		"|", "-",
		"\n", " ",
		"\r", " ",
	)
	name := replacer.Replace(title)
	name = strings.Trim(name, " .")

	if name == "" {
		name = uuid.NewString()[:8]
	}
	return name
}
