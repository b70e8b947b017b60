package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// FileName is the manifest file name inside a project.
const FileName = "package.json"

// Parse decodes manifest bytes.
func Parse(data []byte) (*Object, error) {
	obj := NewObject()
	if err := obj.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return obj, nil
}

// Read loads the manifest at path.
func Read(fsys afero.Fs, path string) (*Object, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	obj, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return obj, nil
}

// Encode renders obj with two-space indentation and a trailing newline.
func Encode(obj *Object) ([]byte, error) {
	compact, err := obj.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write stores obj at path.
func Write(fsys afero.Fs, path string, obj *Object) error {
	data, err := Encode(obj)
	if err != nil {
		return fmt.Errorf("encoding manifest %s: %w", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
