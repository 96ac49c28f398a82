package irdoc

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/errors"
)

// Decode reads one IR document. Unknown keys are rejected so that a typo does
// not silently drop part of the tree.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("document is empty")
		}
		return nil, errors.Mark(errors.Wrap(err, "failed to parse IR document"), ErrInvalidDocument)
	}
	return &doc, nil
}

// Parse decodes and builds a document held in memory.
func Parse(data []byte) (*codedom.Namespace, error) {
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// LoadFile decodes and builds the document at path.
func LoadFile(path string) (*codedom.Namespace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open IR document %s", path)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	root, err := Build(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return root, nil
}

// IsInvalidDocument reports whether err stems from a malformed document.
func IsInvalidDocument(err error) bool {
	return errors.Is(err, ErrInvalidDocument)
}
