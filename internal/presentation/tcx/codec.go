package tcx

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
	"github.com/penwyp/go-shealth-tcx/internal/core/model"
)

// Declaration is written before every document. encoding/xml always emits
// UTF-8, which is what it declares.
var Declaration = fmt.Sprintf(`<?xml version="1.0" encoding="%s"?>`, constants.TCXEncoding) + "\n"

// Encode writes the declaration followed by the document for a.
func Encode(w io.Writer, a *model.MergedActivity) error {
	if _, err := io.WriteString(w, Declaration); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(NewDocument(a)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile encodes a into path, replacing any existing file.
func WriteFile(path string, a *model.MergedActivity) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(file)
	if err := Encode(bw, a); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Decode parses a TCX document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadFile parses the TCX document at path.
func ReadFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return doc, nil
}
