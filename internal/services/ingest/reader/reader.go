// Package reader decodes and validates the ingest data file
package reader

import (
	"encoding/json"
	"io"
	"os"

	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/logger"
	"qanda/internal/platform/net/http/bind"
	"qanda/internal/services/ingest/domain"
)

// Load reads the data file at path
func Load(path string) (domain.Document, error) {
	if path == "" {
		return domain.Document{}, perr.Validationf("data file path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.Document{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open data file %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Named("reader").Debug().Err(cerr).Str("path", path).Msg("close data file")
		}
	}()
	return Decode(f)
}

// Decode parses a JSON array of questions and validates the whole tree
// before any of it is written. A validation failure names the offending path
func Decode(r io.Reader) (domain.Document, error) {
	var doc domain.Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc.Questions); err != nil {
		if err == io.EOF {
			return domain.Document{}, perr.JSONErrf("data file is empty")
		}
		return domain.Document{}, perr.Wrap(err, perr.ErrorCodeJSON, "decode data file")
	}
	if dec.More() {
		return domain.Document{}, perr.JSONErrf("unexpected data after the question array")
	}
	if err := bind.Struct(doc); err != nil {
		return domain.Document{}, bind.PathError(err)
	}
	return doc, nil
}
