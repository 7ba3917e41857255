// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envfile renders and writes the plain-text KEY=VALUE environment
// files consumed by the frontend build tool, and reads them back.
//
// A rendered file starts with a comment block carrying the generation
// timestamp, followed by one line per key in a fixed order. Values are
// written literally, without quoting.
package envfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/joho/godotenv"
)

// Keys written to the environment file, in output order.
const (
	KeyAPIBaseURL           = "VITE_API_BASE_URL"
	KeyDebug                = "VITE_DEBUG"
	KeyUseMockDataOnFailure = "VITE_USE_MOCK_DATA_ON_FAILURE"
	KeyDebugMode            = "VITE_DEBUG_MODE"
	KeyShowAPIErrors        = "VITE_SHOW_API_ERRORS"
)

// DefaultPath is the file written when no output path is given.
const DefaultPath = ".env.local"

// timestampPrefix starts the only line that varies between renders of the
// same Flags.
const timestampPrefix = "# Generated at: "

// Flags are the values written to the environment file.
type Flags struct {
	APIBaseURL           string
	Debug                bool
	UseMockDataOnFailure bool
	DebugMode            bool
	ShowAPIErrors        bool
}

// validate rejects values that would break the one line per key layout.
func (f Flags) validate() error {
	for _, kv := range f.entries() {
		if strings.ContainsAny(kv[1], "\r\n") {
			return fmt.Errorf("%w: %s contains a line break", ErrWriteEnvFile, kv[0])
		}
	}
	return nil
}

// entries returns the key/value pairs of f in output order.
func (f Flags) entries() [][2]string {
	return [][2]string{
		{KeyAPIBaseURL, f.APIBaseURL},
		{KeyDebug, strconv.FormatBool(f.Debug)},
		{KeyUseMockDataOnFailure, strconv.FormatBool(f.UseMockDataOnFailure)},
		{KeyDebugMode, strconv.FormatBool(f.DebugMode)},
		{KeyShowAPIErrors, strconv.FormatBool(f.ShowAPIErrors)},
	}
}

// Render returns the file contents for flags. The output depends only on
// flags and now; now is written in UTC, RFC 3339.
func Render(flags Flags, now time.Time) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Generated by appkit env write\n")
	buf.WriteString(timestampPrefix + now.UTC().Format(time.RFC3339) + "\n")
	buf.WriteString("# Changes are overwritten on the next run.\n")
	buf.WriteString("\n")

	for _, kv := range flags.entries() {
		buf.WriteString(kv[0] + "=" + kv[1] + "\n")
	}

	return buf.Bytes()
}

// Writer writes environment files.
type Writer struct {
	// Path is the destination file. Empty means [DefaultPath].
	Path string

	// Now returns the generation timestamp. Defaults to time.Now.
	Now func() time.Time

	logger *logger.Logger
}

// NewWriter returns a Writer for path.
func NewWriter(path string, logger *logger.Logger) *Writer {
	return &Writer{Path: path, Now: time.Now, logger: logger}
}

// Write renders flags and replaces the destination file with the result.
// Values containing CR or LF are rejected before anything is written.
//
// The contents are written to a temporary file in the same directory and
// renamed over the destination. On failure the temporary file is removed;
// the destination is left as it was only if the rename never happened.
func (w *Writer) Write(flags Flags) error {
	if err := flags.validate(); err != nil {
		return err
	}

	path := w.path()
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	data := Render(flags, now())

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}

	if w.logger != nil {
		w.logger.Info().
			Str("path", path).
			Bool("debug", flags.Debug).
			Bool("mock_on_failure", flags.UseMockDataOnFailure).
			Msg("environment file written")
	}

	return nil
}

func (w *Writer) path() string {
	if w.Path == "" {
		return DefaultPath
	}
	return w.Path
}

// Read parses an environment file. Missing keys keep their zero value;
// unknown keys are ignored.
func Read(path string) (Flags, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Flags{}, fmt.Errorf("%w %s: %w", ErrReadEnvFile, path, err)
	}

	flags := Flags{APIBaseURL: vars[KeyAPIBaseURL]}
	for key, dst := range map[string]*bool{
		KeyDebug:                &flags.Debug,
		KeyUseMockDataOnFailure: &flags.UseMockDataOnFailure,
		KeyDebugMode:            &flags.DebugMode,
		KeyShowAPIErrors:        &flags.ShowAPIErrors,
	} {
		v, ok := vars[key]
		if !ok || v == "" {
			continue
		}
		if *dst, err = strconv.ParseBool(v); err != nil {
			return Flags{}, fmt.Errorf("%w %s: %s=%q is not a boolean", ErrReadEnvFile, path, key, v)
		}
	}

	return flags, nil
}
