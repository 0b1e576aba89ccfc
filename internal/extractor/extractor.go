// Package extractor converts raw PDF statement bytes into plain text whose
// line breaks approximate the visual layout.
//
// Two strategies run in sequence: the library's plain-text decoding first,
// then a positioned-run layout reconstruction that handles statements where
// the primary decode fails. Callers distinguish password problems from
// structural ones through the exported sentinel errors.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrPasswordRequired means the document is encrypted and no password was
	// supplied. Recoverable: retry with a password.
	ErrPasswordRequired = errors.New("pdf is password protected")

	// ErrIncorrectPassword means a password was supplied but both strategies
	// still failed on it. Recoverable: retry with another password.
	ErrIncorrectPassword = errors.New("incorrect pdf password")

	// ErrExtractionFailed wraps any other decode failure. Terminal for the
	// document.
	ErrExtractionFailed = errors.New("pdf extraction failed")
)

type strategy func(data []byte, password string) (string, error)

// Extractor runs the primary decode strategy with a layout-reconstruction
// fallback. The zero value is not usable; construct with New.
type Extractor struct {
	primary  strategy
	fallback strategy
}

func New() *Extractor {
	return &Extractor{
		primary:  extractPlainText,
		fallback: extractLayout,
	}
}

// Extract converts PDF bytes into plain text. Pass an empty password for
// unprotected documents; it is then omitted from decoding entirely, since an
// empty-string password is not the same as no password.
func (e *Extractor) Extract(data []byte, password string) (string, error) {
	text, primaryErr := e.primary(data, password)
	if primaryErr == nil {
		return text, nil
	}

	if isPasswordError(primaryErr) && password == "" {
		return "", ErrPasswordRequired
	}

	if password != "" {
		text, fallbackErr := e.fallback(data, password)
		if fallbackErr == nil {
			return text, nil
		}

		if isPasswordError(fallbackErr) {
			return "", ErrIncorrectPassword
		}

		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, fallbackErr)
	}

	text, fallbackErr := e.fallback(data, "")
	if fallbackErr != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, primaryErr)
	}

	return text, nil
}

// isPasswordError reports whether the failure indicates encryption or a
// rejected password. The library's sentinel covers the common case; the
// message check catches errors surfaced from deeper in the decoder.
func isPasswordError(err error) bool {
	if errors.Is(err, pdf.ErrInvalidPassword) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "password")
}

// open builds a reader for the document. The password callback is handed to
// the library only when a password was actually supplied.
func open(data []byte, password string) (*pdf.Reader, error) {
	ra := bytes.NewReader(data)
	size := int64(len(data))

	if password == "" {
		return pdf.NewReader(ra, size)
	}

	offered := false

	return pdf.NewReaderEncrypted(ra, size, func() string {
		if offered {
			return ""
		}

		offered = true

		return password
	})
}

// extractPlainText is the primary strategy: the library's own plain-text
// rendering of the whole document.
func extractPlainText(data []byte, password string) (text string, err error) {
	// The pdf library panics on malformed structures; surface that as an
	// error so the fallback gets its turn.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decode: %v", r)
		}
	}()

	r, err := open(data, password)
	if err != nil {
		return "", err
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	b, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
