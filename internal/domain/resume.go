package domain

import (
	"bytes"
	"errors"
	"strings"
)

// ResumeMaxBytes is the largest accepted resume upload (10 MiB).
const ResumeMaxBytes = 10 << 20

// pdfMagic is the byte signature every accepted file must start with.
var pdfMagic = []byte("%PDF-")

var (
	ErrResumeEmpty        = errors.New("empty file")
	ErrResumeTooLarge     = errors.New("file too large (max 10 MiB)")
	ErrResumeNotPDF       = errors.New("only PDF files are allowed")
	ErrResumeBadSignature = errors.New("invalid PDF file (failed signature check)")
)

// ValidateResumeFile applies the resume acceptance rules before anything is
// stored: 1 byte to 10 MiB, declared content type absent or exactly
// "application/pdf", and the first 5 bytes equal to "%PDF-". A file shorter
// than the signature fails the signature check.
func ValidateResumeFile(data []byte, contentType string) error {
	if len(data) == 0 {
		return ErrResumeEmpty
	}
	if len(data) > ResumeMaxBytes {
		return ErrResumeTooLarge
	}
	if ct := strings.ToLower(strings.TrimSpace(contentType)); ct != "" && ct != "application/pdf" {
		return ErrResumeNotPDF
	}
	if len(data) < len(pdfMagic) || !bytes.Equal(data[:len(pdfMagic)], pdfMagic) {
		return ErrResumeBadSignature
	}
	return nil
}

// ResumePath is the object-store path for a participant's resume, derived
// deterministically from the account id.
func ResumePath(id AccountID) string {
	return string(id) + "/resume.pdf"
}
