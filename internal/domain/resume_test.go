package domain

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateResumeFile(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.7\nsome content")
	huge := append([]byte("%PDF-"), bytes.Repeat([]byte("a"), ResumeMaxBytes)...)

	cases := []struct {
		name        string
		data        []byte
		contentType string
		wantErr     error
	}{
		{"valid pdf", pdf, "application/pdf", nil},
		{"no declared content type", pdf, "", nil},
		{"content type case-insensitive", pdf, "Application/PDF", nil},
		{"empty file", []byte{}, "application/pdf", ErrResumeEmpty},
		{"nil data", nil, "application/pdf", ErrResumeEmpty},
		{"one byte over limit", huge, "application/pdf", ErrResumeTooLarge},
		{"wrong content type", pdf, "application/msword", ErrResumeNotPDF},
		{"gif bytes declared as pdf", []byte("GIF89a..."), "application/pdf", ErrResumeBadSignature},
		{"shorter than signature", []byte("%PDF"), "application/pdf", ErrResumeBadSignature},
		{"signature not at start", []byte(" %PDF-1.4"), "application/pdf", ErrResumeBadSignature},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateResumeFile(tc.data, tc.contentType)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateResumeFile_ExactLimit(t *testing.T) {
	t.Parallel()

	data := append([]byte("%PDF-"), bytes.Repeat([]byte("a"), ResumeMaxBytes-5)...)
	if err := ValidateResumeFile(data, "application/pdf"); err != nil {
		t.Fatalf("file at exactly the limit rejected: %v", err)
	}
}

func TestResumePath(t *testing.T) {
	t.Parallel()

	if got := ResumePath("acct-42"); got != "acct-42/resume.pdf" {
		t.Fatalf("path = %q", got)
	}
}
