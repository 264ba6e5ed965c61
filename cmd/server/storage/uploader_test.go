package storage

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain", in: "resume.pdf", expected: "resume.pdf"},
		{name: "spaces and unicode", in: "my résumé (final).pdf", expected: "my_r_sum_final_.pdf"},
		{name: "path traversal stripped", in: "../../etc/passwd", expected: "passwd"},
		{name: "windows path stripped", in: `C:\Users\me\cv.pdf`, expected: "cv.pdf"},
		{name: "empty", in: "", expected: "file"},
		{name: "only unsafe characters", in: "???", expected: "file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeFilename(tc.in))
		})
	}
}

func TestObjectName(t *testing.T) {
	name := ObjectName("John Doe CV.pdf")

	assert.True(t, strings.HasSuffix(name, ".pdf"), "extension preserved: %s", name)
	assert.True(t, strings.HasPrefix(name, "John_Doe_CV-"), "sanitized stem with timestamp suffix: %s", name)

	// The suffix between stem and extension is a plausible unix timestamp.
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, "John_Doe_CV-"), ".pdf")
	ts, err := strconv.ParseInt(stamp, 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Unix(), ts, 5)
}

func TestObjectNameNoExtension(t *testing.T) {
	name := ObjectName("resume")
	assert.True(t, strings.HasPrefix(name, "resume-"), name)
	assert.NotContains(t, name, ".")
}
