package storage

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	storage_go "github.com/supabase-community/storage-go"
)

// Buckets used by the application, named by resource type
const (
	BucketResumes          = "resumes"
	BucketPartners         = "partners"
	BucketServices         = "services"
	BucketMediaImages      = "media-images"
	BucketMediaAttachments = "media-attachments"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Uploader handles uploading files to the hosted storage buckets
type Uploader struct {
	client *storage_go.Client
}

// NewUploader creates a new Uploader over a storage client
func NewUploader(client *storage_go.Client) *Uploader {
	return &Uploader{client: client}
}

// Upload stores data under objectPath in the given bucket and returns the
// resolved public URL
func (u *Uploader) Upload(bucket, objectPath string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.UploadFile(bucket, objectPath, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to bucket %s: %w", bucket, err)
	}

	return u.PublicURL(bucket, objectPath), nil
}

// PublicURL resolves a stored object path to its public URL
func (u *Uploader) PublicURL(bucket, objectPath string) string {
	return u.client.GetPublicUrl(bucket, objectPath).SignedURL
}

// Remove deletes objects from a bucket
func (u *Uploader) Remove(bucket string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	_, err := u.client.RemoveFile(bucket, paths)
	if err != nil {
		return fmt.Errorf("failed to remove from bucket %s: %w", bucket, err)
	}

	return nil
}

// ObjectName builds a storage object name from an uploaded filename:
// sanitized down to [a-zA-Z0-9._-] and suffixed with a unix timestamp so
// repeated uploads of the same filename never collide.
func ObjectName(fileName string) string {
	base := SanitizeFilename(fileName)

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "file"
	}

	return fmt.Sprintf("%s-%d%s", stem, time.Now().Unix(), ext)
}

// SanitizeFilename strips a filename down to safe characters, keeping only
// the base name of any path the client sent
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}
