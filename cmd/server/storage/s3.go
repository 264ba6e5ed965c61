package storage

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Archiver keeps off-platform copies of uploaded resumes in an S3
// bucket. Archival is optional (only wired when AWS credentials are
// configured) and best-effort: callers log failures and move on.
type S3Archiver struct {
	client     *s3.S3
	bucketName string
	region     string
}

// NewS3Archiver creates a new S3 archiver instance
func NewS3Archiver(region, accessKeyID, secretAccessKey, bucketName string) (*S3Archiver, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Archiver{
		client:     s3.New(sess),
		bucketName: bucketName,
		region:     region,
	}, nil
}

// ArchiveResume uploads a copy of a resume under resumes/<applicant>/ and
// returns the S3 URL of the archived object
func (a *S3Archiver) ArchiveResume(data []byte, applicantSlug, fileName, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	timestamp := time.Now().Unix()
	key := fmt.Sprintf("resumes/%s/%d-%s", applicantSlug, timestamp, SanitizeFilename(fileName))

	_, err := a.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(a.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive resume to S3: %w", err)
	}

	s3URL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucketName, a.region, key)
	return s3URL, nil
}
