package utils

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// ArchiveImportCSV stores the raw upload so a bad import can be
// inspected or replayed later. Keys are dated for easy bucket
// lifecycle rules.
func ArchiveImportCSV(batchID string, data []byte) error {
	if s3Client == nil {
		return fmt.Errorf("s3 client not initialized")
	}

	key := fmt.Sprintf("import-archive/%s/%s.csv",
		time.Now().Format("2006-01-02"),
		batchID,
	)

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("failed to archive to S3: %v", err)
	}
	return nil
}
