// Package filestore backs filemanager fields with a MinIO bucket. Each
// field value stores an area id; the files of an area live under the
// "areas/<id>/" prefix.
package filestore

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/projetvet/projetvet-go/internal/config"
)

type Store struct {
	client *minioSDK.Client
	bucket string
}

// Init connects to MinIO and makes sure the bucket exists.
func Init() (*Store, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}

	return &Store{client: client, bucket: config.MinioBucket}, nil
}

func areaPrefix(areaID int64) string {
	return fmt.Sprintf("areas/%d/", areaID)
}

// ListFilenames returns the bare file names stored in an area. Errors
// degrade to an empty listing; display renders that as "no files".
func (s *Store) ListFilenames(areaID int64) []string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var names []string
	prefix := areaPrefix(areaID)
	for obj := range s.client.ListObjects(ctx, s.bucket, minioSDK.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			log.Printf("listing area %d failed: %v", areaID, obj.Err)
			return nil
		}
		names = append(names, path.Base(obj.Key))
	}
	return names
}

// Upload stores one file in an area.
func (s *Store) Upload(ctx context.Context, areaID int64, filename string, size int64, reader io.Reader) error {
	key := areaPrefix(areaID) + strings.TrimPrefix(filename, "/")
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minioSDK.PutObjectOptions{})
	return err
}

// RemoveArea deletes every file of an area, used when an entry is purged.
func (s *Store) RemoveArea(ctx context.Context, areaID int64) error {
	prefix := areaPrefix(areaID)
	for obj := range s.client.ListObjects(ctx, s.bucket, minioSDK.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return obj.Err
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minioSDK.RemoveObjectOptions{}); err != nil {
			return err
		}
	}
	return nil
}
