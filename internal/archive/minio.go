// Package archive stores raw launch catalog snapshots in an S3-compatible
// bucket.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/missioncontrol/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOArchiver struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

func NewMinIOArchiver(cfg config.ArchiveConfig) (*MinIOArchiver, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &MinIOArchiver{client: client, bucket: cfg.Bucket, now: time.Now}, nil
}

func (a *MinIOArchiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("bucket exists: %w", err)
	}
	if exists {
		return nil
	}
	return a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{})
}

// ArchiveCatalog uploads raw and returns the object key it was stored under.
func (a *MinIOArchiver) ArchiveCatalog(ctx context.Context, raw []byte) (string, error) {
	key := SnapshotKey(a.now())
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

func SnapshotKey(at time.Time) string {
	return "spacex/launches/" + at.UTC().Format("20060102T150405Z") + ".json"
}
