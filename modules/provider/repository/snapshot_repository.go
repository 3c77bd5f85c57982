package repository

import (
	"context"
	"fmt"

	"localxp-api/core/storage"
	expEntity "localxp-api/modules/experience/entity"

	"github.com/goccy/go-json"
)

// SnapshotRepository loads a curated catalog published as a JSON array in S3
type SnapshotRepository struct {
	client storage.ObjectReader
	bucket string
	key    string
}

func NewSnapshotRepository(client storage.ObjectReader, bucket, key string) *SnapshotRepository {
	return &SnapshotRepository{client: client, bucket: bucket, key: key}
}

func (r *SnapshotRepository) Load(ctx context.Context) ([]expEntity.Experience, error) {
	body, err := storage.ReadObject(ctx, r.client, r.bucket, r.key)
	if err != nil {
		return nil, err
	}

	var records []expEntity.Experience
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot s3://%s/%s: %w", r.bucket, r.key, err)
	}
	for i := range records {
		if records[i].Source == "" {
			records[i].Source = expEntity.SourceSnapshot
		}
	}
	return records, nil
}
