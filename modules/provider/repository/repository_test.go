package repository

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	expEntity "localxp-api/modules/experience/entity"
	"localxp-api/modules/provider/entity"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeObjectReader struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeObjectReader) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket, f.key = aws.ToString(params.Bucket), aws.ToString(params.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestSnapshotRepository_Load(t *testing.T) {
	t.Parallel()

	reader := &fakeObjectReader{body: `[
		{"id": "s1", "title": "Gallery Night", "city": "Waterloo", "categories": ["Arts & Culture"],
		 "startDate": "2025-06-14T18:00:00-04:00", "endDate": "2025-06-14T21:00:00-04:00"},
		{"id": "s2", "title": "Farm Visit", "city": "Elmira", "categories": ["Nature"], "source": "partner",
		 "startDate": "2025-06-15T10:00:00-04:00", "endDate": "2025-06-15T12:00:00-04:00"}
	]`}

	got, err := NewSnapshotRepository(reader, "catalog", "snapshots/latest.json").Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if reader.bucket != "catalog" || reader.key != "snapshots/latest.json" {
		t.Fatalf("unexpected object s3://%s/%s", reader.bucket, reader.key)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Source != expEntity.SourceSnapshot || got[1].Source != "partner" {
		t.Fatalf("unexpected sources %q %q", got[0].Source, got[1].Source)
	}
	if err := got[0].Validate(); err != nil {
		t.Fatalf("expected a valid record: %v", err)
	}
}

func TestSnapshotRepository_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		reader *fakeObjectReader
	}{
		{name: "missing object", reader: &fakeObjectReader{err: errors.New("NoSuchKey")}},
		{name: "malformed json", reader: &fakeObjectReader{body: `{"id": 1`}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewSnapshotRepository(tc.reader, "b", "k").Load(context.Background()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

type fakeSelector struct {
	rows  []entity.PartnerExperience
	err   error
	query string
	args  []any
}

func (f *fakeSelector) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	f.query, f.args = query, args
	if f.err != nil {
		return f.err
	}
	*dest.(*[]entity.PartnerExperience) = f.rows
	return nil
}

func TestPartnerRepository_ListUpcoming(t *testing.T) {
	t.Parallel()

	since := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	db := &fakeSelector{rows: []entity.PartnerExperience{{ID: "1", Title: "Pottery"}}}

	got, err := NewPartnerRepository(db).ListUpcoming(context.Background(), "Waterloo", since)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected rows %+v", got)
	}
	if !strings.Contains(db.query, "FROM partner_experiences") {
		t.Fatalf("unexpected query %q", db.query)
	}
	if len(db.args) != 2 || db.args[0] != since || db.args[1] != "Waterloo" {
		t.Fatalf("unexpected args %v", db.args)
	}
}

func TestPartnerRepository_Error(t *testing.T) {
	t.Parallel()

	db := &fakeSelector{err: errors.New("relation does not exist")}
	if _, err := NewPartnerRepository(db).ListUpcoming(context.Background(), "", time.Now()); err == nil {
		t.Fatalf("expected error")
	}
}
