package objectstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kwucouncil/council-api/internal/domain/storage"
	"github.com/kwucouncil/council-api/internal/platform/resilience"
)

type fakePutter struct {
	calls int
	body  string
	key   string
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	f.key = *in.Key
	raw, _ := io.ReadAll(in.Body)
	f.body = string(raw)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	t.Parallel()

	putter := &fakePutter{}
	uploader := newS3Uploader(putter, Config{
		Bucket:        "announcements",
		PublicBaseURL: "https://project.supabase.co/storage/v1/object/public/announcements/",
		MaxBytes:      16,
	}, nil)

	url, err := uploader.Upload(context.Background(), storage.Object{
		Key:  "images/1_a.png",
		Body: strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://project.supabase.co/storage/v1/object/public/announcements/images/1_a.png" {
		t.Fatalf("unexpected url: %s", url)
	}
	if putter.body != "png-bytes" || putter.key != "images/1_a.png" {
		t.Fatalf("unexpected put: key=%s body=%s", putter.key, putter.body)
	}
}

func TestS3Uploader_RejectsOversizedBody(t *testing.T) {
	t.Parallel()

	putter := &fakePutter{}
	uploader := newS3Uploader(putter, Config{Bucket: "b", MaxBytes: 4}, nil)

	_, err := uploader.Upload(context.Background(), storage.Object{Key: "k", Body: strings.NewReader("too large")})
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if putter.calls != 0 {
		t.Fatalf("oversized body must not reach storage")
	}
}

func TestS3Uploader_BreakerOpensOnFailures(t *testing.T) {
	t.Parallel()

	putter := &fakePutter{err: errors.New("503 slow down")}
	breaker := resilience.NewCircuitBreaker(2, time.Minute, 1)
	uploader := newS3Uploader(putter, Config{Bucket: "b"}, breaker)

	for i := 0; i < 2; i++ {
		if _, err := uploader.Upload(context.Background(), storage.Object{Key: "k", Body: strings.NewReader("x")}); err == nil {
			t.Fatalf("expected upstream failure")
		}
	}
	_, err := uploader.Upload(context.Background(), storage.Object{Key: "k", Body: strings.NewReader("x")})
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if putter.calls != 2 {
		t.Fatalf("unexpected put calls: %d", putter.calls)
	}
}

func TestPublicBase_PathStyleFallback(t *testing.T) {
	t.Parallel()

	got := publicBase(Config{Endpoint: "https://acc.r2.cloudflarestorage.com/", Bucket: "announcements"})
	if got != "https://acc.r2.cloudflarestorage.com/announcements" {
		t.Fatalf("unexpected base: %s", got)
	}
}
