package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"art-collector/internal/domain/media"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	deletes []string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_Upload(t *testing.T) {
	client := &fakeS3{}
	s := newS3Storage(client, "pieces", "https://cdn.example.com/")

	img, err := s.Upload(context.Background(), media.Upload{
		Name:        "Sunset.JPG",
		ContentType: "image/jpeg",
		Size:        3,
		Body:        strings.NewReader("abc"),
	})
	require.NoError(t, err)
	require.Len(t, client.puts, 1)

	put := client.puts[0]
	assert.Equal(t, "pieces", aws.ToString(put.Bucket))
	assert.Equal(t, img.Filename, aws.ToString(put.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(put.ContentType))
	assert.True(t, strings.HasPrefix(img.Filename, keyPrefix))
	assert.True(t, strings.HasSuffix(img.Filename, ".jpg"))
	assert.Equal(t, "https://cdn.example.com/"+img.Filename, img.URL)
}

func TestS3Storage_Upload_Error(t *testing.T) {
	s := newS3Storage(&fakeS3{err: errors.New("boom")}, "pieces", "https://cdn.example.com")

	_, err := s.Upload(context.Background(), media.Upload{Name: "a.png", Body: strings.NewReader("")})
	assert.Error(t, err)
}

func TestS3Storage_Destroy(t *testing.T) {
	client := &fakeS3{}
	s := newS3Storage(client, "pieces", "https://cdn.example.com")

	require.NoError(t, s.Destroy(context.Background(), "artCollector/k1.png"))
	assert.Equal(t, []string{"artCollector/k1.png"}, client.deletes)
}
