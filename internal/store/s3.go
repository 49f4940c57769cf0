// internal/store/s3.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/rhulucas/dhl-fm-mapping-tool/config"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

// S3Store lưu collection như một object JSON duy nhất trên S3.
// Vì cả collection là một document nên GetObject/PutObject nguyên object
// là đủ để đảm bảo reader không thấy trạng thái ghi dở.
type S3Store struct {
	Client *s3.Client
	Bucket string
	Key    string
}

// NewS3Store khởi tạo client S3 với static credentials từ config.
func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	sdkConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		Client: s3.NewFromConfig(sdkConfig),
		Bucket: cfg.Bucket,
		Key:    cfg.Key,
	}, nil
}

// Load tải document từ S3. Object chưa tồn tại trả về collection rỗng.
func (s *S3Store) Load(ctx context.Context) (models.FeatureCollection, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return models.NewFeatureCollection(), nil
		}
		return models.FeatureCollection{}, fmt.Errorf("failed to get data object from S3: %w", err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return models.FeatureCollection{}, fmt.Errorf("failed to read data object: %w", err)
	}

	var data models.FeatureCollection
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.FeatureCollection{}, fmt.Errorf("failed to parse data object: %w", err)
	}
	if data.Features == nil {
		data.Features = []models.Feature{}
	}
	return data, nil
}

// Save ghi đè object trên S3 bằng toàn bộ document mới.
func (s *S3Store) Save(ctx context.Context, data models.FeatureCollection) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(s.Key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload data object to S3: %w", err)
	}
	return nil
}
