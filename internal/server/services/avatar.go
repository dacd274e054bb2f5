package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/google/uuid"
)

const avatarUploadExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

func avatarKey(ownerID string) string {
	return fmt.Sprintf("avatars/%s/%s", ownerID, uuid.New())
}

func (s *ProfileService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey,
			s.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// publicURL is where an uploaded object is served from: S3PublicBaseURL when
// set, otherwise the object URL on the S3 endpoint.
func (s *ProfileService) publicURL(key string) string {
	if base := s.config.S3PublicBaseURL; base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	if ep := s.config.S3BaseEndpoint; ep != "" {
		return strings.TrimRight(ep, "/") + "/" + s.config.S3Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.S3Bucket, s.config.S3Region, key)
}

// AvatarUploadURL presigns a PUT for a fresh object under the caller's avatar
// prefix. It fails with common.ErrStorageNotConfigured when no bucket is set.
func (s *ProfileService) AvatarUploadURL(ctx context.Context, token string) (*models.AvatarUpload, error) {
	id, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	if s.config == nil || s.config.S3Bucket == "" {
		return nil, common.ErrStorageNotConfigured
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := avatarKey(id.ID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(avatarUploadExpiry))
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	return &models.AvatarUpload{Key: key, UploadURL: req.URL, PublicURL: s.publicURL(key)}, nil
}
