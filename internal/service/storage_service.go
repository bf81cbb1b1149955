package service

import (
	"context"
	"fmt"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/util"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider 资源文件的对象存储
type StorageProvider interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	PutFile(ctx context.Context, objectName, localPath, contentType string) error
	Remove(ctx context.Context, objectName string) error
	URL(objectName string) string
}

// LocalStorageProvider 写到本地目录，通过 /uploads 静态路由访问
type LocalStorageProvider struct {
	Root string
}

func (p *LocalStorageProvider) target(objectName string) (string, error) {
	dst := filepath.Join(p.Root, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}
	return dst, nil
}

func (p *LocalStorageProvider) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	dst, err := p.target(objectName)
	if err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	return err
}

func (p *LocalStorageProvider) PutFile(ctx context.Context, objectName, localPath, contentType string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer src.Close()
	return p.Put(ctx, objectName, src, -1, contentType)
}

func (p *LocalStorageProvider) Remove(ctx context.Context, objectName string) error {
	err := os.Remove(filepath.Join(p.Root, filepath.FromSlash(objectName)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (p *LocalStorageProvider) URL(objectName string) string {
	return "/uploads/" + objectName
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Bucket string
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (p *MinioStorageProvider) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := p.Client.PutObject(ctx, p.Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (p *MinioStorageProvider) PutFile(ctx context.Context, objectName, localPath, contentType string) error {
	_, err := p.Client.FPutObject(ctx, p.Bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (p *MinioStorageProvider) Remove(ctx context.Context, objectName string) error {
	return p.Client.RemoveObject(ctx, p.Bucket, objectName, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) URL(objectName string) string {
	return "/" + p.Bucket + "/" + objectName
}

// OSSStorageProvider 阿里云OSS存储实现
type OSSStorageProvider struct {
	Endpoint string
	Bucket   *oss.Bucket
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Endpoint: cfg.OSSEndpoint, Bucket: bucket}, nil
}

func (p *OSSStorageProvider) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	return p.Bucket.PutObject(objectName, reader, oss.ContentType(contentType))
}

func (p *OSSStorageProvider) PutFile(ctx context.Context, objectName, localPath, contentType string) error {
	return p.Bucket.PutObjectFromFile(objectName, localPath, oss.ContentType(contentType))
}

func (p *OSSStorageProvider) Remove(ctx context.Context, objectName string) error {
	return p.Bucket.DeleteObject(objectName)
}

func (p *OSSStorageProvider) URL(objectName string) string {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(p.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", p.Bucket.BucketName, endpoint, objectName)
}

type StorageService struct {
	Provider StorageProvider
}

// NewStorageService 按 storage.type 选择实现，未知类型时使用本地存储
func NewStorageService(cfg *config.StorageConfig) (*StorageService, error) {
	var (
		provider StorageProvider
		err      error
	)
	switch cfg.Type {
	case util.StorageMinio:
		provider, err = NewMinioStorageProvider(cfg)
	case util.StorageOSS:
		provider, err = NewOSSStorageProvider(cfg)
	default:
		provider = &LocalStorageProvider{Root: cfg.LocalPath}
	}
	if err != nil {
		return nil, fmt.Errorf("init %s storage: %w", cfg.Type, err)
	}
	return &StorageService{Provider: provider}, nil
}

func (s *StorageService) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := s.Provider.Put(ctx, objectName, reader, size, contentType); err != nil {
		return "", err
	}
	return s.Provider.URL(objectName), nil
}

func (s *StorageService) PutFile(ctx context.Context, objectName, localPath, contentType string) (string, error) {
	if err := s.Provider.PutFile(ctx, objectName, localPath, contentType); err != nil {
		return "", err
	}
	return s.Provider.URL(objectName), nil
}

func (s *StorageService) Remove(ctx context.Context, objectName string) error {
	return s.Provider.Remove(ctx, objectName)
}
