package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/shenikar/rescue_dashboard/internal/config"
)

const (
	photoFormat       = "jpg"
	photoResourceType = "image"
)

var ErrInvalidURL = errors.New("storage: url does not point to a managed photo")

var versionSegment = regexp.MustCompile(`^v\d+$`)

// uploaderAPI - часть cloudinary uploader.API, которую использует хранилище
type uploaderAPI interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryStore загружает и удаляет фотографии инцидентов в Cloudinary
type CloudinaryStore struct {
	api    uploaderAPI
	folder string
	now    func() time.Time
}

// NewCloudinaryStore создает хранилище по учетным данным из конфигурации
func NewCloudinaryStore(cfg *config.Config) (*CloudinaryStore, error) {
	if !cfg.CloudinaryEnabled() {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return newStore(&cld.Upload, cfg.CloudinaryFolder, time.Now), nil
}

func newStore(api uploaderAPI, folder string, now func() time.Time) *CloudinaryStore {
	return &CloudinaryStore{
		api:    api,
		folder: strings.Trim(folder, "/"),
		now:    now,
	}
}

// Upload загружает содержимое под именем из текущей метки времени и возвращает защищенный URL
func (s *CloudinaryStore) Upload(ctx context.Context, content io.Reader) (string, error) {
	publicID := s.folder + "/" + strconv.FormatInt(s.now().UnixMilli(), 10)
	overwrite := false

	result, err := s.api.Upload(ctx, content, uploader.UploadParams{
		PublicID:     publicID,
		Overwrite:    &overwrite,
		ResourceType: photoResourceType,
		Format:       photoFormat,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}

// Delete удаляет фотографию по публичному ID, выведенному из ее URL
func (s *CloudinaryStore) Delete(ctx context.Context, publicURL string) error {
	publicID, err := PublicIDFromURL(s.folder, publicURL)
	if err != nil {
		return err
	}

	result, err := s.api.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: photoResourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary rejected delete: %s", result.Error.Message)
	}
	return nil
}

// PublicIDFromURL превращает URL доставки Cloudinary в публичный ID:
// .../image/upload/v1712/incident-photos/1712.jpg -> incident-photos/1712
func PublicIDFromURL(folder, publicURL string) (string, error) {
	parsed, err := url.Parse(publicURL)
	if err != nil || parsed.Path == "" {
		return "", ErrInvalidURL
	}

	_, rest, found := strings.Cut(parsed.Path, "/upload/")
	if !found {
		return "", ErrInvalidURL
	}

	segments := strings.Split(rest, "/")
	if len(segments) > 0 && versionSegment.MatchString(segments[0]) {
		segments = segments[1:]
	}
	publicID := strings.Join(segments, "/")
	publicID = strings.TrimSuffix(publicID, path.Ext(publicID))

	folder = strings.Trim(folder, "/")
	if folder != "" && !strings.HasPrefix(publicID, folder+"/") {
		return "", ErrInvalidURL
	}
	if publicID == "" || publicID == folder+"/" || strings.Contains(publicID, "..") {
		return "", ErrInvalidURL
	}
	return publicID, nil
}
