package blob

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"planora/internal/domain/repository"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryConfig holds the credentials for the hosted blob store
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadFolder string
}

// NewCloudinaryConfigFromEnv reads the Cloudinary configuration from the environment
func NewCloudinaryConfigFromEnv() *CloudinaryConfig {
	return &CloudinaryConfig{
		CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		APISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		UploadFolder: os.Getenv("CLOUDINARY_UPLOAD_FOLDER"),
	}
}

// Validate checks that the required credentials are present
func (c *CloudinaryConfig) Validate() error {
	if c.CloudName == "" {
		return fmt.Errorf("CLOUDINARY_CLOUD_NAME is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("CLOUDINARY_API_KEY is required")
	}
	if c.APISecret == "" {
		return fmt.Errorf("CLOUDINARY_API_SECRET is required")
	}
	return nil
}

// CloudinaryStore implements repository.BlobStore on Cloudinary. The asset
// name doubles as the public ID, so lookups stay exact-name matches like the
// GridFS driver.
type CloudinaryStore struct {
	cld        *cloudinary.Cloudinary
	folder     string
	httpClient *http.Client
}

// NewCloudinaryStore creates a blob store backed by Cloudinary
func NewCloudinaryStore(config *CloudinaryConfig) (*CloudinaryStore, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cloudinary config: %w", err)
	}

	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryStore{
		cld:        cld,
		folder:     config.UploadFolder,
		httpClient: http.DefaultClient,
	}, nil
}

// Store uploads the blob under the given name
func (s *CloudinaryStore) Store(ctx context.Context, name string, r io.Reader) (string, error) {
	_, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     name,
		Folder:       s.folder,
		Overwrite:    api.Bool(true),
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob %q: %w", name, err)
	}
	return name, nil
}

// Open fetches the blob content through its delivery URL
func (s *CloudinaryStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	publicID := name
	if s.folder != "" {
		publicID = s.folder + "/" + name
	}

	img, err := s.cld.Image(publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset for %q: %w", name, err)
	}
	url, err := img.String()
	if err != nil {
		return nil, fmt.Errorf("failed to build delivery URL for %q: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blob %q: %w", name, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, repository.ErrBlobNotFound
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d fetching blob %q", resp.StatusCode, name)
	}
	return resp.Body, nil
}
