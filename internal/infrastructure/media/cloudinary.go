package media

import (
	"context"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
	"github.com/shopright/backend/config"
	"github.com/sony/gobreaker/v2"
)

const uploadFolder = "products"

// CloudinaryMediaStore pushes product images to the media host. Calls go
// through a circuit breaker so a degraded media host fails fast instead of
// stalling every admin request.
type CloudinaryMediaStore struct {
	client  *cloudinary.Cloudinary
	breaker *gobreaker.CircuitBreaker[string]
}

func CreateCloudinaryMediaStore(config *config.Config) (*CloudinaryMediaStore, error) {
	client, err := cloudinary.NewFromParams(
		config.CloudinaryConfig.CloudName,
		config.CloudinaryConfig.APIKey,
		config.CloudinaryConfig.APISecret,
	)
	if err != nil {
		return nil, err
	}

	var st gobreaker.Settings
	st.Name = "media-store"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return &CloudinaryMediaStore{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[string](st),
	}, nil
}

// Upload stores one image and returns its public URL.
func (s *CloudinaryMediaStore) Upload(ctx context.Context, file io.Reader) (url string, err error) {
	url, err = s.breaker.Execute(func() (string, error) {
		result, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{Folder: uploadFolder})
		if err != nil {
			return "", err
		}
		return result.SecureURL, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return
	}

	return url, nil
}

// Destroy removes a previously uploaded image given its public URL.
func (s *CloudinaryMediaStore) Destroy(ctx context.Context, url string) error {
	publicID := publicIDFromURL(url)
	if publicID == "" {
		return nil
	}

	_, err := s.breaker.Execute(func() (string, error) {
		_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
		return "", err
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Destroy").Msg("")
		return err
	}

	return nil
}

func publicIDFromURL(url string) string {
	_, after, found := strings.Cut(url, "/"+uploadFolder+"/")
	if !found {
		return ""
	}

	if idx := strings.LastIndex(after, "."); idx != -1 {
		after = after[:idx]
	}

	return uploadFolder + "/" + after
}
