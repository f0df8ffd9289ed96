package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryConfigured reports whether image hosting credentials are
// present; without them uploads stay on local disk.
func CloudinaryConfigured() bool {
	if os.Getenv("CLOUDINARY_URL") != "" {
		return true
	}
	return os.Getenv("CLOUDINARY_CLOUD_NAME") != "" &&
		os.Getenv("CLOUDINARY_API_KEY") != "" &&
		os.Getenv("CLOUDINARY_API_SECRET") != ""
}

func newClient() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName != "" && apiKey != "" && apiSecret != "" {
		return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}

	cldURL := os.Getenv("CLOUDINARY_URL")
	if cldURL == "" {
		return nil, fmt.Errorf("cloudinary environment variables not set")
	}
	return cloudinary.NewFromURL(cldURL)
}

// UploadToCloudinary rehosts a local file and removes it on success,
// returning the hosted URL.
func UploadToCloudinary(localPath, folder string) (string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := newClient()
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("%s_%d", folder, time.Now().UnixNano()),
		Folder:   folder,
	})
	if err != nil {
		return "", err
	}
	if resp == nil || (resp.SecureURL == "" && resp.URL == "") {
		return "", fmt.Errorf("cloudinary returned no URL")
	}

	os.Remove(localPath)

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	return resp.URL, nil
}

// DeleteFromCloudinary removes a previously uploaded asset.
func DeleteFromCloudinary(publicID string) error {
	cld, err := newClient()
	if err != nil {
		return err
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return err
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
