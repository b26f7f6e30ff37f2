package uploader

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader pushes images to Cloudinary and hands back the hosted URL.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

// New builds an Uploader from a CLOUDINARY_URL. An empty URL yields a nil
// Uploader; callers treat that as uploads-disabled.
func New(cloudinaryURL string) (*Uploader, error) {
	if cloudinaryURL == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld}, nil
}

// Upload stores the file under the given folder and returns its secure
// URL.
func (u *Uploader) Upload(ctx context.Context, file multipart.File, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
