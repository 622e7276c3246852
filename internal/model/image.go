package model

import (
	"fmt"
	"time"
)

// ImageDownloadPrefix is the fixed path prefix for image retrieval. The
// download URL is a pure function of the assigned image id, so it is derived
// on read rather than persisted.
const ImageDownloadPrefix = "/api/v1/images/download/"

// Image stores uploaded file bytes and metadata for a product.
type Image struct {
	ID          int64     `json:"id" db:"id"`
	FileName    string    `json:"fileName" db:"file_name"`
	FileType    string    `json:"fileType" db:"file_type"`
	Data        []byte    `json:"-" db:"data"`
	DownloadURL string    `json:"downloadUrl" db:"-"`
	ProductID   int64     `json:"productId" db:"product_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ImageUpload carries one uploaded file as handed over by the API layer.
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ImageDescriptor is the lightweight record returned from a batch save.
type ImageDescriptor struct {
	ImageID     int64  `json:"imageId"`
	ImageName   string `json:"imageName"`
	DownloadURL string `json:"downloadUrl"`
}

// ImageDownloadPath returns the retrieval locator for an image id.
func ImageDownloadPath(id int64) string {
	return fmt.Sprintf("%s%d", ImageDownloadPrefix, id)
}
