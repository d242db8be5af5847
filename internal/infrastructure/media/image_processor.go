// Package media provides upload processing for images and documents.
package media

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// maxImageWidth caps stored originals; anything wider is downscaled before
// writing to disk.
const maxImageWidth = 1920

// thumbWidth is the width of the WebP thumbnail generated for every image.
const thumbWidth = 480

// ImageProcessor handles uploads under the media root directory.
type ImageProcessor struct {
	basePath string
}

// UploadResult describes where an upload landed, as URL paths relative to
// the server root.
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// NewImageProcessor creates a new ImageProcessor instance
func NewImageProcessor(basePath string) *ImageProcessor {
	return &ImageProcessor{
		basePath: basePath,
	}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveUpload stores an uploaded file. Images are downscaled to the maximum
// width, re-encoded in their original format, and get a WebP thumbnail;
// PDFs are written through untouched. The stored name is derived from id so
// uploads never collide regardless of the client's filename.
func (p *ImageProcessor) SaveUpload(data []byte, originalFilename, id string) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty upload")
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	switch {
	case ext == ".pdf":
		return p.saveDocument(data, id)
	case imageExtensions[ext]:
		return p.saveImage(data, ext, id)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

func (p *ImageProcessor) saveDocument(data []byte, id string) (*UploadResult, error) {
	targetDir := filepath.Join(p.basePath, "documents")
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create documents directory: %w", err)
	}

	filename := id + ".pdf"
	if err := os.WriteFile(filepath.Join(targetDir, filename), data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	return &UploadResult{URL: "/media/documents/" + filename}, nil
}

func (p *ImageProcessor) saveImage(data []byte, ext, id string) (*UploadResult, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	imagesDir := filepath.Join(p.basePath, "images")
	thumbsDir := filepath.Join(p.basePath, "images", "thumbs")
	if err := os.MkdirAll(thumbsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	filename := id + ext
	originalPath := filepath.Join(imagesDir, filename)

	if ext == ".webp" {
		err = webp.Save(originalPath, img, &webp.Options{Quality: 90})
	} else {
		err = imaging.Save(img, originalPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	thumbFilename := id + "_thumb.webp"
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := webp.Save(filepath.Join(thumbsDir, thumbFilename), thumb, &webp.Options{Quality: 85}); err != nil {
		// The original is already on disk; do not leave it orphaned.
		os.Remove(originalPath)
		return nil, fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return &UploadResult{
		URL:          "/media/images/" + filename,
		ThumbnailURL: "/media/images/thumbs/" + thumbFilename,
	}, nil
}

// RemoveUpload deletes a stored file and, for images, its thumbnail. Paths
// outside the media root are rejected.
func (p *ImageProcessor) RemoveUpload(relativePath string) error {
	trimmed := strings.TrimPrefix(relativePath, "/media/")
	if trimmed == relativePath || strings.Contains(trimmed, "..") {
		return fmt.Errorf("invalid media path %q", relativePath)
	}

	fullPath := filepath.Join(p.basePath, filepath.FromSlash(trimmed))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", relativePath, err)
	}

	ext := filepath.Ext(fullPath)
	if imageExtensions[ext] {
		base := strings.TrimSuffix(filepath.Base(fullPath), ext)
		thumbPath := filepath.Join(p.basePath, "images", "thumbs", base+"_thumb.webp")
		os.Remove(thumbPath)
	}

	return nil
}
