package services

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"inkwell/models"
)

// allowedImageTypes is the entire upload validation; file contents are not
// sniffed.
var allowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

type ImageService interface {
	GetAllImages() ([]string, error)
	GetAllImagesSorted(asc bool) ([]string, error)
	SaveImage(filename string, src io.Reader) (string, error)
	DeleteImage(name string) (bool, error)
}

type imageService struct {
	uploadDir string
}

func NewImageService(uploadDir string) ImageService {
	return &imageService{uploadDir: uploadDir}
}

// GetAllImages lists upload-directory entries with an allowed image
// extension, case-insensitive on the extension.
func (s *imageService) GetAllImages() ([]string, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isValidImageType(e.Name()) {
			images = append(images, e.Name())
		}
	}
	return images, nil
}

func (s *imageService) GetAllImagesSorted(asc bool) ([]string, error) {
	images, err := s.GetAllImages()
	if err != nil {
		return nil, err
	}
	sort.Strings(images)
	if !asc {
		for i, j := 0, len(images)-1; i < j; i, j = i+1, j-1 {
			images[i], images[j] = images[j], images[i]
		}
	}
	return images, nil
}

// SaveImage writes the upload under a sanitized name. A name collision is
// rejected rather than overwritten.
func (s *imageService) SaveImage(filename string, src io.Reader) (string, error) {
	if !isValidImage(filename) {
		return "", models.ErrInvalidImage
	}

	name := sanitizeFilename(filename)
	path := filepath.Join(s.uploadDir, name)
	if _, err := os.Stat(path); err == nil {
		return "", models.ErrImageExists
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// DeleteImage removes the named file. The boolean reports whether it
// existed.
func (s *imageService) DeleteImage(name string) (bool, error) {
	path := filepath.Join(s.uploadDir, filepath.Base(name))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, err
	}
	return true, nil
}

func isValidImage(filename string) bool {
	if filename == "" {
		return false
	}
	return isValidImageType(filename)
}

func isValidImageType(filename string) bool {
	return allowedImageTypes[strings.ToLower(filepath.Ext(filename))]
}

func sanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	return unsafeFilenameChars.ReplaceAllString(name, "")
}
