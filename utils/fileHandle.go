package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// ImageExt picks a safe extension for an uploaded image: the filename
// extension, or one derived from the MIME subtype when the name carries none,
// checked against the allow list; anything else becomes ".png".
func ImageExt(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
			ext = "." + strings.ToLower(parts[1])
		}
	}

	if allowedImageExts[ext] {
		return ext
	}
	return ".png"
}

// SaveUploadedImage stores an uploaded file under destDir with a randomly
// generated name and returns the generated filename.
func SaveUploadedImage(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := ImageExt(file.Filename, file.Header.Get("Content-Type"))
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}
