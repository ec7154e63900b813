package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// AllowedDocumentTypes defines the allowed document extensions for
// admission paperwork.
var AllowedDocumentTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return BadRequestError(ErrFileTooLarge, nil)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return BadRequestError(ErrInvalidFileType, nil)
	}
	return nil
}

// ValidateDocumentFile checks if the uploaded file is an accepted document
func ValidateDocumentFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return BadRequestError(ErrFileTooLarge, nil)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedDocumentTypes[ext] {
		return BadRequestError("Invalid file type. Allowed types: jpg, jpeg, png, pdf", nil)
	}
	return nil
}

// SaveUploadedFile saves an uploaded file under uploadDir with a uuid name
// and returns the stored relative path.
func SaveUploadedFile(file *multipart.FileHeader, uploadDir string) (string, error) {
	ext := filepath.Ext(file.Filename)
	filename := uuid.New().String() + ext
	dest := filepath.Join(uploadDir, filename)

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %v", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return filepath.ToSlash(dest), nil
}

// DeleteFile deletes a stored upload
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}
