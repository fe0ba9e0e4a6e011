package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	ErrInvalidImage    = errors.New("invalid image data")
	ErrImageTooLarge   = errors.New("image exceeds size limit")
	ErrFileExists      = errors.New("file already exists")
	ErrFileNotExists   = errors.New("file does not exist")
	ErrInvalidFileName = errors.New("invalid file name")
)

var allowedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type IUploads interface {
	SaveImage(image []byte, filename string) error
	DeleteImage(filename string) error
	ReplaceImage(image []byte, oldFilename, newFilename string) error
	SetMaxBytes(maxBytes int64)
}

// Uploads stores game thumbnails and blog images on disk. MaxBytes
// tracks the admin-configurable upload limit from the settings
// document; zero means unlimited.
type Uploads struct {
	folderPath string
	mu         sync.RWMutex
	maxBytes   int64
}

func NewUploads(folderPath string, maxBytes int64) (*Uploads, error) {
	if folderPath == "" {
		return nil, errors.New("folder path is empty")
	}

	folderPath = filepath.Clean(folderPath) + string(filepath.Separator)

	u := &Uploads{folderPath: folderPath, maxBytes: maxBytes}

	if err := u.ensureFolderExists(); err != nil {
		return nil, err
	}

	return u, nil
}

// SetMaxBytes applies a new limit when the settings document changes.
func (u *Uploads) SetMaxBytes(maxBytes int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.maxBytes = maxBytes
}

func (u *Uploads) ensureFolderExists() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := os.Stat(u.folderPath); os.IsNotExist(err) {
		if err := os.MkdirAll(u.folderPath, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uploads) SaveImage(image []byte, filename string) error {
	if len(image) == 0 {
		return ErrInvalidImage
	}

	if filename == "" || filename != filepath.Base(filename) {
		return ErrInvalidFileName
	}

	if !allowedExt[strings.ToLower(filepath.Ext(filename))] {
		return ErrInvalidFileName
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.maxBytes > 0 && int64(len(image)) > u.maxBytes {
		return ErrImageTooLarge
	}

	fullPath := filepath.Join(u.folderPath, filename)

	if _, err := os.Stat(fullPath); err == nil {
		return ErrFileExists
	}

	return os.WriteFile(fullPath, image, 0o644)
}

func (u *Uploads) DeleteImage(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return ErrInvalidFileName
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	fullPath := filepath.Join(u.folderPath, filename)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return ErrFileNotExists
	}

	return os.Remove(fullPath)
}

func (u *Uploads) ReplaceImage(image []byte, oldFilename, newFilename string) error {
	if err := u.DeleteImage(oldFilename); err != nil && !errors.Is(err, ErrFileNotExists) {
		return err
	}
	return u.SaveImage(image, newFilename)
}
