package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadBytes caps uploads at 16 MiB.
const MaxUploadBytes = 16 << 20

var (
	ErrNoFile      = errors.New("no image file selected")
	ErrBadFileType = errors.New("invalid file type. Allowed types: png, jpg, jpeg, gif")
	ErrTooLarge    = errors.New("file exceeds the 16 MiB upload limit")
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// LocalStore writes uploaded images to a directory on disk and hands back
// an opaque storage key. Profile images live in a profiles/ subdirectory.
// The rest of the app only ever sees the key.
type LocalStore struct {
	Root string
}

// NewLocalStore creates the store and its directories.
func NewLocalStore(root string) (*LocalStore, error) {
	for _, dir := range []string{root, filepath.Join(root, "profiles")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return &LocalStore{Root: root}, nil
}

// Save stores an uploaded image under a fresh unique key and returns the
// key. Rejects missing files, disallowed extensions and oversized files
// before writing anything.
func (s *LocalStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	key, err := s.checkAndName(header, "")
	if err != nil {
		return "", err
	}
	if err := s.write(file, key); err != nil {
		return "", err
	}
	return key, nil
}

// SaveProfile stores a profile image under profiles/.
func (s *LocalStore) SaveProfile(file multipart.File, header *multipart.FileHeader) (string, error) {
	key, err := s.checkAndName(header, "profiles")
	if err != nil {
		return "", err
	}
	if err := s.write(file, key); err != nil {
		return "", err
	}
	return key, nil
}

func (s *LocalStore) checkAndName(header *multipart.FileHeader, subdir string) (string, error) {
	if header == nil || header.Filename == "" {
		return "", ErrNoFile
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrBadFileType
	}
	if header.Size > MaxUploadBytes {
		return "", ErrTooLarge
	}

	// uuid hex keeps keys collision-free and discards the client filename.
	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	if subdir != "" {
		return subdir + "/" + name, nil
	}
	return name, nil
}

func (s *LocalStore) write(file multipart.File, key string) error {
	dst, err := os.Create(filepath.Join(s.Root, filepath.FromSlash(key)))
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, MaxUploadBytes+1)); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}
	return nil
}
