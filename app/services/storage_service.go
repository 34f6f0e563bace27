package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/opencampus/college-cms/utils"
)

// Media storage error constants
var (
	ErrFileTooLarge    = errors.New("file size exceeds the configured maximum")
	ErrInvalidFileType = errors.New("file type is not allowed")
	ErrInvalidPath     = errors.New("invalid storage path")
)

// StoredMedia describes one stored file: the URLs clients render and the
// public ID later used to delete the file.
type StoredMedia struct {
	URL          string
	ThumbnailURL string
	PublicID     string
	OriginalName string
	SizeBytes    int64
	MimeType     string
}

// MediaStorage is the upload collaborator consumed by the content flows.
// Implementations own naming, placement, and thumbnail derivation.
type MediaStorage interface {
	Store(ctx context.Context, folder, originalName string, size int64, r io.Reader) (*StoredMedia, error)
	Delete(ctx context.Context, publicID string) error
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// DiskMediaStorage stores files under baseDir/<folder>/<date>/ and serves
// them through the static route mounted at baseURL.
type DiskMediaStorage struct {
	baseDir string
	baseURL string
	maxSize int64
}

// NewDiskMediaStorage creates a disk-backed media storage
func NewDiskMediaStorage(baseDir, baseURL string, maxSize int64) *DiskMediaStorage {
	if maxSize <= 0 {
		maxSize = utils.MaxUploadSizeBytes
	}
	return &DiskMediaStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}
}

// Store writes the file to disk after validating size and sniffed content
// type, and derives a JPEG thumbnail when the payload is a decodable image.
func (s *DiskMediaStorage) Store(ctx context.Context, folder, originalName string, size int64, r io.Reader) (*StoredMedia, error) {
	if !folderPattern.MatchString(folder) {
		return nil, fmt.Errorf("%w: bad folder %q", ErrInvalidPath, folder)
	}
	if size > s.maxSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedImageExts[ext] {
		return nil, ErrInvalidFileType
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	head = head[:n]

	detected := http.DetectContentType(head)
	if detected != "application/octet-stream" && !strings.HasPrefix(detected, "image/") {
		return nil, ErrInvalidFileType
	}
	if detected == "application/octet-stream" {
		if fromExt := mime.TypeByExtension(ext); fromExt != "" {
			detected = fromExt
		}
	}

	dateDir := utils.UTCNow().Format("2006-01-02")
	dir := filepath.Join(s.baseDir, folder, dateDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	name := uuid.New().String()
	fullPath := filepath.Join(dir, name+ext)
	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	full := io.MultiReader(bytes.NewReader(head), r)
	written, err := io.Copy(dst, io.LimitReader(full, s.maxSize+1))
	if err != nil {
		_ = os.Remove(fullPath)
		return nil, err
	}
	if written > s.maxSize {
		_ = os.Remove(fullPath)
		return nil, ErrFileTooLarge
	}

	publicID := filepath.ToSlash(filepath.Join(folder, dateDir, name+ext))
	stored := &StoredMedia{
		URL:          s.baseURL + "/" + publicID,
		PublicID:     publicID,
		OriginalName: originalName,
		SizeBytes:    written,
		MimeType:     detected,
	}

	// Thumbnail is best effort: an undecodable but valid image format
	// still uploads, it just renders full size.
	if thumbPath, err := s.writeThumbnail(fullPath, dir, name); err == nil {
		stored.ThumbnailURL = s.baseURL + "/" + filepath.ToSlash(filepath.Join(folder, dateDir, filepath.Base(thumbPath)))
	}

	return stored, nil
}

// Delete removes the stored file and its thumbnail. A file already gone is
// not an error.
func (s *DiskMediaStorage) Delete(ctx context.Context, publicID string) error {
	cleanPath, err := s.sanitizePath(publicID)
	if err != nil {
		return err
	}

	if err := os.Remove(cleanPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", publicID, err)
	}

	ext := filepath.Ext(cleanPath)
	thumbPath := strings.TrimSuffix(cleanPath, ext) + "_thumb.jpg"
	if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete thumbnail for %s: %w", publicID, err)
	}

	return nil
}

func (s *DiskMediaStorage) sanitizePath(publicID string) (string, error) {
	if publicID == "" {
		return "", ErrInvalidPath
	}
	cleaned := filepath.ToSlash(filepath.Clean(filepath.FromSlash(publicID)))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(cleaned)), nil
}

func (s *DiskMediaStorage) writeThumbnail(srcPath, dir, name string) (string, error) {
	file, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", err
	}

	thumb := resizeImage(img, utils.ThumbnailMaxDim)
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, thumb, &jpeg.Options{Quality: 75}); err != nil {
		return "", err
	}

	thumbPath := filepath.Join(dir, name+"_thumb.jpg")
	if err := os.WriteFile(thumbPath, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return thumbPath, nil
}

func resizeImage(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	var nw, nh int
	if w >= h {
		nw = maxDim
		nh = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		nh = maxDim
		nw = int(float64(w) * float64(maxDim) / float64(h))
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	imagedraw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, imagedraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
