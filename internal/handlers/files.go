package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10 MiB

// saveUpload writes the named multipart file field into dir under a random
// name and returns the stored path.
func saveUpload(r *http.Request, field, dir string) (string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", errors.New("invalid multipart form")
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", errors.New("missing file field " + field)
	}
	defer file.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, uuid.NewString()+filepath.Ext(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
