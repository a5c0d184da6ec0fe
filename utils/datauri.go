package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
)

// FileToDataURI reads an uploaded file and returns it as a
// data:<mime>;base64,... string. The API never stores uploads on disk; the
// encoded string is persisted on the category document directly.
func FileToDataURI(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
