package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/models"
)

// EncodeUpload reads one uploaded part and returns it base64-encoded. The
// part is rewound after reading and always closed.
func EncodeUpload(header *multipart.FileHeader) (models.EncodedFile, error) {
	file, err := header.Open()
	if err != nil {
		return models.EncodedFile{}, fmt.Errorf("open upload %q: %w", header.Filename, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.EncodedFile{}, fmt.Errorf("read upload %q: %w", header.Filename, err)
	}

	// Reset file reader
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return models.EncodedFile{}, fmt.Errorf("rewind upload %q: %w", header.Filename, err)
	}

	return models.EncodedFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     base64.StdEncoding.EncodeToString(content),
	}, nil
}
