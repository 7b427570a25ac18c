package gcs

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ImageStorage adaptador de blob storage para imágenes de producto.
// El core solo consume la URL resultante como string opaco.
type ImageStorage struct {
	client *storage.Client
	bucket string
}

// NewImageStorage crea el cliente GCS. Con credentialsFile vacío se usan las
// credenciales por defecto del entorno.
func NewImageStorage(ctx context.Context, bucket, credentialsFile string) (*ImageStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("crear cliente GCS: %w", err)
	}
	return &ImageStorage{client: client, bucket: bucket}, nil
}

// Upload sube el contenido al bucket y devuelve la URL pública del objeto.
func (s *ImageStorage) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	obj := s.client.Bucket(s.bucket).Object(objectName)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("subir objeto %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("cerrar writer de %s: %w", objectName, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

// Close libera el cliente subyacente.
func (s *ImageStorage) Close() error {
	return s.client.Close()
}
