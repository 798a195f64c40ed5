package storage

import (
	"context"
	"fmt"

	"go-label-analyzer/internal/imaging"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/google/uuid"
)

// Cache hint for the public photo URL; one hour, same as the serving CDN.
const photoCacheControl = "public, max-age=3600"

type azurePhotoStore struct {
	client    *azblob.Client
	account   string
	container string
}

func NewAzurePhotoStore(accountName, accountKey, container string) (PhotoStore, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, err
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &azurePhotoStore{
		client:    client,
		account:   accountName,
		container: container,
	}, nil
}

func (s *azurePhotoStore) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	blobName := fmt.Sprintf("%s.%s", uuid.NewString(), imaging.Extension(mimeType))
	cacheControl := photoCacheControl

	_, err := s.client.UploadBuffer(ctx, s.container, blobName, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType:  &mimeType,
			BlobCacheControl: &cacheControl,
		},
	})
	if err != nil {
		return "", fmt.Errorf("blob upload failed: %w", err)
	}

	return fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", s.account, s.container, blobName), nil
}
