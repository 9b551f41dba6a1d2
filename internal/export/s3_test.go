package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"codefactory/internal/config"
)

func TestNewS3StoreValidation(t *testing.T) {
	base := config.S3Config{
		Endpoint:  "localhost:9000",
		Region:    "us-east-1",
		AccessKey: "ak",
		SecretKey: "sk",
		Bucket:    "datasets",
	}

	_, err := NewS3Store(base)
	require.NoError(t, err)

	missingEndpoint := base
	missingEndpoint.Endpoint = ""
	_, err = NewS3Store(missingEndpoint)
	require.Error(t, err)

	missingCreds := base
	missingCreds.SecretKey = ""
	_, err = NewS3Store(missingCreds)
	require.Error(t, err)

	missingBucket := base
	missingBucket.Bucket = ""
	_, err = NewS3Store(missingBucket)
	require.Error(t, err)
}
