package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"civicreport-be/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ImagesBucket = "issue_images"

// GridFSImageStore keeps report photos in a GridFS bucket.
type GridFSImageStore struct {
	db *mongo.Database
}

func NewGridFSImageStore(db *mongo.Database) *GridFSImageStore {
	return &GridFSImageStore{db: db}
}

var _ ImageStore = (*GridFSImageStore)(nil)

// bucket returns a fresh bucket per call; deadlines are per-bucket state.
func (s *GridFSImageStore) bucket() (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(ImagesBucket))
	if err != nil {
		return nil, unavailable("open image bucket", err)
	}
	return bucket, nil
}

// SaveImage streams src into the bucket and returns the file id as hex.
func (s *GridFSImageStore) SaveImage(ctx context.Context, filename string, src io.Reader) (string, error) {
	bucket, err := s.bucket()
	if err != nil {
		return "", err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetWriteDeadline(deadline); err != nil {
			return "", unavailable("set write deadline", err)
		}
	}

	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "source", Value: "issue_report"}})
	id, err := bucket.UploadFromStream(filename, src, opts)
	if err != nil {
		return "", unavailable("upload image", err)
	}
	return id.Hex(), nil
}

// OpenImage copies the stored file into dst.
func (s *GridFSImageStore) OpenImage(ctx context.Context, id string, dst io.Writer) error {
	fileID, err := parseID("image", id)
	if err != nil {
		return err
	}

	bucket, err := s.bucket()
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetReadDeadline(deadline); err != nil {
			return unavailable("set read deadline", err)
		}
	}

	if _, err := bucket.DownloadToStream(fileID, dst); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("%w: image %s", apperrors.ErrNotFound, id)
		}
		return unavailable("download image", err)
	}
	return nil
}
