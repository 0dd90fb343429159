package port

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthanhphan/go-stream-router/internal/router/domain"
)

//go:generate mockgen -destination=../service/mocks/directory_mock.go -package=mocks -source=directory.go

// ListPartitionsInput describes one page request against the partition
// directory. NextToken is empty for the first page; when it is set the
// directory ignores the stream fields and continues the prior listing.
type ListPartitionsInput struct {
	StreamName string
	StreamARN  string
	NextToken  string
	PageLimit  int32
}

// ListPartitionsOutput is one page of partition descriptors. A non-empty
// NextToken means more pages follow.
type ListPartitionsOutput struct {
	Partitions []domain.PartitionDescriptor
	NextToken  string
}

// DirectoryClient is the authoritative source of the stream's current
// partitioning. Listings are filtered server-side to partitions that are
// currently open, and are safe to repeat without any stream-state
// precondition.
type DirectoryClient interface {
	ListPartitions(ctx context.Context, in *ListPartitionsInput) (*ListPartitionsOutput, error)
}

// DirectoryError is a structured directory-call failure. Every failure is
// transient from the router's point of view; the caller retries with
// backoff.
type DirectoryError struct {
	Code    string
	Message string
}

func (e *DirectoryError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsDirectoryError normalizes any error into a code/message pair for
// logging and metrics.
func AsDirectoryError(err error) *DirectoryError {
	var de *DirectoryError
	if errors.As(err, &de) {
		return de
	}
	return &DirectoryError{Code: "Unknown", Message: err.Error()}
}
