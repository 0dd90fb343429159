// Package directory implements the DirectoryClient port against the
// partition directory's gRPC API.
package directory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/anthanhphan/go-stream-router/internal/router/domain"
	"github.com/anthanhphan/go-stream-router/internal/router/port"
	"github.com/anthanhphan/go-stream-router/pkg/resilience"
	directoryv1 "github.com/anthanhphan/go-stream-router/proto/gen/directory/v1"
	"github.com/anthanhphan/gosdk/logger"
)

const defaultCallTimeout = 10 * time.Second

type GrpcAdapter struct {
	addr        string
	callTimeout time.Duration
	breaker     *resilience.CircuitBreaker

	mu     sync.Mutex
	client directoryv1.DirectoryServiceClient
	conn   *grpc.ClientConn
}

func NewGrpcAdapter(addr string) *GrpcAdapter {
	return &GrpcAdapter{
		addr:        addr,
		callTimeout: defaultCallTimeout,
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Name: "directory:" + addr,
		}),
	}
}

var _ port.DirectoryClient = (*GrpcAdapter)(nil)

// ListPartitions issues one page of the directory listing, always asking
// for the open-only server-side filter.
func (a *GrpcAdapter) ListPartitions(ctx context.Context, in *port.ListPartitionsInput) (*port.ListPartitionsOutput, error) {
	var resp *directoryv1.ListPartitionsResponse
	err := a.breaker.Execute(ctx, func(execCtx context.Context) error {
		client, err := a.getClient()
		if err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(execCtx, a.callTimeout)
		defer cancel()

		req := &directoryv1.ListPartitionsRequest{
			MaxResults: in.PageLimit,
		}
		if in.NextToken != "" {
			req.NextToken = in.NextToken
		} else {
			req.StreamName = in.StreamName
			req.StreamArn = in.StreamARN
			req.OpenOnly = true
		}

		resp, err = client.ListPartitions(callCtx, req)
		return err
	})
	if err != nil {
		return nil, normalizeRPCErr(ctx, err)
	}

	out := &port.ListPartitionsOutput{
		Partitions: make([]domain.PartitionDescriptor, 0, len(resp.Partitions)),
		NextToken:  resp.NextToken,
	}
	for _, p := range resp.Partitions {
		d, err := toDescriptor(p)
		if err != nil {
			logger.Warnw("Skipping malformed partition descriptor",
				"addr", a.addr, "partition_id", p.GetPartitionId(), "error", err.Error())
			continue
		}
		out.Partitions = append(out.Partitions, d)
	}
	return out, nil
}

func (a *GrpcAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.conn == nil {
		return nil
	}
	err := a.conn.Close()
	a.conn = nil
	a.client = nil
	return err
}

func (a *GrpcAdapter) getClient() (directoryv1.DirectoryServiceClient, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.client != nil {
		return a.client, nil
	}

	conn, err := grpc.NewClient(a.addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}
	a.conn = conn
	a.client = directoryv1.NewDirectoryServiceClient(conn)
	return a.client, nil
}

func toDescriptor(p *directoryv1.Partition) (domain.PartitionDescriptor, error) {
	id, err := domain.ParsePartitionID(p.GetPartitionId())
	if err != nil {
		return domain.PartitionDescriptor{}, err
	}

	r := p.GetHashKeyRange()
	if r == nil {
		return domain.PartitionDescriptor{}, fmt.Errorf("partition %q has no hash key range", p.GetPartitionId())
	}
	start, err := domain.ParseHashKey(r.GetStartingHashKey())
	if err != nil {
		return domain.PartitionDescriptor{}, err
	}
	end, err := domain.ParseHashKey(r.GetEndingHashKey())
	if err != nil {
		return domain.PartitionDescriptor{}, err
	}
	if start.Cmp(end) > 0 {
		return domain.PartitionDescriptor{}, fmt.Errorf("partition %q has inverted hash key range", p.GetPartitionId())
	}

	return domain.PartitionDescriptor{
		ID:    id,
		Range: domain.HashRange{Start: start, End: end},
		SequenceRange: domain.SequenceNumberRange{
			Start: p.GetSequenceNumberRange().GetStartingSequenceNumber(),
			End:   p.GetSequenceNumberRange().GetEndingSequenceNumber(),
		},
	}, nil
}

// normalizeRPCErr folds transport failures into the structured directory
// failure the shard map's retry path consumes.
func normalizeRPCErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if st, ok := status.FromError(err); ok {
		if st.Code() == codes.NotFound {
			return &port.DirectoryError{Code: "StreamNotFound", Message: st.Message()}
		}
		return &port.DirectoryError{Code: st.Code().String(), Message: st.Message()}
	}
	return port.AsDirectoryError(err)
}
