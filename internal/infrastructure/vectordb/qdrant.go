package vectordb

import (
	"context"
	"fmt"
	"log/slog"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	CollectionName = "finance_memory"
	VectorSize     = 1536 // text-embedding-3-small
)

type QdrantClient struct {
	conn   *grpc.ClientConn
	client pb.CollectionsClient
	points pb.PointsClient
}

func NewQdrantClient(host string, port int) (*QdrantClient, error) {
	addr := fmt.Sprintf("%s:%d", host, port)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("did not connect to qdrant: %v", err)
	}

	return &QdrantClient{
		conn:   conn,
		client: pb.NewCollectionsClient(conn),
		points: pb.NewPointsClient(conn),
	}, nil
}

func (q *QdrantClient) Close() {
	if q.conn != nil {
		q.conn.Close()
	}
}

// InitCollection makes sure the memory collection exists before the server
// takes traffic.
func (q *QdrantClient) InitCollection(ctx context.Context) error {
	exists, err := q.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: CollectionName,
	})
	if err == nil && exists != nil {
		return nil
	}

	slog.Info("creating qdrant collection", "name", CollectionName, "dim", VectorSize)

	_, err = q.client.Create(ctx, &pb.CreateCollection{
		CollectionName: CollectionName,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     VectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %v", err)
	}

	return nil
}
