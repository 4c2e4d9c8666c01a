package vectordb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/repository"
	pb "github.com/qdrant/go-client/qdrant"
)

// QdrantRepository stores one point per transaction, keyed by the MySQL row
// ID so updates overwrite and deletes can find their point.
type QdrantRepository struct {
	client *QdrantClient
}

func NewQdrantRepository(client *QdrantClient) repository.MemoryRepo {
	return &QdrantRepository{client: client}
}

func (r *QdrantRepository) SaveMemory(ctx context.Context, userID string, transactionID uint, content, category string, vector []float32) error {
	points := []*pb.PointStruct{
		{
			Id: &pb.PointId{
				PointIdOptions: &pb.PointId_Num{Num: uint64(transactionID)},
			},
			Vectors: &pb.Vectors{
				VectorsOptions: &pb.Vectors_Vector{
					Vector: &pb.Vector{Data: vector},
				},
			},
			Payload: map[string]*pb.Value{
				"user_id":        {Kind: &pb.Value_StringValue{StringValue: userID}},
				"transaction_id": {Kind: &pb.Value_IntegerValue{IntegerValue: int64(transactionID)}},
				"content":        {Kind: &pb.Value_StringValue{StringValue: content}},
				"category":       {Kind: &pb.Value_StringValue{StringValue: category}},
				"timestamp":      {Kind: &pb.Value_IntegerValue{IntegerValue: time.Now().Unix()}},
			},
		},
	}

	wait := true
	_, err := r.client.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: CollectionName,
		Points:         points,
		Wait:           &wait,
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %v", err)
	}

	slog.Debug("saved transaction memory", "id", transactionID)
	return nil
}

// SearchSimilar returns the owner's closest past transactions. The user_id
// filter is mandatory: memory must never leak across owners.
func (r *QdrantRepository) SearchSimilar(ctx context.Context, userID string, limit int, queryVector []float32) ([]repository.MemoryResult, error) {
	filter := &pb.Filter{
		Must: []*pb.Condition{{
			ConditionOneOf: &pb.Condition_Field{
				Field: &pb.FieldCondition{
					Key: "user_id",
					Match: &pb.Match{
						MatchValue: &pb.Match_Text{Text: userID},
					},
				},
			},
		}},
	}

	searchResult, err := r.client.points.Search(ctx, &pb.SearchPoints{
		CollectionName: CollectionName,
		Vector:         queryVector,
		Limit:          uint64(limit),
		Filter:         filter,
		// Without this Qdrant only returns IDs and scores.
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{
				Enable: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant search failed: %v", err)
	}

	var histories []repository.MemoryResult
	for _, point := range searchResult.Result {
		var res repository.MemoryResult
		if val, ok := point.Payload["content"]; ok {
			res.Content = val.GetStringValue()
		}
		if val, ok := point.Payload["category"]; ok {
			res.Category = val.GetStringValue()
		}
		if val, ok := point.Payload["timestamp"]; ok {
			res.Timestamp = val.GetIntegerValue()
		}
		histories = append(histories, res)
	}

	return histories, nil
}

func (r *QdrantRepository) Delete(ctx context.Context, transactionID uint) error {
	_, err := r.client.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: CollectionName,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{
					Ids: []*pb.PointId{
						{PointIdOptions: &pb.PointId_Num{Num: uint64(transactionID)}},
					},
				},
			},
		},
	})
	return err
}
