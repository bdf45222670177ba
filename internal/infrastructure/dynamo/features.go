package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/deckmatch/feature-matrix/internal/domain"
)

// transactLimit is DynamoDB's maximum item count per TransactWriteItems call.
const transactLimit = 100

// FeatureRepo provides typed DynamoDB operations for the features table.
// It also knows the scores table name so feature deletion can remove the
// feature's scores in the same transaction.
type FeatureRepo struct {
	client      *dynamodb.Client
	tableName   string
	scoresTable string
}

func NewFeatureRepo(client *dynamodb.Client, tableName, scoresTable string) *FeatureRepo {
	return &FeatureRepo{client: client, tableName: tableName, scoresTable: scoresTable}
}

func (r *FeatureRepo) Put(ctx context.Context, f *domain.Feature) error {
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal feature: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *FeatureRepo) Get(ctx context.Context, featureID string) (*domain.Feature, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("feature_id", featureID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var f domain.Feature
	if err := attributevalue.UnmarshalMap(out.Item, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Scan returns every feature. The list view is explicitly unpaginated; callers
// needing scale must paginate externally.
func (r *FeatureRepo) Scan(ctx context.Context) ([]domain.Feature, error) {
	var features []domain.Feature
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.Feature
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		features = append(features, page...)
		if out.LastEvaluatedKey == nil {
			return features, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// DeleteCascade removes the feature and all its scores. scorerIDs are the
// user ids holding a score for the feature. Deletes run in TransactWriteItems
// chunks; the feature row itself rides in the final transaction, so a partial
// failure can leave the feature with fewer scores but never a score without
// its feature.
func (r *FeatureRepo) DeleteCascade(ctx context.Context, featureID string, scorerIDs []string) error {
	items := make([]types.TransactWriteItem, 0, len(scorerIDs)+1)
	for _, userID := range scorerIDs {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.scoresTable),
				Key:       compositeKey("feature_id", featureID, "user_id", userID),
			},
		})
	}
	items = append(items, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key:       strKey("feature_id", featureID),
		},
	})

	for len(items) > 0 {
		n := len(items)
		if n > transactLimit {
			n = transactLimit
		}
		_, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items[:n],
		})
		if err != nil {
			return err
		}
		items = items[n:]
	}
	return nil
}
