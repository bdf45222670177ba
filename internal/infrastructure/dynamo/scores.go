package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/deckmatch/feature-matrix/internal/domain"
)

// ScoreRepo provides typed DynamoDB operations for the scores table.
// The composite primary key (feature_id, user_id) is the uniqueness
// constraint: an upsert for an existing pair overwrites in place.
type ScoreRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewScoreRepo(client *dynamodb.Client, tableName string) *ScoreRepo {
	return &ScoreRepo{client: client, tableName: tableName}
}

// Upsert writes all six dimensions for the (feature, user) pair in a single
// UpdateItem. created_at is only set on first insert via if_not_exists;
// updated_at is bumped every time. Concurrent submissions for the same pair
// land on the same key, so exactly one row survives.
func (r *ScoreRepo) Upsert(ctx context.Context, s *domain.Score) (*domain.Score, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey("feature_id", s.FeatureID, "user_id", s.UserID),
		UpdateExpression: aws.String(
			"SET strategic = :st, impact = :im, technical = :te, market = :ma, " +
				"revenue = :re, compliance = :co, updated_at = :now, " +
				"created_at = if_not_exists(created_at, :now)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st":  intAttr(s.Strategic),
			":im":  intAttr(s.Impact),
			":te":  intAttr(s.Technical),
			":ma":  intAttr(s.Market),
			":re":  intAttr(s.Revenue),
			":co":  intAttr(s.Compliance),
			":now": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, err
	}
	var saved domain.Score
	if err := attributevalue.UnmarshalMap(out.Attributes, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListByFeature returns all scores for a feature via a key-condition query.
func (r *ScoreRepo) ListByFeature(ctx context.Context, featureID string) ([]domain.Score, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("feature_id = :f"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":f": &types.AttributeValueMemberS{Value: featureID}},
	})
	if err != nil {
		return nil, err
	}
	var scores []domain.Score
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func intAttr(v int) types.AttributeValue {
	av, _ := attributevalue.Marshal(v)
	return av
}
