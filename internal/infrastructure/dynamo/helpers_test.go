package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrKey(t *testing.T) {
	key := strKey("email", "a@deckmatch.com")
	require.Len(t, key, 1)
	v, ok := key["email"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "a@deckmatch.com", v.Value)
}

func TestCompositeKey(t *testing.T) {
	key := compositeKey("feature_id", "f1", "user_id", "u1")
	require.Len(t, key, 2)
	pk, ok := key["feature_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	sk, ok := key["user_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "f1", pk.Value)
	assert.Equal(t, "u1", sk.Value)
}
