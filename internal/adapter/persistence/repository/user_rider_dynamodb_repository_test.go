package repository

import (
	"context"
	"testing"

	"zap_shift/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDynamoRepository_GetByEmail(t *testing.T) {
	item, _ := attributevalue.MarshalMap(userItem{ID: "u1", Email: "a@b.com", Role: "admin"})
	ddb := &fakeDynamoDB{}
	ddb.query = func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		if in.ExpressionAttributeValues[":email"].(*types.AttributeValueMemberS).Value != "a@b.com" {
			return &dynamodb.QueryOutput{}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
	}
	repo := NewUserDynamoRepository(ddb, "users")

	u, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleAdmin, u.Role)
	assert.Equal(t, "email-index", *ddb.queries[0].IndexName)

	missing, err := repo.GetByEmail(context.Background(), "x@b.com")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestUserDynamoRepository_UpdateRole(t *testing.T) {
	ddb := &fakeDynamoDB{}
	ddb.updateItem = func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		if in.Key["id"].(*types.AttributeValueMemberS).Value == "missing" {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
		attrs, _ := attributevalue.MarshalMap(userItem{ID: "u1", Email: "a@b.com", Role: "rider"})
		return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
	}
	repo := NewUserDynamoRepository(ddb, "users")

	u, err := repo.UpdateRole(context.Background(), "u1", entities.UserRoleRider)
	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleRider, u.Role)
	assert.Equal(t, "role", ddb.lastUpdate.ExpressionAttributeNames["#role"])

	missing, err := repo.UpdateRole(context.Background(), "missing", entities.UserRoleRider)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestUserDynamoRepository_ListScansAllPages(t *testing.T) {
	a, _ := attributevalue.MarshalMap(userItem{ID: "u1"})
	b, _ := attributevalue.MarshalMap(userItem{ID: "u2"})
	ddb := &fakeDynamoDB{}
	ddb.scan = func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		if in.ExclusiveStartKey == nil {
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{a}, LastEvaluatedKey: stringKey("id", "u1")}, nil
		}
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{b}}, nil
	}
	repo := NewUserDynamoRepository(ddb, "users")

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, ddb.scans)
}

func TestRiderDynamoRepository_ListByStatus(t *testing.T) {
	item, _ := attributevalue.MarshalMap(riderItem{ID: "r1", Name: "Rafi", Status: "pending"})
	ddb := &fakeDynamoDB{}
	ddb.query = func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
	}
	ddb.scan = func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{item, item}}, nil
	}
	repo := NewRiderDynamoRepository(ddb, "riders")

	pending, err := repo.ListByStatus(context.Background(), entities.RiderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, entities.RiderStatusPending, pending[0].Status)
	assert.Equal(t, "status", ddb.queries[0].ExpressionAttributeNames["#status"])

	all, err := repo.ListByStatus(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 1, ddb.scans)
}

func TestRiderDynamoRepository_CreateAndUpdateStatus(t *testing.T) {
	ddb := &fakeDynamoDB{}
	repo := NewRiderDynamoRepository(ddb, "riders")

	_, err := repo.Create(context.Background(), entities.Rider{ID: "r1", Name: "Rafi", Email: "r@b.com", Status: entities.RiderStatusPending})
	require.NoError(t, err)
	assert.Equal(t, "pending", ddb.lastPut.Item["status"].(*types.AttributeValueMemberS).Value)

	ddb.updateItem = func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		attrs, _ := attributevalue.MarshalMap(riderItem{ID: "r1", Email: "r@b.com", Status: "approved"})
		return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
	}
	r, err := repo.UpdateStatus(context.Background(), "r1", entities.RiderStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entities.RiderStatusApproved, r.Status)
}
