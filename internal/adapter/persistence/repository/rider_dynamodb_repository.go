package repository

import (
	"context"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const ridersStatusIndex = "status-index"

type riderItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	Email            string `dynamodbav:"email"`
	Age              int    `dynamodbav:"age,omitempty"`
	Region           string `dynamodbav:"region,omitempty"`
	District         string `dynamodbav:"district,omitempty"`
	NID              string `dynamodbav:"nid,omitempty"`
	Phone            string `dynamodbav:"phone,omitempty"`
	BikeBrand        string `dynamodbav:"bike_brand,omitempty"`
	BikeRegistration string `dynamodbav:"bike_registration,omitempty"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// RiderDynamoRepository persists Rider applications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
type RiderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IRiderRepository = (*RiderDynamoRepository)(nil)

func NewRiderDynamoRepository(ddb DynamoDBAPI, tableName string) *RiderDynamoRepository {
	return &RiderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RiderDynamoRepository) Create(ctx context.Context, rider entities.Rider) (entities.Rider, error) {
	av, err := attributevalue.MarshalMap(toRiderItem(rider))
	if err != nil {
		return entities.Rider{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Rider{}, err
	}
	return rider, nil
}

func (r *RiderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Rider, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Rider{}, err
	}
	if len(out.Item) == 0 {
		return entities.Rider{}, nil
	}
	return unmarshalRider(out.Item)
}

func (r *RiderDynamoRepository) ListByStatus(ctx context.Context, status entities.RiderStatus) ([]entities.Rider, error) {
	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if status == "" {
		raw, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	} else {
		// status is a DynamoDB reserved word.
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ridersStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
	}
	if err != nil {
		return nil, err
	}

	riders := make([]entities.Rider, 0, len(raw))
	for _, item := range raw {
		rider, err := unmarshalRider(item)
		if err != nil {
			return nil, err
		}
		riders = append(riders, rider)
	}
	return riders, nil
}

func (r *RiderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RiderStatus) (entities.Rider, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{"#status": "status"}, map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Rider{}, nil
		}
		return entities.Rider{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Rider{}, nil
	}
	return unmarshalRider(out.Attributes)
}

func unmarshalRider(item map[string]types.AttributeValue) (entities.Rider, error) {
	var it riderItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Rider{}, err
	}
	return entities.Rider{
		ID:               it.ID,
		Name:             it.Name,
		Email:            it.Email,
		Age:              it.Age,
		Region:           it.Region,
		District:         it.District,
		NID:              it.NID,
		Phone:            it.Phone,
		BikeBrand:        it.BikeBrand,
		BikeRegistration: it.BikeRegistration,
		Status:           entities.RiderStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
	}, nil
}

func toRiderItem(r entities.Rider) riderItem {
	return riderItem{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Age:              r.Age,
		Region:           r.Region,
		District:         r.District,
		NID:              r.NID,
		Phone:            r.Phone,
		BikeBrand:        r.BikeBrand,
		BikeRegistration: r.BikeRegistration,
		Status:           string(r.Status),
		CreatedAt:        formatTime(r.CreatedAt),
	}
}
