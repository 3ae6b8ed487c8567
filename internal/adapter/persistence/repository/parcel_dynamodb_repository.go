package repository

import (
	"context"
	"errors"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const parcelsSenderEmailIndex = "sender_email-index"

type parcelItem struct {
	ID              string  `dynamodbav:"id"`
	ParcelName      string  `dynamodbav:"parcel_name"`
	ParcelType      string  `dynamodbav:"parcel_type,omitempty"`
	ParcelWeight    float64 `dynamodbav:"parcel_weight,omitempty"`
	Cost            float64 `dynamodbav:"cost"`
	SenderName      string  `dynamodbav:"sender_name,omitempty"`
	SenderEmail     string  `dynamodbav:"sender_email"`
	SenderAddress   string  `dynamodbav:"sender_address,omitempty"`
	ReceiverName    string  `dynamodbav:"receiver_name,omitempty"`
	ReceiverEmail   string  `dynamodbav:"receiver_email,omitempty"`
	ReceiverAddress string  `dynamodbav:"receiver_address,omitempty"`
	ReceiverPhone   string  `dynamodbav:"receiver_phone,omitempty"`
	DeliveryStatus  string  `dynamodbav:"delivery_status"`
	TrackingID      string  `dynamodbav:"tracking_id,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// ParcelDynamoRepository persists Parcel entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sender_email-index (PK: sender_email)
type ParcelDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IParcelRepository = (*ParcelDynamoRepository)(nil)

func NewParcelDynamoRepository(ddb DynamoDBAPI, tableName string) *ParcelDynamoRepository {
	return &ParcelDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ParcelDynamoRepository) Create(ctx context.Context, p entities.Parcel) (entities.Parcel, error) {
	av, err := attributevalue.MarshalMap(toParcelItem(p))
	if err != nil {
		return entities.Parcel{}, err
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
		return entities.Parcel{}, err
	}
	return p, nil
}

func (r *ParcelDynamoRepository) GetByID(ctx context.Context, id string) (entities.Parcel, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Parcel{}, err
	}
	if len(out.Item) == 0 {
		return entities.Parcel{}, nil
	}

	var it parcelItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Parcel{}, err
	}
	return fromParcelItem(it), nil
}

func (r *ParcelDynamoRepository) ListBySenderEmail(ctx context.Context, email string) ([]entities.Parcel, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(parcelsSenderEmailIndex),
		KeyConditionExpression: aws.String("sender_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	parcels := make([]entities.Parcel, 0, len(raw))
	for _, item := range raw {
		var it parcelItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		parcels = append(parcels, fromParcelItem(it))
	}
	return parcels, nil
}

func (r *ParcelDynamoRepository) Delete(ctx context.Context, id string) (entities.DeleteResult, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.DeleteResult{}, nil
		}
		return entities.DeleteResult{}, err
	}
	return entities.DeleteResult{DeletedCount: 1}, nil
}

// MarkPaid sets the paid status and tracking id. A second call with the same
// tracking id matches but does not modify; a different tracking id is refused.
func (r *ParcelDynamoRepository) MarkPaid(ctx context.Context, id string, trackingID string) (entities.UpdateResult, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND " +
			"(attribute_not_exists(#tracking_id) OR #tracking_id = :empty OR #tracking_id = :tracking_id)"),
		UpdateExpression: aws.String("SET #delivery_status = :status, #tracking_id = :tracking_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(entities.DeliveryStatusPaid)},
			":tracking_id": &types.AttributeValueMemberS{Value: trackingID},
			":empty":       &types.AttributeValueMemberS{Value: ""},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#delivery_status": "delivery_status",
			"#tracking_id":     "tracking_id",
		},
		ReturnValues:                        types.ReturnValueUpdatedOld,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// The item comes back only when it exists, so the tracking id differs.
			if len(cfe.Item) > 0 {
				return entities.UpdateResult{}, interfaces.ErrTrackingIDConflict
			}
			return entities.UpdateResult{}, nil
		}
		return entities.UpdateResult{}, err
	}

	var old parcelItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &old); err != nil {
		return entities.UpdateResult{}, err
	}
	if old.DeliveryStatus == string(entities.DeliveryStatusPaid) && old.TrackingID == trackingID {
		return entities.UpdateResult{MatchedCount: 1}, nil
	}
	return entities.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func toParcelItem(p entities.Parcel) parcelItem {
	return parcelItem{
		ID:              p.ID,
		ParcelName:      p.ParcelName,
		ParcelType:      string(p.ParcelType),
		ParcelWeight:    p.ParcelWeight,
		Cost:            p.Cost,
		SenderName:      p.SenderName,
		SenderEmail:     p.SenderEmail,
		SenderAddress:   p.SenderAddress,
		ReceiverName:    p.ReceiverName,
		ReceiverEmail:   p.ReceiverEmail,
		ReceiverAddress: p.ReceiverAddress,
		ReceiverPhone:   p.ReceiverPhone,
		DeliveryStatus:  string(p.DeliveryStatus),
		TrackingID:      p.TrackingID,
		CreatedAt:       formatTime(p.CreatedAt),
	}
}

func fromParcelItem(it parcelItem) entities.Parcel {
	return entities.Parcel{
		ID:              it.ID,
		ParcelName:      it.ParcelName,
		ParcelType:      entities.ParcelType(it.ParcelType),
		ParcelWeight:    it.ParcelWeight,
		Cost:            it.Cost,
		SenderName:      it.SenderName,
		SenderEmail:     it.SenderEmail,
		SenderAddress:   it.SenderAddress,
		ReceiverName:    it.ReceiverName,
		ReceiverEmail:   it.ReceiverEmail,
		ReceiverAddress: it.ReceiverAddress,
		ReceiverPhone:   it.ReceiverPhone,
		DeliveryStatus:  entities.DeliveryStatus(it.DeliveryStatus),
		TrackingID:      it.TrackingID,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
