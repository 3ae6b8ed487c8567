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

const paymentsCustomerEmailIndex = "customer_email-index"

type paymentItem struct {
	TransactionID string  `dynamodbav:"transaction_id"`
	ID            string  `dynamodbav:"id"`
	Amount        float64 `dynamodbav:"amount"`
	Currency      string  `dynamodbav:"currency"`
	CustomerEmail string  `dynamodbav:"customer_email"`
	ParcelID      string  `dynamodbav:"parcel_id"`
	ParcelName    string  `dynamodbav:"parcel_name"`
	PaymentStatus string  `dynamodbav:"payment_status"`
	PaidAt        string  `dynamodbav:"paid_at"`
	TrackingID    string  `dynamodbav:"tracking_id"`
}

// PaymentDynamoRepository persists Payment records in DynamoDB.
//
// Table requirements:
//   - PK: transaction_id (string)
//   - GSI: customer_email-index (PK: customer_email, SK: paid_at)
//
// Keying the table by transaction id makes a second insert for the same
// payment intent fail its condition instead of creating a duplicate.
type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.InsertResult, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.InsertResult{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#transaction_id)"),
		ExpressionAttributeNames: map[string]string{
			"#transaction_id": "transaction_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.InsertResult{}, interfaces.ErrPaymentAlreadyRecorded
		}
		return entities.InsertResult{}, err
	}
	return entities.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
}

func (r *PaymentDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("transaction_id", transactionID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByCustomerEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCustomerEmailIndex),
		KeyConditionExpression: aws.String("customer_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(raw))
	for _, item := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		TransactionID: p.TransactionID,
		ID:            p.ID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
		ParcelID:      p.ParcelID,
		ParcelName:    p.ParcelName,
		PaymentStatus: p.PaymentStatus,
		PaidAt:        formatTime(p.PaidAt),
		TrackingID:    p.TrackingID,
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:            it.ID,
		Amount:        it.Amount,
		Currency:      it.Currency,
		CustomerEmail: it.CustomerEmail,
		ParcelID:      it.ParcelID,
		ParcelName:    it.ParcelName,
		TransactionID: it.TransactionID,
		PaymentStatus: it.PaymentStatus,
		PaidAt:        parseTime(it.PaidAt),
		TrackingID:    it.TrackingID,
	}
}
