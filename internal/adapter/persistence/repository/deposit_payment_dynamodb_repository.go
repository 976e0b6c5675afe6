package repository

import (
	"context"
	"time"

	"viaggio_tours/internal/domain/entities"
	"viaggio_tours/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsQuoteIDIndex     = "quote_id-index"
)

type depositPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	QuoteID            string                 `dynamodbav:"quote_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// DepositPaymentDynamoRepository persists DepositPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type DepositPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositPaymentRepository = (*DepositPaymentDynamoRepository)(nil)

func NewDepositPaymentDynamoRepository(ddb *dynamodb.Client) *DepositPaymentDynamoRepository {
	return &DepositPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *DepositPaymentDynamoRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	it := toDepositPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DepositPayment{}, err
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
		return entities.DepositPayment{}, err
	}
	return p, nil
}

func (r *DepositPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DepositPayment{}, nil
	}

	var it depositPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DepositPayment{}, err
	}
	return fromDepositPaymentItem(it), nil
}

func (r *DepositPaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DepositPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositPaymentItem(it))
	}
	return items, nil
}

func toDepositPaymentItem(p entities.DepositPayment) depositPaymentItem {
	return depositPaymentItem{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromDepositPaymentItem(it depositPaymentItem) entities.DepositPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.DepositPayment{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
