package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"viaggio_tours/internal/domain/entities"
	"viaggio_tours/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName   = "quotes"
	quotesTourPackageIDIndex = "tour_package_id-index"
)

type quoteLineItem struct {
	ComponentID         string `dynamodbav:"component_id"`
	Name                string `dynamodbav:"name"`
	BasePrice           string `dynamodbav:"base_price"`
	OccupancyMultiplier int    `dynamodbav:"occupancy_multiplier"`
	RoomQuantity        int    `dynamodbav:"room_quantity"`
	Amount              string `dynamodbav:"amount"`
	Description         string `dynamodbav:"description"`
}

type quoteItem struct {
	ID            string          `dynamodbav:"id"`
	TourPackageID string          `dynamodbav:"tour_package_id"`
	TravelDate    string          `dynamodbav:"travel_date"`
	MealPlanID    string          `dynamodbav:"meal_plan_id"`
	NumberOfRooms int             `dynamodbav:"number_of_rooms"`
	TotalPrice    string          `dynamodbav:"total_price"`
	MarkupPercent string          `dynamodbav:"markup_percent"`
	MarkupAmount  string          `dynamodbav:"markup_amount"`
	Breakdown     []quoteLineItem `dynamodbav:"breakdown"`
	PeriodID      string          `dynamodbav:"period_id"`
	Status        string          `dynamodbav:"status"`
	CreatedAt     string          `dynamodbav:"created_at"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tour_package_id-index (PK: tour_package_id)
//
// Monetary fields are stored as strings so amounts round-trip exactly as the
// engine produced them; reads parse them back fail-soft.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByTourPackageID(ctx context.Context, tourPackageID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesTourPackageIDIndex),
		KeyConditionExpression: aws.String("tour_package_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: tourPackageID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdatePricingByID(ctx context.Context, id string, totalPrice, markupAmount float64, breakdown []entities.QuoteLine, periodID string) (entities.Quote, error) {
	lines := make([]quoteLineItem, 0, len(breakdown))
	for _, l := range breakdown {
		lines = append(lines, toQuoteLineItem(l))
	}
	breakdownAV, err := attributevalue.Marshal(lines)
	if err != nil {
		return entities.Quote{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #total_price = :total_price, #markup_amount = :markup_amount, #breakdown = :breakdown, #period_id = :period_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":total_price":   &types.AttributeValueMemberS{Value: floatToString(totalPrice)},
			":markup_amount": &types.AttributeValueMemberS{Value: floatToString(markupAmount)},
			":breakdown":     breakdownAV,
			":period_id":     &types.AttributeValueMemberS{Value: periodID},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#total_price":   "total_price",
			"#markup_amount": "markup_amount",
			"#breakdown":     "breakdown",
			"#period_id":     "period_id",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteLineItem(l entities.QuoteLine) quoteLineItem {
	return quoteLineItem{
		ComponentID:         l.ComponentID,
		Name:                l.Name,
		BasePrice:           floatToString(l.BasePrice),
		OccupancyMultiplier: l.OccupancyMultiplier,
		RoomQuantity:        l.RoomQuantity,
		Amount:              floatToString(l.Amount),
		Description:         l.Description,
	}
}

func fromQuoteLineItem(it quoteLineItem) entities.QuoteLine {
	basePrice, _ := strconv.ParseFloat(it.BasePrice, 64)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.QuoteLine{
		ComponentID:         it.ComponentID,
		Name:                it.Name,
		BasePrice:           basePrice,
		OccupancyMultiplier: it.OccupancyMultiplier,
		RoomQuantity:        it.RoomQuantity,
		Amount:              amount,
		Description:         it.Description,
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, 0, len(q.Breakdown))
	for _, l := range q.Breakdown {
		lines = append(lines, toQuoteLineItem(l))
	}
	return quoteItem{
		ID:            q.ID,
		TourPackageID: q.TourPackageID,
		TravelDate:    q.TravelDate.UTC().Format(time.RFC3339Nano),
		MealPlanID:    q.MealPlanID,
		NumberOfRooms: q.NumberOfRooms,
		TotalPrice:    floatToString(q.TotalPrice),
		MarkupPercent: floatToString(q.MarkupPercent),
		MarkupAmount:  floatToString(q.MarkupAmount),
		Breakdown:     lines,
		PeriodID:      q.PeriodID,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	travelDate, _ := time.Parse(time.RFC3339Nano, it.TravelDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalPrice, _ := strconv.ParseFloat(it.TotalPrice, 64)
	markupPercent, _ := strconv.ParseFloat(it.MarkupPercent, 64)
	markupAmount, _ := strconv.ParseFloat(it.MarkupAmount, 64)

	lines := make([]entities.QuoteLine, 0, len(it.Breakdown))
	for _, l := range it.Breakdown {
		lines = append(lines, fromQuoteLineItem(l))
	}

	return entities.Quote{
		ID:            it.ID,
		TourPackageID: it.TourPackageID,
		TravelDate:    travelDate,
		MealPlanID:    it.MealPlanID,
		NumberOfRooms: it.NumberOfRooms,
		TotalPrice:    totalPrice,
		MarkupPercent: markupPercent,
		MarkupAmount:  markupAmount,
		Breakdown:     lines,
		PeriodID:      it.PeriodID,
		Status:        entities.QuoteStatus(it.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
