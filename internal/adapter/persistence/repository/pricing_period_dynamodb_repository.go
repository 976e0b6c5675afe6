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

const defaultPricingPeriodsTableName = "pricing_periods"

type pricingComponentItem struct {
	ID                 string `dynamodbav:"id"`
	PricingAttributeID string `dynamodbav:"pricing_attribute_id,omitempty"`
	AttributeName      string `dynamodbav:"attribute_name"`
	Price              string `dynamodbav:"price"`
}

type pricingPeriodItem struct {
	TourPackageID  string                 `dynamodbav:"tour_package_id"`
	ID             string                 `dynamodbav:"id"`
	StartDate      string                 `dynamodbav:"start_date"`
	EndDate        string                 `dynamodbav:"end_date"`
	MealPlanID     string                 `dynamodbav:"meal_plan_id"`
	NumberOfRooms  int                    `dynamodbav:"number_of_rooms"`
	IsGroupPricing bool                   `dynamodbav:"is_group_pricing"`
	Components     []pricingComponentItem `dynamodbav:"components"`
}

// PricingPeriodDynamoRepository persists a package's price list in DynamoDB.
//
// Table requirements:
//   - PK: tour_package_id (string)
//   - SK: id (string)
//
// One package's whole price list lives under a single partition so the
// resolution path is a single Query; price lists are administrator-entered
// and small.

type PricingPeriodDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingPeriodRepository = (*PricingPeriodDynamoRepository)(nil)

func NewPricingPeriodDynamoRepository(ddb *dynamodb.Client) *PricingPeriodDynamoRepository {
	return &PricingPeriodDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_PERIODS_TABLE", defaultPricingPeriodsTableName),
	}
}

func (r *PricingPeriodDynamoRepository) Create(ctx context.Context, p entities.PricingPeriod) (entities.PricingPeriod, error) {
	it := toPricingPeriodItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PricingPeriod{}, err
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
		return entities.PricingPeriod{}, err
	}
	return p, nil
}

func (r *PricingPeriodDynamoRepository) GetByID(ctx context.Context, tourPackageID, id string) (entities.PricingPeriod, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tour_package_id": &types.AttributeValueMemberS{Value: tourPackageID},
			"id":              &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingPeriod{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingPeriod{}, nil
	}

	var it pricingPeriodItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingPeriod{}, err
	}
	return fromPricingPeriodItem(it), nil
}

func (r *PricingPeriodDynamoRepository) ListByTourPackageID(ctx context.Context, tourPackageID string) ([]entities.PricingPeriod, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("tour_package_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: tourPackageID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	periods := make([]entities.PricingPeriod, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pricingPeriodItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		periods = append(periods, fromPricingPeriodItem(it))
	}
	return periods, nil
}

func (r *PricingPeriodDynamoRepository) DeleteByID(ctx context.Context, tourPackageID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tour_package_id": &types.AttributeValueMemberS{Value: tourPackageID},
			"id":              &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPricingPeriodItem(p entities.PricingPeriod) pricingPeriodItem {
	components := make([]pricingComponentItem, 0, len(p.Components))
	for _, c := range p.Components {
		components = append(components, pricingComponentItem{
			ID:                 c.ID,
			PricingAttributeID: c.PricingAttributeID,
			AttributeName:      c.AttributeName,
			Price:              c.Price,
		})
	}
	return pricingPeriodItem{
		TourPackageID:  p.TourPackageID,
		ID:             p.ID,
		StartDate:      p.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:        p.EndDate.UTC().Format(time.RFC3339Nano),
		MealPlanID:     p.MealPlanID,
		NumberOfRooms:  p.NumberOfRooms,
		IsGroupPricing: p.IsGroupPricing,
		Components:     components,
	}
}

func fromPricingPeriodItem(it pricingPeriodItem) entities.PricingPeriod {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	components := make([]entities.PricingComponent, 0, len(it.Components))
	for _, c := range it.Components {
		components = append(components, entities.PricingComponent{
			ID:                 c.ID,
			PricingAttributeID: c.PricingAttributeID,
			AttributeName:      c.AttributeName,
			Price:              c.Price,
		})
	}
	return entities.PricingPeriod{
		TourPackageID:  it.TourPackageID,
		ID:             it.ID,
		StartDate:      startDate,
		EndDate:        endDate,
		MealPlanID:     it.MealPlanID,
		NumberOfRooms:  it.NumberOfRooms,
		IsGroupPricing: it.IsGroupPricing,
		Components:     components,
	}
}
