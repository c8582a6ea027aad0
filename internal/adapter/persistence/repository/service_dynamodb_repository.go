package repository

import (
	"context"
	"time"

	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type servicePackageItem struct {
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

type serviceItem struct {
	ID          string               `dynamodbav:"id"`
	Name        string               `dynamodbav:"name"`
	Description string               `dynamodbav:"description,omitempty"`
	Packages    []servicePackageItem `dynamodbav:"packages,omitempty"`
	Active      bool                 `dynamodbav:"active"`
	CreatedAt   string               `dynamodbav:"created_at"`
	UpdatedAt   string               `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists the service catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small; listing scans the table.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context, activeOnly bool) ([]entities.Service, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if activeOnly {
		in.FilterExpression = aws.String("active = :active")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceItem(it))
	}
	return items, nil
}

func toServiceItem(s entities.Service) serviceItem {
	packages := make([]servicePackageItem, 0, len(s.Packages))
	for _, p := range s.Packages {
		packages = append(packages, servicePackageItem{Name: p.Name, Price: p.Price})
	}
	return serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Packages:    packages,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	packages := make([]entities.ServicePackage, 0, len(it.Packages))
	for _, p := range it.Packages {
		packages = append(packages, entities.ServicePackage{Name: p.Name, Price: p.Price})
	}
	return entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Packages:    packages,
		Active:      it.Active,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
