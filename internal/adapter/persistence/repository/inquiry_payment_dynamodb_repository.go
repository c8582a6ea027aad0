package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsInquiryIDIndex   = "inquiry_id-index"
)

type inquiryPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	InquiryID          string                 `dynamodbav:"inquiry_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// InquiryPaymentDynamoRepository persists InquiryPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: inquiry_id-index (PK: inquiry_id)

type InquiryPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInquiryPaymentRepository = (*InquiryPaymentDynamoRepository)(nil)

func NewInquiryPaymentDynamoRepository(ddb *dynamodb.Client) *InquiryPaymentDynamoRepository {
	return &InquiryPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *InquiryPaymentDynamoRepository) Create(ctx context.Context, p entities.InquiryPayment) (entities.InquiryPayment, error) {
	av, err := attributevalue.MarshalMap(toInquiryPaymentItem(p))
	if err != nil {
		return entities.InquiryPayment{}, err
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
		return entities.InquiryPayment{}, err
	}
	return p, nil
}

func (r *InquiryPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.InquiryPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InquiryPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.InquiryPayment{}, nil
	}

	var it inquiryPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InquiryPayment{}, err
	}
	return fromInquiryPaymentItem(it), nil
}

func (r *InquiryPaymentDynamoRepository) ListByInquiryID(ctx context.Context, inquiryID string) ([]entities.InquiryPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInquiryIDIndex),
		KeyConditionExpression: aws.String("inquiry_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: inquiryID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InquiryPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it inquiryPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInquiryPaymentItem(it))
	}
	return items, nil
}

func (r *InquiryPaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InquiryPaymentStatus) (entities.InquiryPayment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InquiryPayment{}, nil
		}
		return entities.InquiryPayment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.InquiryPayment{}, nil
	}

	var it inquiryPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InquiryPayment{}, err
	}
	return fromInquiryPaymentItem(it), nil
}

func toInquiryPaymentItem(p entities.InquiryPayment) inquiryPaymentItem {
	return inquiryPaymentItem{
		ID:                 p.ID,
		InquiryID:          p.InquiryID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromInquiryPaymentItem(it inquiryPaymentItem) entities.InquiryPayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	var raw json.RawMessage
	if it.ProviderPayloadRaw != "" {
		raw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return entities.InquiryPayment{
		ID:                 it.ID,
		InquiryID:          it.InquiryID,
		Date:               date,
		Status:             entities.InquiryPaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: raw,
	}
}
