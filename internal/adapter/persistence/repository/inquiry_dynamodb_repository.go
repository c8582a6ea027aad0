package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInquiriesTableName      = "inquiries"
	defaultInvoiceNumbersTableName = "invoice_numbers"
	inquiriesClientIDIndex         = "client_id-index"
	inquiriesStatusIndex           = "status-index"
)

type statusHistoryItem struct {
	Status    string `dynamodbav:"status"`
	ChangedBy string `dynamodbav:"changed_by"`
	ChangedAt string `dynamodbav:"changed_at"`
	Note      string `dynamodbav:"note,omitempty"`
}

type inquiryItem struct {
	ID            string              `dynamodbav:"id"`
	InvoiceNumber string              `dynamodbav:"invoice_number"`
	ClientID      string              `dynamodbav:"client_id"`
	ClientName    string              `dynamodbav:"client_name,omitempty"`
	ClientEmail   string              `dynamodbav:"client_email,omitempty"`
	ServiceID     string              `dynamodbav:"service_id"`
	ServiceName   string              `dynamodbav:"service_name"`
	PackageName   string              `dynamodbav:"package_name,omitempty"`
	PackagePrice  string              `dynamodbav:"package_price,omitempty"`
	TotalAmount   string              `dynamodbav:"total_amount"`
	Message       string              `dynamodbav:"message"`
	Notes         string              `dynamodbav:"notes,omitempty"`
	AdminNotes    string              `dynamodbav:"admin_notes,omitempty"`
	Status        string              `dynamodbav:"status"`
	PaymentStatus string              `dynamodbav:"payment_status"`
	StatusHistory []statusHistoryItem `dynamodbav:"status_history"`
	CreatedAt     string              `dynamodbav:"created_at"`
	UpdatedAt     string              `dynamodbav:"updated_at"`
	Version       int64               `dynamodbav:"version"`
}

// InquiryDynamoRepository persists Inquiry entities in DynamoDB.
//
// Table requirements:
//   - inquiries: PK id (string); GSI client_id-index (PK client_id, SK
//     created_at); GSI status-index (PK status)
//   - invoice_numbers: PK invoice_number (string); one claim item per issued
//     number, written transactionally with the inquiry. Claims are never
//     deleted, so a number is never reissued even after an inquiry is removed.

type InquiryDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	claimsTable string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb *dynamodb.Client) *InquiryDynamoRepository {
	return &InquiryDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("INQUIRIES_TABLE", defaultInquiriesTableName),
		claimsTable: getenvDefault("INVOICE_NUMBERS_TABLE", defaultInvoiceNumbersTableName),
	}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	av, err := attributevalue.MarshalMap(toInquiryItem(i))
	if err != nil {
		return entities.Inquiry{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.claimsTable),
					Item: map[string]types.AttributeValue{
						"invoice_number": &types.AttributeValueMemberS{Value: i.InvoiceNumber},
						"inquiry_id":     &types.AttributeValueMemberS{Value: i.ID},
						"claimed_at":     &types.AttributeValueMemberS{Value: i.CreatedAt.UTC().Format(time.RFC3339Nano)},
					},
					ConditionExpression: aws.String("attribute_not_exists(#n)"),
					ExpressionAttributeNames: map[string]string{
						"#n": "invoice_number",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Inquiry{}, interfaces.ErrDuplicateInvoiceNumber
				}
			}
		}
		return entities.Inquiry{}, err
	}
	return i, nil
}

func (r *InquiryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

func (r *InquiryDynamoRepository) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (entities.Inquiry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.claimsTable),
		Key: map[string]types.AttributeValue{
			"invoice_number": &types.AttributeValueMemberS{Value: invoiceNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inquiry{}, nil
	}

	var claim struct {
		InquiryID string `dynamodbav:"inquiry_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &claim); err != nil {
		return entities.Inquiry{}, err
	}
	if claim.InquiryID == "" {
		return entities.Inquiry{}, nil
	}
	return r.GetByID(ctx, claim.InquiryID)
}

func (r *InquiryDynamoRepository) ListByClientID(ctx context.Context, clientID string, limit int32) ([]entities.Inquiry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(inquiriesClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
		// created_at is the index sort key; newest first for the dashboard.
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInquiries(out.Items)
}

func (r *InquiryDynamoRepository) ListByStatus(ctx context.Context, status entities.InquiryStatus, limit int32) ([]entities.Inquiry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(inquiriesStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		Limit: aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInquiries(out.Items)
}

func (r *InquiryDynamoRepository) Update(ctx context.Context, i entities.Inquiry, expectedVersion int64) (entities.Inquiry, error) {
	history, err := attributevalue.Marshal(toStatusHistoryItems(i.StatusHistory))
	if err != nil {
		return entities.Inquiry{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: i.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression: aws.String("SET #status = :status, #payment_status = :payment_status, " +
			"#total_amount = :total_amount, #admin_notes = :admin_notes, #notes = :notes, " +
			"#status_history = :status_history, #updated_at = :updated_at, #version = :next"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#payment_status": "payment_status",
			"#total_amount":   "total_amount",
			"#admin_notes":    "admin_notes",
			"#notes":          "notes",
			"#status_history": "status_history",
			"#updated_at":     "updated_at",
			"#version":        "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(i.Status)},
			":payment_status": &types.AttributeValueMemberS{Value: string(i.PaymentStatus)},
			":total_amount":   &types.AttributeValueMemberS{Value: i.TotalAmount},
			":admin_notes":    &types.AttributeValueMemberS{Value: i.AdminNotes},
			":notes":          &types.AttributeValueMemberS{Value: i.Notes},
			":status_history": history,
			":updated_at":     &types.AttributeValueMemberS{Value: i.UpdatedAt.UTC().Format(time.RFC3339Nano)},
			":expected":       &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":next":           &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Inquiry{}, interfaces.ErrVersionConflict
		}
		return entities.Inquiry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

func (r *InquiryDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func unmarshalInquiries(raw []map[string]types.AttributeValue) ([]entities.Inquiry, error) {
	items := make([]entities.Inquiry, 0, len(raw))
	for _, m := range raw {
		var it inquiryItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInquiryItem(it))
	}
	return items, nil
}

func toStatusHistoryItems(entries []entities.StatusHistoryEntry) []statusHistoryItem {
	items := make([]statusHistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, statusHistoryItem{
			Status:    string(e.Status),
			ChangedBy: e.ChangedBy,
			ChangedAt: e.ChangedAt.UTC().Format(time.RFC3339Nano),
			Note:      e.Note,
		})
	}
	return items
}

func fromStatusHistoryItems(items []statusHistoryItem) []entities.StatusHistoryEntry {
	entries := make([]entities.StatusHistoryEntry, 0, len(items))
	for _, it := range items {
		changedAt, _ := time.Parse(time.RFC3339Nano, it.ChangedAt)
		entries = append(entries, entities.StatusHistoryEntry{
			Status:    entities.InquiryStatus(it.Status),
			ChangedBy: it.ChangedBy,
			ChangedAt: changedAt,
			Note:      it.Note,
		})
	}
	return entries
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	return inquiryItem{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		ClientID:      i.ClientID,
		ClientName:    i.ClientName,
		ClientEmail:   i.ClientEmail,
		ServiceID:     i.ServiceID,
		ServiceName:   i.ServiceName,
		PackageName:   i.PackageName,
		PackagePrice:  i.PackagePrice,
		TotalAmount:   i.TotalAmount,
		Message:       i.Message,
		Notes:         i.Notes,
		AdminNotes:    i.AdminNotes,
		Status:        string(i.Status),
		PaymentStatus: string(i.PaymentStatus),
		StatusHistory: toStatusHistoryItems(i.StatusHistory),
		CreatedAt:     i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     i.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:       i.Version,
	}
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Inquiry{
		ID:            it.ID,
		InvoiceNumber: it.InvoiceNumber,
		ClientID:      it.ClientID,
		ClientName:    it.ClientName,
		ClientEmail:   it.ClientEmail,
		ServiceID:     it.ServiceID,
		ServiceName:   it.ServiceName,
		PackageName:   it.PackageName,
		PackagePrice:  it.PackagePrice,
		TotalAmount:   it.TotalAmount,
		Message:       it.Message,
		Notes:         it.Notes,
		AdminNotes:    it.AdminNotes,
		Status:        entities.InquiryStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		StatusHistory: fromStatusHistoryItems(it.StatusHistory),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		Version:       it.Version,
	}
}
