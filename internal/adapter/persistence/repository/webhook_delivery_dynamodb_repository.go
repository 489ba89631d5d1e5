package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookDeliveriesTableName = "webhook_deliveries"
	webhookDeliveriesStatusIndex      = "status-index"
)

type webhookDeliveryItem struct {
	ID            string            `dynamodbav:"id"`
	Provider      string            `dynamodbav:"provider"`
	Payload       string            `dynamodbav:"payload"`
	Headers       map[string]string `dynamodbav:"headers,omitempty"`
	Attempts      int               `dynamodbav:"attempts"`
	MaxAttempts   int               `dynamodbav:"max_attempts"`
	Status        string            `dynamodbav:"status"`
	NextAttemptAt string            `dynamodbav:"next_attempt_at,omitempty"`
	AttemptLog    []string          `dynamodbav:"attempt_log,omitempty"`
	CreatedAt     string            `dynamodbav:"created_at"`
}

// WebhookDeliveryDynamoRepository persists the retry table.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status, SK: next_attempt_at)
//
// next_attempt_at is always present while a record is pendente, so the due
// query is a plain key-range scan on the sparse index.

type WebhookDeliveryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookDeliveryRepository = (*WebhookDeliveryDynamoRepository)(nil)

func NewWebhookDeliveryDynamoRepository(ddb *dynamodb.Client) *WebhookDeliveryDynamoRepository {
	return &WebhookDeliveryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_DELIVERIES_TABLE", defaultWebhookDeliveriesTableName),
	}
}

func (r *WebhookDeliveryDynamoRepository) Create(ctx context.Context, d entities.WebhookDelivery) (entities.WebhookDelivery, error) {
	it, err := toWebhookDeliveryItem(d)
	if err != nil {
		return entities.WebhookDelivery{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WebhookDelivery{}, err
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
		return entities.WebhookDelivery{}, err
	}
	return d, nil
}

func (r *WebhookDeliveryDynamoRepository) GetByID(ctx context.Context, id string) (entities.WebhookDelivery, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WebhookDelivery{}, err
	}
	if len(out.Item) == 0 {
		return entities.WebhookDelivery{}, nil
	}

	var it webhookDeliveryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WebhookDelivery{}, err
	}
	return fromWebhookDeliveryItem(it)
}

func (r *WebhookDeliveryDynamoRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]entities.WebhookDelivery, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(webhookDeliveriesStatusIndex),
		KeyConditionExpression: aws.String("#status = :pendente AND next_attempt_at <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendente": &types.AttributeValueMemberS{Value: string(entities.DeliveryStatusPendente)},
			":now":      &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	}
	// Limit caps one scheduler tick. A short page just means the next tick
	// picks up the remainder, so no LastEvaluatedKey loop here.
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalDeliveries(out.Items)
}

func (r *WebhookDeliveryDynamoRepository) ListByStatus(ctx context.Context, status entities.DeliveryStatus) ([]entities.WebhookDelivery, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(webhookDeliveriesStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalDeliveries(raws)
}

// MarkProcessing claims the record for one worker. The conditional transition
// is what keeps two scheduler ticks from double-processing the same delivery.
func (r *WebhookDeliveryDynamoRepository) MarkProcessing(ctx context.Context, id string) (entities.WebhookDelivery, error) {
	return r.transition(ctx, id, entities.DeliveryStatusPendente, entities.DeliveryStatusProcessando)
}

func (r *WebhookDeliveryDynamoRepository) Cancel(ctx context.Context, id string) (entities.WebhookDelivery, error) {
	return r.transition(ctx, id, entities.DeliveryStatusPendente, entities.DeliveryStatusCancelado)
}

func (r *WebhookDeliveryDynamoRepository) transition(ctx context.Context, id string, from, to entities.DeliveryStatus) (entities.WebhookDelivery, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.WebhookDelivery{}, getErr
			}
			if existing.ID == "" {
				return entities.WebhookDelivery{}, nil
			}
			return entities.WebhookDelivery{}, entities.ErrDeliveryNotPending
		}
		return entities.WebhookDelivery{}, err
	}

	var it webhookDeliveryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WebhookDelivery{}, err
	}
	return fromWebhookDeliveryItem(it)
}

// Save overwrites the record after an attempt. The caller owns the claim at
// this point, so a plain put is safe.
func (r *WebhookDeliveryDynamoRepository) Save(ctx context.Context, d entities.WebhookDelivery) (entities.WebhookDelivery, error) {
	it, err := toWebhookDeliveryItem(d)
	if err != nil {
		return entities.WebhookDelivery{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WebhookDelivery{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.WebhookDelivery{}, err
	}
	return d, nil
}

func unmarshalDeliveries(raw []map[string]types.AttributeValue) ([]entities.WebhookDelivery, error) {
	items := make([]entities.WebhookDelivery, 0, len(raw))
	for _, av := range raw {
		var it webhookDeliveryItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		d, err := fromWebhookDeliveryItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}

func toWebhookDeliveryItem(d entities.WebhookDelivery) (webhookDeliveryItem, error) {
	attempts := make([]string, 0, len(d.AttemptLog))
	for _, a := range d.AttemptLog {
		encoded, err := json.Marshal(a)
		if err != nil {
			return webhookDeliveryItem{}, err
		}
		attempts = append(attempts, string(encoded))
	}

	next := formatTimePtr(d.NextAttemptAt)
	if next == "" && d.Status == entities.DeliveryStatusPendente {
		// A pendente record must always be visible to the due query.
		next = formatTime(d.CreatedAt)
	}

	return webhookDeliveryItem{
		ID:            d.ID,
		Provider:      d.Provider,
		Payload:       string(d.Payload),
		Headers:       d.Headers,
		Attempts:      d.Attempts,
		MaxAttempts:   d.MaxAttempts,
		Status:        string(d.Status),
		NextAttemptAt: next,
		AttemptLog:    attempts,
		CreatedAt:     formatTime(d.CreatedAt),
	}, nil
}

func fromWebhookDeliveryItem(it webhookDeliveryItem) (entities.WebhookDelivery, error) {
	attempts := make([]entities.DeliveryAttempt, 0, len(it.AttemptLog))
	for _, raw := range it.AttemptLog {
		var a entities.DeliveryAttempt
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return entities.WebhookDelivery{}, err
		}
		attempts = append(attempts, a)
	}
	return entities.WebhookDelivery{
		ID:            it.ID,
		Provider:      it.Provider,
		Payload:       json.RawMessage(it.Payload),
		Headers:       it.Headers,
		Attempts:      it.Attempts,
		MaxAttempts:   it.MaxAttempts,
		Status:        entities.DeliveryStatus(it.Status),
		NextAttemptAt: parseTimePtr(it.NextAttemptAt),
		AttemptLog:    attempts,
		CreatedAt:     parseTime(it.CreatedAt),
	}, nil
}
