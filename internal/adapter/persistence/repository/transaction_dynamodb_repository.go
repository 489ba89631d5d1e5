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
	defaultTransactionsTableName = "transactions"
	transactionsGatewayIDIndex   = "gateway_payment_id-index"
	transactionsAccountIDIndex   = "account_id-index"
	transactionsStatusIndex      = "status-index"
)

type transactionItem struct {
	ID               string   `dynamodbav:"id"`
	GatewayPaymentID string   `dynamodbav:"gateway_payment_id"`
	Method           string   `dynamodbav:"method"`
	Amount           string   `dynamodbav:"amount"`
	Status           string   `dynamodbav:"status"`
	ReceivableID     string   `dynamodbav:"receivable_id,omitempty"`
	AccountID        string   `dynamodbav:"account_id"`
	IdentifierRef    string   `dynamodbav:"identifier_ref,omitempty"`
	EventLog         []string `dynamodbav:"event_log,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
	ConfirmedAt      string   `dynamodbav:"confirmed_at,omitempty"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: gateway_payment_id-index (PK: gateway_payment_id)
//   - GSI: account_id-index (PK: account_id, SK: created_at)
//   - GSI: status-index (PK: status, SK: created_at)
//
// Event-log entries are stored as a DynamoDB list of JSON strings so that
// list_append can extend it atomically together with the status write.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it, err := toTransactionItem(t)
	if err != nil {
		return entities.Transaction{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it)
}

func (r *TransactionDynamoRepository) GetByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsGatewayIDIndex),
		KeyConditionExpression: aws.String("gateway_payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: gatewayPaymentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it)
}

// AppendEventAndSetStatus appends the gateway event and moves the status in a
// single conditional update keyed on the expected prior status. The
// append-then-commit ordering the audit trail requires is therefore atomic.
func (r *TransactionDynamoRepository) AppendEventAndSetStatus(ctx context.Context, id string, event entities.GatewayEvent, expectedStatus, newStatus entities.PaymentStatus, confirmedAt *time.Time) (entities.Transaction, error) {
	encoded, err := json.Marshal(event)
	if err != nil {
		return entities.Transaction{}, err
	}

	updateExpr := "SET #status = :new, #event_log = list_append(if_not_exists(#event_log, :empty), :ev)"
	values := map[string]types.AttributeValue{
		":new":      &types.AttributeValueMemberS{Value: string(newStatus)},
		":expected": &types.AttributeValueMemberS{Value: string(expectedStatus)},
		":empty":    &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":ev": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: string(encoded)},
		}},
	}
	names := map[string]string{
		"#status":    "status",
		"#event_log": "event_log",
	}
	if confirmedAt != nil {
		updateExpr += ", #confirmed_at = :confirmed_at"
		values[":confirmed_at"] = &types.AttributeValueMemberS{Value: formatTime(*confirmedAt)}
		names["#confirmed_at"] = "confirmed_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Transaction{}, entities.ErrStatusConflict
		}
		return entities.Transaction{}, err
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it)
}

func (r *TransactionDynamoRepository) ListPendingByMethods(ctx context.Context, methods []entities.PaymentMethod, createdAfter time.Time) ([]entities.Transaction, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsStatusIndex),
		KeyConditionExpression: aws.String("#status = :pendente AND created_at > :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendente": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)},
			":cutoff":   &types.AttributeValueMemberS{Value: formatTime(createdAfter)},
		},
	})
	if err != nil {
		return nil, err
	}

	wanted := map[entities.PaymentMethod]bool{}
	for _, m := range methods {
		wanted[m] = true
	}

	items := make([]entities.Transaction, 0, len(raws))
	for _, raw := range raws {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		t, err := fromTransactionItem(it)
		if err != nil {
			return nil, err
		}
		if len(wanted) > 0 && !wanted[t.Method] {
			continue
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *TransactionDynamoRepository) ListByAccountCreatedAfter(ctx context.Context, accountID string, createdAfter time.Time) ([]entities.Transaction, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsAccountIDIndex),
		KeyConditionExpression: aws.String("account_id = :aid AND created_at > :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid":    &types.AttributeValueMemberS{Value: accountID},
			":cutoff": &types.AttributeValueMemberS{Value: formatTime(createdAfter)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(raws))
	for _, raw := range raws {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		t, err := fromTransactionItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, nil
}

func toTransactionItem(t entities.Transaction) (transactionItem, error) {
	events := make([]string, 0, len(t.EventLog))
	for _, ev := range t.EventLog {
		encoded, err := json.Marshal(ev)
		if err != nil {
			return transactionItem{}, err
		}
		events = append(events, string(encoded))
	}
	return transactionItem{
		ID:               t.ID,
		GatewayPaymentID: t.GatewayPaymentID,
		Method:           string(t.Method),
		Amount:           t.Amount.String(),
		Status:           string(t.Status),
		ReceivableID:     t.ReceivableID,
		AccountID:        t.AccountID,
		IdentifierRef:    t.IdentifierRef,
		EventLog:         events,
		CreatedAt:        formatTime(t.CreatedAt),
		ConfirmedAt:      formatTimePtr(t.ConfirmedAt),
	}, nil
}

func fromTransactionItem(it transactionItem) (entities.Transaction, error) {
	events := make([]entities.GatewayEvent, 0, len(it.EventLog))
	for _, raw := range it.EventLog {
		var ev entities.GatewayEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			return entities.Transaction{}, err
		}
		events = append(events, ev)
	}
	return entities.Transaction{
		ID:               it.ID,
		GatewayPaymentID: it.GatewayPaymentID,
		Method:           entities.PaymentMethod(it.Method),
		Amount:           parseDecimal(it.Amount),
		Status:           entities.PaymentStatus(it.Status),
		ReceivableID:     it.ReceivableID,
		AccountID:        it.AccountID,
		IdentifierRef:    it.IdentifierRef,
		EventLog:         events,
		CreatedAt:        parseTime(it.CreatedAt),
		ConfirmedAt:      parseTimePtr(it.ConfirmedAt),
	}, nil
}
