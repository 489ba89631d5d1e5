package repository

import (
	"context"
	"errors"
	"strconv"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStatementEntriesTableName = "statement_entries"
	statementEntriesIDIndex          = "id-index"
)

type statementEntryItem struct {
	AccountID     string `dynamodbav:"account_id"`
	ExternalDocID string `dynamodbav:"external_doc_id"`
	ID            string `dynamodbav:"id"`
	Date          string `dynamodbav:"date"`
	Amount        string `dynamodbav:"amount"`
	Direction     string `dynamodbav:"direction"`
	Description   string `dynamodbav:"description"`
	Category      string `dynamodbav:"category"`
	ReconStatus   string `dynamodbav:"recon_status"`
	Confidence    int    `dynamodbav:"confidence"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	ImportedAt    string `dynamodbav:"imported_at"`
}

// StatementEntryDynamoRepository persists StatementEntry records.
//
// Table requirements:
//   - PK: account_id (string), SK: external_doc_id (string)
//   - GSI: id-index (PK: id)
//
// The composite primary key is the dedup invariant: a conditional put on it
// makes re-imports of the same file no-ops.

type StatementEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatementEntryRepository = (*StatementEntryDynamoRepository)(nil)

func NewStatementEntryDynamoRepository(ddb *dynamodb.Client) *StatementEntryDynamoRepository {
	return &StatementEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATEMENT_ENTRIES_TABLE", defaultStatementEntriesTableName),
	}
}

func (r *StatementEntryDynamoRepository) Create(ctx context.Context, e entities.StatementEntry) (entities.StatementEntry, error) {
	av, err := attributevalue.MarshalMap(toStatementEntryItem(e))
	if err != nil {
		return entities.StatementEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#account_id)"),
		ExpressionAttributeNames: map[string]string{
			"#account_id": "account_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StatementEntry{}, entities.ErrDuplicateStatementEntry
		}
		return entities.StatementEntry{}, err
	}
	return e, nil
}

func (r *StatementEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.StatementEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(statementEntriesIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.StatementEntry{}, err
	}
	if len(out.Items) == 0 {
		return entities.StatementEntry{}, nil
	}

	var it statementEntryItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.StatementEntry{}, err
	}
	return fromStatementEntryItem(it), nil
}

func (r *StatementEntryDynamoRepository) ListByAccount(ctx context.Context, accountID string, reconStatus entities.ReconciliationStatus) ([]entities.StatementEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("account_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: accountID},
		},
	}
	if reconStatus != "" {
		in.FilterExpression = aws.String("recon_status = :rs")
		in.ExpressionAttributeValues[":rs"] = &types.AttributeValueMemberS{Value: string(reconStatus)}
	}

	raws, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.StatementEntry, 0, len(raws))
	for _, raw := range raws {
		var it statementEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStatementEntryItem(it))
	}
	return items, nil
}

func (r *StatementEntryDynamoRepository) SetReconciliation(ctx context.Context, accountID, externalDocID string, status entities.ReconciliationStatus, transactionID string, confidence int) (entities.StatementEntry, error) {
	updateExpr := "SET #recon_status = :rs, #confidence = :confidence"
	values := map[string]types.AttributeValue{
		":rs":         &types.AttributeValueMemberS{Value: string(status)},
		":confidence": &types.AttributeValueMemberN{Value: strconv.Itoa(confidence)},
	}
	names := map[string]string{
		"#recon_status": "recon_status",
		"#confidence":   "confidence",
	}
	if transactionID != "" {
		updateExpr += ", #transaction_id = :tid"
		values[":tid"] = &types.AttributeValueMemberS{Value: transactionID}
		names["#transaction_id"] = "transaction_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"account_id":      &types.AttributeValueMemberS{Value: accountID},
			"external_doc_id": &types.AttributeValueMemberS{Value: externalDocID},
		},
		ConditionExpression:       aws.String("attribute_exists(#account_id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#account_id": "account_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// The entry was removed between scoring and linking.
			return entities.StatementEntry{}, entities.ErrStatementEntryNotFound
		}
		return entities.StatementEntry{}, err
	}

	var it statementEntryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.StatementEntry{}, err
	}
	return fromStatementEntryItem(it), nil
}

func toStatementEntryItem(e entities.StatementEntry) statementEntryItem {
	return statementEntryItem{
		AccountID:     e.AccountID,
		ExternalDocID: e.ExternalDocID,
		ID:            e.ID,
		Date:          formatTime(e.Date),
		Amount:        e.Amount.String(),
		Direction:     string(e.Direction),
		Description:   e.Description,
		Category:      string(e.Category),
		ReconStatus:   string(e.ReconStatus),
		Confidence:    e.Confidence,
		TransactionID: e.TransactionID,
		ImportedAt:    formatTime(e.ImportedAt),
	}
}

func fromStatementEntryItem(it statementEntryItem) entities.StatementEntry {
	return entities.StatementEntry{
		ID:            it.ID,
		AccountID:     it.AccountID,
		ExternalDocID: it.ExternalDocID,
		Date:          parseTime(it.Date),
		Amount:        parseDecimal(it.Amount),
		Direction:     entities.EntryDirection(it.Direction),
		Description:   it.Description,
		Category:      entities.EntryCategory(it.Category),
		ReconStatus:   entities.ReconciliationStatus(it.ReconStatus),
		Confidence:    it.Confidence,
		TransactionID: it.TransactionID,
		ImportedAt:    parseTime(it.ImportedAt),
	}
}
