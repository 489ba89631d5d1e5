package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReceivablesTableName = "receivables"

type receivableItem struct {
	ID            string `dynamodbav:"id"`
	AccountID     string `dynamodbav:"account_id"`
	ResidentID    string `dynamodbav:"resident_id"`
	UnitID        string `dynamodbav:"unit_id,omitempty"`
	Amount        string `dynamodbav:"amount"`
	DueDate       string `dynamodbav:"due_date"`
	Status        string `dynamodbav:"status"`
	PaymentDate   string `dynamodbav:"payment_date,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
}

// ReceivableDynamoRepository reads and settles receivables owned by the
// condominium CRUD layer.
//
// Table requirements:
//   - PK: id (string)
//
// SetPaid is a conditional update: it applies while the receivable is not
// pago yet, or re-applies for the same transaction id. Two racing writers
// (webhook and polling) therefore converge on the same final state, and a
// pago receivable can never be regressed through this repository.

type ReceivableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceivableRepository = (*ReceivableDynamoRepository)(nil)

func NewReceivableDynamoRepository(ddb *dynamodb.Client) *ReceivableDynamoRepository {
	return &ReceivableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIVABLES_TABLE", defaultReceivablesTableName),
	}
}

func (r *ReceivableDynamoRepository) GetByID(ctx context.Context, id string) (entities.Receivable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Receivable{}, err
	}
	if len(out.Item) == 0 {
		return entities.Receivable{}, nil
	}

	var it receivableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Receivable{}, err
	}
	return fromReceivableItem(it), nil
}

func (r *ReceivableDynamoRepository) SetPaid(ctx context.Context, id string, paymentDate time.Time, method entities.PaymentMethod, transactionID string) (entities.Receivable, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (#status <> :pago OR #transaction_id = :tid)"),
		UpdateExpression:    aws.String("SET #status = :pago, #payment_date = :payment_date, #payment_method = :payment_method, #transaction_id = :tid"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#payment_date":   "payment_date",
			"#payment_method": "payment_method",
			"#transaction_id": "transaction_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pago":           &types.AttributeValueMemberS{Value: string(entities.ReceivableStatusPago)},
			":payment_date":   &types.AttributeValueMemberS{Value: formatTime(paymentDate)},
			":payment_method": &types.AttributeValueMemberS{Value: string(method)},
			":tid":            &types.AttributeValueMemberS{Value: transactionID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already pago through another transaction. The settle converges:
			// return the stored state instead of failing the caller into a
			// retry loop that can never succeed.
			log.Printf("[receivable][repository] already paid by another transaction receivable_id=%s tx_id=%s", id, transactionID)
			return r.GetByID(ctx, id)
		}
		return entities.Receivable{}, err
	}

	var it receivableItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Receivable{}, err
	}
	return fromReceivableItem(it), nil
}

func fromReceivableItem(it receivableItem) entities.Receivable {
	return entities.Receivable{
		ID:            it.ID,
		AccountID:     it.AccountID,
		ResidentID:    it.ResidentID,
		UnitID:        it.UnitID,
		Amount:        parseDecimal(it.Amount),
		DueDate:       parseTime(it.DueDate),
		Status:        entities.ReceivableStatus(it.Status),
		PaymentDate:   parseTimePtr(it.PaymentDate),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		TransactionID: it.TransactionID,
	}
}
