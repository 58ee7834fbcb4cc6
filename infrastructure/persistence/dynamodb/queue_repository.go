package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focussync-backend/application/ports"
	"focussync-backend/domain/core/entities"
	pkgerrors "focussync-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	queuePartitionKey = "QUEUE"
	entrySortPrefix   = "ENTRY#"

	// Fixed-width timestamp so the sort key orders entries chronologically
	sortKeyTimeLayout = "2006-01-02T15:04:05.000000000Z"
)

// queueClient is the subset of the DynamoDB API the repository uses
type queueClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// QueueRepository implements ports.QueueRepository using DynamoDB.
// All entries share one partition; the sort key embeds the join time so a
// Query returns the oldest waiting entry first.
type QueueRepository struct {
	client    queueClient
	tableName string
	logger    *zap.Logger
}

// NewQueueRepository creates a queue repository
func NewQueueRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.QueueRepository {
	return &QueueRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// queueEntryItem represents the DynamoDB item structure for a queue entry
type queueEntryItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	EntryID    string `dynamodbav:"EntryID"`
	UserName   string `dynamodbav:"UserName"`
	FocusTopic string `dynamodbav:"FocusTopic,omitempty"`
	Timezone   string `dynamodbav:"Timezone,omitempty"`
	Status     string `dynamodbav:"Status"`
	SessionID  string `dynamodbav:"SessionID,omitempty"`
	JoinedAt   string `dynamodbav:"JoinedAt"`
}

func entrySortKey(entry *entities.QueueEntry) string {
	return fmt.Sprintf("%s%s#%s", entrySortPrefix, entry.JoinedAt().UTC().Format(sortKeyTimeLayout), entry.ID())
}

// Save persists a new waiting entry
func (r *QueueRepository) Save(ctx context.Context, entry *entities.QueueEntry) error {
	item := queueEntryItem{
		PK:         queuePartitionKey,
		SK:         entrySortKey(entry),
		EntityType: "QUEUE_ENTRY",
		EntryID:    entry.ID(),
		UserName:   entry.UserName(),
		FocusTopic: entry.FocusTopic(),
		Timezone:   entry.Timezone(),
		Status:     string(entry.Status()),
		SessionID:  entry.SessionID(),
		JoinedAt:   entry.JoinedAt().UTC().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal queue entry", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save queue entry",
			zap.Error(err),
			zap.String("entryID", entry.ID()),
		)
		return pkgerrors.NewDatabaseError("put queue entry", err)
	}

	return nil
}

// FindWaiting returns waiting entries for users other than excludeUserName,
// oldest first
func (r *QueueRepository) FindWaiting(ctx context.Context, excludeUserName string, limit int) ([]*entities.QueueEntry, error) {
	keyExpr := expression.Key("PK").Equal(expression.Value(queuePartitionKey)).
		And(expression.Key("SK").BeginsWith(entrySortPrefix))
	filterExpr := expression.Name("UserName").NotEqual(expression.Value(excludeUserName)).
		And(expression.Name("Status").Equal(expression.Value(string(entities.EntryStatusWaiting))))

	expr, err := expression.NewBuilder().
		WithKeyCondition(keyExpr).
		WithFilter(filterExpr).
		Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build queue query", err)
	}

	// The page limit counts items evaluated before the filter runs, so a run
	// of matched entries at the head of the partition yields empty pages.
	// Follow LastEvaluatedKey until enough waiting entries turn up or the
	// partition is exhausted; stopping at the first page would starve the
	// queue once consumed entries outnumber the page size.
	entries := make([]*entities.QueueEntry, 0, limit)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			Limit:                     aws.Int32(int32(limit * 10)),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("query waiting entries", err)
		}

		for _, item := range out.Items {
			var raw queueEntryItem
			if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
				return nil, pkgerrors.NewDatabaseError("unmarshal queue entry", err)
			}

			joinedAt, err := time.Parse(time.RFC3339Nano, raw.JoinedAt)
			if err != nil {
				r.logger.Warn("Skipping queue entry with malformed timestamp",
					zap.String("entryID", raw.EntryID),
					zap.String("joinedAt", raw.JoinedAt),
				)
				continue
			}

			entries = append(entries, entities.ReconstructQueueEntry(
				raw.EntryID,
				raw.UserName,
				raw.FocusTopic,
				raw.Timezone,
				entities.EntryStatus(raw.Status),
				raw.SessionID,
				joinedAt,
			))

			if len(entries) >= limit {
				return entries, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return entries, nil
}

// Claim atomically flips a waiting entry to matched. The conditional update
// guarantees at most one match per entry: if a concurrent join already claimed
// it, the condition fails and a conflict error is returned.
func (r *QueueRepository) Claim(ctx context.Context, entry *entities.QueueEntry, sessionID string) error {
	update := expression.Set(expression.Name("Status"), expression.Value(string(entities.EntryStatusMatched))).
		Set(expression.Name("SessionID"), expression.Value(sessionID)).
		Set(expression.Name("UpdatedAt"), expression.Value(time.Now().UTC().Format(time.RFC3339)))
	condition := expression.Name("Status").Equal(expression.Value(string(entities.EntryStatusWaiting)))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(condition).
		Build()
	if err != nil {
		return pkgerrors.NewDatabaseError("build claim expression", err)
	}

	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": queuePartitionKey,
		"SK": entrySortKey(entry),
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal queue entry key", err)
	}

	if _, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}); err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return pkgerrors.NewConflictError("queue entry already matched")
		}
		return pkgerrors.NewDatabaseError("claim queue entry", err)
	}

	entry.MarkMatched(sessionID)

	return nil
}
