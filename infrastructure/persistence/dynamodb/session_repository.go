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

// SessionRepository implements ports.SessionRepository using DynamoDB
type SessionRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewSessionRepository creates a session repository
func NewSessionRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.SessionRepository {
	return &SessionRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// focusSessionItem represents the DynamoDB item structure for a session
type focusSessionItem struct {
	PK               string   `dynamodbav:"PK"`
	SK               string   `dynamodbav:"SK"`
	EntityType       string   `dynamodbav:"EntityType"`
	SessionID        string   `dynamodbav:"SessionID"`
	ParticipantNames []string `dynamodbav:"ParticipantNames"`
	StartedAt        string   `dynamodbav:"StartedAt"`
	DurationMinutes  int      `dynamodbav:"DurationMinutes"`
	Status           string   `dynamodbav:"Status"`
	FocusTopic       string   `dynamodbav:"FocusTopic,omitempty"`
	CreatedAt        string   `dynamodbav:"CreatedAt"`
	UpdatedAt        string   `dynamodbav:"UpdatedAt"`
}

func sessionPartitionKey(id string) string {
	return fmt.Sprintf("SESSION#%s", id)
}

// Save persists a session
func (r *SessionRepository) Save(ctx context.Context, session *entities.FocusSession) error {
	item := focusSessionItem{
		PK:               sessionPartitionKey(session.ID()),
		SK:               metadataSK,
		EntityType:       "FOCUS_SESSION",
		SessionID:        session.ID(),
		ParticipantNames: session.ParticipantNames(),
		StartedAt:        session.StartedAt().Format(time.RFC3339),
		DurationMinutes:  session.DurationMinutes(),
		Status:           string(session.Status()),
		FocusTopic:       session.FocusTopic(),
		CreatedAt:        session.CreatedAt().Format(time.RFC3339),
		UpdatedAt:        session.UpdatedAt().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal session", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save session",
			zap.Error(err),
			zap.String("sessionID", session.ID()),
		)
		return pkgerrors.NewDatabaseError("put session", err)
	}

	return nil
}

// GetByID fetches a session by id
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*entities.FocusSession, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": sessionPartitionKey(id),
		"SK": metadataSK,
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("marshal session key", err)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       key,
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get session", err)
	}

	if len(out.Item) == 0 {
		return nil, pkgerrors.NewNotFoundError("session")
	}

	var raw focusSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &raw); err != nil {
		return nil, pkgerrors.NewDatabaseError("unmarshal session", err)
	}

	return r.reconstruct(raw)
}

// UpdateStatus sets the session status and updated_at. The update requires
// the item to exist: without the condition DynamoDB would upsert a phantom
// session for an unknown id.
func (r *SessionRepository) UpdateStatus(ctx context.Context, id string, status entities.SessionStatus, at time.Time) error {
	update := expression.Set(expression.Name("Status"), expression.Value(string(status))).
		Set(expression.Name("UpdatedAt"), expression.Value(at.UTC().Format(time.RFC3339)))
	condition := expression.Name("PK").AttributeExists()

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(condition).
		Build()
	if err != nil {
		return pkgerrors.NewDatabaseError("build status update", err)
	}

	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": sessionPartitionKey(id),
		"SK": metadataSK,
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal session key", err)
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
			return pkgerrors.NewNotFoundError("session")
		}
		r.logger.Error("Failed to update session status",
			zap.Error(err),
			zap.String("sessionID", id),
			zap.String("status", string(status)),
		)
		return pkgerrors.NewDatabaseError("update session status", err)
	}

	return nil
}

// reconstruct rebuilds a session entity from an item
func (r *SessionRepository) reconstruct(raw focusSessionItem) (*entities.FocusSession, error) {
	startedAt, err := time.Parse(time.RFC3339, raw.StartedAt)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("parse session started_at", err)
	}

	createdAt, _ := time.Parse(time.RFC3339, raw.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, raw.UpdatedAt)

	return entities.ReconstructFocusSession(
		raw.SessionID,
		raw.ParticipantNames,
		startedAt,
		raw.DurationMinutes,
		entities.SessionStatus(raw.Status),
		raw.FocusTopic,
		createdAt,
		updatedAt,
	), nil
}
