package dynamodb

import (
	"context"
	"fmt"
	"time"

	"focussync-backend/application/ports"
	"focussync-backend/domain/core/entities"
	pkgerrors "focussync-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ProfileRepository implements ports.ProfileRepository using DynamoDB
type ProfileRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProfileRepository creates a profile repository
func NewProfileRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProfileRepository {
	return &ProfileRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

type userProfileItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	Name       string `dynamodbav:"Name"`
	Email      string `dynamodbav:"Email,omitempty"`
	Avatar     string `dynamodbav:"Avatar,omitempty"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

func profilePartitionKey(name string) string {
	return fmt.Sprintf("PROFILE#%s", name)
}

// Save persists a profile, overwriting any previous profile for the name
func (r *ProfileRepository) Save(ctx context.Context, profile *entities.UserProfile) error {
	item := userProfileItem{
		PK:         profilePartitionKey(profile.Name()),
		SK:         metadataSK,
		EntityType: "USER_PROFILE",
		Name:       profile.Name(),
		Email:      profile.Email(),
		Avatar:     profile.Avatar(),
		CreatedAt:  profile.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  profile.UpdatedAt().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal profile", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save profile",
			zap.Error(err),
			zap.String("name", profile.Name()),
		)
		return pkgerrors.NewDatabaseError("put profile", err)
	}

	return nil
}

// GetByName fetches a profile by display name
func (r *ProfileRepository) GetByName(ctx context.Context, name string) (*entities.UserProfile, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": profilePartitionKey(name),
		"SK": metadataSK,
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("marshal profile key", err)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       key,
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get profile", err)
	}

	if len(out.Item) == 0 {
		return nil, pkgerrors.NewNotFoundError("profile")
	}

	var raw userProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &raw); err != nil {
		return nil, pkgerrors.NewDatabaseError("unmarshal profile", err)
	}

	createdAt, _ := time.Parse(time.RFC3339, raw.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, raw.UpdatedAt)

	return entities.ReconstructUserProfile(raw.Name, raw.Email, raw.Avatar, createdAt, updatedAt), nil
}
