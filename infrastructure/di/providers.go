package di

import (
	"context"

	"focussync-backend/application/ports"
	"focussync-backend/application/services"
	"focussync-backend/infrastructure/config"
	"focussync-backend/infrastructure/messaging/eventbridge"
	dynamodbstore "focussync-backend/infrastructure/persistence/dynamodb"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideStore creates the store handle used for connectivity probes
func ProvideStore(client *awsdynamodb.Client, cfg *config.Config) ports.StoreHealth {
	return dynamodbstore.NewStore(client, cfg.TableName)
}

// ProvideQueueRepository creates a queue repository
func ProvideQueueRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.QueueRepository {
	return dynamodbstore.NewQueueRepository(client, cfg.TableName, logger)
}

// ProvideSessionRepository creates a session repository
func ProvideSessionRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.SessionRepository {
	return dynamodbstore.NewSessionRepository(client, cfg.TableName, logger)
}

// ProvideProfileRepository creates a profile repository
func ProvideProfileRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProfileRepository {
	return dynamodbstore.NewProfileRepository(client, cfg.TableName, logger)
}

// ProvideEventBus creates an event bus. Event publishing is optional: with no
// bus name configured the services simply skip publishing.
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	if cfg.EventBusName == "" {
		return nil
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMatchmakingService creates the matchmaking service
func ProvideMatchmakingService(
	queue ports.QueueRepository,
	sessions ports.SessionRepository,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *services.MatchmakingService {
	return services.NewMatchmakingService(queue, sessions, eventBus, logger)
}

// ProvideSessionService creates the session lifecycle service
func ProvideSessionService(
	sessions ports.SessionRepository,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *services.SessionService {
	return services.NewSessionService(sessions, eventBus, logger)
}

// ProvideProfileService creates the profile service
func ProvideProfileService(profiles ports.ProfileRepository, logger *zap.Logger) *services.ProfileService {
	return services.NewProfileService(profiles, logger)
}
