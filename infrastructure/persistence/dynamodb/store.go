package dynamodb

import (
	"context"

	pkgerrors "focussync-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// metadataSK is the sort key for single-item entities (sessions, profiles)
const metadataSK = "METADATA"

// Store wraps the shared DynamoDB client and table configuration and exposes
// connectivity probes for the diagnostics surface
type Store struct {
	client    *dynamodb.Client
	tableName string
}

// NewStore creates a store handle
func NewStore(client *dynamodb.Client, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// Ping checks that the backing table is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return pkgerrors.NewUnavailableError("dynamodb")
	}

	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("describe table", err)
	}

	return nil
}

// ListCollections returns up to limit table names visible to the client
func (s *Store) ListCollections(ctx context.Context, limit int) ([]string, error) {
	if s.client == nil {
		return nil, pkgerrors.NewUnavailableError("dynamodb")
	}

	out, err := s.client.ListTables(ctx, &dynamodb.ListTablesInput{
		Limit: aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list tables", err)
	}

	return out.TableNames, nil
}
