/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/modelregistry/datastore"
	storeerrors "github.com/suparena/modelregistry/errors"
	"github.com/suparena/modelregistry/schema"
	"github.com/suparena/modelregistry/storagemodels"
)

// createWaitTimeout bounds how long CreateLocation waits for a newly created
// table to become usable.
const createWaitTimeout = 2 * time.Minute

// ModelStore implements datastore.ModelStore using one DynamoDB table as the
// storage location, one item per entity type.
//
// Reads use strongly consistent mode and item writes are durable when
// acknowledged, so a read issued after a successful write observes it.
type ModelStore struct {
	client *sdk.Client
	table  string
}

// NewClient initializes a DynamoDB client using AWS credentials.
func NewClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// New constructs a ModelStore over the default storage location.
func New(client *sdk.Client) *ModelStore {
	return NewWithTable(client, schema.LocationName)
}

// NewWithTable constructs a ModelStore over a named table. Used by
// deployments that namespace the model table per environment.
func NewWithTable(client *sdk.Client, table string) *ModelStore {
	return &ModelStore{client: client, table: table}
}

// LocationExists reports whether the model table exists.
func (s *ModelStore) LocationExists(ctx context.Context) (bool, error) {
	_, err := s.client.DescribeTable(ctx, &sdk.DescribeTableInput{
		TableName: &s.table,
	})
	if err != nil {
		var nf *types.ResourceNotFoundException
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, fmt.Errorf("DescribeTable failed: %w", err)
	}
	return true, nil
}

// CreateLocation creates the model table with the fixed schema and waits
// until it is usable. A concurrent creation racing this one is benign: an
// in-use outcome counts as success.
func (s *ModelStore) CreateLocation(ctx context.Context) error {
	_, err := s.client.CreateTable(ctx, &sdk.CreateTableInput{
		TableName:             &s.table,
		AttributeDefinitions:  schema.AttributeDefinitions(),
		KeySchema:             schema.KeySchema(),
		ProvisionedThroughput: schema.ProvisionedThroughput(),
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return fmt.Errorf("CreateTable failed: %w", err)
		}
	}

	waiter := sdk.NewTableExistsWaiter(s.client)
	err = waiter.Wait(ctx, &sdk.DescribeTableInput{TableName: &s.table}, createWaitTimeout)
	if err != nil {
		return fmt.Errorf("waiting for table %q to become active: %w", s.table, err)
	}
	return nil
}

// GetModel retrieves the document for one entity type with a strongly
// consistent read.
func (s *ModelStore) GetModel(ctx context.Context, entityType string) (*storagemodels.ModelRecord, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &s.table,
		Key:            s.key(entityType),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, s.mapLocationError("GetItem", err)
	}
	if len(out.Item) == 0 {
		return nil, storeerrors.NewNotFoundError(entityType)
	}

	record := &storagemodels.ModelRecord{}
	if err := attributevalue.UnmarshalMap(out.Item, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model record: %w", err)
	}
	return record, nil
}

// SearchModels scans the full storage location, up to
// datastore.MaxModelCount records.
func (s *ModelStore) SearchModels(ctx context.Context) ([]storagemodels.ModelRecord, error) {
	var records []storagemodels.ModelRecord
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &sdk.ScanInput{
			TableName:         &s.table,
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, s.mapLocationError("Scan", err)
		}

		var page []storagemodels.ModelRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal model records: %w", err)
		}
		records = append(records, page...)

		if len(records) >= datastore.MaxModelCount {
			records = records[:datastore.MaxModelCount]
			break
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return records, nil
}

// IndexModel writes one document. With createOnly the write is rejected when
// a document for the same entity type is already present.
func (s *ModelStore) IndexModel(ctx context.Context, record storagemodels.ModelRecord, createOnly bool) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal model record: %w", err)
	}

	input := &sdk.PutItemInput{
		TableName: &s.table,
		Item:      item,
	}
	if createOnly {
		input.ConditionExpression = aws.String("attribute_not_exists(#k)")
		input.ExpressionAttributeNames = map[string]string{"#k": schema.KeyAttribute}
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return storeerrors.NewAlreadyExistsError(record.EntityType)
		}
		return s.mapLocationError("PutItem", err)
	}
	return nil
}

// DeleteModel removes the document for one entity type. It returns false
// without error when no document existed.
func (s *ModelStore) DeleteModel(ctx context.Context, entityType string) (bool, error) {
	out, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:    &s.table,
		Key:          s.key(entityType),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, s.mapLocationError("DeleteItem", err)
	}
	return len(out.Attributes) > 0, nil
}

func (s *ModelStore) key(entityType string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		schema.KeyAttribute: &types.AttributeValueMemberS{Value: entityType},
	}
}

// mapLocationError translates a missing-table failure into the distinguished
// location-not-found error the registry repairs on. Everything else is
// wrapped and passed through.
func (s *ModelStore) mapLocationError(op string, err error) error {
	var nf *types.ResourceNotFoundException
	if errors.As(err, &nf) {
		return storeerrors.NewLocationNotFoundError(s.table)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
