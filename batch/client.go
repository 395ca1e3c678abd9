/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package batch

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/singletable/errors"
)

// Client is the DynamoDB capability contract the coordinator depends on.
// It is satisfied by *dynamodb.Client and by test doubles. The coordinator
// itself only ever invokes BatchGetItem and BatchWriteItem; the single-item
// and transactional primitives are part of the contract because the
// surrounding entity layer reuses the same handle.
type Client interface {
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)

	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)

	TransactGetItems(ctx context.Context, params *dynamodb.TransactGetItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactGetItemsOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// CreateSet builds a DynamoDB set attribute value from a scalar or a slice.
// Strings map to a string set, numbers to a number set, and byte slices to a
// binary set. DynamoDB forbids empty sets, so an empty slice is an error.
func CreateSet(value any) (types.AttributeValue, error) {
	switch v := value.(type) {
	case string:
		return &types.AttributeValueMemberSS{Value: []string{v}}, nil
	case []string:
		if len(v) == 0 {
			return nil, errors.NewValidationError("value", "set must not be empty")
		}
		return &types.AttributeValueMemberSS{Value: v}, nil
	case int:
		return &types.AttributeValueMemberNS{Value: []string{strconv.Itoa(v)}}, nil
	case int64:
		return &types.AttributeValueMemberNS{Value: []string{strconv.FormatInt(v, 10)}}, nil
	case float64:
		return &types.AttributeValueMemberNS{Value: []string{strconv.FormatFloat(v, 'g', -1, 64)}}, nil
	case []int:
		if len(v) == 0 {
			return nil, errors.NewValidationError("value", "set must not be empty")
		}
		members := make([]string, len(v))
		for i, n := range v {
			members[i] = strconv.Itoa(n)
		}
		return &types.AttributeValueMemberNS{Value: members}, nil
	case []int64:
		if len(v) == 0 {
			return nil, errors.NewValidationError("value", "set must not be empty")
		}
		members := make([]string, len(v))
		for i, n := range v {
			members[i] = strconv.FormatInt(n, 10)
		}
		return &types.AttributeValueMemberNS{Value: members}, nil
	case []float64:
		if len(v) == 0 {
			return nil, errors.NewValidationError("value", "set must not be empty")
		}
		members := make([]string, len(v))
		for i, n := range v {
			members[i] = strconv.FormatFloat(n, 'g', -1, 64)
		}
		return &types.AttributeValueMemberNS{Value: members}, nil
	case []byte:
		if len(v) == 0 {
			return nil, errors.NewValidationError("value", "set must not be empty")
		}
		return &types.AttributeValueMemberBS{Value: [][]byte{v}}, nil
	case [][]byte:
		if len(v) == 0 {
			return nil, errors.NewValidationError("value", "set must not be empty")
		}
		return &types.AttributeValueMemberBS{Value: v}, nil
	default:
		return nil, errors.NewValidationError("value", fmt.Sprintf("unsupported set element type %T", value))
	}
}
