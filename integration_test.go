//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package singletable_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"

	"github.com/suparena/singletable"
	"github.com/suparena/singletable/batch"
	"github.com/suparena/singletable/ddb"
	"github.com/suparena/singletable/registry"
	"github.com/suparena/singletable/testmodels"
)

func setupTestTable(t *testing.T) (*singletable.Table, string) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")
	tableName := os.Getenv("DDB_TEST_TABLE_NAME")

	if tableName == "" {
		t.Skip("DDB_TEST_TABLE_NAME not set, skipping integration test")
	}

	client, err := ddb.NewClient(context.Background(), accessKey, secretKey, region)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	reg := registry.New()
	err = reg.RegisterEntity(registry.EntityDefinition{
		Name:  "Order",
		Table: tableName,
		Indexes: map[string]registry.IndexDefinition{
			"primary": {
				Name:         "primary",
				PartitionKey: registry.KeyDefinition{Attribute: "PK", Template: "TENANT#{tenantID}"},
				SortKey:      registry.KeyDefinition{Attribute: "SK", Template: "ORDER#{orderID}"},
			},
			"gsi1": {
				Name:         "gsi1",
				PartitionKey: registry.KeyDefinition{Attribute: "GSI1PK", Template: "STATUS#{status}"},
				SortKey:      registry.KeyDefinition{Attribute: "GSI1SK", Template: "ORDER#{orderID}"},
			},
		},
	})
	if err != nil {
		t.Fatalf("register entity: %v", err)
	}

	return singletable.New(client, reg), tableName
}

func TestBatchLifecycle(t *testing.T) {
	table, _ := setupTestTable(t)
	ctx := context.Background()

	now := strfmt.DateTime(time.Now())
	tenant := fmt.Sprintf("it-%d", time.Now().UnixNano())

	var items []batch.Item
	var keys []batch.Facets
	for i := 0; i < 30; i++ {
		orderID := fmt.Sprintf("order-%03d", i)
		order := testmodels.Order{
			TenantID:  aws.String(tenant),
			OrderID:   aws.String(orderID),
			Status:    "open",
			Total:     int64(i * 100),
			CreatedAt: &now,
		}
		items = append(items, batch.Item{
			"tenantID":  *order.TenantID,
			"orderID":   *order.OrderID,
			"status":    order.Status,
			"total":     order.Total,
			"createdAt": order.CreatedAt.String(),
		})
		keys = append(keys, batch.Facets{"tenantID": tenant, "orderID": orderID})
	}

	put, err := table.BatchPut(ctx, "Order", "primary", items, &batch.Options{AutoRetry: 3})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if len(put.Unprocessed) != 0 {
		t.Fatalf("put left %d unprocessed", len(put.Unprocessed))
	}

	got, err := table.BatchGet(ctx, "Order", "primary", keys, &batch.Options{AutoRetry: 3})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Data) != len(keys) {
		t.Errorf("fetched %d items, want %d", len(got.Data), len(keys))
	}
	for _, item := range got.Data {
		pk, ok := item["PK"].(*types.AttributeValueMemberS)
		if !ok || pk.Value != "TENANT#"+tenant {
			t.Errorf("unexpected PK on fetched item: %v", item["PK"])
		}
	}

	del, err := table.BatchDelete(ctx, "Order", "primary", keys, &batch.Options{AutoRetry: 3})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(del.Unprocessed) != 0 {
		t.Errorf("delete left %d unprocessed", len(del.Unprocessed))
	}

	after, err := table.BatchGet(ctx, "Order", "primary", keys, nil)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if len(after.Data) != 0 {
		t.Errorf("fetched %d items after delete, want 0", len(after.Data))
	}
}
