package docstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// Create inserts a new record and returns its generated identifier. The
// id and the static paging partition attribute are injected at the item
// level, so the record struct never carries them itself. Not idempotent:
// a retried call writes a second record under a fresh id.
func (s *Store) Create(ctx context.Context, collection string, record any) (string, error) {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return "", gatewayErr("create", collection, err)
	}

	id := uuid.New().String()
	item["id"] = &types.AttributeValueMemberS{Value: id}
	item[pagingPartitionAttr] = &types.AttributeValueMemberN{Value: "1"}

	_, err = s.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(collection),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return "", gatewayErr("create", collection, err)
	}

	return id, nil
}
