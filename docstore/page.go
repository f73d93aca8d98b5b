package docstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// The paging GSIs partition on a static attribute so a whole collection
// can be read back ordered by the index sort key. Same trick the tables
// use for any "order by attribute" access path.
const pagingPartitionAttr = "gsi_pk"
const pagingPartitionValue = 1

// OrderDirection selects ascending or descending traversal of a page.
type OrderDirection bool

const (
	Ascending  OrderDirection = true
	Descending OrderDirection = false
)

// FetchPage reads one page of up to pageSize records ordered by
// orderField, which must carry a `<orderField>-index` GSI on the table.
// Conditions are ANDed filters applied after the key condition. The
// returned cursor is opaque; thread it back verbatim to continue, an
// empty cursor means the collection is exhausted. Pass an empty cursor
// to start from the beginning.
func (s *Store) FetchPage(
	ctx context.Context,
	collection string,
	pageSize int,
	cursor string,
	conditions []Condition,
	orderField string,
	dir OrderDirection,
	out any,
) (string, error) {
	if pageSize <= 0 {
		return "", fmt.Errorf("page size must be positive, got %d", pageSize)
	}

	keyCond := expression.Key(pagingPartitionAttr).
		Equal(expression.Value(pagingPartitionValue))
	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if len(conditions) > 0 {
		filter, err := andConditions(conditions)
		if err != nil {
			return "", err
		}
		builder = builder.WithFilter(filter)
	}
	expr, err := builder.Build()
	if err != nil {
		return "", gatewayErr("page", collection, err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(collection),
		IndexName:                 aws.String(orderField + "-index"),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(int32(pageSize)),
		ScanIndexForward:          aws.Bool(bool(dir)),
	}

	if cursor != "" {
		startKey, err := decodeCursor(cursor)
		if err != nil {
			return "", fmt.Errorf("invalid page cursor: %w", err)
		}
		input.ExclusiveStartKey = startKey
	}

	result, err := s.ddbClient.Query(ctx, input)
	if err != nil {
		return "", gatewayErr("page", collection, err)
	}

	if err := attributevalue.UnmarshalListOfMaps(result.Items, out); err != nil {
		return "", gatewayErr("page", collection, err)
	}

	if len(result.LastEvaluatedKey) == 0 {
		return "", nil
	}
	return encodeCursor(result.LastEvaluatedKey)
}

// cursorAttr is the serializable form of one key attribute. Paging keys
// only ever hold string, number or binary members.
type cursorAttr struct {
	S *string `json:"s,omitempty"`
	N *string `json:"n,omitempty"`
	B []byte  `json:"b,omitempty"`
}

func encodeCursor(key map[string]types.AttributeValue) (string, error) {
	attrs := make(map[string]cursorAttr, len(key))
	for name, av := range key {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			attrs[name] = cursorAttr{S: &v.Value}
		case *types.AttributeValueMemberN:
			attrs[name] = cursorAttr{N: &v.Value}
		case *types.AttributeValueMemberB:
			attrs[name] = cursorAttr{B: v.Value}
		default:
			return "", fmt.Errorf("unsupported key attribute type %T for %q", av, name)
		}
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, err
	}
	var attrs map[string]cursorAttr
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, err
	}
	key := make(map[string]types.AttributeValue, len(attrs))
	for name, a := range attrs {
		switch {
		case a.S != nil:
			key[name] = &types.AttributeValueMemberS{Value: *a.S}
		case a.N != nil:
			key[name] = &types.AttributeValueMemberN{Value: *a.N}
		case a.B != nil:
			key[name] = &types.AttributeValueMemberB{Value: a.B}
		default:
			return nil, fmt.Errorf("cursor attribute %q has no value", name)
		}
	}
	return key, nil
}
