package docstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryBy returns every record where field satisfies operator against
// value, unmarshalled into out (pointer to slice of row structs).
func (s *Store) QueryBy(ctx context.Context, collection string, field string, op Operator, value any, out any) error {
	filter, err := Condition{Field: field, Operator: op, Value: value}.build()
	if err != nil {
		return err
	}
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return gatewayErr("query", collection, err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(collection),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(s.ddbClient, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return gatewayErr("query", collection, err)
		}
		items = append(items, page.Items...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return gatewayErr("query", collection, err)
	}
	return nil
}

// Count returns the number of records matching the ANDed conditions.
// DynamoDB has no aggregate index, so this still scans every matching
// item server-side (Select COUNT spares the transfer, not the read cost).
// Acceptable only for small collections.
func (s *Store) Count(ctx context.Context, collection string, conditions []Condition) (int, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(collection),
		Select:    types.SelectCount,
	}

	if len(conditions) > 0 {
		filter, err := andConditions(conditions)
		if err != nil {
			return 0, err
		}
		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return 0, gatewayErr("count", collection, err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	total := 0
	paginator := dynamodb.NewScanPaginator(s.ddbClient, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, gatewayErr("count", collection, err)
		}
		total += int(page.Count)
	}

	return total, nil
}
