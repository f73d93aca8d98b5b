package docstore

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// Operator enumerates the comparisons the underlying store supports.
type Operator string

const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpLessThan     Operator = "<"
	OpLessOrEqual  Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterOrEq  Operator = ">="
	OpArrayContain Operator = "array-contains"
	OpIn           Operator = "in"
)

// Condition is one field comparison; multiple conditions are ANDed.
type Condition struct {
	Field    string
	Operator Operator
	Value    any
}

func (c Condition) build() (expression.ConditionBuilder, error) {
	name := expression.Name(c.Field)
	switch c.Operator {
	case OpEqual:
		return name.Equal(expression.Value(c.Value)), nil
	case OpNotEqual:
		return name.NotEqual(expression.Value(c.Value)), nil
	case OpLessThan:
		return name.LessThan(expression.Value(c.Value)), nil
	case OpLessOrEqual:
		return name.LessThanEqual(expression.Value(c.Value)), nil
	case OpGreater:
		return name.GreaterThan(expression.Value(c.Value)), nil
	case OpGreaterOrEq:
		return name.GreaterThanEqual(expression.Value(c.Value)), nil
	case OpArrayContain:
		return name.Contains(fmt.Sprint(c.Value)), nil
	case OpIn:
		vals, ok := c.Value.([]any)
		if !ok || len(vals) == 0 {
			return expression.ConditionBuilder{}, fmt.Errorf("operator %q needs a non-empty slice value", c.Operator)
		}
		first := expression.Value(vals[0])
		rest := make([]expression.OperandBuilder, 0, len(vals)-1)
		for _, v := range vals[1:] {
			rest = append(rest, expression.Value(v))
		}
		return name.In(first, rest...), nil
	default:
		return expression.ConditionBuilder{}, fmt.Errorf("unsupported operator %q", c.Operator)
	}
}

// andConditions folds conditions into a single filter expression.
func andConditions(conditions []Condition) (expression.ConditionBuilder, error) {
	filter, err := conditions[0].build()
	if err != nil {
		return expression.ConditionBuilder{}, err
	}
	for _, c := range conditions[1:] {
		next, err := c.build()
		if err != nil {
			return expression.ConditionBuilder{}, err
		}
		filter = filter.And(next)
	}
	return filter, nil
}

func gatewayErr(op string, collection string, err error) error {
	return fmt.Errorf("document store %s on %s failed: %w", op, collection, err)
}
