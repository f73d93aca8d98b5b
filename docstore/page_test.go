package docstore

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	key := map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "subm-42"},
		"gsi_pk": &types.AttributeValueMemberN{Value: "1"},
		"nama":   &types.AttributeValueMemberS{Value: "Amir Hidayat"},
	}

	cursor, err := encodeCursor(key)
	require.NoError(t, err)
	require.NotEmpty(t, cursor)

	decoded, err := decodeCursor(cursor)
	require.NoError(t, err)
	assert.Equal(t, key, decoded)
}

func TestCursorBinaryAttribute(t *testing.T) {
	key := map[string]types.AttributeValue{
		"blob": &types.AttributeValueMemberB{Value: []byte{0x00, 0xff, 0x10}},
	}

	cursor, err := encodeCursor(key)
	require.NoError(t, err)

	decoded, err := decodeCursor(cursor)
	require.NoError(t, err)
	assert.Equal(t, key, decoded)
}

func TestCursorRejectsUnsupportedType(t *testing.T) {
	key := map[string]types.AttributeValue{
		"flag": &types.AttributeValueMemberBOOL{Value: true},
	}

	_, err := encodeCursor(key)
	assert.Error(t, err)
}

func TestDecodeCursorGarbage(t *testing.T) {
	_, err := decodeCursor("!!! not base64 !!!")
	assert.Error(t, err)

	// valid base64, invalid payload
	_, err = decodeCursor("bm90LWpzb24")
	assert.Error(t, err)
}

func TestConditionOperators(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		ok   bool
	}{
		{"equal", Condition{Field: "kota", Operator: OpEqual, Value: "Bandung"}, true},
		{"not equal", Condition{Field: "kota", Operator: OpNotEqual, Value: "Bandung"}, true},
		{"less than", Condition{Field: "umur", Operator: OpLessThan, Value: 40}, true},
		{"in", Condition{Field: "kota", Operator: OpIn, Value: []any{"Bandung", "Surabaya"}}, true},
		{"unknown operator", Condition{Field: "kota", Operator: "~=", Value: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cond.build()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
