package user

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// UserRow is the staff account as stored.
type UserRow struct {
	Uuid      string    `dynamo:"uuid,hash"` // Primary key
	Email     string    `dynamo:"email"`
	Nama      string    `dynamo:"nama"`
	BcryptPwd []byte    `dynamo:"bcrypt_pwd"`
	Version   int       `dynamo:"version"` // For optimistic locking
	CreatedAt time.Time `dynamo:"created_at"`
}

// DynamoDbUserTable represents the DynamoDB table.
type DynamoDbUserTable struct {
	ddbClient  *dynamodb.Client
	tableName  string
	usersTable *dynamo.Table
}

func NewDynamoDbUserTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbUserTable {
	ddb := &DynamoDbUserTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.usersTable = &table

	return ddb
}

// Get retrieves a staff account by uuid, or nil when absent.
func (ddb *DynamoDbUserTable) Get(ctx context.Context, uuid string) (*UserRow, error) {
	row := new(UserRow)
	err := ddb.usersTable.Get("uuid", uuid).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (ddb *DynamoDbUserTable) List(ctx context.Context) ([]*UserRow, error) {
	var rows []*UserRow
	err := ddb.usersTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Save writes a staff account with optimistic locking.
func (ddb *DynamoDbUserTable) Save(ctx context.Context, row *UserRow) error {
	row.Version++

	put := ddb.usersTable.Put(row).If("attribute_not_exists(version) OR version = ?", row.Version-1)
	return put.Run(ctx)
}
