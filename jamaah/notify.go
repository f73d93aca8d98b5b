package jamaah

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/klauspost/compress/zstd"
)

// SqsApi is the slice of the SQS client the notifier uses.
type SqsApi interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SqsNotifier announces accepted submissions on an SQS queue so staff
// tooling can react without polling the collection. The body is
// zstd-compressed, base64-encoded JSON.
type SqsNotifier struct {
	client   SqsApi
	queueUrl string
}

func NewSqsNotifier(client SqsApi, queueUrl string) *SqsNotifier {
	return &SqsNotifier{
		client:   client,
		queueUrl: queueUrl,
	}
}

type newSubmissionEvent struct {
	Type       string `json:"type"`
	SubmId     string `json:"submId"`
	Nama       string `json:"nama"`
	Email      string `json:"email"`
	PaketUmroh string `json:"paketUmroh"`
}

func (n *SqsNotifier) NewSubmission(ctx context.Context, id string, subm Submission) error {
	jsonEvent, err := json.Marshal(newSubmissionEvent{
		Type:       "new_submission",
		SubmId:     id,
		Nama:       subm.Nama,
		Email:      subm.Email,
		PaketUmroh: subm.PaketUmroh,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal submission event: %w", err)
	}

	zstdEncoder, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer zstdEncoder.Close()

	compressed := zstdEncoder.EncodeAll(jsonEvent, make([]byte, 0, len(jsonEvent)))
	encoded := base64.StdEncoding.EncodeToString(compressed)

	_, err = n.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueUrl),
		MessageBody: aws.String(encoded),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to submission queue: %w", err)
	}

	return nil
}
