package jamaah

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSqs struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSqs) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestNewSubmissionMessageBody(t *testing.T) {
	api := &fakeSqs{}
	notifier := NewSqsNotifier(api, "https://sqs.test/queue")

	err := notifier.NewSubmission(context.Background(), "subm-42", Submission{
		Nama:       "Amir Hidayat",
		Email:      "amir@contoh.id",
		PaketUmroh: "Paket Hemat",
	})
	require.NoError(t, err)
	require.NotNil(t, api.input)
	assert.Equal(t, "https://sqs.test/queue", *api.input.QueueUrl)

	compressed, err := base64.StdEncoding.DecodeString(*api.input.MessageBody)
	require.NoError(t, err)

	decoder, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer decoder.Close()
	raw, err := decoder.DecodeAll(compressed, nil)
	require.NoError(t, err)

	var event map[string]string
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "new_submission", event["type"])
	assert.Equal(t, "subm-42", event["submId"])
	assert.Equal(t, "Amir Hidayat", event["nama"])
	assert.Equal(t, "amir@contoh.id", event["email"])
	assert.Equal(t, "Paket Hemat", event["paketUmroh"])
}

func TestCreateSucceedsWhenNotifierFails(t *testing.T) {
	store := newInMemSubmStore()
	notifier := NewSqsNotifier(&fakeSqs{err: errors.New("queue unreachable")}, "https://sqs.test/queue")
	srvc := NewService(store, &fakeFileStore{}, notifier)

	id, err := srvc.Create(context.Background(), Submission{Nama: "Budi Santoso"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	subm, err := store.GetSubmission(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", subm.Nama)
}

func TestCreateWithoutNotifier(t *testing.T) {
	srvc := NewService(newInMemSubmStore(), &fakeFileStore{}, nil)

	id, err := srvc.Create(context.Background(), Submission{Nama: "Citra Lestari"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestCreateIgnoresCallerAssignedId(t *testing.T) {
	store := newInMemSubmStore()
	srvc := NewService(store, &fakeFileStore{}, nil)

	id, err := srvc.Create(context.Background(), Submission{ID: "forged", Nama: "Dewi"})
	require.NoError(t, err)
	assert.NotEqual(t, "forged", id)
}
