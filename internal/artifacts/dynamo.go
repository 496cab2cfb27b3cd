package artifacts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	ARTIFACTS_TABLE_NAME = "ModelArtifacts"

	putRetries     = 3
	initialBackoff = 500 * time.Millisecond
)

// DynamoStore persists artifacts as single items keyed by artifact_key, for
// deployments where the process filesystem is ephemeral.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoStore(client *dynamodb.Client, table string) *DynamoStore {
	if table == "" {
		table = ARTIFACTS_TABLE_NAME
	}
	return &DynamoStore{client: client, table: table}
}

type artifactItem struct {
	ArtifactKey string `dynamodbav:"artifact_key"`
	Blob        []byte `dynamodbav:"blob"`
	UpdatedAt   int64  `dynamodbav:"updated_at"`
}

func (s *DynamoStore) Save(ctx context.Context, key string, blob []byte) error {
	item, err := attributevalue.MarshalMap(artifactItem{
		ArtifactKey: key,
		Blob:        blob,
		UpdatedAt:   time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("[DynamoStore] Failed to marshal artifact item: %w", err)
	}

	backoff := initialBackoff
	for attempt := 0; attempt < putRetries; attempt++ {
		_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.table),
			Item:      item,
		})
		if err == nil {
			slog.Info("[DynamoStore] Artifact stored",
				slog.String("key", key),
				slog.Int("bytes", len(blob)))
			return nil
		}

		slog.Warn("[DynamoStore] Put failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
		time.Sleep(backoff)
		backoff *= 2
	}

	return fmt.Errorf("[DynamoStore] Failed to store artifact after retries: %w", err)
}

func (s *DynamoStore) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"artifact_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("[DynamoStore] Failed to load artifact: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item artifactItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("[DynamoStore] Failed to unmarshal artifact item: %w", err)
	}
	return item.Blob, nil
}
