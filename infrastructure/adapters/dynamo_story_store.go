package adapters

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/config"
	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

// dynamoStoryStore is the persistence gateway: append-only writes unique
// on story_id, reads by id returning nil on miss.
type dynamoStoryStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoStoryStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.StoryStorePort {
	return &dynamoStoryStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoStoryStore) Save(ctx context.Context, record domain.StoryRecord) error {
	av, err := dynamodbattribute.MarshalMap(record)
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to marshal story record", map[string]interface{}{
			"story_id": record.StoryID,
		})
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}

	input := &dynamodb.PutItemInput{
		Item:                av,
		TableName:           aws.String(s.dynamoConfig.TableName),
		ConditionExpression: aws.String("attribute_not_exists(story_id)"),
	}

	if _, err := s.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		s.logger.ErrorWithFields(err, "failed to save story record", map[string]interface{}{
			"story_id": record.StoryID,
		})
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}

	return nil
}

func (s *dynamoStoryStore) FindByID(ctx context.Context, storyID string) (*domain.StoryRecord, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.TableName),
		Key: map[string]*dynamodb.AttributeValue{
			"story_id": {S: aws.String(storyID)},
		},
	}

	result, err := s.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to read story record", map[string]interface{}{
			"story_id": storyID,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var record domain.StoryRecord
	if err := dynamodbattribute.UnmarshalMap(result.Item, &record); err != nil {
		s.logger.ErrorWithFields(err, "failed to unmarshal story record", map[string]interface{}{
			"story_id": storyID,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}

	return &record, nil
}
