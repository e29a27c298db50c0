// Package sqsqueue dispatches analysis jobs to the external worker over SQS.
package sqsqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/config"
	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type sqsAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Job is the message body the analysis worker consumes.
type Job struct {
	CaseID      uuid.UUID `json:"case_id"`
	PatientID   uuid.UUID `json:"patient_id"`
	StorageRef  string    `json:"storage_ref"`
	RequestedAt time.Time `json:"requested_at"`
}

// Queue sends analysis jobs to one SQS queue.
type Queue struct {
	client   sqsAPI
	queueURL string
}

// NewClient builds an SQS client from the default AWS credential chain.
func NewClient(ctx context.Context, cfg config.QueueConfig) (*sqs.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	opts := sqs.Options{
		Region:       awsCfg.Region,
		Credentials:  awsCfg.Credentials,
		HTTPClient:   awsCfg.HTTPClient,
		BaseEndpoint: awsCfg.BaseEndpoint,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return sqs.New(opts), nil
}

// New resolves the queue URL by name unless one is configured directly.
func New(ctx context.Context, client sqsAPI, cfg config.QueueConfig) (*Queue, error) {
	url := cfg.QueueURL
	if url == "" {
		resp, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(cfg.QueueName)})
		if err != nil {
			return nil, fmt.Errorf("get queue url %s: %w", cfg.QueueName, err)
		}
		url = aws.ToString(resp.QueueUrl)
	}
	return &Queue{client: client, queueURL: url}, nil
}

// EnqueueAnalysis sends one job for the case. Delivery is not awaited beyond
// the SQS acknowledgement.
func (q *Queue) EnqueueAnalysis(ctx context.Context, c domain.Case) error {
	body, err := json.Marshal(Job{
		CaseID:      c.ID,
		PatientID:   c.PatientID,
		StorageRef:  c.StorageRef,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("send analysis job %s: %w", c.ID, err)
	}
	return nil
}
