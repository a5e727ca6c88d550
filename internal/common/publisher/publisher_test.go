package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	m.Run()
}

func TestPublisher_Publish(t *testing.T) {
	type payload struct {
		ID string `json:"id"`
	}

	tests := []struct {
		name    string
		message any
		doMock  func(p *mocks.SyncProducer)
		wantErr bool
	}{
		{
			name:    "success with key and correlation header",
			message: payload{ID: "tx-1"},
			doMock: func(p *mocks.SyncProducer) {
				p.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
					key, _ := msg.Key.Encode()
					if string(key) != "acc-1" {
						return errors.New("unexpected key " + string(key))
					}
					value, _ := msg.Value.Encode()
					if string(value) != `{"id":"tx-1"}` {
						return errors.New("unexpected value " + string(value))
					}
					if len(msg.Headers) != 2 || string(msg.Headers[0].Key) != "correlation_id" || string(msg.Headers[0].Value) != "corr-1" {
						return errors.New("unexpected headers")
					}
					return nil
				})
			},
		},
		{
			name:    "failed send",
			message: payload{ID: "tx-2"},
			doMock: func(p *mocks.SyncProducer) {
				p.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
			},
			wantErr: true,
		},
		{
			name:    "failed marshal",
			message: make(chan int),
			doMock:  func(p *mocks.SyncProducer) {},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			producer := mocks.NewSyncProducer(t, nil)
			tt.doMock(producer)

			ctx := ctxdata.Sets(context.Background(), ctxdata.SetCorrelationId("corr-1"))
			err := NewPublisher(producer, "ledger-events").Publish(ctx, tt.message,
				WithKey("acc-1"),
				WithHeaders(map[string]string{"event_type": "transaction.posted"}))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, producer.Close())
		})
	}
}
