package reconciliationrequest

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	dlqmock "github.com/trustbooks/go-trust-ledger/internal/common/dlqpublisher/mock"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/services/mock"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type fakeSession struct {
	sarama.ConsumerGroupSession

	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim

	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func newClaim(msgs ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func newMessage(offset int64, value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{
		Topic:     "trust-ledger.reconciliation-request",
		Partition: 0,
		Offset:    offset,
		Timestamp: time.Now(),
		Value:     []byte(value),
	}
}

func TestReconciliationRequestHandler_ConsumeClaim(t *testing.T) {
	request := models.ReconciliationRequestMessage{
		TrustAccountID: "TA-1",
		PeriodStart:    "2024-01-01",
		PeriodEnd:      "2024-01-31",
	}
	payload := `{"trustAccountId":"TA-1","periodStart":"2024-01-01","periodEnd":"2024-01-31"}`

	tests := []struct {
		name       string
		messages   []*sarama.ConsumerMessage
		doMock     func(ss *mock.MockSchedulerService)
		doDLQ      func(dlq *dlqmock.MockPublisher)
		wantErr    error
		wantMarked []int64
	}{
		{
			name:     "completed",
			messages: []*sarama.ConsumerMessage{newMessage(1, payload)},
			doMock: func(ss *mock.MockSchedulerService) {
				ss.EXPECT().ReconcileAccount(gomock.Any(), request).Return(&models.Reconciliation{
					ID:     "REC-1",
					Status: models.ReconciliationStatusCompleted,
				}, nil)
			},
			wantMarked: []int64{1},
		},
		{
			name:     "unbalanced is handled",
			messages: []*sarama.ConsumerMessage{newMessage(2, payload)},
			doMock: func(ss *mock.MockSchedulerService) {
				ss.EXPECT().ReconcileAccount(gomock.Any(), request).Return(&models.Reconciliation{
					ID:          "REC-2",
					Status:      models.ReconciliationStatusInProgress,
					Discrepancy: models.MustNewDecimal("-5"),
				}, common.ErrUnbalancedReconciliation)
			},
			wantMarked: []int64{2},
		},
		{
			name:     "service error is dead-lettered then committed",
			messages: []*sarama.ConsumerMessage{newMessage(3, payload)},
			doMock: func(ss *mock.MockSchedulerService) {
				ss.EXPECT().ReconcileAccount(gomock.Any(), request).Return(nil, common.ErrTrustAccountNotFound)
			},
			doDLQ: func(dlq *dlqmock.MockPublisher) {
				dlq.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg models.FailedMessage) error {
						assert.Equal(t, int64(3), msg.Offset)
						assert.Equal(t, "trust-ledger.reconciliation-request", msg.Topic)
						assert.JSONEq(t, payload, string(msg.Payload))
						assert.ErrorIs(t, msg.CauseError, common.ErrTrustAccountNotFound)
						return nil
					})
			},
			wantMarked: []int64{3},
		},
		{
			name: "malformed payload and missing account are dead-lettered",
			messages: []*sarama.ConsumerMessage{
				newMessage(4, `{"trustAccountId":`),
				newMessage(5, `{"periodStart":"2024-01-01"}`),
			},
			doDLQ: func(dlq *dlqmock.MockPublisher) {
				dlq.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			wantMarked: []int64{4, 5},
		},
		{
			name: "failed dead letter stops the claim without committing",
			messages: []*sarama.ConsumerMessage{
				newMessage(6, payload),
				newMessage(7, payload),
			},
			doMock: func(ss *mock.MockSchedulerService) {
				ss.EXPECT().ReconcileAccount(gomock.Any(), request).Return(nil, common.ErrTrustAccountNotFound)
			},
			doDLQ: func(dlq *dlqmock.MockPublisher) {
				dlq.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(sarama.ErrOutOfBrokers)
			},
			wantErr: sarama.ErrOutOfBrokers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ss := mock.NewMockSchedulerService(ctrl)
			dlq := dlqmock.NewMockPublisher(ctrl)
			if tt.doMock != nil {
				tt.doMock(ss)
			}
			if tt.doDLQ != nil {
				tt.doDLQ(dlq)
			}

			h := NewReconciliationRequestHandler("test-client", ss, nil, dlq)
			session := &fakeSession{ctx: context.Background()}

			require.NoError(t, h.Setup(session))
			err := h.ConsumeClaim(session, newClaim(tt.messages...))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, h.Cleanup(session))

			assert.Equal(t, tt.wantMarked, session.marked)
		})
	}
}

func TestReconciliationRequestHandler_CorrelationIDFromHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	ss := mock.NewMockSchedulerService(ctrl)

	msg := newMessage(7, `{"trustAccountId":"TA-1","periodStart":"2024-01-01","periodEnd":"2024-01-31"}`)
	msg.Headers = []*sarama.RecordHeader{
		{Key: []byte(constants.KafkaHeaderCorrelationID), Value: []byte("corr-123")},
	}

	ss.EXPECT().ReconcileAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.ReconciliationRequestMessage) (*models.Reconciliation, error) {
			assert.Equal(t, "corr-123", ctxdata.GetCorrelationId(ctx))
			return &models.Reconciliation{ID: "REC-7"}, nil
		})

	h := NewReconciliationRequestHandler("test-client", ss, nil, nil)
	session := &fakeSession{ctx: context.Background()}

	require.NoError(t, h.ConsumeClaim(session, newClaim(msg)))
	assert.Equal(t, []int64{7}, session.marked)
}

func TestReconciliationRequestHandler_StopsOnSessionDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	ss := mock.NewMockSchedulerService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewReconciliationRequestHandler("test-client", ss, nil, nil)
	session := &fakeSession{ctx: ctx}

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}
	require.NoError(t, h.ConsumeClaim(session, claim))
	assert.Empty(t, session.marked)
}
