package messaging

import (
	"testing"

	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/config"

	"github.com/Shopify/sarama"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	m.Run()
}

func Test_createSaramaConsumerConfig(t *testing.T) {
	broker := sarama.NewMockBroker(t, 1)
	defer broker.Close()

	type args struct {
		cfg config.ConsumerConfig
	}
	tests := []struct {
		name         string
		args         args
		wantStrategy string
		wantOldest   bool
		wantErr      bool
	}{
		{
			name: "success create config",
			args: args{
				cfg: config.ConsumerConfig{
					Brokers:  []string{broker.Addr()},
					IsOldest: true,
				},
			},
			wantStrategy: sarama.RangeBalanceStrategyName,
			wantOldest:   true,
		},
		{
			name: "success using assignor sticky",
			args: args{
				cfg: config.ConsumerConfig{
					Brokers:  []string{broker.Addr()},
					Assignor: "sticky",
				},
			},
			wantStrategy: sarama.StickyBalanceStrategyName,
		},
		{
			name: "success using assignor roundrobin",
			args: args{
				cfg: config.ConsumerConfig{
					Brokers:   []string{broker.Addr()},
					Assignor:  "roundrobin",
					IsVerbose: true,
				},
			},
			wantStrategy: sarama.RoundRobinBalanceStrategyName,
		},
		{
			name: "error missing broker",
			args: args{
				cfg: config.ConsumerConfig{},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := gometrics.NewRegistry()
			got, err := CreateSaramaConsumerConfig(tt.args.cfg, "[TEST]", registry)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoBrokers)
				return
			}
			require.NoError(t, err)
			require.NoError(t, got.Validate())
			assert.Equal(t, tt.wantStrategy, got.Consumer.Group.Rebalance.GroupStrategies[0].Name())
			assert.Equal(t, tt.wantOldest, got.Consumer.Offsets.Initial == sarama.OffsetOldest)
			assert.Equal(t, registry, got.MetricRegistry)
		})
	}
}
