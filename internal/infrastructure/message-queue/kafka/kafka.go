package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopright/backend/config"
)

func CreateKafkaReader(config *config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:          []string{config.KafkaConfig.BrokerAddress},
		Topic:            config.KafkaConfig.IdentityTopic,
		Partition:        config.KafkaConfig.BrokerPartition,
		MinBytes:         1e3, // 1KB
		MaxBytes:         1e6, // 1MB
		MaxWait:          100 * time.Millisecond,
		ReadLagInterval:  -1,
		StartOffset:      kafka.LastOffset,
		GroupID:          "shopright-backend",
		QueueCapacity:    1000,
		ReadBatchTimeout: 10 * time.Millisecond,
	})
}

func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.OrderTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	return conn
}

// Producer wraps the leader connection behind the interface the services
// publish through, so event emission can be faked in tests.
type Producer struct {
	conn *kafka.Conn
}

func CreateProducer(conn *kafka.Conn) *Producer {
	return &Producer{conn: conn}
}

func (p *Producer) WriteMessage(msg []byte, key string) error {
	kafkaMsg := kafka.Message{Value: msg}
	if key != "" {
		kafkaMsg.Key = []byte(key)
	}

	_, err := p.conn.WriteMessages(kafkaMsg)
	return err
}
