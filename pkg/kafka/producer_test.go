package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"

	"order-intake/pkg/kafka"
	"order-intake/pkg/log"
)

func TestPublish(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]string
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got["order_id"] != "abc" {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := kafka.NewProducer(mp, "order.imported", log.NewNop())
	if err := p.Publish(context.Background(), "abc", map[string]string{"order_id": "abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestPublishFailure(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := kafka.NewProducer(mp, "order.imported", log.NewNop())
	err := p.Publish(context.Background(), "abc", map[string]string{"order_id": "abc"})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("err = %v, want ErrOutOfBrokers", err)
	}
	_ = p.Close()
}

func TestPublishEncodeError(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	p := kafka.NewProducer(mp, "order.imported", log.NewNop())

	if err := p.Publish(context.Background(), "abc", make(chan int)); err == nil {
		t.Fatal("expected encode error")
	}
	_ = p.Close()
}
