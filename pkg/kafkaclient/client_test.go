package kafkaclient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

// mockReader simulates the kafka-go Reader for unit testing.
type mockReader struct {
	messages   chan kafka.Message
	commitChan chan kafka.Message
	isClosed   bool
}

func newMockReader() *mockReader {
	return &mockReader{
		messages:   make(chan kafka.Message, 10),
		commitChan: make(chan kafka.Message, 10),
	}
}

// produce feeds count messages into the mock stream and then closes it.
func (mr *mockReader) produce(count int) {
	go func() {
		defer close(mr.messages)
		for i := 0; i < count; i++ {
			mr.messages <- kafka.Message{
				Topic:     "tile-events",
				Partition: 0,
				Offset:    int64(i),
				Value:     []byte(fmt.Sprintf("mock-message-%d", i)),
			}
		}
	}()
}

func (mr *mockReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if mr.isClosed {
		return kafka.Message{}, fmt.Errorf("kafka: reader closed")
	}
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case msg, ok := <-mr.messages:
		if !ok {
			return kafka.Message{}, fmt.Errorf("kafka: reader closed")
		}
		return msg, nil
	}
}

func (mr *mockReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	if mr.isClosed {
		return fmt.Errorf("kafka: reader closed")
	}
	for _, msg := range msgs {
		mr.commitChan <- msg
	}
	return nil
}

func (mr *mockReader) Close() error {
	mr.isClosed = true
	close(mr.commitChan)
	return nil
}

func TestConsumer_WithMock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	mock := newMockReader()
	consumer := &Consumer{
		reader:      mock,
		doneChan:    make(chan struct{}),
		messageChan: make(chan kafka.Message),
	}

	const expectedMessages = 3
	mock.produce(expectedMessages)

	consumer.Start(ctx)

	received := 0
	for msg := range consumer.Messages() {
		expectedValue := fmt.Sprintf("mock-message-%d", received)
		if string(msg.Value) != expectedValue {
			t.Errorf("Expected message value %q, got %q", expectedValue, string(msg.Value))
		}
		if err := consumer.CommitOffset(ctx, msg); err != nil {
			t.Errorf("CommitOffset() failed: %v", err)
		}
		received++
	}

	if received != expectedMessages {
		t.Errorf("Expected to receive %d messages, but got %d", expectedMessages, received)
	}

	consumer.Stop()

	committed := 0
	for range mock.commitChan {
		committed++
	}
	if committed != expectedMessages {
		t.Errorf("Expected to commit %d messages, but committed %d", expectedMessages, committed)
	}
}

func TestConsumer_GracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	mock := newMockReader()
	consumer := &Consumer{
		reader:      mock,
		doneChan:    make(chan struct{}),
		messageChan: make(chan kafka.Message),
	}

	// A stream that never closes on its own; Stop must still return.
	go func() {
		for i := 0; ; i++ {
			select {
			case mock.messages <- kafka.Message{Offset: int64(i)}:
				time.Sleep(10 * time.Millisecond)
			case <-ctx.Done():
				return
			}
		}
	}()

	consumer.Start(ctx)

	// Drain a couple of messages, then shut down while the stream is live.
	<-consumer.Messages()
	<-consumer.Messages()

	done := make(chan struct{})
	go func() {
		consumer.Stop()
		close(done)
	}()

	// Keep draining so the consumer loop is never blocked on send.
	go func() {
		for range consumer.Messages() {
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return in time")
	}
}
