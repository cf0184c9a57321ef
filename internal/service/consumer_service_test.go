package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"cpu-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "catalog.events.test"

type recordingForwarder struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (f *recordingForwarder) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

func (f *recordingForwarder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func startConsumer(t *testing.T, forwarder EventForwarder) (*gochannel.GoChannel, *recordingLogger) {
	t.Helper()

	// Persistent so messages published before Subscribe runs are replayed.
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	audit := &recordingLogger{}
	consumer := NewConsumerService(pubSub, testTopic, audit, forwarder)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Consume(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("consumer did not stop")
		}
		_ = pubSub.Close()
	})

	return pubSub, audit
}

func TestConsumerService_AuditsAndForwards(t *testing.T) {
	forwarder := &recordingForwarder{}
	pubSub, audit := startConsumer(t, forwarder)
	publisher := NewPublisherService(testTopic, pubSub)

	event := events.New(events.CpuCreated, map[string]interface{}{"id": 1, "model": "Ryzen 7"})
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Eventually(t, func() bool { return forwarder.count() == 1 }, time.Second, 5*time.Millisecond)

	forwarder.mu.Lock()
	got := forwarder.events[0]
	forwarder.mu.Unlock()
	assert.Equal(t, events.CpuCreated, got.EventType())
	assert.Equal(t, "Ryzen 7", got.Payload()["model"])
	assert.True(t, event.Timestamp().Equal(got.Timestamp()))

	lines := audit.snapshot()
	require.NotEmpty(t, lines)
	assert.Equal(t, "INFO", lines[0].level)
	assert.Equal(t, events.CpuCreated, lines[0].message)
}

func TestConsumerService_BadPayloadIsAckedAndLogged(t *testing.T) {
	forwarder := &recordingForwarder{}
	pubSub, audit := startConsumer(t, forwarder)

	require.NoError(t, pubSub.Publish(testTopic, message.NewMessage(watermill.NewUUID(), []byte("{not json"))))

	require.Eventually(t, func() bool { return len(audit.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "ERROR", audit.snapshot()[0].level)
	assert.Zero(t, forwarder.count())
}

func TestConsumerService_ForwardFailureIsOnlyLogged(t *testing.T) {
	forwarder := &recordingForwarder{err: errPublish}
	pubSub, audit := startConsumer(t, forwarder)
	publisher := NewPublisherService(testTopic, pubSub)

	require.NoError(t, publisher.Publish(context.Background(), events.New(events.CpuDeleted, map[string]interface{}{"id": 3})))

	require.Eventually(t, func() bool { return len(audit.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	lines := audit.snapshot()
	assert.Equal(t, "INFO", lines[0].level)
	assert.Equal(t, "WARN", lines[1].level)
	assert.Equal(t, events.CpuDeleted, lines[1].details["type"])
}

func TestConsumerService_WithoutForwarder(t *testing.T) {
	pubSub, audit := startConsumer(t, nil)
	publisher := NewPublisherService(testTopic, pubSub)

	require.NoError(t, publisher.Publish(context.Background(), events.New(events.SocketCreated, nil)))

	require.Eventually(t, func() bool { return len(audit.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
}
