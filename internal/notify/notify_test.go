package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/model"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func doneToken(err error) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	payload []byte
}

// fakeClient records publishes; only the methods the publisher uses do anything.
type fakeClient struct {
	mqtt.Client
	sent         []published
	err          error
	disconnected bool
}

func (c *fakeClient) Publish(topic string, _ byte, _ bool, payload interface{}) mqtt.Token {
	c.sent = append(c.sent, published{topic: topic, payload: payload.([]byte)})
	return doneToken(c.err)
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func sampleAnalysis() *model.Analysis {
	return &model.Analysis{
		ID:     "f00d",
		Source: "text",
		Stats: model.Statistics{
			TotalSymbols:          4,
			Entropy:               0.8113,
			AverageBits:           1,
			CompressionPercentage: 87.5,
		},
	}
}

func TestMQTTPublish(t *testing.T) {
	c := &fakeClient{}
	p := newMQTTPublisher(c, "huffstat/analyses")

	require.NoError(t, p.Publish(context.Background(), sampleAnalysis()))
	require.Len(t, c.sent, 1)
	require.Equal(t, "huffstat/analyses", c.sent[0].topic)

	var got Summary
	require.NoError(t, json.Unmarshal(c.sent[0].payload, &got))
	require.Equal(t, NewSummary(sampleAnalysis()), got)

	p.Close()
	require.True(t, c.disconnected)
}

func TestMQTTPublishError(t *testing.T) {
	c := &fakeClient{err: errors.New("not connected")}
	p := newMQTTPublisher(c, "t")
	err := p.Publish(context.Background(), sampleAnalysis())
	require.ErrorContains(t, err, "not connected")
}

func TestWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wait(ctx, &fakeToken{done: make(chan struct{})})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNop(t *testing.T) {
	p := Nop()
	require.NoError(t, p.Publish(context.Background(), sampleAnalysis()))
	p.Close()
}
