package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/model"
)

// Publisher announces finished analyses.
type Publisher interface {
	Publish(ctx context.Context, a *model.Analysis) error
	Close()
}

// Summary is the message body sent for each analysis.
type Summary struct {
	ID                    string  `json:"id"`
	Source                string  `json:"source"`
	TotalSymbols          int     `json:"total_symbols"`
	Entropy               float64 `json:"entropy"`
	AverageBits           float64 `json:"average_bits"`
	CompressionPercentage float64 `json:"compression_percentage"`
}

func NewSummary(a *model.Analysis) Summary {
	return Summary{
		ID:                    a.ID,
		Source:                a.Source,
		TotalSymbols:          a.Stats.TotalSymbols,
		Entropy:               a.Stats.Entropy,
		AverageBits:           a.Stats.AverageBits,
		CompressionPercentage: a.Stats.CompressionPercentage,
	}
}

type nop struct{}

func Nop() Publisher { return nop{} }

func (nop) Publish(context.Context, *model.Analysis) error { return nil }
func (nop) Close()                                        {}

const waitTimeout = 10 * time.Second

type mqttPublisher struct {
	client mqtt.Client
	topic  string
}

// NewMQTT connects to broker (e.g. "tcp://localhost:1883") and publishes
// summaries to topic with QoS 0.
func NewMQTT(broker, topic string) (Publisher, error) {
	opt := mqtt.NewClientOptions()
	opt.AddBroker(broker)
	opt.SetClientID(fmt.Sprintf("huffstat-%d", time.Now().UnixNano()))
	opt.SetAutoReconnect(true)
	client := mqtt.NewClient(opt)
	if err := wait(context.Background(), client.Connect()); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", broker, err)
	}
	return newMQTTPublisher(client, topic), nil
}

func newMQTTPublisher(client mqtt.Client, topic string) *mqttPublisher {
	return &mqttPublisher{client: client, topic: topic}
}

func (p *mqttPublisher) Publish(ctx context.Context, a *model.Analysis) error {
	payload, err := json.Marshal(NewSummary(a))
	if err != nil {
		return err
	}
	if err := wait(ctx, p.client.Publish(p.topic, 0, false, payload)); err != nil {
		return fmt.Errorf("mqtt publish %s: %w", a.ID, err)
	}
	return nil
}

func (p *mqttPublisher) Close() {
	p.client.Disconnect(250)
}

func wait(ctx context.Context, tok mqtt.Token) error {
	select {
	case <-tok.Done():
		return tok.Error()
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(waitTimeout):
		return fmt.Errorf("timed out after %s", waitTimeout)
	}
}
