package publish

import (
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"givenergyexporter/pkg/register"
)

const mqttTimeout = 3 * time.Second

type PublishData struct {
	Payload Payload `json:"payload"`
}

type Payload struct {
	Data []TimeSeriesData `json:"data"`
}

type TimeSeriesData struct {
	Timestamp string      `json:"timestamp"`
	Values    []PointData `json:"values"`
}

type PointData struct {
	DataPointId string      `json:"dataPointId"`
	Value       interface{} `json:"value"`
}

// Publisher forwards each poll result to an MQTT broker as one time
// series envelope per cycle.
type Publisher struct {
	client mqtt.Client
	topic  string
}

func New(broker, clientId, topic string) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientId).
		SetConnectTimeout(mqttTimeout).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttTimeout) {
		return nil, errors.Errorf("connect MQTT broker %q timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, errors.Wrapf(err, "connect MQTT broker %q", broker)
	}
	return &Publisher{client: client, topic: topic}, nil
}

func buildPublishData(metrics []register.Metric, at time.Time) PublishData {
	pds := make([]PointData, 0, len(metrics))
	for _, m := range metrics {
		name := m.Name
		if m.Unit != register.Scalar {
			name += "_" + string(m.Unit)
		}
		pds = append(pds, PointData{DataPointId: name, Value: m.Value})
	}
	return PublishData{Payload: Payload{Data: []TimeSeriesData{{
		Timestamp: at.UTC().Format("2006-01-02T15:04:05.000Z"),
		Values:    pds,
	}}}}
}

func (p *Publisher) Publish(metrics []register.Metric) error {
	publishData := buildPublishData(metrics, time.Now())
	marshal, _ := json.Marshal(publishData)
	token := p.client.Publish(p.topic, 1, false, marshal)
	if token.WaitTimeout(mqttTimeout) && token.Error() == nil {
		klog.V(5).InfoS("Succeed to publish MQTT", "topic", p.topic, "points", len(metrics))
		return nil
	}
	klog.V(1).InfoS("Failed to publish MQTT", "topic", p.topic, "err", token.Error())
	if token.Error() != nil {
		return token.Error()
	}
	return errors.Errorf("publish to %q timed out", p.topic)
}

func (p *Publisher) Close() {
	p.client.Disconnect(2000)
}
