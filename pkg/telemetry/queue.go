// Package telemetry publishes robot sensor readings to MQTT.
package telemetry

import (
	"net/url"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"
)

// Queue wraps an MQTT client with a topic prefix.
type Queue struct {
	Client      paho.Client
	TopicPrefix string
}

// ClientOptionsFromURL creates ClientOptions from URL, e.g.
// mqtt://host:1883/finch/ — the path becomes the topic prefix.
func ClientOptionsFromURL(serverURL string) (*paho.ClientOptions, string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, "", err
	}
	var server string
	if u.Scheme == "" || u.Scheme == "mqtt" {
		server = "tcp"
	} else {
		server = u.Scheme
	}
	server += "://" + u.Host

	topicPrefix := strings.TrimPrefix(u.Path, "/")

	opts := paho.NewClientOptions()
	opts.AddBroker(server).
		SetAutoReconnect(true).
		SetCleanSession(true)
	if u.User != nil {
		opts.SetUsername(u.User.Username())
		if pwd, ok := u.User.Password(); ok {
			opts.SetPassword(pwd)
		}
	}
	if clientID := u.Query().Get("client-id"); clientID != "" {
		opts.SetClientID(clientID)
	}
	return opts, topicPrefix, nil
}

// NewQueue creates Queue.
func NewQueue(options *paho.ClientOptions, topicPrefix string) *Queue {
	q := &Queue{TopicPrefix: topicPrefix}
	options.SetOnConnectHandler(func(paho.Client) {
		glog.Info("broker connected")
	})
	options.SetConnectionLostHandler(func(c paho.Client, err error) {
		glog.Warningf("broker connection lost: %v", err)
	})
	q.Client = paho.NewClient(options)
	return q
}

// NewQueueFromURL creates Queue from URL. When the URL carries no
// client-id, the machine identity is used.
func NewQueueFromURL(brokerURL string) (*Queue, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	if opts.ClientID == "" {
		opts.SetClientID(ClientID())
	}
	return NewQueue(opts, topicPrefix), nil
}

// Connect connects the client and waits for the result.
func (q *Queue) Connect() error {
	token := q.Client.Connect()
	token.Wait()
	return token.Error()
}

// Close implements io.Closer.
func (q *Queue) Close() error {
	q.Client.Disconnect(0)
	return nil
}

// Pub publishes to a topic under the prefix.
func (q *Queue) Pub(topic string, payload []byte) error {
	return q.PubWith(topic, payload, 0, false)
}

// PubWith publishes with QoS and retain settings.
func (q *Queue) PubWith(topic string, payload []byte, qos byte, retain bool) error {
	if glog.V(2) {
		glog.Infof("PUB %q %d bytes", q.TopicPrefix+topic, len(payload))
	}
	token := q.Client.Publish(q.TopicPrefix+topic, qos, retain, payload)
	token.Wait()
	return token.Error()
}
