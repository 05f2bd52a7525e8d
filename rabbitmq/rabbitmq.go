package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

const DefaultExchange = "horizon"

type Producer struct {
	// Rabbitmq DSN
	connStr  string
	exchange string

	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewProducer(connStr, exchange string) *Producer {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &Producer{
		connStr:  connStr,
		exchange: exchange,
	}
}

// Open connects and declares the topic exchange events are published to.
func (p *Producer) Open() (err error) {
	// ensure a DSN is set before attempting to connect.
	if p.connStr == "" {
		return fmt.Errorf("connection string required")
	}

	if p.conn, err = amqp.Dial(p.connStr); err != nil {
		return err
	}

	if p.channel, err = p.conn.Channel(); err != nil {
		return errors.Wrap(err, "error creating amqp channel")
	}

	if err = p.channel.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "error creating the exchange")
	}

	return nil
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func (p *Producer) Publish(eventName string, data interface{}) error {
	msg, err := Message(data)
	if err != nil {
		return err
	}

	return p.channel.Publish(p.exchange, eventName, false, false, msg)
}

// Message wraps data as a JSON publishing.
func Message(data interface{}) (amqp.Publishing, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return amqp.Publishing{}, errors.Wrap(err, "error marshaling message")
	}

	return amqp.Publishing{
		ContentType: "application/json",
		Body:        jsonData,
	}, nil
}
