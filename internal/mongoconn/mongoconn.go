// Package mongoconn holds the connection to the MongoDB deployment.
// It tries to be a single client per process
package mongoconn

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var client *mongo.Client

type Conf struct {
	URL            string
	ConnectTimeout time.Duration
}

type Opts func(*Conf)

func NewConf() *Conf {
	return &Conf{
		ConnectTimeout: 10 * time.Second,
	}
}

func WithURL(url string) Opts {
	return func(c *Conf) {
		c.URL = url
	}
}

func WithConnectTimeout(timeout time.Duration) Opts {
	return func(c *Conf) {
		c.ConnectTimeout = timeout
	}
}

// GetConn provides the shared client, connecting and pinging on first use
// TODO: Make it thread safe
func GetConn(opts ...Opts) (*mongo.Client, error) {
	if client != nil {
		return client, nil
	}

	conf := NewConf()
	for _, o := range opts {
		o(conf)
	}

	if conf.URL == "" {
		return nil, errors.New("mongodb url is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.ConnectTimeout)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URL))
	if err != nil {
		return nil, err
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(ctx)
		return nil, err
	}

	client = c
	return client, nil
}

func Close() error {
	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := client.Disconnect(ctx)
		client = nil
		return err
	}
	return nil
}
