package export

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/graphsketch/pkg/graph"
)

// MongoCollection is the subset of *mongo.Collection used by
// [MongoPublisher].
type MongoCollection interface {
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// SnapshotDocument is the document stored per export.
type SnapshotDocument struct {
	Session     string         `bson:"session,omitempty"`
	PublishedAt time.Time      `bson:"published_at"`
	Snapshot    graph.Snapshot `bson:"snapshot"`
}

// MongoPublisher inserts one [SnapshotDocument] per export.
type MongoPublisher struct {
	client     *mongo.Client
	collection MongoCollection
	session    string
	now        func() time.Time
}

// MongoOptions configures [NewMongoPublisher].
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
}

// NewMongoPublisher connects to MongoDB and checks the connection.
func NewMongoPublisher(ctx context.Context, opts MongoOptions) (*MongoPublisher, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	p := NewMongoPublisherWithCollection(client.Database(opts.Database).Collection(opts.Collection))
	p.client = client
	return p, nil
}

// NewMongoPublisherWithCollection wraps an existing collection. Close is a
// no-op for publishers built this way.
func NewMongoPublisherWithCollection(c MongoCollection) *MongoPublisher {
	return &MongoPublisher{collection: c, now: time.Now}
}

// ForSession returns a copy that tags documents with the session id.
func (p *MongoPublisher) ForSession(id string) *MongoPublisher {
	cp := *p
	cp.session = id
	return &cp
}

// Publish inserts s.
func (p *MongoPublisher) Publish(ctx context.Context, s graph.Snapshot) error {
	doc := SnapshotDocument{
		Session:     p.session,
		PublishedAt: p.now().UTC(),
		Snapshot:    s,
	}
	if _, err := p.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}

// Close disconnects the client opened by [NewMongoPublisher].
func (p *MongoPublisher) Close(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Disconnect(ctx)
}
