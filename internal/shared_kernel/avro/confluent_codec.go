package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"reflect"
	"time"

	"facilityhub-server/internal/infra/cache"

	hamba "github.com/hamba/avro/v2"
	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
)

// SchemaRegistry defines the operations needed from the schema registry.
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
}

// ConfluentAvroCodec encodes messages in the Confluent wire format
// (magic byte + schema id + Avro binary) against a schema registry.
type ConfluentAvroCodec struct {
	prototype      any
	subject        string
	schema         hamba.Schema
	schemaRegistry SchemaRegistry
	subjectSuffix  string
	schemaCache    cache.Cache
}

func NewConfluentAvroCodec(prototype any, registryURL string) (*ConfluentAvroCodec, error) {
	return newConfluentAvroCodec(prototype, srclient.CreateSchemaRegistryClient(registryURL))
}

func newConfluentAvroCodec(prototype any, registry SchemaRegistry) (*ConfluentAvroCodec, error) {
	subject, err := SubjectForMessage(prototype)
	if err != nil {
		return nil, err
	}

	schema, err := SchemaForSubject(subject)
	if err != nil {
		return nil, err
	}

	// goavro rejects anything the Confluent registry would; validate before
	// the first registration attempt so a bad schema fails at startup
	if _, err := goavro.NewCodec(subjectSchemas[subject]); err != nil {
		return nil, fmt.Errorf("validating schema for subject %s: %w", subject, err)
	}

	schemaCache, err := cache.New(&cache.CacheConfig{
		MaxCost:     1 << 20,
		NumCounters: 1e6,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	return &ConfluentAvroCodec{
		prototype:      prototype,
		subject:        subject,
		schema:         schema,
		schemaRegistry: registry,
		subjectSuffix:  "-value",
		schemaCache:    schemaCache,
	}, nil
}

func (c *ConfluentAvroCodec) getOrRegisterSchemaID() (int, error) {
	subject := c.subject + c.subjectSuffix

	ctx := context.Background()
	if cached, found := c.schemaCache.Get(ctx, subject); found {
		if id, ok := cached.(int); ok {
			return id, nil
		}
	}

	registered, err := c.schemaRegistry.GetLatestSchema(subject)
	if err == nil && registered != nil {
		c.schemaCache.Set(ctx, subject, registered.ID(), _defaultSchemaCacheTTL)
		return registered.ID(), nil
	}

	newSchema, err := c.schemaRegistry.CreateSchema(subject, subjectSchemas[c.subject], srclient.Avro)
	if err != nil {
		return 0, fmt.Errorf("registering schema: %w", err)
	}

	c.schemaCache.Set(ctx, subject, newSchema.ID(), _defaultSchemaCacheTTL)
	return newSchema.ID(), nil
}

// Encode encodes a value into Confluent Avro wire format.
func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	schemaID, err := c.getOrRegisterSchemaID()
	if err != nil {
		return nil, fmt.Errorf("getting schema ID: %w", err)
	}

	avroData, err := hamba.Marshal(c.schema, value)
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	result := make([]byte, 5+len(avroData))
	result[0] = 0 // Confluent magic byte
	binary.BigEndian.PutUint32(result[1:5], uint32(schemaID))
	copy(result[5:], avroData)

	return result, nil
}

// Decode decodes a value from Confluent Avro wire format into a fresh
// instance of the prototype type.
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("invalid Avro data: too short")
	}
	if data[0] != 0 {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}
	avroData := data[5:]

	pt := reflect.TypeOf(c.prototype)
	if pt.Kind() == reflect.Ptr {
		pt = pt.Elem()
	}
	instance := reflect.New(pt).Interface()

	if err := hamba.Unmarshal(c.schema, avroData, instance); err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	return instance, nil
}
